package primes

import (
	"context"
	"errors"
	"testing"
)

func TestCountPrimesBelowOneMillion(t *testing.T) {
	// pi(10^6) = 78498; the closed range [0, 999999] covers exactly
	// the integers below one million.
	if got := Count(0, 999999); got != 78498 {
		t.Errorf("Count(0, 999999) = %d, want 78498", got)
	}
}

func TestCountKnownRanges(t *testing.T) {
	tests := []struct {
		lo, hi uint32
		want   uint64
	}{
		{0, 0, 0},
		{0, 1, 0},
		{0, 2, 1},
		{2, 2, 1},
		{0, 10, 4},   // 2 3 5 7
		{10, 20, 4},  // 11 13 17 19
		{14, 16, 0},
		{0, 100, 25},
		{999983, 999983, 1}, // largest prime below 10^6
	}
	for _, tt := range tests {
		if got := Count(tt.lo, tt.hi); got != tt.want {
			t.Errorf("Count(%d, %d) = %d, want %d", tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestCountEmptyRange(t *testing.T) {
	if got := Count(10, 5); got != 0 {
		t.Errorf("Count(10, 5) = %d, want 0", got)
	}
	got, err := CountParallel(context.Background(), 10, 5, 4)
	if err != nil {
		t.Fatalf("CountParallel(10, 5) error: %v", err)
	}
	if got != 0 {
		t.Errorf("CountParallel(10, 5) = %d, want 0", got)
	}
}

// TestCountRangeTop makes sure counting up to MaxUint32 terminates and
// includes the boundary: 2^32 - 5 is the only prime in the last five
// candidates.
func TestCountRangeTop(t *testing.T) {
	if got := Count(4294967291, 4294967295); got != 1 {
		t.Errorf("Count at the top of the range = %d, want 1", got)
	}
}

func TestCountParallelMatchesCount(t *testing.T) {
	ranges := []struct {
		lo, hi uint32
	}{
		{0, 0},
		{0, 1},
		{0, 99},
		{0, 10000},
		{999000, 1001000},
		{4294900000, 4294967295},
	}
	for _, r := range ranges {
		want := Count(r.lo, r.hi)
		for _, workers := range []int{0, 1, 2, 3, 7, 16} {
			got, err := CountParallel(context.Background(), r.lo, r.hi, workers)
			if err != nil {
				t.Fatalf("CountParallel(%d, %d, %d) error: %v", r.lo, r.hi, workers, err)
			}
			if got != want {
				t.Errorf("CountParallel(%d, %d, %d) = %d, want %d",
					r.lo, r.hi, workers, got, want)
			}
		}
	}
}

func TestCountParallelMoreWorkersThanCandidates(t *testing.T) {
	got, err := CountParallel(context.Background(), 2, 4, 64)
	if err != nil {
		t.Fatalf("CountParallel error: %v", err)
	}
	if got != 2 { // 2 and 3
		t.Errorf("CountParallel(2, 4, 64) = %d, want 2", got)
	}
}

func TestCountParallelCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := CountParallel(ctx, 0, 100000000, 4)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("CountParallel on cancelled context: err = %v, want context.Canceled", err)
	}
}

func BenchmarkCount(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Count(0, 100000)
	}
}

func BenchmarkCountParallel(b *testing.B) {
	ctx := context.Background()
	for i := 0; i < b.N; i++ {
		if _, err := CountParallel(ctx, 0, 100000, 0); err != nil {
			b.Fatal(err)
		}
	}
}
