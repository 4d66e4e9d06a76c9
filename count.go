package primes

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Count returns the number of primes in the closed range [lo, hi].
// A range with lo > hi contains nothing and counts zero. The count is
// 64-bit so the full uint32 span cannot overflow it.
func Count(lo, hi uint32) uint64 {
	if lo > hi {
		return 0
	}
	var count uint64
	for n := lo; ; n++ {
		if IsPrime(n) {
			count++
		}
		// The bound check runs after the body so hi itself is counted
		// and n cannot wrap past MaxUint32.
		if n == hi {
			break
		}
	}
	return count
}

// cancelCheckInterval is the number of candidates a worker tests
// between looks at the context.
const cancelCheckInterval = 1 << 12

// CountParallel returns the number of primes in the closed range
// [lo, hi], splitting the range into one contiguous chunk per worker.
// Each candidate's test is independent and side-effect-free, so the
// partial counts need no synchronization beyond the final sum.
// workers <= 0 uses runtime.NumCPU(). The result is identical to Count
// for every range.
func CountParallel(ctx context.Context, lo, hi uint32, workers int) (uint64, error) {
	if lo > hi {
		return 0, nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	span := uint64(hi) - uint64(lo) + 1
	if uint64(workers) > span {
		workers = int(span)
	}

	partial := make([]uint64, workers)
	chunk := span / uint64(workers)
	rem := span % uint64(workers)

	g, ctx := errgroup.WithContext(ctx)
	next := uint64(lo)
	for w := range partial {
		size := chunk
		if uint64(w) < rem {
			size++
		}
		first := uint32(next)
		last := uint32(next + size - 1)
		next += size

		g.Go(func() error {
			var count uint64
			n := first
			for i := uint64(0); ; i++ {
				if i%cancelCheckInterval == 0 {
					select {
					case <-ctx.Done():
						return ctx.Err()
					default:
					}
				}
				if IsPrime(n) {
					count++
				}
				if n == last {
					break
				}
				n++
			}
			partial[w] = count
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total uint64
	for _, c := range partial {
		total += c
	}
	return total, nil
}
