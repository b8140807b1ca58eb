// Package parallel provides the fork-join primitive and bit-twiddling
// helpers shared by the recursive transforms.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}

// Log2 returns the base-2 logarithm of n, or -1 if n is not a power of two.
func Log2(n int) int {
	if !IsPowerOfTwo(n) {
		return -1
	}
	result := 0
	for n > 1 {
		n >>= 1
		result++
	}
	return result
}

// NextPowerOfTwo returns the smallest power of two that is >= n.
func NextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	if IsPowerOfTwo(n) {
		return n
	}
	power := 1
	for power < n {
		power <<= 1
	}
	return power
}

// ThreadLog derives the size-exponent threshold below which the recursive
// transforms stop spawning goroutines. The exact formula is not
// significant, only that small sub-problems run serially.
func ThreadLog(workers int) int {
	if workers < 1 {
		workers = 1
	}
	return Log2(NextPowerOfTwo(workers)) + 1
}

// DefaultWorkers returns the default worker count.
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// Join runs f and g, concurrently (both to completion) when parallel is true
// and serially otherwise, and propagates the first error either returns.
// Serially, g is not run when f returns an error.
func Join(parallel bool, f, g func() error) error {
	if !parallel {
		if err := f(); err != nil {
			return err
		}
		return g()
	}
	grp, _ := errgroup.WithContext(context.Background())
	grp.Go(f)
	grp.Go(g)
	return grp.Wait()
}
