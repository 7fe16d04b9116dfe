// Package parallel runs data-parallel loops over contiguous index ranges.
// Partitioning is static: the range is cut into one chunk per worker up
// front, so it suits loop bodies with uniform per-iteration cost.
package parallel

import (
	"runtime"
	"sync"
)

// minGrain is the smallest range worth handing to an extra goroutine.
const minGrain = 1 << 13

// For splits [0, n) into contiguous chunks and invokes body once per chunk,
// each from its own goroutine. It returns once every chunk has completed.
// Ranges too small to amortize goroutine startup run on the calling
// goroutine. Bodies must write to disjoint locations; For adds no locking.
func For(n int, body func(lo, hi int)) {
	if n <= 0 {
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if limit := n / minGrain; limit < workers {
		workers = limit
	}

	if workers <= 1 {
		body(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)

		wg.Add(1)

		go func() {
			defer wg.Done()
			body(lo, hi)
		}()
	}

	wg.Wait()
}
