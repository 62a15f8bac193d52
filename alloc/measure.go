package alloc

import "time"

// Timing holds the mean cost of one Alloc and one Free.
type Timing struct {
	Alloc time.Duration
	Free  time.Duration
}

// Measure allocates iterations values from a, then frees them, and reports
// the mean duration of each call. The calls are too short to time one by
// one, so the whole batch is timed.
func Measure[T any](a Allocator[T], iterations int) Timing {
	if iterations <= 0 {
		return Timing{}
	}

	ptrs := make([]*T, iterations)

	start := time.Now()
	for i := range ptrs {
		ptrs[i] = a.Alloc()
	}
	allocElapsed := time.Since(start)

	start = time.Now()
	for _, p := range ptrs {
		if p != nil {
			a.Free(p)
		}
	}
	freeElapsed := time.Since(start)

	return Timing{
		Alloc: allocElapsed / time.Duration(iterations),
		Free:  freeElapsed / time.Duration(iterations),
	}
}
