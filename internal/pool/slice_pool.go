package pool

import "sync"

// IndexSliceInitialCap is the capacity of a fresh index slice.
const IndexSliceInitialCap = 16

// indexSliceMaxThreshold keeps pathological match lists out of the pool.
const indexSliceMaxThreshold = 1 << 16

var indexSlicePool = sync.Pool{
	New: func() any {
		s := make([]int, 0, IndexSliceInitialCap)
		return &s
	},
}

// GetIndexSlice retrieves an empty int slice with at least IndexSliceInitialCap
// capacity. The caller must call the returned cleanup function, typically with
// defer, after the last use of the slice.
//
// The slice is handed out through a pointer so that callers appending past the
// capacity hand the grown slice back to the pool:
//
//	idx, cleanup := pool.GetIndexSlice()
//	defer cleanup()
//	*idx = append(*idx, 42)
func GetIndexSlice() (*[]int, func()) {
	ptr, _ := indexSlicePool.Get().(*[]int)
	*ptr = (*ptr)[:0]

	return ptr, func() {
		if cap(*ptr) > indexSliceMaxThreshold {
			return
		}
		indexSlicePool.Put(ptr)
	}
}
