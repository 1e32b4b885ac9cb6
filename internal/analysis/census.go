package analysis

import (
	"fmt"
	"sync"

	"github.com/san-kum/voxgeo/internal/scene"
	"github.com/san-kum/voxgeo/internal/voxel"
)

// censusChunk is the smallest parameter range worth a goroutine.
const censusChunk = 8

// Census runs proc for every parameter in [lo, hi] and returns the number of
// non-zero cells produced by each pass. Chunks of the range run concurrently,
// each on its own field.
func Census(proc scene.Procedure, lo, hi int) ([]float64, error) {
	if lo < 0 || hi < lo {
		return nil, fmt.Errorf("census: invalid range [%d,%d]", lo, hi)
	}

	counts := make([]float64, hi-lo+1)
	var (
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	ParallelFor(len(counts), censusChunk, func(start, end int) {
		f, err := voxel.New(1, 1)
		if err != nil {
			fail(err)
			return
		}
		sc := scene.New(f, nil, proc)
		for i := start; i < end; i++ {
			if err := sc.Update(float64(lo + i)); err != nil {
				fail(err)
				return
			}
			counts[i] = float64(Lit(f))
		}
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return counts, nil
}

// Lit counts non-zero cells.
func Lit(f *voxel.Field) int {
	n := 0
	f.ForEach(func(v float64, _, _, _ int) {
		if v != 0 {
			n++
		}
	})
	return n
}

// Row copies row y of f.
func Row(f *voxel.Field, y int) ([]float64, error) {
	start, err := f.Index(0, y)
	if err != nil {
		return nil, err
	}
	row := make([]float64, f.Width())
	copy(row, f.Cells()[start:start+f.Width()])
	return row, nil
}
