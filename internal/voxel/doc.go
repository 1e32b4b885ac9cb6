// Package voxel provides the dense scalar grid that backs every rendered scene.
//
//   - [Field]: row-major 2D grid of float64 cells
//   - [MapFunc] / [VisitFunc]: per-cell callbacks used by [Field.Map] and [Field.ForEach]
//
// Cells are addressed either by coordinate or by linear index, where
// index = x + y*width. Callers rely on that mapping for coordinate math,
// so iteration always runs in index order with x varying fastest.
//
// # Example
//
//	f, _ := voxel.New(21, 21)
//	f.Map(func(_ float64, x, y, _ int) float64 {
//		return float64(x + y)
//	})
//
// # Thread Safety
//
// Field instances are NOT thread-safe. A field is owned by a single
// logical thread of control; renderers borrow it for the duration of a draw.
package voxel
