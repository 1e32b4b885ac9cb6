package voxel

import (
	"fmt"
	"math"
)

// MaxCells caps width*height so a field stays addressable and allocatable.
const MaxCells = 1 << 24

// MapFunc computes the new value of a cell from its current value and address.
type MapFunc func(v float64, x, y, i int) float64

// VisitFunc observes a cell without modifying it.
type VisitFunc func(v float64, x, y, i int)

// Field stores a 2D grid of float64 cells in row-major order.
type Field struct {
	width, height int
	cells         []float64
}

// New allocates a zero-filled field with the given dimensions.
func New(width, height int) (*Field, error) {
	if !validSize(width, height) {
		return nil, fmt.Errorf("new %dx%d: %w", width, height, ErrInvalidSize)
	}
	return &Field{width: width, height: height, cells: make([]float64, width*height)}, nil
}

// Width returns the number of columns.
func (f *Field) Width() int { return f.width }

// Height returns the number of rows.
func (f *Field) Height() int { return f.height }

// Size returns width*height.
func (f *Field) Size() int { return len(f.cells) }

// Cells exposes the backing slice. It stays valid until the next Rebase that
// changes the dimensions.
func (f *Field) Cells() []float64 { return f.cells }

// Index returns the linear index for (x, y).
func (f *Field) Index(x, y int) (int, error) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return 0, &RangeError{X: x, Y: y, Width: f.width, Height: f.height, Coord: true}
	}
	return x + y*f.width, nil
}

// Coord returns the (x, y) address of linear index i.
func (f *Field) Coord(i int) (int, int, error) {
	if i < 0 || i >= len(f.cells) {
		return 0, 0, &RangeError{Index: i, Width: f.width, Height: f.height}
	}
	return i % f.width, i / f.width, nil
}

// At returns the value at (x, y).
func (f *Field) At(x, y int) (float64, error) {
	i, err := f.Index(x, y)
	if err != nil {
		return 0, err
	}
	return f.cells[i], nil
}

// Set stores v at (x, y).
func (f *Field) Set(x, y int, v float64) error {
	i, err := f.Index(x, y)
	if err != nil {
		return err
	}
	f.cells[i] = v
	return nil
}

// AtIndex returns the value at linear index i.
func (f *Field) AtIndex(i int) (float64, error) {
	if i < 0 || i >= len(f.cells) {
		return 0, &RangeError{Index: i, Width: f.width, Height: f.height}
	}
	return f.cells[i], nil
}

// SetIndex stores v at linear index i.
func (f *Field) SetIndex(i int, v float64) error {
	if i < 0 || i >= len(f.cells) {
		return &RangeError{Index: i, Width: f.width, Height: f.height}
	}
	f.cells[i] = v
	return nil
}

// Map replaces every cell with fn(current, x, y, i), visiting cells in index
// order. Each cell is written once, so fn never observes a neighbour's new
// value through its own arguments.
func (f *Field) Map(fn MapFunc) {
	w := f.width
	for i, v := range f.cells {
		f.cells[i] = fn(v, i%w, i/w, i)
	}
}

// ForEach calls fn for every cell in index order.
func (f *Field) ForEach(fn VisitFunc) {
	w := f.width
	for i, v := range f.cells {
		fn(v, i%w, i/w, i)
	}
}

// Fill sets every cell to v.
func (f *Field) Fill(v float64) {
	for i := range f.cells {
		f.cells[i] = v
	}
}

// Rebase changes the geometry of the field. Unchanged dimensions are a no-op;
// anything else discards the old cells and allocates zeroed storage. Values
// are not carried across a resize.
func (f *Field) Rebase(width, height int) error {
	if !validSize(width, height) {
		return fmt.Errorf("rebase %dx%d: %w", width, height, ErrInvalidSize)
	}
	if width == f.width && height == f.height {
		return nil
	}
	Logger().Debug("voxel: rebase",
		"from_w", f.width, "from_h", f.height,
		"to_w", width, "to_h", height)
	f.width, f.height = width, height
	f.cells = make([]float64, width*height)
	return nil
}

// validSize reports whether width x height is positive and within MaxCells.
func validSize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if width > math.MaxInt/height {
		return false
	}
	return width*height <= MaxCells
}
