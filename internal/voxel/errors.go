package voxel

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a coordinate or index outside the current geometry.
	ErrOutOfRange = errors.New("voxel: cell out of range")

	// ErrInvalidSize indicates a non-positive width or height, or more than
	// MaxCells cells.
	ErrInvalidSize = errors.New("voxel: invalid field size")
)

// RangeError records the offending address of an out-of-range access.
// Coord reports whether the access was made by (X, Y) rather than Index.
type RangeError struct {
	X, Y          int
	Index         int
	Width, Height int
	Coord         bool
}

func (e *RangeError) Error() string {
	if e.Coord {
		return fmt.Sprintf("%v: (%d,%d) outside %dx%d", ErrOutOfRange, e.X, e.Y, e.Width, e.Height)
	}
	return fmt.Sprintf("%v: index %d outside [0,%d)", ErrOutOfRange, e.Index, e.Width*e.Height)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
