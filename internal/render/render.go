// Package render paints a voxel field onto a drawing surface.
package render

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/san-kum/voxgeo/internal/voxel"
)

const (
	// DefaultCellWidth is the pixel width of one cell.
	DefaultCellWidth = 10
	// DefaultCellHeight is the pixel height of one cell.
	DefaultCellHeight = 10
)

// ErrSurfaceUnavailable indicates the drawing surface could not be acquired.
var ErrSurfaceUnavailable = errors.New("render: surface unavailable")

// RGB is a color with components on a 0-255 scale. Components are not
// clamped; surfaces clamp when converting to a device color.
type RGB struct {
	R, G, B float64
}

// Gray maps a cell value to a gray level: 0 is black and 1 is white.
func Gray(v float64) RGB {
	c := v * 255
	return RGB{R: c, G: c, B: c}
}

// Bytes clamps the components into [0, 255].
func (c RGB) Bytes() (r, g, b uint8) {
	return clamp8(c.R), clamp8(c.G), clamp8(c.B)
}

func clamp8(v float64) uint8 {
	if v != v || v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Surface is the drawing target.
type Surface interface {
	ClearRegion(x, y, w, h int)
	FillRect(x, y, w, h int, c RGB)
}

// Source is the read side of a field that a renderer needs.
type Source interface {
	Width() int
	Height() int
	Size() int
	ForEach(fn voxel.VisitFunc)
}

// Resizer is implemented by surfaces that can follow the field's geometry.
type Resizer interface {
	Resize(w, h int)
}

// Renderer draws fields onto a surface at a fixed cell size.
type Renderer struct {
	surface      Surface
	cellW, cellH int
	draws        int
}

// New binds a renderer to s. A nil surface, including a nil pointer behind
// the interface, fails with ErrSurfaceUnavailable.
func New(s Surface, cellW, cellH int) (*Renderer, error) {
	if isNil(s) {
		return nil, ErrSurfaceUnavailable
	}
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("render: cell size %dx%d must be positive", cellW, cellH)
	}
	return &Renderer{surface: s, cellW: cellW, cellH: cellH}, nil
}

// Acquire opens a surface with open and binds a renderer to it. Any failure
// to open is reported as ErrSurfaceUnavailable.
func Acquire(open func() (Surface, error), cellW, cellH int) (*Renderer, error) {
	s, err := open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSurfaceUnavailable, err)
	}
	return New(s, cellW, cellH)
}

func isNil(s Surface) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Surface returns the bound surface.
func (r *Renderer) Surface() Surface { return r.surface }

// CellSize returns the pixel size of one cell.
func (r *Renderer) CellSize() (int, int) { return r.cellW, r.cellH }

// Draws returns the number of completed Draw calls.
func (r *Renderer) Draws() int { return r.draws }

// PixelSize returns the surface area covered by f.
func (r *Renderer) PixelSize(f Source) (int, int) {
	return f.Width() * r.cellW, f.Height() * r.cellH
}

// Draw clears the field's area and fills one block per cell in index order.
func (r *Renderer) Draw(f Source) {
	w, h := r.PixelSize(f)
	if rs, ok := r.surface.(Resizer); ok {
		rs.Resize(w, h)
	}
	r.surface.ClearRegion(0, 0, w, h)
	f.ForEach(func(v float64, x, y, _ int) {
		r.surface.FillRect(x*r.cellW, y*r.cellH, r.cellW, r.cellH, Gray(v))
	})
	r.draws++
	Logger().Debug("render: draw", "cells", f.Size(), "width", w, "height", h)
}
