// Package scene keeps a voxel field in step with a driving setting.
//
// Every change of the bound setting runs the same pass: derive dimensions,
// rebase the grid, map every cell through the procedure, then draw. The
// replayed value on subscription performs the first pass, so there is no
// separate initialization path.
package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/voxgeo/internal/render"
	"github.com/san-kum/voxgeo/internal/settings"
	"github.com/san-kum/voxgeo/internal/voxel"
)

// ErrBadParameter indicates a setting value a procedure cannot use.
var ErrBadParameter = errors.New("scene: parameter must be a number in [0, MaxParameter]")

// MaxParameter bounds the rounded parameter passed to a procedure. Geometry
// that still exceeds voxel.MaxCells is rejected by the grid's Rebase.
const MaxParameter = 1 << 20

// Grid is the mutable field a scene drives.
type Grid interface {
	render.Source
	Rebase(w, h int) error
	Map(fn voxel.MapFunc)
}

// Drawer paints a grid after each pass.
type Drawer interface {
	Draw(src render.Source)
}

// Scene binds a procedure to a grid and an optional drawer.
type Scene struct {
	grid    Grid
	drawer  Drawer
	proc    Procedure
	param   int
	updates int
	err     error
}

// New returns a scene. drawer may be nil for headless use.
func New(grid Grid, drawer Drawer, proc Procedure) *Scene {
	return &Scene{grid: grid, drawer: drawer, proc: proc, param: -1}
}

// Update runs one full pass for the parameter value v.
func (s *Scene) Update(v float64) error {
	if settings.IsUnset(v) || v < 0 || v > MaxParameter {
		return fmt.Errorf("%w: %v", ErrBadParameter, v)
	}
	p := int(math.Round(v))
	w, h := s.proc.Dims(p)
	if err := s.grid.Rebase(w, h); err != nil {
		return fmt.Errorf("scene %s: %w", s.proc.Name, err)
	}
	s.grid.Map(s.proc.Cell(p))
	if s.drawer != nil {
		s.drawer.Draw(s.grid)
	}
	s.param = p
	s.updates++
	return nil
}

// Bind subscribes the scene to the named setting. The current value is
// replayed, so the grid is populated before Bind returns. Failed passes are
// recorded and reported by Err.
func (s *Scene) Bind(reg *settings.Registry, name string) error {
	return reg.Subscribe(name, func(v float64) {
		s.err = s.Update(v)
		if s.err != nil {
			Logger().Warn("scene: update failed", "setting", name, "err", s.err)
		}
	})
}

// Err returns the outcome of the most recent pass triggered through Bind.
func (s *Scene) Err() error { return s.err }

// Param returns the parameter of the last successful pass, or -1.
func (s *Scene) Param() int { return s.param }

// Updates returns the number of successful passes.
func (s *Scene) Updates() int { return s.updates }

// Procedure returns the procedure the scene runs.
func (s *Scene) Procedure() Procedure { return s.proc }

// Grid returns the driven grid.
func (s *Scene) Grid() Grid { return s.grid }
