package scene

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/voxgeo/internal/voxel"
)

// Procedure derives a field's geometry and contents from one integer
// parameter. Cell must depend only on the cell address and the parameter.
type Procedure struct {
	Name        string
	Description string
	Dims        func(p int) (w, h int)
	Cell        func(p int) voxel.MapFunc
}

// Centered returns the square dimensions 2r+1 used by radial procedures.
func Centered(r int) (int, int) {
	d := 2*r + 1
	return d, d
}

// distance returns the distance from (x, y) to (r, r) rounded half away
// from zero.
func distance(x, y, r int) int {
	dx, dy := float64(x-r), float64(y-r)
	return int(math.Round(math.Sqrt(dx*dx + dy*dy)))
}

// RingCell marks cells whose rounded distance from the center equals r.
func RingCell(r int) voxel.MapFunc {
	return func(_ float64, x, y, _ int) float64 {
		if distance(x, y, r) == r {
			return 1
		}
		return 0
	}
}

// DiscCell marks cells whose rounded distance from the center is at most r.
func DiscCell(r int) voxel.MapFunc {
	return func(_ float64, x, y, _ int) float64 {
		if distance(x, y, r) <= r {
			return 1
		}
		return 0
	}
}

// Ring is the outline of a circle of radius r.
var Ring = Procedure{Name: "ring", Description: "circle outline", Dims: Centered, Cell: RingCell}

// Disc is a filled circle of radius r.
var Disc = Procedure{Name: "disc", Description: "filled circle", Dims: Centered, Cell: DiscCell}

// Catalog maps procedure names to procedures.
type Catalog struct {
	procs map[string]Procedure
}

// NewCatalog returns a catalog holding the built-in procedures.
func NewCatalog() *Catalog {
	c := &Catalog{procs: make(map[string]Procedure)}
	c.Add(Ring)
	c.Add(Disc)
	return c
}

// Add registers p under its name.
func (c *Catalog) Add(p Procedure) {
	if p.Name == "" || p.Dims == nil || p.Cell == nil {
		return
	}
	c.procs[p.Name] = p
}

// Get returns the named procedure.
func (c *Catalog) Get(name string) (Procedure, error) {
	p, ok := c.procs[name]
	if !ok {
		return Procedure{}, fmt.Errorf("unknown pattern: %s", name)
	}
	return p, nil
}

// Names lists procedure names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.procs))
	for name := range c.procs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
