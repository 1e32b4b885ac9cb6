package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/voxgeo/internal/render"
	"github.com/san-kum/voxgeo/internal/voxel"
)

// svgSurface collects rect elements as the renderer paints cells.
type svgSurface struct {
	sb strings.Builder
}

func (s *svgSurface) ClearRegion(x, y, w, h int) {
	fmt.Fprintf(&s.sb, `<rect x="%d" y="%d" width="%d" height="%d" fill="#000000"/>
`, x, y, w, h)
}

func (s *svgSurface) FillRect(x, y, w, h int, c render.RGB) {
	r, g, b := c.Bytes()
	fmt.Fprintf(&s.sb, `<rect x="%d" y="%d" width="%d" height="%d" fill="#%02x%02x%02x"/>
`, x, y, w, h, r, g, b)
}

// FieldToSVG draws the field with one rect per cell.
func FieldToSVG(f *voxel.Field, cellW, cellH int) (string, error) {
	surf := &svgSurface{}
	r, err := render.New(surf, cellW, cellH)
	if err != nil {
		return "", err
	}
	r.Draw(f)

	width, height := r.PixelSize(f)
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">
`, width, height, width, height)
	sb.WriteString(surf.sb.String())
	sb.WriteString("</svg>\n")
	return sb.String(), nil
}

// WriteSVG writes FieldToSVG output to w.
func WriteSVG(w io.Writer, f *voxel.Field, cellW, cellH int) error {
	svg, err := FieldToSVG(f, cellW, cellH)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, svg)
	return err
}
