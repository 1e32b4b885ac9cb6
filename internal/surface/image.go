package surface

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/san-kum/voxgeo/internal/render"
)

// Image is a raster surface drawn with gg.
type Image struct {
	dc *gg.Context
}

// NewImage creates a transparent w x h image surface.
func NewImage(w, h int) (*Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", render.ErrSurfaceUnavailable, w, h)
	}
	return &Image{dc: gg.NewContext(w, h)}, nil
}

// Resize replaces the context when the dimensions change. Contents are lost.
func (s *Image) Resize(w, h int) {
	if w <= 0 || h <= 0 || (w == s.dc.Width() && h == s.dc.Height()) {
		return
	}
	_ = s.dc.Close()
	s.dc = gg.NewContext(w, h)
}

// ClearRegion makes the region transparent.
func (s *Image) ClearRegion(x, y, w, h int) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, s.dc.Width()), min(y+h, s.dc.Height())
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			s.dc.SetPixel(px, py, gg.RGBA{})
		}
	}
}

// FillRect paints an opaque rectangle.
func (s *Image) FillRect(x, y, w, h int, c render.RGB) {
	r, g, b := c.Bytes()
	s.dc.SetRGB(float64(r)/255, float64(g)/255, float64(b)/255)
	s.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	if err := s.dc.Fill(); err != nil {
		render.Logger().Warn("surface: fill failed", "err", err)
	}
}

// Image returns the rendered image.
func (s *Image) Image() image.Image { return s.dc.Image() }

// EncodePNG writes the image to w in PNG format.
func (s *Image) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// SavePNG writes the image to path.
func (s *Image) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}

// Close releases the drawing context.
func (s *Image) Close() error {
	return s.dc.Close()
}
