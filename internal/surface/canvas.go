package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/voxgeo/internal/render"
)

// ramp orders glyphs from dark to light for plain output.
var ramp = []rune{' ', '░', '▒', '▓', '█'}

// Canvas is a terminal pixel buffer. One pixel prints as two columns so that
// square cells look square.
type Canvas struct {
	Width, Height int
	Pixels        [][]render.RGB
}

// NewCanvas allocates a black canvas.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates the buffer when the dimensions change.
func (c *Canvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if w == c.Width && h == c.Height && c.Pixels != nil {
		return
	}
	c.Width, c.Height = w, h
	c.Pixels = make([][]render.RGB, h)
	for i := range c.Pixels {
		c.Pixels[i] = make([]render.RGB, w)
	}
}

// ClearRegion resets the region to black. Pixels outside the canvas are ignored.
func (c *Canvas) ClearRegion(x, y, w, h int) {
	c.FillRect(x, y, w, h, render.RGB{})
}

// FillRect paints the region with col. Pixels outside the canvas are ignored.
func (c *Canvas) FillRect(x, y, w, h int, col render.RGB) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, c.Width), min(y+h, c.Height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.Pixels[py][px] = col
		}
	}
}

// At returns the pixel at (x, y), or black outside the canvas.
func (c *Canvas) At(x, y int) render.RGB {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return render.RGB{}
	}
	return c.Pixels[y][x]
}

// String renders the canvas with truecolor backgrounds.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Pixels {
		for _, px := range row {
			style := lipgloss.NewStyle().Background(lipgloss.Color(hex(px)))
			b.WriteString(style.Render("  "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Plain renders the canvas with shade glyphs and no escape sequences.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for _, row := range c.Pixels {
		for _, px := range row {
			g := glyph(px)
			b.WriteRune(g)
			b.WriteRune(g)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func hex(px render.RGB) string {
	return colorful.Color{R: px.R / 255, G: px.G / 255, B: px.B / 255}.Clamped().Hex()
}

func glyph(px render.RGB) rune {
	l, _, _ := colorful.Color{R: px.R / 255, G: px.G / 255, B: px.B / 255}.Clamped().Lab()
	idx := int(l*float64(len(ramp)-1) + 0.5)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(ramp) {
		idx = len(ramp) - 1
	}
	return ramp[idx]
}
