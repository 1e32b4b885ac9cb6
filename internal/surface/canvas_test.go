package surface

import (
	"strings"
	"testing"

	"github.com/san-kum/voxgeo/internal/render"
	"github.com/san-kum/voxgeo/internal/scene"
	"github.com/san-kum/voxgeo/internal/voxel"
)

func TestCanvasFillAndClear(t *testing.T) {
	c := NewCanvas(4, 3)
	white := render.Gray(1)

	c.FillRect(1, 1, 10, 10, white)
	if c.At(3, 2) != white || c.At(0, 0) != (render.RGB{}) {
		t.Errorf("fill did not clip to canvas bounds")
	}

	c.ClearRegion(-5, -5, 20, 20)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.At(x, y) != (render.RGB{}) {
				t.Fatalf("pixel (%d,%d) not cleared", x, y)
			}
		}
	}
}

func TestCanvasPlainRing(t *testing.T) {
	f, _ := voxel.New(1, 1)
	c := NewCanvas(0, 0)
	r, err := render.New(c, 1, 1)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	sc := scene.New(f, r, scene.Ring)
	if err := sc.Update(2); err != nil {
		t.Fatalf("update: %v", err)
	}

	if c.Width != 5 || c.Height != 5 {
		t.Fatalf("expected canvas resized to 5x5, got %dx%d", c.Width, c.Height)
	}

	want := []string{
		"  ██████  ",
		"██      ██",
		"██      ██",
		"██      ██",
		"  ██████  ",
	}
	got := strings.Split(strings.TrimSuffix(c.Plain(), "\n"), "\n")
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(2, 1)
	c.FillRect(0, 0, 1, 1, render.Gray(1))
	out := c.String()
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected one line, got %q", out)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		px   render.RGB
		want string
	}{
		{render.Gray(0), "#000000"},
		{render.Gray(1), "#ffffff"},
		{render.Gray(3), "#ffffff"},
		{render.RGB{R: 255}, "#ff0000"},
	}
	for _, tt := range tests {
		if got := hex(tt.px); got != tt.want {
			t.Errorf("hex(%v) = %s, expected %s", tt.px, got, tt.want)
		}
	}
}
