package render

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/san-kum/voxgeo/internal/voxel"
)

type recordingSurface struct {
	calls   []string
	resized [2]int
}

func (s *recordingSurface) ClearRegion(x, y, w, h int) {
	s.calls = append(s.calls, fmt.Sprintf("clear %d,%d %dx%d", x, y, w, h))
}

func (s *recordingSurface) FillRect(x, y, w, h int, c RGB) {
	s.calls = append(s.calls, fmt.Sprintf("fill %d,%d %dx%d %g", x, y, w, h, c.R))
}

func (s *recordingSurface) Resize(w, h int) { s.resized = [2]int{w, h} }

func TestDraw(t *testing.T) {
	f, _ := voxel.New(2, 2)
	_ = f.Set(1, 0, 1)
	_ = f.Set(0, 1, 0.5)

	s := &recordingSurface{}
	r, err := New(s, 10, 5)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	r.Draw(f)

	want := []string{
		"clear 0,0 20x10",
		"fill 0,0 10x5 0",
		"fill 10,0 10x5 255",
		"fill 0,5 10x5 127.5",
		"fill 10,5 10x5 0",
	}
	if diff := cmp.Diff(want, s.calls); diff != "" {
		t.Errorf("draw calls mismatch (-want +got):\n%s", diff)
	}
	if s.resized != [2]int{20, 10} {
		t.Errorf("expected resize to 20x10, got %v", s.resized)
	}
	if r.Draws() != 1 {
		t.Errorf("expected 1 draw, got %d", r.Draws())
	}
}

func TestGrayIsNotClamped(t *testing.T) {
	if c := Gray(2); c.R != 510 {
		t.Errorf("expected 510, got %f", c.R)
	}
	r, g, b := Gray(2).Bytes()
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("expected device bytes clamped to 255, got %d %d %d", r, g, b)
	}
	if r, _, _ := Gray(-1).Bytes(); r != 0 {
		t.Errorf("expected negative clamped to 0, got %d", r)
	}
}

func TestSurfaceUnavailable(t *testing.T) {
	if _, err := New(nil, 10, 10); !errors.Is(err, ErrSurfaceUnavailable) {
		t.Errorf("expected ErrSurfaceUnavailable, got %v", err)
	}

	_, err := Acquire(func() (Surface, error) { return nil, errors.New("no display") }, 10, 10)
	if !errors.Is(err, ErrSurfaceUnavailable) {
		t.Errorf("expected ErrSurfaceUnavailable, got %v", err)
	}

	var typedNil *recordingSurface
	if r, err := New(typedNil, 10, 10); !errors.Is(err, ErrSurfaceUnavailable) || r != nil {
		t.Errorf("typed nil surface: expected ErrSurfaceUnavailable, got %v", err)
	}
	_, err = Acquire(func() (Surface, error) { return typedNil, nil }, 10, 10)
	if !errors.Is(err, ErrSurfaceUnavailable) {
		t.Errorf("acquire typed nil: expected ErrSurfaceUnavailable, got %v", err)
	}

	if _, err := New(&recordingSurface{}, 0, 10); err == nil {
		t.Error("expected error for zero cell width")
	}
}
