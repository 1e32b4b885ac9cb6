package surface

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/voxgeo/internal/render"
	"github.com/san-kum/voxgeo/internal/scene"
	"github.com/san-kum/voxgeo/internal/voxel"
)

func TestImageRing(t *testing.T) {
	img, err := NewImage(10, 10)
	if err != nil {
		t.Fatalf("new image: %v", err)
	}
	defer img.Close()

	r, _ := render.New(img, render.DefaultCellWidth, render.DefaultCellHeight)
	f, _ := voxel.New(1, 1)
	if err := scene.New(f, r, scene.Ring).Update(1); err != nil {
		t.Fatalf("update: %v", err)
	}

	bounds := img.Image().Bounds()
	if bounds.Dx() != 30 || bounds.Dy() != 30 {
		t.Fatalf("expected 30x30 image, got %v", bounds)
	}

	lit, _, _, _ := img.Image().At(15, 5).RGBA()
	if lit>>8 != 255 {
		t.Errorf("expected top-center cell white, got %d", lit>>8)
	}
	dark, _, _, _ := img.Image().At(15, 15).RGBA()
	if dark>>8 != 0 {
		t.Errorf("expected center cell black, got %d", dark>>8)
	}

	path := filepath.Join(t.TempDir(), "ring.png")
	if err := img.SavePNG(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("png not written: %v", err)
	}
}

func TestImageInvalidSize(t *testing.T) {
	if _, err := NewImage(0, 10); !errors.Is(err, render.ErrSurfaceUnavailable) {
		t.Errorf("expected ErrSurfaceUnavailable, got %v", err)
	}
}
