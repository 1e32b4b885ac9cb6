//go:build ebiten

package app

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/san-kum/voxgeo/internal/render"
	"github.com/san-kum/voxgeo/internal/scene"
	"github.com/san-kum/voxgeo/internal/settings"
)

// Screen adapts the frame's ebiten image to render.Surface. The image is
// swapped in by Game.Draw before every frame.
type Screen struct {
	img  *ebiten.Image
	w, h int
}

// Resize follows the field's pixel size.
func (s *Screen) Resize(w, h int) {
	if w == s.w && h == s.h {
		return
	}
	s.w, s.h = w, h
	ebiten.SetWindowSize(w, h)
}

// ClearRegion makes the region transparent.
func (s *Screen) ClearRegion(x, y, w, h int) {
	if s.img == nil {
		return
	}
	s.img.SubImage(image.Rect(x, y, x+w, y+h)).(*ebiten.Image).Clear()
}

// FillRect paints an opaque rectangle.
func (s *Screen) FillRect(x, y, w, h int, c render.RGB) {
	if s.img == nil {
		return
	}
	r, g, b := c.Bytes()
	s.img.SubImage(image.Rect(x, y, x+w, y+h)).(*ebiten.Image).Fill(color.RGBA{R: r, G: g, B: b, A: 255})
}

// Game adapts a scene to the ebiten.Game interface.
type Game struct {
	scene    *scene.Scene
	slider   *settings.Slider
	grid     scene.Grid
	screen   *Screen
	renderer *render.Renderer
}

// New binds the scene to the driving slider and prepares the renderer.
func New(opts Options) (*Game, error) {
	slider, err := opts.Registry.Slider(opts.Driver)
	if err != nil {
		return nil, err
	}
	screen := &Screen{}
	renderer, err := render.New(screen, opts.CellWidth, opts.CellHeight)
	if err != nil {
		return nil, err
	}
	sc := scene.New(opts.Grid, nil, opts.Procedure)
	if err := sc.Bind(opts.Registry, opts.Driver); err != nil {
		return nil, err
	}
	return &Game{scene: sc, slider: slider, grid: opts.Grid, screen: screen, renderer: renderer}, nil
}

// Update handles key input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.slider.Nudge(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.slider.Nudge(-1)
	}
	return g.scene.Err()
}

// Draw renders the current field.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.img = screen
	g.renderer.Draw(g.grid)
}

// Layout returns the logical screen size.
func (g *Game) Layout(int, int) (int, int) {
	return g.renderer.PixelSize(g.grid)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	game, err := New(opts)
	if err != nil {
		return err
	}
	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
