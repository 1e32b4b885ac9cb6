//go:build raylib

package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/voxgeo/internal/render"
	"github.com/san-kum/voxgeo/internal/scene"
)

var colBg = rl.NewColor(10, 10, 10, 255)

// Window is a raylib surface. Drawing calls are only valid between
// BeginDrawing and EndDrawing, so the run loop redraws every frame.
type Window struct {
	w, h int
}

// Open creates the window. It fails with render.ErrSurfaceUnavailable when
// raylib cannot create a GL context.
func Open(title string, w, h int) (*Window, error) {
	rl.InitWindow(int32(w), int32(h), title)
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("%w: raylib window", render.ErrSurfaceUnavailable)
	}
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
	return &Window{w: w, h: h}, nil
}

// Resize follows the field's pixel size.
func (win *Window) Resize(w, h int) {
	if w == win.w && h == win.h {
		return
	}
	win.w, win.h = w, h
	rl.SetWindowSize(w, h)
}

// ClearRegion paints the region with the background color.
func (win *Window) ClearRegion(x, y, w, h int) {
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), colBg)
}

// FillRect paints an opaque rectangle.
func (win *Window) FillRect(x, y, w, h int, c render.RGB) {
	r, g, b := c.Bytes()
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), rl.NewColor(r, g, b, 255))
}

// Close destroys the window.
func (win *Window) Close() {
	rl.CloseWindow()
}

// Run opens a window and drives the named slider with the arrow keys until
// the window is closed or Q is pressed.
func Run(opts Options) error {
	slider, err := opts.Registry.Slider(opts.Driver)
	if err != nil {
		return err
	}

	var win *Window
	renderer, err := render.Acquire(func() (render.Surface, error) {
		w, err := Open(opts.Title, 640, 640)
		if err != nil {
			return nil, err
		}
		win = w
		return w, nil
	}, opts.CellWidth, opts.CellHeight)
	if err != nil {
		return err
	}
	defer win.Close()

	sc := scene.New(opts.Grid, nil, opts.Procedure)
	if err := sc.Bind(opts.Registry, opts.Driver); err != nil {
		return err
	}

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyUp) {
			slider.Nudge(1)
		}
		if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyDown) {
			slider.Nudge(-1)
		}

		rl.BeginDrawing()
		rl.ClearBackground(colBg)
		renderer.Draw(opts.Grid)
		rl.DrawText(fmt.Sprintf("%s %s = %d", sc.Procedure().Name, opts.Driver, sc.Param()), 8, 8, 10, rl.Gray)
		rl.EndDrawing()
	}
	return sc.Err()
}
