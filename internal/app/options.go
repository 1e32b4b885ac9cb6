// Package app shows a scene in an ebiten window.
package app

import (
	"github.com/san-kum/voxgeo/internal/scene"
	"github.com/san-kum/voxgeo/internal/settings"
)

// Options configures a window session.
type Options struct {
	Title      string
	Registry   *settings.Registry
	Driver     string
	Grid       scene.Grid
	Procedure  scene.Procedure
	CellWidth  int
	CellHeight int
}
