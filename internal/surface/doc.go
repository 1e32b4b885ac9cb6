// Package surface provides drawing targets for render.Renderer.
//
//   - [Canvas]: in-memory pixel buffer printed to a terminal
//   - [Image]: raster image backed by gg, saved as PNG
//
// Window surfaces for raylib and ebiten live behind the raylib and ebiten
// build tags.
package surface
