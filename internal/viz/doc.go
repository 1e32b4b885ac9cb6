// Package viz provides the interactive terminal view of a scene.
//
// The view is a Bubble Tea program: the field is painted on a
// [surface.Canvas] and the declared sliders are listed beside it.
//
// # Key Bindings
//
//	←/→ h/l   - Nudge the focused slider
//	↑/↓ k/j   - Move focus between sliders
//	Enter     - Type a value for the focused slider
//	T         - Cycle color themes
//	P         - Toggle plain (glyph) rendering
//	Q         - Quit
package viz
