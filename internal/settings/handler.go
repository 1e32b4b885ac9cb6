package settings

// Control is a materialized declaration: a setting plus the event source that
// feeds it.
type Control interface {
	// Setting returns the value the control drives.
	Setting() *Setting
	// Change applies one raw input event, such as the text of a slider
	// position, and triggers the setting.
	Change(raw string) error
}

// Handler builds controls of one tag.
type Handler interface {
	Build(n Node) (Control, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(n Node) (Control, error)

// Build calls f(n).
func (f HandlerFunc) Build(n Node) (Control, error) { return f(n) }

// ChangeEvent is one external input aimed at a named control.
type ChangeEvent struct {
	Name string
	Raw  string
}
