package settings

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Registry owns the named settings of a session.
type Registry struct {
	settings map[string]*Setting
	controls map[string]Control
	handlers map[string]Handler
}

// NewRegistry returns an empty registry that recognizes sliders.
func NewRegistry() *Registry {
	r := &Registry{
		settings: make(map[string]*Setting),
		controls: make(map[string]Control),
		handlers: make(map[string]Handler),
	}
	r.RegisterHandler(KindSlider, HandlerFunc(NewSlider))
	return r
}

// RegisterHandler installs h for tag. Tags are case-insensitive.
func (r *Registry) RegisterHandler(tag string, h Handler) {
	if tag == "" || h == nil {
		return
	}
	r.handlers[strings.ToLower(tag)] = h
}

// Discover walks the direct children of every root and registers a control
// for each recognized tag. Unrecognized tags are skipped. Every declaration is
// built before any is registered, so a failed discovery leaves the registry
// unchanged. Running it again registers again; the last control under a name
// wins.
func (r *Registry) Discover(roots []Node) error {
	type built struct {
		name string
		c    Control
	}
	var found []built
	for _, root := range roots {
		for _, n := range root.Children {
			tag := strings.ToLower(n.Tag)
			h, ok := r.handlers[tag]
			if !ok {
				Logger().Debug("settings: skipping unrecognized control", "tag", n.Tag, "name", n.Name)
				continue
			}
			if n.Name == "" {
				return &ControlError{Tag: tag, Wrapped: fmt.Errorf("%w: missing name", ErrInvalidControl)}
			}
			c, err := h.Build(n)
			if err != nil {
				return &ControlError{Tag: tag, Name: n.Name, Wrapped: err}
			}
			found = append(found, built{name: n.Name, c: c})
		}
	}
	for _, b := range found {
		r.Register(b.name, b.c)
	}
	Logger().Info("settings: discovery complete", "controls", len(found), "registered", len(r.settings))
	return nil
}

// Register binds c under name, replacing any previous control.
func (r *Registry) Register(name string, c Control) {
	if c == nil || c.Setting() == nil {
		return
	}
	r.controls[name] = c
	r.settings[name] = c.Setting()
}

// Setting returns the named setting.
func (r *Registry) Setting(name string) (*Setting, bool) {
	s, ok := r.settings[name]
	return s, ok
}

// Control returns the control bound to name.
func (r *Registry) Control(name string) (Control, bool) {
	c, ok := r.controls[name]
	return c, ok
}

// Slider returns the slider bound to name.
func (r *Registry) Slider(name string) (*Slider, error) {
	c, ok := r.controls[name]
	if !ok {
		return nil, unknown(name)
	}
	s, ok := c.(*Slider)
	if !ok {
		return nil, fmt.Errorf("settings: %s is a %s, not a slider", name, c.Setting().Kind())
	}
	return s, nil
}

// Names lists the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.settings))
	for name := range r.settings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Subscribe attaches fn to the named setting. See Setting.Subscribe.
func (r *Registry) Subscribe(name string, fn Subscriber, opts ...SubscribeOption) error {
	s, ok := r.settings[name]
	if !ok {
		return unknown(name)
	}
	s.Subscribe(fn, opts...)
	return nil
}

// Trigger sets the named setting directly, bypassing its control.
func (r *Registry) Trigger(name string, v float64) error {
	s, ok := r.settings[name]
	if !ok {
		return unknown(name)
	}
	s.Trigger(v)
	return nil
}

// Dispatch delivers one external input event to its control.
func (r *Registry) Dispatch(ev ChangeEvent) error {
	c, ok := r.controls[ev.Name]
	if !ok {
		return unknown(ev.Name)
	}
	return c.Change(ev.Raw)
}

// Pump dispatches events until the channel is closed or ctx is done. Events
// that fail to apply are logged and dropped.
func (r *Registry) Pump(ctx context.Context, events <-chan ChangeEvent) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := r.Dispatch(ev); err != nil {
				Logger().Warn("settings: dropped input event", "name", ev.Name, "raw", ev.Raw, "err", err)
			}
		}
	}
}
