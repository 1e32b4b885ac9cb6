package settings

import (
	"math"
	"slices"
)

// Subscriber receives the new value of a setting.
type Subscriber func(v float64)

// Unset is the value of a setting that was never given one. Subscribers
// replayed on such a setting receive it; test with IsUnset.
var Unset = math.NaN()

// IsUnset reports whether v is the Unset sentinel.
func IsUnset(v float64) bool { return math.IsNaN(v) }

// Setting is a single observable value.
type Setting struct {
	kind  string
	value float64
	subs  []Subscriber
}

// NewSetting returns a setting of the given kind holding initial.
func NewSetting(kind string, initial float64) *Setting {
	return &Setting{kind: kind, value: initial}
}

// Kind returns the control tag that produced the setting.
func (s *Setting) Kind() string { return s.kind }

// Value returns the current value, which may be Unset.
func (s *Setting) Value() float64 { return s.value }

// Subscribers returns the number of registered subscribers.
func (s *Setting) Subscribers() int { return len(s.subs) }

type subscribeOptions struct {
	replay bool
}

// SubscribeOption adjusts a single subscription.
type SubscribeOption func(*subscribeOptions)

// NoReplay skips the immediate delivery of the current value.
func NoReplay() SubscribeOption {
	return func(o *subscribeOptions) { o.replay = false }
}

// Subscribe appends fn to the subscriber list. Unless NoReplay is given, fn
// is called once with the current value before Subscribe returns.
func (s *Setting) Subscribe(fn Subscriber, opts ...SubscribeOption) {
	o := subscribeOptions{replay: true}
	for _, opt := range opts {
		opt(&o)
	}
	s.subs = append(s.subs, fn)
	if o.replay {
		fn(s.value)
	}
}

// Trigger stores v and calls every subscriber in registration order.
// Subscribers added while the notification runs are not called for v.
func (s *Setting) Trigger(v float64) {
	s.value = v
	for _, fn := range slices.Clip(s.subs) {
		fn(v)
	}
}
