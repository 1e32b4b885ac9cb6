package settings

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// KindSlider is the tag and setting kind of slider controls.
const KindSlider = "slider"

// Slider is an integer range control.
type Slider struct {
	min, max, step float64
	setting        *Setting
}

// NewSlider builds a slider from a declaration. Attributes: min (default 0),
// max (default 100), value (default min), step (default 1). The initial value
// is truncated and clamped like any later input.
func NewSlider(n Node) (Control, error) {
	lo, err := n.Float("min", 0)
	if err != nil {
		return nil, err
	}
	hi, err := n.Float("max", 100)
	if err != nil {
		return nil, err
	}
	if hi < lo {
		return nil, fmt.Errorf("%w: max %g below min %g", ErrInvalidControl, hi, lo)
	}
	value, err := n.Float("value", lo)
	if err != nil {
		return nil, err
	}
	step, err := n.Float("step", 1)
	if err != nil {
		return nil, err
	}
	if step <= 0 {
		step = 1
	}
	s := &Slider{min: lo, max: hi, step: step}
	s.setting = NewSetting(KindSlider, s.clamp(math.Trunc(value)))
	return s, nil
}

// Setting returns the slider's value.
func (s *Slider) Setting() *Setting { return s.setting }

// Min returns the lower bound.
func (s *Slider) Min() float64 { return s.min }

// Max returns the upper bound.
func (s *Slider) Max() float64 { return s.max }

// Step returns the nudge increment.
func (s *Slider) Step() float64 { return s.step }

// Change parses raw as a number, truncates it to an integer, clamps it to
// [min, max] and triggers the setting.
func (s *Slider) Change(raw string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) {
		return fmt.Errorf("slider: invalid input %q", raw)
	}
	s.setting.Trigger(s.clamp(math.Trunc(v)))
	return nil
}

// Nudge moves the slider by dir steps. It reports whether the value changed;
// subscribers are only notified when it did.
func (s *Slider) Nudge(dir int) bool {
	cur := s.setting.Value()
	if IsUnset(cur) {
		cur = s.min
	}
	target := s.clamp(math.Trunc(cur + float64(dir)*s.step))
	if target == s.setting.Value() {
		return false
	}
	s.setting.Trigger(target)
	return true
}

func (s *Slider) clamp(v float64) float64 {
	if v < s.min {
		return s.min
	}
	if v > s.max {
		return s.max
	}
	return v
}
