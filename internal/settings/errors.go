package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSetting indicates a lookup of a name that was never registered.
	ErrUnknownSetting = errors.New("settings: unknown setting")

	// ErrInvalidControl indicates a declaration a handler could not build.
	ErrInvalidControl = errors.New("settings: invalid control declaration")
)

// ControlError wraps a discovery failure with the declaration it came from.
type ControlError struct {
	Tag     string
	Name    string
	Wrapped error
}

func (e *ControlError) Error() string {
	return fmt.Sprintf("settings: %s %q: %v", e.Tag, e.Name, e.Wrapped)
}

func (e *ControlError) Unwrap() error {
	return e.Wrapped
}

func unknown(name string) error {
	return fmt.Errorf("%w: %s", ErrUnknownSetting, name)
}
