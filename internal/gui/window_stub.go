//go:build !raylib

package gui

import "errors"

// Run reports that the raylib build tag is missing.
func Run(Options) error {
	return errors.New("gui.Run requires building with the 'raylib' tag")
}
