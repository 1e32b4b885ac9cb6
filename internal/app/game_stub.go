//go:build !ebiten

package app

import "errors"

// Run reports that the ebiten build tag is missing.
func Run(Options) error {
	return errors.New("app.Run requires building with the 'ebiten' tag")
}
