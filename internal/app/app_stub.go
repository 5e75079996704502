//go:build !ebiten

package app

import (
	"mad-life/internal/core"
	"mad-life/internal/session"
)

// Run reports that the GUI host is unavailable in headless builds.
func Run(*session.State, Options) error {
	return core.ErrNoGUI
}
