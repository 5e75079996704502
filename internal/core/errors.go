package core

import "errors"

// Errors reported at the host boundary. The simulation itself never fails.
var (
	// ErrNoGUI indicates the binary was built without the ebiten tag.
	ErrNoGUI = errors.New("core: GUI host requires building with the 'ebiten' tag")

	// ErrUnknownPattern indicates a seed pattern name that is not registered.
	ErrUnknownPattern = errors.New("core: unknown seed pattern")

	// ErrInvalidColor indicates a colour string that is not a #rrggbb hex value.
	ErrInvalidColor = errors.New("core: invalid colour")

	// ErrInvalidConfig indicates a configuration value outside its valid range.
	ErrInvalidConfig = errors.New("core: invalid configuration")
)
