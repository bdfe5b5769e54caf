package canvas

import "errors"

// Sentinel errors for canvas operations.
var (
	// ErrBadSize indicates a requested canvas dimension below 1.
	ErrBadSize = errors.New("canvas: width and height must be at least 1")
	// ErrOutOfRange indicates a pixel coordinate outside the canvas.
	ErrOutOfRange = errors.New("canvas: pixel coordinate out of range")
	// ErrBadScale indicates a preview scale factor below 1.
	ErrBadScale = errors.New("canvas: scale factor must be at least 1")
)
