package sketch

import "errors"

var (
	// ErrInvalidEllipseMode is returned by SetEllipseMode for a mode other
	// than Center, Radius, Corner or Corners.
	ErrInvalidEllipseMode = errors.New("sketch: invalid ellipse mode")

	// ErrInvalidDetail is returned when an ellipse or sphere detail would
	// produce a degenerate mesh.
	ErrInvalidDetail = errors.New("sketch: invalid detail")

	// ErrStackUnderflow is returned by devices when PopMatrix or PopAttrib
	// is called on an empty stack.
	ErrStackUnderflow = errors.New("sketch: stack underflow")

	// ErrUnknownDevice is returned by OpenDevice for an unregistered name.
	ErrUnknownDevice = errors.New("sketch: unknown device")
)
