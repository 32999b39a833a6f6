package sketch

import (
	"fmt"
	"strings"
)

// EllipseMode controls how Ellipse interprets its four arguments.
type EllipseMode uint8

const (
	// Center: x, y is the center; w, h are the diameters.
	Center EllipseMode = iota
	// Radius: x, y is the center; w, h are the radii.
	Radius
	// Corner: x, y is the top-left corner; w, h are the diameters.
	Corner
	// Corners: x, y is one corner; w, h is the opposite corner.
	Corners
)

var ellipseModeNames = [...]string{
	Center:  "center",
	Radius:  "radius",
	Corner:  "corner",
	Corners: "corners",
}

// String returns the lower-case mode name.
func (m EllipseMode) String() string {
	if m.Valid() {
		return ellipseModeNames[m]
	}
	return fmt.Sprintf("EllipseMode(%d)", uint8(m))
}

// Valid reports whether m is one of the four defined modes.
func (m EllipseMode) Valid() bool {
	return int(m) < len(ellipseModeNames)
}

// ParseEllipseMode parses a mode name, ignoring case.
func ParseEllipseMode(s string) (EllipseMode, error) {
	for i, name := range ellipseModeNames {
		if strings.EqualFold(s, name) {
			return EllipseMode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidEllipseMode, s)
}
