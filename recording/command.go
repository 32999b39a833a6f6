package recording

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/sketch"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdClear          CommandType = iota // Clear the surface
	CmdSetColor                          // Set current color
	CmdSetPolygonMode                    // Set fill or line polygon mode
	CmdEnable                            // Enable a capability
	CmdDisable                           // Disable a capability
	CmdPushAttrib                        // Save enabled capabilities
	CmdPopAttrib                         // Restore enabled capabilities

	// Transform commands
	CmdPushMatrix // Save the modelview matrix
	CmdPopMatrix  // Restore the modelview matrix
	CmdTranslate  // Multiply by a translation
	CmdScale      // Multiply by a scale
	CmdRotate     // Multiply by a rotation

	// Drawing commands
	CmdDrawArrays   // Draw a vertex array
	CmdDrawElements // Draw indexed vertices
)

var commandTypeNames = [...]string{
	CmdClear:          "Clear",
	CmdSetColor:       "SetColor",
	CmdSetPolygonMode: "SetPolygonMode",
	CmdEnable:         "Enable",
	CmdDisable:        "Disable",
	CmdPushAttrib:     "PushAttrib",
	CmdPopAttrib:      "PopAttrib",
	CmdPushMatrix:     "PushMatrix",
	CmdPopMatrix:      "PopMatrix",
	CmdTranslate:      "Translate",
	CmdScale:          "Scale",
	CmdRotate:         "Rotate",
	CmdDrawArrays:     "DrawArrays",
	CmdDrawElements:   "DrawElements",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// VertexRef is a reference to a vertex array in the resource pool.
type VertexRef uint32

// IndexRef is a reference to an index array in the resource pool.
type IndexRef uint32

// InvalidRef marks an absent array, such as missing normals.
const InvalidRef = ^uint32(0)

// IsValid reports whether the reference points to a pooled array.
func (r VertexRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// IsValid reports whether the reference points to a pooled array.
func (r IndexRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// ClearCommand fills the surface with a color.
type ClearCommand struct {
	Color sketch.Color
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// SetColorCommand sets the current drawing color.
type SetColorCommand struct {
	Color sketch.Color
}

// Type implements Command.
func (SetColorCommand) Type() CommandType { return CmdSetColor }

// SetPolygonModeCommand selects fill or outline rendering.
type SetPolygonModeCommand struct {
	Mode sketch.PolygonMode
}

// Type implements Command.
func (SetPolygonModeCommand) Type() CommandType { return CmdSetPolygonMode }

// EnableCommand turns a capability on.
type EnableCommand struct {
	Cap sketch.Capability
}

// Type implements Command.
func (EnableCommand) Type() CommandType { return CmdEnable }

// DisableCommand turns a capability off.
type DisableCommand struct {
	Cap sketch.Capability
}

// Type implements Command.
func (DisableCommand) Type() CommandType { return CmdDisable }

// PushAttribCommand saves the enabled capabilities.
type PushAttribCommand struct{}

// Type implements Command.
func (PushAttribCommand) Type() CommandType { return CmdPushAttrib }

// PopAttribCommand restores the enabled capabilities.
type PopAttribCommand struct{}

// Type implements Command.
func (PopAttribCommand) Type() CommandType { return CmdPopAttrib }

// --------------------------------------------------------------------------
// Transform Commands
// --------------------------------------------------------------------------

// PushMatrixCommand saves the modelview matrix.
type PushMatrixCommand struct{}

// Type implements Command.
func (PushMatrixCommand) Type() CommandType { return CmdPushMatrix }

// PopMatrixCommand restores the modelview matrix.
type PopMatrixCommand struct{}

// Type implements Command.
func (PopMatrixCommand) Type() CommandType { return CmdPopMatrix }

// TranslateCommand multiplies the modelview matrix by a translation.
type TranslateCommand struct {
	X, Y, Z float64
}

// Type implements Command.
func (TranslateCommand) Type() CommandType { return CmdTranslate }

// ScaleCommand multiplies the modelview matrix by a scale.
type ScaleCommand struct {
	X, Y, Z float64
}

// Type implements Command.
func (ScaleCommand) Type() CommandType { return CmdScale }

// RotateCommand multiplies the modelview matrix by a rotation.
type RotateCommand struct {
	Angle float64
	Axis  mgl64.Vec3
}

// Type implements Command.
func (RotateCommand) Type() CommandType { return CmdRotate }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// DrawArraysCommand draws a pooled vertex array.
type DrawArraysCommand struct {
	Primitive sketch.Primitive
	Vertices  VertexRef
}

// Type implements Command.
func (DrawArraysCommand) Type() CommandType { return CmdDrawArrays }

// DrawElementsCommand draws pooled vertices through a pooled index array.
// Normals is InvalidRef when none were given.
type DrawElementsCommand struct {
	Primitive sketch.Primitive
	Vertices  VertexRef
	Normals   VertexRef
	Indices   IndexRef
}

// Type implements Command.
func (DrawElementsCommand) Type() CommandType { return CmdDrawElements }
