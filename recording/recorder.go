package recording

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/sketch"
)

// Recorder is a sketch.Device that captures calls as commands.
// Use FinishRecording to obtain an immutable Recording.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	s := sketch.New(rec)
//	_ = s.Line(0, 0, 100, 100)
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool

	// Stack depths, tracked so pops can fail the same way a real device's
	// would.
	matrixDepth int
	attribDepth int
}

var _ sketch.Device = (*Recorder)(nil)

// NewRecorder creates a Recorder for a surface of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 256),
		resources: NewResourcePool(),
	}
}

// Width returns the width of the recording surface.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording surface.
func (r *Recorder) Height() int {
	return r.height
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. The Recorder should not be used afterwards.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
}

// --------------------------------------------------------------------------
// sketch.Device
// --------------------------------------------------------------------------

// Clear implements sketch.Device.
func (r *Recorder) Clear(c sketch.Color) {
	r.commands = append(r.commands, ClearCommand{Color: c})
}

// SetColor implements sketch.Device.
func (r *Recorder) SetColor(c sketch.Color) {
	r.commands = append(r.commands, SetColorCommand{Color: c})
}

// SetPolygonMode implements sketch.Device.
func (r *Recorder) SetPolygonMode(m sketch.PolygonMode) {
	r.commands = append(r.commands, SetPolygonModeCommand{Mode: m})
}

// Enable implements sketch.Device.
func (r *Recorder) Enable(c sketch.Capability) {
	r.commands = append(r.commands, EnableCommand{Cap: c})
}

// Disable implements sketch.Device.
func (r *Recorder) Disable(c sketch.Capability) {
	r.commands = append(r.commands, DisableCommand{Cap: c})
}

// PushAttrib implements sketch.Device.
func (r *Recorder) PushAttrib() {
	r.attribDepth++
	r.commands = append(r.commands, PushAttribCommand{})
}

// PopAttrib implements sketch.Device. Popping an empty stack records
// nothing and returns sketch.ErrStackUnderflow.
func (r *Recorder) PopAttrib() error {
	if r.attribDepth == 0 {
		return fmt.Errorf("recording: PopAttrib: %w", sketch.ErrStackUnderflow)
	}
	r.attribDepth--
	r.commands = append(r.commands, PopAttribCommand{})
	return nil
}

// PushMatrix implements sketch.Device.
func (r *Recorder) PushMatrix() {
	r.matrixDepth++
	r.commands = append(r.commands, PushMatrixCommand{})
}

// PopMatrix implements sketch.Device. Popping an empty stack records
// nothing and returns sketch.ErrStackUnderflow.
func (r *Recorder) PopMatrix() error {
	if r.matrixDepth == 0 {
		return fmt.Errorf("recording: PopMatrix: %w", sketch.ErrStackUnderflow)
	}
	r.matrixDepth--
	r.commands = append(r.commands, PopMatrixCommand{})
	return nil
}

// Translate implements sketch.Device.
func (r *Recorder) Translate(x, y, z float64) {
	r.commands = append(r.commands, TranslateCommand{X: x, Y: y, Z: z})
}

// Scale implements sketch.Device.
func (r *Recorder) Scale(x, y, z float64) {
	r.commands = append(r.commands, ScaleCommand{X: x, Y: y, Z: z})
}

// Rotate implements sketch.Device.
func (r *Recorder) Rotate(angle float64, axis mgl64.Vec3) {
	r.commands = append(r.commands, RotateCommand{Angle: angle, Axis: axis})
}

// DrawArrays implements sketch.Device.
func (r *Recorder) DrawArrays(p sketch.Primitive, vertices []mgl64.Vec3) error {
	r.commands = append(r.commands, DrawArraysCommand{
		Primitive: p,
		Vertices:  r.resources.AddVertices(vertices),
	})
	return nil
}

// DrawElements implements sketch.Device. Indices are checked against the
// vertex count so a bad recording fails here rather than on playback.
func (r *Recorder) DrawElements(p sketch.Primitive, vertices, normals []mgl64.Vec3, indices []uint32) error {
	if normals != nil && len(normals) != len(vertices) {
		return fmt.Errorf("recording: DrawElements: %d normals for %d vertices", len(normals), len(vertices))
	}
	for i, ix := range indices {
		if int(ix) >= len(vertices) {
			return fmt.Errorf("recording: DrawElements: index %d at %d out of range [0, %d)", ix, i, len(vertices))
		}
	}
	r.commands = append(r.commands, DrawElementsCommand{
		Primitive: p,
		Vertices:  r.resources.AddVertices(vertices),
		Normals:   r.resources.AddVertices(normals),
		Indices:   r.resources.AddIndices(indices),
	})
	return nil
}

// --------------------------------------------------------------------------
// Recording
// --------------------------------------------------------------------------

// Recording is an immutable container for recorded commands.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording surface.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording surface.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Types returns the type of every recorded command, in order.
func (r *Recording) Types() []CommandType {
	types := make([]CommandType, len(r.commands))
	for i, c := range r.commands {
		types[i] = c.Type()
	}
	return types
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Playback replays the recording onto dev. It stops at the first failing
// command and reports its position.
func (r *Recording) Playback(dev sketch.Device) error {
	for i, cmd := range r.commands {
		var err error
		switch c := cmd.(type) {
		case ClearCommand:
			dev.Clear(c.Color)
		case SetColorCommand:
			dev.SetColor(c.Color)
		case SetPolygonModeCommand:
			dev.SetPolygonMode(c.Mode)
		case EnableCommand:
			dev.Enable(c.Cap)
		case DisableCommand:
			dev.Disable(c.Cap)
		case PushAttribCommand:
			dev.PushAttrib()
		case PopAttribCommand:
			err = dev.PopAttrib()
		case PushMatrixCommand:
			dev.PushMatrix()
		case PopMatrixCommand:
			err = dev.PopMatrix()
		case TranslateCommand:
			dev.Translate(c.X, c.Y, c.Z)
		case ScaleCommand:
			dev.Scale(c.X, c.Y, c.Z)
		case RotateCommand:
			dev.Rotate(c.Angle, c.Axis)
		case DrawArraysCommand:
			err = dev.DrawArrays(c.Primitive, r.resources.Vertices(c.Vertices))
		case DrawElementsCommand:
			err = dev.DrawElements(c.Primitive,
				r.resources.Vertices(c.Vertices),
				r.resources.Vertices(c.Normals),
				r.resources.Indices(c.Indices))
		default:
			err = fmt.Errorf("unknown command %T", cmd)
		}
		if err != nil {
			return fmt.Errorf("recording: playback command %d (%s): %w", i, cmd.Type(), err)
		}
	}
	return nil
}
