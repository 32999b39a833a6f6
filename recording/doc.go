// Package recording provides a sketch.Device that records draw calls.
//
// Every device call becomes a typed command. A finished Recording is
// immutable and can be inspected or played back onto another device, which
// makes it useful for tests, for capturing a frame once and rendering it to
// several targets, and for debugging what a sketch actually asked for.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(400, 400)
//	s := sketch.New(rec)
//	_ = s.Ellipse(200, 200, 100, 100)
//
//	r := rec.FinishRecording()
//	for _, cmd := range r.Commands() {
//	    fmt.Println(cmd.Type())
//	}
//
//	// Render the same frame in software.
//	_ = r.Playback(raster.New(400, 400))
//
// # Resource Pooling
//
// Vertex and index arrays are copied into a ResourcePool and referenced by
// VertexRef and IndexRef. Passing the same slice with the same contents
// twice, as the fill and outline passes of a shape do, stores it once.
//
// # Thread Safety
//
// Recorder is not safe for concurrent use. A Recording may be played back
// from several goroutines at once.
package recording

import "github.com/gogpu/sketch"

func init() {
	sketch.RegisterDevice("recording", func(width, height int) (sketch.Device, error) {
		return NewRecorder(width, height), nil
	})
}
