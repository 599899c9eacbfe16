// Package telemetry records run progress using progrock.
package telemetry

import (
	"context"
	"io"
	"os"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/forge/internal/core/ports"
)

// Recorder implements ports.Telemetry backed by a progrock tape.
type Recorder struct {
	w      progrock.Writer
	rec    *progrock.Recorder
	render func() error
}

// New creates a new Recorder whose tape is rendered to stderr on Close.
func New() ports.Telemetry {
	return NewWithOutput(os.Stderr)
}

// NewWithOutput creates a new Recorder whose tape is rendered to out on Close.
func NewWithOutput(out io.Writer) *Recorder {
	tape := progrock.NewTape()
	r := NewRecorder(tape)
	r.render = func() error {
		return tape.Render(out, progrock.DefaultUI())
	}
	return r
}

// NewRecorder creates a new Recorder with the given writer. The recording is
// write-only; rendering is up to whoever owns the writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts recording a new vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	vertex := &Vertex{vertex: v}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close renders the recorded tape, then closes the underlying writer.
func (r *Recorder) Close() error {
	if r.render != nil {
		if err := r.render(); err != nil {
			return err
		}
	}
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns a writer capturing the standard output stream.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns a writer capturing the error output stream.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Complete marks the vertex as finished, successfully or with an error.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}
