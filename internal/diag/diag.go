// Package diag collects structural emitter errors instead of aborting a
// translation run. A Sink accumulates Diagnostic values and forwards each
// to a structured logger; an Adapter builds the Diagnostic for a given
// unexpected AST shape and hands back the in-band sentinel the emitter
// splices into its output so translation can keep going.
package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"gryphon/internal/ast"
)

// Sentinel is the in-band failure marker the emitter substitutes for any
// subtree that violates its structural preconditions.
const Sentinel = "<<Error>>"

// RenderLimit bounds the pretty-printed offending-node rendering a
// Diagnostic carries.
const RenderLimit = 100

// Diagnostic is one structural-error report.
type Diagnostic struct {
	Message   string
	Rendering string
	Err       error
}

// Sink accumulates diagnostics produced during one translation run and
// forwards each to a structured logger, tagged with the run's id so
// concurrent translations sharing a process-wide logger stay attributable.
type Sink struct {
	RunID       string
	diagnostics []Diagnostic
	logger      *zap.SugaredLogger
}

// NewSink builds a Sink backed by logger. A nil logger disables logging
// but still accumulates diagnostics.
func NewSink(logger *zap.Logger) *Sink {
	s := &Sink{RunID: uuid.NewString()}
	if logger != nil {
		s.logger = logger.Sugar().With("run_id", s.RunID)
	}
	return s
}

// HandleError accumulates d and, if a logger is attached, emits it as a
// structured warning — the emitter itself never aborts on a structural
// error, it substitutes the sentinel and keeps going.
func (s *Sink) HandleError(d Diagnostic) {
	s.diagnostics = append(s.diagnostics, d)
	if s.logger != nil {
		s.logger.Warnw("structural diagnostic", "message", d.Message, "node", d.Rendering)
	}
}

// ClearDiagnostics resets accumulated diagnostics; a production caller
// must call this between independent runs sharing a Sink.
func (s *Sink) ClearDiagnostics() {
	s.diagnostics = nil
}

// HasDiagnostics reports whether any diagnostic has been accumulated.
func (s *Sink) HasDiagnostics() bool {
	return len(s.diagnostics) > 0
}

// Diagnostics returns the accumulated diagnostics in report order.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.diagnostics
}

// PrintDiagnostics writes every accumulated diagnostic to w, one per line.
func (s *Sink) PrintDiagnostics(w io.Writer) {
	for _, d := range s.diagnostics {
		fmt.Fprintf(w, "%s: %s\n", d.Message, d.Rendering)
	}
}

// Adapter constructs a structured error for an unexpected AST shape,
// forwards it to sink, and returns the sentinel so the caller can splice
// it into the emitted text and keep going.
type Adapter struct {
	Sink *Sink
}

// NewAdapter builds an Adapter reporting into sink.
func NewAdapter(sink *Sink) *Adapter {
	return &Adapter{Sink: sink}
}

// UnexpectedStructure reports a structural AST violation and returns the
// sentinel token.
func (a *Adapter) UnexpectedStructure(message string, offending any) string {
	rendering := renderTruncated(offending)
	err := errors.Newf("unexpected structure: %s (%s)", message, rendering)
	if a.Sink != nil {
		a.Sink.HandleError(Diagnostic{Message: message, Rendering: rendering, Err: err})
	}
	return Sentinel
}

// renderTruncated pretty-prints offending at RenderLimit columns. It only
// has to produce something legible for a diagnostic, not a faithful
// re-emission, so a %#v-style dump truncated to the horizontal limit is
// enough.
func renderTruncated(offending any) string {
	var s string
	switch v := offending.(type) {
	case ast.Statement:
		s = fmt.Sprintf("%#v", v)
	case ast.Expression:
		s = fmt.Sprintf("%#v", v)
	case nil:
		s = "<nil>"
	default:
		s = fmt.Sprintf("%v", v)
	}
	if len(s) > RenderLimit {
		s = s[:RenderLimit-1] + "…"
	}
	return strings.TrimSpace(s)
}
