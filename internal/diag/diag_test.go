package diag

import (
	"strings"
	"testing"

	"gryphon/internal/ast"
)

func TestUnexpectedStructureReturnsSentinel(t *testing.T) {
	sink := NewSink(nil)
	adapter := NewAdapter(sink)

	got := adapter.UnexpectedStructure("call parameters must be a tuple", &ast.Extension{})
	if got != Sentinel {
		t.Fatalf("UnexpectedStructure() = %q, want sentinel", got)
	}
	if !sink.HasDiagnostics() {
		t.Fatal("expected the sink to accumulate a diagnostic")
	}
	if len(sink.Diagnostics()) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d", len(sink.Diagnostics()))
	}
}

func TestClearDiagnostics(t *testing.T) {
	sink := NewSink(nil)
	sink.HandleError(Diagnostic{Message: "x"})
	sink.ClearDiagnostics()
	if sink.HasDiagnostics() {
		t.Fatal("expected ClearDiagnostics to empty the sink")
	}
}

func TestPrintDiagnostics(t *testing.T) {
	sink := NewSink(nil)
	sink.HandleError(Diagnostic{Message: "bad thing", Rendering: "*ast.Extension"})

	var b strings.Builder
	sink.PrintDiagnostics(&b)
	if !strings.Contains(b.String(), "bad thing") {
		t.Fatalf("PrintDiagnostics output missing message: %q", b.String())
	}
}
