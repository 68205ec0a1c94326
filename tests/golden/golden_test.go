// Package golden runs every fixture pair in this directory: a YAML-encoded
// AST (the astio wire format) translated end to end and diffed against
// its sibling .golden file.
package golden

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gryphon/internal/astio"
	"gryphon/internal/diag"
	"gryphon/internal/emit"
	"gryphon/internal/registry"
)

func TestGoldenFixtures(t *testing.T) {
	entries, err := os.ReadDir(".")
	if err != nil {
		t.Fatalf("failed to read golden directory: %v", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		name := entry.Name()
		t.Run(name, func(t *testing.T) {
			runGoldenTest(t, name)
		})
	}
}

func runGoldenTest(t *testing.T, yamlName string) {
	t.Helper()

	input, err := os.ReadFile(yamlName)
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}

	goldenPath := strings.TrimSuffix(yamlName, ".yaml") + ".golden"
	want, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v", goldenPath, err)
	}

	tree, err := astio.DecodeYAML(input)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	ctx := registry.New()
	sink := diag.NewSink(nil)
	adapter := diag.NewAdapter(sink)
	e := emit.New(ctx, adapter)

	got := e.Translate(tree)
	if got != string(want) {
		t.Errorf("output mismatch for %s:\nwant:\n%s\ngot:\n%s", filepath.Base(yamlName), want, got)
	}
	if sink.HasDiagnostics() {
		t.Errorf("unexpected diagnostics for %s: %+v", yamlName, sink.Diagnostics())
	}
}
