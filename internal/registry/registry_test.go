package registry

import "testing"

func TestRegistriesLookup(t *testing.T) {
	r := &Registries{}
	r.AddSealedClass("Color")
	r.AddEnumClass("Direction")
	r.AddProtocol("Codable")
	r.AddFunctionTranslation(FunctionTranslation{
		SourceAPIName: "f(_:_:)",
		Prefix:        "f",
		Parameters:    []string{"a", "b"},
	})

	if !r.IsSealedClass("Color") {
		t.Fatal("expected Color to be a sealed class")
	}
	if !r.IsEnumClass("Direction") {
		t.Fatal("expected Direction to be an enum class")
	}
	if !r.IsProtocol("Codable") {
		t.Fatal("expected Codable to be a protocol")
	}

	tr, ok := r.LookupFunctionTranslation("f")
	if !ok {
		t.Fatal("expected prefix-match lookup to find f(_:_:)")
	}
	if tr.Prefix != "f" || len(tr.Parameters) != 2 {
		t.Fatalf("unexpected translation: %+v", tr)
	}
}

func TestLookupFirstMatchWins(t *testing.T) {
	r := &Registries{}
	r.AddFunctionTranslation(FunctionTranslation{SourceAPIName: "f(_:)", Prefix: "first"})
	r.AddFunctionTranslation(FunctionTranslation{SourceAPIName: "f(_:_:)", Prefix: "second"})

	tr, ok := r.LookupFunctionTranslation("f")
	if !ok || tr.Prefix != "first" {
		t.Fatalf("expected first registered match to win, got %+v", tr)
	}
}

func TestNewContextHasRunID(t *testing.T) {
	ctx := New()
	if ctx.RunID == "" {
		t.Fatal("expected New() to stamp a run id")
	}
	deeper := ctx.WithIndent("\t")
	if deeper.Indent != "\t" {
		t.Fatalf("WithIndent did not set indent: %q", deeper.Indent)
	}
	if ctx.Indent != "" {
		t.Fatal("WithIndent must not mutate the original context")
	}
}
