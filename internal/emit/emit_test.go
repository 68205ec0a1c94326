package emit

import (
	"strings"
	"testing"

	"gryphon/internal/ast"
	"gryphon/internal/diag"
	"gryphon/internal/registry"
)

func newTestEmitter() *Emitter {
	ctx := registry.New()
	sink := diag.NewSink(nil)
	adapter := diag.NewAdapter(sink)
	return New(ctx, adapter)
}

// Scenario A — enum lowered as sealed class.
func TestEnumLoweredAsSealed(t *testing.T) {
	e := newTestEmitter()
	en := &ast.Enum{
		Name: "Color",
		Elements: []ast.EnumElement{
			{Name: "red"},
			{Name: "rgb", AssociatedValues: []ast.Param{
				{Label: "r", Type: "Int"},
				{Label: "g", Type: "Int"},
				{Label: "b", Type: "Int"},
			}},
		},
	}

	got := e.EmitStatement(en, "")

	for _, want := range []string{
		"sealed class Color {",
		"class Red: Color()",
		"class Rgb(val r: Int, val g: Int, val b: Int): Color()",
		"}",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q; got:\n%s", want, got)
		}
	}
}

// Scenario B — enum lowered as enum class.
func TestEnumLoweredAsEnumClass(t *testing.T) {
	e := newTestEmitter()
	e.Context.Registries.AddEnumClass("Direction")
	en := &ast.Enum{
		Name: "Direction",
		Elements: []ast.EnumElement{
			{Name: "north"},
			{Name: "south"},
		},
	}

	got := e.EmitStatement(en, "")

	if !strings.Contains(got, "enum class Direction {") {
		t.Fatalf("missing enum class header; got:\n%s", got)
	}
	if !strings.Contains(got, "\tnorth,\n\tsouth;\n") {
		t.Fatalf("missing element list; got:\n%s", got)
	}
	if !strings.HasSuffix(got, "}\n") {
		t.Fatalf("missing closing brace; got:\n%s", got)
	}
}

// Scenario C — struct lowered as data class.
func TestStructLoweredAsDataClass(t *testing.T) {
	e := newTestEmitter()
	s := &ast.Struct{
		Name: "Point",
		Members: []ast.Statement{
			&ast.VariableDeclaration{Name: "x", Type: "Int", IsLet: true},
			&ast.VariableDeclaration{Name: "y", Type: "Int", IsLet: true},
		},
	}

	got := e.EmitStatement(s, "")
	want := "data class Point(\n\tval x: Int,\n\tval y: Int\n)\n"
	if got != want {
		t.Fatalf("got:\n%q\nwant:\n%q", got, want)
	}
}

// Scenario D — switch-to-when with a range case.
func TestSwitchRangeCase(t *testing.T) {
	e := newTestEmitter()
	subject := &ast.DeclarationReference{Identifier: "n"}
	sw := &ast.Switch{
		Subject: subject,
		Cases: []ast.SwitchCase{
			{
				Expressions: []ast.Expression{
					&ast.BinaryOperator{
						LHS: &ast.Template{Pattern: "1..10"},
						Op:  "~=",
					},
				},
				Statements: []ast.Statement{
					&ast.ExpressionStatement{Expr: &ast.LiteralString{Value: "low"}},
				},
			},
		},
	}

	got := e.EmitStatement(sw, "")
	if !strings.Contains(got, "when (n) {") {
		t.Fatalf("missing when header; got:\n%s", got)
	}
	if !strings.Contains(got, "in 1..10 -> ") {
		t.Fatalf("missing range case; got:\n%s", got)
	}
}

// Scenario E — trailing closure elides the parenthesised argument list.
func TestCallTrailingClosure(t *testing.T) {
	e := newTestEmitter()
	call := &ast.Call{
		Function: &ast.Dot{
			LHS: &ast.DeclarationReference{Identifier: "list"},
			RHS: &ast.DeclarationReference{Identifier: "map"},
		},
		Parameters: &ast.Tuple{
			Pairs: []ast.TupleEntry{{Expr: &ast.Closure{
				Parameters: []ast.ClosureParam{{Label: "x"}},
				Statements: []ast.Statement{
					&ast.ExpressionStatement{Expr: &ast.BinaryOperator{
						LHS: &ast.DeclarationReference{Identifier: "x"},
						RHS: &ast.LiteralInt{Value: 1},
						Op:  "+",
					}},
				},
			}}},
		},
	}

	got := e.EmitExpression(call, "")
	want := "list.map { x -> x + 1 }"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// Scenario F — a function header at or beyond the column limit re-emits
// with one parameter per line.
func TestFunctionHeaderLineWrap(t *testing.T) {
	e := newTestEmitter()
	fn := &ast.FunctionDeclaration{
		Prefix: "processEverythingWithManyArgumentsThatMakesThisHeaderDefinitelyTooLong",
		Parameters: []ast.Param{
			{Label: "firstArgument", Type: "String"},
			{Label: "secondArgument", Type: "Int"},
			{Label: "thirdArgument", Type: "Double"},
		},
		ReturnType: "Bool",
	}

	got := e.EmitStatement(fn, "")
	lines := strings.Split(got, "\n")

	if !strings.Contains(got, "(\n") {
		t.Fatalf("expected wrapped header; got:\n%s", got)
	}
	for _, l := range lines {
		if strings.HasPrefix(strings.TrimSpace(l), "firstArgument") && !strings.HasPrefix(l, "\t") {
			t.Fatalf("parameter line not indented: %q", l)
		}
	}
	if !strings.Contains(got, "\n)") {
		t.Fatalf("expected closing paren on its own line; got:\n%s", got)
	}
}

func TestImportErased(t *testing.T) {
	e := newTestEmitter()
	if got := e.EmitStatement(&ast.Import{}, ""); got != "" {
		t.Fatalf("emit(Import) = %q, want empty", got)
	}
}

func TestImplicitDeclarationsErased(t *testing.T) {
	e := newTestEmitter()
	if got := e.EmitStatement(&ast.VariableDeclaration{Implicit: true}, ""); got != "" {
		t.Fatalf("implicit var emitted %q, want empty", got)
	}
	if got := e.EmitStatement(&ast.FunctionDeclaration{IsImplicit: true}, ""); got != "" {
		t.Fatalf("implicit function emitted %q, want empty", got)
	}
}

func TestCommentsNeverSeparatedByBlankLines(t *testing.T) {
	e := newTestEmitter()
	stmts := []ast.Statement{
		&ast.Comment{Text: " one"},
		&ast.Comment{Text: " two"},
		&ast.Comment{Text: " three"},
		&ast.Comment{Text: " four"},
	}
	got := e.EmitBlock(stmts, "")
	if strings.Contains(got, "\n\n") {
		t.Fatalf("blank line inserted between comments:\n%s", got)
	}
}

func TestShortSequenceNeverGetsBlankLines(t *testing.T) {
	e := newTestEmitter()
	stmts := []ast.Statement{
		&ast.Throw{Expr: &ast.LiteralString{Value: "a"}},
		&ast.Throw{Expr: &ast.LiteralString{Value: "b"}},
		&ast.Throw{Expr: &ast.LiteralString{Value: "c"}},
	}
	if len(stmts) > limitForAddingNewlines {
		t.Fatalf("test fixture must stay at or under the threshold")
	}
	got := e.EmitBlock(stmts, "")
	if strings.Contains(got, "\n\n") {
		t.Fatalf("blank line inserted under the threshold:\n%s", got)
	}
}

func TestTupleShuffleLengthMismatchYieldsSentinel(t *testing.T) {
	e := newTestEmitter()
	shuffle := &ast.TupleShuffle{
		Labels:  []string{"a", "b"},
		Indices: []ast.TupleShuffleIndex{{Kind: ast.ShufflePresent}},
	}
	got := e.EmitExpression(shuffle, "")
	if got != diag.Sentinel {
		t.Fatalf("got %q, want sentinel", got)
	}
	if !e.Diag.Sink.HasDiagnostics() {
		t.Fatal("expected a diagnostic to be recorded")
	}
}

func TestTranslateWrapsTopLevelStatementsInMain(t *testing.T) {
	e := newTestEmitter()
	tree := &ast.GryphonAST{
		Statements: []ast.Statement{
			&ast.ExpressionStatement{Expr: &ast.Call{
				Function:   &ast.DeclarationReference{Identifier: "run"},
				Parameters: &ast.Tuple{},
			}},
		},
	}
	got := e.Translate(tree)
	if !strings.Contains(got, "fun main(args: Array<String>) {") {
		t.Fatalf("missing synthetic main; got:\n%s", got)
	}
}
