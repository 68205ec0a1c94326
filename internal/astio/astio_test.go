package astio

import (
	"bytes"
	"testing"

	"gryphon/internal/ast"
)

func sampleTree() *ast.GryphonAST {
	return &ast.GryphonAST{
		Declarations: []ast.Statement{
			&ast.Struct{
				Name: "Point",
				Members: []ast.Statement{
					&ast.VariableDeclaration{Name: "x", Type: "Int", IsLet: true},
					&ast.VariableDeclaration{Name: "y", Type: "Int", IsLet: true},
				},
			},
			&ast.Enum{
				Name: "Color",
				Elements: []ast.EnumElement{
					{Name: "red"},
					{Name: "rgb", AssociatedValues: []ast.Param{
						{Label: "r", Type: "Int"},
					}},
				},
			},
			&ast.FunctionDeclaration{
				Prefix: "add",
				Parameters: []ast.Param{
					{Label: "a", Type: "Int"},
					{Label: "b", Type: "Int", DefaultValue: &ast.LiteralInt{Value: 1}},
				},
				ReturnType: "Int",
				Statements: []ast.Statement{
					&ast.Return{Expr: &ast.BinaryOperator{
						LHS: &ast.DeclarationReference{Identifier: "a"},
						RHS: &ast.DeclarationReference{Identifier: "b"},
						Op:  "+",
					}},
				},
			},
		},
		Statements: []ast.Statement{
			&ast.ExpressionStatement{Expr: &ast.Call{
				Function: &ast.Dot{
					LHS: &ast.DeclarationReference{Identifier: "list"},
					RHS: &ast.DeclarationReference{Identifier: "map"},
				},
				Parameters: &ast.Tuple{
					Pairs: []ast.TupleEntry{{Expr: &ast.Closure{
						Parameters: []ast.ClosureParam{{Label: "x"}},
						Statements: []ast.Statement{
							&ast.ExpressionStatement{Expr: &ast.DeclarationReference{Identifier: "x"}},
						},
					}}},
				},
			}},
			&ast.If{
				Conditions: []ast.IfCondition{{
					Kind:      ast.IfConditionPlain,
					Condition: &ast.LiteralBool{Value: true},
				}},
				Statements: []ast.Statement{&ast.Break{}},
			},
			&ast.Switch{
				Subject: &ast.DeclarationReference{Identifier: "n"},
				Cases: []ast.SwitchCase{
					{
						Expressions: []ast.Expression{&ast.LiteralInt{Value: 1}},
						Statements:  []ast.Statement{&ast.Continue{}},
					},
				},
			},
		},
	}
}

// The round trip is checked by re-encoding the decoded tree and comparing
// bytes rather than by deep-equating Go values: a field that starts out nil
// (an absent, not empty, associated-values list) comes back as a non-nil
// empty slice once it has passed through JSON/YAML, which is a faithful
// round trip even though it would fail reflect.DeepEqual.
func TestJSONRoundTrip(t *testing.T) {
	tree := sampleTree()
	data, err := EncodeJSON(tree)
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}
	got, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	again, err := EncodeJSON(got)
	if err != nil {
		t.Fatalf("re-EncodeJSON: %v", err)
	}
	if !bytes.Equal(data, again) {
		t.Fatalf("round trip mismatch\nfirst:  %s\nsecond: %s", data, again)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	tree := sampleTree()
	data, err := EncodeYAML(tree)
	if err != nil {
		t.Fatalf("EncodeYAML: %v", err)
	}
	got, err := DecodeYAML(data)
	if err != nil {
		t.Fatalf("DecodeYAML: %v", err)
	}
	again, err := EncodeYAML(got)
	if err != nil {
		t.Fatalf("re-EncodeYAML: %v", err)
	}
	if !bytes.Equal(data, again) {
		t.Fatalf("round trip mismatch\nfirst:  %s\nsecond: %s", data, again)
	}
}

func TestDecodeJSONUnknownKindErrors(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"declarations":[{"kind":"NotARealKind"}]}`))
	if err == nil {
		t.Fatal("expected an error for an unknown statement kind")
	}
}

func TestEmptyTreeRoundTrips(t *testing.T) {
	tree := &ast.GryphonAST{}
	data, err := EncodeJSON(tree)
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}
	got, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	if len(got.Declarations) != 0 || len(got.Statements) != 0 {
		t.Fatalf("expected empty tree, got %+v", got)
	}
}
