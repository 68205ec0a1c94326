// Package astio (de)serializes a GryphonAST tree to and from a flat,
// kind-tagged wire representation, in JSON or YAML. The core emitter only
// ever sees `internal/ast` values; this package exists so the CLI and the
// golden-file test suite have a text format to read fixtures from.
package astio

import (
	"fmt"

	"gryphon/internal/ast"
)

// StmtWire is the flat wire shape every statement variant marshals through.
// Fields not relevant to Kind are left zero and omitted on encode.
type StmtWire struct {
	Kind string `json:"kind" yaml:"kind"`

	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Target   string `json:"target,omitempty" yaml:"target,omitempty"`
	Implicit bool   `json:"implicit,omitempty" yaml:"implicit,omitempty"`

	Inherits    []string         `json:"inherits,omitempty" yaml:"inherits,omitempty"`
	Members     []*StmtWire      `json:"members,omitempty" yaml:"members,omitempty"`
	Annotations string           `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Access      string           `json:"access,omitempty" yaml:"access,omitempty"`
	Elements    []EnumElemWire   `json:"elements,omitempty" yaml:"elements,omitempty"`

	Statements  []*StmtWire `json:"statements,omitempty" yaml:"statements,omitempty"`
	Declaration *StmtWire   `json:"declaration,omitempty" yaml:"declaration,omitempty"`
	Collection  *ExprWire   `json:"collection,omitempty" yaml:"collection,omitempty"`
	Variable    *ExprWire   `json:"variable,omitempty" yaml:"variable,omitempty"`
	Condition   *ExprWire   `json:"condition,omitempty" yaml:"condition,omitempty"`

	Prefix        string      `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Parameters    []ParamWire `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	ReturnType    string      `json:"returnType,omitempty" yaml:"returnType,omitempty"`
	GenericTypes  []string    `json:"genericTypes,omitempty" yaml:"genericTypes,omitempty"`
	ExtendsType   string      `json:"extendsType,omitempty" yaml:"extendsType,omitempty"`
	IsStatic      bool        `json:"isStatic,omitempty" yaml:"isStatic,omitempty"`
	IsImplicit    bool        `json:"isImplicit,omitempty" yaml:"isImplicit,omitempty"`
	FunctionType  string      `json:"functionType,omitempty" yaml:"functionType,omitempty"`
	IsInitializer bool        `json:"isInitializer,omitempty" yaml:"isInitializer,omitempty"`
	SuperCall     *ExprWire   `json:"superCall,omitempty" yaml:"superCall,omitempty"`

	Type   string    `json:"type,omitempty" yaml:"type,omitempty"`
	Expr   *ExprWire `json:"expr,omitempty" yaml:"expr,omitempty"`
	Getter *StmtWire `json:"getter,omitempty" yaml:"getter,omitempty"`
	Setter *StmtWire `json:"setter,omitempty" yaml:"setter,omitempty"`
	IsLet  bool      `json:"isLet,omitempty" yaml:"isLet,omitempty"`

	LHS *ExprWire `json:"lhs,omitempty" yaml:"lhs,omitempty"`
	RHS *ExprWire `json:"rhs,omitempty" yaml:"rhs,omitempty"`

	Conditions    []IfConditionWire `json:"conditions,omitempty" yaml:"conditions,omitempty"`
	Declarations  []*StmtWire       `json:"declarations,omitempty" yaml:"declarations,omitempty"`
	ElseStatement *StmtWire         `json:"elseStatement,omitempty" yaml:"elseStatement,omitempty"`
	IsGuard       bool              `json:"isGuard,omitempty" yaml:"isGuard,omitempty"`

	ConvertsToExpression string           `json:"convertsToExpression,omitempty" yaml:"convertsToExpression,omitempty"`
	ConversionTarget     *StmtWire        `json:"conversionTarget,omitempty" yaml:"conversionTarget,omitempty"`
	Subject              *ExprWire        `json:"subject,omitempty" yaml:"subject,omitempty"`
	Cases                []SwitchCaseWire `json:"cases,omitempty" yaml:"cases,omitempty"`
}

// ExprWire is the flat wire shape every expression variant marshals through.
type ExprWire struct {
	Kind string `json:"kind" yaml:"kind"`

	Pattern string               `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Matches map[string]*ExprWire `json:"matches,omitempty" yaml:"matches,omitempty"`

	Raw string `json:"raw,omitempty" yaml:"raw,omitempty"`

	Elements []*ExprWire `json:"elements,omitempty" yaml:"elements,omitempty"`
	Keys     []*ExprWire `json:"keys,omitempty" yaml:"keys,omitempty"`
	Values   []*ExprWire `json:"values,omitempty" yaml:"values,omitempty"`
	Type     string      `json:"type,omitempty" yaml:"type,omitempty"`

	LHS       *ExprWire `json:"lhs,omitempty" yaml:"lhs,omitempty"`
	RHS       *ExprWire `json:"rhs,omitempty" yaml:"rhs,omitempty"`
	Condition *ExprWire `json:"condition,omitempty" yaml:"condition,omitempty"`
	Op        string    `json:"op,omitempty" yaml:"op,omitempty"`

	Function   *ExprWire `json:"function,omitempty" yaml:"function,omitempty"`
	Parameters *ExprWire `json:"parameters,omitempty" yaml:"parameters,omitempty"`

	ClosureParams []ClosureParamWire `json:"closureParams,omitempty" yaml:"closureParams,omitempty"`
	Statements    []*StmtWire        `json:"statements,omitempty" yaml:"statements,omitempty"`

	Identifier string    `json:"identifier,omitempty" yaml:"identifier,omitempty"`
	Expr       *ExprWire `json:"expr,omitempty" yaml:"expr,omitempty"`

	Value string `json:"value,omitempty" yaml:"value,omitempty"`

	IntValue    int64   `json:"intValue,omitempty" yaml:"intValue,omitempty"`
	UIntValue   uint64  `json:"uintValue,omitempty" yaml:"uintValue,omitempty"`
	DoubleValue float64 `json:"doubleValue,omitempty" yaml:"doubleValue,omitempty"`
	FloatValue  float32 `json:"floatValue,omitempty" yaml:"floatValue,omitempty"`
	BoolValue   bool    `json:"boolValue,omitempty" yaml:"boolValue,omitempty"`

	Parts []InterpPartWire `json:"parts,omitempty" yaml:"parts,omitempty"`

	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	Object *ExprWire `json:"object,omitempty" yaml:"object,omitempty"`
	Index  *ExprWire `json:"index,omitempty" yaml:"index,omitempty"`

	Pairs []TupleEntryWire `json:"pairs,omitempty" yaml:"pairs,omitempty"`

	Labels      []string                `json:"labels,omitempty" yaml:"labels,omitempty"`
	Indices     []TupleShuffleIndexWire `json:"indices,omitempty" yaml:"indices,omitempty"`
	Expressions []*ExprWire             `json:"expressions,omitempty" yaml:"expressions,omitempty"`
}

type EnumElemWire struct {
	Name             string      `json:"name" yaml:"name"`
	Annotations      string      `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	AssociatedValues []ParamWire `json:"associatedValues,omitempty" yaml:"associatedValues,omitempty"`
}

type ParamWire struct {
	Label        string    `json:"label" yaml:"label"`
	Type         string    `json:"type" yaml:"type"`
	DefaultValue *ExprWire `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
}

type IfConditionWire struct {
	Kind      string    `json:"kind" yaml:"kind"`
	Condition *ExprWire `json:"condition,omitempty" yaml:"condition,omitempty"`
}

type SwitchCaseWire struct {
	Expressions []*ExprWire `json:"expressions,omitempty" yaml:"expressions,omitempty"`
	Statements  []*StmtWire `json:"statements,omitempty" yaml:"statements,omitempty"`
}

type ClosureParamWire struct {
	Label string `json:"label" yaml:"label"`
	Type  string `json:"type" yaml:"type"`
}

type InterpPartWire struct {
	String *string   `json:"string,omitempty" yaml:"string,omitempty"`
	Expr   *ExprWire `json:"expr,omitempty" yaml:"expr,omitempty"`
}

type TupleEntryWire struct {
	Label string    `json:"label,omitempty" yaml:"label,omitempty"`
	Expr  *ExprWire `json:"expr,omitempty" yaml:"expr,omitempty"`
}

type TupleShuffleIndexWire struct {
	Kind  string `json:"kind" yaml:"kind"`
	Count int    `json:"count,omitempty" yaml:"count,omitempty"`
}

// GryphonASTWire is the root wire value: {declarations, statements}.
type GryphonASTWire struct {
	Declarations []*StmtWire `json:"declarations,omitempty" yaml:"declarations,omitempty"`
	Statements   []*StmtWire `json:"statements,omitempty" yaml:"statements,omitempty"`
}

func toWireStmts(stmts []ast.Statement) []*StmtWire {
	out := make([]*StmtWire, len(stmts))
	for i, s := range stmts {
		out[i] = ToStmtWire(s)
	}
	return out
}

func fromWireStmts(wires []*StmtWire) ([]ast.Statement, error) {
	out := make([]ast.Statement, len(wires))
	for i, w := range wires {
		s, err := FromStmtWire(w)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func toWireExprs(exprs []ast.Expression) []*ExprWire {
	out := make([]*ExprWire, len(exprs))
	for i, e := range exprs {
		out[i] = ToExprWire(e)
	}
	return out
}

func fromWireExprs(wires []*ExprWire) ([]ast.Expression, error) {
	out := make([]ast.Expression, len(wires))
	for i, w := range wires {
		e, err := FromExprWire(w)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

// ToGryphonASTWire converts a translated tree into its wire form.
func ToGryphonASTWire(tree *ast.GryphonAST) *GryphonASTWire {
	return &GryphonASTWire{
		Declarations: toWireStmts(tree.Declarations),
		Statements:   toWireStmts(tree.Statements),
	}
}

// FromGryphonASTWire rebuilds a GryphonAST from its wire form.
func FromGryphonASTWire(w *GryphonASTWire) (*ast.GryphonAST, error) {
	decls, err := fromWireStmts(w.Declarations)
	if err != nil {
		return nil, fmt.Errorf("declarations: %w", err)
	}
	stmts, err := fromWireStmts(w.Statements)
	if err != nil {
		return nil, fmt.Errorf("statements: %w", err)
	}
	return &ast.GryphonAST{Declarations: decls, Statements: stmts}, nil
}
