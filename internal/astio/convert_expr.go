package astio

import (
	"fmt"

	"gryphon/internal/ast"
)

// ToExprWire converts one Expression node into its flat wire form.
func ToExprWire(e ast.Expression) *ExprWire {
	switch v := e.(type) {
	case *ast.Template:
		matches := make(map[string]*ExprWire, len(v.Matches))
		for k, ve := range v.Matches {
			matches[k] = ToExprWire(ve)
		}
		return &ExprWire{Kind: "Template", Pattern: v.Pattern, Matches: matches}

	case *ast.LiteralCode:
		return &ExprWire{Kind: "LiteralCode", Raw: v.Raw}

	case *ast.LiteralDeclaration:
		return &ExprWire{Kind: "LiteralDeclaration", Raw: v.Raw}

	case *ast.Array:
		return &ExprWire{Kind: "Array", Elements: toWireExprs(v.Elements), Type: v.Type}

	case *ast.Dictionary:
		return &ExprWire{Kind: "Dictionary", Keys: toWireExprs(v.Keys), Values: toWireExprs(v.Values), Type: v.Type}

	case *ast.BinaryOperator:
		return &ExprWire{Kind: "BinaryOperator", LHS: ToExprWire(v.LHS), RHS: ToExprWire(v.RHS), Op: v.Op, Type: v.Type}

	case *ast.Call:
		return &ExprWire{Kind: "Call", Function: ToExprWire(v.Function), Parameters: ToExprWire(v.Parameters)}

	case *ast.Closure:
		params := make([]ClosureParamWire, len(v.Parameters))
		for i, p := range v.Parameters {
			params[i] = ClosureParamWire{Label: p.Label, Type: p.Type}
		}
		return &ExprWire{Kind: "Closure", ClosureParams: params, Statements: toWireStmts(v.Statements), Type: v.Type}

	case *ast.DeclarationReference:
		return &ExprWire{Kind: "DeclarationReference", Identifier: v.Identifier, Type: v.Type}

	case *ast.ReturnExpression:
		return &ExprWire{Kind: "ReturnExpression", Expr: optExprWire(v.Expr)}

	case *ast.Dot:
		return &ExprWire{Kind: "Dot", LHS: ToExprWire(v.LHS), RHS: ToExprWire(v.RHS)}

	case *ast.LiteralString:
		return &ExprWire{Kind: "LiteralString", Value: v.Value}

	case *ast.LiteralCharacter:
		return &ExprWire{Kind: "LiteralCharacter", Value: v.Value}

	case *ast.InterpolatedString:
		parts := make([]InterpPartWire, len(v.Parts))
		for i, p := range v.Parts {
			parts[i] = InterpPartWire{String: p.String, Expr: optExprWire(p.Expr)}
		}
		return &ExprWire{Kind: "InterpolatedString", Parts: parts}

	case *ast.PrefixUnary:
		return &ExprWire{Kind: "PrefixUnary", Op: v.Op, Expr: ToExprWire(v.Expr)}

	case *ast.PostfixUnary:
		return &ExprWire{Kind: "PostfixUnary", Op: v.Op, Expr: ToExprWire(v.Expr)}

	case *ast.IfExpression:
		return &ExprWire{Kind: "IfExpression", Condition: ToExprWire(v.Condition), LHS: ToExprWire(v.TrueExpr), RHS: ToExprWire(v.FalseExpr)}

	case *ast.Type:
		return &ExprWire{Kind: "Type", Name: v.Name}

	case *ast.Subscript:
		return &ExprWire{Kind: "Subscript", Object: ToExprWire(v.Object), Index: ToExprWire(v.Index), Type: v.Type}

	case *ast.Parens:
		return &ExprWire{Kind: "Parens", Expr: ToExprWire(v.Expr)}

	case *ast.ForceValue:
		return &ExprWire{Kind: "ForceValue", Expr: ToExprWire(v.Expr)}

	case *ast.Optional:
		return &ExprWire{Kind: "Optional", Expr: ToExprWire(v.Expr)}

	case *ast.LiteralInt:
		return &ExprWire{Kind: "LiteralInt", IntValue: v.Value}

	case *ast.LiteralUInt:
		return &ExprWire{Kind: "LiteralUInt", UIntValue: v.Value}

	case *ast.LiteralDouble:
		return &ExprWire{Kind: "LiteralDouble", DoubleValue: v.Value}

	case *ast.LiteralFloat:
		return &ExprWire{Kind: "LiteralFloat", FloatValue: v.Value}

	case *ast.LiteralBool:
		return &ExprWire{Kind: "LiteralBool", BoolValue: v.Value}

	case *ast.NilLiteral:
		return &ExprWire{Kind: "NilLiteral"}

	case *ast.Tuple:
		pairs := make([]TupleEntryWire, len(v.Pairs))
		for i, p := range v.Pairs {
			pairs[i] = TupleEntryWire{Label: p.Label, Expr: ToExprWire(p.Expr)}
		}
		return &ExprWire{Kind: "Tuple", Pairs: pairs}

	case *ast.TupleShuffle:
		indices := make([]TupleShuffleIndexWire, len(v.Indices))
		for i, idx := range v.Indices {
			indices[i] = TupleShuffleIndexWire{Kind: shuffleKindToWire(idx.Kind), Count: idx.Count}
		}
		return &ExprWire{Kind: "TupleShuffle", Labels: v.Labels, Indices: indices, Expressions: toWireExprs(v.Expressions)}

	case *ast.ExpressionError:
		return &ExprWire{Kind: "Error"}

	default:
		panic(fmt.Sprintf("astio: unhandled expression variant %T", e))
	}
}

// FromExprWire rebuilds an Expression from its wire form.
func FromExprWire(w *ExprWire) (ast.Expression, error) {
	if w == nil {
		return nil, nil
	}
	switch w.Kind {
	case "Template":
		matches := make(map[string]ast.Expression, len(w.Matches))
		for k, vw := range w.Matches {
			v, err := FromExprWire(vw)
			if err != nil {
				return nil, err
			}
			matches[k] = v
		}
		return &ast.Template{Pattern: w.Pattern, Matches: matches}, nil

	case "LiteralCode":
		return &ast.LiteralCode{Raw: w.Raw}, nil

	case "LiteralDeclaration":
		return &ast.LiteralDeclaration{Raw: w.Raw}, nil

	case "Array":
		elems, err := fromWireExprs(w.Elements)
		if err != nil {
			return nil, err
		}
		return &ast.Array{Elements: elems, Type: w.Type}, nil

	case "Dictionary":
		keys, err := fromWireExprs(w.Keys)
		if err != nil {
			return nil, err
		}
		values, err := fromWireExprs(w.Values)
		if err != nil {
			return nil, err
		}
		return &ast.Dictionary{Keys: keys, Values: values, Type: w.Type}, nil

	case "BinaryOperator":
		lhs, err := FromExprWire(w.LHS)
		if err != nil {
			return nil, err
		}
		rhs, err := FromExprWire(w.RHS)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOperator{LHS: lhs, RHS: rhs, Op: w.Op, Type: w.Type}, nil

	case "Call":
		fn, err := FromExprWire(w.Function)
		if err != nil {
			return nil, err
		}
		params, err := FromExprWire(w.Parameters)
		if err != nil {
			return nil, err
		}
		return &ast.Call{Function: fn, Parameters: params}, nil

	case "Closure":
		params := make([]ast.ClosureParam, len(w.ClosureParams))
		for i, p := range w.ClosureParams {
			params[i] = ast.ClosureParam{Label: p.Label, Type: p.Type}
		}
		stmts, err := fromWireStmts(w.Statements)
		if err != nil {
			return nil, err
		}
		return &ast.Closure{Parameters: params, Statements: stmts, Type: w.Type}, nil

	case "DeclarationReference":
		return &ast.DeclarationReference{Identifier: w.Identifier, Type: w.Type}, nil

	case "ReturnExpression":
		expr, err := optExpr(w.Expr)
		if err != nil {
			return nil, err
		}
		return &ast.ReturnExpression{Expr: expr}, nil

	case "Dot":
		lhs, err := FromExprWire(w.LHS)
		if err != nil {
			return nil, err
		}
		rhs, err := FromExprWire(w.RHS)
		if err != nil {
			return nil, err
		}
		return &ast.Dot{LHS: lhs, RHS: rhs}, nil

	case "LiteralString":
		return &ast.LiteralString{Value: w.Value}, nil

	case "LiteralCharacter":
		return &ast.LiteralCharacter{Value: w.Value}, nil

	case "InterpolatedString":
		parts := make([]ast.InterpolatedStringPart, len(w.Parts))
		for i, p := range w.Parts {
			expr, err := optExpr(p.Expr)
			if err != nil {
				return nil, err
			}
			parts[i] = ast.InterpolatedStringPart{String: p.String, Expr: expr}
		}
		return &ast.InterpolatedString{Parts: parts}, nil

	case "PrefixUnary":
		expr, err := FromExprWire(w.Expr)
		if err != nil {
			return nil, err
		}
		return &ast.PrefixUnary{Op: w.Op, Expr: expr}, nil

	case "PostfixUnary":
		expr, err := FromExprWire(w.Expr)
		if err != nil {
			return nil, err
		}
		return &ast.PostfixUnary{Op: w.Op, Expr: expr}, nil

	case "IfExpression":
		cond, err := FromExprWire(w.Condition)
		if err != nil {
			return nil, err
		}
		t, err := FromExprWire(w.LHS)
		if err != nil {
			return nil, err
		}
		f, err := FromExprWire(w.RHS)
		if err != nil {
			return nil, err
		}
		return &ast.IfExpression{Condition: cond, TrueExpr: t, FalseExpr: f}, nil

	case "Type":
		return &ast.Type{Name: w.Name}, nil

	case "Subscript":
		obj, err := FromExprWire(w.Object)
		if err != nil {
			return nil, err
		}
		idx, err := FromExprWire(w.Index)
		if err != nil {
			return nil, err
		}
		return &ast.Subscript{Object: obj, Index: idx, Type: w.Type}, nil

	case "Parens":
		expr, err := FromExprWire(w.Expr)
		if err != nil {
			return nil, err
		}
		return &ast.Parens{Expr: expr}, nil

	case "ForceValue":
		expr, err := FromExprWire(w.Expr)
		if err != nil {
			return nil, err
		}
		return &ast.ForceValue{Expr: expr}, nil

	case "Optional":
		expr, err := FromExprWire(w.Expr)
		if err != nil {
			return nil, err
		}
		return &ast.Optional{Expr: expr}, nil

	case "LiteralInt":
		return &ast.LiteralInt{Value: w.IntValue}, nil

	case "LiteralUInt":
		return &ast.LiteralUInt{Value: w.UIntValue}, nil

	case "LiteralDouble":
		return &ast.LiteralDouble{Value: w.DoubleValue}, nil

	case "LiteralFloat":
		return &ast.LiteralFloat{Value: w.FloatValue}, nil

	case "LiteralBool":
		return &ast.LiteralBool{Value: w.BoolValue}, nil

	case "NilLiteral":
		return &ast.NilLiteral{}, nil

	case "Tuple":
		pairs := make([]ast.TupleEntry, len(w.Pairs))
		for i, p := range w.Pairs {
			expr, err := FromExprWire(p.Expr)
			if err != nil {
				return nil, err
			}
			pairs[i] = ast.TupleEntry{Label: p.Label, Expr: expr}
		}
		return &ast.Tuple{Pairs: pairs}, nil

	case "TupleShuffle":
		indices := make([]ast.TupleShuffleIndex, len(w.Indices))
		for i, idx := range w.Indices {
			indices[i] = ast.TupleShuffleIndex{Kind: shuffleKindFromWire(idx.Kind), Count: idx.Count}
		}
		exprs, err := fromWireExprs(w.Expressions)
		if err != nil {
			return nil, err
		}
		return &ast.TupleShuffle{Labels: w.Labels, Indices: indices, Expressions: exprs}, nil

	case "Error":
		return &ast.ExpressionError{}, nil

	default:
		return nil, fmt.Errorf("astio: unknown expression kind %q", w.Kind)
	}
}

func shuffleKindToWire(k ast.TupleShuffleIndexKind) string {
	switch k {
	case ast.ShufflePresent:
		return "present"
	case ast.ShuffleVariadic:
		return "variadic"
	default:
		return "absent"
	}
}

func shuffleKindFromWire(s string) ast.TupleShuffleIndexKind {
	switch s {
	case "present":
		return ast.ShufflePresent
	case "variadic":
		return ast.ShuffleVariadic
	default:
		return ast.ShuffleAbsent
	}
}
