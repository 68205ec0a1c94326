package astio

import (
	"fmt"

	"gryphon/internal/ast"
)

func optExprWire(e ast.Expression) *ExprWire {
	if e == nil {
		return nil
	}
	return ToExprWire(e)
}

func optExpr(w *ExprWire) (ast.Expression, error) {
	if w == nil {
		return nil, nil
	}
	return FromExprWire(w)
}

func optStmtWire(s ast.Statement) *StmtWire {
	if s == nil {
		return nil
	}
	return ToStmtWire(s)
}

func optStmt(w *StmtWire) (ast.Statement, error) {
	if w == nil {
		return nil, nil
	}
	return FromStmtWire(w)
}

func paramsToWire(ps []ast.Param) []ParamWire {
	out := make([]ParamWire, len(ps))
	for i, p := range ps {
		out[i] = ParamWire{Label: p.Label, Type: p.Type, DefaultValue: optExprWire(p.DefaultValue)}
	}
	return out
}

func paramsFromWire(ws []ParamWire) ([]ast.Param, error) {
	out := make([]ast.Param, len(ws))
	for i, w := range ws {
		dv, err := optExpr(w.DefaultValue)
		if err != nil {
			return nil, err
		}
		out[i] = ast.Param{Label: w.Label, Type: w.Type, DefaultValue: dv}
	}
	return out, nil
}

// ToStmtWire converts one Statement node into its flat wire form.
func ToStmtWire(s ast.Statement) *StmtWire {
	switch v := s.(type) {
	case *ast.Comment:
		return &StmtWire{Kind: "Comment", Text: v.Text}

	case *ast.Import:
		return &StmtWire{Kind: "Import"}

	case *ast.Extension:
		return &StmtWire{Kind: "Extension"}

	case *ast.Defer:
		return &StmtWire{Kind: "Defer", Statements: toWireStmts(v.Statements)}

	case *ast.Typealias:
		return &StmtWire{Kind: "Typealias", Name: v.Name, Target: v.Target, Implicit: v.Implicit}

	case *ast.Class:
		return &StmtWire{Kind: "Class", Name: v.Name, Inherits: v.Inherits, Members: toWireStmts(v.Members)}

	case *ast.Struct:
		return &StmtWire{Kind: "Struct", Annotations: v.Annotations, Name: v.Name, Inherits: v.Inherits, Members: toWireStmts(v.Members)}

	case *ast.CompanionObject:
		return &StmtWire{Kind: "CompanionObject", Members: toWireStmts(v.Members)}

	case *ast.Enum:
		elems := make([]EnumElemWire, len(v.Elements))
		for i, el := range v.Elements {
			elems[i] = EnumElemWire{Name: el.Name, Annotations: el.Annotations, AssociatedValues: paramsToWire(el.AssociatedValues)}
		}
		return &StmtWire{Kind: "Enum", Access: v.Access, Name: v.Name, Inherits: v.Inherits, Elements: elems, Members: toWireStmts(v.Members), Implicit: v.Implicit}

	case *ast.Do:
		return &StmtWire{Kind: "Do", Statements: toWireStmts(v.Statements)}

	case *ast.Catch:
		var declaration *StmtWire
		if v.Declaration != nil {
			declaration = ToStmtWire(v.Declaration)
		}
		return &StmtWire{Kind: "Catch", Declaration: declaration, Statements: toWireStmts(v.Statements)}

	case *ast.ForEach:
		return &StmtWire{Kind: "ForEach", Collection: ToExprWire(v.Collection), Variable: ToExprWire(v.Variable), Statements: toWireStmts(v.Statements)}

	case *ast.While:
		return &StmtWire{Kind: "While", Condition: ToExprWire(v.Condition), Statements: toWireStmts(v.Statements)}

	case *ast.FunctionDeclaration:
		var superCall *ExprWire
		if v.SuperCall != nil {
			superCall = ToExprWire(v.SuperCall)
		}
		return &StmtWire{
			Kind: "Function", Prefix: v.Prefix, Parameters: paramsToWire(v.Parameters),
			ReturnType: v.ReturnType, GenericTypes: v.GenericTypes, Access: v.Access,
			Annotations: v.Annotations, ExtendsType: v.ExtendsType, IsStatic: v.IsStatic,
			IsImplicit: v.IsImplicit, FunctionType: v.FunctionType, Statements: toWireStmts(v.Statements),
			IsInitializer: v.IsInitializer, SuperCall: superCall,
		}

	case *ast.Protocol:
		return &StmtWire{Kind: "Protocol", Name: v.Name, Members: toWireStmts(v.Members)}

	case *ast.Throw:
		return &StmtWire{Kind: "Throw", Expr: ToExprWire(v.Expr)}

	case *ast.VariableDeclaration:
		var getter, setter *StmtWire
		if v.Getter != nil {
			getter = ToStmtWire(v.Getter)
		}
		if v.Setter != nil {
			setter = ToStmtWire(v.Setter)
		}
		return &StmtWire{
			Kind: "VariableDeclaration", Name: v.Name, Type: v.Type, Expr: optExprWire(v.Expr),
			Getter: getter, Setter: setter, IsLet: v.IsLet,
			Implicit: v.Implicit, IsStatic: v.IsStatic, ExtendsType: v.ExtendsType, Annotations: v.Annotations,
		}

	case *ast.Assignment:
		return &StmtWire{Kind: "Assignment", LHS: ToExprWire(v.LHS), RHS: ToExprWire(v.RHS)}

	case *ast.If:
		conds := make([]IfConditionWire, len(v.Conditions))
		for i, c := range v.Conditions {
			conds[i] = IfConditionWire{Kind: ifConditionKindToWire(c.Kind), Condition: optExprWire(c.Condition)}
		}
		return &StmtWire{
			Kind: "If", Conditions: conds, Declarations: toWireStmts(v.Declarations),
			Statements: toWireStmts(v.Statements), ElseStatement: optStmtWire(v.ElseStatement), IsGuard: v.IsGuard,
		}

	case *ast.Switch:
		cases := make([]SwitchCaseWire, len(v.Cases))
		for i, c := range v.Cases {
			cases[i] = SwitchCaseWire{Expressions: toWireExprs(c.Expressions), Statements: toWireStmts(c.Statements)}
		}
		return &StmtWire{
			Kind: "Switch", ConvertsToExpression: switchConversionKindToWire(v.ConvertsToExpression),
			ConversionTarget: optStmtWire(v.ConversionTarget), Subject: ToExprWire(v.Subject), Cases: cases,
		}

	case *ast.Return:
		return &StmtWire{Kind: "Return", Expr: optExprWire(v.Expr)}

	case *ast.Break:
		return &StmtWire{Kind: "Break"}

	case *ast.Continue:
		return &StmtWire{Kind: "Continue"}

	case *ast.ExpressionStatement:
		return &StmtWire{Kind: "ExpressionStatement", Expr: ToExprWire(v.Expr)}

	case *ast.Error:
		return &StmtWire{Kind: "Error"}

	default:
		panic(fmt.Sprintf("astio: unhandled statement variant %T", s))
	}
}

// FromStmtWire rebuilds a Statement from its wire form.
func FromStmtWire(w *StmtWire) (ast.Statement, error) {
	if w == nil {
		return nil, nil
	}
	switch w.Kind {
	case "Comment":
		return &ast.Comment{Text: w.Text}, nil

	case "Import":
		return &ast.Import{}, nil

	case "Extension":
		return &ast.Extension{}, nil

	case "Defer":
		stmts, err := fromWireStmts(w.Statements)
		if err != nil {
			return nil, err
		}
		return &ast.Defer{Statements: stmts}, nil

	case "Typealias":
		return &ast.Typealias{Name: w.Name, Target: w.Target, Implicit: w.Implicit}, nil

	case "Class":
		members, err := fromWireStmts(w.Members)
		if err != nil {
			return nil, err
		}
		return &ast.Class{Name: w.Name, Inherits: w.Inherits, Members: members}, nil

	case "Struct":
		members, err := fromWireStmts(w.Members)
		if err != nil {
			return nil, err
		}
		return &ast.Struct{Annotations: w.Annotations, Name: w.Name, Inherits: w.Inherits, Members: members}, nil

	case "CompanionObject":
		members, err := fromWireStmts(w.Members)
		if err != nil {
			return nil, err
		}
		return &ast.CompanionObject{Members: members}, nil

	case "Enum":
		elems := make([]ast.EnumElement, len(w.Elements))
		for i, ew := range w.Elements {
			av, err := paramsFromWire(ew.AssociatedValues)
			if err != nil {
				return nil, err
			}
			elems[i] = ast.EnumElement{Name: ew.Name, Annotations: ew.Annotations, AssociatedValues: av}
		}
		members, err := fromWireStmts(w.Members)
		if err != nil {
			return nil, err
		}
		return &ast.Enum{Access: w.Access, Name: w.Name, Inherits: w.Inherits, Elements: elems, Members: members, Implicit: w.Implicit}, nil

	case "Do":
		stmts, err := fromWireStmts(w.Statements)
		if err != nil {
			return nil, err
		}
		return &ast.Do{Statements: stmts}, nil

	case "Catch":
		decl, err := optStmt(w.Declaration)
		if err != nil {
			return nil, err
		}
		var vd *ast.VariableDeclaration
		if decl != nil {
			vd, _ = decl.(*ast.VariableDeclaration)
		}
		stmts, err := fromWireStmts(w.Statements)
		if err != nil {
			return nil, err
		}
		return &ast.Catch{Declaration: vd, Statements: stmts}, nil

	case "ForEach":
		coll, err := FromExprWire(w.Collection)
		if err != nil {
			return nil, err
		}
		variable, err := FromExprWire(w.Variable)
		if err != nil {
			return nil, err
		}
		stmts, err := fromWireStmts(w.Statements)
		if err != nil {
			return nil, err
		}
		return &ast.ForEach{Collection: coll, Variable: variable, Statements: stmts}, nil

	case "While":
		cond, err := FromExprWire(w.Condition)
		if err != nil {
			return nil, err
		}
		stmts, err := fromWireStmts(w.Statements)
		if err != nil {
			return nil, err
		}
		return &ast.While{Condition: cond, Statements: stmts}, nil

	case "Function":
		params, err := paramsFromWire(w.Parameters)
		if err != nil {
			return nil, err
		}
		stmts, err := fromWireStmts(w.Statements)
		if err != nil {
			return nil, err
		}
		superCallExpr, err := optExpr(w.SuperCall)
		if err != nil {
			return nil, err
		}
		var superCall *ast.Call
		if superCallExpr != nil {
			superCall, _ = superCallExpr.(*ast.Call)
		}
		return &ast.FunctionDeclaration{
			Prefix: w.Prefix, Parameters: params, ReturnType: w.ReturnType, GenericTypes: w.GenericTypes,
			Access: w.Access, Annotations: w.Annotations, ExtendsType: w.ExtendsType, IsStatic: w.IsStatic,
			IsImplicit: w.IsImplicit, FunctionType: w.FunctionType, Statements: stmts,
			IsInitializer: w.IsInitializer, SuperCall: superCall,
		}, nil

	case "Protocol":
		members, err := fromWireStmts(w.Members)
		if err != nil {
			return nil, err
		}
		return &ast.Protocol{Name: w.Name, Members: members}, nil

	case "Throw":
		expr, err := FromExprWire(w.Expr)
		if err != nil {
			return nil, err
		}
		return &ast.Throw{Expr: expr}, nil

	case "VariableDeclaration":
		expr, err := optExpr(w.Expr)
		if err != nil {
			return nil, err
		}
		getterStmt, err := optStmt(w.Getter)
		if err != nil {
			return nil, err
		}
		setterStmt, err := optStmt(w.Setter)
		if err != nil {
			return nil, err
		}
		var getter, setter *ast.FunctionDeclaration
		if getterStmt != nil {
			getter, _ = getterStmt.(*ast.FunctionDeclaration)
		}
		if setterStmt != nil {
			setter, _ = setterStmt.(*ast.FunctionDeclaration)
		}
		return &ast.VariableDeclaration{
			Name: w.Name, Type: w.Type, Expr: expr, Getter: getter, Setter: setter, IsLet: w.IsLet,
			Implicit: w.Implicit, IsStatic: w.IsStatic, ExtendsType: w.ExtendsType, Annotations: w.Annotations,
		}, nil

	case "Assignment":
		lhs, err := FromExprWire(w.LHS)
		if err != nil {
			return nil, err
		}
		rhs, err := FromExprWire(w.RHS)
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{LHS: lhs, RHS: rhs}, nil

	case "If":
		conds := make([]ast.IfCondition, len(w.Conditions))
		for i, cw := range w.Conditions {
			cond, err := optExpr(cw.Condition)
			if err != nil {
				return nil, err
			}
			conds[i] = ast.IfCondition{Kind: ifConditionKindFromWire(cw.Kind), Condition: cond}
		}
		decls, err := fromWireStmts(w.Declarations)
		if err != nil {
			return nil, err
		}
		stmts, err := fromWireStmts(w.Statements)
		if err != nil {
			return nil, err
		}
		elseStmt, err := optStmt(w.ElseStatement)
		if err != nil {
			return nil, err
		}
		return &ast.If{Conditions: conds, Declarations: decls, Statements: stmts, ElseStatement: elseStmt, IsGuard: w.IsGuard}, nil

	case "Switch":
		cases := make([]ast.SwitchCase, len(w.Cases))
		for i, cw := range w.Cases {
			exprs, err := fromWireExprs(cw.Expressions)
			if err != nil {
				return nil, err
			}
			stmts, err := fromWireStmts(cw.Statements)
			if err != nil {
				return nil, err
			}
			cases[i] = ast.SwitchCase{Expressions: exprs, Statements: stmts}
		}
		target, err := optStmt(w.ConversionTarget)
		if err != nil {
			return nil, err
		}
		subject, err := FromExprWire(w.Subject)
		if err != nil {
			return nil, err
		}
		return &ast.Switch{
			ConvertsToExpression: switchConversionKindFromWire(w.ConvertsToExpression),
			ConversionTarget:     target, Subject: subject, Cases: cases,
		}, nil

	case "Return":
		expr, err := optExpr(w.Expr)
		if err != nil {
			return nil, err
		}
		return &ast.Return{Expr: expr}, nil

	case "Break":
		return &ast.Break{}, nil

	case "Continue":
		return &ast.Continue{}, nil

	case "ExpressionStatement":
		expr, err := FromExprWire(w.Expr)
		if err != nil {
			return nil, err
		}
		return &ast.ExpressionStatement{Expr: expr}, nil

	case "Error":
		return &ast.Error{}, nil

	default:
		return nil, fmt.Errorf("astio: unknown statement kind %q", w.Kind)
	}
}

func ifConditionKindToWire(k ast.IfConditionKind) string {
	switch k {
	case ast.IfConditionPatternBinding:
		return "patternBinding"
	case ast.IfConditionOptionalBinding:
		return "optionalBinding"
	default:
		return "plain"
	}
}

func ifConditionKindFromWire(s string) ast.IfConditionKind {
	switch s {
	case "patternBinding":
		return ast.IfConditionPatternBinding
	case "optionalBinding":
		return ast.IfConditionOptionalBinding
	default:
		return ast.IfConditionPlain
	}
}

func switchConversionKindToWire(k ast.SwitchConversionKind) string {
	switch k {
	case ast.SwitchConvertsToReturn:
		return "return"
	case ast.SwitchConvertsToAssignment:
		return "assignment"
	case ast.SwitchConvertsToVariableDeclaration:
		return "variableDeclaration"
	default:
		return ""
	}
}

func switchConversionKindFromWire(s string) ast.SwitchConversionKind {
	switch s {
	case "return":
		return ast.SwitchConvertsToReturn
	case "assignment":
		return ast.SwitchConvertsToAssignment
	case "variableDeclaration":
		return ast.SwitchConvertsToVariableDeclaration
	default:
		return ast.SwitchConvertsNone
	}
}
