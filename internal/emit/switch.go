package emit

import (
	"strings"

	"gryphon/internal/ast"
	"gryphon/internal/indent"
)

// emitSwitch renders a switch over its statement/expression/assignment/
// variable-declaration conversion forms as a when expression.
func (e *Emitter) emitSwitch(sw *ast.Switch, ind string) string {
	var b strings.Builder

	switch sw.ConvertsToExpression {
	case ast.SwitchConvertsToReturn:
		b.WriteString(ind)
		b.WriteString("return when (")

	case ast.SwitchConvertsToAssignment:
		asn, _ := sw.ConversionTarget.(*ast.Assignment)
		b.WriteString(ind)
		if asn != nil {
			b.WriteString(e.EmitExpression(asn.LHS, ind))
		}
		b.WriteString(" = when (")

	case ast.SwitchConvertsToVariableDeclaration:
		vd, _ := sw.ConversionTarget.(*ast.VariableDeclaration)
		if vd != nil {
			nulled := *vd
			nulled.Expr = &ast.NilLiteral{}
			text := e.emitVariableDeclaration(&nulled, ind)
			text = strings.TrimSuffix(text, "null\n")
			b.WriteString(text)
		} else {
			b.WriteString(ind)
		}
		b.WriteString("when (")

	default:
		b.WriteString(ind)
		b.WriteString("when (")
	}

	b.WriteString(e.EmitExpression(sw.Subject, ind))
	b.WriteString(") {\n")

	inner := indent.Increase(ind)
	for _, c := range sw.Cases {
		b.WriteString(e.emitSwitchCase(c, sw.Subject, inner))
	}

	b.WriteString(ind)
	b.WriteString("}\n")
	return b.String()
}

func (e *Emitter) emitSwitchCase(c ast.SwitchCase, subject ast.Expression, ind string) string {
	var b strings.Builder
	b.WriteString(ind)

	if len(c.Expressions) == 0 {
		b.WriteString("else -> ")
	} else {
		texts := make([]string, len(c.Expressions))
		for i, expr := range c.Expressions {
			texts[i] = e.renderCaseExpression(expr, subject, ind)
		}
		b.WriteString(strings.Join(texts, ", "))
		b.WriteString(" -> ")
	}

	if len(c.Statements) == 1 {
		b.WriteString(e.EmitStatement(c.Statements[0], ""))
		if !strings.HasSuffix(b.String(), "\n") {
			b.WriteString("\n")
		}
		return b.String()
	}

	b.WriteString("{\n")
	b.WriteString(e.EmitBlock(c.Statements, indent.Increase(ind)))
	b.WriteString(ind)
	b.WriteString("}\n")
	return b.String()
}

// renderCaseExpression rewrites one case-label expression: an `is`-check
// against the switch subject becomes `is Type`, a range pattern becomes
// `in a..b`, any other binary operator falls back to its left-hand side
// alone, and a non-operator expression is emitted as is.
func (e *Emitter) renderCaseExpression(expr ast.Expression, subject ast.Expression, ind string) string {
	bop, ok := expr.(*ast.BinaryOperator)
	if !ok {
		return e.EmitExpression(expr, ind)
	}

	if bop.Op == "is" && bop.Type == "Bool" && ast.Equal(bop.LHS, subject) {
		return "is " + e.EmitExpression(bop.RHS, ind)
	}

	if tmpl, ok := bop.LHS.(*ast.Template); ok && isRangePattern(tmpl.Pattern) {
		return "in " + e.EmitExpression(bop.LHS, ind)
	}

	return e.EmitExpression(bop.LHS, ind)
}

func isRangePattern(pattern string) bool {
	return strings.Contains(pattern, "..") ||
		strings.Contains(pattern, "until") ||
		strings.Contains(pattern, "rangeTo")
}
