package emit

import (
	"strings"

	"gryphon/internal/ast"
)

// limitForAddingNewlines: for sequences of this many or fewer non-empty
// statement translations, no blank lines are ever inserted between them.
// Short bodies read better dense.
const limitForAddingNewlines = 3

// EmitBlock emits a sibling statement list at indentation ind, applying
// the blank-line sequencing policy between consecutive non-empty
// translations.
func (e *Emitter) EmitBlock(stmts []ast.Statement, ind string) string {
	type entry struct {
		stmt ast.Statement
		text string
	}
	var entries []entry
	for _, s := range stmts {
		text := e.EmitStatement(s, ind)
		if text == "" {
			continue
		}
		entries = append(entries, entry{stmt: s, text: text})
	}

	var out strings.Builder
	dense := len(entries) <= limitForAddingNewlines
	for i, en := range entries {
		out.WriteString(en.text)
		if i == len(entries)-1 {
			continue
		}
		if dense || suppressBlankLine(en.stmt, entries[i+1].stmt) {
			continue
		}
		out.WriteString("\n")
	}
	return out.String()
}

// suppressBlankLine decides whether no blank line should separate cur and
// next in a sibling statement sequence.
func suppressBlankLine(cur, next ast.Statement) bool {
	if _, ok := cur.(*ast.Comment); ok {
		return true
	}

	if isVariableDeclaration(cur) && isVariableDeclaration(next) {
		return true
	}
	if isAssignment(cur) && isAssignment(next) {
		return true
	}
	if isTypealias(cur) && isTypealias(next) {
		return true
	}

	if curExpr, ok := exprStatementKind(cur); ok {
		if nextExpr, ok2 := exprStatementKind(next); ok2 && curExpr == nextExpr && curExpr != exprKindOther {
			return true
		}
	}

	if _, okDo := cur.(*ast.Do); okDo {
		if _, okCatch := next.(*ast.Catch); okCatch {
			return true
		}
	}
	if _, okCatch := cur.(*ast.Catch); okCatch {
		if _, okCatch2 := next.(*ast.Catch); okCatch2 {
			return true
		}
	}

	return false
}

func isVariableDeclaration(s ast.Statement) bool {
	_, ok := s.(*ast.VariableDeclaration)
	return ok
}

func isAssignment(s ast.Statement) bool {
	_, ok := s.(*ast.Assignment)
	return ok
}

func isTypealias(s ast.Statement) bool {
	_, ok := s.(*ast.Typealias)
	return ok
}

// exprStatementKind classifies an ExpressionStatement by the shape of its
// inner expression, for the "both Call / both Template / both LiteralCode"
// suppression rule. ok is false for anything other than an
// ExpressionStatement.
type exprKind int

const (
	exprKindOther exprKind = iota
	exprKindCall
	exprKindTemplate
	exprKindLiteralCode
)

func exprStatementKind(s ast.Statement) (exprKind, bool) {
	es, ok := s.(*ast.ExpressionStatement)
	if !ok {
		return exprKindOther, false
	}
	switch es.Expr.(type) {
	case *ast.Call:
		return exprKindCall, true
	case *ast.Template:
		return exprKindTemplate, true
	case *ast.LiteralCode:
		return exprKindLiteralCode, true
	default:
		return exprKindOther, true
	}
}
