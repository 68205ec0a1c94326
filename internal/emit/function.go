package emit

import (
	"strings"

	"gryphon/internal/ast"
	"gryphon/internal/indent"
	"gryphon/internal/typerewrite"
)

// emitFunction renders a function declaration: header composition, the
// 100-column line-wrap retry, and defer-to-try/finally body wrapping.
func (e *Emitter) emitFunction(fn *ast.FunctionDeclaration, ind string) string {
	if fn.IsImplicit {
		return ""
	}

	headPrefix := e.functionHeaderPrefix(fn)
	params := make([]string, len(fn.Parameters))
	for i, p := range fn.Parameters {
		text := p.Label + ": " + typerewrite.Rewrite(p.Type)
		if p.DefaultValue != nil {
			text += " = " + e.EmitExpression(p.DefaultValue, ind)
		}
		params[i] = text
	}

	clause := e.functionTailClause(fn, ind)

	inline := ind + headPrefix + "(" + strings.Join(params, ", ") + ")" + clause + " {"
	var header string
	if indent.Exceeds(inline) {
		header = e.wrappedFunctionHeader(ind, headPrefix, params, clause)
	} else {
		header = inline + "\n"
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString(e.functionBody(fn, ind))
	b.WriteString(ind)
	b.WriteString("}\n")
	return b.String()
}

// functionHeaderPrefix builds everything between the indent and the opening
// parameter parenthesis.
func (e *Emitter) functionHeaderPrefix(fn *ast.FunctionDeclaration) string {
	if fn.IsInitializer {
		return "constructor"
	}
	if fn.Prefix == "invoke" {
		return "operator fun invoke"
	}

	var b strings.Builder
	if fn.Annotations != "" {
		b.WriteString(fn.Annotations)
		b.WriteString(" ")
	}
	if fn.Access != "" {
		b.WriteString(fn.Access)
		b.WriteString(" ")
	}
	b.WriteString("fun ")

	generics := mergeGenerics(extractAngleGenerics(fn.ExtendsType), fn.GenericTypes)
	if len(generics) > 0 {
		b.WriteString("<")
		b.WriteString(strings.Join(generics, ", "))
		b.WriteString("> ")
	}

	if fn.ExtendsType != "" {
		b.WriteString(typerewrite.Rewrite(fn.ExtendsType))
		b.WriteString(".")
		if fn.IsStatic {
			b.WriteString("Companion.")
		}
	}
	b.WriteString(fn.Prefix)
	return b.String()
}

// functionTailClause renders the super-call or return-type suffix that
// follows the parameter list.
func (e *Emitter) functionTailClause(fn *ast.FunctionDeclaration, ind string) string {
	if fn.IsInitializer {
		if fn.SuperCall != nil {
			return ": " + e.emitCall(fn.SuperCall, ind)
		}
		return ""
	}
	if fn.ReturnType != "" && fn.ReturnType != "()" {
		return ": " + typerewrite.Rewrite(fn.ReturnType)
	}
	return ""
}

// wrappedFunctionHeader re-emits the header with each parameter on its own
// line once the single-line form exceeds the column limit.
func (e *Emitter) wrappedFunctionHeader(ind, headPrefix string, params []string, clause string) string {
	inner := indent.Increase(ind)
	var b strings.Builder
	b.WriteString(ind)
	b.WriteString(headPrefix)
	b.WriteString("(\n")
	for i, p := range params {
		b.WriteString(inner)
		b.WriteString(p)
		if i < len(params)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString(ind)
	b.WriteString(")")
	if clause != "" {
		b.WriteString("\n")
		b.WriteString(inner)
		b.WriteString(clause)
	}
	b.WriteString(" {\n")
	return b.String()
}

// functionBody partitions statements into direct-child Defers and the rest,
// wrapping in try/finally when any defer is present.
func (e *Emitter) functionBody(fn *ast.FunctionDeclaration, ind string) string {
	var defers []ast.Statement
	var rest []ast.Statement
	for _, s := range fn.Statements {
		if d, ok := s.(*ast.Defer); ok {
			defers = append(defers, d.Statements...)
			continue
		}
		rest = append(rest, s)
	}

	inner := indent.Increase(ind)
	if len(defers) == 0 {
		return e.EmitBlock(rest, inner)
	}

	var b strings.Builder
	b.WriteString(inner)
	b.WriteString("try {\n")
	b.WriteString(e.EmitBlock(rest, indent.Increase(inner)))
	b.WriteString(inner)
	b.WriteString("} finally {\n")
	b.WriteString(e.EmitBlock(defers, indent.Increase(inner)))
	b.WriteString(inner)
	b.WriteString("}\n")
	return b.String()
}

// extractAngleGenerics pulls the comma-separated generic parameter list out
// of a rewritten extension type string, e.g. "Box<T>" -> ["T"]. Fragile for
// nested generics.
func extractAngleGenerics(extendsType string) []string {
	if extendsType == "" {
		return nil
	}
	rewritten := typerewrite.Rewrite(extendsType)
	lt := strings.IndexByte(rewritten, '<')
	if lt < 0 || !strings.HasSuffix(rewritten, ">") {
		return nil
	}
	inner := rewritten[lt+1 : len(rewritten)-1]
	if inner == "" {
		return nil
	}
	parts := strings.Split(inner, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// mergeGenerics set-unions ext and own, extension generics first.
func mergeGenerics(ext, own []string) []string {
	seen := make(map[string]bool, len(ext)+len(own))
	var out []string
	for _, g := range ext {
		if !seen[g] {
			seen[g] = true
			out = append(out, g)
		}
	}
	for _, g := range own {
		if !seen[g] {
			seen[g] = true
			out = append(out, g)
		}
	}
	return out
}

// emitIf renders an if/else-if/else chain, recursing through the else
// chain via ElseStatement.
func (e *Emitter) emitIf(ifs *ast.If, ind string, isElseIf bool) string {
	keyword := "if"
	bare := len(ifs.Conditions) == 0 && len(ifs.Declarations) == 0
	switch {
	case bare:
		keyword = "else"
	case isElseIf:
		keyword = "else if"
	}

	var head string
	if keyword == "else" {
		head = ind + "else {\n"
	} else {
		var conds []string
		for _, c := range ifs.Conditions {
			if c.Kind == ast.IfConditionPlain {
				conds = append(conds, e.EmitExpression(c.Condition, ind))
			}
		}
		joined := strings.Join(conds, " && ")
		clause := "(" + joined + ")"
		if ifs.IsGuard {
			clause = "(!(" + joined + "))"
		}
		head = ind + keyword + " " + clause + " {\n"
	}

	var b strings.Builder
	b.WriteString(head)
	b.WriteString(e.EmitBlock(ifs.Statements, indent.Increase(ind)))
	b.WriteString(ind)
	b.WriteString("}")

	if ifs.ElseStatement != nil {
		if nextIf, ok := ifs.ElseStatement.(*ast.If); ok {
			b.WriteString(" ")
			tail := e.emitIf(nextIf, ind, true)
			b.WriteString(strings.TrimPrefix(tail, ind))
			return b.String()
		}
		b.WriteString("\n")
		b.WriteString(e.EmitStatement(ifs.ElseStatement, ind))
		return b.String()
	}

	b.WriteString("\n")
	return b.String()
}
