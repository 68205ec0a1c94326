package emit

import (
	"strings"

	"gryphon/internal/ast"
	"gryphon/internal/indent"
	"gryphon/internal/util"
)

// emitCall peels the Dot chain on the left of the call, resolves the
// callee against the function-translation registry, renders the argument
// list, and retries once with newlines if the single-line form reaches
// the column limit. A call with a trailing closure is returned in its
// single-line argument form without that retry.
func (e *Emitter) emitCall(c *ast.Call, ind string) string {
	prefixDots, fn := peelDots(c.Function)

	var calleeText string
	var translation *registryLookup
	if ref, ok := fn.(*ast.DeclarationReference); ok {
		if t, found := e.Context.Registries.LookupFunctionTranslation(displayName(ref.Identifier)); found {
			calleeText = t.Prefix
			translation = &registryLookup{names: t.Parameters}
		}
	}
	if calleeText == "" {
		calleeText = e.EmitExpression(fn, ind)
	}

	head := e.joinDots(prefixDots, ind) + calleeText

	args, trailingClosure := e.emitCallArguments(c.Parameters, ind, translation, false)
	inline := head + args
	if trailingClosure != "" {
		if args == "()" {
			return head + " " + trailingClosure
		}
		return inline + " " + trailingClosure
	}

	if !indent.Exceeds(inline) {
		return inline
	}

	wrapped, _ := e.emitCallArguments(c.Parameters, ind, translation, true)
	return head + wrapped
}

// registryLookup carries the parameter-name substitution list a resolved
// function-translation entry supplies.
type registryLookup struct {
	names []string
}

// peelDots walks a chain of Dot nodes on the left of a call, returning the
// dotted prefix expressions (outermost first) and the final, non-Dot
// function expression.
func peelDots(fn ast.Expression) ([]ast.Expression, ast.Expression) {
	var prefixes []ast.Expression
	for {
		dot, ok := fn.(*ast.Dot)
		if !ok {
			return prefixes, fn
		}
		prefixes = append(prefixes, dot.LHS)
		fn = dot.RHS
	}
}

func (e *Emitter) joinDots(prefixes []ast.Expression, ind string) string {
	var b strings.Builder
	for _, p := range prefixes {
		b.WriteString(e.EmitExpression(p, ind))
		b.WriteByte('.')
	}
	return b.String()
}

func displayName(identifier string) string {
	if idx := strings.IndexByte(identifier, '('); idx >= 0 {
		return identifier[:idx]
	}
	return identifier
}

// emitCallArguments renders c's parameter shape (a Tuple or TupleShuffle)
// and extracts a trailing closure when that rule applies. Returns the
// parenthesised argument text (possibly "()", which emitCall drops when a
// trailing closure is the sole argument) and the separately rendered
// trailing closure, if any.
func (e *Emitter) emitCallArguments(params ast.Expression, ind string, tr *registryLookup, newlines bool) (string, string) {
	switch p := params.(type) {
	case *ast.Tuple:
		if len(p.Pairs) > 0 {
			last := p.Pairs[len(p.Pairs)-1]
			if cl, ok := last.Expr.(*ast.Closure); ok {
				closureText := e.emitClosure(cl, ind)
				if len(p.Pairs) == 1 {
					return "()", closureText
				}
				rest := &ast.Tuple{Pairs: p.Pairs[:len(p.Pairs)-1]}
				var names []string
				if tr != nil {
					names = tr.names
				}
				return e.emitTuple(rest, ind, names, newlines), closureText
			}
		}
		var names []string
		if tr != nil {
			names = tr.names
		}
		return e.emitTuple(p, ind, names, newlines), ""

	case *ast.TupleShuffle:
		return e.emitTupleShuffle(p, ind, newlines), ""

	default:
		return e.Diag.UnexpectedStructure("call parameters are neither a tuple nor a tuple shuffle", params), ""
	}
}

// emitTuple renders a call's tuple argument list. names, when non-nil, is
// the resolved function translation's parameter-name list, zipped
// positionally against pairs to substitute API names for internal labels.
func (e *Emitter) emitTuple(t *ast.Tuple, ind string, names []string, newlines bool) string {
	if len(t.Pairs) == 0 {
		return "()"
	}

	args := make([]string, len(t.Pairs))
	for i, pair := range t.Pairs {
		label := pair.Label
		if label != "" && i < len(names) {
			label = names[i]
		}
		text := e.EmitExpression(pair.Expr, ind)
		if label != "" {
			args[i] = label + " = " + text
		} else {
			args[i] = text
		}
	}

	if newlines {
		inner := indent.Increase(ind)
		var b strings.Builder
		b.WriteString("(\n")
		for i, a := range args {
			b.WriteString(inner)
			b.WriteString(a)
			if i < len(args)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString(ind)
		b.WriteByte(')')
		return b.String()
	}

	return "(" + strings.Join(args, ", ") + ")"
}

// emitTupleShuffle renders a call whose arguments were resolved through
// argument-label shuffling: present/absent/variadic slots line up against
// the label list. When the shuffle has any variadic slot, labels are
// suppressed on every slot up to and including the first variadic one.
func (e *Emitter) emitTupleShuffle(ts *ast.TupleShuffle, ind string, newlines bool) string {
	if len(ts.Labels) != len(ts.Indices) {
		return e.Diag.UnexpectedStructure("tuple shuffle labels/indices length mismatch", ts)
	}

	hasVariadic := false
	for _, idx := range ts.Indices {
		if idx.Kind == ast.ShuffleVariadic {
			hasVariadic = true
			break
		}
	}

	var args []string
	exprPos := 0
	suppressLabels := hasVariadic
	for i, idx := range ts.Indices {
		switch idx.Kind {
		case ast.ShuffleAbsent:
			// nothing rendered, no expression consumed

		case ast.ShufflePresent:
			if exprPos >= len(ts.Expressions) {
				continue
			}
			text := e.EmitExpression(ts.Expressions[exprPos], ind)
			exprPos++
			if !suppressLabels && ts.Labels[i] != "" {
				args = append(args, ts.Labels[i]+" = "+text)
			} else {
				args = append(args, text)
			}

		case ast.ShuffleVariadic:
			for n := 0; n < idx.Count && exprPos < len(ts.Expressions); n++ {
				args = append(args, e.EmitExpression(ts.Expressions[exprPos], ind))
				exprPos++
			}
			suppressLabels = false
		}
	}

	if len(args) == 0 {
		return "()"
	}

	if newlines {
		inner := indent.Increase(ind)
		var b strings.Builder
		b.WriteString("(\n")
		for i, a := range args {
			b.WriteString(inner)
			b.WriteString(a)
			if i < len(args)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString(ind)
		b.WriteByte(')')
		return b.String()
	}

	return "(" + strings.Join(args, ", ") + ")"
}

// emitClosure renders a closure literal, inlining a single expression
// statement body on one line and falling back to a braced block otherwise.
func (e *Emitter) emitClosure(cl *ast.Closure, ind string) string {
	if len(cl.Statements) == 0 {
		return "{ }"
	}

	var header strings.Builder
	header.WriteByte('{')
	if len(cl.Parameters) > 0 {
		header.WriteByte(' ')
		names := make([]string, len(cl.Parameters))
		for i, p := range cl.Parameters {
			names[i] = p.Label
		}
		header.WriteString(strings.Join(names, ", "))
		header.WriteString(" ->")
	}

	if len(cl.Statements) == 1 {
		if es, ok := cl.Statements[0].(*ast.ExpressionStatement); ok {
			header.WriteByte(' ')
			header.WriteString(e.EmitExpression(es.Expr, ind))
			header.WriteString(" }")
			return header.String()
		}
	}

	header.WriteByte('\n')
	body := indent.Increase(indent.Increase(ind))
	header.WriteString(e.EmitBlock(cl.Statements, body))
	header.WriteString(indent.Increase(ind))
	header.WriteByte('}')
	return header.String()
}

// emitDot renders a member-access expression, lowering a sealed-class case
// constructor or an enum-class member reference when the left-hand side
// resolves against the registries.
func (e *Emitter) emitDot(d *ast.Dot, ind string) string {
	lhs := e.EmitExpression(d.LHS, ind)
	rhs := e.EmitExpression(d.RHS, ind)

	if e.Context.Registries.IsSealedClass(lhs) {
		return lhs + "." + util.CamelCapitalise(rhs) + "()"
	}

	segment := lhs
	if i := strings.LastIndexByte(lhs, '.'); i >= 0 {
		segment = lhs[i+1:]
	}
	if e.Context.Registries.IsEnumClass(segment) {
		return lhs + "." + util.UpperSnake(rhs)
	}

	return lhs + "." + rhs
}
