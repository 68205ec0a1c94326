package emit

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gryphon/internal/ast"
	"gryphon/internal/typerewrite"
)

// EmitExpression is the expression-emitter entry point. Dispatch is
// exhaustive; ind is the current indentation, needed only by the few cases
// whose body can span multiple lines (Closure, Call, Tuple, TupleShuffle).
func (e *Emitter) EmitExpression(expr ast.Expression, ind string) string {
	switch v := expr.(type) {
	case *ast.Template:
		return e.emitTemplate(v, ind)

	case *ast.LiteralCode:
		return interpretEscapes(v.Raw)

	case *ast.LiteralDeclaration:
		return interpretEscapes(v.Raw)

	case *ast.Array:
		elems := make([]string, len(v.Elements))
		for i, el := range v.Elements {
			elems[i] = e.EmitExpression(el, ind)
		}
		return "mutableListOf(" + strings.Join(elems, ", ") + ")"

	case *ast.Dictionary:
		pairs := make([]string, len(v.Keys))
		for i := range v.Keys {
			k := e.EmitExpression(v.Keys[i], ind)
			val := e.EmitExpression(v.Values[i], ind)
			pairs[i] = k + " to " + val
		}
		return "mutableMapOf(" + strings.Join(pairs, ", ") + ")"

	case *ast.BinaryOperator:
		lhs := e.EmitExpression(v.LHS, ind)
		rhs := e.EmitExpression(v.RHS, ind)
		return lhs + " " + v.Op + " " + rhs

	case *ast.Call:
		return e.emitCall(v, ind)

	case *ast.Closure:
		return e.emitClosure(v, ind)

	case *ast.DeclarationReference:
		if idx := strings.IndexByte(v.Identifier, '('); idx >= 0 {
			return v.Identifier[:idx]
		}
		return v.Identifier

	case *ast.ReturnExpression:
		if v.Expr == nil {
			return "return"
		}
		return "return " + e.EmitExpression(v.Expr, ind)

	case *ast.Dot:
		return e.emitDot(v, ind)

	case *ast.LiteralString:
		return "\"" + v.Value + "\""

	case *ast.LiteralCharacter:
		return "'" + v.Value + "'"

	case *ast.InterpolatedString:
		var b strings.Builder
		b.WriteByte('"')
		for _, part := range v.Parts {
			if part.String != nil {
				if *part.String == "" {
					continue
				}
				b.WriteString(*part.String)
				continue
			}
			b.WriteString("${")
			b.WriteString(e.EmitExpression(part.Expr, ind))
			b.WriteByte('}')
		}
		b.WriteByte('"')
		return b.String()

	case *ast.PrefixUnary:
		return v.Op + e.EmitExpression(v.Expr, ind)

	case *ast.PostfixUnary:
		return e.EmitExpression(v.Expr, ind) + v.Op

	case *ast.IfExpression:
		cond := e.EmitExpression(v.Condition, ind)
		t := e.EmitExpression(v.TrueExpr, ind)
		f := e.EmitExpression(v.FalseExpr, ind)
		return "if (" + cond + ") { " + t + " } else { " + f + " }"

	case *ast.Type:
		return typerewrite.Rewrite(v.Name)

	case *ast.Subscript:
		obj := e.EmitExpression(v.Object, ind)
		idx := e.EmitExpression(v.Index, ind)
		return obj + "[" + idx + "]"

	case *ast.Parens:
		return "(" + e.EmitExpression(v.Expr, ind) + ")"

	case *ast.ForceValue:
		return e.EmitExpression(v.Expr, ind) + "!!"

	case *ast.Optional:
		return e.EmitExpression(v.Expr, ind) + "?"

	case *ast.LiteralInt:
		return strconv.FormatInt(v.Value, 10)

	case *ast.LiteralUInt:
		return strconv.FormatUint(v.Value, 10) + "u"

	case *ast.LiteralDouble:
		return strconv.FormatFloat(v.Value, 'g', -1, 64)

	case *ast.LiteralFloat:
		return strconv.FormatFloat(float64(v.Value), 'g', -1, 32) + "f"

	case *ast.LiteralBool:
		if v.Value {
			return "true"
		}
		return "false"

	case *ast.NilLiteral:
		return "null"

	case *ast.Tuple:
		return e.emitTuple(v, ind, nil, false)

	case *ast.TupleShuffle:
		return e.emitTupleShuffle(v, ind, false)

	case *ast.ExpressionError:
		return sentinel

	default:
		panic(fmt.Sprintf("emit: unhandled expression variant %T", expr))
	}
}

// emitTemplate substitutes each match key into pattern, longest key first,
// so one key being a prefix of another cannot produce order-dependent
// output.
func (e *Emitter) emitTemplate(t *ast.Template, ind string) string {
	keys := make([]string, 0, len(t.Matches))
	for k := range t.Matches {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	out := t.Pattern
	for _, k := range keys {
		out = strings.ReplaceAll(out, k, e.EmitExpression(t.Matches[k], ind))
	}
	return out
}

// interpretEscapes expands backslash-escape sequences in a raw literal-code
// string.
func interpretEscapes(raw string) string {
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) {
			i++
			switch raw[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			default:
				b.WriteByte('\\')
				b.WriteByte(raw[i])
			}
			continue
		}
		b.WriteByte(raw[i])
	}
	return b.String()
}
