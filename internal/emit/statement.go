package emit

import (
	"fmt"
	"strings"

	"gryphon/internal/ast"
	"gryphon/internal/indent"
	"gryphon/internal/typerewrite"
)

// EmitStatement is the statement-emitter entry point. Dispatch is
// exhaustive; reaching an unhandled Go type is a programming error, not a
// structural AST violation, and panics.
func (e *Emitter) EmitStatement(stmt ast.Statement, ind string) string {
	switch v := stmt.(type) {
	case *ast.Comment:
		return ind + "//" + v.Text + "\n"

	case *ast.Import:
		return ""

	case *ast.Extension:
		return e.Diag.UnexpectedStructure("extension survived to the emitter", v)

	case *ast.Defer:
		return e.Diag.UnexpectedStructure("defer outside a function body", v)

	case *ast.Typealias:
		return ind + "typealias " + v.Name + " = " + typerewrite.Rewrite(v.Target) + "\n"

	case *ast.Class:
		return e.emitClass(v, ind)

	case *ast.Struct:
		return e.emitStruct(v, ind)

	case *ast.CompanionObject:
		return ind + "companion object {\n" + e.EmitBlock(v.Members, indent.Increase(ind)) + ind + "}\n"

	case *ast.Enum:
		return e.emitEnum(v, ind)

	case *ast.Do:
		return ind + "try {\n" + e.EmitBlock(v.Statements, indent.Increase(ind)) + ind + "}\n"

	case *ast.Catch:
		return e.emitCatch(v, ind)

	case *ast.ForEach:
		head := ind + "for (" + e.EmitExpression(v.Variable, ind) + " in " + e.EmitExpression(v.Collection, ind) + ") {\n"
		return head + e.EmitBlock(v.Statements, indent.Increase(ind)) + ind + "}\n"

	case *ast.While:
		head := ind + "while (" + e.EmitExpression(v.Condition, ind) + ") {\n"
		return head + e.EmitBlock(v.Statements, indent.Increase(ind)) + ind + "}\n"

	case *ast.FunctionDeclaration:
		return e.emitFunction(v, ind)

	case *ast.Protocol:
		return ind + "interface " + v.Name + " {\n" + e.EmitBlock(v.Members, indent.Increase(ind)) + ind + "}\n"

	case *ast.Throw:
		return ind + "throw " + e.EmitExpression(v.Expr, ind) + "\n"

	case *ast.VariableDeclaration:
		return e.emitVariableDeclaration(v, ind)

	case *ast.Assignment:
		return ind + e.EmitExpression(v.LHS, ind) + " = " + e.EmitExpression(v.RHS, ind) + "\n"

	case *ast.If:
		return e.emitIf(v, ind, false)

	case *ast.Switch:
		return e.emitSwitch(v, ind)

	case *ast.Return:
		if v.Expr == nil {
			return ind + "return\n"
		}
		return ind + "return " + e.EmitExpression(v.Expr, ind) + "\n"

	case *ast.Break:
		return ind + "break\n"

	case *ast.Continue:
		return ind + "continue\n"

	case *ast.ExpressionStatement:
		text := e.EmitExpression(v.Expr, ind)
		if text == "" {
			return "\n"
		}
		return ind + text + "\n"

	case *ast.Error:
		return sentinel

	default:
		panic(fmt.Sprintf("emit: unhandled statement variant %T", stmt))
	}
}

func (e *Emitter) emitClass(c *ast.Class, ind string) string {
	var b strings.Builder
	b.WriteString(ind)
	b.WriteString("open class ")
	b.WriteString(c.Name)
	if len(c.Inherits) > 0 {
		b.WriteString(": ")
		b.WriteString(e.renderInherits(c.Inherits))
	}
	b.WriteString(" {\n")
	b.WriteString(e.EmitBlock(c.Members, indent.Increase(ind)))
	b.WriteString(ind)
	b.WriteString("}\n")
	return b.String()
}

// renderInherits joins rewritten inherited type names, appending `()` to
// every name that is not a registered protocol.
func (e *Emitter) renderInherits(names []string) string {
	parts := make([]string, len(names))
	for i, n := range names {
		rewritten := typerewrite.Rewrite(n)
		if e.Context.Registries.IsProtocol(n) {
			parts[i] = rewritten
		} else {
			parts[i] = rewritten + "()"
		}
	}
	return strings.Join(parts, ", ")
}

// emitStruct renders a struct as a data class: header built from stored
// properties, non-property members trailing in a block.
func (e *Emitter) emitStruct(s *ast.Struct, ind string) string {
	var stored []*ast.VariableDeclaration
	var rest []ast.Statement
	for _, m := range s.Members {
		if vd, ok := m.(*ast.VariableDeclaration); ok && isStoredProperty(vd) {
			stored = append(stored, vd)
			continue
		}
		rest = append(rest, m)
	}

	var b strings.Builder
	if s.Annotations != "" {
		b.WriteString(ind)
		b.WriteString(s.Annotations)
		b.WriteString("\n")
	}
	b.WriteString(ind)
	b.WriteString("data class ")
	b.WriteString(s.Name)
	b.WriteString("(")

	propLines := make([]string, len(stored))
	for i, vd := range stored {
		text := e.emitVariableDeclaration(vd, indent.Increase(ind))
		propLines[i] = strings.TrimSuffix(text, "\n")
	}
	if len(propLines) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(propLines, ",\n"))
		b.WriteString("\n")
		b.WriteString(ind)
	}
	b.WriteString(")")

	if len(s.Inherits) > 0 {
		b.WriteString(": ")
		b.WriteString(e.renderInherits(s.Inherits))
	}

	if len(rest) > 0 {
		b.WriteString(" {\n")
		b.WriteString(e.EmitBlock(rest, indent.Increase(ind)))
		b.WriteString(ind)
		b.WriteString("}")
	}
	b.WriteString("\n")
	return b.String()
}

func isStoredProperty(vd *ast.VariableDeclaration) bool {
	return vd.Getter == nil && vd.Setter == nil && !vd.IsStatic
}

// emitEnum renders an enum: enum-class form for registered enum classes,
// sealed-class form otherwise.
func (e *Emitter) emitEnum(en *ast.Enum, ind string) string {
	access := en.Access
	if access != "" {
		access += " "
	}

	if e.Context.Registries.IsEnumClass(en.Name) {
		var b strings.Builder
		b.WriteString(ind)
		b.WriteString(access)
		b.WriteString("enum class ")
		b.WriteString(en.Name)
		if len(en.Inherits) > 0 {
			b.WriteString(": ")
			b.WriteString(e.renderInherits(en.Inherits))
		}
		b.WriteString(" {\n")
		inner := indent.Increase(ind)
		for i, el := range en.Elements {
			name := el.Name
			if el.Annotations != "" {
				name = el.Annotations + " " + name
			}
			b.WriteString(inner)
			b.WriteString(name)
			if i == len(en.Elements)-1 {
				b.WriteString(";\n")
			} else {
				b.WriteString(",\n")
			}
		}
		b.WriteString(e.EmitBlock(en.Members, inner))
		b.WriteString(ind)
		b.WriteString("}\n")
		return b.String()
	}

	var b strings.Builder
	b.WriteString(ind)
	b.WriteString(access)
	b.WriteString("sealed class ")
	b.WriteString(en.Name)
	if len(en.Inherits) > 0 {
		b.WriteString(": ")
		b.WriteString(e.renderInherits(en.Inherits))
	}
	b.WriteString(" {\n")
	inner := indent.Increase(ind)
	var elemBlock strings.Builder
	for _, el := range en.Elements {
		elemBlock.WriteString(inner)
		if el.Annotations != "" {
			elemBlock.WriteString(el.Annotations)
			elemBlock.WriteString(" ")
		}
		elemBlock.WriteString("class ")
		elemBlock.WriteString(capitalise(el.Name))
		if len(el.AssociatedValues) > 0 {
			vals := make([]string, len(el.AssociatedValues))
			for i, p := range el.AssociatedValues {
				vals[i] = "val " + p.Label + ": " + typerewrite.Rewrite(p.Type)
			}
			elemBlock.WriteString("(")
			elemBlock.WriteString(strings.Join(vals, ", "))
			elemBlock.WriteString(")")
		}
		elemBlock.WriteString(": ")
		elemBlock.WriteString(en.Name)
		elemBlock.WriteString("()\n")
	}
	b.WriteString(elemBlock.String())
	membersText := e.EmitBlock(en.Members, inner)
	if elemBlock.Len() > 0 && membersText != "" {
		b.WriteString("\n")
	}
	b.WriteString(membersText)
	b.WriteString(ind)
	b.WriteString("}\n")
	return b.String()
}

func capitalise(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}

func (e *Emitter) emitCatch(c *ast.Catch, ind string) string {
	var head string
	if c.Declaration != nil {
		head = ind + "catch (" + c.Declaration.Name + ": " + typerewrite.Rewrite(c.Declaration.Type) + ") {\n"
	} else {
		head = ind + "catch {\n"
	}
	return head + e.EmitBlock(c.Statements, indent.Increase(ind)) + ind + "}\n"
}

// emitVariableDeclaration renders a variable/property declaration,
// choosing val/var from mutability and the getter/setter shape.
func (e *Emitter) emitVariableDeclaration(vd *ast.VariableDeclaration, ind string) string {
	if vd.Implicit {
		return ""
	}

	keyword := "val"
	switch {
	case vd.Getter != nil && vd.Setter != nil:
		keyword = "var"
	case vd.Getter != nil:
		keyword = "val"
	case !vd.IsLet:
		keyword = "var"
	}

	var b strings.Builder
	if vd.Annotations != "" {
		b.WriteString(ind)
		b.WriteString(vd.Annotations)
		b.WriteString("\n")
	}
	b.WriteString(ind)
	b.WriteString(keyword)
	b.WriteString(" ")

	if vd.ExtendsType != "" {
		rewritten := typerewrite.Rewrite(vd.ExtendsType)
		if lt := strings.IndexByte(rewritten, '<'); lt >= 0 && strings.HasSuffix(rewritten, ">") {
			generics := rewritten[lt+1 : len(rewritten)-1]
			b.WriteString("<")
			b.WriteString(generics)
			b.WriteString("> ")
		}
		b.WriteString(rewritten)
		b.WriteString(".")
	}

	b.WriteString(vd.Name)
	b.WriteString(": ")
	b.WriteString(typerewrite.Rewrite(vd.Type))
	if vd.Expr != nil {
		b.WriteString(" = ")
		b.WriteString(e.EmitExpression(vd.Expr, ind))
	}
	b.WriteString("\n")

	if vd.Getter != nil {
		b.WriteString(indent.Increase(ind))
		b.WriteString("get() {\n")
		b.WriteString(e.EmitBlock(vd.Getter.Statements, indent.Increase(indent.Increase(ind))))
		b.WriteString(indent.Increase(ind))
		b.WriteString("}\n")
	}
	if vd.Setter != nil {
		b.WriteString(indent.Increase(ind))
		b.WriteString("set(newValue) {\n")
		b.WriteString(e.EmitBlock(vd.Setter.Statements, indent.Increase(indent.Increase(ind))))
		b.WriteString(indent.Increase(ind))
		b.WriteString("}\n")
	}

	return b.String()
}
