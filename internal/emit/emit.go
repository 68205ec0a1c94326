// Package emit implements the recursive AST-to-text translator: expression
// and statement emission plus the top-level driver, built on the type
// rewriter, the indent engine, and the sealed-class/enum-class/protocol
// registries.
package emit

import (
	"strings"

	"gryphon/internal/ast"
	"gryphon/internal/diag"
	"gryphon/internal/registry"
)

// sentinel is the in-band failure marker substituted for any subtree that
// violates the emitter's structural preconditions.
const sentinel = diag.Sentinel

// Emitter is the translator: single-threaded, non-suspending, recursive.
// It holds no mutable state of its own beyond the ctx and adapter it was
// built with; every Translate call on one Emitter value reads the same
// context's registries and reports into the same adapter's sink.
type Emitter struct {
	Context *registry.TranslationContext
	Diag    *diag.Adapter
}

// New builds an Emitter reporting structural errors through adapter and
// consulting ctx's registries.
func New(ctx *registry.TranslationContext, adapter *diag.Adapter) *Emitter {
	return &Emitter{Context: ctx, Diag: adapter}
}

// Translate emits declarations at zero indentation, then wraps any
// top-level statements in a synthetic `fun main(args: Array<String>)`
// entry point.
func (e *Emitter) Translate(tree *ast.GryphonAST) string {
	var decls strings.Builder
	for _, d := range tree.Declarations {
		decls.WriteString(e.EmitStatement(d, ""))
	}

	if len(tree.Statements) == 0 {
		return decls.String()
	}

	var out strings.Builder
	out.WriteString(decls.String())
	if decls.Len() > 0 {
		out.WriteString("\n")
	}
	out.WriteString("fun main(args: Array<String>) {\n")
	out.WriteString(e.EmitBlock(tree.Statements, "\t"))
	out.WriteString("}\n")
	return out.String()
}
