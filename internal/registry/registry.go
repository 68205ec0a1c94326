// Package registry holds the five translation-time lookup tables
// (sealed classes, enum classes, protocols, function translations, pure
// functions) plus the TranslationContext that carries them, an indentation
// string, and a run identifier for the emitter.
//
// The registries are owned by one TranslationContext value rather than
// kept as module-level mutable state, so independent concurrent
// translations need no external serialisation and no clear step between
// runs.
package registry

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"gryphon/internal/ast"
)

// FunctionTranslation is one entry of the function-translation table:
// the stored API name together with the TargetLang prefix and parameter
// names the call-site rewriter substitutes in.
type FunctionTranslation struct {
	SourceAPIName string
	TypeName      string
	Prefix        string
	Parameters    []string
}

// Registries holds the five lookup tables as plain ordered slices, owned
// by one TranslationContext.
type Registries struct {
	SealedClasses        []string
	EnumClasses           []string
	Protocols             []string
	FunctionTranslations  []FunctionTranslation
	PureFunctions         []*ast.FunctionDeclaration
}

// TranslationContext is held by the emitter for a whole run. It carries
// the registries (read-only during a run), an Indent string, and a RunID
// used to attribute diagnostics when multiple translations log to the
// same sink. The emitter passes indentation as an explicit argument and
// neither reads nor updates Indent.
type TranslationContext struct {
	Registries *Registries
	Indent     string
	RunID      string
}

// New returns a context at zero indentation with empty registries and a
// freshly minted run id.
func New() *TranslationContext {
	return &TranslationContext{
		Registries: &Registries{},
		Indent:     "",
		RunID:      uuid.NewString(),
	}
}

// WithIndent returns a shallow copy of tc at the given indentation,
// leaving the registries shared (they are read-only during emission).
func (tc *TranslationContext) WithIndent(indent string) *TranslationContext {
	cp := *tc
	cp.Indent = indent
	return &cp
}

// AddSealedClass registers name as lowering to a Kotlin sealed class.
func (r *Registries) AddSealedClass(name string) {
	r.SealedClasses = append(r.SealedClasses, name)
}

// AddEnumClass registers name as lowering to a Kotlin enum class.
func (r *Registries) AddEnumClass(name string) {
	r.EnumClasses = append(r.EnumClasses, name)
}

// AddProtocol registers name as lowering to a Kotlin interface.
func (r *Registries) AddProtocol(name string) {
	r.Protocols = append(r.Protocols, name)
}

// AddFunctionTranslation appends a function-translation entry. Order
// matters: lookups are first-match-wins over insertion order.
func (r *Registries) AddFunctionTranslation(t FunctionTranslation) {
	r.FunctionTranslations = append(r.FunctionTranslations, t)
}

// AddPureFunction registers fn as side-effect-free.
func (r *Registries) AddPureFunction(fn *ast.FunctionDeclaration) {
	r.PureFunctions = append(r.PureFunctions, fn)
}

// IsSealedClass reports whether name is a registered sealed class.
func (r *Registries) IsSealedClass(name string) bool {
	return slices.Contains(r.SealedClasses, name)
}

// IsEnumClass reports whether name is a registered enum class.
func (r *Registries) IsEnumClass(name string) bool {
	return slices.Contains(r.EnumClasses, name)
}

// IsProtocol reports whether name is a registered protocol/interface.
func (r *Registries) IsProtocol(name string) bool {
	return slices.Contains(r.Protocols, name)
}

// LookupFunctionTranslation performs the prefix-match lookup the
// function-translation registry uses: the stored SourceAPIName is
// matched against query with hasPrefix, first hit wins over insertion
// order.
func (r *Registries) LookupFunctionTranslation(query string) (FunctionTranslation, bool) {
	idx := slices.IndexFunc(r.FunctionTranslations, func(t FunctionTranslation) bool {
		return strings.HasPrefix(t.SourceAPIName, query)
	})
	if idx < 0 {
		return FunctionTranslation{}, false
	}
	return r.FunctionTranslations[idx], true
}

// IsPureFunction reports whether a function with the given bare name and
// function type was registered as pure. Comparison is by identifier+type
// rather than pointer identity, since passes may rebuild declarations.
func (r *Registries) IsPureFunction(prefix, functionType string) bool {
	return slices.ContainsFunc(r.PureFunctions, func(f *ast.FunctionDeclaration) bool {
		return f.Prefix == prefix && f.FunctionType == functionType
	})
}
