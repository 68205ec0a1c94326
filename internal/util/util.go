// Package util implements the small dependency contracts the emitter
// relies on but does not own: splitting a type-argument list, detecting
// enveloping parentheses, and the identifier case converters used by enum
// lowering.
package util

import "strings"

// DefaultSeparators is the separator list SplitTypeList uses when the
// caller does not supply one.
var DefaultSeparators = []string{", "}

// SplitTypeList splits s at top-level occurrences of any separator,
// never inside angle brackets, parentheses, or square brackets.
func SplitTypeList(s string, separators ...string) []string {
	seps := separators
	if len(seps) == 0 {
		seps = DefaultSeparators
	}
	var parts []string
	depth := 0
	last := 0
	i := 0
	for i < len(s) {
		switch s[i] {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			if depth > 0 {
				depth--
			}
		}
		if depth == 0 {
			if sep, ok := matchAny(s[i:], seps); ok {
				parts = append(parts, s[last:i])
				i += len(sep)
				last = i
				continue
			}
		}
		i++
	}
	parts = append(parts, s[last:])
	return parts
}

func matchAny(s string, seps []string) (string, bool) {
	for _, sep := range seps {
		if sep != "" && strings.HasPrefix(s, sep) {
			return sep, true
		}
	}
	return "", false
}

// IsInEnvelopingParentheses reports whether s is wrapped in a single pair
// of parentheses that envelop the whole string, i.e. stripping them leaves
// a balanced interior with no dangling top-level close before the end.
func IsInEnvelopingParentheses(s string) bool {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return false
	}
	depth := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(s)-1 {
				return false
			}
		}
	}
	return depth == 0
}

// CamelCapitalise upper-cases the first letter of s, used to turn an enum
// case name (`rgb`) into a sealed-subclass name (`Rgb`).
func CamelCapitalise(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = toUpperRune(r[0])
	return string(r)
}

// UpperSnake converts a camelCase identifier into UPPER_SNAKE_CASE, used
// to turn an enum case name into a Kotlin enum-class constant.
func UpperSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if isUpperRune(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(toLowerRune(r))
		} else {
			b.WriteRune(r)
		}
	}
	return strings.ToUpper(b.String())
}

func toUpperRune(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func toLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func isUpperRune(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// TypeMapping is the static SourceLang->TargetLang type-name lookup table
// TypeRewriter falls back to when no structural rule applies.
var TypeMapping = map[string]string{
	"Int":       "Int",
	"Int8":      "Byte",
	"Int16":     "Short",
	"Int32":     "Int",
	"Int64":     "Long",
	"UInt":      "UInt",
	"Double":    "Double",
	"Float":     "Float",
	"String":    "String",
	"Character": "Char",
	"Any":       "Any",
	"AnyObject": "Any",
	"Void":      "Unit",
	"Error":     "Exception",
}

// GetTypeMapping looks up name in the static table, reporting whether a
// mapping exists.
func GetTypeMapping(name string) (string, bool) {
	v, ok := TypeMapping[name]
	return v, ok
}
