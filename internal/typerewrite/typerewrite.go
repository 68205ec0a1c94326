// Package typerewrite implements the recursive rewrite of a SourceLang
// type string into its TargetLang form.
package typerewrite

import (
	"strings"

	"gryphon/internal/util"
)

// Rewrite recursively rewrites a SourceLang type string into TargetLang
// form. Rules are order-significant — first match wins.
func Rewrite(s string) string {
	// Rule 1: the literal empty-tuple spelling of Void.
	if s == "()" {
		return "Unit"
	}

	// Rule 2: trailing optional marker.
	if strings.HasSuffix(s, "?") {
		return Rewrite(s[:len(s)-1]) + "?"
	}

	// Rules 3/4: array and dictionary sugar, `[T]` / `[K: V]`.
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		inner := s[1 : len(s)-1]
		if idx := topLevelIndex(inner, ":"); idx >= 0 {
			key := strings.TrimSpace(inner[:idx])
			val := strings.TrimSpace(inner[idx+1:])
			return "MutableMap<" + Rewrite(key) + ", " + Rewrite(val) + ">"
		}
		return "MutableList<" + Rewrite(inner) + ">"
	}

	// Rule 5: explicit array-class spelling.
	if strings.HasPrefix(s, "ArrayClass<") && strings.HasSuffix(s, ">") {
		inner := s[len("ArrayClass<") : len(s)-1]
		return "MutableList<" + Rewrite(inner) + ">"
	}

	// Rule 6: explicit dictionary-class spelling.
	if strings.HasPrefix(s, "DictionaryClass<") && strings.HasSuffix(s, ">") {
		inner := s[len("DictionaryClass<") : len(s)-1]
		parts := util.SplitTypeList(inner)
		if len(parts) == 2 {
			return "MutableMap<" + Rewrite(strings.TrimSpace(parts[0])) + ", " + Rewrite(strings.TrimSpace(parts[1])) + ">"
		}
		return s
	}

	// Rule 7: enveloping parens — tuple-to-Pair, or just grouping.
	if util.IsInEnvelopingParentheses(s) {
		inner := s[1 : len(s)-1]
		parts := util.SplitTypeList(inner)
		if len(parts) == 2 {
			return "Pair<" + Rewrite(strings.TrimSpace(parts[0])) + ", " + Rewrite(strings.TrimSpace(parts[1])) + ">"
		}
		return Rewrite(strings.TrimSpace(inner))
	}

	// Rule 8: function types.
	if components, ok := splitTopLevelArrow(s); ok {
		rewritten := make([]string, len(components))
		for i, c := range components {
			c = strings.TrimSpace(c)
			if i == len(components)-1 {
				rewritten[i] = Rewrite(c)
				continue
			}
			rewritten[i] = rewriteFunctionParamComponent(c)
		}
		return strings.Join(rewritten, " -> ")
	}

	// Rule 9: static mapping table fallthrough.
	if mapped, ok := util.GetTypeMapping(s); ok {
		return mapped
	}
	return s
}

// rewriteFunctionParamComponent handles a non-last component of a function
// type: if it is enveloping-parenthesised, its comma-separated parts are
// individually recursed and the result re-wrapped in parens; otherwise it
// is recursed alone.
func rewriteFunctionParamComponent(c string) string {
	if !util.IsInEnvelopingParentheses(c) {
		return Rewrite(c)
	}
	inner := strings.TrimSpace(c[1 : len(c)-1])
	if inner == "" {
		return "()"
	}
	parts := util.SplitTypeList(inner)
	rewritten := make([]string, len(parts))
	for i, p := range parts {
		rewritten[i] = Rewrite(strings.TrimSpace(p))
	}
	return "(" + strings.Join(rewritten, ", ") + ")"
}

// topLevelIndex returns the byte index of the first top-level occurrence
// of sep in s (not nested inside <>, (), or []), or -1.
func topLevelIndex(s, sep string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			if depth > 0 {
				depth--
			}
		}
		if depth == 0 && strings.HasPrefix(s[i:], sep) {
			return i
		}
	}
	return -1
}

// splitTopLevelArrow splits s at every top-level " -> " occurrence. It
// reports ok=false when no top-level arrow exists.
func splitTopLevelArrow(s string) ([]string, bool) {
	const arrow = " -> "
	depth := 0
	var parts []string
	last := 0
	found := false
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
		if depth == 0 && strings.HasPrefix(s[i:], arrow) {
			parts = append(parts, s[last:i])
			i += len(arrow)
			last = i
			found = true
			continue
		}
		i++
	}
	if !found {
		return nil, false
	}
	parts = append(parts, s[last:])
	return parts, true
}
