// Package indent implements the fixed-width indentation unit and the
// hard line-length threshold the emitter re-wraps long lines against.
package indent

// Unit is the indentation string added per nesting level.
const Unit = "\t"

// LineLimit is the hard column threshold that triggers the one-shot
// multi-line retry for function headers and call expressions.
const LineLimit = 100

// Increase returns the indentation one level deeper than cur.
func Increase(cur string) string {
	return cur + Unit
}

// Decrease returns the indentation one level shallower than cur.
// Decreasing an already-empty indent is a no-op rather than panicking or
// slicing out of range.
func Decrease(cur string) string {
	if len(cur) < len(Unit) {
		return cur
	}
	return cur[:len(cur)-len(Unit)]
}

// Exceeds reports whether a rendered line (without its trailing newline)
// is at or past the hard limit, which is what triggers a re-emission with
// newlines for function headers and call expressions.
func Exceeds(line string) bool {
	return len(line) >= LineLimit
}
