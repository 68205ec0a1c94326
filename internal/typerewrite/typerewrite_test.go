package typerewrite

import "testing"

func TestRewrite(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"()", "Unit"},
		{"[Int]", "MutableList<Int>"},
		{"[String: Int]", "MutableMap<String, Int>"},
		{"Int?", "Int?"},
		{"(Int, String)", "Pair<Int, String>"},
		{"(Int) -> String", "(Int) -> String"},
		{"(Int, Int) -> Bool", "(Int, Int) -> Bool"},
		{"ArrayClass<Double>", "MutableList<Double>"},
		{"DictionaryClass<String, Int>", "MutableMap<String, Int>"},
		{"Int8", "Byte"},
		{"Void", "Unit"},
		{"Character", "Char"},
	}
	for _, c := range cases {
		if got := Rewrite(c.in); got != c.want {
			t.Fatalf("Rewrite(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRewriteIdempotent(t *testing.T) {
	inputs := []string{"MutableList<Int>", "Pair<Int, String>", "Int?", "(Int) -> String"}
	for _, in := range inputs {
		once := Rewrite(in)
		twice := Rewrite(once)
		if once != twice {
			t.Fatalf("Rewrite not idempotent on %q: %q vs %q", in, once, twice)
		}
	}
}
