package pike

import (
	"reflect"
	"testing"
)

func compileVM(t *testing.T, pattern string, opts Options) *VM {
	t.Helper()
	prog, err := Compile(pattern, opts)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	return NewVM(prog)
}

// groupText extracts the slice of input covered by capture group g from a
// FindSubmatchIndex result, or "" (not matched) if the group did not
// participate.
func groupText(input []byte, loc []int, g int) string {
	s, e := loc[2*g], loc[2*g+1]
	if s < 0 || e < 0 {
		return ""
	}
	return string(input[s:e])
}

// TestConcreteScenarios exercises spec.md §8's scenario table.
func TestConcreteScenarios(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		opts    Options
		input   string
		wantG0  string
		wantG1  string
		hasG1   bool
	}{
		{"1_group_repeat", `a(b+)c`, DefaultOptions(), "abbbc", "abbbc", "bbb", true},
		{"2_alt_repeat_last_wins", `(foo|bar)+`, DefaultOptions(), "foobarfoo", "foobarfoo", "foo", true},
		{"3_lazy_dot_star", `a.*?b`, DefaultOptions(), "axxbyyb", "axxb", "", false},
		{"4_greedy_dot_star", `a.*b`, DefaultOptions(), "axxbyyb", "axxbyyb", "", false},
		{"5_bounded_digits", `\d{2,4}`, DefaultOptions(), "12345", "1234", "", false},
		{"7_word_boundaries", `\<\w+\>`, DefaultOptions(), "  hi there", "hi", "", false},
		{"8_zero_quantifier", `a{0}b`, DefaultOptions(), "b", "b", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vm := compileVM(t, tc.pattern, tc.opts)
			loc := vm.FindSubmatchIndex([]byte(tc.input))
			if loc == nil {
				t.Fatalf("no match for %q against %q", tc.pattern, tc.input)
			}
			if got := groupText([]byte(tc.input), loc, 0); got != tc.wantG0 {
				t.Errorf("g0 = %q, want %q", got, tc.wantG0)
			}
			if tc.hasG1 {
				if got := groupText([]byte(tc.input), loc, 1); got != tc.wantG1 {
					t.Errorf("g1 = %q, want %q", got, tc.wantG1)
				}
			}
		})
	}
}

func TestCaseInsensitiveClass(t *testing.T) {
	vm := compileVM(t, `^[A-Z]+$`, Options{CaseInsensitive: true, UTF8: true})
	if !vm.Match([]byte("Hello")) {
		t.Fatal("expected case-insensitive [A-Z]+ to match \"Hello\"")
	}
}

func TestZeroLengthInputAnchors(t *testing.T) {
	vm := compileVM(t, `^$`, DefaultOptions())
	if !vm.Match([]byte("")) {
		t.Error("^$ should match empty input")
	}
	dotVM := compileVM(t, `.`, DefaultOptions())
	if dotVM.Match([]byte("")) {
		t.Error(". should not match empty input")
	}
}

func TestCaseInsensitiveLiteral(t *testing.T) {
	vm := compileVM(t, `A`, Options{CaseInsensitive: true, UTF8: true})
	if !vm.Match([]byte("a")) {
		t.Error("case-insensitive A should match a")
	}
	vm2 := compileVM(t, `a`, Options{CaseInsensitive: true, UTF8: true})
	if !vm2.Match([]byte("A")) {
		t.Error("case-insensitive a should match A")
	}
}

func TestGroupZeroSpansWholeMatch(t *testing.T) {
	vm := compileVM(t, `(a)(b)(c)`, DefaultOptions())
	loc := vm.FindSubmatchIndex([]byte("xabcx"))
	if loc == nil {
		t.Fatal("expected match")
	}
	if loc[0] != 1 || loc[1] != 4 {
		t.Fatalf("group 0 = [%d,%d), want [1,4)", loc[0], loc[1])
	}
}

func TestUnmatchedGroupReportsMinusOne(t *testing.T) {
	vm := compileVM(t, `(a)|(b)`, DefaultOptions())
	loc := vm.FindSubmatchIndex([]byte("b"))
	if loc == nil {
		t.Fatal("expected match")
	}
	if loc[2] != -1 || loc[3] != -1 {
		t.Errorf("unmatched group 1 = [%d,%d), want [-1,-1)", loc[2], loc[3])
	}
	if loc[4] == -1 {
		t.Error("group 2 should have matched")
	}
}

func TestMatchIdempotent(t *testing.T) {
	vm := compileVM(t, `a(b+)c`, DefaultOptions())
	input := []byte("xxabbbcxx")
	first := vm.FindSubmatchIndex(input)
	second := vm.FindSubmatchIndex(input)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated match not idempotent: %v vs %v", first, second)
	}
}

func TestNonCapturingGroupAlternation(t *testing.T) {
	vm := compileVM(t, `(?:foo|bar)baz`, DefaultOptions())
	if !vm.Match([]byte("foobaz")) || !vm.Match([]byte("barbaz")) {
		t.Error("non-capturing alternation should match either branch")
	}
}

func TestWordBoundaryNotB(t *testing.T) {
	vm := compileVM(t, `a\Bb`, DefaultOptions())
	if !vm.Match([]byte("ab")) {
		t.Error("\\B between two word chars should hold")
	}
}

// TestLeftmostAlternativeWins guards against a match found by a
// lower-priority thread overwriting one already found by a higher-priority
// thread at the same input position: both alternatives of (a)|(a) compile
// to same-priority-level CHAR threads that reach MATCH together on "a",
// and the leftmost (group 1) branch must win.
func TestLeftmostAlternativeWins(t *testing.T) {
	vm := compileVM(t, `(a)|(a)`, DefaultOptions())
	loc := vm.FindSubmatchIndex([]byte("a"))
	if loc == nil {
		t.Fatal("expected match")
	}
	if loc[2] == -1 || loc[3] == -1 {
		t.Error("group 1 (the leftmost, higher-priority alternative) should have matched")
	}
	if loc[4] != -1 || loc[5] != -1 {
		t.Error("group 2 should not have matched: group 1 has higher priority at the same position")
	}
}

func TestAnchorsAreStartEndOfInputOnly(t *testing.T) {
	// ^/$ must not gain multi-line semantics: a newline inside the input
	// is just another byte, not a line boundary.
	vm := compileVM(t, `^b`, DefaultOptions())
	if vm.Match([]byte("a\nb")) {
		t.Error("^b must not match after an embedded newline")
	}
	vm2 := compileVM(t, `a$`, DefaultOptions())
	if vm2.Match([]byte("a\nb")) {
		t.Error("a$ must not match before an embedded newline")
	}
}
