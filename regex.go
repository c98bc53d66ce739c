// Package repike provides a small regular-expression engine built on a
// Thompson-NFA bytecode compiler and a Pike VM: guaranteed linear-time
// matching with submatch capture, no backtracking.
//
// Syntax is a restricted subset grounded on the traditional tinyre/re1
// family rather than Perl's: literals, ., ^, $, character classes with
// \d \s \w shorthand, \< \> word-boundary assertions, \B non-boundary,
// ( ) capturing groups, (?:...) non-capturing groups, |, and the
// quantifiers ? * + {n} {n,} {n,m}, each with a lazy ? suffix.
//
// Basic usage:
//
//	re, err := repike.Compile(`\d+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	match := re.Find([]byte("hello 123 world"))
//	fmt.Println(string(match)) // "123"
package repike

import "github.com/coregx/repike/pike"

// Regex is a compiled pattern ready to match against byte slices or
// strings. Every Match/Find method runs on the single *pike.VM the Regex
// owns and reuses its scratch state, so a *Regex is not safe for
// concurrent use by multiple goroutines; Regex values compiled separately
// share nothing.
type Regex struct {
	vm      *pike.VM
	pattern string
	numCaps int
}

// Compile compiles pattern with the default options (UTF-8 decoding,
// case-sensitive matching). See CompileWithOptions for case-insensitive or
// raw-byte matching.
func Compile(pattern string) (*Regex, error) {
	return CompileWithOptions(pattern, pike.DefaultOptions())
}

// CompileWithOptions compiles pattern with caller-specified Options.
func CompileWithOptions(pattern string, opts pike.Options) (*Regex, error) {
	prog, err := pike.Compile(pattern, opts)
	if err != nil {
		return nil, err
	}
	return &Regex{
		vm:      pike.NewVM(prog),
		pattern: pattern,
		numCaps: prog.NumCaps,
	}, nil
}

// MustCompile compiles pattern and panics if it fails. Intended for
// patterns known to be valid at compile time, e.g. package-level vars.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("repike: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// Match reports whether b contains any match of the pattern.
func (r *Regex) Match(b []byte) bool {
	return r.vm.Match(b)
}

// MatchString reports whether s contains any match of the pattern.
func (r *Regex) MatchString(s string) bool {
	return r.vm.Match([]byte(s))
}

// Find returns the leftmost match in b, or nil if there is none.
func (r *Regex) Find(b []byte) []byte {
	loc := r.vm.FindSubmatchIndex(b)
	if loc == nil {
		return nil
	}
	return b[loc[0]:loc[1]]
}

// FindString returns the leftmost match in s, or "" if there is none.
// Use FindStringIndex to distinguish "no match" from an empty match.
func (r *Regex) FindString(s string) string {
	b := r.Find([]byte(s))
	if b == nil {
		return ""
	}
	return string(b)
}

// FindIndex returns the [start, end) byte offsets of the leftmost match
// in b, or nil if there is none.
func (r *Regex) FindIndex(b []byte) []int {
	loc := r.vm.FindSubmatchIndex(b)
	if loc == nil {
		return nil
	}
	return loc[:2]
}

// FindStringIndex is FindIndex for a string argument.
func (r *Regex) FindStringIndex(s string) []int {
	return r.FindIndex([]byte(s))
}

// FindSubmatch returns the leftmost match together with every capturing
// group's text. Result[0] is the whole match; result[i] is group i, or
// nil if group i did not participate in the match. A nil return means no
// match at all.
func (r *Regex) FindSubmatch(b []byte) [][]byte {
	loc := r.vm.FindSubmatchIndex(b)
	if loc == nil {
		return nil
	}
	out := make([][]byte, r.numCaps)
	for i := range out {
		s, e := loc[2*i], loc[2*i+1]
		if s < 0 || e < 0 {
			continue
		}
		out[i] = b[s:e]
	}
	return out
}

// FindStringSubmatch is FindSubmatch for a string argument.
func (r *Regex) FindStringSubmatch(s string) []string {
	groups := r.FindSubmatch([]byte(s))
	if groups == nil {
		return nil
	}
	out := make([]string, len(groups))
	for i, g := range groups {
		if g != nil {
			out[i] = string(g)
		}
	}
	return out
}

// FindSubmatchIndex returns [start0, end0, start1, end1, ...] offsets for
// the leftmost match and every capturing group, or nil if there is no
// match. A group that did not participate carries -1 for both offsets.
func (r *Regex) FindSubmatchIndex(b []byte) []int {
	return r.vm.FindSubmatchIndex(b)
}

// FindStringSubmatchIndex is FindSubmatchIndex for a string argument.
func (r *Regex) FindStringSubmatchIndex(s string) []int {
	return r.vm.FindSubmatchIndex([]byte(s))
}

// FindAll returns every non-overlapping successive match of the pattern
// in b, leftmost first. n bounds the number of matches returned; n < 0
// means unbounded.
func (r *Regex) FindAll(b []byte, n int) [][]byte {
	if n == 0 {
		return nil
	}
	var out [][]byte
	pos := 0
	for pos <= len(b) {
		loc := r.vm.FindSubmatchIndex(b[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		out = append(out, b[start:end])
		if end > pos {
			pos = end
		} else {
			pos++
		}
		if n > 0 && len(out) >= n {
			break
		}
	}
	return out
}

// FindAllString is FindAll for a string argument.
func (r *Regex) FindAllString(s string, n int) []string {
	matches := r.FindAll([]byte(s), n)
	if matches == nil {
		return nil
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = string(m)
	}
	return out
}

// String returns the source pattern text the Regex was compiled from.
func (r *Regex) String() string {
	return r.pattern
}

// NumSubexp returns the number of capturing groups, not counting group 0
// (the whole match).
func (r *Regex) NumSubexp() int {
	return r.numCaps - 1
}
