package pike

// isASCIIDigit, isASCIISpace, and isASCIIWord mirror C's isdigit/isspace
// plus '_' under the "C" locale: ASCII only, never touching codepoints
// above 127. They back the \d \s \w family inside a CLASS instruction.
func isASCIIDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isASCIISpace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

func isASCIIAlnum(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isASCIIWord is the narrow, \w-inside-a-class definition: alnum or '_',
// ASCII only. isWordRune below is the broader definition used by the
// top-level word-boundary assertions.
func isASCIIWord(c rune) bool {
	return isASCIIAlnum(c) || c == '_'
}

// isWordRune is the word-boundary definition used by \<, \>, and \B: the
// ASCII word test, extended so that every codepoint above 127 also counts
// as a word character (spec.md 4.B, last sentence).
func isWordRune(c rune) bool {
	return isASCIIAlnum(c) || c == '_' || c > 127
}

// asciiLower folds a single codepoint the way C's tolower() does under the
// "C" locale: only 'A'-'Z' are touched. This is the full extent of case
// folding this engine performs; non-ASCII codepoints always compare
// byte-exact regardless of the case-insensitive flag.
func asciiLower(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

// classMatch evaluates the CLASS instruction whose opcode is at insts[pc]
// against codepoint c. It returns the "positive" flag on a hit and its
// negation on a miss, implementing both normal and negated ([^...]) classes
// uniformly.
func classMatch(insts []int32, pc int, c rune, foldCase bool) bool {
	positive := insts[pc+1] != 0
	n := int(insts[pc+2])
	p := pc + 3
	for i := 0; i < n; i++ {
		lo := insts[p]
		hi := insts[p+1]
		if lo == classShorthandLo {
			switch rune(hi) {
			case 'd':
				if isASCIIDigit(c) {
					return positive
				}
			case 'D':
				if !isASCIIDigit(c) {
					return positive
				}
			case 's':
				if isASCIISpace(c) {
					return positive
				}
			case 'S':
				if !isASCIISpace(c) {
					return positive
				}
			case 'w':
				if isASCIIWord(c) {
					return positive
				}
			case 'W':
				if !isASCIIWord(c) {
					return positive
				}
			}
		} else if !foldCase {
			if c >= rune(lo) && c <= rune(hi) {
				return positive
			}
		} else {
			cl := asciiLower(c)
			if cl >= asciiLower(rune(lo)) && cl <= asciiLower(rune(hi)) {
				return positive
			}
		}
		p += 2
	}
	return !positive
}

// classSlots returns the total instruction-slot width of the CLASS
// instruction at insts[pc], including its opcode slot: opcode + positive
// flag + pair count + 2 slots per pair.
func classSlots(insts []int32, pc int) int {
	n := int(insts[pc+2])
	return 3 + 2*n
}
