package pike

// leadLen maps a UTF-8 lead byte to the number of bytes in its sequence.
// Continuation bytes (0x80-0xBF) and the invalid lead bytes 0xF8-0xFF are
// treated as length-1, matching the original table exactly: no
// continuation-byte validation is performed anywhere in this package.
var leadLen = [256]byte{
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3,
	4, 4, 4, 4, 4, 4, 4, 4, 1, 1, 1, 1, 1, 1, 1, 1,
}

// decodeLen reports the byte length of the codepoint at the start of s.
// It returns 1 unconditionally when utf8 is false. With an empty s it
// returns 1 rather than indexing out of bounds; callers never invoke it
// past the end of the input.
func decodeLen(s []byte, utf8 bool) int {
	if !utf8 || len(s) == 0 {
		return 1
	}
	return int(leadLen[s[0]])
}

// decodeRune decodes one codepoint at the start of s, returning the
// codepoint and its byte length. Under utf8=false it returns the raw byte
// value with length 1. No continuation-byte validation is performed: a
// malformed sequence yields whatever its bytes assemble into, and a
// sequence truncated by the end of s yields the lead byte itself, with
// size still the length the lead byte announces (pathological input must
// not crash, but may produce an unspecified codepoint).
func decodeRune(s []byte, utf8 bool) (cp rune, size int) {
	if len(s) == 0 {
		return 0, 0
	}
	lead := rune(s[0])
	if !utf8 {
		return lead, 1
	}
	size = decodeLen(s, true)
	switch {
	case lead < 0xC0:
		return lead, size
	case lead < 0xE0:
		if len(s) < 2 {
			return lead, size
		}
		return ((lead & 0x1F) << 6) | (rune(s[1]) & 0x3F), size
	case lead < 0xF0:
		if len(s) < 3 {
			return lead, size
		}
		return ((lead & 0x0F) << 12) | ((rune(s[1]) & 0x3F) << 6) | (rune(s[2]) & 0x3F), size
	case lead < 0xF8:
		if len(s) < 4 {
			return lead, size
		}
		return ((lead & 0x07) << 18) | ((rune(s[1]) & 0x3F) << 12) | ((rune(s[2]) & 0x3F) << 6) | (rune(s[3]) & 0x3F), size
	default:
		return 0, size
	}
}
