package pike

// parseHexDigits reads exactly n hex digits starting at pattern[pos] and
// returns their value. ok is false if fewer than n hex digits are available
// or a non-hex-digit byte is encountered, mirroring the original's _toi.
func parseHexDigits(pattern string, pos, n int) (val rune, ok bool) {
	if pos+n > len(pattern) {
		return 0, false
	}
	for i := 0; i < n; i++ {
		c := pattern[pos+i]
		var d rune
		switch {
		case c >= '0' && c <= '9':
			d = rune(c - '0')
		case c >= 'a' && c <= 'f':
			d = rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = rune(c-'A') + 10
		default:
			return 0, false
		}
		val = val<<4 | d
	}
	return val, true
}

// parseEscape decodes the escape sequence beginning at pattern[pos], where
// pos is the index of the character immediately following the backslash
// that introduced it. It returns the codepoint the escape denotes and the
// number of pattern bytes consumed starting at pos (not counting the
// backslash itself). utf8 controls how an unrecognized escape's literal
// target is decoded, matching the compile-time Options.UTF8 the rest of
// the pattern is parsed with.
//
// \d \D \s \S \w \W \< \> \B are NOT handled here: those are structural
// (class shorthand or boundary assertion), not single-codepoint escapes,
// and are dispatched earlier by the compiler.
func parseEscape(pattern string, pos int, utf8 bool) (cp rune, consumed int, err error) {
	if pos >= len(pattern) {
		return 0, 0, ErrTrailingBackslash
	}
	c := pattern[pos]
	switch c {
	case 'n':
		return '\n', 1, nil
	case 'r':
		return '\r', 1, nil
	case 't':
		return '\t', 1, nil
	case 'b':
		return 0x08, 1, nil
	case 'f':
		return '\f', 1, nil
	case 'v':
		return '\v', 1, nil
	case 'x':
		v, ok := parseHexDigits(pattern, pos+1, 2)
		if !ok {
			return 0, 0, ErrBadHexEscape
		}
		return v, 3, nil
	case 'u':
		v, ok := parseHexDigits(pattern, pos+1, 4)
		if !ok {
			return 0, 0, ErrBadHexEscape
		}
		return v, 5, nil
	case 'U':
		v, ok := parseHexDigits(pattern, pos+1, 8)
		if !ok {
			return 0, 0, ErrBadHexEscape
		}
		return v, 9, nil
	default:
		// Any other \X (including \a) is a literal X, not a control escape.
		r, size := decodeRune([]byte(pattern[pos:]), utf8)
		return r, size, nil
	}
}
