package engine

// Match reports whether key matches the glob pattern the way SCAN MATCH
// does: '*' matches any run of bytes, '?' one byte, '[...]' a class with
// optional '^' negation and 'a-z' ranges, and '\' escapes the next byte.
// The empty pattern matches everything.
func Match(pattern string, key []byte) bool {
	if pattern == "" {
		return true
	}

	return match([]byte(pattern), key)
}

func match(pattern, key []byte) bool {
	for len(pattern) > 0 {
		switch pattern[0] {
		case '*':
			for len(pattern) > 1 && pattern[1] == '*' {
				pattern = pattern[1:]
			}

			if len(pattern) == 1 {
				return true
			}

			for i := 0; i <= len(key); i++ {
				if match(pattern[1:], key[i:]) {
					return true
				}
			}

			return false
		case '?':
			if len(key) == 0 {
				return false
			}

			key = key[1:]
			pattern = pattern[1:]
		case '[':
			if len(key) == 0 {
				return false
			}

			var ok bool

			ok, pattern = matchClass(pattern[1:], key[0])
			if !ok {
				return false
			}

			key = key[1:]
		default:
			if pattern[0] == '\\' && len(pattern) > 1 {
				pattern = pattern[1:]
			}

			if len(key) == 0 || key[0] != pattern[0] {
				return false
			}

			key = key[1:]
			pattern = pattern[1:]
		}
	}

	return len(key) == 0
}

// matchClass matches c against the class starting right after '['. It
// returns the pattern remaining after the closing ']'.
func matchClass(pattern []byte, c byte) (bool, []byte) {
	negate := len(pattern) > 0 && pattern[0] == '^'
	if negate {
		pattern = pattern[1:]
	}

	found := false

	for len(pattern) > 0 && pattern[0] != ']' {
		switch {
		case pattern[0] == '\\' && len(pattern) > 1:
			if pattern[1] == c {
				found = true
			}

			pattern = pattern[2:]
		case len(pattern) > 2 && pattern[1] == '-' && pattern[2] != ']':
			lo, hi := pattern[0], pattern[2]
			if lo > hi {
				lo, hi = hi, lo
			}

			if c >= lo && c <= hi {
				found = true
			}

			pattern = pattern[3:]
		default:
			if pattern[0] == c {
				found = true
			}

			pattern = pattern[1:]
		}
	}

	if len(pattern) > 0 {
		pattern = pattern[1:]
	}

	return found != negate, pattern
}
