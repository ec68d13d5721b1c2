package sqlscan

// LocateStatementEnd returns the offset one past the ';' that terminates the
// statement whose body starts at or after start.
//
// The scan walks forward until the parenthesis depth returns to zero after
// having been positive, then continues to the next ';' outside a string
// literal. A ';' reached at depth zero before any '(' ends a bodiless
// statement (CREATE TABLE t AS SELECT ...;).
//
// ok is false when the body never closes, a stray ')' precedes it, or no
// terminator follows it. Callers treat that as a malformed statement.
func LocateStatementEnd(text string, start int) (end int, ok bool) {
	if start < 0 || start > len(text) {
		return 0, false
	}

	depth := 0
	opened := false
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		ch := text[i]

		if escaped {
			escaped = false
			continue
		}

		switch {
		case ch == '\\':
			escaped = true
		case ch == '\'':
			inString = !inString
		case inString:
			// literal content never affects depth or termination
		case ch == '(':
			depth++
			opened = true
		case ch == ')':
			depth--
			if depth < 0 {
				return 0, false
			}
			if opened && depth == 0 {
				return locateTerminator(text, i+1)
			}
		case ch == ';' && !opened:
			return i + 1, true
		}
	}

	return 0, false
}

// locateTerminator finds the first unescaped ';' outside a string literal at
// or after from and returns its offset + 1.
func locateTerminator(text string, from int) (int, bool) {
	inString := false
	escaped := false

	for i := from; i < len(text); i++ {
		ch := text[i]

		if escaped {
			escaped = false
			continue
		}

		switch {
		case ch == '\\':
			escaped = true
		case ch == '\'':
			inString = !inString
		case ch == ';' && !inString:
			return i + 1, true
		}
	}

	return 0, false
}
