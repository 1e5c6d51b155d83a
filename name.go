package saxml

import "bytes"

// isNameStartChar restricts Name's first byte to ASCII letters, '_' or ':',
// a deliberate narrowing from the full XML spec's Unicode NameStartChar
// production (spec §9: "extend the character class explicitly" if richer
// Unicode support is ever wanted; preserved as-is for compatibility).
func isNameStartChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c == ':'
}

// isNameChar allows letters, digits, '_', '-', '.' or ':' after the first byte.
func isNameChar(c byte) bool {
	return isNameStartChar(c) || (c >= '0' && c <= '9') || c == '-' || c == '.'
}

// readName reads a Name production from src. Grounded on the teacher's
// name.go (splitting a materialized token on ':') and element.go's character
// classification, converted from whole-slice indexing to one byte at a time
// since src is an unbounded stream here.
func readName(src *byteSource) (string, error) {
	first, ok, err := src.peek()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", newError(PrematureEOF, src.position(), "expected a name")
	}
	if !isNameStartChar(first) {
		return "", newError(Malformed, src.position(), "invalid name start character %q", first)
	}
	var buf bytes.Buffer
	c, err := src.advance()
	if err != nil {
		return "", err
	}
	buf.WriteByte(c)
	for {
		next, ok, err := src.peek()
		if err != nil {
			return "", err
		}
		if !ok || !isNameChar(next) {
			break
		}
		if _, err := src.advance(); err != nil {
			return "", err
		}
		buf.WriteByte(next)
	}
	return buf.String(), nil
}
