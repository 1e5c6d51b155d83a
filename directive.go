package saxml

import (
	"bytes"
	"strings"
)

// readMarkupDeclaration reads a <!KEYWORD body> markup declaration, assuming
// "<!" has already been consumed and the comment/CDATA prefixes have already
// been ruled out by the scanner. Grounded on the teacher's
// directive.go/decoder.go parsePotentialDirective, extended to respect
// nested '[' ... ']' (spec §4.3, for internal DTD subsets) which the
// teacher's flat bytes.IndexByte(buf, '>') scan never needed to handle.
func readMarkupDeclaration(src *byteSource) (keyword, body string, err error) {
	keyword, err = readName(src)
	if err != nil {
		return "", "", err
	}
	var buf bytes.Buffer
	depth := 0
	for {
		c, aerr := src.advance()
		if aerr != nil {
			return "", "", eofOrVerbatim(aerr, src.position(), "unterminated markup declaration %q", keyword)
		}
		if c == '>' && depth == 0 {
			return keyword, strings.TrimSpace(buf.String()), nil
		}
		if c == '[' {
			depth++
		} else if c == ']' && depth > 0 {
			depth--
		}
		buf.WriteByte(c)
	}
}
