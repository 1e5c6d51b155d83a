package saxml

// production identifies which grammar rule the scanner has committed to
// after looking at the byte(s) immediately following the cursor. Grounded
// on the teacher's fastxml.go TokenReader.Token()/scanner.go Scanner.Next()
// dispatch switch, converted from slice-indexed lookahead (the teacher
// always has the whole document buffered, so it can bytes.Index ahead for
// "<![CDATA[", "-->", etc.) to byteSource.peek()-based single-byte
// lookahead: each production is identified by consuming its distinguishing
// prefix one byte at a time rather than matching it as a whole slice.
type production int

const (
	prodEOF production = iota
	prodCharData
	prodStartTag
	prodEndTag
	prodProcInst
	prodComment
	prodCDATA
	prodMarkupDecl
)

// next inspects the byte(s) at the cursor and reports which production
// follows, consuming only the delimiter bytes that identify it ("<", "<?",
// "<!--", "<![CDATA[", "<!", "</"). The caller reads the production body
// with the matching reader (readProcInst, skipComment, readCDATABody,
// readMarkupDeclaration, readName, readCharData).
func next(src *byteSource) (production, error) {
	c, ok, err := src.peek()
	if err != nil {
		return prodEOF, err
	}
	if !ok {
		return prodEOF, nil
	}
	if c != '<' {
		return prodCharData, nil
	}
	if _, err := src.advance(); err != nil {
		return prodEOF, err
	}
	c2, ok, err := src.peek()
	if err != nil {
		return prodEOF, err
	}
	if !ok {
		return prodEOF, newError(PrematureEOF, src.position(), "unexpected end of input after '<'")
	}
	switch {
	case c2 == '?':
		if _, err := src.advance(); err != nil {
			return prodEOF, err
		}
		return prodProcInst, nil
	case c2 == '/':
		if _, err := src.advance(); err != nil {
			return prodEOF, err
		}
		return prodEndTag, nil
	case c2 == '!':
		if _, err := src.advance(); err != nil {
			return prodEOF, err
		}
		return scanBang(src)
	case isNameStartChar(c2):
		return prodStartTag, nil
	default:
		return prodEOF, newError(Malformed, src.position(), "unexpected character %q after '<'", c2)
	}
}

// scanBang disambiguates "<!--" (comment), "<![CDATA[" (CDATA section) and
// "<!KEYWORD" (markup declaration), having already consumed "<!". Each
// candidate literal is matched one byte at a time against src.peek()/
// advance(), matching the one-byte-lookahead contract rather than the
// teacher's bytes.HasPrefix on a whole buffered slice.
func scanBang(src *byteSource) (production, error) {
	c, ok, err := src.peek()
	if err != nil {
		return prodEOF, err
	}
	if !ok {
		return prodEOF, newError(PrematureEOF, src.position(), "unexpected end of input after '<!'")
	}
	switch c {
	case '-':
		if err := expectLiteral(src, "--"); err != nil {
			return prodEOF, err
		}
		return prodComment, nil
	case '[':
		if err := expectLiteral(src, "[CDATA["); err != nil {
			return prodEOF, err
		}
		return prodCDATA, nil
	default:
		return prodMarkupDecl, nil
	}
}

// expectLiteral consumes exactly len(lit) bytes, requiring each to match
// lit in order; any mismatch or premature EOF is MALFORMED/PREMATURE_EOF.
func expectLiteral(src *byteSource, lit string) error {
	for i := 0; i < len(lit); i++ {
		c, err := src.advance()
		if err != nil {
			return eofOrVerbatim(err, src.position(), "unexpected end of input, expected %q", lit)
		}
		if c != lit[i] {
			return newError(Malformed, src.position(), "expected %q", lit)
		}
	}
	return nil
}
