package saxml

import "bytes"

// CharIterator exposes the text of one contiguous character-data or CDATA
// run to a characters handler. Valid only for the duration of that callback
// (spec §5/§6); each run is handed over in a fresh CharIterator holding its
// own copy of the text.
type CharIterator struct {
	text string
}

// Text returns the string contents of the current run, verbatim: not
// trimmed, not entity-decoded (spec §9 — this core passes entity references
// through as-is rather than guessing at the original's intent).
func (c *CharIterator) Text() string {
	return c.text
}

// readCharData reads a CharData run (spec §4.3): bytes up to the next '<' or
// EOF, emitted verbatim. Grounded on the teacher's chardata.go/scanner.go,
// minus entity decoding (see DESIGN.md).
func readCharData(src *byteSource) (string, error) {
	var buf bytes.Buffer
	for {
		c, ok, err := src.peek()
		if err != nil {
			return "", err
		}
		if !ok || c == '<' {
			break
		}
		if _, err := src.advance(); err != nil {
			return "", err
		}
		buf.WriteByte(c)
	}
	return buf.String(), nil
}

// readCDATABody reads the body of a <![CDATA[ ... ]]> section, assuming the
// "<![CDATA[" prefix has already been consumed. The terminator is the first
// "]]>" found by a left-to-right greedy scan (spec §4.3): a run like
// "]]]>" emits one "]" into the body before the terminator (and "]]]]>"
// emits two), matching
// the teacher's scanner.go bytes.Index(buf, "]]>") behavior reimplemented
// incrementally (the byteSource only guarantees one byte of lookahead, so
// the "how many trailing ']' have we buffered" state is tracked locally
// rather than re-peeked from the source).
func readCDATABody(src *byteSource) (string, error) {
	var buf bytes.Buffer
	trailingBrackets := 0
	for {
		c, err := src.advance()
		if err != nil {
			return "", eofOrVerbatim(err, src.position(), "unterminated CDATA section")
		}
		if c == '>' && trailingBrackets >= 2 {
			out := buf.Bytes()
			return string(out[:len(out)-2]), nil
		}
		buf.WriteByte(c)
		if c == ']' {
			trailingBrackets++
		} else {
			trailingBrackets = 0
		}
	}
}
