package saxml

import (
	"bufio"
	"io"
)

// byteSource is the ByteSource adapter from spec §4.1: a uniform view over
// an arbitrary io.Reader with one-byte lookahead, left-to-right and
// non-backtracking beyond that single byte of peek.
//
// Grounded on CatalinStratu-gordf/rdfloader/xmlreader.go's bufio.Reader-backed
// rune-at-a-time reader (readARune/peekARune/ignoreWhiteSpace), which is the
// only example in the retrieval pack that reads XML incrementally from an
// io.Reader instead of a fully materialized []byte.
type byteSource struct {
	r   *bufio.Reader
	pos int64
}

func newByteSource(r io.Reader) *byteSource {
	if br, ok := r.(*bufio.Reader); ok {
		return &byteSource{r: br}
	}
	return &byteSource{r: bufio.NewReader(r)}
}

// peek returns the next byte without consuming it. ok is false at EOF.
func (b *byteSource) peek() (c byte, ok bool, err error) {
	bs, err := b.r.Peek(1)
	if err != nil {
		if err == io.EOF {
			return 0, false, nil
		}
		return 0, false, err
	}
	return bs[0], true, nil
}

// advance consumes and returns the next byte. Reading past EOF is always a
// caller bug in the middle of a token read, so it is reported as PrematureEOF.
func (b *byteSource) advance() (byte, error) {
	c, err := b.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			return 0, newError(PrematureEOF, b.pos, "unexpected end of input")
		}
		return 0, err
	}
	b.pos++
	return c, nil
}

// isXMLSpace reports whether c is XML whitespace (space, tab, CR, LF).
func isXMLSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

// skipWhitespace consumes zero or more XML whitespace bytes.
func (b *byteSource) skipWhitespace() error {
	for {
		c, ok, err := b.peek()
		if err != nil {
			return err
		}
		if !ok || !isXMLSpace(c) {
			return nil
		}
		if _, err := b.advance(); err != nil {
			return err
		}
	}
}

// position is an opaque cursor usable for error reporting.
func (b *byteSource) position() int64 {
	return b.pos
}

// atEOF reports whether the next peek would see end of input, without
// treating that as an error.
func (b *byteSource) atEOF() (bool, error) {
	_, ok, err := b.peek()
	if err != nil {
		return false, err
	}
	return !ok, nil
}
