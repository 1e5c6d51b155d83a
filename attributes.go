package saxml

import "bytes"

// Attribute is a materialized (name, value) pair, per spec §3. It is only
// valid for the duration of the start-tag/start-document callback that
// produced the AttributeIterator it came from.
type Attribute struct {
	Name  string
	Value string
}

// AttributeIterator advances through a start-tag's attribute list. Grounded
// on the teacher's fastxml.go parseAttrs and element.go RawAttrs/Attrs
// callback-driven walk, converted from index-bounded slice scanning (the
// teacher always has the whole tag buffered) to unbounded streaming reads
// that stop at the tag terminator '>' or '/>', per spec §4.4.
//
// parser.go only ever drives the streaming mode itself, via
// CollectAttributes, to materialize a start-tag's attributes in one pass
// before any handler runs; handlers are always handed a buffered iterator
// over the result. This is what lets the root element's attributes be
// replayed twice — once for startDocument, once for startTag (spec §4.5) —
// which a single-pass streaming iterator could not do on its own.
type AttributeIterator struct {
	src        *byteSource
	buffered   []Attribute
	isBuffered bool
	idx        int
	exhausted  bool // true once the terminator has been observed (streaming mode)
}

func newAttributeIterator(src *byteSource) *AttributeIterator {
	return &AttributeIterator{src: src}
}

// newBufferedAttributeIterator wraps an already-materialized attribute
// slice so it can be replayed through the same Next() API a second time,
// for the root element's startDocument/startTag double delivery.
func newBufferedAttributeIterator(attrs []Attribute) *AttributeIterator {
	return &AttributeIterator{buffered: attrs, isBuffered: true}
}

// Next returns the next attribute, or ok=false once attributes are exhausted
// (in streaming mode, the byte cursor is then positioned at '>' or the '/'
// of '/>').
func (it *AttributeIterator) Next() (Attribute, bool, error) {
	if it.isBuffered {
		if it.idx >= len(it.buffered) {
			return Attribute{}, false, nil
		}
		a := it.buffered[it.idx]
		it.idx++
		return a, true, nil
	}
	if it.exhausted {
		return Attribute{}, false, nil
	}
	if err := it.src.skipWhitespace(); err != nil {
		return Attribute{}, false, err
	}
	c, ok, err := it.src.peek()
	if err != nil {
		return Attribute{}, false, err
	}
	if !ok {
		return Attribute{}, false, newError(PrematureEOF, it.src.position(), "unterminated start-tag")
	}
	if c == '>' || c == '/' {
		it.exhausted = true
		return Attribute{}, false, nil
	}
	name, err := readName(it.src)
	if err != nil {
		return Attribute{}, false, err
	}
	if err := it.src.skipWhitespace(); err != nil {
		return Attribute{}, false, err
	}
	eq, err := it.src.advance()
	if err != nil {
		return Attribute{}, false, err
	}
	if eq != '=' {
		return Attribute{}, false, newError(Malformed, it.src.position(), "expected '=' after attribute name %q", name)
	}
	if err := it.src.skipWhitespace(); err != nil {
		return Attribute{}, false, err
	}
	quote, err := it.src.advance()
	if err != nil {
		return Attribute{}, false, err
	}
	if quote != '\'' && quote != '"' {
		return Attribute{}, false, newError(Malformed, it.src.position(), "expected quote to start attribute value, got %q", quote)
	}
	var buf bytes.Buffer
	for {
		c, err := it.src.advance()
		if err != nil {
			return Attribute{}, false, err
		}
		if c == quote {
			break
		}
		buf.WriteByte(c)
	}
	return Attribute{Name: name, Value: buf.String()}, true, nil
}
