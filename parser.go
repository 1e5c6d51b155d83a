package saxml

import (
	"errors"
	"io"
)

// docPhase tracks which of the three document phases (spec §4.4) the parser
// is in. The zero value is phaseProlog so a freshly zeroed parseState starts
// correctly.
type docPhase int

const (
	phaseProlog docPhase = iota
	phaseBody
	phaseEpilog
)

// parseState is the resumable state of one parse: the byte source, the
// element stack, the current phase, and a queue of not-yet-delivered
// handler invocations. Grounded on spec.md §3's ParseState row and §4.6's
// resume controller; there is no teacher precedent for this (the teacher's
// decoder.go is not resumable), so the shape follows the spec directly.
//
// The resume mechanism is the pending queue itself: every handler
// invocation this parser makes is appended to pending rather than called
// directly, and run() drains that queue one call at a time. When a handler
// raises ErrAborted, run() stops mid-queue and returns — the remaining
// queued calls (if any) and the byte cursor (already advanced past
// whatever token produced them) are exactly what a later ParseContinue
// needs to pick up from. Because parseState lives in memory for the life
// of the Parser rather than being serialized, a plain slice of closures is
// sufficient; there is no need to encode "where we stopped" as data.
type parseState struct {
	src      *byteSource
	stack    []string
	phase    docPhase
	rootName string
	sawToken bool
	pending  []func(*Parser) (bool, error)
}

// Parser drives the pushdown state machine described in spec.md §4.4,
// dispatching recognized lexical productions through the handler registry
// in handlers.go. The zero value is not usable; construct with New.
type Parser struct {
	onStartDocument StartDocumentHandler
	onEndDocument   EndDocumentHandler
	onStartElement  StartElementHandler
	onEndElement    EndElementHandler
	onCharacters    CharactersHandler
	onProcInst      ProcessingInstructionHandler
	onElement       ElementHandler

	state *parseState
}

// New returns a Parser with every handler slot set to a no-op, ready to
// have handlers installed via the On* methods and driven with Parse.
func New() *Parser {
	return &Parser{
		onStartDocument: noopStartDocument,
		onEndDocument:   noopEndDocument,
		onStartElement:  noopStartElement,
		onEndElement:    noopEndElement,
		onCharacters:    noopCharacters,
		onProcInst:      noopProcInst,
		onElement:       noopElement,
	}
}

// Parse starts a fresh document read from r. It returns aborted=true if a
// handler raised ErrAborted, in which case the parser retains enough state
// for a later ParseContinue call to resume from the exact next byte (spec
// §4.6). Any other error is fatal: the parser's resumable state is
// discarded and ParseContinue will report aborted=false without invoking
// any handler.
func (p *Parser) Parse(r io.Reader) (aborted bool, err error) {
	p.state = &parseState{src: newByteSource(r)}
	return p.run()
}

// ParseContinue resumes a parse previously aborted by Parse or
// ParseContinue. r is accepted for API symmetry with Parse, but is not
// read from: the persisted byteSource from the aborted call is the
// authoritative stream, since it may already hold buffered-but-unread
// bytes that a fresh wrap of r would lose. Calling ParseContinue when the
// previous call did not return aborted=true is undefined by spec.md §4.6;
// this implementation reports aborted=false without invoking any handler.
func (p *Parser) ParseContinue(r io.Reader) (aborted bool, err error) {
	if p.state == nil {
		return false, nil
	}
	return p.run()
}

// run drains the pending handler-call queue and then the byte stream,
// alternating between the two, until the document finishes, a handler
// aborts, or a fatal error occurs.
func (p *Parser) run() (bool, error) {
	st := p.state
	for {
		for len(st.pending) > 0 {
			call := st.pending[0]
			st.pending = st.pending[1:]
			aborted, err := call(p)
			if err != nil {
				p.state = nil
				return false, err
			}
			if aborted {
				return true, nil
			}
		}

		if st.phase == phaseProlog || st.phase == phaseEpilog {
			if err := st.src.skipWhitespace(); err != nil {
				p.state = nil
				return false, err
			}
		}

		prod, err := next(st.src)
		if err != nil {
			p.state = nil
			return false, err
		}
		if prod == prodEOF {
			if st.phase == phaseEpilog {
				p.state = nil
				return false, nil
			}
			p.state = nil
			return false, newError(PrematureEOF, st.src.position(), "unexpected end of input")
		}

		if err := p.dispatch(st, prod); err != nil {
			p.state = nil
			return false, err
		}
	}
}

// classifyAbort distinguishes the ABORTED sentinel from a genuine handler
// failure. A handler-returned non-abort error is fatal and propagates
// verbatim, same as a well-formedness error (spec §7).
func classifyAbort(err error) (bool, error) {
	if err == nil {
		return false, nil
	}
	if errors.Is(err, ErrAborted) {
		return true, nil
	}
	return false, err
}

// dispatch consumes one lexical production's token body and queues the
// handler call(s) it produces, mutating phase/stack state immediately
// (queued handler calls only defer the callback itself, never the parser's
// own bookkeeping) so that an abort mid-queue still leaves the cursor and
// phase exactly where spec.md §4.6 requires.
func (p *Parser) dispatch(st *parseState, prod production) error {
	switch prod {
	case prodCharData:
		if st.phase != phaseBody {
			return newError(Malformed, st.src.position(), "character data is not allowed outside the document body")
		}
		text, err := readCharData(st.src)
		if err != nil {
			return err
		}
		st.sawToken = true
		queueCharacters(st, text)
		return nil

	case prodCDATA:
		if st.phase != phaseBody {
			return newError(Malformed, st.src.position(), "CDATA section is not allowed outside the document body")
		}
		text, err := readCDATABody(st.src)
		if err != nil {
			return err
		}
		st.sawToken = true
		queueCharacters(st, text)
		return nil

	case prodComment:
		if err := skipComment(st.src); err != nil {
			return err
		}
		st.sawToken = true
		return nil

	case prodProcInst:
		return p.dispatchProcInst(st)

	case prodMarkupDecl:
		if st.phase == phaseEpilog {
			return newError(Malformed, st.src.position(), "markup declaration is not allowed in the document epilog")
		}
		keyword, body, err := readMarkupDeclaration(st.src)
		if err != nil {
			return err
		}
		st.sawToken = true
		st.pending = append(st.pending, func(p *Parser) (bool, error) {
			return classifyAbort(p.onElement(keyword, body))
		})
		return nil

	case prodStartTag:
		return p.dispatchStartTag(st)

	case prodEndTag:
		return p.dispatchEndTag(st)
	}
	return nil
}

func queueCharacters(st *parseState, text string) {
	st.pending = append(st.pending, func(p *Parser) (bool, error) {
		return classifyAbort(p.onCharacters(&CharIterator{text: text}))
	})
}

// dispatchProcInst reads a PI and enforces the "<?xml?> only as the very
// first token" rule (spec §4.4/§9): `<?xml?>` is syntactically an ordinary
// PI, legal anywhere a PI is legal, except that a target of "xml" is only
// well-formed when it is the first token in the entire document.
func (p *Parser) dispatchProcInst(st *parseState) error {
	target, body, err := readProcInst(st.src)
	if err != nil {
		return err
	}
	if target == "xml" && st.sawToken {
		return newError(Malformed, st.src.position(), "<?xml?> declaration is only legal as the first token in the document")
	}
	st.sawToken = true
	st.pending = append(st.pending, func(p *Parser) (bool, error) {
		return classifyAbort(p.onProcInst(target, body))
	})
	return nil
}

// dispatchStartTag reads a start-tag's name, attributes and terminator.
// Attributes are collected eagerly into a slice via the streaming
// AttributeIterator (attributes.go) rather than handed to the handler as a
// live, lazily-advancing view: the root element's attributes must be
// replayed twice (once for startDocument, once for startTag, spec §4.5),
// which a single-pass streaming iterator cannot do. Collecting up front
// also means the byte cursor has already reached the tag terminator before
// any handler runs, satisfying the §4.6 abort-cursor guarantee regardless
// of whether or how much of the iterator a handler consumes.
func (p *Parser) dispatchStartTag(st *parseState) error {
	if st.phase == phaseEpilog {
		return newError(Malformed, st.src.position(), "start-tag is not allowed in the document epilog")
	}
	name, err := readName(st.src)
	if err != nil {
		return err
	}
	attrs, err := CollectAttributes(newAttributeIterator(st.src))
	if err != nil {
		return err
	}
	term, err := st.src.advance()
	if err != nil {
		return eofOrVerbatim(err, st.src.position(), "unterminated start-tag %q", name)
	}
	selfClosing := false
	switch term {
	case '/':
		selfClosing = true
		c2, err := st.src.advance()
		if err != nil {
			return eofOrVerbatim(err, st.src.position(), "unterminated start-tag %q", name)
		}
		if c2 != '>' {
			return newError(Malformed, st.src.position(), "expected '>' after '/' in start-tag %q", name)
		}
	case '>':
	default:
		return newError(Malformed, st.src.position(), "expected '>' to terminate start-tag %q", name)
	}

	st.sawToken = true
	isRoot := st.phase == phaseProlog
	if isRoot {
		st.rootName = name
		st.phase = phaseBody
		st.pending = append(st.pending, func(p *Parser) (bool, error) {
			return classifyAbort(p.onStartDocument(name, newBufferedAttributeIterator(attrs)))
		})
	}
	st.pending = append(st.pending, func(p *Parser) (bool, error) {
		return classifyAbort(p.onStartElement(name, newBufferedAttributeIterator(attrs)))
	})

	if !selfClosing {
		st.stack = append(st.stack, name)
		return nil
	}

	st.pending = append(st.pending, func(p *Parser) (bool, error) {
		return classifyAbort(p.onEndElement(name))
	})
	if isRoot {
		st.phase = phaseEpilog
		st.pending = append(st.pending, func(p *Parser) (bool, error) {
			return classifyAbort(p.onEndDocument(name))
		})
	}
	return nil
}

// dispatchEndTag reads an end-tag, checks it against the innermost open
// element (TAG_MISMATCH on mismatch, spec §4.4), and queues endTag/
// endDocument handler calls.
func (p *Parser) dispatchEndTag(st *parseState) error {
	if st.phase != phaseBody {
		return newError(Malformed, st.src.position(), "end-tag is not allowed here")
	}
	name, err := readName(st.src)
	if err != nil {
		return err
	}
	if err := st.src.skipWhitespace(); err != nil {
		return err
	}
	c, err := st.src.advance()
	if err != nil {
		return eofOrVerbatim(err, st.src.position(), "unterminated end-tag %q", name)
	}
	if c != '>' {
		return newError(Malformed, st.src.position(), "expected '>' to terminate end-tag %q", name)
	}
	if len(st.stack) == 0 || st.stack[len(st.stack)-1] != name {
		return newError(TagMismatch, st.src.position(), "end-tag %q does not match innermost open element", name)
	}
	st.stack = st.stack[:len(st.stack)-1]
	st.sawToken = true

	st.pending = append(st.pending, func(p *Parser) (bool, error) {
		return classifyAbort(p.onEndElement(name))
	})
	if len(st.stack) == 0 {
		st.phase = phaseEpilog
		st.pending = append(st.pending, func(p *Parser) (bool, error) {
			return classifyAbort(p.onEndDocument(name))
		})
	}
	return nil
}
