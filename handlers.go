package saxml

// Handler function types, one per event kind (spec §3's handler registry
// row: startDocument, endDocument, startTag, endTag, characters,
// processingInstruction, element). Grounded on spec.md §9's design note
// plus the teacher's xml.go dispatch-by-token-kind style, adapted from a
// single "visit one Token" callback to one statically-typed field per event
// so a caller only has to implement the events it cares about.
//
// AttributeIterator/CharIterator are passed by pointer rather than as
// interfaces: every implementation in this package is a single concrete,
// callback-duration-only borrowed view, and there is no second
// implementation to abstract over.
type (
	StartDocumentHandler          func(rootName string, attrs *AttributeIterator) error
	EndDocumentHandler            func(rootName string) error
	StartElementHandler           func(name string, attrs *AttributeIterator) error
	EndElementHandler             func(name string) error
	CharactersHandler             func(chars *CharIterator) error
	ProcessingInstructionHandler  func(target, body string) error
	ElementHandler                func(keyword, body string) error
)

// noop defaults, installed by New() so parser.go never has to nil-check a
// handler field before invoking it.
func noopStartDocument(string, *AttributeIterator) error { return nil }
func noopEndDocument(string) error                       { return nil }
func noopStartElement(string, *AttributeIterator) error  { return nil }
func noopEndElement(string) error                        { return nil }
func noopCharacters(*CharIterator) error                 { return nil }
func noopProcInst(string, string) error                  { return nil }
func noopElement(string, string) error                   { return nil }

// OnStartDocument registers h to run once, for the root element, just before
// the root's startTag event (spec §4.5). PIs and markup declarations in the
// prolog are delivered before it. Passing nil restores the no-op default.
func (p *Parser) OnStartDocument(h StartDocumentHandler) {
	if h == nil {
		h = noopStartDocument
	}
	p.onStartDocument = h
}

// OnEndDocument registers h to run once, when the root end-tag is consumed
// (spec §4.5). Passing nil restores the no-op default.
func (p *Parser) OnEndDocument(h EndDocumentHandler) {
	if h == nil {
		h = noopEndDocument
	}
	p.onEndDocument = h
}

// OnStartElement registers h to run for every start-tag, including the
// root's. Passing nil restores the no-op default.
func (p *Parser) OnStartElement(h StartElementHandler) {
	if h == nil {
		h = noopStartElement
	}
	p.onStartElement = h
}

// OnEndElement registers h to run for every end-tag, including the root's.
// Passing nil restores the no-op default.
func (p *Parser) OnEndElement(h EndElementHandler) {
	if h == nil {
		h = noopEndElement
	}
	p.onEndElement = h
}

// OnCharacters registers h to run for every contiguous character-data or
// CDATA run. Passing nil restores the no-op default.
func (p *Parser) OnCharacters(h CharactersHandler) {
	if h == nil {
		h = noopCharacters
	}
	p.onCharacters = h
}

// OnProcessingInstruction registers h to run for every `<?target body?>`.
// Passing nil restores the no-op default.
func (p *Parser) OnProcessingInstruction(h ProcessingInstructionHandler) {
	if h == nil {
		h = noopProcInst
	}
	p.onProcInst = h
}

// OnElement registers h to run for every `<!KEYWORD body>` markup
// declaration. Passing nil restores the no-op default.
func (p *Parser) OnElement(h ElementHandler) {
	if h == nil {
		h = noopElement
	}
	p.onElement = h
}
