package saxml

import "encoding/xml"

// This file is an optional interop layer converting the event data handed
// to callbacks into encoding/xml's Token types, for callers that want to
// feed an existing xml.Token-based pipeline without rewriting it against
// this package's handler signatures. Grounded on the teacher's own token.go
// (Name/Attr/StartElement/... .XML() conversion methods) and xml.go
// (XMLAttr/XMLStartElement), adapted from converting the teacher's
// zero-copy []byte-backed Token values to converting this package's
// already-materialized string/Attribute values — there is no unsafe
// aliasing to preserve here, since nothing in the streaming core retains a
// whole-document buffer to alias into.

// CollectAttributes drains an AttributeIterator into a slice, for callers
// that want a materialized attribute list instead of iterating live. The
// iterator is exhausted after this returns.
func CollectAttributes(it *AttributeIterator) ([]Attribute, error) {
	var attrs []Attribute
	for {
		attr, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return attrs, nil
		}
		attrs = append(attrs, attr)
	}
}

// ToXMLName converts a bare element/attribute name to an xml.Name. Names
// observed by this parser carry no namespace resolution (spec §9 — no
// namespace processing), so Space is always empty; a colon-containing name
// such as "soap:Envelope" is kept intact in Local.
func ToXMLName(name string) xml.Name {
	return xml.Name{Local: name}
}

// ToXMLAttr converts an Attribute to an xml.Attr.
func ToXMLAttr(a Attribute) xml.Attr {
	return xml.Attr{Name: ToXMLName(a.Name), Value: a.Value}
}

// ToXMLStartElement converts a start-element event's name and materialized
// attributes into an xml.StartElement.
func ToXMLStartElement(name string, attrs []Attribute) xml.StartElement {
	se := xml.StartElement{Name: ToXMLName(name)}
	if len(attrs) > 0 {
		se.Attr = make([]xml.Attr, len(attrs))
		for i, a := range attrs {
			se.Attr[i] = ToXMLAttr(a)
		}
	}
	return se
}

// ToXMLEndElement converts an end-element event's name into an
// xml.EndElement.
func ToXMLEndElement(name string) xml.EndElement {
	return xml.EndElement{Name: ToXMLName(name)}
}

// ToXMLCharData converts a characters event's text into xml.CharData.
// The bytes are not entity-decoded (spec §9), matching this package's
// verbatim-passthrough policy.
func ToXMLCharData(text string) xml.CharData {
	return xml.CharData(text)
}

// ToXMLProcInst converts a processing-instruction event into an
// xml.ProcInst.
func ToXMLProcInst(target, body string) xml.ProcInst {
	return xml.ProcInst{Target: target, Inst: []byte(body)}
}

// ToXMLDirective converts a markup-declaration event into an xml.Directive.
// encoding/xml has no separate "keyword" field on Directive, so the keyword
// is reattached to the front of the body to reconstruct the declaration's
// original text.
func ToXMLDirective(keyword, body string) xml.Directive {
	if body == "" {
		return xml.Directive(keyword)
	}
	return xml.Directive(keyword + " " + body)
}
