package saxml

import "bytes"

// readProcInst reads a processing instruction's target and body, assuming
// "<?" has already been consumed. Grounded on the teacher's
// procinst.go/decoder.go parseProcInst (first space separates target from
// body, "?>" terminates), converted to an incremental one-byte-at-a-time
// "?>" scan since the body is unbounded here.
func readProcInst(src *byteSource) (target, body string, err error) {
	target, err = readName(src)
	if err != nil {
		return "", "", err
	}
	if next, ok, perr := src.peek(); perr != nil {
		return "", "", perr
	} else if ok && isXMLSpace(next) {
		if _, aerr := src.advance(); aerr != nil {
			return "", "", aerr
		}
	}
	var buf bytes.Buffer
	lastWasQuestion := false
	for {
		c, aerr := src.advance()
		if aerr != nil {
			return "", "", eofOrVerbatim(aerr, src.position(), "unterminated processing instruction %q", target)
		}
		if c == '>' && lastWasQuestion {
			out := buf.Bytes()
			return target, string(out[:len(out)-1]), nil
		}
		buf.WriteByte(c)
		lastWasQuestion = c == '?'
	}
}
