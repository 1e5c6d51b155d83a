package saxml

// skipComment consumes a comment body up to and including the first "-->",
// assuming "<!--" has already been consumed. No event is emitted for
// comments (spec §4.3). "--" inside the body is not rejected — a permissive
// deviation from strict XML preserved per spec §9 — grounded on the
// teacher's comment.go/decoder.go suffixComment scan.
func skipComment(src *byteSource) error {
	dashes := 0
	for {
		c, err := src.advance()
		if err != nil {
			return eofOrVerbatim(err, src.position(), "unterminated comment")
		}
		if c == '>' && dashes >= 2 {
			return nil
		}
		if c == '-' {
			dashes++
		} else {
			dashes = 0
		}
	}
}
