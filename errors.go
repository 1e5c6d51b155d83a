package saxml

import "fmt"

// ErrorCode discriminates the fatal/sentinel conditions this parser reports.
// The set mirrors the original fixture's xml::PREMATURE_EOF, xml::TAG_MISMATCH,
// xml::MALFORMED and xml::ABORTED distinctions.
type ErrorCode int

const (
	// PrematureEOF is reported when input ends while a token is incomplete
	// or the element stack is non-empty.
	PrematureEOF ErrorCode = iota + 1
	// TagMismatch is reported when an end-tag name does not match the
	// innermost open start-tag.
	TagMismatch
	// Malformed is reported for any other lexical or structural violation.
	Malformed
	// Aborted is not a failure; it is the sentinel by which a handler
	// signals cooperative early termination.
	Aborted
)

func (c ErrorCode) String() string {
	switch c {
	case PrematureEOF:
		return "PREMATURE_EOF"
	case TagMismatch:
		return "TAG_MISMATCH"
	case Malformed:
		return "MALFORMED"
	case Aborted:
		return "ABORTED"
	default:
		return "UNKNOWN"
	}
}

// Error is the error type returned for every fatal condition and for the
// cooperative-abort sentinel. Offset is the byte position, per byteSource,
// at which the condition was detected.
type Error struct {
	Code   ErrorCode
	Msg    string
	Offset int64
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s (offset %d)", e.Code, e.Msg, e.Offset)
}

// Is lets callers write errors.Is(err, saxml.ErrAborted) and similar against
// the package-level sentinels below without comparing Offset/Msg.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Package-level sentinels for errors.Is against a code, independent of the
// offset/message a given occurrence carries.
var (
	ErrPrematureEOF = &Error{Code: PrematureEOF}
	ErrTagMismatch  = &Error{Code: TagMismatch}
	ErrMalformed    = &Error{Code: Malformed}
	// ErrAborted is the sentinel a handler returns (or wraps) to request
	// cooperative abort. It is not itself a failure.
	ErrAborted = &Error{Code: Aborted}
)

func newError(code ErrorCode, offset int64, format string, args ...interface{}) *Error {
	return &Error{Code: code, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// eofOrVerbatim classifies an error returned by byteSource.advance() inside
// a token reader's terminator/body loop. advance() already converts a
// genuine io.EOF into a *Error{Code: PrematureEOF}; this only re-stamps that
// case with the caller's more specific message. Any other error — a real
// I/O failure from the underlying io.Reader — is returned untouched, per
// spec.md §7 ("I/O errors from the byte source are surfaced to the caller
// verbatim"): it must not be swallowed into a fabricated PrematureEOF.
func eofOrVerbatim(err error, offset int64, format string, args ...interface{}) error {
	if xerr, ok := err.(*Error); ok && xerr.Code == PrematureEOF {
		return newError(PrematureEOF, offset, format, args...)
	}
	return err
}
