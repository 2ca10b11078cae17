package document

import "errors"

// Kind is a stable category for programmatic error handling.
//
// Callers should branch on Kind/RuleID rather than matching error strings.
// Use errors.As to extract *Error for structured handling.
type Kind string

const (
	KindParse           Kind = "Parse"
	KindEnvelope        Kind = "Envelope"
	KindUnknownDocument Kind = "UnknownDocument"
	KindValidation      Kind = "Validation"
	KindRender          Kind = "Render"
	KindCID             Kind = "CID"
	KindInternal        Kind = "Internal"
)

// CodeUnknownDocument is the numeric code reported for documents whose
// namespace or root element is not registered.
const CodeUnknownDocument = 9999

// Error is the package's structured error type.
//
// RuleID is a stable identifier (e.g. ISO-PARSE-001, ISO-ENV-002,
// ISO-DOC-001) naming the violated rule. Code carries a numeric code where
// one exists: CodeUnknownDocument, or the code of the first violation for
// KindValidation.
//
// Message is intended for humans; do not match on it.
type Error struct {
	Kind    Kind
	RuleID  string
	Code    int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

func wrapError(kind Kind, ruleID, msg string, cause error) error {
	if cause == nil {
		return newError(kind, ruleID, msg)
	}
	return &Error{Kind: kind, RuleID: ruleID, Message: msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}

// Code returns the numeric code of a structured error, or 0.
func Code(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return 0
	}
	return e.Code
}
