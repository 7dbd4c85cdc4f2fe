package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseHeader   Phase = "header"   // header text parsing
	PhaseDecode   Phase = "decode"   // binary record decoding
	PhaseValidate Phase = "validate" // metadata validation
)

// Kind categorizes the error
type Kind string

const (
	KindBadMagic          Kind = "bad_magic"
	KindBadFormat         Kind = "bad_format"
	KindInvalidLine       Kind = "invalid_line"
	KindUnknownDirective  Kind = "unknown_directive"
	KindDuplicateElement  Kind = "duplicate_element"
	KindInvalidCount      Kind = "invalid_count"
	KindMissingElement    Kind = "missing_element"
	KindUnknownType       Kind = "unknown_type"
	KindDuplicateProperty Kind = "duplicate_property"
	KindSizeMismatch      Kind = "size_mismatch"
	KindUnsupported       Kind = "unsupported"
	KindPropertyMissing   Kind = "property_missing"
	KindNotParsed         Kind = "not_parsed"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Token  string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Token != "" {
		b.WriteString(" at ")
		fmt.Fprintf(&b, "%q", e.Token)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Token sets the offending header token or line
func (b *Builder) Token(tok string) *Builder {
	b.err.Token = tok
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// BadMagic creates an error for a file that does not start with the
// expected magic line
func BadMagic(got string) *Error {
	return &Error{
		Phase:  PhaseHeader,
		Kind:   KindBadMagic,
		Token:  got,
		Detail: "expected magic line \"ply\"",
	}
}

// BadFormat creates an error for a malformed or unrecognized format line
func BadFormat(token, detail string) *Error {
	return &Error{
		Phase:  PhaseHeader,
		Kind:   KindBadFormat,
		Token:  token,
		Detail: detail,
	}
}

// InvalidLine creates an error for a header line that could not be
// tokenized
func InvalidLine(detail string) *Error {
	return &Error{
		Phase:  PhaseHeader,
		Kind:   KindInvalidLine,
		Detail: detail,
	}
}

// UnknownDirective creates an error for an unrecognized header directive
func UnknownDirective(token string) *Error {
	return &Error{
		Phase:  PhaseHeader,
		Kind:   KindUnknownDirective,
		Token:  token,
		Detail: "unknown header directive",
	}
}

// DuplicateElement creates an error for a second element block
func DuplicateElement() *Error {
	return &Error{
		Phase:  PhaseHeader,
		Kind:   KindDuplicateElement,
		Detail: "more than one vertex element specified",
	}
}

// InvalidCount creates an error for a missing, unparsable or zero vertex
// count
func InvalidCount(token string, cause error) *Error {
	return &Error{
		Phase:  PhaseHeader,
		Kind:   KindInvalidCount,
		Token:  token,
		Detail: "vertex count must be a positive integer",
		Cause:  cause,
	}
}

// MissingElement creates an error for a property declared before any
// element block
func MissingElement(token string) *Error {
	return &Error{
		Phase:  PhaseHeader,
		Kind:   KindMissingElement,
		Token:  token,
		Detail: "property declared before element",
	}
}

// UnknownType creates an error for an unrecognized property type name
func UnknownType(token string) *Error {
	return &Error{
		Phase:  PhaseHeader,
		Kind:   KindUnknownType,
		Token:  token,
		Detail: "unrecognized property type",
	}
}

// DuplicateProperty creates an error for a recognized property declared
// twice
func DuplicateProperty(name string) *Error {
	return &Error{
		Phase:  PhaseHeader,
		Kind:   KindDuplicateProperty,
		Token:  name,
		Detail: "property declared more than once",
	}
}

// SizeMismatch creates an error for a body whose byte length does not
// match the declared record count and stride
func SizeMismatch(expected, actual int) *Error {
	return &Error{
		Phase:  PhaseHeader,
		Kind:   KindSizeMismatch,
		Detail: fmt.Sprintf("data size mismatch: %d bytes expected but %d bytes remaining", expected, actual),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// PropertyMissing creates an error for a required property absent from
// the discovered set
func PropertyMissing(name string) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindPropertyMissing,
		Token:  name,
		Detail: "required property missing",
	}
}

// NotParsed creates an error for record decoding attempted before a
// successful metadata parse
func NotParsed() *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindNotParsed,
		Detail: "metadata has not been parsed",
	}
}
