package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which layer reported the error
type Phase string

const (
	PhaseSlice     Phase = "slice"     // slice views
	PhaseTable     Phase = "table"     // 2-D table views
	PhaseStatus    Phase = "status"    // converted status tokens
	PhaseCoroutine Phase = "coroutine" // resumable operations
	PhaseTransform Phase = "transform" // streaming transforms
	PhaseParse     Phase = "parse"     // number parsing
	PhaseRender    Phase = "render"    // number rendering
	PhaseMemory    Phase = "memory"    // guest memory adapters
	PhaseConfig    Phase = "config"    // CLI job configuration
)

// Kind categorizes the error
type Kind string

const (
	KindBadArgument  Kind = "bad_argument"
	KindBadData      Kind = "bad_data"
	KindOutOfBounds  Kind = "out_of_bounds"
	KindOverflow     Kind = "overflow"
	KindShortRead    Kind = "short_read"
	KindShortWrite   Kind = "short_write"
	KindInvalidUse   Kind = "invalid_use"
	KindInvalidInput Kind = "invalid_input"
	KindInvalidUTF8  Kind = "invalid_utf8"
	KindNotFound     Kind = "not_found"
	KindUnsupported  Kind = "unsupported"
	KindInterrupted  Kind = "interrupted"
	KindEndOfData    Kind = "end_of_data"
)

// Error is the structured error type used throughout the runtime
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Type   string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Type != "" {
		b.WriteString(": type ")
		b.WriteString(e.Type)
	}

	if e.Detail != "" {
		if e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
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

// Path sets the operation path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Type sets the target type name
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
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

// BadArgument creates a syntax error for text that does not match a grammar.
func BadArgument(phase Phase, targetType string, text []byte, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindBadArgument,
		Type:   targetType,
		Detail: detail,
		Value:  preview(text),
	}
}

// BadData creates an error for input bytes that violate an alphabet or
// padding rule.
func BadData(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindBadData,
		Detail: detail,
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(phase Phase, path []string, data []byte) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Path:   path,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview(data)),
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

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, text []byte, targetType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Type:   targetType,
		Detail: fmt.Sprintf("value %q overflows %s", preview(text), targetType),
		Value:  preview(text),
	}
}

// InvalidUse creates an error for a call that breaks an operation's
// calling sequence.
func InvalidUse(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUse,
		Detail: detail,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

const maxPreview = 32

// preview copies at most maxPreview bytes so errors never retain caller
// buffers.
func preview(data []byte) string {
	if len(data) > maxPreview {
		return string(data[:maxPreview]) + "..."
	}
	return string(data)
}
