// Package status defines the tri-state outcome returned by every operation
// that may need more than one call to finish.
//
// A Status is either OK, a note (complete, with extra information), a
// suspension (call again with more input or output space) or fatal. A
// suspension is not an error: it is a request to be resumed. Status values
// are comparable with ==.
//
// Status strings follow a one-byte prefix convention:
//
//	$short read   suspension
//	#bad data     fatal
//	@end of data  note
package status

import (
	"github.com/pkasting/wuffs/errors"
)

// Severity orders the outcome classes.
type Severity uint8

const (
	SeverityOK Severity = iota
	SeverityNote
	SeveritySuspension
	SeverityFatal
)

// Status is an operation outcome. The zero value is OK.
type Status struct {
	severity Severity
	kind     errors.Kind
	message  string
}

// New returns a Status. Most callers use the predefined values instead.
func New(severity Severity, kind errors.Kind, message string) Status {
	return Status{severity: severity, kind: kind, message: message}
}

var (
	OK = Status{}

	EndOfData = New(SeverityNote, errors.KindEndOfData, "end of data")

	ShortRead  = New(SeveritySuspension, errors.KindShortRead, "short read")
	ShortWrite = New(SeveritySuspension, errors.KindShortWrite, "short write")

	BadArgument             = New(SeverityFatal, errors.KindBadArgument, "bad argument")
	BadData                 = New(SeverityFatal, errors.KindBadData, "bad data")
	CannotReturnASuspension = New(SeverityFatal, errors.KindInvalidUse, "cannot return a suspension")
	ResumedAfterCompletion  = New(SeverityFatal, errors.KindInvalidUse, "resumed after completion")
	Interrupted             = New(SeverityFatal, errors.KindInterrupted, "interrupted")
)

func (s Status) Severity() Severity { return s.severity }

func (s Status) Kind() errors.Kind { return s.kind }

func (s Status) Message() string { return s.message }

// IsOK reports whether s is exactly OK.
func (s Status) IsOK() bool { return s.severity == SeverityOK }

// IsComplete reports whether s is OK or a note.
func (s Status) IsComplete() bool { return s.severity <= SeverityNote }

func (s Status) IsNote() bool { return s.severity == SeverityNote }

func (s Status) IsSuspension() bool { return s.severity == SeveritySuspension }

func (s Status) IsError() bool { return s.severity == SeverityFatal }

// String renders s with its class prefix.
func (s Status) String() string {
	switch s.severity {
	case SeverityOK:
		return "ok"
	case SeverityNote:
		return "@" + s.message
	case SeveritySuspension:
		return "$" + s.message
	default:
		return "#" + s.message
	}
}

// Err converts s into an error. OK and notes convert to nil. Suspensions
// and fatal statuses convert to an *errors.Error in PhaseStatus, so
// errors.Is(err, status.BadData.Err()) holds for any bad-data status.
func (s Status) Err() error {
	if s.IsComplete() {
		return nil
	}
	return &errors.Error{
		Phase:  errors.PhaseStatus,
		Kind:   s.kind,
		Detail: s.String(),
		Value:  s,
	}
}

// EnsureNotASuspension converts a live suspension into the fatal
// CannotReturnASuspension. Every other status is returned unchanged.
func EnsureNotASuspension(s Status) Status {
	if s.IsSuspension() {
		return CannotReturnASuspension
	}
	return s
}
