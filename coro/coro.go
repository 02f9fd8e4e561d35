package coro

import (
	"github.com/pkasting/wuffs/status"
)

// Point is a resume point. Zero means the operation has not started.
type Point uint32

// State is the lifecycle state of a Coroutine.
type State uint8

const (
	StateReady State = iota
	StateDone
	StateDisabled
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateDone:
		return "done"
	case StateDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Coroutine holds the resume point and lifecycle of one resumable
// operation instance.
type Coroutine struct {
	fatal status.Status
	point Point
	state State
}

// Enter begins a call. It returns the saved resume point and OK, or a
// fatal status if the call must not proceed.
func (c *Coroutine) Enter() (Point, status.Status) {
	switch c.state {
	case StateDisabled:
		return 0, c.fatal
	case StateDone:
		return 0, c.Fail(status.ResumedAfterCompletion)
	}
	return c.point, status.OK
}

// Suspend saves next as the resume point and returns s. A non-suspension s
// is routed through Exit.
func (c *Coroutine) Suspend(next Point, s status.Status) status.Status {
	if !s.IsSuspension() {
		return c.Exit(next, s)
	}
	c.point = next
	return s
}

// Complete marks the operation finished and returns OK.
func (c *Coroutine) Complete() status.Status {
	c.state = StateDone
	c.point = 0
	return status.OK
}

// Fail disables the coroutine with s and returns s. A non-fatal s is
// promoted to fatal severity so that later calls still stop.
func (c *Coroutine) Fail(s status.Status) status.Status {
	if !s.IsError() {
		s = status.New(status.SeverityFatal, s.Kind(), s.Message())
	}
	c.state = StateDisabled
	c.fatal = s
	c.point = 0
	return s
}

// Exit ends a call with any status: suspensions save next, complete
// statuses finish the operation and fatal ones disable it.
func (c *Coroutine) Exit(next Point, s status.Status) status.Status {
	switch {
	case s.IsSuspension():
		c.point = next
		return s
	case s.IsError():
		return c.Fail(s)
	default:
		c.state = StateDone
		c.point = 0
		return s
	}
}

// Reset returns the coroutine to Ready(0), clearing any stored failure.
func (c *Coroutine) Reset() {
	*c = Coroutine{}
}

func (c *Coroutine) State() State { return c.state }

func (c *Coroutine) Point() Point { return c.point }

// Fatal returns the stored status of a disabled coroutine, or OK.
func (c *Coroutine) Fatal() status.Status { return c.fatal }
