package coro

import (
	"testing"

	"github.com/pkasting/wuffs/status"
)

func TestZeroValueIsReady(t *testing.T) {
	var c Coroutine
	p, s := c.Enter()
	if p != 0 || !s.IsOK() {
		t.Fatalf("Enter() = %d, %v; want 0, ok", p, s)
	}
	if c.State() != StateReady {
		t.Errorf("State = %v, want ready", c.State())
	}
}

func TestSuspendResume(t *testing.T) {
	var c Coroutine
	c.Enter()
	if got := c.Suspend(3, status.ShortRead); got != status.ShortRead {
		t.Fatalf("Suspend returned %v", got)
	}

	p, s := c.Enter()
	if p != 3 || !s.IsOK() {
		t.Fatalf("Enter() = %d, %v; want 3, ok", p, s)
	}

	if got := c.Complete(); got != status.OK {
		t.Fatalf("Complete returned %v", got)
	}
	if c.State() != StateDone {
		t.Errorf("State = %v, want done", c.State())
	}
}

func TestResumedAfterCompletion(t *testing.T) {
	var c Coroutine
	c.Enter()
	c.Complete()

	_, s := c.Enter()
	if s != status.ResumedAfterCompletion {
		t.Fatalf("Enter after Complete = %v, want %v", s, status.ResumedAfterCompletion)
	}
	if c.State() != StateDisabled {
		t.Errorf("State = %v, want disabled", c.State())
	}

	c.Reset()
	if _, s := c.Enter(); !s.IsOK() {
		t.Errorf("Enter after Reset = %v", s)
	}
}

func TestDisabledIsSticky(t *testing.T) {
	var c Coroutine
	c.Enter()
	c.Suspend(2, status.ShortWrite)
	c.Enter()
	if got := c.Fail(status.BadData); got != status.BadData {
		t.Fatalf("Fail returned %v", got)
	}

	for i := 0; i < 5; i++ {
		p, s := c.Enter()
		if s != status.BadData || p != 0 {
			t.Fatalf("call %d: Enter() = %d, %v; want 0, %v", i, p, s, status.BadData)
		}
	}
	if c.Fatal() != status.BadData {
		t.Errorf("Fatal = %v", c.Fatal())
	}
}

func TestFailPromotesNonFatal(t *testing.T) {
	var c Coroutine
	s := c.Fail(status.ShortRead)
	if !s.IsError() {
		t.Fatalf("Fail(short read) = %v, want fatal", s)
	}
	if _, again := c.Enter(); again != s {
		t.Errorf("Enter = %v, want %v", again, s)
	}
}

func TestExit(t *testing.T) {
	tests := []struct {
		name  string
		s     status.Status
		state State
		point Point
	}{
		{"suspension", status.ShortRead, StateReady, 7},
		{"ok", status.OK, StateDone, 0},
		{"note", status.EndOfData, StateDone, 0},
		{"fatal", status.BadArgument, StateDisabled, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Coroutine
			c.Enter()
			if got := c.Exit(7, tt.s); got != tt.s {
				t.Errorf("Exit returned %v, want %v", got, tt.s)
			}
			if c.State() != tt.state || c.Point() != tt.point {
				t.Errorf("state = %v/%d, want %v/%d", c.State(), c.Point(), tt.state, tt.point)
			}
		})
	}
}

func TestSuspendWithNonSuspension(t *testing.T) {
	var c Coroutine
	c.Enter()
	if got := c.Suspend(1, status.BadData); got != status.BadData {
		t.Fatalf("Suspend(bad data) = %v", got)
	}
	if c.State() != StateDisabled {
		t.Errorf("State = %v, want disabled", c.State())
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{
		StateReady:    "ready",
		StateDone:     "done",
		StateDisabled: "disabled",
		State(99):     "unknown",
	} {
		if s.String() != want {
			t.Errorf("%d.String() = %q, want %q", s, s.String(), want)
		}
	}
}
