// Package coro implements the resume-point protocol used by operations
// that may stop mid-way when an input or output buffer runs out.
//
// A resumable operation keeps a Coroutine next to whatever scalar
// accumulators it needs. Each call starts with Enter, which yields the
// saved resume point, and ends with exactly one of Suspend, Complete or
// Fail:
//
//	Ready(0) --Suspend(n)--> Ready(n) --Complete--> Done
//	   │                        │
//	   └────────Fail────────────┴──────────> Disabled(status)
//
// There is no goroutine or stack per suspended operation: the whole live
// state is the resume point plus the owner's fields, so any number of
// independent instances can coexist. An instance is not safe for
// concurrent use; callers serialize calls into the same instance.
//
// The zero Coroutine is ready to use. Once Disabled, every Enter returns
// the stored fatal status without side effects. Entering a Done coroutine
// without Reset is a calling-sequence violation and disables it with
// status.ResumedAfterCompletion.
package coro
