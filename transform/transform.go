// Package transform defines the calling convention shared by all
// streaming byte transforms.
//
// A transform is called with a destination buffer, a source buffer and a
// flag saying whether the source holds the final bytes of the stream. It
// consumes a prefix of src, produces a prefix of dst and reports how far
// it got:
//
//	r := t.Transform(dst, src, srcClosed)
//	src = src[r.NumSrc:]
//	dst = dst[r.NumDst:]
//
// A status.ShortRead result asks for more source bytes and is only valid
// while srcClosed is false. A status.ShortWrite result asks for more
// destination space. Transforms never retain the buffers between calls.
package transform

import (
	"fmt"

	"github.com/pkasting/wuffs/status"
)

// Result reports the progress of one Transform call.
type Result struct {
	NumDst int
	NumSrc int
	Status status.Status
}

func (r Result) String() string {
	return fmt.Sprintf("dst=%d src=%d %s", r.NumDst, r.NumSrc, r.Status)
}

// Transformer is a streaming byte transform.
type Transformer interface {
	Transform(dst, src []byte, srcClosed bool) Result
}

// Func adapts a plain function to Transformer.
type Func func(dst, src []byte, srcClosed bool) Result

func (f Func) Transform(dst, src []byte, srcClosed bool) Result {
	return f(dst, src, srcClosed)
}

// Run drives t over whole in-memory buffers. It calls t repeatedly,
// advancing both buffers, until t returns a non-suspension status or stops
// making progress. The result holds the cumulative counts and the last
// status.
func Run(t Transformer, dst, src []byte, srcClosed bool) Result {
	var total Result
	for {
		r := t.Transform(dst[total.NumDst:], src[total.NumSrc:], srcClosed)
		total.NumDst += r.NumDst
		total.NumSrc += r.NumSrc
		total.Status = r.Status
		if !r.Status.IsSuspension() || (r.NumDst == 0 && r.NumSrc == 0) {
			return total
		}
	}
}

// Disabling wraps a Transformer so that its first fatal status sticks:
// every later call returns that status with zero counts.
type Disabling struct {
	t     Transformer
	fatal status.Status
}

func NewDisabling(t Transformer) *Disabling {
	return &Disabling{t: t}
}

func (d *Disabling) Transform(dst, src []byte, srcClosed bool) Result {
	if d.fatal.IsError() {
		return Result{Status: d.fatal}
	}
	r := d.t.Transform(dst, src, srcClosed)
	if r.Status.IsError() {
		d.fatal = r.Status
	}
	return r
}

// Reset clears a stored failure.
func (d *Disabling) Reset() {
	d.fatal = status.OK
}
