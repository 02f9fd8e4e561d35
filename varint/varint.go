// Package varint decodes and encodes LEB128 integers across buffer
// boundaries.
//
// A Decoder or Encoder may stop part-way through a value when its buffer
// runs out and continue on the next call, so a value split across two
// reads needs no reassembly by the caller. Between values the caller
// calls Reset.
package varint

import (
	"github.com/pkasting/wuffs/coro"
	"github.com/pkasting/wuffs/errors"
	"github.com/pkasting/wuffs/status"
)

// MaxLen64 is the longest LEB128 encoding of a 64-bit value.
const MaxLen64 = 10

const pointContinue coro.Point = 1

var errMixedCalls = status.New(status.SeverityFatal, errors.KindInvalidUse,
	"signed and unsigned calls interleaved")

// Decoder decodes one LEB128 value at a time. The zero value is ready.
type Decoder struct {
	co     coro.Coroutine
	value  uint64
	shift  uint
	signed bool
}

// DecodeU64 consumes bytes of an unsigned value from src. It returns the
// number of bytes consumed and, once the final byte has been seen, the
// value with status OK. status.ShortRead asks for more bytes.
func (d *Decoder) DecodeU64(src []byte) (uint64, int, status.Status) {
	if s := d.enter(false); !s.IsOK() {
		return 0, 0, s
	}

	for n := 0; n < len(src); {
		b := src[n]
		n++
		// Only one bit of the tenth byte fits.
		if d.shift == 63 && b > 1 {
			return 0, n, d.co.Fail(status.BadData)
		}
		d.value |= uint64(b&0x7f) << d.shift
		if b&0x80 == 0 {
			return d.value, n, d.co.Complete()
		}
		d.shift += 7
	}
	return 0, len(src), d.co.Suspend(pointContinue, status.ShortRead)
}

// DecodeI64 is DecodeU64 for signed values.
func (d *Decoder) DecodeI64(src []byte) (int64, int, status.Status) {
	if s := d.enter(true); !s.IsOK() {
		return 0, 0, s
	}

	for n := 0; n < len(src); {
		b := src[n]
		n++
		// The tenth byte carries bit 63 and must sign-extend it.
		if d.shift == 63 && b != 0x00 && b != 0x7f {
			return 0, n, d.co.Fail(status.BadData)
		}
		d.value |= uint64(b&0x7f) << d.shift
		d.shift += 7
		if b&0x80 == 0 {
			if d.shift < 64 && b&0x40 != 0 {
				d.value |= ^uint64(0) << d.shift
			}
			return int64(d.value), n, d.co.Complete()
		}
	}
	return 0, len(src), d.co.Suspend(pointContinue, status.ShortRead)
}

func (d *Decoder) enter(signed bool) status.Status {
	point, s := d.co.Enter()
	if !s.IsOK() {
		return s
	}
	if point == 0 {
		d.value, d.shift, d.signed = 0, 0, signed
	} else if d.signed != signed {
		return d.co.Fail(errMixedCalls)
	}
	return status.OK
}

// Reset prepares d for the next value and clears any failure.
func (d *Decoder) Reset() {
	*d = Decoder{}
}

// Encoder writes one LEB128 value at a time. The zero value is ready.
type Encoder struct {
	co     coro.Coroutine
	rest   uint64
	signed bool
}

// EncodeU64 writes v to dst. The value is latched on the first call;
// after status.ShortWrite the caller resumes with a fresh dst and the
// same v.
func (e *Encoder) EncodeU64(dst []byte, v uint64) (int, status.Status) {
	if s := e.enter(false, v); !s.IsOK() {
		return 0, s
	}

	n := 0
	for ; n < len(dst); n++ {
		b := byte(e.rest & 0x7f)
		e.rest >>= 7
		if e.rest == 0 {
			dst[n] = b
			return n + 1, e.co.Complete()
		}
		dst[n] = b | 0x80
	}
	return n, e.co.Suspend(pointContinue, status.ShortWrite)
}

// EncodeI64 is EncodeU64 for signed values.
func (e *Encoder) EncodeI64(dst []byte, v int64) (int, status.Status) {
	if s := e.enter(true, uint64(v)); !s.IsOK() {
		return 0, s
	}

	n := 0
	for ; n < len(dst); n++ {
		rest := int64(e.rest)
		b := byte(rest & 0x7f)
		rest >>= 7
		e.rest = uint64(rest)
		if (rest == 0 && b&0x40 == 0) || (rest == -1 && b&0x40 != 0) {
			dst[n] = b
			return n + 1, e.co.Complete()
		}
		dst[n] = b | 0x80
	}
	return n, e.co.Suspend(pointContinue, status.ShortWrite)
}

func (e *Encoder) enter(signed bool, v uint64) status.Status {
	point, s := e.co.Enter()
	if !s.IsOK() {
		return s
	}
	if point == 0 {
		e.rest, e.signed = v, signed
	} else if e.signed != signed {
		return e.co.Fail(errMixedCalls)
	}
	return status.OK
}

// Reset prepares e for the next value and clears any failure.
func (e *Encoder) Reset() {
	*e = Encoder{}
}
