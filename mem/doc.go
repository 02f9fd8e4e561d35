// Package mem provides bounds-safe views over caller-owned byte buffers.
//
// A Go []byte already carries its own origin and length, so a 1-D view is
// simply a slice. This package adds the operations codecs need on top of it
// and a 2-D Table view with independent width, height and stride:
//
//	Table{width: 3, height: 2, stride: 5}
//
//	data: a b c . . d e f
//	      └─row 0─┘ └─row 1─┘
//
// Nothing here allocates or retains memory. A view is valid for as long as
// the buffer it was cut from; the caller must not mutate that buffer from
// another goroutine while a call that uses the view is running.
//
// # Clamping
//
// Prefix, Suffix and CopyFromSlice clamp instead of failing. Table.Row
// returns an empty slice for rows past the end rather than an error.
//
// # Ranges and Rects
//
// RangeII/RangeIE and RectII/RectIE are small value types with inclusive
// (II) or exclusive (IE) upper bounds, used to describe frame and pixel
// regions by codecs built on this runtime.
package mem
