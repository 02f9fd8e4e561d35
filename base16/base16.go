// Package base16 converts between bytes and hexadecimal text.
//
// Every function here has the transform.Func signature. Decoding is
// lenient: a byte that is not a hex digit decodes as zero instead of
// failing. Decode4 reads the "\xAB" form and ignores the first two bytes
// of each group of four, whatever they are.
package base16

import (
	"github.com/pkasting/wuffs/status"
	"github.com/pkasting/wuffs/transform"
)

const lowerDigits = "0123456789abcdef"

// hexValue maps ASCII hex digits to their value and everything else to 0.
var hexValue = func() (t [256]byte) {
	for i := byte(0); i < 10; i++ {
		t['0'+i] = i
	}
	for i := byte(0); i < 6; i++ {
		t['A'+i] = 10 + i
		t['a'+i] = 10 + i
	}
	return t
}()

// Decode2 decodes pairs of hex digits into bytes.
func Decode2(dst, src []byte, srcClosed bool) transform.Result {
	units := len(src) / 2
	n := min(len(dst), units)
	for i := 0; i < n; i++ {
		dst[i] = hexValue[src[2*i]]<<4 | hexValue[src[2*i+1]]
	}
	return finish(n, 2, n < units, len(src)%2 != 0, srcClosed)
}

// Decode4 decodes groups like "\x1f", one byte per four source bytes.
func Decode4(dst, src []byte, srcClosed bool) transform.Result {
	units := len(src) / 4
	n := min(len(dst), units)
	for i := 0; i < n; i++ {
		dst[i] = hexValue[src[4*i+2]]<<4 | hexValue[src[4*i+3]]
	}
	return finish(n, 4, n < units, len(src)%4 != 0, srcClosed)
}

func finish(n, unit int, dstFull, partial, srcClosed bool) transform.Result {
	r := transform.Result{NumDst: n, NumSrc: unit * n}
	switch {
	case dstFull:
		r.Status = status.ShortWrite
	case partial && srcClosed:
		r.Status = status.BadData
	case partial:
		r.Status = status.ShortRead
	}
	return r
}

// Encode2 writes two lowercase hex digits per source byte.
func Encode2(dst, src []byte, srcClosed bool) transform.Result {
	n := min(len(dst)/2, len(src))
	for i, c := range src[:n] {
		dst[2*i] = lowerDigits[c>>4]
		dst[2*i+1] = lowerDigits[c&15]
	}
	r := transform.Result{NumDst: 2 * n, NumSrc: n}
	if n < len(src) {
		r.Status = status.ShortWrite
	}
	return r
}

// Encode4 writes "\xAB" per source byte, with lowercase digits.
func Encode4(dst, src []byte, srcClosed bool) transform.Result {
	n := min(len(dst)/4, len(src))
	for i, c := range src[:n] {
		d := dst[4*i : 4*i+4]
		d[0] = '\\'
		d[1] = 'x'
		d[2] = lowerDigits[c>>4]
		d[3] = lowerDigits[c&15]
	}
	r := transform.Result{NumDst: 4 * n, NumSrc: n}
	if n < len(src) {
		r.Status = status.ShortWrite
	}
	return r
}

// Transformers for use with transform.Run and transform.Stream.
var (
	Decoder2 transform.Transformer = transform.Func(Decode2)
	Decoder4 transform.Transformer = transform.Func(Decode4)
	Encoder2 transform.Transformer = transform.Func(Encode2)
	Encoder4 transform.Transformer = transform.Func(Encode4)
)
