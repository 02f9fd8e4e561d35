// Package base64 converts between bytes and RFC 4648 base64 text, with
// either the standard or the URL-safe alphabet.
//
// Decode and Encode have the transform.Func signature plus an Options
// argument; Options.Decoder and Options.Encoder bind the options into a
// transform.Transformer.
//
// Decoding works on whole groups of four characters. A final group of two
// or three characters is accepted only once the source is closed, and
// may be padded with '=' when Options.AllowPadding is set. Anything after
// a padded group, excess padding and characters outside the alphabet are
// bad data.
package base64

import (
	"github.com/pkasting/wuffs/status"
	"github.com/pkasting/wuffs/transform"
)

// Options selects the dialect. The zero value is the standard alphabet
// with no padding in either direction.
type Options struct {
	// AllowPadding accepts '=' padding on the final group when decoding.
	AllowPadding bool
	// EmitPadding pads the final group with '=' when encoding.
	EmitPadding bool
	// URLAlphabet uses '-' and '_' in place of '+' and '/'.
	URLAlphabet bool
}

const (
	stdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	urlAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

const (
	invalid = 0xff
	padding = 0xfe
)

var (
	stdDecode = decodeTable(stdAlphabet)
	urlDecode = decodeTable(urlAlphabet)
)

func decodeTable(alphabet string) (t [256]byte) {
	for i := range t {
		t[i] = invalid
	}
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]] = byte(i)
	}
	t['='] = padding
	return t
}

// EncodedLen returns the encoded length of n bytes.
func EncodedLen(n int, padded bool) int {
	if padded {
		return (n + 2) / 3 * 4
	}
	return n/3*4 + (n%3*8+5)/6
}

// DecodedLen returns the maximum decoded length of n characters.
func DecodedLen(n int) int {
	return n/4*3 + n%4*6/8
}

// Decode converts base64 text in src into bytes in dst.
func Decode(dst, src []byte, srcClosed bool, opts Options) transform.Result {
	table := &stdDecode
	if opts.URLAlphabet {
		table = &urlDecode
	}

	si, di := 0, 0
	for len(src)-si >= 4 {
		c0, c1, c2, c3 := table[src[si]], table[src[si+1]], table[src[si+2]], table[src[si+3]]
		// Both invalid and padding have the top bits set.
		if (c0|c1|c2|c3)&0xc0 != 0 {
			break
		}
		if len(dst)-di < 3 {
			return transform.Result{NumDst: di, NumSrc: si, Status: status.ShortWrite}
		}
		v := uint32(c0)<<18 | uint32(c1)<<12 | uint32(c2)<<6 | uint32(c3)
		dst[di] = byte(v >> 16)
		dst[di+1] = byte(v >> 8)
		dst[di+2] = byte(v)
		si += 4
		di += 3
	}

	rest := src[si:]
	if len(rest) == 0 {
		return transform.Result{NumDst: di, NumSrc: si}
	}
	fail := transform.Result{NumDst: di, NumSrc: si, Status: status.BadData}

	if len(rest) < 4 && !srcClosed {
		for _, c := range rest {
			if t := table[c]; t == invalid || (t == padding && !opts.AllowPadding) {
				return fail
			}
		}
		return transform.Result{NumDst: di, NumSrc: si, Status: status.ShortRead}
	}

	// rest is now the final group: data characters then optional padding.
	nData := 0
	for nData < len(rest) && table[rest[nData]] < 64 {
		nData++
	}
	nPad := 0
	for nData+nPad < len(rest) && rest[nData+nPad] == '=' {
		nPad++
	}
	end := nData + nPad

	switch {
	case nData < 2 || nData > 3:
		return fail
	case nPad > 0 && (!opts.AllowPadding || end != 4):
		return fail
	case end < len(rest):
		// Trailing bytes after the final group, or an invalid character.
		return fail
	case nPad == 0 && !srcClosed:
		return transform.Result{NumDst: di, NumSrc: si, Status: status.ShortRead}
	}

	out := nData - 1
	if len(dst)-di < out {
		return transform.Result{NumDst: di, NumSrc: si, Status: status.ShortWrite}
	}
	v := uint32(table[rest[0]])<<18 | uint32(table[rest[1]])<<12
	if nData == 3 {
		v |= uint32(table[rest[2]]) << 6
	}
	dst[di] = byte(v >> 16)
	if out == 2 {
		dst[di+1] = byte(v >> 8)
	}
	r := transform.Result{NumDst: di + out, NumSrc: si + end}
	if nPad > 0 {
		// Nothing may follow padding.
		r.Status = status.EndOfData
	}
	return r
}

// Encode converts bytes in src into base64 text in dst.
func Encode(dst, src []byte, srcClosed bool, opts Options) transform.Result {
	alphabet := stdAlphabet
	if opts.URLAlphabet {
		alphabet = urlAlphabet
	}

	si, di := 0, 0
	for len(src)-si >= 3 {
		if len(dst)-di < 4 {
			return transform.Result{NumDst: di, NumSrc: si, Status: status.ShortWrite}
		}
		v := uint32(src[si])<<16 | uint32(src[si+1])<<8 | uint32(src[si+2])
		dst[di] = alphabet[v>>18&63]
		dst[di+1] = alphabet[v>>12&63]
		dst[di+2] = alphabet[v>>6&63]
		dst[di+3] = alphabet[v&63]
		si += 3
		di += 4
	}

	rest := len(src) - si
	switch {
	case rest == 0:
		return transform.Result{NumDst: di, NumSrc: si}
	case !srcClosed:
		return transform.Result{NumDst: di, NumSrc: si, Status: status.ShortRead}
	}

	need := rest + 1
	if opts.EmitPadding {
		need = 4
	}
	if len(dst)-di < need {
		return transform.Result{NumDst: di, NumSrc: si, Status: status.ShortWrite}
	}

	v := uint32(src[si]) << 16
	if rest == 2 {
		v |= uint32(src[si+1]) << 8
	}
	dst[di] = alphabet[v>>18&63]
	dst[di+1] = alphabet[v>>12&63]
	if rest == 2 {
		dst[di+2] = alphabet[v>>6&63]
	}
	for i := rest + 1; i < need; i++ {
		dst[di+i] = '='
	}
	return transform.Result{NumDst: di + need, NumSrc: si + rest}
}

// Decoder returns a Transformer that decodes with o.
func (o Options) Decoder() transform.Transformer {
	return transform.Func(func(dst, src []byte, srcClosed bool) transform.Result {
		return Decode(dst, src, srcClosed, o)
	})
}

// Encoder returns a Transformer that encodes with o.
func (o Options) Encoder() transform.Transformer {
	return transform.Func(func(dst, src []byte, srcClosed bool) transform.Result {
		return Encode(dst, src, srcClosed, o)
	})
}
