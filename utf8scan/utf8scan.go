// Package utf8scan decodes and validates UTF-8 and ASCII in byte slices.
//
// Decoding never fails: an invalid or truncated sequence decodes as
// ReplacementCharacter with a length of one byte, so a caller can always
// make progress. The encoding rules are those of RFC 3629: no overlong
// forms, no surrogates and nothing above U+10FFFF.
package utf8scan

import (
	"encoding/binary"
)

const (
	ReplacementCharacter = 0xFFFD
	MaxCodePoint         = 0x10FFFF
	MaxByteLength        = 4

	SurrogateMin = 0xD800
	SurrogateMax = 0xDFFF
)

// Output is one decoded code point and the bytes it used.
type Output struct {
	CodePoint  uint32
	ByteLength int
}

// IsValid reports whether o is a code point with its shortest byte
// length. The invalid-input result {ReplacementCharacter, 1} is not
// valid; a genuine U+FFFD is {ReplacementCharacter, 3}.
func (o Output) IsValid() bool {
	cp := o.CodePoint
	switch o.ByteLength {
	case 1:
		return cp <= 0x7F
	case 2:
		return 0x80 <= cp && cp <= 0x7FF
	case 3:
		return 0x800 <= cp && cp <= 0xFFFF && (cp < SurrogateMin || cp > SurrogateMax)
	case 4:
		return 0x10000 <= cp && cp <= MaxCodePoint
	}
	return false
}

var invalid = Output{CodePoint: ReplacementCharacter, ByteLength: 1}

// Next decodes the code point at the start of s. An empty s gives the
// zero Output.
func Next(s []byte) Output {
	if len(s) == 0 {
		return Output{}
	}

	c := s[0]
	switch {
	case c < 0x80:
		return Output{CodePoint: uint32(c), ByteLength: 1}

	case c < 0xC2:
		// Continuation bytes and the overlong C0 and C1 leads.
		return invalid

	case c < 0xE0:
		if len(s) < 2 || !isCont(s[1]) {
			return invalid
		}
		return Output{
			CodePoint:  uint32(c&0x1F)<<6 | uint32(s[1]&0x3F),
			ByteLength: 2,
		}

	case c < 0xF0:
		lo, hi := byte(0x80), byte(0xBF)
		switch c {
		case 0xE0:
			lo = 0xA0
		case 0xED:
			hi = 0x9F
		}
		if len(s) < 3 || s[1] < lo || s[1] > hi || !isCont(s[2]) {
			return invalid
		}
		return Output{
			CodePoint:  uint32(c&0x0F)<<12 | uint32(s[1]&0x3F)<<6 | uint32(s[2]&0x3F),
			ByteLength: 3,
		}

	case c < 0xF5:
		lo, hi := byte(0x80), byte(0xBF)
		switch c {
		case 0xF0:
			lo = 0x90
		case 0xF4:
			hi = 0x8F
		}
		if len(s) < 4 || s[1] < lo || s[1] > hi || !isCont(s[2]) || !isCont(s[3]) {
			return invalid
		}
		return Output{
			CodePoint:  uint32(c&0x07)<<18 | uint32(s[1]&0x3F)<<12 | uint32(s[2]&0x3F)<<6 | uint32(s[3]&0x3F),
			ByteLength: 4,
		}
	}
	return invalid
}

// NextFromEnd decodes the code point that ends s.
func NextFromEnd(s []byte) Output {
	n := len(s)
	if n == 0 {
		return Output{}
	}

	// Step back over at most three continuation bytes to a lead byte.
	i := n - 1
	stop := max(n-MaxByteLength, 0)
	for i > stop && isCont(s[i]) {
		i--
	}

	o := Next(s[i:])
	if o.ByteLength != n-i {
		return invalid
	}
	return o
}

// LongestValidPrefix returns the length of the longest prefix of s that is
// valid UTF-8.
func LongestValidPrefix(s []byte) int {
	i := 0
	for i < len(s) {
		if i+8 <= len(s) && binary.LittleEndian.Uint64(s[i:])&asciiMask == 0 {
			i += 8
			continue
		}
		if s[i] < 0x80 {
			i++
			continue
		}
		o := Next(s[i:])
		if !o.IsValid() {
			return i
		}
		i += o.ByteLength
	}
	return i
}

const asciiMask = 0x8080808080808080

// ASCIILongestValidPrefix returns the length of the longest prefix of s
// that is 7-bit ASCII.
func ASCIILongestValidPrefix(s []byte) int {
	i := 0
	for ; i+8 <= len(s); i += 8 {
		if binary.LittleEndian.Uint64(s[i:])&asciiMask != 0 {
			break
		}
	}
	for ; i < len(s); i++ {
		if s[i] >= 0x80 {
			break
		}
	}
	return i
}

// Encode writes the UTF-8 form of cp to dst and returns its length. It
// returns 0, writing nothing, when cp is a surrogate or out of range or
// when dst is too short.
func Encode(dst []byte, cp uint32) int {
	switch {
	case cp <= 0x7F:
		if len(dst) < 1 {
			return 0
		}
		dst[0] = byte(cp)
		return 1

	case cp <= 0x7FF:
		if len(dst) < 2 {
			return 0
		}
		dst[0] = 0xC0 | byte(cp>>6)
		dst[1] = 0x80 | byte(cp)&0x3F
		return 2

	case cp <= 0xFFFF:
		if (SurrogateMin <= cp && cp <= SurrogateMax) || len(dst) < 3 {
			return 0
		}
		dst[0] = 0xE0 | byte(cp>>12)
		dst[1] = 0x80 | byte(cp>>6)&0x3F
		dst[2] = 0x80 | byte(cp)&0x3F
		return 3

	case cp <= MaxCodePoint:
		if len(dst) < 4 {
			return 0
		}
		dst[0] = 0xF0 | byte(cp>>18)
		dst[1] = 0x80 | byte(cp>>12)&0x3F
		dst[2] = 0x80 | byte(cp>>6)&0x3F
		dst[3] = 0x80 | byte(cp)&0x3F
		return 4
	}
	return 0
}

func isCont(b byte) bool { return b&0xC0 == 0x80 }
