package number

import (
	"math"

	"github.com/pkasting/wuffs/errors"
)

// digitValue maps hex digits to their value and everything else to 0xff.
var digitValue = func() (t [256]byte) {
	for i := range t {
		t[i] = 0xff
	}
	for i := byte(0); i < 10; i++ {
		t['0'+i] = i
	}
	for i := byte(0); i < 6; i++ {
		t['A'+i] = 10 + i
		t['a'+i] = 10 + i
	}
	return t
}()

// ParseU64 parses an unsigned integer.
func ParseU64(s []byte) (uint64, error) {
	return parseU64(s, s, "u64")
}

// ParseI64 parses a signed integer with an optional leading sign.
func ParseI64(s []byte) (int64, error) {
	if len(s) == 0 {
		return 0, errors.BadArgument(errors.PhaseParse, "i64", s, "empty input")
	}

	neg := false
	body := s
	switch s[0] {
	case '-':
		neg = true
		body = s[1:]
	case '+':
		body = s[1:]
	}

	u, err := parseU64(body, s, "i64")
	if err != nil {
		return 0, err
	}
	if neg {
		if u > 1<<63 {
			return 0, errors.Overflow(errors.PhaseParse, s, "i64")
		}
		return -int64(u), nil
	}
	if u > math.MaxInt64 {
		return 0, errors.Overflow(errors.PhaseParse, s, "i64")
	}
	return int64(u), nil
}

// parseU64 parses s. Errors report text, which may be longer than s when
// a sign has been stripped.
func parseU64(s, text []byte, typeName string) (uint64, error) {
	p := 0
	for p < len(s) && s[p] == '_' {
		p++
	}
	if p == len(s) {
		return 0, errors.BadArgument(errors.PhaseParse, typeName, text, "no digits")
	}

	if s[p] == '0' {
		p++
		if p == len(s) {
			return 0, nil
		}
		switch s[p] | 0x20 {
		case 'x':
			return parseDigits(s, p+1, 16, text, typeName)
		case 'd':
			return parseDigits(s, p+1, 10, text, typeName)
		}
		for p < len(s) && s[p] == '_' {
			p++
		}
		if p == len(s) {
			return 0, nil
		}
		return 0, errors.BadArgument(errors.PhaseParse, typeName, text, "unnecessary leading zero")
	}
	return parseDigits(s, p, 10, text, typeName)
}

func parseDigits(s []byte, p int, base uint64, text []byte, typeName string) (uint64, error) {
	var v uint64
	digits := 0
	for ; p < len(s); p++ {
		c := s[p]
		if c == '_' {
			continue
		}
		d := uint64(digitValue[c])
		if d >= base {
			return 0, errors.BadArgument(errors.PhaseParse, typeName, text, "invalid digit")
		}
		if v > (math.MaxUint64-d)/base {
			return 0, errors.Overflow(errors.PhaseParse, text, typeName)
		}
		v = v*base + d
		digits++
	}
	if digits == 0 {
		return 0, errors.BadArgument(errors.PhaseParse, typeName, text, "no digits")
	}
	return v, nil
}
