package number

import (
	"math"

	"github.com/pkasting/wuffs/errors"
)

// IEEE 754 binary64 layout.
const (
	mantBits = 52
	expBits  = 11
	bias     = -1023
)

// exactPow10 holds the powers of ten that are exact in a float64.
var exactPow10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
	1e20, 1e21, 1e22,
}

// ParseF64 parses a decimal floating point number, rounding to the
// nearest float64. Values too large for a float64 become ±Inf.
func ParseF64(s []byte) (float64, error) {
	bad := func(detail string) (float64, error) {
		return 0, errors.BadArgument(errors.PhaseParse, "f64", s, detail)
	}

	p := skipUnderscores(s, 0)
	neg := false
	if p < len(s) && (s[p] == '+' || s[p] == '-') {
		neg = s[p] == '-'
		p = skipUnderscores(s, p+1)
	}
	if p == len(s) {
		return bad("no digits")
	}
	if !isDigit(s[p]) {
		if f, ok := parseSpecial(s[p:], neg); ok {
			return f, nil
		}
		return bad("invalid character")
	}

	var d decimal
	d.neg = neg

	if s[p] == '0' {
		p = skipUnderscores(s, p+1)
		if p < len(s) && isDigit(s[p]) {
			return bad("unnecessary leading zero")
		}
	} else {
		for ; p < len(s); p++ {
			if c := s[p]; isDigit(c) {
				d.pushDigit(c-'0', true)
			} else if c != '_' {
				break
			}
		}
	}

	if p < len(s) && (s[p] == '.' || s[p] == ',') {
		p++
		digits := 0
		for ; p < len(s); p++ {
			if c := s[p]; isDigit(c) {
				d.pushDigit(c-'0', false)
				digits++
			} else if c != '_' {
				break
			}
		}
		if digits == 0 {
			return bad("no digits after separator")
		}
	}

	if p < len(s) && s[p]|0x20 == 'e' {
		p = skipUnderscores(s, p+1)
		expNeg := false
		if p < len(s) && (s[p] == '+' || s[p] == '-') {
			expNeg = s[p] == '-'
			p++
		}
		exp, digits := 0, 0
		for ; p < len(s); p++ {
			if c := s[p]; isDigit(c) {
				// Anything this large already under- or overflows.
				if exp < 100000 {
					exp = exp*10 + int(c-'0')
				}
				digits++
			} else if c != '_' {
				break
			}
		}
		if digits == 0 {
			return bad("no exponent digits")
		}
		if expNeg {
			exp = -exp
		}
		if d.nd > 0 {
			d.dp += exp
		}
	}

	if p != len(s) {
		return bad("invalid character")
	}

	d.trim()
	if f, ok := d.exactFloat64(); ok {
		return f, nil
	}
	return math.Float64frombits(d.float64Bits()), nil
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func skipUnderscores(s []byte, p int) int {
	for p < len(s) && s[p] == '_' {
		p++
	}
	return p
}

// parseSpecial matches inf, infinity and nan case-insensitively.
func parseSpecial(s []byte, neg bool) (float64, bool) {
	switch {
	case equalFold(s, "inf"), equalFold(s, "infinity"):
		if neg {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	case equalFold(s, "nan"):
		if neg {
			return math.Copysign(math.NaN(), -1), true
		}
		return math.NaN(), true
	}
	return 0, false
}

func equalFold(s []byte, lower string) bool {
	if len(s) != len(lower) {
		return false
	}
	for i := range s {
		if s[i]|0x20 != lower[i] {
			return false
		}
	}
	return true
}

// exactFloat64 handles values whose digits and power of ten are both
// exact in a float64, where one multiply or divide is correctly rounded.
func (a *decimal) exactFloat64() (float64, bool) {
	if a.trunc || a.nd > 19 {
		return 0, false
	}
	var mant uint64
	for _, c := range a.d[:a.nd] {
		mant = mant*10 + uint64(c)
	}
	if mant > 1<<(mantBits+1) {
		return 0, false
	}
	exp := a.dp - a.nd
	if exp < -22 || exp > 22 {
		return 0, false
	}

	f := float64(mant)
	if exp < 0 {
		f /= exactPow10[-exp]
	} else {
		f *= exactPow10[exp]
	}
	if a.neg {
		f = -f
	}
	return f, true
}

// powtab[i] is the largest binary shift that keeps a number with i
// integer digits from gaining a digit.
var powtab = []int{1, 3, 6, 9, 13, 16, 19, 23, 26}

// float64Bits converts a to the nearest float64, consuming a.
func (a *decimal) float64Bits() uint64 {
	switch {
	case a.nd == 0 || a.dp < -330:
		return a.pack(0, bias)
	case a.dp > 310:
		return a.pack(0, 1<<expBits-1+bias)
	}

	// Scale by powers of two until the value is in [0.5, 1).
	exp := 0
	for a.dp > 0 {
		n := 27
		if a.dp < len(powtab) {
			n = powtab[a.dp]
		}
		a.shift(-n)
		exp += n
	}
	for a.dp < 0 || a.dp == 0 && a.d[0] < 5 {
		n := 27
		if -a.dp < len(powtab) {
			n = powtab[-a.dp]
		}
		a.shift(n)
		exp -= n
	}

	// Now in [1, 2).
	exp--

	// Denormals.
	if exp < bias+1 {
		n := bias + 1 - exp
		a.shift(-n)
		exp += n
	}
	if exp-bias >= 1<<expBits-1 {
		return a.pack(0, 1<<expBits-1+bias)
	}

	a.shift(1 + mantBits)
	mant := a.roundedInteger()

	// Rounding may carry into a new bit.
	if mant == 2<<mantBits {
		mant >>= 1
		exp++
		if exp-bias >= 1<<expBits-1 {
			return a.pack(0, 1<<expBits-1+bias)
		}
	}

	if mant&(1<<mantBits) == 0 {
		exp = bias
	}
	return a.pack(mant, exp)
}

func (a *decimal) pack(mant uint64, exp int) uint64 {
	bits := mant & (1<<mantBits - 1)
	bits |= uint64((exp-bias)&(1<<expBits-1)) << mantBits
	if a.neg {
		bits |= 1 << (mantBits + expBits)
	}
	return bits
}
