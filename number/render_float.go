package number

import (
	"math"
)

// renderBufLen covers the longest output: a sign, 309 integer digits, a
// separator and MaxPrecision fraction digits.
const renderBufLen = 1 + 309 + 1 + MaxPrecision + 16

// RenderF64 writes x as decimal text.
func RenderF64(dst []byte, x float64, opts RenderOptions) int {
	var buf [renderBufLen]byte
	n := formatF64(buf[:], x, opts)
	return place(dst, buf[:n], opts.AlignRight)
}

func formatF64(buf []byte, x float64, opts RenderOptions) int {
	bits := math.Float64bits(x)
	neg := bits>>63 != 0
	exp := int(bits>>mantBits) & (1<<expBits - 1)
	mant := bits & (1<<mantBits - 1)

	if exp == 1<<expBits-1 && mant != 0 {
		return copy(buf, "NaN")
	}

	w := 0
	if neg {
		buf[w] = '-'
		w++
	} else if opts.LeadingPlus {
		buf[w] = '+'
		w++
	}
	if exp == 1<<expBits-1 {
		return w + copy(buf[w:], "Inf")
	}

	if exp == 0 {
		exp++
	} else {
		mant |= 1 << mantBits
	}
	exp += bias

	var d decimal
	d.assign(mant)
	d.shift(exp - mantBits)
	sep := opts.separator()

	if opts.JustEnough {
		d.roundShortest(mant, exp)
		useExp := false
		switch opts.Notation {
		case NotationExponentPresent:
			useExp = true
		case NotationAdaptive:
			e := d.dp - 1
			useExp = d.nd != 0 && (e < -4 || e >= 21)
		}
		if useExp {
			return fmtE(buf, w, &d, max(d.nd-1, 0), sep)
		}
		return fmtF(buf, w, &d, max(d.nd-d.dp, 0), sep)
	}

	prec := opts.precision()
	switch opts.Notation {
	case NotationExponentAbsent:
		d.round(d.dp + prec)
		return fmtF(buf, w, &d, prec, sep)
	case NotationExponentPresent:
		d.round(prec + 1)
		return fmtE(buf, w, &d, prec, sep)
	}

	// %g: prec counts significant digits and trailing zeros are dropped.
	if prec == 0 {
		prec = 1
	}
	d.round(prec)
	if e := d.dp - 1; d.nd != 0 && (e < -4 || e >= prec) {
		return fmtE(buf, w, &d, max(d.nd-1, 0), sep)
	}
	return fmtF(buf, w, &d, max(d.nd-d.dp, 0), sep)
}

// fmtE writes d as d.ddd±e with prec fraction digits.
func fmtE(buf []byte, w int, d *decimal, prec int, sep byte) int {
	first := byte('0')
	if d.nd != 0 {
		first += d.d[0]
	}
	buf[w] = first
	w++

	if prec > 0 {
		buf[w] = sep
		w++
		i := 1
		for m := min(d.nd, prec+1); i < m; i++ {
			buf[w] = '0' + d.d[i]
			w++
		}
		for ; i <= prec; i++ {
			buf[w] = '0'
			w++
		}
	}

	buf[w] = 'e'
	w++
	exp := d.dp - 1
	if d.nd == 0 {
		exp = 0
	}
	if exp < 0 {
		buf[w] = '-'
		exp = -exp
	} else {
		buf[w] = '+'
	}
	w++

	switch {
	case exp < 10:
		buf[w] = '0'
		buf[w+1] = byte(exp) + '0'
		w += 2
	case exp < 100:
		buf[w] = byte(exp/10) + '0'
		buf[w+1] = byte(exp%10) + '0'
		w += 2
	default:
		buf[w] = byte(exp/100) + '0'
		buf[w+1] = byte(exp/10%10) + '0'
		buf[w+2] = byte(exp%10) + '0'
		w += 3
	}
	return w
}

// fmtF writes d as ddd.ddd with prec fraction digits.
func fmtF(buf []byte, w int, d *decimal, prec int, sep byte) int {
	if d.dp > 0 {
		m := min(d.nd, d.dp)
		for i := 0; i < m; i++ {
			buf[w] = '0' + d.d[i]
			w++
		}
		for ; m < d.dp; m++ {
			buf[w] = '0'
			w++
		}
	} else {
		buf[w] = '0'
		w++
	}

	if prec > 0 {
		buf[w] = sep
		w++
		for i := 0; i < prec; i++ {
			c := byte('0')
			if j := d.dp + i; 0 <= j && j < d.nd {
				c += d.d[j]
			}
			buf[w] = c
			w++
		}
	}
	return w
}

// roundShortest rounds d, the exact value of mant × 2^(exp-mantBits), to
// the fewest digits that still parse back to the same float64.
func (d *decimal) roundShortest(mant uint64, exp int) {
	if mant == 0 {
		d.nd = 0
		return
	}

	// If d has no more digits than the precision of the float, it is
	// already shortest. 332/100 approximates log2(10).
	minExp := bias + 1
	if exp > minExp && 332*(d.dp-d.nd) >= 100*(exp-mantBits) {
		return
	}

	// upper is halfway to the next float up.
	var upper decimal
	upper.assign(mant*2 + 1)
	upper.shift(exp - mantBits - 1)

	// lower is halfway to the next float down. The gap below is half as
	// wide at a power of two, except for the smallest normal exponent.
	var mantLo uint64
	var expLo int
	if mant > 1<<mantBits || exp == minExp {
		mantLo = mant - 1
		expLo = exp
	} else {
		mantLo = mant*2 - 1
		expLo = exp - 1
	}
	var lower decimal
	lower.assign(mantLo*2 + 1)
	lower.shift(expLo - mantBits - 1)

	// Bounds are reachable only when round-half-even would pick mant.
	inclusive := mant%2 == 0

	// upperDelta is 0 while d and upper agree, 1 after they differ by one
	// followed only by 9s in d and 0s in upper, and 2 once rounding up is
	// certain to stay under upper.
	var upperDelta uint8

	// upper has the most integer digits, so index by upper and let d and
	// lower start before their first digit.
	for ui := 0; ; ui++ {
		mi := ui - upper.dp + d.dp
		if mi >= d.nd {
			break
		}
		li := ui - upper.dp + lower.dp

		var l, m, u byte
		if li >= 0 && li < lower.nd {
			l = lower.d[li]
		}
		if mi >= 0 {
			m = d.d[mi]
		}
		if ui < upper.nd {
			u = upper.d[ui]
		}

		okDown := l != m || inclusive && li+1 == lower.nd

		switch {
		case upperDelta == 0 && m+1 < u:
			upperDelta = 2
		case upperDelta == 0 && m != u:
			upperDelta = 1
		case upperDelta == 1 && (m != 9 || u != 0):
			upperDelta = 2
		}
		okUp := upperDelta > 0 && (inclusive || upperDelta > 1 || ui+1 < upper.nd)

		switch {
		case okDown && okUp:
			d.round(mi + 1)
			return
		case okDown:
			d.roundDown(mi + 1)
			return
		case okUp:
			d.roundUp(mi + 1)
			return
		}
	}
}
