package number

// decimal is a high-precision decimal number: 0.d[0]d[1]...d[nd-1] × 10^dp.
// Digits are stored as values 0-9. Digits beyond the capacity are dropped
// and recorded in trunc, which only matters when rounding at exactly half.
//
// 800 digits hold the exact decimal expansion of every float64 (at most
// 767 significant digits) with room for the temporary excess of a shift.
type decimal struct {
	d     [decimalDigits]byte
	nd    int
	dp    int
	neg   bool
	trunc bool
}

const (
	decimalDigits = 800

	// maxShift is the largest single binary shift; 10 << maxShift must
	// fit in a uint64.
	maxShift = 60
)

func (a *decimal) assign(v uint64) {
	var buf [20]byte
	n := 0
	for v > 0 {
		q := v / 10
		buf[n] = byte(v - 10*q)
		n++
		v = q
	}
	a.nd = 0
	for n--; n >= 0; n-- {
		a.d[a.nd] = buf[n]
		a.nd++
	}
	a.dp = a.nd
	a.trunc = false
	a.trim()
}

// pushDigit appends a parsed digit. Integer-part digits move the decimal
// point right; leading zeros after the point move it left.
func (a *decimal) pushDigit(c byte, integerPart bool) {
	if a.nd == 0 && c == 0 {
		if !integerPart {
			a.dp--
		}
		return
	}
	if a.nd < decimalDigits {
		a.d[a.nd] = c
		a.nd++
	} else if c != 0 {
		a.trunc = true
	}
	if integerPart {
		a.dp++
	}
}

func (a *decimal) trim() {
	for a.nd > 0 && a.d[a.nd-1] == 0 {
		a.nd--
	}
	if a.nd == 0 {
		a.dp = 0
	}
}

// shift multiplies a by 2^k, or divides by 2^-k when k is negative.
func (a *decimal) shift(k int) {
	switch {
	case a.nd == 0:
	case k > 0:
		for k > maxShift {
			a.leftShift(maxShift)
			k -= maxShift
		}
		a.leftShift(uint(k))
	case k < 0:
		for k < -maxShift {
			a.rightShift(maxShift)
			k += maxShift
		}
		a.rightShift(uint(-k))
	}
}

// leftShift multiplies by 2^k, working from the least significant digit
// into a scratch buffer.
func (a *decimal) leftShift(k uint) {
	// A shift by maxShift adds at most 19 digits.
	var buf [decimalDigits + 20]byte
	w := len(buf)

	var n uint64
	for r := a.nd - 1; r >= 0; r-- {
		n += uint64(a.d[r]) << k
		q := n / 10
		w--
		buf[w] = byte(n - 10*q)
		n = q
	}
	for n > 0 {
		q := n / 10
		w--
		buf[w] = byte(n - 10*q)
		n = q
	}

	nd := len(buf) - w
	a.dp += nd - a.nd
	if nd > decimalDigits {
		for _, c := range buf[w+decimalDigits:] {
			if c != 0 {
				a.trunc = true
				break
			}
		}
		nd = decimalDigits
	}
	copy(a.d[:], buf[w:w+nd])
	a.nd = nd
	a.trim()
}

// rightShift divides by 2^k, reading ahead until the first output digit
// is known and then writing digits in place.
func (a *decimal) rightShift(k uint) {
	r, w := 0, 0

	var n uint64
	for ; n>>k == 0; r++ {
		if r >= a.nd {
			if n == 0 {
				a.nd = 0
				a.dp = 0
				return
			}
			for n>>k == 0 {
				n *= 10
				r++
			}
			break
		}
		n = n*10 + uint64(a.d[r])
	}
	a.dp -= r - 1

	mask := uint64(1)<<k - 1
	for ; r < a.nd; r++ {
		c := uint64(a.d[r])
		a.d[w] = byte(n >> k)
		w++
		n = (n&mask)*10 + c
	}
	for n > 0 {
		dig := n >> k
		n &= mask
		if w < decimalDigits {
			a.d[w] = byte(dig)
			w++
		} else if dig > 0 {
			a.trunc = true
		}
		n *= 10
	}

	a.nd = w
	a.trim()
}

// shouldRoundUp reports whether keeping nd digits rounds up. Exact halves
// round to even unless digits were dropped.
func (a *decimal) shouldRoundUp(nd int) bool {
	if nd < 0 || nd >= a.nd {
		return false
	}
	if a.d[nd] == 5 && nd+1 == a.nd {
		if a.trunc {
			return true
		}
		return nd > 0 && a.d[nd-1]%2 == 1
	}
	return a.d[nd] >= 5
}

// round keeps nd digits, rounding to nearest.
func (a *decimal) round(nd int) {
	if nd < 0 || nd >= a.nd {
		return
	}
	if a.shouldRoundUp(nd) {
		a.roundUp(nd)
	} else {
		a.roundDown(nd)
	}
}

func (a *decimal) roundDown(nd int) {
	if nd < 0 || nd >= a.nd {
		return
	}
	a.nd = nd
	a.trim()
}

func (a *decimal) roundUp(nd int) {
	if nd < 0 || nd >= a.nd {
		return
	}
	for i := nd - 1; i >= 0; i-- {
		if a.d[i] < 9 {
			a.d[i]++
			a.nd = i + 1
			return
		}
	}
	// All nines: 999 becomes 1000.
	a.d[0] = 1
	a.nd = 1
	a.dp++
}

// roundedInteger returns the integer part of a, rounded to nearest. It
// assumes the result fits in a uint64.
func (a *decimal) roundedInteger() uint64 {
	if a.dp > 20 {
		return 0xffffffffffffffff
	}
	var n uint64
	i := 0
	for ; i < a.dp && i < a.nd; i++ {
		n = n*10 + uint64(a.d[i])
	}
	for ; i < a.dp; i++ {
		n *= 10
	}
	if a.shouldRoundUp(a.dp) {
		n++
	}
	return n
}
