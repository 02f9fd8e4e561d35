package mem

import "math"

// Unsigned is the set of fixed-width unsigned integer types.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// LowBitsMask returns a value with the low n bits set. n must be less than
// the bit width of T.
func LowBitsMask[T Unsigned](n uint) T {
	return T(1)<<n - 1
}

// SatAdd returns x+y, saturating at the maximum value of T.
func SatAdd[T Unsigned](x, y T) T {
	z := x + y
	if z < x {
		return ^T(0)
	}
	return z
}

// SatSub returns x-y, saturating at zero.
func SatSub[T Unsigned](x, y T) T {
	if y > x {
		return 0
	}
	return x - y
}

// SafeMul returns a*b and whether it fit in a uint64.
func SafeMul(a, b uint64) (uint64, bool) {
	if b != 0 && a > math.MaxUint64/b {
		return 0, false
	}
	return a * b, true
}

// SafeAdd returns a+b and whether it fit in a uint64.
func SafeAdd(a, b uint64) (uint64, bool) {
	if a > math.MaxUint64-b {
		return 0, false
	}
	return a + b, true
}
