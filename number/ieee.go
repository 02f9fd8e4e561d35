package number

import "math"

// F64ToBits returns the IEEE 754 binary64 encoding of f.
func F64ToBits(f float64) uint64 { return math.Float64bits(f) }

// F64FromBits returns the float64 with IEEE 754 binary64 encoding b.
func F64FromBits(b uint64) float64 { return math.Float64frombits(b) }
