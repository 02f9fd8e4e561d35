package mem

// IterateTotalAdvance returns the exclusive offset at which a sliding
// window of iterLen bytes, moved iterAdvance bytes per step, stops when
// scanning a buffer of totalLen bytes.
//
// For totalLen=15, iterLen=5, iterAdvance=3 the windows start at 0, 3, 6
// and 9, so the result is 12:
//
//	0123456789012345
//	[....]
//	   [....]
//	      [....]
//	         [....]
//	            $
//
// The result r always satisfies 0 <= r <= totalLen. iterAdvance must be
// positive and no larger than iterLen.
func IterateTotalAdvance(totalLen, iterLen, iterAdvance int) int {
	if iterAdvance <= 0 {
		panic("mem: IterateTotalAdvance with non-positive advance")
	}
	if totalLen >= iterLen {
		n := totalLen - iterLen
		return ((n / iterAdvance) * iterAdvance) + iterAdvance
	}
	return 0
}
