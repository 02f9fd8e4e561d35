package number

// RenderU64 writes v in decimal.
func RenderU64(dst []byte, v uint64, opts RenderOptions) int {
	var buf [MaxU64Len]byte
	i := putDecimal(buf[:], v)
	if opts.LeadingPlus {
		i--
		buf[i] = '+'
	}
	return place(dst, buf[i:], opts.AlignRight)
}

// RenderI64 writes v in decimal.
func RenderI64(dst []byte, v int64, opts RenderOptions) int {
	var buf [MaxI64Len]byte
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	i := putDecimal(buf[:], u)
	switch {
	case v < 0:
		i--
		buf[i] = '-'
	case opts.LeadingPlus:
		i--
		buf[i] = '+'
	}
	return place(dst, buf[i:], opts.AlignRight)
}

// putDecimal writes v at the end of buf and returns the start index.
func putDecimal(buf []byte, v uint64) int {
	i := len(buf)
	for v >= 10 {
		q := v / 10
		i--
		buf[i] = byte('0' + v - 10*q)
		v = q
	}
	i--
	buf[i] = byte('0' + v)
	return i
}
