package mem

// Prefix returns up to the first n bytes of s.
func Prefix(s []byte, n uint64) []byte {
	if uint64(len(s)) > n {
		return s[:n:n]
	}
	return s
}

// Suffix returns up to the last n bytes of s.
func Suffix(s []byte, n uint64) []byte {
	if uint64(len(s)) > n {
		return s[uint64(len(s))-n:]
	}
	return s
}

// CopyFromSlice copies min(len(dst), len(src)) bytes from src to dst and
// returns that count. Overlapping regions are handled like memmove. Empty
// or nil slices on either side are a no-op.
func CopyFromSlice(dst, src []byte) int {
	return copy(dst, src)
}
