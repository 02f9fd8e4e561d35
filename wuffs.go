package wuffs

// Memory is a linear memory that hands out views of its bytes. wazero's
// api.Memory satisfies it directly.
//
// A view returned by Read aliases the memory: writes through it are
// visible to the owner, and it is only valid until the memory grows.
type Memory interface {
	Read(offset, byteCount uint32) ([]byte, bool)
	Size() uint32
}
