package mem

// Bound is the set of integer types usable as range endpoints.
type Bound interface {
	~uint32 | ~uint64
}

// RangeII is the inclusive range [Min, Max]. It is empty when Min > Max.
type RangeII[T Bound] struct {
	Min T
	Max T
}

// RangeIE is the half-open range [Min, Max). It is empty when Min >= Max.
type RangeIE[T Bound] struct {
	Min T
	Max T
}

type (
	RangeIIU32 = RangeII[uint32]
	RangeIIU64 = RangeII[uint64]
	RangeIEU32 = RangeIE[uint32]
	RangeIEU64 = RangeIE[uint64]
)

func (r RangeII[T]) IsEmpty() bool { return r.Min > r.Max }

// Equals treats all empty ranges as equal.
func (r RangeII[T]) Equals(s RangeII[T]) bool {
	return r == s || (r.IsEmpty() && s.IsEmpty())
}

func (r RangeII[T]) Intersect(s RangeII[T]) RangeII[T] {
	return RangeII[T]{Min: max(r.Min, s.Min), Max: min(r.Max, s.Max)}
}

// Unite returns the smallest range containing both r and s.
func (r RangeII[T]) Unite(s RangeII[T]) RangeII[T] {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	return RangeII[T]{Min: min(r.Min, s.Min), Max: max(r.Max, s.Max)}
}

func (r RangeII[T]) ContainsValue(x T) bool { return r.Min <= x && x <= r.Max }

func (r RangeII[T]) ContainsRange(s RangeII[T]) bool {
	return s.Equals(r.Intersect(s))
}

func (r RangeIE[T]) IsEmpty() bool { return r.Min >= r.Max }

func (r RangeIE[T]) Equals(s RangeIE[T]) bool {
	return r == s || (r.IsEmpty() && s.IsEmpty())
}

func (r RangeIE[T]) Intersect(s RangeIE[T]) RangeIE[T] {
	return RangeIE[T]{Min: max(r.Min, s.Min), Max: min(r.Max, s.Max)}
}

func (r RangeIE[T]) Unite(s RangeIE[T]) RangeIE[T] {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	return RangeIE[T]{Min: min(r.Min, s.Min), Max: max(r.Max, s.Max)}
}

func (r RangeIE[T]) ContainsValue(x T) bool { return r.Min <= x && x < r.Max }

func (r RangeIE[T]) ContainsRange(s RangeIE[T]) bool {
	return s.Equals(r.Intersect(s))
}

// Length returns Max-Min, or 0 for an empty range.
func (r RangeIE[T]) Length() T {
	if r.IsEmpty() {
		return 0
	}
	return r.Max - r.Min
}

// RectII is the inclusive rectangle [MinX, MaxX] x [MinY, MaxY].
type RectII[T Bound] struct {
	MinX, MinY T
	MaxX, MaxY T
}

// RectIE is the half-open rectangle [MinX, MaxX) x [MinY, MaxY).
type RectIE[T Bound] struct {
	MinX, MinY T
	MaxX, MaxY T
}

type (
	RectIIU32 = RectII[uint32]
	RectIEU32 = RectIE[uint32]
)

func (r RectII[T]) IsEmpty() bool { return r.MinX > r.MaxX || r.MinY > r.MaxY }

func (r RectII[T]) Equals(s RectII[T]) bool {
	return r == s || (r.IsEmpty() && s.IsEmpty())
}

func (r RectII[T]) Intersect(s RectII[T]) RectII[T] {
	return RectII[T]{
		MinX: max(r.MinX, s.MinX),
		MinY: max(r.MinY, s.MinY),
		MaxX: min(r.MaxX, s.MaxX),
		MaxY: min(r.MaxY, s.MaxY),
	}
}

func (r RectII[T]) Unite(s RectII[T]) RectII[T] {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	return RectII[T]{
		MinX: min(r.MinX, s.MinX),
		MinY: min(r.MinY, s.MinY),
		MaxX: max(r.MaxX, s.MaxX),
		MaxY: max(r.MaxY, s.MaxY),
	}
}

func (r RectII[T]) ContainsPoint(x, y T) bool {
	return r.MinX <= x && x <= r.MaxX && r.MinY <= y && y <= r.MaxY
}

func (r RectII[T]) ContainsRect(s RectII[T]) bool {
	return s.Equals(r.Intersect(s))
}

func (r RectIE[T]) IsEmpty() bool { return r.MinX >= r.MaxX || r.MinY >= r.MaxY }

func (r RectIE[T]) Equals(s RectIE[T]) bool {
	return r == s || (r.IsEmpty() && s.IsEmpty())
}

func (r RectIE[T]) Intersect(s RectIE[T]) RectIE[T] {
	return RectIE[T]{
		MinX: max(r.MinX, s.MinX),
		MinY: max(r.MinY, s.MinY),
		MaxX: min(r.MaxX, s.MaxX),
		MaxY: min(r.MaxY, s.MaxY),
	}
}

func (r RectIE[T]) Unite(s RectIE[T]) RectIE[T] {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	return RectIE[T]{
		MinX: min(r.MinX, s.MinX),
		MinY: min(r.MinY, s.MinY),
		MaxX: max(r.MaxX, s.MaxX),
		MaxY: max(r.MaxY, s.MaxY),
	}
}

func (r RectIE[T]) ContainsPoint(x, y T) bool {
	return r.MinX <= x && x < r.MaxX && r.MinY <= y && y < r.MaxY
}

func (r RectIE[T]) ContainsRect(s RectIE[T]) bool {
	return s.Equals(r.Intersect(s))
}

// Width returns MaxX-MinX, or 0 for an empty rect.
func (r RectIE[T]) Width() T {
	if r.MaxX <= r.MinX {
		return 0
	}
	return r.MaxX - r.MinX
}

// Height returns MaxY-MinY, or 0 for an empty rect.
func (r RectIE[T]) Height() T {
	if r.MaxY <= r.MinY {
		return 0
	}
	return r.MaxY - r.MinY
}
