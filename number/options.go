package number

// Longest outputs of RenderI64 and RenderU64.
const (
	MaxI64Len = 20
	MaxU64Len = 21
)

// MaxPrecision is the largest honoured RenderOptions.Precision.
const MaxPrecision = 4095

// Notation chooses between plain and exponent forms for RenderF64.
type Notation uint8

const (
	// NotationAdaptive picks whichever form %g would pick.
	NotationAdaptive Notation = iota
	// NotationExponentAbsent always renders plain decimals, like %f.
	NotationExponentAbsent
	// NotationExponentPresent always renders an exponent, like %e.
	NotationExponentPresent
)

func (n Notation) String() string {
	switch n {
	case NotationAdaptive:
		return "adaptive"
	case NotationExponentAbsent:
		return "exponent-absent"
	case NotationExponentPresent:
		return "exponent-present"
	default:
		return "unknown"
	}
}

// RenderOptions controls the Render functions. The zero value renders
// left-aligned with no '+' sign, a '.' separator and %g-style output with
// precision 1; floats usually want JustEnough or an explicit Precision.
type RenderOptions struct {
	// AlignRight places the output at the end of dst.
	AlignRight bool
	// LeadingPlus prefixes non-negative values with '+'.
	LeadingPlus bool
	// DecimalComma uses ',' as the decimal separator.
	DecimalComma bool

	Notation Notation

	// Precision is the number of digits after the separator, or the number
	// of significant digits for NotationAdaptive. Values above
	// MaxPrecision are clamped. Ignored when JustEnough is set.
	Precision int

	// JustEnough renders the shortest digits that parse back to the same
	// float64.
	JustEnough bool
}

func (o RenderOptions) separator() byte {
	if o.DecimalComma {
		return ','
	}
	return '.'
}

func (o RenderOptions) precision() int {
	return min(max(o.Precision, 0), MaxPrecision)
}

// place copies b into dst according to alignRight.
func place(dst, b []byte, alignRight bool) int {
	if len(dst) < len(b) {
		return 0
	}
	if alignRight {
		copy(dst[len(dst)-len(b):], b)
	} else {
		copy(dst, b)
	}
	return len(b)
}
