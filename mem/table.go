package mem

import (
	"github.com/pkasting/wuffs/errors"
)

// Table is a 2-D row-major view over a caller-owned buffer. Row y covers
// data[stride*y : stride*y+width].
//
// The zero Table is a valid empty table. Non-empty tables come from
// NewTable, which checks the geometry once so that Row never has to.
type Table struct {
	data   []byte
	width  int
	height int
	stride int
}

// NewTable returns a Table over data. It fails if any dimension is
// negative, if stride < width, or if data is too short to hold height rows.
func NewTable(data []byte, width, height, stride int) (Table, error) {
	if width < 0 || height < 0 || stride < 0 {
		return Table{}, errors.New(errors.PhaseTable, errors.KindInvalidInput).
			Detail("negative dimension: width=%d height=%d stride=%d", width, height, stride).
			Build()
	}
	if stride < width {
		return Table{}, errors.New(errors.PhaseTable, errors.KindInvalidInput).
			Detail("stride %d is less than width %d", stride, width).
			Build()
	}
	if width == 0 || height == 0 {
		return Table{data: data[:0], width: width, height: height, stride: stride}, nil
	}
	need, ok := SafeMul(uint64(stride), uint64(height-1))
	if ok {
		need, ok = SafeAdd(need, uint64(width))
	}
	if !ok || need > uint64(len(data)) {
		return Table{}, errors.OutOfBounds(errors.PhaseTable, []string{"NewTable"}, need, uint64(len(data)))
	}
	return Table{data: data[:need:need], width: width, height: height, stride: stride}, nil
}

// Width returns the number of bytes in each row.
func (t Table) Width() int { return t.width }

// Height returns the number of rows.
func (t Table) Height() int { return t.height }

// Stride returns the distance in bytes between the starts of two rows.
func (t Table) Stride() int { return t.stride }

// Row returns row y, or an empty slice if y is out of range.
func (t Table) Row(y int) []byte {
	if y < 0 || y >= t.height || t.width == 0 {
		return nil
	}
	i := t.stride * y
	j := i + t.width
	return t.data[i:j:j]
}

// Subtable returns the view of columns [x0, x1) and rows [y0, y1),
// clamped to the table's own bounds. An empty intersection yields the
// zero Table.
func (t Table) Subtable(x0, y0, x1, y1 int) Table {
	x0 = max(x0, 0)
	y0 = max(y0, 0)
	x1 = min(x1, t.width)
	y1 = min(y1, t.height)
	if x0 >= x1 || y0 >= y1 {
		return Table{}
	}
	start := t.stride*y0 + x0
	end := t.stride*(y1-1) + x1
	return Table{
		data:   t.data[start:end:end],
		width:  x1 - x0,
		height: y1 - y0,
		stride: t.stride,
	}
}
