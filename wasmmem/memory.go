package wasmmem

import (
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/pkasting/wuffs"
	"github.com/pkasting/wuffs/errors"
	"github.com/pkasting/wuffs/mem"
	"github.com/pkasting/wuffs/transform"
)

// Memory adapts a wuffs.Memory, usually a wazero api.Memory.
type Memory struct {
	mem wuffs.Memory
}

// Wrap returns a Memory over m, or nil when m is nil (a module without
// memory).
func Wrap(m wuffs.Memory) *Memory {
	if m == nil {
		return nil
	}
	return &Memory{mem: m}
}

// FromModule wraps the memory mod exports under name, or the module's own
// memory when name is empty.
func FromModule(mod api.Module, name string) (*Memory, error) {
	var m api.Memory
	if name == "" {
		m = mod.Memory()
	} else {
		m = mod.ExportedMemory(name)
	}
	if m == nil {
		return nil, errors.New(errors.PhaseMemory, errors.KindNotFound).
			Path(mod.Name()).
			Detail("no memory %q", name).
			Build()
	}
	return &Memory{mem: m}, nil
}

// Region is a byte range of linear memory.
type Region struct {
	Offset uint32
	Length uint32
}

func (r Region) end() uint64 { return uint64(r.Offset) + uint64(r.Length) }

func (r Region) overlaps(o Region) bool {
	return r.Length != 0 && o.Length != 0 &&
		uint64(r.Offset) < o.end() && uint64(o.Offset) < r.end()
}

// Size returns the current memory size in bytes.
func (m *Memory) Size() uint32 {
	return m.mem.Size()
}

// Slice returns a view of length bytes at offset. The view's capacity is
// its length, so appending to it never writes past the range.
func (m *Memory) Slice(offset, length uint32) ([]byte, error) {
	b, ok := m.mem.Read(offset, length)
	if !ok {
		return nil, errors.OutOfBounds(errors.PhaseMemory, []string{"slice"},
			uint64(offset)+uint64(length), uint64(m.mem.Size()))
	}
	return b[:length:length], nil
}

// Table returns a table view of height rows of width bytes, stride bytes
// apart, starting at offset. The last row needs only width bytes.
func (m *Memory) Table(offset, width, height, stride uint32) (mem.Table, error) {
	if stride < width {
		return mem.Table{}, errors.InvalidInput(errors.PhaseMemory, []string{"table"}, "stride shorter than width")
	}

	var need uint64
	if width != 0 && height != 0 {
		need = uint64(stride)*uint64(height-1) + uint64(width)
	}
	if uint64(offset)+need > uint64(m.mem.Size()) {
		return mem.Table{}, errors.OutOfBounds(errors.PhaseMemory, []string{"table"},
			uint64(offset)+need, uint64(m.mem.Size()))
	}

	data, err := m.Slice(offset, uint32(need))
	if err != nil {
		return mem.Table{}, err
	}
	return mem.NewTable(data, int(width), int(height), int(stride))
}

// Transform runs one call of t from src into dst. The regions must not
// overlap. The result counts are relative to the region starts.
func (m *Memory) Transform(t transform.Transformer, dst, src Region, srcClosed bool) (transform.Result, error) {
	if dst.overlaps(src) {
		return transform.Result{}, errors.InvalidInput(errors.PhaseMemory, []string{"transform"}, "regions overlap")
	}

	dstBuf, err := m.Slice(dst.Offset, dst.Length)
	if err != nil {
		return transform.Result{}, err
	}
	srcBuf, err := m.Slice(src.Offset, src.Length)
	if err != nil {
		return transform.Result{}, err
	}

	r := t.Transform(dstBuf, srcBuf, srcClosed)
	Logger().Debug("guest memory transform",
		zap.Uint32("dst_offset", dst.Offset),
		zap.Uint32("src_offset", src.Offset),
		zap.Int("num_dst", r.NumDst),
		zap.Int("num_src", r.NumSrc),
		zap.Stringer("status", r.Status))
	return r, nil
}

// Run is Transform driven to completion with transform.Run.
func (m *Memory) Run(t transform.Transformer, dst, src Region, srcClosed bool) (transform.Result, error) {
	return m.Transform(transform.Func(func(d, s []byte, closed bool) transform.Result {
		return transform.Run(t, d, s, closed)
	}), dst, src, srcClosed)
}
