package main

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pkasting/wuffs/number"
	"github.com/pkasting/wuffs/transform"
	"github.com/pkasting/wuffs/utf8scan"
)

// apply runs job on one in-memory input and returns the printable result.
func apply(job *Job, input []byte) ([]byte, error) {
	if t := job.transformer(); t != nil {
		var out bytes.Buffer
		s := &transform.Stream{T: t, BufferSize: job.BufferSize}
		if _, err := s.Copy(context.Background(), &out, bytes.NewReader(input)); err != nil {
			return nil, err
		}
		return out.Bytes(), nil
	}

	opts := job.renderOptions()
	switch job.Op {
	case opParseU64:
		v, err := number.ParseU64(input)
		if err != nil {
			return nil, err
		}
		buf := make([]byte, number.MaxU64Len)
		return buf[:number.RenderU64(buf, v, opts)], nil

	case opParseI64:
		v, err := number.ParseI64(input)
		if err != nil {
			return nil, err
		}
		buf := make([]byte, number.MaxI64Len)
		return buf[:number.RenderI64(buf, v, opts)], nil

	case opParseF64:
		v, err := number.ParseF64(input)
		if err != nil {
			return nil, err
		}
		opts.JustEnough = true
		return renderF64(v, opts), nil

	case opRenderF64:
		v, err := number.ParseF64(input)
		if err != nil {
			return nil, err
		}
		return renderF64(v, opts), nil

	case opUTF8Check:
		return utf8Report(input), nil
	}
	return nil, fmt.Errorf("unknown op %q", job.Op)
}

func renderF64(v float64, opts number.RenderOptions) []byte {
	buf := make([]byte, 4608)
	return buf[:number.RenderF64(buf, v, opts)]
}

// utf8Report summarizes input as "bytes=N ascii=A utf8=U", followed by
// the bytes of the first invalid sequence when the input is not valid
// UTF-8.
func utf8Report(input []byte) []byte {
	valid := utf8scan.LongestValidPrefix(input)
	report := fmt.Sprintf("bytes=%d ascii=%d utf8=%d", len(input),
		utf8scan.ASCIILongestValidPrefix(input), valid)
	if valid < len(input) {
		bad := utf8scan.Next(input[valid:])
		report += fmt.Sprintf(" invalid=%x", input[valid:valid+bad.ByteLength])
	}
	return []byte(report)
}
