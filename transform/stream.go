package transform

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/pkasting/wuffs/errors"
	"github.com/pkasting/wuffs/status"
)

// DefaultBufferSize is used when a Stream has no buffer size set.
const DefaultBufferSize = 4096

// Stream pumps bytes from an io.Reader through a Transformer into an
// io.Writer using two fixed buffers.
type Stream struct {
	T Transformer

	// BufferSize is the size of each of the source and destination
	// buffers. It must be large enough for the transform's smallest unit
	// of work.
	BufferSize int
}

// Copy runs the stream until r reports io.EOF and the transform completes,
// returning the number of bytes written to w. Once the transform reports
// status.EndOfData, any further source byte is a bad_data error. The context is checked
// between transform calls.
func (s *Stream) Copy(ctx context.Context, w io.Writer, r io.Reader) (int64, error) {
	size := s.BufferSize
	if size <= 0 {
		size = DefaultBufferSize
	}
	src := make([]byte, size)
	dst := make([]byte, size)

	var (
		written  int64
		lo, hi   int
		closed   bool
		ended    bool
		log      = Logger()
		readMore bool
	)

	for {
		if err := ctx.Err(); err != nil {
			return written, errors.Wrap(errors.PhaseTransform, errors.KindInterrupted, err, "stream cancelled")
		}

		if readMore {
			if lo > 0 {
				hi = copy(src, src[lo:hi])
				lo = 0
			}
			if hi == len(src) {
				return written, errors.New(errors.PhaseTransform, errors.KindInvalidUse).
					Detail("source buffer of %d bytes too small for one unit", size).
					Build()
			}
			n, err := r.Read(src[hi:])
			hi += n
			switch {
			case err == io.EOF:
				closed = true
			case err != nil:
				return written, errors.Wrap(errors.PhaseTransform, errors.KindShortRead, err, "read source")
			}
			readMore = false
		}

		if ended {
			if hi > lo {
				return written, errors.New(errors.PhaseTransform, errors.KindBadData).
					Detail("%d bytes after end of data", hi-lo).
					Build()
			}
			if closed {
				return written, nil
			}
			readMore = true
			continue
		}

		res := s.T.Transform(dst, src[lo:hi], closed)
		lo += res.NumSrc
		if res.NumDst > 0 {
			n, err := w.Write(dst[:res.NumDst])
			written += int64(n)
			if err != nil {
				return written, errors.Wrap(errors.PhaseTransform, errors.KindShortWrite, err, "write destination")
			}
		}

		st := res.Status
		switch {
		case st.IsError():
			return written, st.Err()

		case st.IsSuspension():
			log.Debug("transform suspended",
				zap.Stringer("status", st),
				zap.Int("src", res.NumSrc),
				zap.Int("dst", res.NumDst),
				zap.Bool("closed", closed))
			if closed && st != status.ShortWrite {
				return written, errors.New(errors.PhaseTransform, errors.KindInvalidInput).
					Value(st).
					Detail("input ended mid-unit: %s", st).
					Build()
			}
			if st == status.ShortWrite {
				if res.NumDst == 0 && res.NumSrc == 0 {
					return written, errors.New(errors.PhaseTransform, errors.KindInvalidUse).
						Detail("destination buffer of %d bytes too small for one unit", size).
						Build()
				}
				continue
			}
			readMore = true

		case st == status.EndOfData:
			// The transform is finished; anything left in the source is
			// trailing garbage.
			ended = true

		case closed:
			return written, nil

		default:
			readMore = true
		}
	}
}
