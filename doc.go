// Package wuffs is a small runtime for safe, resumable byte codecs.
//
// Codecs built on it never read or write outside the buffers they are
// given, never allocate on the hot path, and report partial progress as a
// status rather than blocking: a decoder that runs out of input returns a
// short-read suspension and picks up where it left off on the next call.
//
// # Architecture Overview
//
//	wuffs/          Root package with the Memory interface
//	├── errors/     Structured error types (phase, kind, detail)
//	├── status/     OK / note / suspension / fatal outcomes
//	├── coro/       Resume-point bookkeeping for suspendable calls
//	├── mem/        Slice helpers, 2-D tables, ranges and rects
//	├── transform/  Streaming transform convention and io adapter
//	├── base16/     Hex encode and decode transforms
//	├── base64/     Standard and URL-safe base64 transforms
//	├── varint/     Resumable LEB128 integer codec
//	├── number/     Integer and f64 parsing and rendering
//	├── utf8scan/   UTF-8 and ASCII validation and decoding
//	├── wasmmem/    Bounds-checked views over WebAssembly linear memory
//	└── cmd/wuffs/  Command-line and interactive front end
//
// # Quick Start
//
// Encode a stream to base64:
//
//	s := transform.Stream{T: base64.Options{EmitPadding: true}.Encoder()}
//	if _, err := s.Copy(ctx, os.Stdout, os.Stdin); err != nil {
//	    log.Fatal(err)
//	}
//
// Drive a transform by hand:
//
//	r := base16.Decoder2.Transform(dst, src, true)
//	if r.Status.IsError() {
//	    return r.Status.Err()
//	}
//
// Parse and render numbers:
//
//	f, err := number.ParseF64([]byte("1e-7"))
//	n := number.RenderF64(buf, f, number.RenderOptions{JustEnough: true})
//
// # Thread Safety
//
// Free functions and the package-level transformers are stateless and safe
// for concurrent use. Stateful values (varint.Decoder, coro.Coroutine,
// transform.Disabling) belong to one goroutine at a time.
package wuffs
