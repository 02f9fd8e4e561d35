// Package wasmmem exposes WebAssembly linear memory through the bounds-safe
// views and transforms of this module.
//
// A guest module and its host often exchange encoded text through linear
// memory: a guest writes base64 at one offset and asks the host to decode
// it into another. Memory turns (offset, length) pairs into slices, tables
// and transform calls without copying, rejecting any range that falls
// outside the memory.
//
//	mod, _ := rt.Instantiate(ctx, wasmBytes)
//	m, _ := wasmmem.FromModule(mod, "")
//	res, err := m.Transform(base16.Decoder2,
//	    wasmmem.Region{Offset: 1024, Length: 256},
//	    wasmmem.Region{Offset: 0, Length: 512}, true)
//
// Views alias guest memory. They are valid until the guest grows its
// memory or the module is closed; holding one across either is a caller
// bug that this package cannot detect.
package wasmmem
