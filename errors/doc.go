// Package errors provides structured error types for the runtime.
//
// Errors are categorized by Phase (which layer reported them) and Kind
// (error category). The Error type carries the operation path, the target
// type name, the offending value and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindBadArgument).
//		Path("number", "ParseU64").
//		Type("u64").
//		Value("0644").
//		Detail("unnecessary leading zero").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.BadArgument(errors.PhaseParse, "u64", text, "empty input")
//	err := errors.OutOfBounds(errors.PhaseMemory, path, 10, 5)
//
// Fatal statuses from the status package convert to this type, so
// errors.Is matches by phase and kind across the whole runtime.
package errors
