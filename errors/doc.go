// Package errors provides structured error types for the bootstrap library.
//
// Errors are categorized by Phase (where in the bootstrap sequence the error
// occurred) and Kind (error category). The Error type carries a binding path
// and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLookup, errors.KindNotFound).
//		Path("core", "ARGS").
//		Detail("no such binding").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.BindingNotFound("core", "ARGS")
//	err := errors.AlreadyInitialized("runtime")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
