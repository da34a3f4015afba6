package aotboot

import "context"

// Well-known binding names. The build pipeline that produces the entry
// symbol and the bootstrap agree on these by convention; they are contract
// constants, not configuration.
const (
	// CoreNamespace is the runtime namespace holding core bindings.
	CoreNamespace = "core"

	// ArgsSymbol names the binding that holds the runtime-visible
	// arguments object constructed from the process's argv.
	ArgsSymbol = "ARGS"

	// DefaultEntrySymbol is the conventional export name of the compiled
	// entry function.
	DefaultEntrySymbol = "__aot_main"
)

// Handle is an opaque token for a value living inside the embedded runtime.
// Handle 0 is reserved and always invalid. The native side never
// dereferences a Handle; it only passes it back across the boundary.
type Handle uint32

// EntryFunc is the fixed signature of a compiled entry function: one opaque
// value (the arguments handle) in, an integer status out. The status is
// surfaced verbatim as the process exit code.
type EntryFunc func(ctx context.Context, args Handle) int32

// Image is the source of the runtime's initial state: a pre-built snapshot
// supplied as compiled bytes rather than reconstructed at startup.
type Image interface {
	// Name identifies the image for diagnostics.
	Name() string

	// Bytes returns the raw image contents. The slice is a read-only view;
	// callers must not mutate it.
	Bytes() []byte
}

// Runtime is the embedded runtime collaborator the bootstrap drives. The
// five operations mirror the bootstrap sequence; Initialize must be called
// exactly once, before any other method.
type Runtime interface {
	// Initialize brings up the runtime's process-wide state from img.
	// It must be the first call on the runtime and must not be repeated.
	Initialize(ctx context.Context, img Image) error

	// ClearError drops any error/exception state left pending by
	// initialization so the entry function starts clean.
	ClearError()

	// SetArgs registers the process's command-line arguments, building the
	// runtime's internal arguments object and binding it at
	// (CoreNamespace, ArgsSymbol).
	SetArgs(ctx context.Context, args []string) error

	// Lookup resolves a binding by name within a namespace and returns a
	// handle to its value.
	Lookup(namespace, symbol string) (Handle, error)

	// Close releases all runtime resources.
	Close(ctx context.Context) error
}
