package boot

import (
	"context"
	"fmt"
	"os"

	aotboot "github.com/wippyai/aot-boot"
)

// Run executes the bootstrap sequence against rt, in fixed order:
//
//  1. Initialize the runtime from img.
//  2. Clear error state left over from initialization.
//  3. Register args as the runtime's command-line arguments.
//  4. Resolve the arguments binding at (CoreNamespace, ArgsSymbol).
//  5. Invoke entry with the resolved handle.
//
// The entry function's status is returned verbatim. If any step before the
// entry invocation fails, no later step runs and the error is returned.
func Run(ctx context.Context, rt aotboot.Runtime, entry aotboot.EntryFunc, img aotboot.Image, args []string) (int, error) {
	if err := rt.Initialize(ctx, img); err != nil {
		return 0, err
	}

	rt.ClearError()

	if err := rt.SetArgs(ctx, args); err != nil {
		return 0, err
	}

	argsHandle, err := rt.Lookup(aotboot.CoreNamespace, aotboot.ArgsSymbol)
	if err != nil {
		return 0, err
	}

	return int(entry(ctx, argsHandle)), nil
}

// Main runs the bootstrap with the process's arguments and exits with the
// entry function's status. The status passes through untranslated; on Unix
// the kernel keeps only the low 8 bits of an exit status, so negative and
// out-of-range values are truncated by the platform, not here.
//
// Main does not return. If a step before the entry invocation fails, the
// error is printed to stderr and the process exits with status 1.
func Main(rt aotboot.Runtime, entry aotboot.EntryFunc, img aotboot.Image) {
	status, err := Run(context.Background(), rt, entry, img, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "boot: %v\n", err)
		os.Exit(1)
	}
	os.Exit(status)
}
