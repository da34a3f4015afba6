// Package runtime provides the embedded runtime that executes ahead-of-time
// compiled images, backed by wazero.
//
// Runtime implements the aotboot.Runtime collaborator interface the
// bootstrap drives. Initialization is explicit and happens exactly once:
//
//	rt := runtime.New()
//	if err := rt.Initialize(ctx, img); err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Close(ctx)
//
// After initialization the runtime can register the process arguments,
// resolve bindings, and hand out the image's entry function:
//
//	rt.ClearError()
//	rt.SetArgs(ctx, os.Args[1:])
//	h, _ := rt.Lookup(aotboot.CoreNamespace, aotboot.ArgsSymbol)
//	status := rt.Entry(aotboot.DefaultEntrySymbol)(ctx, h)
//
// Guests reach the arguments object through the ArgsHostModule host
// functions, passing back the handle the entry function received.
//
// Runtime methods are safe for concurrent use, though the bootstrap itself
// is strictly sequential.
package runtime
