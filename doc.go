// Package aotboot provides the native bootstrap for ahead-of-time compiled
// guest programs that embed a managed runtime.
//
// An AOT build pipeline produces two artifacts: an image (the runtime's
// initial state plus the compiled program, as a WebAssembly binary) and a
// well-known entry symbol inside it. This library is the glue a native
// launcher needs to run such an artifact: it initializes the embedded
// runtime exactly once, clears any error state left over from
// initialization, hands the process's command-line arguments to the runtime,
// resolves the runtime-visible arguments binding, calls the compiled entry
// function with it, and surfaces the entry's integer status as the process
// exit code.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	aotboot/      Root package with boundary types (Handle, Runtime, EntryFunc)
//	├── boot/     The bootstrap sequence itself
//	├── runtime/  Embedded runtime backed by wazero
//	├── engine/   Low-level wazero integration
//	├── image/    Image loading, validation, and manifests
//	└── errors/   Structured error types for debugging
//
// # Quick Start
//
// Boot an image and exit with the entry function's status:
//
//	img, err := image.FromFile("app.wasm")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rt := runtime.New()
//	boot.Main(rt, rt.Entry(aotboot.DefaultEntrySymbol), img)
//
// Or drive the sequence yourself:
//
//	status, err := boot.Run(ctx, rt, rt.Entry("__aot_main"), img, os.Args[1:])
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Exit(status)
//
// # Boundary Contract
//
// The shim treats the runtime as an opaque collaborator. Values that cross
// the native/runtime boundary (the arguments object, the entry function's
// parameter) are represented as Handle tokens and are never dereferenced on
// the native side. The arguments binding lives at a fixed, pre-agreed
// location (CoreNamespace, ArgsSymbol); the build pipeline that produces the
// entry symbol relies on finding it there.
//
// # Thread Safety
//
// The bootstrap sequence runs once, on a single goroutine, before anything
// else touches the runtime. Runtime implementations guard initialization so
// a second Initialize is rejected rather than silently repeated.
package aotboot
