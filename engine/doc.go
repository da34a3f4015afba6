// Package engine provides the low-level wazero integration.
//
// The engine owns the wazero runtime and exposes only what the bootstrap
// layer needs: registering host modules, compiling image bytes, and
// instantiating the compiled module. Start functions are deliberately not
// run during instantiation; the runtime package drives initialization
// explicitly so the bootstrap sequence controls ordering.
package engine
