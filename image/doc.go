// Package image loads and validates runtime images.
//
// An image is the pre-built snapshot an AOT build pipeline emits: the
// compiled guest program as a WebAssembly binary. InMemory wraps bytes
// already linked into or held by the process (the normal bootstrap path);
// FromFile reads one from disk. Both validate the binary header before the
// engine ever sees the bytes.
//
// A Manifest is an optional YAML sidecar naming the entry symbol and the
// arguments binding when a deployment needs to deviate from convention.
package image
