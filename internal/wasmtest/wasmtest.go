// Package wasmtest assembles tiny WebAssembly binaries for tests, so test
// images need no external toolchain or fixture files.
package wasmtest

import aotboot "github.com/wippyai/aot-boot"

// Section IDs used by the assembled modules.
const (
	sectionType     byte = 1
	sectionImport   byte = 2
	sectionFunction byte = 3
	sectionMemory   byte = 5
	sectionExport   byte = 7
	sectionCode     byte = 10
)

// entryType is (i32) -> (i32): the fixed entry ABI.
var entryType = []byte{0x60, 0x01, 0x7F, 0x01, 0x7F}

// readType is (i32, i32, i32, i32) -> (i32): the args read host function.
var readType = []byte{0x60, 0x04, 0x7F, 0x7F, 0x7F, 0x7F, 0x01, 0x7F}

func uleb128(v uint32) []byte {
	var out []byte
	for {
		b := byte(v & 0x7F)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		out = append(out, b)
		if v == 0 {
			return out
		}
	}
}

func sleb128(v int32) []byte {
	var out []byte
	for {
		b := byte(v & 0x7F)
		v >>= 7
		done := (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0)
		if !done {
			b |= 0x80
		}
		out = append(out, b)
		if done {
			return out
		}
	}
}

func name(s string) []byte {
	return append(uleb128(uint32(len(s))), s...)
}

func section(id byte, contents []byte) []byte {
	out := []byte{id}
	out = append(out, uleb128(uint32(len(contents)))...)
	return append(out, contents...)
}

func vec(count uint32, items ...[]byte) []byte {
	out := uleb128(count)
	for _, item := range items {
		out = append(out, item...)
	}
	return out
}

func body(expr []byte) []byte {
	code := append([]byte{0x00}, expr...) // no locals
	return append(uleb128(uint32(len(code))), code...)
}

func module(sections ...[]byte) []byte {
	out := []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}
	for _, s := range sections {
		out = append(out, s...)
	}
	return out
}

func exportFunc(sym string, idx uint32) []byte {
	out := name(sym)
	out = append(out, 0x00)
	return append(out, uleb128(idx)...)
}

// StatusModule exports an entry function that ignores its argument and
// returns the given status.
func StatusModule(status int32) []byte {
	expr := append([]byte{0x41}, sleb128(status)...) // i32.const status
	expr = append(expr, 0x0B)                        // end
	return module(
		section(sectionType, vec(1, entryType)),
		section(sectionFunction, vec(1, uleb128(0))),
		section(sectionExport, vec(1, exportFunc(aotboot.DefaultEntrySymbol, 0))),
		section(sectionCode, vec(1, body(expr))),
	)
}

// EchoModule exports an entry function that returns its argument verbatim.
func EchoModule() []byte {
	expr := []byte{0x20, 0x00, 0x0B} // local.get 0, end
	return module(
		section(sectionType, vec(1, entryType)),
		section(sectionFunction, vec(1, uleb128(0))),
		section(sectionExport, vec(1, exportFunc(aotboot.DefaultEntrySymbol, 0))),
		section(sectionCode, vec(1, body(expr))),
	)
}

// CountModule exports an entry function that forwards its argument to the
// host's count function and returns the result: the number of command-line
// arguments.
func CountModule(hostModule string) []byte {
	imp := name(hostModule)
	imp = append(imp, name("count")...)
	imp = append(imp, 0x00) // func import
	imp = append(imp, uleb128(0)...)

	// local.get 0, call $count, end
	expr := []byte{0x20, 0x00, 0x10, 0x00, 0x0B}
	return module(
		section(sectionType, vec(1, entryType)),
		section(sectionImport, vec(1, imp)),
		section(sectionFunction, vec(1, uleb128(0))),
		section(sectionExport, vec(1, exportFunc(aotboot.DefaultEntrySymbol, 1))),
		section(sectionCode, vec(1, body(expr))),
	)
}

// ReadModule exports an entry function that copies argument 0 into guest
// memory via the host's read function and returns the byte count written.
func ReadModule(hostModule string) []byte {
	imp := name(hostModule)
	imp = append(imp, name("read")...)
	imp = append(imp, 0x00) // func import
	imp = append(imp, uleb128(1)...)

	mem := []byte{0x00, 0x01} // no max, min 1 page

	exports := vec(2,
		exportFunc(aotboot.DefaultEntrySymbol, 1),
		append(name("memory"), 0x02, 0x00),
	)

	// read(args, index=0, ptr=0, cap=64)
	expr := []byte{0x20, 0x00} // local.get 0
	expr = append(expr, 0x41, 0x00)
	expr = append(expr, 0x41, 0x00)
	expr = append(expr, 0x41)
	expr = append(expr, sleb128(64)...)
	expr = append(expr, 0x10, 0x00, 0x0B) // call $read, end
	return module(
		section(sectionType, vec(2, entryType, readType)),
		section(sectionImport, vec(1, imp)),
		section(sectionFunction, vec(1, uleb128(0))),
		section(sectionMemory, vec(1, mem)),
		section(sectionExport, exports),
		section(sectionCode, vec(1, body(expr))),
	)
}
