package runtime

import (
	"context"

	"github.com/tetratelabs/wazero/api"

	aotboot "github.com/wippyai/aot-boot"
	"github.com/wippyai/aot-boot/engine"
)

// ArgsHostModule is the namespace guests import argument accessors from.
//
// Guest ABI, all i32:
//
//	count(args) -> n          number of arguments, -1 for a bad handle
//	len(args, i) -> n         byte length of argument i, -1 if out of range
//	read(args, i, ptr, cap)   copy argument i into memory at ptr, -> bytes
//	                          written, -1 if out of range or cap too small
const ArgsHostModule = "aot:boot/args"

// argsObject is the runtime's internal representation of the process's
// command-line arguments. It owns a copy of the strings; the original argv
// is not retained.
type argsObject struct {
	values []string
}

func newArgsObject(args []string) *argsObject {
	values := make([]string, len(args))
	copy(values, args)
	return &argsObject{values: values}
}

func (a *argsObject) count() int32 {
	return int32(len(a.values))
}

func (a *argsObject) size(i int32) int32 {
	if i < 0 || int(i) >= len(a.values) {
		return -1
	}
	return int32(len(a.values[i]))
}

func (a *argsObject) read(i int32, buf []byte) int32 {
	if i < 0 || int(i) >= len(a.values) {
		return -1
	}
	arg := a.values[i]
	if len(buf) < len(arg) {
		return -1
	}
	return int32(copy(buf, arg))
}

// argsAt resolves a handle to the arguments object, or nil.
func (r *Runtime) argsAt(h aotboot.Handle) *argsObject {
	v, ok := r.globals.get(h)
	if !ok {
		return nil
	}
	obj, _ := v.(*argsObject)
	return obj
}

// registerArgsHost exposes the arguments accessors to the guest.
func (r *Runtime) registerArgsHost(ctx context.Context, eng *engine.Engine) error {
	i32 := api.ValueTypeI32

	fns := []engine.HostFunc{
		{
			Name:    "count",
			Params:  []api.ValueType{i32},
			Results: []api.ValueType{i32},
			Fn: func(_ context.Context, _ api.Module, stack []uint64) {
				obj := r.argsAt(aotboot.Handle(api.DecodeU32(stack[0])))
				if obj == nil {
					stack[0] = api.EncodeI32(-1)
					return
				}
				stack[0] = api.EncodeI32(obj.count())
			},
		},
		{
			Name:    "len",
			Params:  []api.ValueType{i32, i32},
			Results: []api.ValueType{i32},
			Fn: func(_ context.Context, _ api.Module, stack []uint64) {
				obj := r.argsAt(aotboot.Handle(api.DecodeU32(stack[0])))
				if obj == nil {
					stack[0] = api.EncodeI32(-1)
					return
				}
				stack[0] = api.EncodeI32(obj.size(api.DecodeI32(stack[1])))
			},
		},
		{
			Name:    "read",
			Params:  []api.ValueType{i32, i32, i32, i32},
			Results: []api.ValueType{i32},
			Fn: func(_ context.Context, mod api.Module, stack []uint64) {
				obj := r.argsAt(aotboot.Handle(api.DecodeU32(stack[0])))
				index := api.DecodeI32(stack[1])
				ptr := api.DecodeU32(stack[2])
				capacity := api.DecodeI32(stack[3])
				if obj == nil || capacity < 0 || mod.Memory() == nil {
					stack[0] = api.EncodeI32(-1)
					return
				}

				buf := make([]byte, capacity)
				n := obj.read(index, buf)
				if n < 0 {
					stack[0] = api.EncodeI32(-1)
					return
				}
				if !mod.Memory().Write(ptr, buf[:n]) {
					stack[0] = api.EncodeI32(-1)
					return
				}
				stack[0] = api.EncodeI32(n)
			},
		},
	}

	return eng.RegisterHostModule(ctx, ArgsHostModule, fns)
}
