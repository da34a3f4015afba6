package runtime

import (
	"context"
	stderrors "errors"
	"sort"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/sys"
	"go.uber.org/zap"

	aotboot "github.com/wippyai/aot-boot"
	"github.com/wippyai/aot-boot/engine"
	"github.com/wippyai/aot-boot/errors"
)

// imageInitSymbol is the image's optional init export, run once during
// Initialize before anything else touches the instance.
const imageInitSymbol = "_initialize"

// Runtime is the embedded runtime backed by wazero. It implements
// aotboot.Runtime. The zero value is not usable; construct with New or
// NewWithConfig.
type Runtime struct {
	mu          sync.Mutex
	cfg         *engine.Config
	engine      *engine.Engine
	compiled    wazero.CompiledModule
	instance    api.Module
	globals     *globals
	pending     error
	initialized bool
}

// New creates an uninitialized runtime. No resources are acquired until
// Initialize runs.
func New() *Runtime {
	return NewWithConfig(nil)
}

// NewWithConfig creates an uninitialized runtime with a custom engine
// configuration.
func NewWithConfig(cfg *engine.Config) *Runtime {
	return &Runtime{
		cfg:     cfg,
		globals: newGlobals(),
	}
}

// Initialize brings up the runtime from img: creates the engine, registers
// the arguments host module, compiles and instantiates the image, and runs
// its optional init export. It must be the first call on the runtime; a
// second call is rejected. A fault raised by the image's init export is held
// as pending error state for ClearError rather than failing initialization.
func (r *Runtime) Initialize(ctx context.Context, img aotboot.Image) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.initialized {
		return errors.AlreadyInitialized("runtime")
	}

	eng, err := engine.NewWithConfig(ctx, r.cfg)
	if err != nil {
		return errors.Wrap(errors.PhaseInit, errors.KindInstantiation, err, "create engine")
	}

	if err := r.registerArgsHost(ctx, eng); err != nil {
		eng.Close(ctx)
		return err
	}

	compiled, err := eng.Compile(ctx, img.Bytes())
	if err != nil {
		eng.Close(ctx)
		return err
	}

	instance, err := eng.Instantiate(ctx, compiled, img.Name())
	if err != nil {
		eng.Close(ctx)
		return err
	}

	r.engine = eng
	r.compiled = compiled
	r.instance = instance
	r.initialized = true

	if initFn := instance.ExportedFunction(imageInitSymbol); initFn != nil {
		if _, err := initFn.Call(ctx); err != nil {
			r.pending = errors.Trap(errors.PhaseInit, imageInitSymbol, err)
		}
	}

	engine.Logger().Info("runtime initialized",
		zap.String("image", img.Name()),
		zap.Int("size", len(img.Bytes())))
	return nil
}

// ClearError drops any pending error state, such as a fault recorded by the
// image's init export.
func (r *Runtime) ClearError() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = nil
}

// PendingError returns the currently pending error, if any.
func (r *Runtime) PendingError() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending
}

// SetArgs builds the runtime's arguments object from args and binds it at
// (CoreNamespace, ArgsSymbol). Calling it again replaces the object behind
// the same handle.
func (r *Runtime) SetArgs(_ context.Context, args []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return errors.NotInitialized(errors.PhaseArgs, "runtime")
	}

	h := r.globals.bind(aotboot.CoreNamespace, aotboot.ArgsSymbol, newArgsObject(args))
	engine.Logger().Debug("arguments registered",
		zap.Int("count", len(args)),
		zap.Uint32("handle", uint32(h)))
	return nil
}

// Lookup resolves a binding by name within a namespace.
func (r *Runtime) Lookup(namespace, symbol string) (aotboot.Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return 0, errors.NotInitialized(errors.PhaseLookup, "runtime")
	}

	h, ok := r.globals.lookup(namespace, symbol)
	if !ok {
		return 0, errors.BindingNotFound(namespace, symbol)
	}
	return h, nil
}

// Entry returns the compiled entry function exported under sym. Resolution
// happens at call time, after the runtime is initialized. A guest exit maps
// to its exit code; a missing export or a guest trap is recorded as the
// runtime's pending error and reported as status 1.
func (r *Runtime) Entry(sym string) aotboot.EntryFunc {
	return func(ctx context.Context, args aotboot.Handle) int32 {
		fn := r.exported(sym)
		if fn == nil {
			r.recordFault(errors.NotFound(errors.PhaseEntry, "entry symbol", sym))
			return 1
		}

		results, err := fn.Call(ctx, uint64(args))
		if err != nil {
			var exitErr *sys.ExitError
			if stderrors.As(err, &exitErr) {
				return int32(exitErr.ExitCode())
			}
			r.recordFault(errors.Trap(errors.PhaseEntry, sym, err))
			return 1
		}

		if len(results) == 0 {
			return 0
		}
		return int32(uint32(results[0]))
	}
}

// Exports returns the image's exported function names, sorted. Empty before
// Initialize.
func (r *Runtime) Exports() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.compiled == nil {
		return nil
	}
	defs := r.compiled.ExportedFunctions()
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close releases all runtime resources, including the image instance.
func (r *Runtime) Close(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.engine == nil {
		return nil
	}
	err := r.engine.Close(ctx)
	r.engine = nil
	r.instance = nil
	r.compiled = nil
	return err
}

func (r *Runtime) exported(sym string) api.Function {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized || r.instance == nil {
		return nil
	}
	return r.instance.ExportedFunction(sym)
}

func (r *Runtime) recordFault(err error) {
	r.mu.Lock()
	r.pending = err
	r.mu.Unlock()
	engine.Logger().Warn("fault recorded", zap.Error(err))
}
