package engine

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/aot-boot/errors"
)

// Engine wraps a wazero runtime with the narrow surface the bootstrap
// needs: host module registration, image compilation, and instantiation.
type Engine struct {
	runtime wazero.Runtime
}

// Config holds configuration for engine creation
type Config struct {
	// MemoryLimitPages sets the maximum memory per instance in pages (64KB each).
	// 0 means default (65536 pages = 4GB).
	// 256 = 16MB, 1024 = 64MB, 4096 = 256MB
	MemoryLimitPages uint32
}

// New creates a new wazero-based engine
func New(ctx context.Context) (*Engine, error) {
	return NewWithConfig(ctx, nil)
}

// NewWithConfig creates a new engine with custom configuration
func NewWithConfig(ctx context.Context, cfg *Config) (*Engine, error) {
	runtimeCfg := wazero.NewRuntimeConfig()

	if cfg != nil && cfg.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}

	runtime := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)
	return &Engine{runtime: runtime}, nil
}

// HostFunc describes one host function to expose to the guest.
type HostFunc struct {
	Name    string
	Params  []api.ValueType
	Results []api.ValueType
	Fn      api.GoModuleFunc
}

// RegisterHostModule instantiates a host module exposing fns under
// namespace. Must be called before Instantiate for guests importing from it.
func (e *Engine) RegisterHostModule(ctx context.Context, namespace string, fns []HostFunc) error {
	builder := e.runtime.NewHostModuleBuilder(namespace)
	for _, f := range fns {
		builder = builder.NewFunctionBuilder().
			WithGoModuleFunction(f.Fn, f.Params, f.Results).
			Export(f.Name)
	}
	if _, err := builder.Instantiate(ctx); err != nil {
		return errors.Registration(namespace, "host", err)
	}
	Logger().Debug("host module registered",
		zap.String("namespace", namespace),
		zap.Int("functions", len(fns)))
	return nil
}

// Compile compiles image bytes into an executable module.
func (e *Engine) Compile(ctx context.Context, data []byte) (wazero.CompiledModule, error) {
	compiled, err := e.runtime.CompileModule(ctx, data)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseInit, errors.KindInvalidImage, err, "compile image")
	}
	return compiled, nil
}

// Instantiate creates a module instance. Start functions are not run
// automatically; initialization order is owned by the caller.
func (e *Engine) Instantiate(ctx context.Context, compiled wazero.CompiledModule, name string) (api.Module, error) {
	cfg := wazero.NewModuleConfig().
		WithName(name).
		WithStartFunctions()

	mod, err := e.runtime.InstantiateModule(ctx, compiled, cfg)
	if err != nil {
		return nil, errors.Instantiation(err)
	}
	return mod, nil
}

// Close releases all engine resources, including every module instance.
func (e *Engine) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}
