package runtime

import (
	"sync"

	aotboot "github.com/wippyai/aot-boot"
)

// globals is the runtime's binding table: (namespace, symbol) names mapped
// to handles, handles mapped to values. Handle 0 is reserved and invalid.
// Bindings live for the process lifetime; handles are never reused.
type globals struct {
	mu      sync.RWMutex
	entries []any
	names   map[string]aotboot.Handle
}

func newGlobals() *globals {
	return &globals{
		entries: make([]any, 0, 8),
		names:   make(map[string]aotboot.Handle),
	}
}

func bindingKey(namespace, symbol string) string {
	return namespace + "/" + symbol
}

// bind associates a value with a named binding and returns its handle.
// Rebinding an existing name replaces the value; the handle stays stable.
func (g *globals) bind(namespace, symbol string, value any) aotboot.Handle {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := bindingKey(namespace, symbol)
	if h, ok := g.names[key]; ok {
		g.entries[h-1] = value
		return h
	}

	g.entries = append(g.entries, value)
	h := aotboot.Handle(len(g.entries))
	g.names[key] = h
	return h
}

// lookup resolves a named binding to its handle.
func (g *globals) lookup(namespace, symbol string) (aotboot.Handle, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	h, ok := g.names[bindingKey(namespace, symbol)]
	return h, ok
}

// get retrieves the value behind a handle.
func (g *globals) get(h aotboot.Handle) (any, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if h == 0 || int(h) > len(g.entries) {
		return nil, false
	}
	return g.entries[h-1], true
}
