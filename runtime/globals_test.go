package runtime

import "testing"

func TestGlobals_BindAndLookup(t *testing.T) {
	g := newGlobals()

	h := g.bind("core", "ARGS", "value")
	if h == 0 {
		t.Fatal("bind returned the reserved handle 0")
	}

	got, ok := g.lookup("core", "ARGS")
	if !ok || got != h {
		t.Errorf("lookup = (%d, %v), want (%d, true)", got, ok, h)
	}

	v, ok := g.get(h)
	if !ok || v != "value" {
		t.Errorf("get = (%v, %v), want (value, true)", v, ok)
	}
}

func TestGlobals_LookupUnknown(t *testing.T) {
	g := newGlobals()
	if _, ok := g.lookup("core", "MISSING"); ok {
		t.Error("lookup of unbound name succeeded")
	}
}

func TestGlobals_GetInvalidHandle(t *testing.T) {
	g := newGlobals()
	g.bind("core", "A", 1)

	if _, ok := g.get(0); ok {
		t.Error("handle 0 resolved; it is reserved")
	}
	if _, ok := g.get(99); ok {
		t.Error("out-of-range handle resolved")
	}
}

func TestGlobals_RebindKeepsHandle(t *testing.T) {
	g := newGlobals()

	h1 := g.bind("core", "ARGS", "first")
	h2 := g.bind("core", "ARGS", "second")
	if h1 != h2 {
		t.Fatalf("rebind changed handle: %d != %d", h1, h2)
	}

	v, _ := g.get(h1)
	if v != "second" {
		t.Errorf("get = %v, want replaced value", v)
	}
}

func TestGlobals_DistinctNamespaces(t *testing.T) {
	g := newGlobals()

	h1 := g.bind("core", "X", 1)
	h2 := g.bind("sys", "X", 2)
	if h1 == h2 {
		t.Error("same handle for bindings in different namespaces")
	}
}
