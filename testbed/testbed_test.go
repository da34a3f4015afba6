// Package testbed holds end-to-end tests that drive the full bootstrap
// sequence over the real wazero-backed runtime with hand-assembled images.
package testbed

import (
	"context"
	"testing"

	aotboot "github.com/wippyai/aot-boot"
	"github.com/wippyai/aot-boot/boot"
	"github.com/wippyai/aot-boot/image"
	"github.com/wippyai/aot-boot/internal/wasmtest"
	"github.com/wippyai/aot-boot/runtime"
)

func img(t *testing.T, data []byte) *image.Image {
	t.Helper()
	i, err := image.InMemory("testbed", data)
	if err != nil {
		t.Fatalf("build image: %v", err)
	}
	return i
}

func TestBoot_StatusPassThrough(t *testing.T) {
	tests := []struct {
		name   string
		status int32
		want   int
	}{
		{"zero", 0, 0},
		{"one", 1, 1},
		{"negative", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			rt := runtime.New()
			defer rt.Close(ctx)

			status, err := boot.Run(ctx, rt, rt.Entry(aotboot.DefaultEntrySymbol),
				img(t, wasmtest.StatusModule(tt.status)), nil)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if status != tt.want {
				t.Errorf("status = %d, want %d", status, tt.want)
			}
		})
	}
}

func TestBoot_EntryReceivesArgsHandle(t *testing.T) {
	ctx := context.Background()
	rt := runtime.New()
	defer rt.Close(ctx)

	// The echo image returns its argument, so the exit status is the
	// handle the entry function received.
	status, err := boot.Run(ctx, rt, rt.Entry(aotboot.DefaultEntrySymbol),
		img(t, wasmtest.EchoModule()), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	h, err := rt.Lookup(aotboot.CoreNamespace, aotboot.ArgsSymbol)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if status != int(h) {
		t.Errorf("entry received handle %d, want %d", status, h)
	}
}

func TestBoot_GuestSeesArgumentCount(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"three arguments", []string{"alpha", "beta", "gamma"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			rt := runtime.New()
			defer rt.Close(ctx)

			status, err := boot.Run(ctx, rt, rt.Entry(aotboot.DefaultEntrySymbol),
				img(t, wasmtest.CountModule(runtime.ArgsHostModule)), tt.args)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if status != len(tt.args) {
				t.Errorf("guest saw %d arguments, want %d", status, len(tt.args))
			}
		})
	}
}

func TestBoot_GuestReadsArgumentBytes(t *testing.T) {
	ctx := context.Background()
	rt := runtime.New()
	defer rt.Close(ctx)

	// The read image copies argument 0 into guest memory and returns the
	// byte count written.
	status, err := boot.Run(ctx, rt, rt.Entry(aotboot.DefaultEntrySymbol),
		img(t, wasmtest.ReadModule(runtime.ArgsHostModule)), []string{"hello"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if status != len("hello") {
		t.Errorf("guest read %d bytes, want %d", status, len("hello"))
	}
}

func TestBoot_BadImageFailsBeforeEntry(t *testing.T) {
	ctx := context.Background()
	rt := runtime.New()
	defer rt.Close(ctx)

	entered := false
	entry := func(_ context.Context, _ aotboot.Handle) int32 {
		entered = true
		return 0
	}

	bad := append([]byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}, 0xFF)
	_, err := boot.Run(ctx, rt, entry, img(t, bad), nil)
	if err == nil {
		t.Fatal("expected initialization failure")
	}
	if entered {
		t.Error("entry invoked after failed initialization")
	}
}
