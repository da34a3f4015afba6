package image

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// header returns a minimal valid image header (magic + version).
func header() []byte {
	return []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}
}

func TestInMemory_Valid(t *testing.T) {
	img, err := InMemory("app", header())
	if err != nil {
		t.Fatalf("InMemory: %v", err)
	}
	if img.Name() != "app" {
		t.Errorf("Name() = %q, want %q", img.Name(), "app")
	}
	if img.Size() != 8 {
		t.Errorf("Size() = %d, want 8", img.Size())
	}
}

func TestInMemory_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrTooShort},
		{"truncated header", header()[:5], ErrTooShort},
		{"bad magic", []byte{0x00, 0x61, 0x73, 0x00, 0x01, 0x00, 0x00, 0x00}, ErrInvalidMagic},
		{"bad version", []byte{0x00, 0x61, 0x73, 0x6D, 0x02, 0x00, 0x00, 0x00}, ErrInvalidVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := InMemory("bad", tt.data)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.wasm")
	if err := os.WriteFile(path, header(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	img, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if img.Name() != "app.wasm" {
		t.Errorf("Name() = %q, want base name", img.Name())
	}
}

func TestFromFile_Missing(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "nope.wasm")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
