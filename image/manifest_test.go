package image

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseManifest_Defaults(t *testing.T) {
	m, err := ParseManifest([]byte("name: app\n"))
	if err != nil {
		t.Fatalf("ParseManifest: %v", err)
	}
	if m.Name != "app" {
		t.Errorf("Name = %q, want %q", m.Name, "app")
	}
	if m.Entry != "__aot_main" {
		t.Errorf("Entry = %q, want convention default", m.Entry)
	}
	if m.Args.Namespace != "core" || m.Args.Symbol != "ARGS" {
		t.Errorf("Args = %s/%s, want core/ARGS", m.Args.Namespace, m.Args.Symbol)
	}
}

func TestParseManifest_Overrides(t *testing.T) {
	src := `
name: custom
entry: start
args:
  namespace: sys
  symbol: ARGV
`
	m, err := ParseManifest([]byte(src))
	if err != nil {
		t.Fatalf("ParseManifest: %v", err)
	}
	if m.Entry != "start" {
		t.Errorf("Entry = %q, want %q", m.Entry, "start")
	}
	if m.Args.Namespace != "sys" || m.Args.Symbol != "ARGV" {
		t.Errorf("Args = %s/%s, want sys/ARGV", m.Args.Namespace, m.Args.Symbol)
	}
}

func TestParseManifest_Invalid(t *testing.T) {
	if _, err := ParseManifest([]byte(":\n\t- not yaml")); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	if err := os.WriteFile(path, []byte("entry: run\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.Entry != "run" {
		t.Errorf("Entry = %q, want %q", m.Entry, "run")
	}
}
