package image

import (
	"os"

	"gopkg.in/yaml.v3"

	aotboot "github.com/wippyai/aot-boot"
	booterrors "github.com/wippyai/aot-boot/errors"
)

// Manifest is an optional YAML sidecar describing an image. The build
// pipeline normally bakes the entry symbol and the arguments binding into
// its output by convention; a manifest lets a deployment override them
// without rebuilding.
//
//	name: app
//	entry: __aot_main
//	args:
//	  namespace: core
//	  symbol: ARGS
type Manifest struct {
	Name  string `yaml:"name"`
	Entry string `yaml:"entry"`
	Args  struct {
		Namespace string `yaml:"namespace"`
		Symbol    string `yaml:"symbol"`
	} `yaml:"args"`
}

// ParseManifest decodes a manifest and fills in conventional defaults for
// any omitted field.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, booterrors.Wrap(booterrors.PhaseLoad, booterrors.KindInvalidInput, err, "parse manifest")
	}
	m.applyDefaults()
	return &m, nil
}

// LoadManifest reads and decodes a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, booterrors.Wrap(booterrors.PhaseLoad, booterrors.KindInvalidInput, err, "read manifest")
	}
	return ParseManifest(data)
}

func (m *Manifest) applyDefaults() {
	if m.Entry == "" {
		m.Entry = aotboot.DefaultEntrySymbol
	}
	if m.Args.Namespace == "" {
		m.Args.Namespace = aotboot.CoreNamespace
	}
	if m.Args.Symbol == "" {
		m.Args.Symbol = aotboot.ArgsSymbol
	}
}
