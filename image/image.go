package image

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"

	booterrors "github.com/wippyai/aot-boot/errors"
)

// WebAssembly binary format magic number and version.
const (
	// Magic is the WebAssembly binary magic number ("\0asm" in little-endian).
	Magic uint32 = 0x6D736100

	// Version is the supported WebAssembly binary format version.
	Version uint32 = 0x01
)

const headerSize = 8

// Validation errors returned by InMemory and FromFile.
var (
	ErrTooShort       = errors.New("image shorter than header")
	ErrInvalidMagic   = errors.New("invalid image magic number")
	ErrInvalidVersion = errors.New("invalid image version")
)

// Image is a pre-built snapshot of the runtime's initial state: the compiled
// guest program as a WebAssembly binary. An Image is immutable after
// construction.
type Image struct {
	name string
	data []byte
}

// InMemory wraps compiled bytes already resident in the process, validating
// the header. The bytes are not copied; callers must not mutate them.
func InMemory(name string, data []byte) (*Image, error) {
	if err := validateHeader(data); err != nil {
		return nil, booterrors.InvalidImage(name, err)
	}
	return &Image{name: name, data: data}, nil
}

// FromFile reads and validates an image from disk. The image name is the
// file's base name.
func FromFile(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, booterrors.InvalidImage(path, err)
	}
	return InMemory(filepath.Base(path), data)
}

// Name identifies the image for diagnostics.
func (i *Image) Name() string {
	return i.name
}

// Bytes returns the raw image contents as a read-only view.
func (i *Image) Bytes() []byte {
	return i.data
}

// Size returns the image size in bytes.
func (i *Image) Size() int {
	return len(i.data)
}

func validateHeader(data []byte) error {
	if len(data) < headerSize {
		return ErrTooShort
	}
	if binary.LittleEndian.Uint32(data) != Magic {
		return ErrInvalidMagic
	}
	if binary.LittleEndian.Uint32(data[4:]) != Version {
		return ErrInvalidVersion
	}
	return nil
}
