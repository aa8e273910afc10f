//go:build !windows

package shell

import (
	"errors"
	"unsafe"

	"github.com/google/uuid"
)

// The Known Folders API exists only on Windows. These bindings keep
// the package compiling elsewhere; the public resolver in
// pkg/knownfolders stubs Path out before any of them could run.
func nativeLookup(uuid.UUID, **uint16) error {
	return errors.ErrUnsupported
}

func nativeFree(unsafe.Pointer) {}
