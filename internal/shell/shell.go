// Package shell wraps the SHGetKnownFolderPath invocation protocol:
// the native lookup, ownership of the result buffer the shell
// allocates, and decoding of its contents.
package shell

import (
	"unsafe"

	"github.com/google/uuid"
)

// native holds the platform entry points the protocol depends on. It
// is bound to the real shell on Windows builds; tests swap in doubles
// to drive failure paths and count frees.
var native = struct {
	lookup func(id uuid.UUID, out **uint16) error
	free   func(unsafe.Pointer)
	length func(*uint16) int
}{
	lookup: nativeLookup,
	free:   nativeFree,
	length: wideLen,
}

// KnownFolderPath resolves the folder identified by the given
// KNOWNFOLDERID GUID to its current path, requesting default
// retrieval semantics for the current user. Every failure reports
// ok=false: a failed lookup, an implausible reported length, or a
// byte span too large to read. A successful lookup with an empty path
// is a valid present result.
func KnownFolderPath(id uuid.UUID) (string, bool) {
	// The shell allocates the result buffer and requires the caller
	// to free it whether or not the call succeeded, so the guard is
	// constructed before the lookup and released on every return.
	buf := newPathBuffer(native.free)
	defer buf.release()

	if err := native.lookup(id, buf.out()); err != nil {
		// E_FAIL, E_INVALIDARG, and any undocumented status all
		// collapse to absence.
		return "", false
	}

	// On success the slot holds a NUL-terminated UTF-16 string. The
	// reported length is input from the platform: validate it before
	// reading anything.
	n := native.length(buf.ptr)
	if _, ok := byteSpan(n); !ok {
		return "", false
	}
	return decodeWide(buf.ptr, n), true
}
