// Package knownfolders resolves the absolute paths of Windows known
// folders through the Known Folders API.
//
// A Folder names a directory with a stable semantic role (the user
// profile, Downloads, roaming application data) independent of where
// it currently lives on disk. Path asks the operating system for that
// location. On platforms without the Known Folders API, Path reports
// ErrUnsupported without attempting a lookup.
package knownfolders

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Version is the knownfolders release version.
const Version = "0.1.0"

var (
	// ErrNotFound reports that the folder could not be resolved: the
	// system has no path registered for it, or the native lookup
	// failed. Every native failure status folds into this one error.
	ErrNotFound = errors.New("known folder not found")

	// ErrUnsupported reports that the Known Folders API does not exist
	// on this platform.
	ErrUnsupported = errors.New("known folders are not supported on this platform")
)

// Folder identifies a Windows known folder symbolically. Use the
// declared constants; the zero value is AccountPictures.
type Folder int

// ID returns the KNOWNFOLDERID GUID registered for f. The mapping is
// fixed at build time: every declared constant has exactly one GUID.
// Out-of-range values return uuid.Nil, which the resolver folds into
// ErrNotFound.
func (f Folder) ID() uuid.UUID {
	if f < 0 || int(f) >= len(folderIDs) {
		return uuid.Nil
	}
	return folderIDs[f]
}

// String returns the symbolic folder name, e.g. "RoamingAppData".
func (f Folder) String() string {
	if f < 0 || int(f) >= len(folderNames) {
		return fmt.Sprintf("Folder(%d)", int(f))
	}
	return folderNames[f]
}

// Parse returns the Folder named by s. Matching is case-insensitive.
func Parse(s string) (Folder, error) {
	if f, ok := foldersByName[strings.ToLower(s)]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("unknown folder %q", s)
}

// Folders returns every declared folder in declaration order.
func Folders() []Folder {
	out := make([]Folder, len(folderIDs))
	for i := range out {
		out[i] = Folder(i)
	}
	return out
}

var foldersByName = func() map[string]Folder {
	m := make(map[string]Folder, len(folderNames))
	for i, name := range folderNames {
		m[strings.ToLower(name)] = Folder(i)
	}
	return m
}()
