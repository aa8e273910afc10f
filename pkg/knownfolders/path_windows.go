//go:build windows

package knownfolders

import "github.com/mesh-intelligence/knownfolders/internal/shell"

// Path returns the absolute path of f for the current user. The
// lookup requests default retrieval semantics: the folder is not
// created if missing and no impersonation token is supplied. Every
// native failure, documented or not, is reported as ErrNotFound.
//
// A successful lookup that yields an empty path is returned as
// ("", nil): the shell reported success, and the caller decides what
// an empty location means.
//
// Path is safe for concurrent use; each call owns its own native
// result buffer.
func Path(f Folder) (string, error) {
	path, ok := shell.KnownFolderPath(f.ID())
	if !ok {
		return "", ErrNotFound
	}
	return path, nil
}
