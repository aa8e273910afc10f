//go:build !windows

package knownfolders

// Path reports ErrUnsupported: the Known Folders API exists only on
// Windows. No native call is attempted.
func Path(Folder) (string, error) {
	return "", ErrUnsupported
}
