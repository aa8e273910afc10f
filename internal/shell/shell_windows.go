//go:build windows

package shell

import (
	"encoding/binary"
	"syscall"
	"unsafe"

	"github.com/google/uuid"
	"golang.org/x/sys/windows"
)

var (
	modshell32               = windows.NewLazySystemDLL("shell32.dll")
	procSHGetKnownFolderPath = modshell32.NewProc("SHGetKnownFolderPath")
)

// nativeLookup calls SHGetKnownFolderPath with KF_FLAG_DEFAULT and a
// NULL access token, scoping the lookup to the current user. On
// success the shell writes a CoTaskMem-allocated UTF-16 string into
// out; the caller must free it in every case.
func nativeLookup(id uuid.UUID, out **uint16) error {
	rfid := knownFolderID(id)
	hr, _, _ := procSHGetKnownFolderPath.Call(
		uintptr(unsafe.Pointer(&rfid)),
		uintptr(windows.KF_FLAG_DEFAULT),
		0, // NULL token: the calling user
		uintptr(unsafe.Pointer(out)),
	)
	if hr != 0 {
		// S_OK is the only success status. E_FAIL, E_INVALIDARG, and
		// anything undocumented surface here as an Errno.
		return syscall.Errno(hr)
	}
	return nil
}

func nativeFree(p unsafe.Pointer) {
	windows.CoTaskMemFree(p)
}

// knownFolderID lays the GUID's RFC 4122 big-endian bytes out in the
// mixed-endian KNOWNFOLDERID struct form.
func knownFolderID(id uuid.UUID) windows.KNOWNFOLDERID {
	return windows.KNOWNFOLDERID{
		Data1: binary.BigEndian.Uint32(id[0:4]),
		Data2: binary.BigEndian.Uint16(id[4:6]),
		Data3: binary.BigEndian.Uint16(id[6:8]),
		Data4: [8]byte(id[8:16]),
	}
}
