package shell

import "unsafe"

// pathBuffer owns the wide-string buffer the shell writes into the
// lookup's out parameter. The shell contract requires that buffer to
// be freed whether or not the lookup succeeded, so callers defer
// release immediately after construction.
type pathBuffer struct {
	ptr      *uint16
	free     func(unsafe.Pointer)
	released bool
}

func newPathBuffer(free func(unsafe.Pointer)) *pathBuffer {
	return &pathBuffer{free: free}
}

// out returns the slot the native lookup writes the allocation into.
func (b *pathBuffer) out() **uint16 {
	return &b.ptr
}

// release returns the buffer to the platform allocator. It frees at
// most once; later calls are no-ops. The pointer is handed to free
// even when the lookup never wrote one: CoTaskMemFree documents NULL
// as a no-op.
func (b *pathBuffer) release() {
	if b.released {
		return
	}
	b.released = true
	b.free(unsafe.Pointer(b.ptr))
}
