package shell

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathBuffer_ReleaseOnce(t *testing.T) {
	var frees []unsafe.Pointer
	b := newPathBuffer(func(p unsafe.Pointer) {
		frees = append(frees, p)
	})

	val := uint16('x')
	*b.out() = &val

	b.release()
	b.release()
	b.release()

	require.Len(t, frees, 1)
	assert.Equal(t, unsafe.Pointer(&val), frees[0])
}

func TestPathBuffer_ReleaseNil(t *testing.T) {
	// A buffer that was never written still frees once, with nil;
	// the platform free is a documented no-op on NULL.
	var frees []unsafe.Pointer
	b := newPathBuffer(func(p unsafe.Pointer) {
		frees = append(frees, p)
	})

	b.release()

	require.Len(t, frees, 1)
	assert.Nil(t, frees[0])
}

func TestPathBuffer_OutSlot(t *testing.T) {
	b := newPathBuffer(func(unsafe.Pointer) {})

	val := uint16('x')
	*b.out() = &val

	assert.Equal(t, &val, b.ptr)
}
