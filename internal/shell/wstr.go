package shell

import (
	"math"
	"unicode/utf16"
	"unsafe"
)

// wcharSize is the size in bytes of one UTF-16 code unit.
const wcharSize = int(unsafe.Sizeof(uint16(0)))

// wideLen counts the UTF-16 code units before the NUL terminator. A
// nil pointer has length zero.
func wideLen(p *uint16) int {
	if p == nil {
		return 0
	}
	n := 0
	for *p != 0 {
		n++
		p = (*uint16)(unsafe.Add(unsafe.Pointer(p), wcharSize))
	}
	return n
}

// byteSpan returns the number of bytes occupied by n UTF-16 code
// units. The length comes from the platform and is validated rather
// than trusted: negative values and spans that would overflow the
// maximum allocation size report ok=false.
func byteSpan(n int) (int, bool) {
	if n < 0 || n > math.MaxInt/wcharSize {
		return 0, false
	}
	return n * wcharSize, true
}

// decodeWide decodes exactly n UTF-16 code units starting at p. The
// NUL terminator is not part of the count. Unpaired surrogates decode
// to U+FFFD.
func decodeWide(p *uint16, n int) string {
	if p == nil || n == 0 {
		return ""
	}
	return string(utf16.Decode(unsafe.Slice(p, n)))
}
