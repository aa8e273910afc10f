package shell

import (
	"math"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWideLen(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want int
	}{
		{name: "empty", s: "", want: 0},
		{name: "ascii", s: `C:\Windows`, want: 10},
		{name: "bmp", s: "Téléchargements", want: 15},
		{name: "surrogate pair counts two units", s: "a\U0001F600", want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := utf16.Encode([]rune(tt.s + "\x00"))
			assert.Equal(t, tt.want, wideLen(&buf[0]))
		})
	}
}

func TestWideLen_Nil(t *testing.T) {
	assert.Equal(t, 0, wideLen(nil))
}

func TestByteSpan(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		want   int
		wantOK bool
	}{
		{name: "zero", n: 0, want: 0, wantOK: true},
		{name: "typical", n: 260, want: 520, wantOK: true},
		{name: "largest valid", n: math.MaxInt / wcharSize, want: math.MaxInt / wcharSize * wcharSize, wantOK: true},
		{name: "negative", n: -1, wantOK: false},
		{name: "overflow", n: math.MaxInt/wcharSize + 1, wantOK: false},
		{name: "max int", n: math.MaxInt, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := byteSpan(tt.n)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDecodeWide(t *testing.T) {
	t.Run("round trips valid text", func(t *testing.T) {
		s := `C:\Users\dev\AppData\Roaming`
		buf := utf16.Encode([]rune(s + "\x00"))
		n := wideLen(&buf[0])
		assert.Equal(t, s, decodeWide(&buf[0], n))
	})

	t.Run("surrogate pair", func(t *testing.T) {
		s := "pics\U0001F600"
		buf := utf16.Encode([]rune(s + "\x00"))
		assert.Equal(t, s, decodeWide(&buf[0], wideLen(&buf[0])))
	})

	t.Run("unpaired surrogate becomes replacement rune", func(t *testing.T) {
		buf := []uint16{'a', 0xD800, 'b', 0}
		got := decodeWide(&buf[0], 3)
		assert.Equal(t, "a\uFFFDb", got)
		assert.True(t, strings.ContainsRune(got, '\uFFFD'))
	})

	t.Run("zero length", func(t *testing.T) {
		buf := []uint16{'a', 0}
		assert.Empty(t, decodeWide(&buf[0], 0))
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.Empty(t, decodeWide(nil, 0))
	})
}
