package knownfolders

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath_Profile(t *testing.T) {
	if runtime.GOOS != "windows" {
		t.Skip("windows-only test")
	}

	got, err := Path(Profile)
	require.NoError(t, err)
	require.NotEmpty(t, got)

	info, err := os.Stat(got)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestPath_Deterministic(t *testing.T) {
	if runtime.GOOS != "windows" {
		t.Skip("windows-only test")
	}

	first, err := Path(Downloads)
	require.NoError(t, err)
	second, err := Path(Downloads)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPath_OutOfRangeFolder(t *testing.T) {
	if runtime.GOOS != "windows" {
		t.Skip("windows-only test")
	}

	// A folder with no GUID resolves through a nil identifier, which
	// the shell rejects; the failure folds to ErrNotFound.
	_, err := Path(Folder(-1))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPath_UnsupportedPlatform(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("non-windows test")
	}

	_, err := Path(Profile)
	assert.ErrorIs(t, err, ErrUnsupported)
}
