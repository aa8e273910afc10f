package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/knownfolders/internal/paths"
	"github.com/mesh-intelligence/knownfolders/pkg/knownfolders"
)

func TestResolve_UnknownFolder(t *testing.T) {
	_, _, err := runCommand(t, "resolve", "NoSuchFolder")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoSuchFolder")
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestResolve_Profile(t *testing.T) {
	if runtime.GOOS != "windows" {
		t.Skip("windows-only test")
	}

	out, _, err := runCommand(t, "resolve", "Profile")
	require.NoError(t, err)

	path := strings.TrimSpace(out)
	require.NotEmpty(t, path)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestResolve_JSON(t *testing.T) {
	if runtime.GOOS != "windows" {
		t.Skip("windows-only test")
	}

	out, _, err := runCommand(t, "resolve", "Downloads", "--json")
	require.NoError(t, err)

	var got resolveResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Downloads", got.Folder)
	assert.Equal(t, knownfolders.Downloads.ID().String(), got.ID)
	assert.NotEmpty(t, got.Path)
}

func TestResolve_UnsupportedPlatform(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("non-windows test")
	}

	_, _, err := runCommand(t, "resolve", "Profile")
	require.Error(t, err)
	assert.ErrorIs(t, err, knownfolders.ErrUnsupported)
	assert.Equal(t, exitSysError, exitCode(err))
}

func TestResolve_ConfigDefaultFolder(t *testing.T) {
	dir := t.TempDir()
	cfg := "folder: Downloads\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfg), 0o644))

	// Bare "resolve" picks the folder up from config.yaml. On
	// Windows that yields the Downloads path; elsewhere the attempt
	// fails as unsupported but the error names the configured folder,
	// proving the config was honored.
	t.Setenv(paths.EnvConfigDir, dir)
	root := newRootCmd()
	root.SetArgs([]string{"resolve"})
	var out strings.Builder
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.Execute()

	if runtime.GOOS == "windows" {
		require.NoError(t, err)
		assert.NotEmpty(t, strings.TrimSpace(out.String()))
	} else {
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Downloads")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, t.TempDir())

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultFolder, cfg.GetString(cfgKeyFolder))
	assert.False(t, cfg.GetBool(cfgKeyJSON))
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	cfg := "folder: Videos\njson: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfg), 0o644))

	v, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "Videos", v.GetString(cfgKeyFolder))
	assert.True(t, v.GetBool(cfgKeyJSON))
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("folder: [unclosed"), 0o644))

	_, err := loadConfig(dir)
	assert.Error(t, err)
}
