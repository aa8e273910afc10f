// Package paths resolves the directory holding the CLI's optional
// configuration file.
package paths

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/mesh-intelligence/knownfolders/pkg/knownfolders"
)

// AppDirName is the per-application directory appended to the
// platform configuration root.
const AppDirName = "knownfolder"

// EnvConfigDir overrides the configuration directory.
const EnvConfigDir = "KNOWNFOLDER_CONFIG_DIR"

// platformDir holds platform-detection functions that can be
// overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
	knownFolder   func(knownfolders.Folder) (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
	knownFolder:   knownfolders.Path,
}

// DefaultConfigDir returns the platform-specific default
// configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/knownfolder (fallback ~/.config/knownfolder)
// Windows: RoamingAppData via the Known Folders API (fallback %APPDATA%)
// other:   os.UserConfigDir()/knownfolder
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppDirName), nil
	case "windows":
		if dir, err := platformDir.knownFolder(knownfolders.RoamingAppData); err == nil && dir != "" {
			return filepath.Join(dir, AppDirName), nil
		}
		// The shell lookup can fail on hosts with a relocated or
		// broken profile; %APPDATA% is the conventional fallback.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppDirName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > KNOWNFOLDER_CONFIG_DIR env >
// DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}
