// Config loading for the knownfolder CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/knownfolders/internal/paths"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// Config keys.
	cfgKeyFolder = "folder"
	cfgKeyJSON   = "json"

	// defaultFolder is resolved when "resolve" runs without an
	// argument and config.yaml sets nothing else.
	defaultFolder = "Profile"
)

// loadConfig reads config.yaml from the resolved configuration
// directory using Viper. A missing directory or config file is not an
// error; defaults apply.
func loadConfig(flagConfigDir string) (*viper.Viper, error) {
	dir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)
	v.SetDefault(cfgKeyFolder, defaultFolder)
	v.SetDefault(cfgKeyJSON, false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}
