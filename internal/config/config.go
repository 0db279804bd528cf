// Package config loads costpath CLI settings from an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	appName        = "costpath"
	configFileName = "config.toml"

	defaultLogLevel = "info"
)

// ErrUnknownKey indicates the config file contains keys this version does not understand.
var ErrUnknownKey = errors.New("config: unknown key")

// Config is the decoded configuration file. Zero values mean "not set".
type Config struct {
	// Input is the edge file used when --file is not passed.
	Input string `toml:"input"`

	// ZeroWeightEdges keeps explicit "0" costs as real edges.
	ZeroWeightEdges bool `toml:"zero_weight_edges"`

	// EarlyExit lets the solver stop once a pass changes nothing.
	EarlyExit bool `toml:"early_exit"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{LogLevel: defaultLogLevel}
}

// Load decodes the file at path over Default(). An empty path falls back to
// DefaultPath(); a missing default file is not an error, a missing explicit one is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Default(), fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	return cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/costpath/config.toml, falling back to
// ~/.config/costpath/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, configFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, configFileName), nil
}
