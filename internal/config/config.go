// Package config gathers the askier-atlas settings from .env files
// and the process environment.
package config

import "os"
import "fmt"
import "errors"
import "strconv"
import "path/filepath"

import "github.com/joho/godotenv"
import "github.com/sirupsen/logrus"

import "github.com/askier/atlas/calibrate"

// Environment keys.
const (
	EnvAtlas    = "ASKIER_ATLAS"
	EnvDataDir  = "ASKIER_DATA_DIR"
	EnvScale    = "ASKIER_SCALE"
	EnvLogLevel = "ASKIER_LOG_LEVEL"
)

// Window upscale factor used when none is configured.
const DefaultScale = 24

// Font key of the atlas askier generates by default.
const DefaultFontKey = "Monospace_12"

var ErrBadScale = errors.New("scale must be a positive integer")

type Config struct {
	AtlasPath string
	DataDir   string
	Scale     int
	LogLevel  logrus.Level
}

// Loads the .env files in dir (see [LoadEnv]()) and then reads the
// configuration from the environment.
func Load(dir string) (*Config, error) {
	_, err := LoadEnv(dir)
	if err != nil { return nil, err }
	return FromEnv()
}

// Loads .env.local and .env from the given directory into the process
// environment. Values from .env.local take precedence over .env, and
// variables already present in the environment are never overridden.
// Missing files are skipped. Returns the paths of the loaded files.
func LoadEnv(dir string) ([]string, error) {
	var loaded []string
	for _, name := range []string{ ".env.local", ".env" } {
		path := filepath.Join(dir, name)
		_, err := os.Stat(path)
		if err != nil { continue }
		err = godotenv.Load(path)
		if err != nil { return loaded, fmt.Errorf("loading %s: %w", path, err) }
		logrus.WithField("path", path).Debug("env file loaded")
		loaded = append(loaded, path)
	}
	return loaded, nil
}

// Reads the configuration from the process environment, filling
// unset values with defaults.
func FromEnv() (*Config, error) {
	config := &Config{
		DataDir: os.Getenv(EnvDataDir),
		AtlasPath: os.Getenv(EnvAtlas),
		Scale: DefaultScale,
		LogLevel: logrus.InfoLevel,
	}
	if config.DataDir == "" { config.DataDir = DefaultDataDir() }
	if config.AtlasPath == "" {
		config.AtlasPath = calibrate.CachePath(config.DataDir, DefaultFontKey)
	}

	if value := os.Getenv(EnvScale); value != "" {
		scale, err := strconv.Atoi(value)
		if err != nil || scale <= 0 {
			return nil, fmt.Errorf("%s=%q: %w", EnvScale, value, ErrBadScale)
		}
		config.Scale = scale
	}

	if value := os.Getenv(EnvLogLevel); value != "" {
		level, err := logrus.ParseLevel(value)
		if err != nil { return nil, fmt.Errorf("%s: %w", EnvLogLevel, err) }
		config.LogLevel = level
	}

	return config, nil
}

// Returns the askier data directory: $XDG_DATA_HOME/askier, falling
// back to ~/.local/share/askier.
func DefaultDataDir() string {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil { home = "." }
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, "askier")
}
