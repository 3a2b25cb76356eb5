package input

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWindowSize            = 1024
	DefaultInitialMarkerCapacity = 8
	DefaultMaxWindows            = 128
)

// Config holds the buffering parameters of a Stream.
type Config struct {

	// Capacity in bytes of each window.
	WindowSize int `toml:"window_size" yaml:"window_size"`

	// Initial capacity of the marker list of a window.  This is only a
	// performance hint.
	InitialMarkerCapacity int `toml:"initial_marker_capacity" yaml:"initial_marker_capacity"`

	// Maximum number of windows open at the same time.  A read that needs
	// more fails with ErrTooManyWindows.
	MaxWindows int `toml:"max_windows" yaml:"max_windows"`
}

func DefaultConfig() Config {
	return Config{
		WindowSize:            DefaultWindowSize,
		InitialMarkerCapacity: DefaultInitialMarkerCapacity,
		MaxWindows:            DefaultMaxWindows,
	}
}

// Validate checks all values are positive.
func (c Config) Validate() error {
	if err := requirePositive("window_size", c.WindowSize); err != nil {
		return err
	}
	if err := requirePositive("initial_marker_capacity", c.InitialMarkerCapacity); err != nil {
		return err
	}
	return requirePositive("max_windows", c.MaxWindows)
}

// LoadConfig reads a Config from a TOML (.toml) or YAML (.yaml, .yml) file.
// Fields missing from the file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("%w: unsupported config file extension %q", ErrInvalidConfig, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func requirePositive(name string, i int) error {
	if i <= 0 {
		return fmt.Errorf("%w: expected %s to be positive but got %d", ErrInvalidConfig, name, i)
	}
	return nil
}
