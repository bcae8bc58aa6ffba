// Package config loads the demo editor's TOML configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the editor settings. Zero values fall back to defaults.
type Config struct {
	History HistoryConfig `toml:"history"`
	Editor  EditorConfig  `toml:"editor"`
}

// HistoryConfig tunes the undo engine.
type HistoryConfig struct {
	// Policy selects the snapshot trigger: "never", "always", "every",
	// "distance", or "elapsed".
	Policy string `toml:"policy"`

	// Interval is the argument for the "every" and "distance" policies.
	Interval int `toml:"interval"`

	// Elapsed is the accumulated-replay-cost threshold for the
	// "elapsed" policy.
	Elapsed time.Duration `toml:"elapsed"`

	// SnapshotCapacity bounds retained snapshots; 0 means unbounded.
	SnapshotCapacity int `toml:"snapshot_capacity"`

	// LogCapacity bounds retained commands; 0 means unbounded.
	LogCapacity int `toml:"log_capacity"`
}

// EditorConfig holds the non-history settings.
type EditorConfig struct {
	// LogFile receives the editor's diagnostic log. Empty disables
	// logging.
	LogFile string `toml:"log_file"`

	// WatchFile enables the external-modification indicator.
	WatchFile bool `toml:"watch_file"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		History: HistoryConfig{
			Policy:   "distance",
			Interval: 16,
		},
		Editor: EditorConfig{
			WatchFile: true,
		},
	}
}

// ParseError reports a malformed configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads the configuration at path. A missing file is not an error;
// the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return cfg, nil
}
