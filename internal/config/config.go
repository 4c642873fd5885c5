// Package config handles loading and managing msgsift configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config represents the msgsift configuration.
type Config struct {
	Export ExportConfig `toml:"export"`
	UI     UIConfig     `toml:"ui"`

	// Computed at load time, not from the config file.
	HomeDir string `toml:"-"`
}

// ExportConfig controls the exported artifact.
type ExportConfig struct {
	Artifact    string `toml:"artifact"`    // Artifact file name (default: exported_messages.txt)
	Timestamped bool   `toml:"timestamped"` // Use a timestamped name instead of Artifact
}

// UIConfig controls the interactive session.
type UIConfig struct {
	ShowSource bool `toml:"show_source"` // Show the source-file column in the list
}

// DefaultHome returns the default msgsift home directory.
// Respects the MSGSIFT_HOME environment variable.
func DefaultHome() string {
	if h := os.Getenv("MSGSIFT_HOME"); h != "" {
		return h
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".msgsift"
	}
	return filepath.Join(home, ".msgsift")
}

// Load reads the configuration from the specified file.
// If path is empty, uses the default location (~/.msgsift/config.toml).
// The file is optional; defaults are used when it is absent.
func Load(path string) (*Config, error) {
	homeDir := DefaultHome()

	if path == "" {
		path = filepath.Join(homeDir, "config.toml")
	}

	cfg := &Config{
		HomeDir: homeDir,
		Export: ExportConfig{
			Artifact: "exported_messages.txt",
		},
		UI: UIConfig{
			ShowSource: true,
		},
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Export.Artifact == "" {
		cfg.Export.Artifact = "exported_messages.txt"
	}

	return cfg, nil
}

// ArtifactPath returns the export destination inside dir, applying the
// timestamped naming scheme when configured.
func (c *Config) ArtifactPath(dir string, now time.Time) string {
	name := c.Export.Artifact
	if c.Export.Timestamped {
		name = fmt.Sprintf("messages-%s.txt", now.Format("20060102-150405"))
	}
	return filepath.Join(dir, name)
}
