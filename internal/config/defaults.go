package config

import (
	"os"
	"path/filepath"

	"github.com/unreal-qt/uqgen/internal/defs"
)

// DefaultLogLevel keeps the console quiet during the interactive wizard.
const DefaultLogLevel = "warn"

// DefaultScratchDir returns the directory used for the scratch project when
// none is configured.
func DefaultScratchDir() string {
	return filepath.Join(os.TempDir(), defs.ScratchSubdir)
}

// applyDefaults fills empty system fields with compiled defaults.
func applyDefaults(cfg *Config) {
	if cfg.System.ScratchDir == "" {
		cfg.System.ScratchDir = DefaultScratchDir()
	}
	if cfg.System.LogLevel == "" {
		cfg.System.LogLevel = DefaultLogLevel
	}
}
