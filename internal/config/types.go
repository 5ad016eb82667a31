package config

import "github.com/unreal-qt/uqgen/pkg/models"

// Config is the root configuration aggregate stored in config.yaml.
type Config struct {
	Wizard models.WizardConfig `yaml:"wizard"`
	System SystemConfig        `yaml:"system"`
}

// SystemConfig holds the tool settings of uqgen.
type SystemConfig struct {
	// IDEPath is the Qt Creator executable. Empty means the OS file
	// association for .pro files is used.
	IDEPath string `yaml:"ide_path,omitempty"`
	// ScratchDir is where the wizard creates its throwaway project.
	ScratchDir string `yaml:"scratch_dir,omitempty"`
	LogLevel   string `yaml:"log_level,omitempty"`
	NoColor    bool   `yaml:"no_color,omitempty"`
}

// validLogLevels lists the accepted log_level values.
var validLogLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}

// ValidLogLevels returns all accepted log_level values.
func ValidLogLevels() []string {
	result := make([]string, len(validLogLevels))
	copy(result, validLogLevels)
	return result
}
