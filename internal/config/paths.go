package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/unreal-qt/uqgen/internal/defs"
)

// ConfigDir returns the directory where uqgen stores its configuration.
// UQGEN_CONFIG_DIR takes precedence; otherwise %APPDATA%\UnrealQtGenerator
// on Windows and $XDG_CONFIG_HOME/uqgen (or ~/.config/uqgen) elsewhere.
func ConfigDir() (string, error) {
	if envDir := os.Getenv(defs.EnvConfigDir); envDir != "" {
		return filepath.Clean(expandPath(envDir)), nil
	}

	if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", fmt.Errorf("%w: APPDATA is not set", ErrNoConfigDir)
		}
		return filepath.Join(appData, defs.AppDirWindows), nil
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" && filepath.IsAbs(xdg) {
		return filepath.Join(xdg, defs.AppDirUnix), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoConfigDir, err)
	}
	return filepath.Join(homeDir, ".config", defs.AppDirUnix), nil
}

// expandPath expands a leading "~" and environment variables in p.
func expandPath(p string) string {
	if p == "" {
		return p
	}
	p = os.ExpandEnv(p)
	if p == "~" || strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	return p
}
