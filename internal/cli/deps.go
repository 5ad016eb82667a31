// Package cli provides the Cobra command tree and dependency injection
// wiring for the uqgen CLI. This file defines the Dependencies struct
// (Composition Root) that wires the configuration store, the terminal UI
// and the discovery wizard together.
package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/unreal-qt/uqgen/internal/config"
	"github.com/unreal-qt/uqgen/internal/discovery"
	"github.com/unreal-qt/uqgen/internal/log"
	"github.com/unreal-qt/uqgen/internal/ui"
)

// Dependencies holds the services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Config   *config.Manager
	Headless *ui.HeadlessManager
	Theme    *ui.Theme
	Progress *ui.Progress
	Logger   zerolog.Logger

	// LoadErr is the error of the last Config.Load. Commands that need the
	// configuration report it; "config path" does not.
	LoadErr error
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// LauncherFactory creates the launcher that opens Qt Creator.
// Tests replace this with a factory that returns a fake.
var LauncherFactory = func(idePath string) discovery.Launcher {
	return discovery.NewExecLauncher(idePath)
}

// InitDependencies creates the dependencies that do not depend on flags.
// The configuration is loaded later by setupDependencies once flags have
// been parsed.
func InitDependencies() {
	theme := ui.NewTheme(false)
	headless := ui.NewHeadlessManager()
	deps = &Dependencies{
		Config:   config.NewManager(""),
		Headless: headless,
		Theme:    theme,
		Progress: ui.NewProgress(theme, headless),
		Logger:   log.WithComponent("cli"),
	}
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// setupDependencies applies the persistent flags, loads the configuration
// and configures logging and colors. Flags override the file and
// environment. Log lines are written to logOut.
func setupDependencies(logOut io.Writer) {
	if deps == nil {
		InitDependencies()
	}
	if rootFlags.configDir != "" {
		deps.Config = config.NewManager(rootFlags.configDir)
	}

	cfg, err := deps.Config.Load()
	deps.LoadErr = err

	level := rootFlags.logLevel
	noColor := rootFlags.noColor
	if cfg != nil {
		if level == "" {
			level = cfg.System.LogLevel
		}
		noColor = noColor || cfg.System.NoColor
	}

	log.Configure(log.Config{
		Level:   level,
		Output:  logOut,
		NoColor: noColor,
		JSON:    rootFlags.logJSON,
	})
	deps.Logger = log.WithComponent("cli")

	deps.Theme.NoColor = noColor
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	if err != nil {
		deps.Logger.Debug().Err(err).Msg("configuration could not be loaded")
	}
}
