package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/unreal-qt/uqgen/internal/defs"
	"github.com/unreal-qt/uqgen/pkg/models"
)

// managerState represents the lifecycle state of the Manager.
type managerState int

const (
	stateUninitialized managerState = iota
	stateInitialized
)

// Manager provides thread-safe access to the uqgen configuration file.
// It must be initialized via Load() before use.
type Manager struct {
	mu     sync.RWMutex
	dir    string
	loader *Loader
	state  managerState

	// file is the document as stored on disk; Save writes it back so that
	// defaults and environment overrides are never persisted.
	file Config
	// config is file with defaults and environment overrides applied.
	config *Config
	exists bool
}

// NewManager creates a Manager for the given configuration directory.
// An empty dir resolves to ConfigDir() on Load.
func NewManager(dir string) *Manager {
	return &Manager{
		dir:    dir,
		loader: NewLoader(),
		state:  stateUninitialized,
	}
}

// Load reads config.yaml, applies compiled defaults and environment
// overrides, and validates the system section. A missing file is not an
// error. The wizard section is not validated here; see Wizard.
func (m *Manager) Load() (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.resolveDirLocked(); err != nil {
		return nil, err
	}

	fileCfg, exists, err := m.loader.Load(m.pathLocked())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := *fileCfg
	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)
	cfg.System.IDEPath = expandPath(cfg.System.IDEPath)
	cfg.System.ScratchDir = expandPath(cfg.System.ScratchDir)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	m.file = *fileCfg
	m.config = &cfg
	m.exists = exists
	m.state = stateInitialized

	return &cfg, nil
}

// Get returns a copy of the effective configuration.
// Returns nil if the manager has not been initialized via Load().
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.config == nil {
		return nil
	}
	cfg := *m.config
	return &cfg
}

// Path returns the resolved path of config.yaml. It does not require Load.
func (m *Manager) Path() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.resolveDirLocked(); err != nil {
		return "", err
	}
	return m.pathLocked(), nil
}

// Exists reports whether config.yaml was present on the last Load.
func (m *Manager) Exists() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.exists
}

// Wizard returns the stored identifiers after validating them.
// Returns ErrNotInitialized before Load, ErrNotConfigured when the wizard
// has never completed, and ValidationErrors for an invalid or partial pair.
func (m *Manager) Wizard() (models.WizardConfig, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state == stateUninitialized {
		return models.WizardConfig{}, ErrNotInitialized
	}
	wc := m.config.Wizard
	if err := ValidateWizard(wc); err != nil {
		return models.WizardConfig{}, err
	}
	return wc, nil
}

// SaveWizard validates wc and persists it, replacing any previous
// identifiers. The system section on disk is kept as is.
// Returns ErrNotInitialized if Load() has not been called.
func (m *Manager) SaveWizard(wc models.WizardConfig) error {
	if err := ValidateWizard(wc); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == stateUninitialized {
		return ErrNotInitialized
	}

	next := m.file
	next.Wizard = wc
	if err := m.saveLocked(&next); err != nil {
		return err
	}

	m.file = next
	m.config.Wizard = wc
	m.exists = true
	return nil
}

// saveLocked writes cfg to config.yaml. Caller must hold Lock.
func (m *Manager) saveLocked(cfg *Config) error {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := marshal(cfg)
	if err != nil {
		return err
	}

	if err := atomicWrite(m.pathLocked(), data); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// resolveDirLocked resolves the configuration directory. Caller must hold Lock.
func (m *Manager) resolveDirLocked() error {
	if m.dir == "" {
		dir, err := ConfigDir()
		if err != nil {
			return err
		}
		m.dir = dir
		return nil
	}
	m.dir = filepath.Clean(expandPath(m.dir))
	return nil
}

// pathLocked returns the config file path. Caller must hold at least RLock.
func (m *Manager) pathLocked() string {
	return filepath.Join(m.dir, defs.ConfigYAML)
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables have higher priority than file-based values.
func applyEnvOverrides(cfg *Config) {
	if ide := os.Getenv(defs.EnvIDE); ide != "" {
		cfg.System.IDEPath = ide
	}
	if dir := os.Getenv(defs.EnvScratchDir); dir != "" {
		cfg.System.ScratchDir = dir
	}
	if level := os.Getenv(defs.EnvLogLevel); level != "" {
		cfg.System.LogLevel = level
	}
	if noColor := os.Getenv(defs.EnvNoColor); noColor == "true" || noColor == "1" {
		cfg.System.NoColor = true
	}
}
