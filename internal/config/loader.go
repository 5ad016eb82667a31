package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// maxConfigSize is the maximum accepted size of config.yaml.
const maxConfigSize = 1 << 20

// Loader reads the configuration file from disk without applying defaults.
type Loader struct{}

// NewLoader creates a new Loader instance.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the YAML file at path. It returns (cfg, true, nil)
// when the file was parsed, (empty, false, nil) when it does not exist, and
// an error wrapping ErrInvalidYAML when it cannot be parsed.
func (l *Loader) Load(path string) (*Config, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, false, nil
		}
		return nil, false, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > maxConfigSize {
		return nil, false, fmt.Errorf("%w: %s exceeds %d bytes", ErrInvalidConfig, path, maxConfigSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", path, err)
	}

	cfg := &Config{}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, true, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, false, fmt.Errorf("parse %s: %w: %v", path, ErrInvalidYAML, err)
	}
	return cfg, true, nil
}

// marshal renders cfg as the on-disk YAML document.
func marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return buf.Bytes(), nil
}
