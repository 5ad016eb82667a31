package discovery

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxSettingsSize bounds how much of the user settings file is read.
// Real files are a few tens of kilobytes.
const maxSettingsSize = 16 << 20

// readSettings returns the content of a Qt Creator user settings file as
// UTF-8 text. A UTF-8 BOM is stripped and UTF-16 files with a BOM are
// transcoded; anything else is read as UTF-8.
func readSettings(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(io.LimitReader(transform.NewReader(f, decoder), maxSettingsSize+1))
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	if len(data) > maxSettingsSize {
		return "", fmt.Errorf("file exceeds %d bytes", maxSettingsSize)
	}
	return string(data), nil
}
