package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/unreal-qt/uqgen/internal/defs"
	"github.com/unreal-qt/uqgen/internal/resilience"
)

// removePolicy retries removals while Qt Creator, or a virus scanner on
// Windows, still holds a handle on a scratch file after the IDE exited.
// A file that is already gone ends the retries.
var removePolicy = resilience.Policy{
	MaxRetries: 4,
	BaseDelay:  100 * time.Millisecond,
	MaxDelay:   time.Second,
	Retryable: func(err error) bool {
		return !errors.Is(err, fs.ErrNotExist)
	},
}

// scratchProject is the throwaway project opened in Qt Creator together
// with the settings file Qt Creator writes next to it.
type scratchProject struct {
	projectFile string
	userFile    string
	retry       resilience.Policy
}

func newScratchProject(dir string) scratchProject {
	projectFile := filepath.Join(dir, defs.ScratchProject)
	return scratchProject{
		projectFile: projectFile,
		userFile:    projectFile + defs.UserSettingsSuffix,
		retry:       removePolicy,
	}
}

// create writes an empty project file. A settings file left over from an
// earlier run is removed first so it cannot be mistaken for fresh output.
func (s scratchProject) create() error {
	if err := os.MkdirAll(filepath.Dir(s.projectFile), 0o755); err != nil {
		return fmt.Errorf("create scratch directory: %w", err)
	}
	if err := removeIfExists(s.userFile); err != nil {
		return fmt.Errorf("remove stale settings file: %w", err)
	}
	if err := os.WriteFile(s.projectFile, nil, 0o644); err != nil {
		return fmt.Errorf("write scratch project: %w", err)
	}
	return nil
}

// cleanup removes both files and returns every failure.
func (s scratchProject) cleanup(ctx context.Context) []error {
	var errs []error
	for _, path := range []string{s.userFile, s.projectFile} {
		err := resilience.Retry(ctx, s.retry, func() error {
			return os.Remove(path)
		})
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errs
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
