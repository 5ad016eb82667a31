package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/unreal-qt/uqgen/internal/config"
	"github.com/unreal-qt/uqgen/internal/discovery"
)

// ExitInvalidConfig is returned when the stored configuration cannot be
// used. Wizard failures use the discovery.Exit* codes.
const ExitInvalidConfig = 19

// invalidConfigError marks a configuration file that failed to load or
// validate. rediscover is set when only the stored identifiers are bad, so
// running the wizard again repairs the file.
type invalidConfigError struct {
	err        error
	rediscover bool
}

// invalidConfig reports a configuration file that could not be loaded.
func invalidConfig(err error) error {
	return &invalidConfigError{err: err}
}

// invalidIdentifiers reports a loaded file whose wizard section is partial
// or malformed.
func invalidIdentifiers(err error) error {
	return &invalidConfigError{err: err, rediscover: true}
}

func (e *invalidConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %v", e.err)
}

func (e *invalidConfigError) Unwrap() error {
	return e.err
}

// ExitCode maps an error returned by Execute to the process exit code.
func ExitCode(err error) int {
	var cfgErr *invalidConfigError
	if errors.As(err, &cfgErr) {
		return ExitInvalidConfig
	}
	return discovery.ExitCode(err)
}

// hintFor returns a suggestion printed below the error message.
func hintFor(err error) string {
	var cfgErr *invalidConfigError
	if errors.As(err, &cfgErr) {
		path := "the configuration file"
		if deps != nil && deps.Config != nil {
			if p, pathErr := deps.Config.Path(); pathErr == nil {
				path = p
			}
		}
		if cfgErr.rediscover {
			target := path
			var verrs *config.ValidationErrors
			if errors.As(err, &verrs) {
				target = strings.Join(verrs.Fields(), ", ") + " in " + path
			}
			return "run `uqgen discover` to regenerate the identifiers, or fix " + target
		}
		return "fix or delete " + path
	}
	var stepErr *discovery.StepError
	if errors.As(err, &stepErr) {
		return stepErr.Hint()
	}
	return ""
}
