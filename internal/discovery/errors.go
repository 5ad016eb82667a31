package discovery

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, one per wizard step that can fail.
var (
	// ErrCancelled is returned when the user declines to start or interrupts the wizard.
	ErrCancelled = errors.New("discovery: cancelled by user")

	// ErrScratchCreate indicates the scratch project could not be created.
	ErrScratchCreate = errors.New("discovery: cannot create scratch project")

	// ErrLaunch indicates the IDE process could not be started.
	ErrLaunch = errors.New("discovery: cannot launch qt creator")

	// ErrMissingExpectedFile indicates the IDE exited without writing the
	// user settings file next to the scratch project.
	ErrMissingExpectedFile = errors.New("discovery: qt creator did not write the user settings file")

	// ErrFileRead indicates the user settings file exists but cannot be read.
	ErrFileRead = errors.New("discovery: cannot read user settings file")

	// ErrPatternNotFound indicates an identifier tag is absent from the settings text.
	ErrPatternNotFound = errors.New("discovery: identifier not found")

	// ErrInvalidIdentifierShape indicates a captured identifier is not a
	// brace-enclosed 8-4-4-4-12 GUID.
	ErrInvalidIdentifierShape = errors.New("discovery: identifier has unexpected shape")

	// ErrConfigWrite indicates the discovered identifiers could not be persisted.
	ErrConfigWrite = errors.New("discovery: cannot write configuration")

	// ErrIDENotFound indicates no Qt Creator executable could be resolved.
	ErrIDENotFound = errors.New("discovery: qt creator executable not found")
)

// Field names an identifier extracted from the user settings file.
type Field string

const (
	// FieldEnvironmentID is the Qt Creator environment id.
	FieldEnvironmentID Field = "environmentId"
	// FieldToolchainConfigurationID is the Unreal Engine kit id.
	FieldToolchainConfigurationID Field = "toolchainConfigurationId"
)

// Process exit codes, one per failing step so that operators can tell
// which step failed without reading the message.
const (
	ExitOK                      = 0
	ExitFailure                 = 1
	ExitCancelled               = 2
	ExitScratchCreate           = 10
	ExitLaunch                  = 11
	ExitMissingExpectedFile     = 12
	ExitFileRead                = 13
	ExitEnvironmentIDNotFound   = 14
	ExitConfigurationIDNotFound = 15
	ExitEnvironmentIDInvalid    = 16
	ExitConfigurationIDInvalid  = 17
	ExitConfigWrite             = 18
)

// StepError describes a failed wizard step.
type StepError struct {
	Kind  error  // one of the sentinel errors above
	Field Field  // set for ErrPatternNotFound and ErrInvalidIdentifierShape
	Path  string // file involved, if any
	Value string // offending captured token for ErrInvalidIdentifierShape
	Err   error  // underlying cause, may be nil
}

// Error implements the error interface.
func (e *StepError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Field != "" {
		fmt.Fprintf(&b, " for %s", e.Field)
	}
	if e.Value != "" {
		fmt.Fprintf(&b, " (got %q)", e.Value)
	}
	if e.Path != "" {
		fmt.Fprintf(&b, ": %s", e.Path)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap exposes both the sentinel and the cause to errors.Is and errors.As.
func (e *StepError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// ExitCode returns the process exit code for this failure.
func (e *StepError) ExitCode() int {
	switch e.Kind {
	case ErrScratchCreate:
		return ExitScratchCreate
	case ErrLaunch:
		return ExitLaunch
	case ErrMissingExpectedFile:
		return ExitMissingExpectedFile
	case ErrFileRead:
		return ExitFileRead
	case ErrPatternNotFound:
		if e.Field == FieldToolchainConfigurationID {
			return ExitConfigurationIDNotFound
		}
		return ExitEnvironmentIDNotFound
	case ErrInvalidIdentifierShape:
		if e.Field == FieldToolchainConfigurationID {
			return ExitConfigurationIDInvalid
		}
		return ExitEnvironmentIDInvalid
	case ErrConfigWrite:
		return ExitConfigWrite
	default:
		return ExitFailure
	}
}

// Hint returns a short suggestion for the user, or "" if there is none.
func (e *StepError) Hint() string {
	switch e.Kind {
	case ErrScratchCreate:
		return "choose a writable scratch directory with --scratch-dir or UQGEN_SCRATCH_DIR"
	case ErrLaunch:
		if errors.Is(e.Err, ErrIDENotFound) {
			return "point uqgen at Qt Creator with --ide <path> or UQGEN_IDE"
		}
		return "check that Qt Creator is installed and associated with .pro files, or pass --ide <path>"
	case ErrMissingExpectedFile:
		return "select your Unreal Engine kit and press \"Configure Project\" before closing Qt Creator"
	case ErrPatternNotFound, ErrInvalidIdentifierShape:
		return "the settings format of this Qt Creator version is not recognized; make sure a kit was configured"
	case ErrConfigWrite:
		return "check permissions of the configuration directory (uqgen config path)"
	default:
		return ""
	}
}

// ExitCode maps any error returned by the wizard to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, ErrCancelled) {
		return ExitCancelled
	}
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr.ExitCode()
	}
	return ExitFailure
}
