package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/unreal-qt/uqgen/pkg/models"
)

// Field names reported in validation errors.
const (
	FieldEnvironmentID            = "wizard.environment_id"
	FieldToolchainConfigurationID = "wizard.toolchain_configuration_id"
	FieldLogLevel                 = "system.log_level"
)

// Validate checks the system section of cfg. The wizard section is checked
// separately by ValidateWizard because an empty wizard section is a normal
// first-run state rather than an invalid file.
func Validate(cfg *Config) error {
	var errs []ValidationError

	errs = append(errs, validateLogLevel(cfg.System.LogLevel)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// ValidateWizard checks that both identifiers are present and canonical.
// A zero WizardConfig yields ErrNotConfigured; anything else that is not
// fully valid yields ValidationErrors naming each offending field.
func ValidateWizard(wc models.WizardConfig) error {
	if wc.IsZero() {
		return ErrNotConfigured
	}
	if wc.IsValid() {
		return nil
	}

	var errs []ValidationError
	errs = append(errs, validateIdentifier(FieldEnvironmentID, wc.EnvironmentID)...)
	errs = append(errs, validateIdentifier(FieldToolchainConfigurationID, wc.ToolchainConfigurationID)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateIdentifier checks a single identifier field.
func validateIdentifier(field, value string) []ValidationError {
	if value == "" {
		return []ValidationError{{
			Field:   field,
			Message: "required field is empty; run `uqgen discover` to regenerate both identifiers",
			Wrapped: ErrIncompleteWizardConfig,
		}}
	}
	if !models.IsCanonicalID(value) {
		return []ValidationError{{
			Field:   field,
			Message: "must be a brace-enclosed GUID like {01234567-89ab-cdef-0123-456789abcdef}",
			Value:   value,
			Wrapped: ErrInvalidIdentifier,
		}}
	}
	return nil
}

// validateLogLevel checks that the log level is a recognized value.
func validateLogLevel(level string) []ValidationError {
	if level == "" {
		return nil // empty is acceptable, defaults will be applied
	}
	if !slices.Contains(validLogLevels, strings.ToLower(level)) {
		return []ValidationError{{
			Field:   FieldLogLevel,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels, ", ")),
			Value:   level,
			Wrapped: ErrInvalidLogLevel,
		}}
	}
	return nil
}
