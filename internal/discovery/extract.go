package discovery

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/unreal-qt/uqgen/pkg/models"
)

// idValue captures the whole element text. The shape is checked afterwards
// by models.IsCanonicalID so that a format drift in Qt Creator surfaces as
// ErrInvalidIdentifierShape instead of a silent mismatch.
const idValue = `(?P<id>[^<]*)`

var (
	// <variable>EnvironmentId</variable>
	// <value type="QByteArray">{...}</value>
	environmentIDPattern = regexp.MustCompile(
		`<variable>EnvironmentId</variable>\s*\n\s*<value type="QByteArray">` + idValue)

	// <value type="QString" key="ProjectExplorer.ProjectConfiguration.Id">{...}</value>
	configurationIDPattern = regexp.MustCompile(
		`key="ProjectExplorer\.ProjectConfiguration\.Id">` + idValue)
)

// Extract pulls both identifiers out of the text of a Qt Creator
// .pro.user file. The environment id is checked first; the returned
// *StepError names the field that failed.
func Extract(text string) (models.WizardConfig, error) {
	envID, err := ExtractEnvironmentID(text)
	if err != nil {
		return models.WizardConfig{}, err
	}
	confID, err := ExtractToolchainConfigurationID(text)
	if err != nil {
		return models.WizardConfig{}, err
	}
	return models.WizardConfig{
		EnvironmentID:            envID,
		ToolchainConfigurationID: confID,
	}, nil
}

// ExtractEnvironmentID returns the value of the EnvironmentId variable.
func ExtractEnvironmentID(text string) (string, error) {
	return extractID(text, environmentIDPattern, FieldEnvironmentID, anyValue)
}

// ExtractToolchainConfigurationID returns the first
// ProjectExplorer.ProjectConfiguration.Id value that looks like an id,
// the id of the kit the user selected.
func ExtractToolchainConfigurationID(text string) (string, error) {
	return extractID(text, configurationIDPattern, FieldToolchainConfigurationID, looksLikeID)
}

// extractID validates the first match whose value is accepted by candidate.
func extractID(text string, pattern *regexp.Regexp, field Field, candidate func(string) bool) (string, error) {
	idx := pattern.SubexpIndex("id")
	for _, match := range pattern.FindAllStringSubmatch(text, -1) {
		id := match[idx]
		if !candidate(id) {
			continue
		}
		if !models.IsCanonicalID(id) {
			return "", &StepError{Kind: ErrInvalidIdentifierShape, Field: field, Value: id}
		}
		return id, nil
	}
	return "", &StepError{Kind: ErrPatternNotFound, Field: field}
}

func anyValue(string) bool { return true }

// looksLikeID tells kit ids apart from the dotted build, deploy and run
// configuration ids that share the ProjectConfiguration.Id key.
func looksLikeID(v string) bool {
	return strings.HasPrefix(v, "{") || uuid.Validate(v) == nil
}
