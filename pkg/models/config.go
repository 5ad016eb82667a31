package models

// WizardConfig holds the Qt Creator identifiers discovered by the
// configuration wizard. Both fields must satisfy IsCanonicalID.
type WizardConfig struct {
	// EnvironmentID is the Qt Creator environment id (EnvironmentId).
	EnvironmentID string `yaml:"environment_id"`
	// ToolchainConfigurationID is the id of the Unreal Engine build kit
	// (ProjectExplorer.ProjectConfiguration.Id).
	ToolchainConfigurationID string `yaml:"toolchain_configuration_id"`
}

// IsZero reports whether neither identifier has been set.
func (c WizardConfig) IsZero() bool {
	return c.EnvironmentID == "" && c.ToolchainConfigurationID == ""
}

// IsValid reports whether both identifiers have the canonical shape.
func (c WizardConfig) IsValid() bool {
	return IsCanonicalID(c.EnvironmentID) && IsCanonicalID(c.ToolchainConfigurationID)
}
