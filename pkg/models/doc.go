// Package models provides shared data models for uqgen.
//
// The central type is [WizardConfig], the pair of Qt Creator identifiers
// discovered by the configuration wizard and consumed by project templating.
//
// # Identifiers
//
// Qt Creator identifies environments and kits with brace-enclosed GUIDs:
//
//	{01234567-89ab-cdef-0123-456789abcdef}
//
// Use [IsCanonicalID] to check a value before storing or using it:
//
//	if !models.IsCanonicalID(id) {
//	    return fmt.Errorf("unexpected id %q", id)
//	}
package models
