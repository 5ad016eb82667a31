// Package ui provides the terminal presentation helpers used by the uqgen
// CLI: TTY detection, the wait spinner and markdown rendering.
package ui

// Brand colors shared by the CLI styles and the confirmation form.
const (
	ColorPrimary   = "#41CD52" // Qt green
	ColorSecondary = "#0E7FC0" // Unreal blue
	ColorSuccess   = "#10B981"
	ColorWarning   = "#F59E0B"
	ColorError     = "#EF4444"
	ColorText      = "#E5E7EB"
	ColorMuted     = "#6B7280"
	ColorBorder    = "#4B5563"
)

// Colors holds the hex colors of a Theme.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Text      string
	Muted     string
	Border    string
}

// Theme controls how UI components are drawn.
type Theme struct {
	// NoColor disables ANSI styling and animation.
	NoColor bool
	Colors  Colors
}

// NewTheme returns the default uqgen theme.
func NewTheme(noColor bool) *Theme {
	return &Theme{
		NoColor: noColor,
		Colors: Colors{
			Primary:   ColorPrimary,
			Secondary: ColorSecondary,
			Success:   ColorSuccess,
			Warning:   ColorWarning,
			Error:     ColorError,
			Text:      ColorText,
			Muted:     ColorMuted,
			Border:    ColorBorder,
		},
	}
}
