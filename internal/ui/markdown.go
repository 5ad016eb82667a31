package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// DefaultWrapWidth is the column at which rendered markdown wraps.
const DefaultWrapWidth = 80

// RenderMarkdown renders md for the terminal. Plain styling is used when
// the theme disables color.
func RenderMarkdown(theme *Theme, md string, width int) (string, error) {
	if width <= 0 {
		width = DefaultWrapWidth
	}
	style := "dark"
	if theme.NoColor {
		style = "notty"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render(md)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, " \n") + "\n", nil
}
