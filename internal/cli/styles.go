package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/unreal-qt/uqgen/internal/discovery"
	"github.com/unreal-qt/uqgen/internal/ui"
	"github.com/unreal-qt/uqgen/pkg/models"
)

// CLI styles.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: ui.ColorSuccess})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: ui.ColorWarning})
	cliError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ui.ColorError})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ui.ColorMuted})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#2E9E3E", Dark: ui.ColorPrimary})
	cliBorder  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ui.ColorBorder})
)

func symSuccess() string { return cliSuccess.Render("✓") }
func symError() string   { return cliError.Render("✗") }
func symWarning() string { return cliWarn.Render("!") }

func cardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder.GetForeground()).
		Padding(0, 2)
}

// keyValueLines renders aligned "key  value" rows.
func keyValueLines(rows [][2]string) string {
	width := 0
	for _, r := range rows {
		width = max(width, len(r[0]))
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = cliMuted.Render(fmt.Sprintf("%-*s", width, r[0])) + "  " + r[1]
	}
	return strings.Join(lines, "\n")
}

// printIdentifiers writes a success card with both identifiers.
func printIdentifiers(w io.Writer, title string, wc models.WizardConfig, footer ...string) {
	var body strings.Builder
	body.WriteString(symSuccess() + " " + cliPrimary.Bold(true).Render(title))
	body.WriteString("\n\n")
	body.WriteString(keyValueLines([][2]string{
		{"Environment ID", wc.EnvironmentID},
		{"Kit ID", wc.ToolchainConfigurationID},
	}))
	for _, f := range footer {
		body.WriteString("\n\n" + cliMuted.Render(f))
	}
	_, _ = fmt.Fprintln(w, cardStyle().Render(body.String()))
}

// printError writes err and its hint. Cancellation is reported as a
// warning rather than an error.
func printError(w io.Writer, err error) {
	if errors.Is(err, discovery.ErrCancelled) {
		_, _ = fmt.Fprintln(w, symWarning()+" "+cliWarn.Render("Cancelled, nothing was changed."))
		return
	}
	_, _ = fmt.Fprintln(w, symError()+" "+cliError.Render(err.Error()))
	if hint := hintFor(err); hint != "" {
		_, _ = fmt.Fprintln(w, "  "+cliMuted.Render("hint: "+hint))
	}
}
