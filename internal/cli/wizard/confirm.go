// Package wizard provides the interactive confirmation shown before the
// configuration discovery wizard launches Qt Creator.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"

	"github.com/unreal-qt/uqgen/internal/discovery"
)

// Headless reports whether prompting is impossible.
type Headless interface {
	IsHeadless() bool
}

// Confirmer asks the user to launch Qt Creator. It implements
// discovery.Confirmer.
type Confirmer struct {
	// Headless skips the prompt when no terminal is attached.
	Headless Headless
	// AssumeYes skips the prompt unconditionally (--yes).
	AssumeYes bool
	// ProjectFile is shown so the user knows which project to configure.
	ProjectFile string
	// NoColor selects huh's plain theme.
	NoColor bool
	// Output receives the form. Nil means os.Stderr.
	Output io.Writer

	run func(ctx context.Context, form *huh.Form) error
}

// Confirm implements discovery.Confirmer. Aborting the form (Esc or
// Ctrl+C) is reported as discovery.ErrCancelled.
func (c *Confirmer) Confirm(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%w: %w", discovery.ErrCancelled, err)
	}
	if c.AssumeYes || (c.Headless != nil && c.Headless.IsHeadless()) {
		return true, nil
	}

	launch := true
	form := c.newForm(&launch)

	run := c.run
	if run == nil {
		run = func(ctx context.Context, form *huh.Form) error { return form.RunWithContext(ctx) }
	}
	if err := run(ctx, form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			return false, discovery.ErrCancelled
		}
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	return launch, nil
}

func (c *Confirmer) newForm(launch *bool) *huh.Form {
	description := "Select your Unreal Engine kit, press *Configure Project*, then close Qt Creator."
	if c.ProjectFile != "" {
		description += "\n\nProject: `" + c.ProjectFile + "`"
	}

	theme := newWizardTheme()
	if c.NoColor {
		theme = huh.ThemeBase()
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Qt Creator kit discovery").
				Description(description),
			huh.NewConfirm().
				Title("Launch Qt Creator now?").
				Affirmative("Launch").
				Negative("Cancel").
				Value(launch),
		),
	).WithTheme(theme).WithAccessible(false)

	if c.Output != nil {
		form = form.WithOutput(c.Output)
	}
	return form
}
