// Package discovery implements the configuration discovery wizard: it opens
// a scratch project in Qt Creator, waits for the user to pick the Unreal
// Engine kit, and scrapes the environment and kit identifiers from the
// settings file Qt Creator leaves behind.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/unreal-qt/uqgen/internal/log"
	"github.com/unreal-qt/uqgen/pkg/models"
)

// Store persists the discovered identifiers.
type Store interface {
	SaveWizard(wc models.WizardConfig) error
}

// Confirmer asks the user whether to start the wizard.
type Confirmer interface {
	Confirm(ctx context.Context) (bool, error)
}

// Spinner is a running wait indicator.
type Spinner interface {
	Stop()
}

// Waiter starts a wait indicator while Qt Creator is open.
type Waiter interface {
	Spinner(title string) Spinner
}

// Options configures a Wizard.
type Options struct {
	// ScratchDir holds the scratch project. Required.
	ScratchDir string
	// Launcher opens the scratch project. Required.
	Launcher Launcher
	// Store persists the result. Required.
	Store Store
	// Confirmer is asked before any file is touched. Nil skips the prompt.
	Confirmer Confirmer
	// Waiter shows progress while the IDE is open. Nil shows nothing.
	Waiter Waiter
	// Logger overrides the package logger.
	Logger *zerolog.Logger
}

// Wizard runs the discovery flow.
type Wizard struct {
	scratch   scratchProject
	launcher  Launcher
	store     Store
	confirmer Confirmer
	waiter    Waiter
	logger    zerolog.Logger
}

// New validates opts and returns a Wizard.
func New(opts Options) (*Wizard, error) {
	if opts.ScratchDir == "" {
		return nil, errors.New("discovery: scratch directory is required")
	}
	if opts.Launcher == nil {
		return nil, errors.New("discovery: launcher is required")
	}
	if opts.Store == nil {
		return nil, errors.New("discovery: store is required")
	}
	logger := log.WithComponent("discovery")
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Wizard{
		scratch:   newScratchProject(opts.ScratchDir),
		launcher:  opts.Launcher,
		store:     opts.Store,
		confirmer: opts.Confirmer,
		waiter:    opts.Waiter,
		logger:    logger,
	}, nil
}

// ProjectFile returns the path of the scratch project opened in Qt Creator.
func (w *Wizard) ProjectFile() string {
	return w.scratch.projectFile
}

// Run executes the wizard and returns the persisted identifiers. Every
// failure is a *StepError except cancellation, which matches ErrCancelled.
func (w *Wizard) Run(ctx context.Context) (models.WizardConfig, error) {
	if w.confirmer != nil {
		ok, err := w.confirmer.Confirm(ctx)
		if err != nil {
			return models.WizardConfig{}, err
		}
		if !ok {
			return models.WizardConfig{}, ErrCancelled
		}
	}

	text, err := w.collect(ctx)
	if err != nil {
		return models.WizardConfig{}, err
	}

	wc, err := Extract(text)
	if err != nil {
		var stepErr *StepError
		if errors.As(err, &stepErr) {
			stepErr.Path = w.scratch.userFile
		}
		w.logger.Debug().Err(err).Msg("identifier extraction failed")
		return models.WizardConfig{}, err
	}
	w.logger.Debug().
		Str("environment_id", wc.EnvironmentID).
		Str("toolchain_configuration_id", wc.ToolchainConfigurationID).
		Msg("identifiers extracted")

	if err := w.store.SaveWizard(wc); err != nil {
		return models.WizardConfig{}, &StepError{Kind: ErrConfigWrite, Err: err}
	}
	w.logger.Debug().Msg("configuration saved")
	return wc, nil
}

// collect runs the scratch project through Qt Creator and returns the text
// of the settings file. The scratch files are removed before it returns.
func (w *Wizard) collect(ctx context.Context) (string, error) {
	if err := w.scratch.create(); err != nil {
		return "", &StepError{Kind: ErrScratchCreate, Path: w.scratch.projectFile, Err: err}
	}
	w.logger.Debug().Str("project", w.scratch.projectFile).Msg("scratch project created")
	defer w.cleanup(context.WithoutCancel(ctx))

	if err := w.launch(ctx); err != nil {
		if errors.Is(err, ErrCancelled) {
			return "", err
		}
		return "", &StepError{Kind: ErrLaunch, Err: err}
	}
	w.logger.Debug().Msg("qt creator exited")

	if _, err := os.Stat(w.scratch.userFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &StepError{Kind: ErrMissingExpectedFile, Path: w.scratch.userFile}
		}
		return "", &StepError{Kind: ErrFileRead, Path: w.scratch.userFile, Err: err}
	}

	text, err := readSettings(w.scratch.userFile)
	if err != nil {
		return "", &StepError{Kind: ErrFileRead, Path: w.scratch.userFile, Err: err}
	}
	w.logger.Debug().Int("bytes", len(text)).Msg("settings file read")
	return text, nil
}

func (w *Wizard) launch(ctx context.Context) error {
	if w.waiter != nil {
		spinner := w.waiter.Spinner("Waiting for Qt Creator to close...")
		defer spinner.Stop()
	}
	ctx = log.WithContext(ctx, w.logger)
	if err := w.launcher.Launch(ctx, w.scratch.projectFile); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	}
	return nil
}

func (w *Wizard) cleanup(ctx context.Context) {
	for _, err := range w.scratch.cleanup(ctx) {
		w.logger.Warn().Err(err).Msg("failed to remove scratch file")
	}
}
