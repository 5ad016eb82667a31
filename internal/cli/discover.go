package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/unreal-qt/uqgen/internal/cli/wizard"
	"github.com/unreal-qt/uqgen/internal/defs"
	"github.com/unreal-qt/uqgen/internal/discovery"
	"github.com/unreal-qt/uqgen/internal/log"
	"github.com/unreal-qt/uqgen/internal/ui"
	"github.com/unreal-qt/uqgen/pkg/models"
)

const discoverInstructions = `# Qt Creator kit discovery

uqgen needs the identifiers Qt Creator assigned to your **Unreal Engine** kit.

1. Qt Creator opens an empty scratch project.
2. On the *Configure Project* page, select your Unreal Engine kit.
3. Press **Configure Project**.
4. Close Qt Creator.

The scratch project is deleted afterwards.
`

// discoverOptions holds the flags of the discover command.
type discoverOptions struct {
	idePath    string
	scratchDir string
	assumeYes  bool
}

var discoverFlags discoverOptions

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover the Qt Creator kit identifiers",
	Long: `Open a scratch project in Qt Creator, wait for you to configure it with
your Unreal Engine kit, and store the environment and kit identifiers that
Qt Creator writes to its settings file. Any previously stored identifiers
are replaced.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if deps == nil {
			return fmt.Errorf("dependencies not initialized")
		}
		if deps.LoadErr != nil {
			return invalidConfig(deps.LoadErr)
		}
		_, err := runDiscovery(cmd, discoverFlags)
		return err
	},
}

func init() {
	rootCmd.AddCommand(discoverCmd)

	f := discoverCmd.Flags()
	f.StringVar(&discoverFlags.idePath, "ide", "", "Qt Creator executable (default: file association, or $UQGEN_IDE)")
	f.StringVar(&discoverFlags.scratchDir, "scratch-dir", "", "directory for the scratch project (default: system temp dir, or $UQGEN_SCRATCH_DIR)")
	f.BoolVarP(&discoverFlags.assumeYes, "yes", "y", false, "launch Qt Creator without asking")
}

// runDiscovery runs the discovery wizard with the loaded configuration and
// prints the result.
func runDiscovery(cmd *cobra.Command, opts discoverOptions) (models.WizardConfig, error) {
	cfg := deps.Config.Get()
	if cfg == nil {
		return models.WizardConfig{}, fmt.Errorf("configuration not loaded")
	}

	idePath := cfg.System.IDEPath
	if opts.idePath != "" {
		idePath = opts.idePath
	}
	scratchDir := cfg.System.ScratchDir
	if opts.scratchDir != "" {
		scratchDir = opts.scratchDir
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	if !deps.Headless.IsHeadless() {
		if rendered, err := ui.RenderMarkdown(deps.Theme, discoverInstructions, ui.DefaultWrapWidth); err == nil {
			_, _ = fmt.Fprint(errOut, rendered)
		} else {
			deps.Logger.Debug().Err(err).Msg("markdown rendering failed")
			_, _ = fmt.Fprint(errOut, discoverInstructions)
		}
	}

	logger := log.WithComponent("discovery")
	confirmer := &wizard.Confirmer{
		Headless:    deps.Headless,
		AssumeYes:   opts.assumeYes,
		ProjectFile: filepath.Join(scratchDir, defs.ScratchProject),
		NoColor:     deps.Theme.NoColor,
		Output:      errOut,
	}
	w, err := discovery.New(discovery.Options{
		ScratchDir: scratchDir,
		Launcher:   LauncherFactory(idePath),
		Store:      deps.Config,
		Confirmer:  confirmer,
		Waiter:     progressWaiter{deps.Progress},
		Logger:     &logger,
	})
	if err != nil {
		return models.WizardConfig{}, err
	}

	logger.Debug().
		Str("scratch_dir", scratchDir).
		Str("ide", idePath).
		Msg("starting discovery wizard")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	wc, err := w.Run(ctx)
	if err != nil {
		return models.WizardConfig{}, err
	}

	path, _ := deps.Config.Path()
	printIdentifiers(out, "Qt Creator kit discovered", wc, "Saved to "+path)
	return wc, nil
}

// progressWaiter adapts ui.Progress to discovery.Waiter.
type progressWaiter struct {
	progress *ui.Progress
}

func (p progressWaiter) Spinner(title string) discovery.Spinner {
	return p.progress.Spinner(title)
}
