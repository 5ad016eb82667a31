package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unreal-qt/uqgen/internal/config"
	"github.com/unreal-qt/uqgen/pkg/version"
)

// rootOptions holds the persistent flags.
type rootOptions struct {
	configDir string
	logLevel  string
	logJSON   bool
	noColor   bool
}

var rootFlags rootOptions

var rootCmd = &cobra.Command{
	Use:   "uqgen",
	Short: "Unreal Engine project generator for Qt Creator",
	Long: `uqgen generates Qt Creator project files for Unreal Engine projects.

Qt Creator identifies the Unreal Engine kit by two GUIDs stored in its
per-user settings. On first run uqgen opens a scratch project in Qt Creator,
lets you pick the kit, and records both identifiers in its configuration.`,
	Version:           version.GetVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: persistentPreRun,
	RunE:              runRoot,
}

// Execute runs the root command with a context cancelled on Ctrl+C. The
// error, if any, has already been printed; pass it to ExitCode.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	InitDependencies()
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("uqgen %s\n", version.GetFullVersion()))

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.configDir, "config-dir", "", "configuration directory (default: per-user config dir, or $UQGEN_CONFIG_DIR)")
	pf.StringVar(&rootFlags.logLevel, "log-level", "", "log level: "+strings.Join(config.ValidLogLevels(), ", "))
	pf.BoolVar(&rootFlags.logJSON, "log-json", false, "write log lines as JSON")
	pf.BoolVar(&rootFlags.noColor, "no-color", false, "disable colored output")
}

func persistentPreRun(cmd *cobra.Command, _ []string) error {
	if level := rootFlags.logLevel; level != "" && !slices.Contains(config.ValidLogLevels(), strings.ToLower(level)) {
		return fmt.Errorf("invalid --log-level %q: must be one of %s", level, strings.Join(config.ValidLogLevels(), ", "))
	}
	setupDependencies(cmd.ErrOrStderr())
	return nil
}

// runRoot prints the configured identifiers, running the discovery wizard
// first when uqgen has never been configured.
func runRoot(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	if deps.LoadErr != nil {
		return invalidConfig(deps.LoadErr)
	}

	wc, err := deps.Config.Wizard()
	switch {
	case errors.Is(err, config.ErrNotConfigured):
		deps.Logger.Info().Msg("no stored identifiers, starting discovery wizard")
		if _, err := runDiscovery(cmd, discoverOptions{}); err != nil {
			return err
		}
	case err != nil:
		return invalidIdentifiers(err)
	default:
		printIdentifiers(cmd.OutOrStdout(), "Qt Creator kit configured", wc)
	}

	return nil
}
