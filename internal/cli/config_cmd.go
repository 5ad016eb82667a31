package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unreal-qt/uqgen/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the uqgen configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored identifiers and settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if deps == nil {
			return fmt.Errorf("dependencies not initialized")
		}
		path, err := deps.Config.Path()
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configPathCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	if deps.LoadErr != nil {
		return invalidConfig(deps.LoadErr)
	}

	envID, kitID := "", ""
	wc, err := deps.Config.Wizard()
	switch {
	case errors.Is(err, config.ErrNotConfigured):
		envID = cliWarn.Render("not configured")
		kitID = cliMuted.Render("run `uqgen discover`")
	case err != nil:
		return invalidIdentifiers(err)
	default:
		envID = wc.EnvironmentID
		kitID = wc.ToolchainConfigurationID
	}

	cfg := deps.Config.Get()
	ide := cfg.System.IDEPath
	if ide == "" {
		ide = cliMuted.Render("(.pro file association)")
	}
	path, _ := deps.Config.Path()
	state := ""
	if !deps.Config.Exists() {
		state = " " + cliMuted.Render("(not created yet)")
	}

	body := cliPrimary.Bold(true).Render("uqgen configuration") + "\n" +
		cliMuted.Render(path) + state + "\n\n" +
		keyValueLines([][2]string{
			{"environment_id", envID},
			{"toolchain_configuration_id", kitID},
			{"ide_path", ide},
			{"scratch_dir", cfg.System.ScratchDir},
			{"log_level", cfg.System.LogLevel},
			{"no_color", fmt.Sprintf("%t", cfg.System.NoColor)},
		})
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), cardStyle().Render(body))
	return nil
}
