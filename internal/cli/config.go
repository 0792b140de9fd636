package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yunhoi129/adtax/internal/cli/wizard"
	"github.com/yunhoi129/adtax/internal/defs"
	"github.com/yunhoi129/adtax/internal/naming"
	"github.com/yunhoi129/adtax/internal/ui"
	"github.com/yunhoi129/adtax/pkg/models"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the naming configuration",
	Long: `Manage the naming configuration: the ordered variables, the case
transformation and the separator character used to assemble file names.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := deps.Configs.Load(cmd.Context())
		if err != nil {
			return err
		}
		content := ui.ConfigurationSummary(deps.Theme, cfg) + "\n\n" + ui.VariablesTable(deps.Theme, cfg)
		printCard(cmd, "Configuration", content)
		return nil
	},
}

var configExportCmd = &cobra.Command{
	Use:     "export [file]",
	Short:   "Export the configuration as JSON",
	Long:    "Export the configuration as indented JSON to file, or to stdout when no file is given.",
	Example: "  adtax config export > backup.json\n  adtax config export " + defs.ExportJSON,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := deps.Configs.Load(cmd.Context())
		if err != nil {
			return err
		}
		data, err := deps.Configs.Export(cfg)
		if err != nil {
			return err
		}
		if len(args) == 0 {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(args[0], data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", args[0], err)
		}
		printSuccess(cmd, "Configuration exported", deps.Theme.Field("File", args[0]))
		return nil
	},
}

var configImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a configuration from JSON",
	Long: `Import a configuration previously written by "adtax config export".
The file is validated first; on any error the stored configuration is left
unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if err := ensureUnlocked(ctx); err != nil {
			return err
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		cfg, err := deps.Configs.Import(ctx, data)
		if err != nil {
			return err
		}
		printSuccess(cmd, "Configuration imported",
			deps.Theme.Field("Variables", fmt.Sprint(len(cfg.Variables))))
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		if err := ensureUnlocked(ctx); err != nil {
			return err
		}
		ok, err := confirmed(cmd, "Reset configuration?", "All variables are replaced by the defaults.")
		if err != nil || !ok {
			return err
		}
		if _, err := deps.Configs.Reset(ctx); err != nil {
			return err
		}
		printSuccess(cmd, "Configuration reset to defaults")
		return nil
	},
}

var configLockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Lock the configuration against changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return setLocked(cmd, true)
	},
}

var configUnlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Allow configuration changes again",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return setLocked(cmd, false)
	},
}

var configSetCaseCmd = &cobra.Command{
	Use:       "set-case <lowercase|uppercase|unchanged>",
	Short:     "Set the case transformation",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"lowercase", "uppercase", "unchanged"},
	RunE: func(cmd *cobra.Command, args []string) error {
		err := updateConfig(cmd.Context(), func(cfg models.Configuration) (models.Configuration, error) {
			return naming.SetCaseTransformation(cfg, models.CaseTransformation(args[0]))
		})
		if err != nil {
			return err
		}
		printSuccess(cmd, "Case transformation updated", deps.Theme.Field("Case", args[0]))
		return nil
	},
}

var configSetSeparatorCmd = &cobra.Command{
	Use:   "set-separator <char>",
	Short: "Set the separator character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := updateConfig(cmd.Context(), func(cfg models.Configuration) (models.Configuration, error) {
			return naming.SetSeparator(cfg, args[0])
		})
		if err != nil {
			return err
		}
		printSuccess(cmd, "Separator updated", deps.Theme.Field("Separator", fmt.Sprintf("%q", args[0])))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(
		configShowCmd,
		configExportCmd,
		configImportCmd,
		configResetCmd,
		configLockCmd,
		configUnlockCmd,
		configSetCaseCmd,
		configSetSeparatorCmd,
	)
	configResetCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
}

// ensureUnlocked returns ErrLocked when the stored configuration is locked.
func ensureUnlocked(ctx context.Context) error {
	cfg, err := deps.Configs.Load(ctx)
	if err != nil {
		return err
	}
	if cfg.Locked {
		return ErrLocked
	}
	return nil
}

// updateConfig applies fn to the stored configuration and saves the result.
// Locked configurations are refused.
func updateConfig(ctx context.Context, fn func(models.Configuration) (models.Configuration, error)) error {
	cfg, err := deps.Configs.Load(ctx)
	if err != nil {
		return err
	}
	if cfg.Locked {
		return ErrLocked
	}
	next, err := fn(cfg)
	if err != nil {
		return err
	}
	return deps.Configs.Save(ctx, next)
}

func setLocked(cmd *cobra.Command, locked bool) error {
	ctx := cmd.Context()
	cfg, err := deps.Configs.Load(ctx)
	if err != nil {
		return err
	}
	state := "unlocked"
	if locked {
		state = "locked"
	}
	if cfg.Locked == locked {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), deps.Theme.Muted("Configuration is already "+state+"."))
		return nil
	}
	if _, err := deps.Configs.SetLocked(ctx, locked); err != nil {
		return err
	}
	printSuccess(cmd, "Configuration "+state)
	return nil
}

// errConfirmRequired is returned for destructive commands run without a
// terminal and without --yes.
var errConfirmRequired = errors.New("confirmation required: pass --yes to run without a prompt")

// confirmed reports whether a destructive command may proceed, asking on a
// terminal unless --yes was given.
func confirmed(cmd *cobra.Command, title, description string) (bool, error) {
	if getBoolFlag(cmd, "yes") {
		return true, nil
	}
	if !deps.interactive() {
		return false, errConfirmRequired
	}
	ok, err := wizard.Confirm(title, description)
	if err != nil {
		return false, err
	}
	if !ok {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), deps.Theme.Muted("Cancelled."))
	}
	return ok, nil
}
