package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yunhoi129/adtax/internal/cli/wizard"
	"github.com/yunhoi129/adtax/internal/naming"
	"github.com/yunhoi129/adtax/internal/ui"
	"github.com/yunhoi129/adtax/pkg/models"
)

// errNothingToEdit is returned by var edit without flags or a terminal.
var errNothingToEdit = errors.New("nothing to change: pass --label, --type, --values, --allow-free-input or --description")

var variableCmd = &cobra.Command{
	Use:     "var",
	Aliases: []string{"variable", "variables"},
	Short:   "Manage configuration variables",
}

var variableListCmd = &cobra.Command{
	Use:   "list",
	Short: "List variables in assembly order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := deps.Configs.Load(cmd.Context())
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), ui.VariablesTable(deps.Theme, cfg))
		return nil
	},
}

var variableAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append a new variable",
	Long: `Append a new dropdown variable named "New Variable" with no values.
Edit flags apply to the new variable; on a terminal without flags the edit
dialog opens.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		cfg, err := deps.Configs.Load(ctx)
		if err != nil {
			return err
		}
		if cfg.Locked {
			return ErrLocked
		}
		cfg = naming.AddVariable(cfg)
		idx := len(cfg.Variables) - 1

		v, changed, err := editVariable(cmd, cfg.Variables[idx])
		if err != nil {
			return err
		}
		if changed {
			if cfg, err = naming.UpdateVariable(cfg, idx, v); err != nil {
				return err
			}
		}
		if err := deps.Configs.Save(ctx, cfg); err != nil {
			return err
		}
		printSuccess(cmd, "Variable added", deps.Theme.Field("Name", cfg.Variables[idx].Name))
		return nil
	},
}

var variableEditCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Edit a variable",
	Long: `Edit the label, type, values and free-input flag of a variable.
Values are comma-separated; blanks are dropped. On a terminal without flags
the edit dialog opens.`,
	Example: `  adtax config var edit Size --values "1x1, 9x16, 16x9"
  adtax config var edit Hook --label Hooks --type multiselect`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := deps.Configs.Load(ctx)
		if err != nil {
			return err
		}
		if cfg.Locked {
			return ErrLocked
		}
		idx, err := variableIndex(cfg, args[0])
		if err != nil {
			return err
		}
		v, changed, err := editVariable(cmd, cfg.Variables[idx])
		if err != nil {
			return err
		}
		if !changed {
			if deps.interactive() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), deps.Theme.Muted("No changes."))
				return nil
			}
			return errNothingToEdit
		}
		if cfg, err = naming.UpdateVariable(cfg, idx, v); err != nil {
			return err
		}
		if err := deps.Configs.Save(ctx, cfg); err != nil {
			return err
		}
		printSuccess(cmd, "Variable updated", deps.Theme.Field("Name", v.Name))
		return nil
	},
}

var variableDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a variable",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var removed string
		err := updateConfig(cmd.Context(), func(cfg models.Configuration) (models.Configuration, error) {
			idx, err := variableIndex(cfg, args[0])
			if err != nil {
				return cfg, err
			}
			removed = cfg.Variables[idx].Name
			return naming.DeleteVariable(cfg, idx)
		})
		if err != nil {
			return err
		}
		printSuccess(cmd, "Variable deleted", deps.Theme.Field("Name", removed))
		return nil
	},
}

func init() {
	configCmd.AddCommand(variableCmd)
	variableCmd.AddCommand(variableListCmd, variableAddCmd, variableEditCmd, variableDeleteCmd)

	for _, c := range []*cobra.Command{variableAddCmd, variableEditCmd} {
		c.Flags().String("label", "", "variable name")
		c.Flags().String("type", "", "variable type: dropdown, multiselect or text")
		c.Flags().String("values", "", "comma-separated values")
		c.Flags().Bool("allow-free-input", false, "allow typing a value not in the list")
		c.Flags().String("description", "", "help text shown when generating")
	}
}

func variableIndex(cfg models.Configuration, name string) (int, error) {
	idx := cfg.VariableIndex(name)
	if idx < 0 {
		return -1, fmt.Errorf("%w: %q", naming.ErrUnknownVariable, name)
	}
	return idx, nil
}

// editVariable applies the edit flags to v, or runs the edit dialog when no
// flag is set and a terminal is attached. changed is false when nothing was
// edited.
func editVariable(cmd *cobra.Command, v models.Variable) (models.Variable, bool, error) {
	flags := cmd.Flags()
	edit := naming.EditFor(v)
	set := false

	if flags.Changed("label") {
		edit.Label = getStringFlag(cmd, "label")
		set = true
	}
	if flags.Changed("type") {
		edit.Type = models.VariableType(getStringFlag(cmd, "type"))
		set = true
	}
	if flags.Changed("values") {
		edit.Values = getStringFlag(cmd, "values")
		set = true
	}
	if flags.Changed("allow-free-input") {
		edit.AllowFreeInput = getBoolFlag(cmd, "allow-free-input")
		set = true
	}

	if !set && !flags.Changed("description") {
		if !deps.interactive() {
			return v, false, nil
		}
		dialog, err := wizard.RunEdit(edit)
		if errors.Is(err, wizard.ErrCancelled) {
			return v, false, nil
		}
		if err != nil {
			return v, false, err
		}
		edit = dialog
	}

	out, err := naming.ApplyEdit(v, edit)
	if err != nil {
		return v, false, err
	}
	if flags.Changed("description") {
		out.Description = getStringFlag(cmd, "description")
	}
	return out, true, nil
}
