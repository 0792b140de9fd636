package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yunhoi129/adtax/internal/cli/wizard"
	"github.com/yunhoi129/adtax/internal/naming"
	"github.com/yunhoi129/adtax/pkg/models"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate a file name",
	Long: `Generate a file name from the current configuration.

On a terminal without --set flags a form asks for each variable in turn.
Otherwise values come from repeated --set Name=value[,value] flags.
Variables without a value are skipped.`,
	Example: `  adtax generate
  adtax generate --set Size=1x1 --set Persona=Students --variation v2
  adtax generate --set Hook=Question,Offer --no-record --copy`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringArray("set", nil, "variable assignment Name=value[,value] (repeatable)")
	generateCmd.Flags().String("variation", "", "variation token appended to the name, e.g. v1")
	generateCmd.Flags().Bool("no-record", false, "preview only; do not add the name to history")
	generateCmd.Flags().Bool("copy", false, "copy the generated name to the clipboard")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	sets := getStringArrayFlag(cmd, "set")
	variation := getStringFlag(cmd, "variation")
	noRecord := getBoolFlag(cmd, "no-record")
	copyName := getBoolFlag(cmd, "copy")

	sel, err := naming.ParseSelection(sets)
	if err != nil {
		return err
	}

	if len(sets) == 0 && deps.interactive() {
		cfg, err := deps.Configs.Load(ctx)
		if err != nil {
			return err
		}
		// Nothing to ask when there are no variables and the variation came
		// from a flag.
		if questions := wizard.GeneratorQuestions(cfg, variation == ""); len(questions) > 0 {
			sel, err = wizard.Run(questions)
			if errors.Is(err, wizard.ErrCancelled) {
				_, _ = fmt.Fprintln(out, deps.Theme.Muted("Cancelled."))
				return nil
			}
			if err != nil {
				return err
			}
		}
	}
	if variation != "" {
		sel[models.VariationKey] = []string{variation}
	}

	var name string
	if noRecord {
		name, err = deps.Generator.Preview(ctx, sel)
	} else {
		var rec models.GeneratedNameRecord
		rec, err = deps.Generator.Generate(ctx, sel)
		name = rec.FileName
	}
	if err != nil {
		return fmt.Errorf("generate name: %w", err)
	}

	var notes []string
	if copyName {
		if cerr := deps.CopyToClipboard(name); cerr != nil {
			deps.Logger.Warn("clipboard copy failed", zap.Error(cerr))
			notes = append(notes, deps.Theme.Warn("Could not copy to clipboard: "+cerr.Error()))
		} else {
			notes = append(notes, deps.Theme.Muted("Copied to clipboard."))
		}
	}

	if !deps.interactive() {
		_, _ = fmt.Fprintln(out, name)
		for _, n := range notes {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), n)
		}
		return nil
	}

	title := "Generated file name"
	if noRecord {
		title = "Preview (not recorded)"
	}
	printSuccess(cmd, title, append([]string{name}, notes...)...)
	return nil
}
