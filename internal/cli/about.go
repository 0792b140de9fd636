package cli

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yunhoi129/adtax/internal/ui"
)

//go:embed docs/about.md
var aboutMarkdown string

//go:embed docs/example.md
var exampleMarkdown string

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Explain how names are built",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		md := aboutMarkdown
		if getBoolFlag(cmd, "example") {
			md = exampleMarkdown
		}
		out, err := ui.RenderMarkdown(deps.Theme, md, terminalWidth())
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
	aboutCmd.Flags().Bool("example", false, "show a worked example instead")
}
