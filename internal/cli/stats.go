package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yunhoi129/adtax/internal/history"
	"github.com/yunhoi129/adtax/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show which values you generate most",
	Long: `Show "Ad Mix Analytics": the total number of generated names and, for
each tracked field, how often each value was used, most frequent first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		entries, err := deps.History.List(cmd.Context())
		if err != nil {
			return err
		}
		summary := history.Summarize(entries)
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), ui.RenderStats(deps.Theme, summary, terminalWidth()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
