package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yunhoi129/adtax/internal/ui"
)

// errBrowseNeedsTerminal is returned by history list --browse without a terminal.
var errBrowseNeedsTerminal = errors.New("--browse needs an interactive terminal")

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear generated names",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated names, newest first",
	Long: `List generated names, newest first. With --browse a scrollable table
opens; pressing enter on a row copies that name to the clipboard.`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all generated names",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ok, err := confirmed(cmd, "Clear history?", "Every generated name and its metadata is deleted.")
		if err != nil || !ok {
			return err
		}
		if err := deps.History.Clear(cmd.Context()); err != nil {
			return err
		}
		printSuccess(cmd, "History cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyClearCmd)

	historyListCmd.Flags().IntP("limit", "n", 20, "maximum number of names to show (0 for all)")
	historyListCmd.Flags().Bool("browse", false, "open an interactive table")
	historyClearCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	entries, err := deps.History.List(ctx)
	if err != nil {
		return err
	}

	if !getBoolFlag(cmd, "browse") {
		_, _ = fmt.Fprintln(out, ui.HistoryTable(deps.Theme, entries, getIntFlag(cmd, "limit")))
		return nil
	}
	if !deps.interactive() {
		return errBrowseNeedsTerminal
	}
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(out, deps.Theme.Muted("No names generated yet"))
		return nil
	}

	browser := ui.NewHistoryBrowser(deps.Theme, entries, 15)
	chosen, err := ui.RunHistoryBrowser(ctx, browser, deps.Stdin, out)
	if err != nil || chosen == "" {
		return err
	}
	note := deps.Theme.Muted("Copied to clipboard.")
	if cerr := deps.CopyToClipboard(chosen); cerr != nil {
		note = deps.Theme.Warn("Could not copy to clipboard: " + cerr.Error())
	}
	printSuccess(cmd, "Selected file name", chosen, note)
	return nil
}
