package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultWidth = 80

// terminalWidth returns the width of stdout, or defaultWidth when stdout is
// not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

// printCard writes a themed card to the command output.
func printCard(cmd *cobra.Command, title, content string) {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), deps.Theme.Card(title, content))
}

// printSuccess writes a success card to the command output.
func printSuccess(cmd *cobra.Command, title string, details ...string) {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), deps.Theme.SuccessCard(title, details...))
}
