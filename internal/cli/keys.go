package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yunhoi129/adtax/internal/ui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage API keys",
	Long: `Manage the API keys listed for integrations. Keys are stored locally
and are not used for authentication.`,
}

var keysListCmd = &cobra.Command{
	Use:   "list",
	Short: "List API keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		keys, err := deps.Keys.List(cmd.Context())
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), ui.KeysTable(deps.Theme, keys))
		return nil
	},
}

var keysCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new API key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		key, err := deps.Keys.Create(cmd.Context())
		if err != nil {
			return err
		}
		printSuccess(cmd, "API key created",
			deps.Theme.Field("ID", key.ID),
			deps.Theme.Field("Created", key.Created))
		return nil
	},
}

var keysRevokeCmd = &cobra.Command{
	Use:   "revoke <id>",
	Short: "Mark an API key as revoked",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := deps.Keys.Revoke(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printSuccess(cmd, "API key revoked", deps.Theme.Field("ID", key.ID))
		return nil
	},
}

var keysDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an API key",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := deps.Keys.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		printSuccess(cmd, "API key deleted", deps.Theme.Field("ID", args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.AddCommand(keysListCmd, keysCreateCmd, keysRevokeCmd, keysDeleteCmd)
}
