package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yunhoi129/adtax/internal/config"
	"github.com/yunhoi129/adtax/internal/defs"
)

var errNoSettings = errors.New("settings are not loaded")

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change adtax's own settings",
	Long: `Show or change the settings stored in settings.yaml in the data
directory: the storage driver, logging and terminal behaviour.

Keys: ` + strings.Join(config.SettingKeys(), ", "),
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if deps.Settings == nil {
			return errNoSettings
		}
		lines := []string{deps.Theme.Field("Data dir", deps.DataDir)}
		for _, k := range config.SettingKeys() {
			v, _ := deps.Settings.Get(k)
			lines = append(lines, deps.Theme.Field(k, v))
		}
		printCard(cmd, "Settings", strings.Join(lines, "\n"))
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Change a setting",
	Example:   "  adtax settings set storage.driver sqlite\n  adtax settings set log.level debug",
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.SettingKeys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := deps.SettingsManager
		if mgr == nil {
			return errNoSettings
		}
		s := mgr.File()
		if s == nil {
			return config.ErrNotInitialized
		}
		if err := s.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := mgr.Save(s); err != nil {
			return err
		}
		printSuccess(cmd, "Setting saved",
			deps.Theme.Field(args[0], args[1]),
			deps.Theme.Muted("Written to "+defs.SettingsYAML+"; takes effect on the next run."))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd)
}
