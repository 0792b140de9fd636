package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yunhoi129/adtax/pkg/version"
)

// ErrLocked indicates a configuration change while the configuration is locked.
var ErrLocked = errors.New("configuration is locked; run `adtax config unlock` first")

var globalFlags globalOptions

var rootCmd = &cobra.Command{
	Use:   "adtax",
	Short: "Ad creative file name generator",
	Long: `adtax composes standardised file names for ad creatives from a
configurable set of variables (size, persona, funnel stage, archetype,
hook, CTA, style), keeps a history of every generated name and shows
which combinations you use most.

All data is stored locally in the adtax data directory.`,
	Version:           version.GetVersion(),
	SilenceUsage:      true,
	PersistentPreRunE: ensureDeps,
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	defer func() { _ = deps.Close() }()
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("adtax %s\n", version.GetFullVersion()))

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&globalFlags.DataDir, "data-dir", "", "data directory (default: $ADTAX_DATA_DIR or <user config dir>/adtax)")
	pf.StringVar(&globalFlags.Storage, "storage", "", "storage driver: file, badger, sqlite or memory")
	pf.StringVar(&globalFlags.LogLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.BoolVar(&globalFlags.NoColor, "no-color", false, "disable colored output")
	pf.BoolVar(&globalFlags.NonInteractive, "non-interactive", false, "never prompt; take all input from flags")
}

// ensureDeps opens storage before any command runs.
func ensureDeps(_ *cobra.Command, _ []string) error {
	if deps == nil {
		return errNoDeps
	}
	return deps.EnsureStorage(globalFlags)
}
