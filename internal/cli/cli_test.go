package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap/zaptest"

	"github.com/yunhoi129/adtax/internal/storage"
	"github.com/yunhoi129/adtax/internal/ui"
)

// testDeps wires in-memory dependencies in headless mode and records
// clipboard writes.
type testDeps struct {
	*Dependencies
	copied []string
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	td := &testDeps{}
	d := &Dependencies{
		Theme:    ui.NewTheme(true),
		Headless: ui.NewHeadlessManager(),
		Stdin:    strings.NewReader(""),
		CopyToClipboard: func(s string) error {
			td.copied = append(td.copied, s)
			return nil
		},
	}
	d.Headless.ForceHeadless(true)
	d.Wire(storage.NewMemoryStore(), zaptest.NewLogger(t))
	td.Dependencies = d

	orig := deps
	deps = d
	t.Cleanup(func() { deps = orig })
	return td
}

// execute runs the root command with args and returns everything written
// to stdout and stderr.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// resetFlags restores every flag in the tree to its default, since the
// command vars are shared between tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
