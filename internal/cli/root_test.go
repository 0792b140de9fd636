package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunhoi129/adtax/internal/config"
	"github.com/yunhoi129/adtax/internal/storage"
	"github.com/yunhoi129/adtax/pkg/version"
)

func TestRootCommand_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"generate", "config", "history", "stats", "keys", "about"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRootCommand_Version(t *testing.T) {
	newTestDeps(t)
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, version.GetVersion())
}

func TestEnsureDeps_NilDeps(t *testing.T) {
	orig := deps
	deps = nil
	t.Cleanup(func() { deps = orig })

	err := ensureDeps(rootCmd, nil)
	assert.ErrorIs(t, err, errNoDeps)
}

func TestEnsureStorage_FileDriver(t *testing.T) {
	dir := t.TempDir()
	d := initDeps(t)

	err := d.EnsureStorage(globalOptions{DataDir: dir, NoColor: true, NonInteractive: true})
	require.NoError(t, err)

	require.NotNil(t, d.Store)
	assert.IsType(t, &storage.FileStore{}, d.Store)
	assert.Equal(t, dir, d.DataDir)
	assert.True(t, d.Theme.NoColor)
	assert.True(t, d.Headless.IsHeadless())
	assert.NotNil(t, d.Generator)

	// A second call keeps the open store.
	st := d.Store
	require.NoError(t, d.EnsureStorage(globalOptions{DataDir: dir}))
	assert.Same(t, st, d.Store)
}

func TestEnsureStorage_FlagsOverrideSettings(t *testing.T) {
	dir := t.TempDir()
	yaml := "storage:\n  driver: sqlite\nlog:\n  level: error\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte(yaml), 0o644))

	d := initDeps(t)

	require.NoError(t, d.EnsureStorage(globalOptions{DataDir: dir, Storage: config.DriverMemory}))
	assert.Equal(t, config.DriverMemory, d.Settings.Storage.Driver)
	assert.Equal(t, "error", d.Settings.Log.Level)
	assert.IsType(t, &storage.MemoryStore{}, d.Store)
}

func TestEnsureStorage_InvalidDriver(t *testing.T) {
	d := initDeps(t)

	err := d.EnsureStorage(globalOptions{DataDir: t.TempDir(), Storage: "postgres"})
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Nil(t, d.Store)
}

func TestDependencies_CloseIdempotent(t *testing.T) {
	d := newTestDeps(t)
	require.NoError(t, d.Close())
	assert.Nil(t, d.Store)
	require.NoError(t, d.Close())
}

// initDeps runs InitDependencies and restores the previous deps afterwards.
func initDeps(t *testing.T) *Dependencies {
	t.Helper()
	orig := deps
	InitDependencies()
	d := GetDeps()
	t.Cleanup(func() {
		_ = d.Close()
		SetDeps(orig)
	})
	return d
}
