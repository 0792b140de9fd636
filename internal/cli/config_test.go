package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunhoi129/adtax/internal/defs"
	"github.com/yunhoi129/adtax/internal/naming"
	"github.com/yunhoi129/adtax/pkg/models"
)

func TestConfigShow(t *testing.T) {
	newTestDeps(t)

	out, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration")
	assert.Contains(t, out, "lowercase")
	assert.Contains(t, out, "Archetype")
}

func TestConfigExport_Stdout(t *testing.T) {
	newTestDeps(t)

	out, err := execute(t, "config", "export")
	require.NoError(t, err)

	want, err := naming.Export(naming.DefaultConfiguration())
	require.NoError(t, err)
	assert.Equal(t, string(want), out)
}

func TestConfigExportImport_RoundTrip(t *testing.T) {
	d := newTestDeps(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "config.json")

	_, err := execute(t, "config", "export", path)
	require.NoError(t, err)

	_, err = execute(t, "config", "set-separator", "-")
	require.NoError(t, err)

	_, err = execute(t, "config", "import", path)
	require.NoError(t, err)

	cfg, err := d.Configs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, naming.DefaultConfiguration(), cfg)
}

func TestConfigImport_InvalidLeavesStateUnchanged(t *testing.T) {
	d := newTestDeps(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"variables": [`), 0o644))

	_, err := execute(t, "config", "set-case", "uppercase")
	require.NoError(t, err)

	_, err = execute(t, "config", "import", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, naming.ErrImport)

	cfg, err := d.Configs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.CaseUppercase, cfg.CaseTransformation)
}

func TestConfigImport_MissingFile(t *testing.T) {
	newTestDeps(t)

	_, err := execute(t, "config", "import", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigSetCase(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		wantErr error
	}{
		{name: "uppercase", arg: "uppercase"},
		{name: "unchanged", arg: "unchanged"},
		{name: "invalid", arg: "camel", wantErr: naming.ErrInvalidConfiguration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)

			_, err := execute(t, "config", "set-case", tt.arg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			cfg, err := d.Configs.Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, models.CaseTransformation(tt.arg), cfg.CaseTransformation)
		})
	}
}

func TestConfigSetSeparator(t *testing.T) {
	d := newTestDeps(t)

	_, err := execute(t, "config", "set-separator", ".")
	require.NoError(t, err)
	cfg, err := d.Configs.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.SeparatorCharacter)

	_, err = execute(t, "config", "set-separator", "--")
	require.Error(t, err)

	_, err = execute(t, "config", "set-separator", "ab")
	assert.ErrorIs(t, err, naming.ErrInvalidConfiguration)
}

func TestConfigLock_BlocksChanges(t *testing.T) {
	d := newTestDeps(t)
	ctx := context.Background()

	_, err := execute(t, "config", "lock")
	require.NoError(t, err)

	blocked := [][]string{
		{"config", "set-case", "uppercase"},
		{"config", "set-separator", "-"},
		{"config", "reset", "--yes"},
		{"config", "var", "add"},
		{"config", "var", "edit", "Size", "--values", "1x1"},
		{"config", "var", "delete", "Size"},
	}
	for _, args := range blocked {
		_, err := execute(t, args...)
		assert.ErrorIs(t, err, ErrLocked, "args %v", args)
	}

	path := filepath.Join(t.TempDir(), "cfg.json")
	data, err := naming.Export(naming.DefaultConfiguration())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	_, err = execute(t, "config", "import", path)
	assert.ErrorIs(t, err, ErrLocked)

	_, err = execute(t, "config", "unlock")
	require.NoError(t, err)
	_, err = execute(t, "config", "set-case", "uppercase")
	require.NoError(t, err)

	cfg, err := d.Configs.Load(ctx)
	require.NoError(t, err)
	assert.False(t, cfg.Locked)
	assert.Equal(t, models.CaseUppercase, cfg.CaseTransformation)
}

func TestConfigLock_AlreadyLocked(t *testing.T) {
	newTestDeps(t)

	_, err := execute(t, "config", "lock")
	require.NoError(t, err)
	out, err := execute(t, "config", "lock")
	require.NoError(t, err)
	assert.Contains(t, out, "already locked")
}

func TestConfigReset(t *testing.T) {
	d := newTestDeps(t)
	ctx := context.Background()

	_, err := execute(t, "config", "set-separator", "-")
	require.NoError(t, err)

	_, err = execute(t, "config", "reset")
	assert.ErrorIs(t, err, errConfirmRequired)

	_, err = execute(t, "config", "reset", "--yes")
	require.NoError(t, err)

	cfg, err := d.Configs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, naming.DefaultConfiguration(), cfg)
}

func TestConfigUnlock_InvalidStoredRecord(t *testing.T) {
	d := newTestDeps(t)
	ctx := context.Background()
	stored := `{"variables":[{"name":"Size","type":"dropdown","values":["1x1"]}],"caseTransformation":"lowercase","separatorCharacter":"","locked":true}`
	require.NoError(t, d.Store.Put(ctx, defs.ConfigKey, []byte(stored)))

	_, err := execute(t, "config", "set-separator", "_")
	assert.ErrorIs(t, err, ErrLocked)

	_, err = execute(t, "config", "unlock")
	require.NoError(t, err)

	_, err = execute(t, "config", "set-separator", "_")
	require.NoError(t, err)

	cfg, err := d.Configs.Load(ctx)
	require.NoError(t, err)
	assert.False(t, cfg.Locked)
	assert.Equal(t, "_", cfg.SeparatorCharacter)
	assert.Equal(t, "Size", cfg.Variables[0].Name)

	_, err = execute(t, "config", "lock")
	require.NoError(t, err)
	_, err = execute(t, "config", "unlock")
	require.NoError(t, err)
	_, err = execute(t, "config", "reset", "--yes")
	require.NoError(t, err)
}
