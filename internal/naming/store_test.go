package naming

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/yunhoi129/adtax/internal/defs"
	"github.com/yunhoi129/adtax/internal/storage"
	"github.com/yunhoi129/adtax/pkg/models"
)

func newTestStore(t *testing.T) (*ConfigStore, *storage.MemoryStore, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.WarnLevel)
	mem := storage.NewMemoryStore()
	return NewConfigStore(mem, zap.New(core)), mem, logs
}

func TestLoadMissingReturnsDefault(t *testing.T) {
	t.Parallel()

	cs, _, logs := newTestStore(t)
	cfg, err := cs.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfiguration(), cfg)
	assert.Zero(t, logs.Len())
}

func TestLoadCorruptReturnsDefault(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"{not json", "null", "", `"a string"`, `[1,2]`} {
		t.Run(raw, func(t *testing.T) {
			t.Parallel()
			cs, mem, logs := newTestStore(t)
			require.NoError(t, mem.Put(context.Background(), defs.ConfigKey, []byte(raw)))

			cfg, err := cs.Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, DefaultConfiguration(), cfg)
			require.Equal(t, 1, logs.Len())

			entry := logs.All()[0]
			assert.Equal(t, zapcore.WarnLevel, entry.Level)
			assert.Contains(t, entry.ContextMap()["error"], "load adtax-config")
		})
	}
}

func TestLoadDoesNotValidate(t *testing.T) {
	t.Parallel()

	cs, mem, _ := newTestStore(t)
	stored := `{"variables":[{"name":"","type":"weird","values":null}],"caseTransformation":"title","separatorCharacter":"--","locked":true}`
	require.NoError(t, mem.Put(context.Background(), defs.ConfigKey, []byte(stored)))

	cfg, err := cs.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.CaseTransformation("title"), cfg.CaseTransformation)
	assert.Equal(t, "--", cfg.SeparatorCharacter)
	assert.True(t, cfg.Locked)
	require.Len(t, cfg.Variables, 1)
	assert.Equal(t, []string{}, cfg.Variables[0].Values)
}

func TestSaveAndLoad(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cs, _, _ := newTestStore(t)

	cfg := DefaultConfiguration()
	cfg.SeparatorCharacter = "-"
	cfg.Locked = true
	require.NoError(t, cs.Save(ctx, cfg))

	got, err := cs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestSaveRejectsInvalid(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cs, mem, _ := newTestStore(t)

	cfg := DefaultConfiguration()
	cfg.SeparatorCharacter = ""
	err := cs.Save(ctx, cfg)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = mem.Get(ctx, defs.ConfigKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestReset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cs, mem, _ := newTestStore(t)

	cfg := DefaultConfiguration()
	cfg.CaseTransformation = models.CaseUppercase
	require.NoError(t, cs.Save(ctx, cfg))

	got, err := cs.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfiguration(), got)

	_, err = mem.Get(ctx, defs.ConfigKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestExportFormat(t *testing.T) {
	t.Parallel()

	cfg := models.Configuration{
		Variables:          []models.Variable{{Name: "Size", Type: models.VariableMultiselect}},
		CaseTransformation: models.CaseLowercase,
		SeparatorCharacter: "_",
	}
	data, err := Export(cfg)
	require.NoError(t, err)

	want := `{
  "variables": [
    {
      "name": "Size",
      "type": "multiselect",
      "values": []
    }
  ],
  "caseTransformation": "lowercase",
  "separatorCharacter": "_",
  "locked": false
}
`
	assert.Equal(t, want, string(data))
}

func TestImport(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cs, _, _ := newTestStore(t)

	original := DefaultConfiguration()
	original.SeparatorCharacter = "."
	require.NoError(t, cs.Save(ctx, original))

	tests := []struct {
		name string
		data string
	}{
		{"malformed", "{"},
		{"empty", ""},
		{"invalid separator", `{"variables":[],"caseTransformation":"lowercase","separatorCharacter":"ab","locked":false}`},
		{"duplicate names", `{"variables":[{"name":"A","type":"text","values":[]},{"name":"a","type":"text","values":[]}],"caseTransformation":"lowercase","separatorCharacter":"_"}`},
		{"bad type", `{"variables":[{"name":"A","type":"free-text","values":[]}],"caseTransformation":"lowercase","separatorCharacter":"_"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cs.Import(ctx, []byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrImport)

			var ie *ImportError
			assert.True(t, errors.As(err, &ie))

			got, err := cs.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, original, got, "stored configuration untouched")
		})
	}

	replacement := `{"variables":[{"name":"Client","type":"text","values":[],"allowFreeInput":true}],"caseTransformation":"unchanged","separatorCharacter":"-","locked":false}`
	got, err := cs.Import(ctx, []byte(replacement))
	require.NoError(t, err)
	assert.Equal(t, "Client", got.Variables[0].Name)

	loaded, err := cs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, got, loaded)
}

func TestImportIgnoresUnknownFields(t *testing.T) {
	t.Parallel()

	cs, _, _ := newTestStore(t)
	data := `{"variables":[],"caseTransformation":"lowercase","separatorCharacter":"_","theme":"dark"}`
	cfg, err := cs.Import(context.Background(), []byte(data))
	require.NoError(t, err)
	assert.Empty(t, cfg.Variables)
}

func TestStoredRecordIsCompactJSON(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cs, mem, _ := newTestStore(t)
	require.NoError(t, cs.Save(ctx, DefaultConfiguration()))

	raw, err := mem.Get(ctx, defs.ConfigKey)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(raw), "\n"))

	var decoded models.Configuration
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, DefaultConfiguration(), decoded)
}

func TestExportImportRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := genConfiguration(t)
		cs := NewConfigStore(storage.NewMemoryStore(), nil)

		data, err := cs.Export(cfg)
		if err != nil {
			t.Fatalf("export: %v", err)
		}
		got, err := cs.Import(context.Background(), data)
		if err != nil {
			t.Fatalf("import: %v", err)
		}
		if want := normalize(cfg); !assert.ObjectsAreEqual(want, got) {
			t.Fatalf("round trip mismatch:\nwant %#v\n got %#v", want, got)
		}
	})
}

func TestSetLockedKeepsInvalidRecord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cs, mem, _ := newTestStore(t)
	stored := `{"variables":[{"name":"Size","type":"dropdown","values":["1x1"]}],"caseTransformation":"lowercase","separatorCharacter":"","locked":true}`
	require.NoError(t, mem.Put(ctx, defs.ConfigKey, []byte(stored)))

	cfg, err := cs.SetLocked(ctx, false)
	require.NoError(t, err)
	assert.False(t, cfg.Locked)
	assert.Equal(t, "", cfg.SeparatorCharacter)

	loaded, err := cs.Load(ctx)
	require.NoError(t, err)
	assert.False(t, loaded.Locked)
	assert.Equal(t, "", loaded.SeparatorCharacter)
	assert.Equal(t, []string{"1x1"}, loaded.Variables[0].Values)

	cfg, err = cs.SetLocked(ctx, true)
	require.NoError(t, err)
	assert.True(t, cfg.Locked)
}
