package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunhoi129/adtax/internal/apikey"
	"github.com/yunhoi129/adtax/internal/ui"
	"github.com/yunhoi129/adtax/pkg/models"
)

func recordNames(t *testing.T, d *testDeps, sizes ...string) {
	t.Helper()
	ctx := context.Background()
	for i, s := range sizes {
		var md models.Metadata
		md.Set(models.FieldSize, s)
		require.NoError(t, d.History.Record(ctx, models.GeneratedNameRecord{
			FileName:  s + "_v" + string(rune('1'+i)),
			Metadata:  md,
			Timestamp: time.Date(2025, 11, 21, 10, i, 0, 0, time.UTC).UnixMilli(),
		}))
	}
}

func TestHistoryList(t *testing.T) {
	d := newTestDeps(t)
	recordNames(t, d, "16x9", "1x1", "4x5")

	out, err := execute(t, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "16x9_v1")
	assert.Contains(t, out, "4x5_v3")
	assert.Less(t, strings.Index(out, "4x5_v3"), strings.Index(out, "16x9_v1"), "newest first")

	out, err = execute(t, "history", "list", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "4x5_v3")
	assert.NotContains(t, out, "16x9_v1")
}

func TestHistoryList_Empty(t *testing.T) {
	newTestDeps(t)

	out, err := execute(t, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No names generated yet")
}

func TestHistoryList_BrowseNeedsTerminal(t *testing.T) {
	newTestDeps(t)

	_, err := execute(t, "history", "list", "--browse")
	assert.ErrorIs(t, err, errBrowseNeedsTerminal)
}

func TestHistoryClear(t *testing.T) {
	d := newTestDeps(t)
	recordNames(t, d, "16x9")

	_, err := execute(t, "history", "clear")
	assert.ErrorIs(t, err, errConfirmRequired)

	_, err = execute(t, "history", "clear", "--yes")
	require.NoError(t, err)

	entries, err := d.History.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStats(t *testing.T) {
	d := newTestDeps(t)
	recordNames(t, d, "16x9", "16x9", "1x1", "16x9")

	out, err := execute(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, ui.StatsTitle)
	assert.Contains(t, out, "By Size")
	assert.Contains(t, out, "3 (75.0%)")
	assert.Contains(t, out, "1 (25.0%)")
}

func TestStats_Empty(t *testing.T) {
	newTestDeps(t)

	out, err := execute(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "No names generated yet")
}

func TestKeys(t *testing.T) {
	d := newTestDeps(t)
	ctx := context.Background()

	out, err := execute(t, "keys", "list")
	require.NoError(t, err)
	assert.Contains(t, out, apikey.SeedKey().ID)

	_, err = execute(t, "keys", "create")
	require.NoError(t, err)
	keys, err := d.Keys.List(ctx)
	require.NoError(t, err)
	require.Len(t, keys, 2)
	created := keys[1]
	assert.True(t, strings.HasPrefix(created.ID, "key_"))

	_, err = execute(t, "keys", "revoke", created.ID)
	require.NoError(t, err)
	keys, err = d.Keys.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.APIKeyRevoked, keys[1].Status)

	_, err = execute(t, "keys", "delete", created.ID)
	require.NoError(t, err)
	keys, err = d.Keys.List(ctx)
	require.NoError(t, err)
	assert.Len(t, keys, 1)

	_, err = execute(t, "keys", "revoke", "key_missing")
	assert.ErrorIs(t, err, apikey.ErrKeyNotFound)
}

func TestAbout(t *testing.T) {
	newTestDeps(t)

	out, err := execute(t, "about")
	require.NoError(t, err)
	assert.Contains(t, out, "adtax")
	assert.Contains(t, out, "multiselect")

	out, err = execute(t, "about", "--example")
	require.NoError(t, err)
	assert.Contains(t, out, "16x9_creator_cold_demo_curiosity_free_trial_v1")
}
