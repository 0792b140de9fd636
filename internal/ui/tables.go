package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/yunhoi129/adtax/pkg/models"
)

// maxPreviewValues limits how many values a variable row shows.
const maxPreviewValues = 3

func (t *Theme) newTable(headers ...string) *ltable.Table {
	tbl := ltable.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...)
	if !t.NoColor {
		header := lipgloss.NewStyle().Foreground(t.Colors.Primary).Bold(true).Padding(0, 1)
		cell := lipgloss.NewStyle().Padding(0, 1)
		tbl = tbl.
			BorderStyle(lipgloss.NewStyle().Foreground(t.Colors.Border)).
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == ltable.HeaderRow {
					return header
				}
				return cell
			})
	} else {
		cell := lipgloss.NewStyle().Padding(0, 1)
		tbl = tbl.StyleFunc(func(_, _ int) lipgloss.Style { return cell })
	}
	return tbl
}

// VariablesTable lists the variables of cfg in assembly order.
func VariablesTable(t *Theme, cfg models.Configuration) string {
	if len(cfg.Variables) == 0 {
		return t.Muted("No variables configured yet")
	}
	tbl := t.newTable("#", "Name", "Type", "Values", "Free input")
	for i, v := range cfg.Variables {
		free := ""
		if v.AllowFreeInput {
			free = "yes"
		}
		tbl.Row(strconv.Itoa(i+1), v.Name, v.Type.Label(), PreviewValues(v.Values), free)
	}
	return tbl.String()
}

// PreviewValues shows the first few values and how many more exist.
func PreviewValues(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	if len(values) <= maxPreviewValues {
		return strings.Join(values, ", ")
	}
	return fmt.Sprintf("%s +%d more", strings.Join(values[:maxPreviewValues], ", "), len(values)-maxPreviewValues)
}

// ConfigurationSummary renders the formatting rules of cfg.
func ConfigurationSummary(t *Theme, cfg models.Configuration) string {
	lock := "unlocked"
	if cfg.Locked {
		lock = t.Warn("locked")
	}
	return strings.Join([]string{
		t.Field("Case", string(cfg.CaseTransformation)),
		t.Field("Separator", strconv.Quote(cfg.SeparatorCharacter)),
		t.Field("Status", lock),
	}, "\n")
}

// HistoryTable lists entries newest first. limit <= 0 lists all.
func HistoryTable(t *Theme, entries []models.GeneratedNameRecord, limit int) string {
	if len(entries) == 0 {
		return t.Muted("No names generated yet")
	}
	tbl := t.newTable("#", "File name", "Created")
	shown := 0
	for i := len(entries) - 1; i >= 0; i-- {
		if limit > 0 && shown == limit {
			break
		}
		e := entries[i]
		tbl.Row(strconv.Itoa(i+1), e.FileName, FormatTimestamp(e.Timestamp))
		shown++
	}
	return tbl.String()
}

// KeysTable lists the API keys.
func KeysTable(t *Theme, keys []models.APIKey) string {
	if len(keys) == 0 {
		return t.Muted("No API keys")
	}
	tbl := t.newTable("ID", "Name", "Status", "Created", "Used")
	for _, k := range keys {
		status := string(k.Status)
		if k.Status == models.APIKeyLive {
			status = t.Success(status)
		} else {
			status = t.Muted(status)
		}
		tbl.Row(k.ID, k.Name, status, k.Created, strconv.Itoa(k.Used))
	}
	return tbl.String()
}
