package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/yunhoi129/adtax/internal/history"
)

// StatsTitle heads the analytics view.
const StatsTitle = "Ad Mix Analytics"

const (
	minBarWidth = 10
	maxBarWidth = 40
)

// RenderStats renders the analytics summary: the total and one ranked
// breakdown per field, each value with a proportional bar.
func RenderStats(t *Theme, s history.Summary, width int) string {
	if s.Total == 0 {
		return t.Card(StatsTitle, "No names generated yet. Run "+t.Title("adtax generate")+" to start tracking your ad mix.")
	}

	var b strings.Builder
	b.WriteString(t.Field("Total generated", fmt.Sprintf("%d", s.Total)))

	for _, bd := range s.Breakdowns {
		b.WriteString("\n\n")
		b.WriteString(t.Title(bd.Title))
		if len(bd.Rows) == 0 {
			b.WriteString("\n" + t.Muted("No data"))
			continue
		}

		labelWidth := 0
		for _, r := range bd.Rows {
			labelWidth = max(labelWidth, lipgloss.Width(r.Value))
		}
		bar := newBar(t, barWidth(width, labelWidth))
		label := lipgloss.NewStyle().Width(labelWidth)

		for _, r := range bd.Rows {
			b.WriteString("\n")
			b.WriteString(label.Render(r.Value))
			b.WriteString("  ")
			b.WriteString(bar.ViewAs(r.Percent / 100))
			b.WriteString(fmt.Sprintf("  %d (%.1f%%)", r.Count, r.Percent))
		}
	}
	return t.Card(StatsTitle, b.String())
}

func newBar(t *Theme, width int) progress.Model {
	opts := []progress.Option{
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	}
	if t.NoColor {
		opts = append(opts, progress.WithFillCharacters('#', '.'), progress.WithColorProfile(termenv.Ascii))
	} else {
		opts = append(opts, progress.WithGradient(t.Colors.Primary.Dark, t.Colors.Secondary.Dark))
	}
	return progress.New(opts...)
}

// barWidth fits the bar beside the label and the count column inside the
// card's border and padding.
func barWidth(total, labelWidth int) int {
	if total <= 0 {
		return maxBarWidth
	}
	const chrome = 6 + 2 + 2 + 14
	return min(maxBarWidth, max(minBarWidth, total-chrome-labelWidth))
}
