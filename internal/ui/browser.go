package ui

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yunhoi129/adtax/pkg/models"
)

// TimeLayout formats history timestamps.
const TimeLayout = "2006-01-02 15:04"

// HistoryBrowser is a scrollable table of generated names, newest first.
// Enter picks the highlighted name; q or esc leaves without a pick.
type HistoryBrowser struct {
	theme  *Theme
	table  table.Model
	names  []string
	chosen string
	done   bool
}

// NewHistoryBrowser builds the browser model for entries.
func NewHistoryBrowser(t *Theme, entries []models.GeneratedNameRecord, height int) HistoryBrowser {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "File name", Width: 48},
		{Title: "Created", Width: 16},
	}

	rows := make([]table.Row, 0, len(entries))
	names := make([]string, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			e.FileName,
			FormatTimestamp(e.Timestamp),
		})
		names = append(names, e.FileName)
	}

	if height <= 0 {
		height = 10
	}
	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(height, max(len(rows), 1))),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	if t.NoColor {
		styles.Selected = styles.Selected.UnsetForeground().UnsetBackground().Reverse(true)
	} else {
		styles.Header = styles.Header.BorderForeground(t.Colors.Border)
		styles.Selected = styles.Selected.Foreground(lipgloss.Color("#FFFFFF")).Background(t.Colors.Primary)
	}
	tbl.SetStyles(styles)

	return HistoryBrowser{theme: t, table: tbl, names: names}
}

// Init implements tea.Model.
func (m HistoryBrowser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m HistoryBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.done = true
			return m, tea.Quit
		case "enter":
			if c := m.table.Cursor(); c >= 0 && c < len(m.names) {
				m.chosen = m.names[c]
			}
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m HistoryBrowser) View() string {
	if m.done {
		return ""
	}
	if len(m.names) == 0 {
		return m.theme.Card("History", "No names generated yet.") + "\n"
	}
	help := m.theme.Muted("↑/↓ move • enter pick • q quit")
	return m.theme.Card(fmt.Sprintf("History (%d)", len(m.names)), m.table.View()+"\n\n"+help) + "\n"
}

// Chosen returns the picked file name, or "" when the browser was left
// without a pick.
func (m HistoryBrowser) Chosen() string {
	return m.chosen
}

// RunHistoryBrowser runs the browser until the user picks a name or quits.
func RunHistoryBrowser(ctx context.Context, m HistoryBrowser, in io.Reader, out io.Writer) (string, error) {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("history browser: %w", err)
	}
	hb, ok := final.(HistoryBrowser)
	if !ok {
		return "", nil
	}
	return hb.Chosen(), nil
}

// FormatTimestamp renders a Unix millisecond timestamp in local time.
func FormatTimestamp(ms int64) string {
	return time.UnixMilli(ms).Local().Format(TimeLayout)
}
