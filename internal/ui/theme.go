// Package ui renders adtax output: themed cards, tables, analytics bars,
// markdown pages and the interactive history browser.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds the adaptive colours used across the CLI.
type Palette struct {
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Warn      lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
}

// DefaultPalette returns the adtax colour palette.
func DefaultPalette() Palette {
	return Palette{
		Primary:   lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"},
		Secondary: lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"},
		Success:   lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"},
		Warn:      lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"},
		Border:    lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"},
		Muted:     lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"},
	}
}

// Theme renders styled text. With NoColor set every style is plain.
type Theme struct {
	NoColor bool
	Colors  Palette
}

// NewTheme creates a Theme with the default palette.
func NewTheme(noColor bool) *Theme {
	return &Theme{NoColor: noColor, Colors: DefaultPalette()}
}

func (t *Theme) fg(c lipgloss.AdaptiveColor) lipgloss.Style {
	if t.NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(c)
}

// Title renders s as a bold primary heading.
func (t *Theme) Title(s string) string {
	return t.fg(t.Colors.Primary).Bold(true).Render(s)
}

// Muted renders s de-emphasised.
func (t *Theme) Muted(s string) string {
	return t.fg(t.Colors.Muted).Render(s)
}

// Warn renders s in the warning colour.
func (t *Theme) Warn(s string) string {
	return t.fg(t.Colors.Warn).Render(s)
}

// Success renders s in the success colour.
func (t *Theme) Success(s string) string {
	return t.fg(t.Colors.Success).Render(s)
}

func (t *Theme) cardStyle() lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)
	if !t.NoColor {
		s = s.BorderForeground(t.Colors.Border)
	}
	return s
}

// Card renders content inside a rounded border box with a styled title.
func (t *Theme) Card(title, content string) string {
	body := t.Title(title)
	if content != "" {
		body += "\n\n" + content
	}
	return t.cardStyle().Render(body)
}

// SuccessCard renders a success message inside a rounded border card.
func (t *Theme) SuccessCard(title string, details ...string) string {
	var body strings.Builder
	body.WriteString(t.Success("✓") + " " + title)
	if len(details) > 0 {
		body.WriteString("\n\n")
		body.WriteString(strings.Join(details, "\n"))
	}
	return t.cardStyle().Render(body.String())
}

// Field renders a "label: value" line with a muted label.
func (t *Theme) Field(label, value string) string {
	return t.Muted(label+":") + " " + value
}
