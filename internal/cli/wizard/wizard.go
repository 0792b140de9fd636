package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/yunhoi129/adtax/internal/naming"
	"github.com/yunhoi129/adtax/pkg/models"
)

// runForm runs a form. Tests replace it to avoid a terminal.
var runForm = func(f *huh.Form) error { return f.Run() }

// answer collects the raw values bound to a question's fields.
type answer struct {
	single string
	multi  []string
	text   string
	other  string
}

// Run asks every question and returns the answers as a selection keyed by
// question ID. Each question runs as its own huh.Form to avoid the huh
// v0.8.x YOffset scroll bug that occurs when multiple groups share a single
// viewport. Skipped questions are absent from the result.
func Run(questions []Question) (models.Selection, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	theme := newAdtaxTheme()
	sel := models.Selection{}

	for i := range questions {
		q := &questions[i]
		ans := &answer{}

		if err := runField(buildField(q, ans), theme); err != nil {
			return nil, err
		}
		if needsOther(q, ans) {
			if err := runField(buildOtherField(q, ans), theme); err != nil {
				return nil, err
			}
		}
		if vals := resolve(q, ans); len(vals) > 0 {
			sel[q.ID] = vals
		}
	}
	return sel, nil
}

func runField(field huh.Field, theme *huh.Theme) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(theme).
		WithAccessible(false)
	return runFormErr(form)
}

func runFormErr(form *huh.Form) error {
	if err := runForm(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("wizard error: %w", err)
	}
	return nil
}

// buildField creates the primary field for q, bound to ans.
func buildField(q *Question, ans *answer) huh.Field {
	switch q.Type {
	case QuestionTypeSelect:
		opts := make([]huh.Option[string], 0, len(q.Options)+2)
		for _, o := range q.Options {
			opts = append(opts, huh.NewOption(o.Label, o.Value))
		}
		if q.AllowOther {
			opts = append(opts, huh.NewOption("Other…", otherValue))
		}
		if q.Optional {
			opts = append(opts, huh.NewOption("(none)", skipValue))
		}
		return huh.NewSelect[string]().
			Title(q.Title).
			Description(q.Description).
			Options(opts...).
			Value(&ans.single)

	case QuestionTypeMultiSelect:
		opts := make([]huh.Option[string], len(q.Options))
		for i, o := range q.Options {
			opts[i] = huh.NewOption(o.Label, o.Value)
		}
		ms := huh.NewMultiSelect[string]().
			Title(q.Title).
			Description(q.Description).
			Options(opts...).
			Value(&ans.multi)
		if !q.Optional {
			ms = ms.Validate(func(v []string) error {
				if len(v) == 0 && !q.AllowOther {
					return errors.New("select at least one value")
				}
				return nil
			})
		}
		return ms

	default:
		inp := huh.NewInput().
			Title(q.Title).
			Description(q.Description).
			Value(&ans.text)
		if len(q.Options) > 0 {
			suggestions := make([]string, len(q.Options))
			for i, o := range q.Options {
				suggestions[i] = o.Value
			}
			inp = inp.Suggestions(suggestions)
		}
		if !q.Optional {
			inp = inp.Validate(requireText)
		}
		return inp
	}
}

// needsOther reports whether a follow-up free text field is asked.
func needsOther(q *Question, ans *answer) bool {
	switch q.Type {
	case QuestionTypeSelect:
		return ans.single == otherValue
	case QuestionTypeMultiSelect:
		return q.AllowOther
	}
	return false
}

func buildOtherField(q *Question, ans *answer) huh.Field {
	inp := huh.NewInput().Value(&ans.other)
	if q.Type == QuestionTypeMultiSelect {
		return inp.
			Title(q.Title + ": other values").
			Description("Comma-separated, leave empty for none")
	}
	return inp.
		Title(q.Title + ": other").
		Validate(requireText)
}

// resolve turns the bound values of q into its selected values.
func resolve(q *Question, ans *answer) []string {
	switch q.Type {
	case QuestionTypeSelect:
		switch ans.single {
		case "", skipValue:
			return nil
		case otherValue:
			if v := strings.TrimSpace(ans.other); v != "" {
				return []string{v}
			}
			return nil
		}
		return []string{ans.single}

	case QuestionTypeMultiSelect:
		out := append([]string{}, ans.multi...)
		out = append(out, naming.SplitValues(ans.other)...)
		if len(out) == 0 {
			return nil
		}
		return out

	default:
		if v := strings.TrimSpace(ans.text); v != "" {
			return []string{v}
		}
		return nil
	}
}

func requireText(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("a value is required")
	}
	return nil
}

// newAdtaxTheme creates a huh.Theme with the adtax brand colours.
func newAdtaxTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: ColorPrimary}
	secondary := lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: ColorSecondary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: ColorSuccess}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: ColorText}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ColorMuted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ColorBorder}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(text)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})
	t.Focused.Next = t.Focused.FocusedButton

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
