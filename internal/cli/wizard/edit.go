package wizard

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/yunhoi129/adtax/internal/naming"
	"github.com/yunhoi129/adtax/pkg/models"
)

// RunEdit shows the variable edit dialog prefilled from edit and returns
// the edited form. Cancelling returns ErrCancelled and the caller keeps
// its previous state.
func RunEdit(edit naming.VariableEdit) (naming.VariableEdit, error) {
	out := edit
	form := huh.NewForm(huh.NewGroup(editFields(&out)...).
		Title("Edit Variable").
		Description("Update variable configuration")).
		WithTheme(newAdtaxTheme()).
		WithAccessible(false)
	if err := runFormErr(form); err != nil {
		return edit, err
	}
	return out, nil
}

func editFields(e *naming.VariableEdit) []huh.Field {
	types := models.ValidVariableTypes()
	opts := make([]huh.Option[models.VariableType], len(types))
	for i, t := range types {
		opts[i] = huh.NewOption(t.Label(), t)
	}

	return []huh.Field{
		huh.NewInput().
			Title("Label").
			Placeholder("Variable name").
			Value(&e.Label).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("label is required")
				}
				return nil
			}),
		huh.NewSelect[models.VariableType]().
			Title("Type").
			Options(opts...).
			Value(&e.Type),
		huh.NewText().
			Title("Values (comma-separated)").
			Description("Enter values separated by commas").
			Value(&e.Values),
		huh.NewConfirm().
			Title("Allow free input").
			Value(&e.AllowFreeInput),
	}
}

// Confirm asks a yes/no question. Cancelling counts as no.
func Confirm(title, description string) (bool, error) {
	ok := false
	c := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&ok)
	if err := runField(c, newAdtaxTheme()); err != nil {
		if errors.Is(err, ErrCancelled) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}
