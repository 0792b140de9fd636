package naming

import (
	"fmt"
	"strings"

	"github.com/yunhoi129/adtax/pkg/models"
)

// NewVariableName is the name given to variables created by AddVariable.
const NewVariableName = "New Variable"

// VariableEdit is the editable form of a variable: what the edit dialog
// receives and returns. Values holds comma-separated text.
type VariableEdit struct {
	Label          string
	Type           models.VariableType
	Values         string
	AllowFreeInput bool
}

// EditFor returns the edit form of v.
func EditFor(v models.Variable) VariableEdit {
	t := v.Type
	if !t.IsValid() {
		t = models.VariableDropdown
	}
	return VariableEdit{
		Label:          v.Name,
		Type:           t,
		Values:         strings.Join(v.Values, ", "),
		AllowFreeInput: v.AllowFreeInput,
	}
}

// ApplyEdit returns v updated from e. A blank label yields ErrEmptyLabel
// and v is returned unchanged. The description is kept.
func ApplyEdit(v models.Variable, e VariableEdit) (models.Variable, error) {
	label := strings.TrimSpace(e.Label)
	if label == "" {
		return v, &ValidationError{
			Field:   "label",
			Message: "label is required",
			Wrapped: ErrEmptyLabel,
		}
	}
	if !e.Type.IsValid() {
		return v, &ValidationError{
			Field:   "type",
			Message: fmt.Sprintf("must be one of: %s", typeStrings()),
			Value:   string(e.Type),
			Wrapped: ErrInvalidConfiguration,
		}
	}
	return models.Variable{
		Name:           label,
		Type:           e.Type,
		Values:         SplitValues(e.Values),
		Description:    v.Description,
		AllowFreeInput: e.AllowFreeInput,
	}, nil
}

// SplitValues splits comma-separated text into trimmed, non-blank values.
func SplitValues(text string) []string {
	out := []string{}
	for _, part := range strings.Split(text, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// AddVariable returns a copy of cfg with an empty dropdown appended.
func AddVariable(cfg models.Configuration) models.Configuration {
	out := cfg.Clone()
	out.Variables = append(out.Variables, models.Variable{
		Name:   NewVariableName,
		Type:   models.VariableDropdown,
		Values: []string{},
	})
	return out
}

// DeleteVariable returns a copy of cfg without the variable at index.
func DeleteVariable(cfg models.Configuration, index int) (models.Configuration, error) {
	if index < 0 || index >= len(cfg.Variables) {
		return cfg, fmt.Errorf("%w: %d", ErrVariableIndex, index)
	}
	out := cfg.Clone()
	out.Variables = append(out.Variables[:index], out.Variables[index+1:]...)
	return out, nil
}

// UpdateVariable returns a copy of cfg with the variable at index replaced.
func UpdateVariable(cfg models.Configuration, index int, v models.Variable) (models.Configuration, error) {
	if index < 0 || index >= len(cfg.Variables) {
		return cfg, fmt.Errorf("%w: %d", ErrVariableIndex, index)
	}
	out := cfg.Clone()
	out.Variables[index] = v.Clone()
	return out, nil
}

// SetCaseTransformation returns a copy of cfg using ct.
func SetCaseTransformation(cfg models.Configuration, ct models.CaseTransformation) (models.Configuration, error) {
	if !ct.IsValid() {
		return cfg, &ValidationError{
			Field:   "caseTransformation",
			Message: fmt.Sprintf("must be one of: %s", caseStrings()),
			Value:   string(ct),
			Wrapped: ErrInvalidConfiguration,
		}
	}
	out := cfg.Clone()
	out.CaseTransformation = ct
	return out, nil
}

// SetSeparator returns a copy of cfg using sep, which must be one character.
func SetSeparator(cfg models.Configuration, sep string) (models.Configuration, error) {
	if err := validateSeparator(sep); err != nil {
		return cfg, err
	}
	out := cfg.Clone()
	out.SeparatorCharacter = sep
	return out, nil
}

// ParseSelection parses "Name=v1,v2" assignments into a Selection.
// Repeating a name appends to its values.
func ParseSelection(assignments []string) (models.Selection, error) {
	sel := models.Selection{}
	for _, a := range assignments {
		name, vals, ok := strings.Cut(a, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid selection %q: want Name=value[,value]", a)
		}
		sel[name] = append(sel[name], SplitValues(vals)...)
	}
	return sel, nil
}
