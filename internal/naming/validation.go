package naming

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yunhoi129/adtax/pkg/models"
)

// Validate checks a configuration before it is saved or imported.
// Variable names must be non-blank and unique ignoring case, because
// selections fall back to case-insensitive lookup. Loading never
// validates: whatever parses is used as stored.
func Validate(cfg models.Configuration) error {
	var errs []ValidationError

	errs = append(errs, validateVariables(cfg.Variables)...)

	if !cfg.CaseTransformation.IsValid() {
		errs = append(errs, ValidationError{
			Field:   "caseTransformation",
			Message: fmt.Sprintf("must be one of: %s", caseStrings()),
			Value:   string(cfg.CaseTransformation),
			Wrapped: ErrInvalidConfiguration,
		})
	}
	if err := validateSeparator(cfg.SeparatorCharacter); err != nil {
		errs = append(errs, *err)
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

func validateVariables(vars []models.Variable) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]int, len(vars))

	for i, v := range vars {
		field := fmt.Sprintf("variables[%d]", i)
		name := strings.ToLower(strings.TrimSpace(v.Name))
		if name == "" {
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Message: "name is required",
				Wrapped: ErrEmptyLabel,
			})
		} else if prev, dup := seen[name]; dup {
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Message: fmt.Sprintf("duplicates variables[%d]", prev),
				Value:   v.Name,
				Wrapped: ErrInvalidConfiguration,
			})
		} else {
			seen[name] = i
		}

		if !v.Type.IsValid() {
			errs = append(errs, ValidationError{
				Field:   field + ".type",
				Message: fmt.Sprintf("must be one of: %s", typeStrings()),
				Value:   string(v.Type),
				Wrapped: ErrInvalidConfiguration,
			})
		}
	}
	return errs
}

func validateSeparator(sep string) *ValidationError {
	if utf8.RuneCountInString(sep) == 1 {
		return nil
	}
	return &ValidationError{
		Field:   "separatorCharacter",
		Message: "must be exactly one character",
		Value:   sep,
		Wrapped: ErrInvalidConfiguration,
	}
}

func caseStrings() string {
	var parts []string
	for _, c := range models.ValidCaseTransformations() {
		parts = append(parts, string(c))
	}
	return strings.Join(parts, ", ")
}

func typeStrings() string {
	var parts []string
	for _, t := range models.ValidVariableTypes() {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ", ")
}
