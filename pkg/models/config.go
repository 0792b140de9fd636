package models

import "strings"

// VariableType defines how values are chosen for a variable.
type VariableType string

const (
	// VariableDropdown selects a single value.
	VariableDropdown VariableType = "dropdown"

	// VariableMultiselect selects zero or more values.
	VariableMultiselect VariableType = "multiselect"

	// VariableText accepts arbitrary user-entered text.
	// Stored as "text" for compatibility with existing exports.
	VariableText VariableType = "text"
)

// ValidVariableTypes returns all valid variable type values.
func ValidVariableTypes() []VariableType {
	return []VariableType{VariableDropdown, VariableMultiselect, VariableText}
}

// IsValid checks if the variable type is a valid value.
func (t VariableType) IsValid() bool {
	switch t {
	case VariableDropdown, VariableMultiselect, VariableText:
		return true
	}
	return false
}

// Label returns the human-readable name of the variable type.
func (t VariableType) Label() string {
	switch t {
	case VariableDropdown:
		return "Dropdown"
	case VariableMultiselect:
		return "Multiselect"
	case VariableText:
		return "Text"
	}
	return string(t)
}

// CaseTransformation defines the case applied to an assembled file name.
type CaseTransformation string

const (
	// CaseLowercase lowercases every character.
	CaseLowercase CaseTransformation = "lowercase"

	// CaseUppercase uppercases every character.
	CaseUppercase CaseTransformation = "uppercase"

	// CaseUnchanged leaves the assembled name as selected.
	CaseUnchanged CaseTransformation = "unchanged"
)

// ValidCaseTransformations returns all valid case transformation values.
func ValidCaseTransformations() []CaseTransformation {
	return []CaseTransformation{CaseLowercase, CaseUppercase, CaseUnchanged}
}

// IsValid checks if the case transformation is a valid value.
func (c CaseTransformation) IsValid() bool {
	switch c {
	case CaseLowercase, CaseUppercase, CaseUnchanged:
		return true
	}
	return false
}

// Variable is a named, typed category contributing one segment to a name.
type Variable struct {
	Name           string       `json:"name"`
	Type           VariableType `json:"type"`
	Values         []string     `json:"values"`
	Description    string       `json:"description,omitempty"`
	AllowFreeInput bool         `json:"allowFreeInput,omitempty"`
}

// Clone returns a deep copy of the variable.
func (v Variable) Clone() Variable {
	out := v
	if v.Values != nil {
		out.Values = append([]string{}, v.Values...)
	}
	return out
}

// Configuration is the full set of variables plus formatting rules.
// Variable order defines the segment order of assembled names.
type Configuration struct {
	Variables          []Variable         `json:"variables"`
	CaseTransformation CaseTransformation `json:"caseTransformation"`
	SeparatorCharacter string             `json:"separatorCharacter"`
	Locked             bool               `json:"locked"`
}

// Clone returns a deep copy of the configuration.
func (c Configuration) Clone() Configuration {
	out := c
	if c.Variables != nil {
		out.Variables = make([]Variable, len(c.Variables))
		for i, v := range c.Variables {
			out.Variables[i] = v.Clone()
		}
	}
	return out
}

// VariableIndex returns the index of the variable with the given name,
// preferring an exact match over a case-insensitive one. It returns -1
// when no variable matches.
func (c Configuration) VariableIndex(name string) int {
	for i, v := range c.Variables {
		if v.Name == name {
			return i
		}
	}
	for i, v := range c.Variables {
		if strings.EqualFold(v.Name, name) {
			return i
		}
	}
	return -1
}

// Selection maps a variable name to the value(s) chosen for it.
type Selection map[string][]string

// VariationKey is the reserved selection key for the trailing version token.
const VariationKey = "variation"

// Lookup returns the values selected for name, preferring an exact key
// over a case-insensitive one. When several keys differ only in case the
// lexically smallest one wins so lookups stay deterministic.
func (s Selection) Lookup(name string) ([]string, bool) {
	if vals, ok := s[name]; ok {
		return vals, true
	}
	var (
		found   bool
		bestKey string
	)
	for k := range s {
		if strings.EqualFold(k, name) && (!found || k < bestKey) {
			bestKey = k
			found = true
		}
	}
	if !found {
		return nil, false
	}
	return s[bestKey], true
}
