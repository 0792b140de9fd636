package models

import "strings"

// MetadataField names one category recorded in a history entry.
type MetadataField string

const (
	FieldSize          MetadataField = "size"
	FieldPersona       MetadataField = "persona"
	FieldFunnel        MetadataField = "funnel"
	FieldArchetype     MetadataField = "archetype"
	FieldHook          MetadataField = "hook"
	FieldAdDescription MetadataField = "adDescription"
	FieldCTA           MetadataField = "cta"
	FieldStyle         MetadataField = "style"
	FieldVariation     MetadataField = "variation"
)

// AnalyticsFields returns the fields counted by the analytics view, in
// display order.
func AnalyticsFields() []MetadataField {
	return []MetadataField{
		FieldSize, FieldPersona, FieldFunnel, FieldArchetype,
		FieldHook, FieldCTA, FieldStyle,
	}
}

// Title returns the display title of the field.
func (f MetadataField) Title() string {
	switch f {
	case FieldSize:
		return "Size"
	case FieldPersona:
		return "Persona"
	case FieldFunnel:
		return "Funnel"
	case FieldArchetype:
		return "Archetype"
	case FieldHook:
		return "Hook"
	case FieldAdDescription:
		return "Ad Description"
	case FieldCTA:
		return "CTA"
	case FieldStyle:
		return "Style"
	case FieldVariation:
		return "Variation"
	}
	return string(f)
}

// metadataAliases maps normalized variable names to metadata fields.
var metadataAliases = map[string]MetadataField{
	"size":          FieldSize,
	"format":        FieldSize,
	"persona":       FieldPersona,
	"funnel":        FieldFunnel,
	"funnelstage":   FieldFunnel,
	"archetype":     FieldArchetype,
	"hook":          FieldHook,
	"addescription": FieldAdDescription,
	"description":   FieldAdDescription,
	"cta":           FieldCTA,
	"offer":         FieldCTA,
	"style":         FieldStyle,
	"variation":     FieldVariation,
	"version":       FieldVariation,
}

// MetadataFieldFor maps a variable name to the metadata field it records.
// Matching ignores case, spaces, underscores and hyphens. Variables that
// map to no known field are not recorded.
func MetadataFieldFor(variableName string) (MetadataField, bool) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, strings.ToLower(variableName))
	f, ok := metadataAliases[key]
	return f, ok
}

// Metadata is the typed record of selected values stored with a history
// entry. Unknown keys in stored JSON are ignored on decode.
type Metadata struct {
	Size          string `json:"size"`
	Persona       string `json:"persona"`
	Funnel        string `json:"funnel"`
	Archetype     string `json:"archetype"`
	Hook          string `json:"hook"`
	AdDescription string `json:"adDescription"`
	CTA           string `json:"cta"`
	Style         string `json:"style"`
	Variation     string `json:"variation"`
}

// Get returns the value stored for the field.
func (m Metadata) Get(f MetadataField) string {
	if p := m.field(f); p != nil {
		return *p
	}
	return ""
}

// Set stores a value for the field. It reports false for unknown fields.
func (m *Metadata) Set(f MetadataField, value string) bool {
	p := m.field(f)
	if p == nil {
		return false
	}
	*p = value
	return true
}

func (m *Metadata) field(f MetadataField) *string {
	switch f {
	case FieldSize:
		return &m.Size
	case FieldPersona:
		return &m.Persona
	case FieldFunnel:
		return &m.Funnel
	case FieldArchetype:
		return &m.Archetype
	case FieldHook:
		return &m.Hook
	case FieldAdDescription:
		return &m.AdDescription
	case FieldCTA:
		return &m.CTA
	case FieldStyle:
		return &m.Style
	case FieldVariation:
		return &m.Variation
	}
	return nil
}

// GeneratedNameRecord is one immutable history entry.
type GeneratedNameRecord struct {
	FileName string   `json:"fileName"`
	Metadata Metadata `json:"metadata"`
	// Timestamp is the creation time in Unix milliseconds.
	Timestamp int64 `json:"timestamp"`
}
