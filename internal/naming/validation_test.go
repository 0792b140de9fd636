package naming

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunhoi129/adtax/pkg/models"
)

func TestDefaultConfiguration(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfiguration()
	require.NoError(t, Validate(cfg))

	names := make([]string, len(cfg.Variables))
	for i, v := range cfg.Variables {
		names[i] = v.Name
	}
	assert.Equal(t, []string{"Size", "Persona", "Funnel", "Archetype", "Hook", "CTA", "Style"}, names)
	assert.Equal(t, models.VariableMultiselect, cfg.Variables[0].Type)
	assert.Len(t, cfg.Variables[3].Values, 15)
	assert.Equal(t, models.CaseLowercase, cfg.CaseTransformation)
	assert.Equal(t, "_", cfg.SeparatorCharacter)
	assert.False(t, cfg.Locked)

	cfg.Variables[0].Values[0] = "mutated"
	assert.Equal(t, "9x16", DefaultConfiguration().Variables[0].Values[0])
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mutate     func(*models.Configuration)
		wantFields []string
	}{
		{"valid", func(*models.Configuration) {}, nil},
		{"no variables", func(c *models.Configuration) { c.Variables = nil }, nil},
		{"blank name", func(c *models.Configuration) { c.Variables[2].Name = "  " }, []string{"variables[2].name"}},
		{"duplicate name", func(c *models.Configuration) { c.Variables[3].Name = "persona " }, []string{"variables[3].name"}},
		{"bad type", func(c *models.Configuration) { c.Variables[0].Type = "select" }, []string{"variables[0].type"}},
		{"bad case", func(c *models.Configuration) { c.CaseTransformation = "" }, []string{"caseTransformation"}},
		{"empty separator", func(c *models.Configuration) { c.SeparatorCharacter = "" }, []string{"separatorCharacter"}},
		{"long separator", func(c *models.Configuration) { c.SeparatorCharacter = "__" }, []string{"separatorCharacter"}},
		{
			"collects all",
			func(c *models.Configuration) {
				c.Variables[0].Name = ""
				c.SeparatorCharacter = ""
			},
			[]string{"variables[0].name", "separatorCharacter"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfiguration()
			tt.mutate(&cfg)

			err := Validate(cfg)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			var verrs *ValidationErrors
			require.True(t, errors.As(err, &verrs))
			var fields []string
			for _, e := range verrs.Errors {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}

func TestValidateBlankNameWrapsEmptyLabel(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfiguration()
	cfg.Variables[0].Name = ""
	assert.ErrorIs(t, Validate(cfg), ErrEmptyLabel)
}
