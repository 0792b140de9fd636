package naming

import "github.com/yunhoi129/adtax/pkg/models"

// Default formatting values.
const (
	DefaultCaseTransformation = models.CaseLowercase
	DefaultSeparator          = "_"
)

// DefaultConfiguration returns a fresh copy of the built-in configuration.
func DefaultConfiguration() models.Configuration {
	return models.Configuration{
		Variables: []models.Variable{
			{Name: "Size", Type: models.VariableMultiselect, Values: []string{"9x16", "4x5", "1x1", "9x16_video", "1x1_video"}},
			{Name: "Persona", Type: models.VariableDropdown, Values: []string{"CREATOR", "AGENCY", "BUSINESS"}},
			{Name: "Funnel", Type: models.VariableDropdown, Values: []string{"COLD", "WARM", "HOT"}},
			{Name: "Archetype", Type: models.VariableDropdown, Values: []string{
				"PROBLEM_SOLUTION", "PROOF", "TESTIMONIAL", "DEMO", "COMPARISON",
				"TRANSFORMATION", "EDUCATIONAL", "FEATURE", "BENEFITS", "MEME_CULTURAL",
				"CONTRARIAN", "STORY", "REACTION", "BREAKDOWN", "LISTICLE",
			}},
			{Name: "Hook", Type: models.VariableDropdown, Values: []string{"PAIN", "CURIOSITY", "BOLD_CLAIM", "PATTERN", "EMOTIONAL", "PROOF"}},
			{Name: "CTA", Type: models.VariableDropdown, Values: []string{"TRIAL", "DEMO", "OPS_AUDIT", "WAITLIST", "LEARN_MORE"}},
			{Name: "Style", Type: models.VariableDropdown, Values: []string{"HIFI", "LOFI", "PRODUCT", "BRANDED", "LIFE"}},
		},
		CaseTransformation: DefaultCaseTransformation,
		SeparatorCharacter: DefaultSeparator,
		Locked:             false,
	}
}
