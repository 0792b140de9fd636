package wizard

import (
	"github.com/yunhoi129/adtax/pkg/models"
)

// GeneratorQuestions builds one question per variable, in assembly order,
// plus a trailing variation question when withVariation is set and no
// variable already covers it.
func GeneratorQuestions(cfg models.Configuration, withVariation bool) []Question {
	qs := make([]Question, 0, len(cfg.Variables)+1)
	for _, v := range cfg.Variables {
		q := Question{
			ID:          v.Name,
			Title:       v.Name,
			Description: v.Description,
			AllowOther:  v.AllowFreeInput,
			Optional:    true,
		}
		switch v.Type {
		case models.VariableMultiselect:
			q.Type = QuestionTypeMultiSelect
		case models.VariableText:
			q.Type = QuestionTypeInput
		default:
			q.Type = QuestionTypeSelect
		}
		// A list with nothing to pick from falls back to typing.
		if q.Type != QuestionTypeInput && len(v.Values) == 0 {
			q.Type = QuestionTypeInput
		}
		for _, val := range v.Values {
			q.Options = append(q.Options, Option{Label: val, Value: val})
		}
		qs = append(qs, q)
	}

	if withVariation && cfg.VariableIndex(models.VariationKey) < 0 {
		qs = append(qs, Question{
			ID:          models.VariationKey,
			Type:        QuestionTypeInput,
			Title:       "Variation",
			Description: "Trailing version token, e.g. v1",
			Optional:    true,
		})
	}
	return qs
}
