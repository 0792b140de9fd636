package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/yunhoi129/adtax/pkg/models"
)

// MultiValueJoin joins the values of one multiselect segment.
const MultiValueJoin = ","

// Segment is the part of a name contributed by one variable.
type Segment struct {
	// Variable is the configured variable name, or models.VariationKey for
	// the trailing variation token.
	Variable string
	// Values are the trimmed, non-blank values that produced Text.
	Values []string
	// Text is the segment as placed in the name, before case transformation.
	Text string
}

// Segments resolves the non-empty segments of a name in assembly order.
func Segments(cfg models.Configuration, sel models.Selection) []Segment {
	var segs []Segment
	for _, v := range cfg.Variables {
		raw, _ := sel.Lookup(v.Name)
		vals := cleanValues(raw)
		if len(vals) == 0 {
			continue
		}
		if v.Type != models.VariableMultiselect {
			vals = vals[:1]
		}
		segs = append(segs, Segment{
			Variable: v.Name,
			Values:   vals,
			Text:     strings.Join(vals, MultiValueJoin),
		})
	}

	if cfg.VariableIndex(models.VariationKey) < 0 {
		raw, _ := sel.Lookup(models.VariationKey)
		if vals := cleanValues(raw); len(vals) > 0 {
			segs = append(segs, Segment{
				Variable: models.VariationKey,
				Values:   vals[:1],
				Text:     vals[0],
			})
		}
	}
	return segs
}

// Assemble builds a file name from cfg and sel. It is deterministic and
// total: unselected variables are skipped without leaving a separator, and
// the configured case is applied to the joined result.
func Assemble(cfg models.Configuration, sel models.Selection) string {
	segs := Segments(cfg, sel)
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = s.Text
	}
	return ApplyCase(cfg.CaseTransformation, strings.Join(parts, cfg.SeparatorCharacter))
}

// ApplyCase transforms s according to ct. Unknown values leave s unchanged.
func ApplyCase(ct models.CaseTransformation, s string) string {
	switch ct {
	case models.CaseLowercase:
		return cases.Lower(language.Und).String(s)
	case models.CaseUppercase:
		return cases.Upper(language.Und).String(s)
	default:
		return s
	}
}

func cleanValues(raw []string) []string {
	var out []string
	for _, v := range raw {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
