package history

import (
	"slices"

	"github.com/yunhoi129/adtax/pkg/models"
)

// Counts maps a metadata value to its number of occurrences.
type Counts map[string]int

// Aggregate counts the values of each analytics field over entries.
// Empty values are not counted. Every analytics field has an entry in the
// result, possibly empty.
func Aggregate(entries []models.GeneratedNameRecord) map[models.MetadataField]Counts {
	out := make(map[models.MetadataField]Counts, len(models.AnalyticsFields()))
	for _, f := range models.AnalyticsFields() {
		out[f] = Counts{}
	}
	for _, e := range entries {
		for _, f := range models.AnalyticsFields() {
			if v := e.Metadata.Get(f); v != "" {
				out[f][v]++
			}
		}
	}
	return out
}

// Percentage returns count as a percentage of total, or 0 when total is 0.
func Percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// Row is one value of a breakdown.
type Row struct {
	Value   string
	Count   int
	Percent float64
}

// Breakdown is the ranked distribution of one analytics field.
type Breakdown struct {
	Field models.MetadataField
	Title string
	Rows  []Row
}

// Summary is the analytics view over the whole log.
type Summary struct {
	Total      int
	Breakdowns []Breakdown
}

// Summarize ranks every analytics field's values by descending count.
// Ties keep the order in which values were first seen in entries.
// Percentages are relative to the total number of entries.
func Summarize(entries []models.GeneratedNameRecord) Summary {
	total := len(entries)
	s := Summary{Total: total}
	counts := Aggregate(entries)

	for _, f := range models.AnalyticsFields() {
		fc := counts[f]
		rows := make([]Row, 0, len(fc))
		for _, v := range firstSeen(entries, f) {
			rows = append(rows, Row{Value: v, Count: fc[v], Percent: Percentage(fc[v], total)})
		}
		slices.SortStableFunc(rows, func(a, b Row) int { return b.Count - a.Count })

		s.Breakdowns = append(s.Breakdowns, Breakdown{
			Field: f,
			Title: "By " + f.Title(),
			Rows:  rows,
		})
	}
	return s
}

// firstSeen lists the distinct non-empty values of f in order of first
// appearance.
func firstSeen(entries []models.GeneratedNameRecord, f models.MetadataField) []string {
	var order []string
	seen := map[string]bool{}
	for _, e := range entries {
		if v := e.Metadata.Get(f); v != "" && !seen[v] {
			seen[v] = true
			order = append(order, v)
		}
	}
	return order
}
