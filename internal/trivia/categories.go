package trivia

// SportsCategories maps user-facing sport labels to the API category
// identifiers they live under. The trivia API files all of these under a
// single category, so identifiers are deduplicated before a request.
var SportsCategories = map[string]string{
	"Football":   "sport_and_leisure",
	"Basketball": "sport_and_leisure",
	"Baseball":   "sport_and_leisure",
	"Soccer":     "sport_and_leisure",
	"Hockey":     "sport_and_leisure",
	"Tennis":     "sport_and_leisure",
	"Golf":       "sport_and_leisure",
	"Boxing":     "sport_and_leisure",
	"MMA":        "sport_and_leisure",
	"Motorsport": "sport_and_leisure",
}

// CategoryLabels lists the selectable labels in a fixed display order.
var CategoryLabels = []string{
	"Football",
	"Basketball",
	"Baseball",
	"Soccer",
	"Hockey",
	"Tennis",
	"Golf",
	"Boxing",
	"MMA",
	"Motorsport",
}

// CategoryIDs resolves labels to API identifiers, dropping unknown
// labels and duplicates while preserving order.
func CategoryIDs(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		id, ok := SportsCategories[label]
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
