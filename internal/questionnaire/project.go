package questionnaire

import "strings"

// Project renders answers as natural-language text for a text classifier:
// "<prompt>: <frequency phrase>" per item, in item order, joined by single
// spaces. Out-of-range values are clamped onto the scale. Answers beyond the
// schema's item count are ignored.
func Project(responses []int, s *Schema) string {
	parts := make([]string, 0, len(responses))
	for i, r := range responses {
		if i >= len(s.Items) {
			break
		}
		parts = append(parts, s.Items[i].Prompt+": "+FrequencyOf(r).String())
	}
	return strings.Join(parts, " ")
}
