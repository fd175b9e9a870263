package scoring

import (
	"fmt"
	"strings"
)

// Condition is a screening label. Both the rule engine and the external
// classifier produce labels from this closed set.
type Condition string

const (
	Normal              Condition = "Normal"
	Depression          Condition = "Depression"
	Anxiety             Condition = "Anxiety"
	Bipolar             Condition = "Bipolar"
	PersonalityDisorder Condition = "Personality Disorder"
	OCD                 Condition = "OCD"
	Stress              Condition = "Stress"
	Suicidal            Condition = "Suicidal"
)

// AllConditions returns every label in display order.
func AllConditions() []Condition {
	return []Condition{
		Normal,
		Depression,
		Anxiety,
		Bipolar,
		PersonalityDisorder,
		OCD,
		Stress,
		Suicidal,
	}
}

// aliases maps lower-cased spellings onto canonical labels. The plural and
// long-form category titles are accepted so older labels still parse.
var aliases = map[string]Condition{
	"personality disorders":  PersonalityDisorder,
	"ocd and thought issues": OCD,
	"obsessive-compulsive":   OCD,
}

// ParseCondition resolves a label case-insensitively, accepting the
// canonical names and known aliases.
func ParseCondition(s string) (Condition, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, c := range AllConditions() {
		if strings.ToLower(string(c)) == key {
			return c, nil
		}
	}
	if c, ok := aliases[key]; ok {
		return c, nil
	}
	return "", fmt.Errorf("unknown condition %q", s)
}

// Known reports whether c is part of the label universe.
func (c Condition) Known() bool {
	for _, k := range AllConditions() {
		if k == c {
			return true
		}
	}
	return false
}
