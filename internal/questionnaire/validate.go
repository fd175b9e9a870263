package questionnaire

import (
	"fmt"
	"strings"
)

// Validate performs all structural checks on the schema.
// Returns a combined error describing all problems found, or nil if valid.
func (s *Schema) Validate() error {
	var errs []string

	if len(s.Items) == 0 {
		errs = append(errs, "schema has no items")
	}

	for i, it := range s.Items {
		if it.Index != i {
			errs = append(errs, fmt.Sprintf("item at position %d has index %d", i, it.Index))
		}
		if strings.TrimSpace(it.Prompt) == "" {
			errs = append(errs, fmt.Sprintf("item %d has an empty prompt", i))
		}
	}

	if len(s.Categories) == 0 {
		errs = append(errs, "schema has no categories")
	}

	names := make(map[string]bool, len(s.Categories))
	for _, c := range s.Categories {
		if c.Name == "" {
			errs = append(errs, "category with empty name")
		}
		if names[c.Name] {
			errs = append(errs, fmt.Sprintf("duplicate category name: %q", c.Name))
		}
		names[c.Name] = true

		if len(c.Items) == 0 {
			errs = append(errs, fmt.Sprintf("category %q has no items", c.Name))
		}
		seen := make(map[int]bool, len(c.Items))
		for _, idx := range c.Items {
			if idx < 0 || idx >= len(s.Items) {
				errs = append(errs, fmt.Sprintf("category %q references item %d outside [0,%d)", c.Name, idx, len(s.Items)))
				continue
			}
			if seen[idx] {
				errs = append(errs, fmt.Sprintf("category %q lists item %d twice", c.Name, idx))
			}
			seen[idx] = true
		}
	}

	if s.SafetyItem < 0 || s.SafetyItem >= len(s.Items) {
		errs = append(errs, fmt.Sprintf("safety item %d outside [0,%d)", s.SafetyItem, len(s.Items)))
	}

	if len(errs) > 0 {
		return fmt.Errorf("questionnaire validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
