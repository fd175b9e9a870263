package questionnaire

// Item is one questionnaire statement. Its identity is its ordinal position.
type Item struct {
	Index   int
	Section string
	Prompt  string
}

// Category is a named group of items whose answers are summed together.
// Item sets are arbitrary: categories may overlap and need not be contiguous.
type Category struct {
	// Name is the canonical key used in score boards and threshold tables.
	Name string

	// Title is the display heading.
	Title string

	// Items holds the ordinals of the items belonging to this category.
	Items []int
}

// Schema is the immutable questionnaire definition: ordered items, the
// categories partitioning them and the safety-critical item.
type Schema struct {
	Items      []Item
	Categories []Category

	// SafetyItem is the ordinal of the self-harm / suicidal ideation item.
	SafetyItem int
}

// New builds a schema and validates it.
func New(items []Item, categories []Category, safetyItem int) (*Schema, error) {
	s := &Schema{
		Items:      items,
		Categories: categories,
		SafetyItem: safetyItem,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Len returns the number of items, which is also the required response count.
func (s *Schema) Len() int {
	return len(s.Items)
}

// Category returns the category with the given name.
func (s *Schema) Category(name string) (Category, bool) {
	for _, c := range s.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// MaxScore returns the highest possible sum for the named category, or 0 if
// the category does not exist.
func (s *Schema) MaxScore(name string) int {
	c, ok := s.Category(name)
	if !ok {
		return 0
	}
	return len(c.Items) * int(NearlyEveryDay)
}

// Sections returns the distinct item sections in order of first appearance.
func (s *Schema) Sections() []string {
	var out []string
	seen := make(map[string]bool)
	for _, it := range s.Items {
		if seen[it.Section] {
			continue
		}
		seen[it.Section] = true
		out = append(out, it.Section)
	}
	return out
}

// SectionItems returns the items belonging to the named section.
func (s *Schema) SectionItems(section string) []Item {
	var out []Item
	for _, it := range s.Items {
		if it.Section == section {
			out = append(out, it)
		}
	}
	return out
}
