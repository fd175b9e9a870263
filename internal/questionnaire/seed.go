package questionnaire

// Section names in display order.
const (
	SectionMoodEnergy      = "Mood and Energy"
	SectionAnxietyStress   = "Anxiety and Stress"
	SectionBehavior        = "Behavioral Patterns"
	SectionThoughts        = "Thought Patterns"
	SectionSocialFunction  = "Social and Functional Impact"
	defaultSafetyItemIndex = 3
)

var seedPrompts = []struct {
	section string
	prompt  string
}{
	{SectionMoodEnergy, "I feel sad, empty, or hopeless"},
	{SectionMoodEnergy, "I have little interest or pleasure in doing things"},
	{SectionMoodEnergy, "I feel guilty or that I'm a failure"},
	{SectionMoodEnergy, "I have thoughts that I would be better off dead or of hurting myself"},
	{SectionMoodEnergy, "I feel unusually high, energetic, or euphoric (extremely happy)"},
	{SectionMoodEnergy, "I need less sleep than usual but still don't feel tired"},
	{SectionMoodEnergy, "My thoughts race and I can't slow my mind down"},
	{SectionMoodEnergy, "I'm more talkative than usual or feel pressure to keep talking"},

	{SectionAnxietyStress, "I feel nervous, anxious, or on edge"},
	{SectionAnxietyStress, "I can't stop or control worrying"},
	{SectionAnxietyStress, "I have difficulty relaxing"},
	{SectionAnxietyStress, "I feel afraid as if something awful might happen"},
	{SectionAnxietyStress, "I feel overwhelmed by my responsibilities"},
	{SectionAnxietyStress, "I have physical symptoms like racing heart, sweating, or shortness of breath"},
	{SectionAnxietyStress, "I avoid situations or places that make me anxious"},

	{SectionBehavior, "My mood changes dramatically and unpredictably"},
	{SectionBehavior, "I engage in impulsive behaviors I later regret (spending money, risky sex, substance use)"},
	{SectionBehavior, "I have intense and unstable relationships with others"},
	{SectionBehavior, "I have difficulty controlling my anger"},
	{SectionBehavior, "I feel disconnected from myself or my surroundings"},
	{SectionBehavior, "I experience extreme reactions to perceived abandonment"},
	{SectionBehavior, "I feel empty inside much of the time"},

	{SectionThoughts, "I have recurring unwanted thoughts that cause anxiety"},
	{SectionThoughts, "I engage in repetitive behaviors to reduce anxiety"},
	{SectionThoughts, "I'm suspicious of others' intentions toward me"},
	{SectionThoughts, "I have unusual beliefs or experiences others don't share"},
	{SectionThoughts, "I have difficulty concentrating or making decisions"},
	{SectionThoughts, "I'm excessively concerned with order, details, or rules"},
	{SectionThoughts, "I'm preoccupied with my appearance or perceived flaws"},

	{SectionSocialFunction, "I withdraw from social activities"},
	{SectionSocialFunction, "I have difficulty performing at work or school"},
	{SectionSocialFunction, "I have trouble maintaining personal relationships"},
	{SectionSocialFunction, "I neglect my self-care or household responsibilities"},
	{SectionSocialFunction, "I use alcohol or drugs to cope with my feelings"},
	{SectionSocialFunction, "I have changes in my appetite or weight"},
}

// seedCategories mirror the condition labels used by the scoring package.
// OCD covers only the intrusive-thought and compulsion items; the wider
// thought-pattern block is scored separately for display.
var seedCategories = []Category{
	{Name: "Depression", Title: "Depression", Items: []int{0, 1, 2, 3}},
	{Name: "Bipolar", Title: "Bipolar", Items: []int{4, 5, 6, 7}},
	{Name: "Anxiety", Title: "Anxiety", Items: []int{8, 9, 10, 11, 12, 13, 14}},
	{Name: "Personality Disorder", Title: "Personality Disorders", Items: []int{15, 16, 17, 18, 19, 20, 21}},
	{Name: "OCD", Title: "Obsessive-Compulsive", Items: []int{22, 23}},
	{Name: "Thought Patterns", Title: "OCD and Thought Issues", Items: []int{22, 23, 24, 25, 26, 27, 28}},
	{Name: "Functional Impact", Title: "Functional Impact", Items: []int{29, 30, 31, 32, 33, 34}},
}

// Default returns a fresh copy of the built-in 35-item screening
// questionnaire. Item 3 is the safety-critical item.
func Default() *Schema {
	items := make([]Item, len(seedPrompts))
	for i, p := range seedPrompts {
		items[i] = Item{Index: i, Section: p.section, Prompt: p.prompt}
	}

	cats := make([]Category, len(seedCategories))
	for i, c := range seedCategories {
		cats[i] = Category{
			Name:  c.Name,
			Title: c.Title,
			Items: append([]int(nil), c.Items...),
		}
	}

	return &Schema{
		Items:      items,
		Categories: cats,
		SafetyItem: defaultSafetyItemIndex,
	}
}
