// Package guidance turns a final verdict into something a person can act
// on: a short explanation, daily practices and links to reputable
// resources. Everything here may fail or be generated; the static Catalog
// is always there to fall back on.
package guidance

import "github.com/abhisek/mindcheck/internal/scoring"

// Resource is a titled link.
type Resource struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// App is a mobile app suggestion.
type App struct {
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
}

// Recommendations are the practices and resources for one condition.
type Recommendations struct {
	Strategies []string   `json:"strategies"`
	Resources  []Resource `json:"resources"`
}

// Catalog is the static guidance content. The zero value is not useful;
// use DefaultCatalog.
type Catalog struct {
	general     []string
	specific    map[scoring.Condition][]string
	resources   map[scoring.Condition][]Resource
	topics      map[scoring.Condition][]string
	apps        []App
	crisisLines []string
}

// Shown with every result.
const (
	Disclaimer = "This assessment is for informational purposes only and is not a diagnostic tool. " +
		"The results should not be considered as a substitute for consultation with a qualified " +
		"mental health professional. If you're experiencing distress, please seek help from a healthcare provider."

	PracticeTip = "Start with just one or two practices and build gradually. Consistency matters more than quantity."
)

// DefaultCatalog returns the built-in content.
func DefaultCatalog() *Catalog {
	return &Catalog{
		general: []string{
			"Establish a consistent daily routine with regular sleep patterns",
			"Practice mindfulness meditation for 10-15 minutes daily",
			"Engage in regular physical activity (30 minutes, 5 days a week)",
			"Keep a mood journal to track triggers and patterns",
			"Connect with supportive friends or family members regularly",
			"Try cognitive behavioral techniques to challenge negative thoughts",
			"Set realistic, achievable goals and celebrate small wins",
			"Consider joining a support group (online or in-person)",
		},
		specific: map[scoring.Condition][]string{
			scoring.Depression: {
				"Schedule pleasurable activities even when motivation is low",
				"Limit alcohol and caffeine which can worsen mood",
			},
			scoring.Anxiety: {
				"Practice deep breathing exercises (4-7-8 technique)",
				"Create a worry schedule to contain anxious thoughts",
			},
			scoring.Bipolar: {
				"Maintain a consistent sleep schedule even during mood shifts",
				"Create a crisis plan for managing manic or depressive episodes",
			},
		},
		resources: map[scoring.Condition][]Resource{
			scoring.Depression: {
				{"NIMH - Depression", "https://www.nimh.nih.gov/health/topics/depression"},
				{"Mayo Clinic - Depression self-management", "https://www.mayoclinic.org/diseases-conditions/depression/diagnosis-treatment/drc-20356013"},
				{"Healthline - Natural Depression Remedies", "https://www.healthline.com/health/depression/natural-remedies"},
			},
			scoring.Anxiety: {
				{"NIMH - Anxiety Disorders", "https://www.nimh.nih.gov/health/topics/anxiety-disorders"},
				{"Mayo Clinic - Anxiety management", "https://www.mayoclinic.org/diseases-conditions/anxiety/diagnosis-treatment/drc-20350967"},
				{"Calm Clinic - Anxiety Techniques", "https://www.calmclinic.com/anxiety/treatment/self-help"},
			},
			scoring.Bipolar: {
				{"NIMH - Bipolar Disorder", "https://www.nimh.nih.gov/health/topics/bipolar-disorder"},
				{"Depression and Bipolar Support Alliance", "https://www.dbsalliance.org/"},
				{"Healthline - Living with Bipolar Disorder", "https://www.healthline.com/health/bipolar-disorder/living-with"},
			},
			scoring.PersonalityDisorder: {
				{"NAMI - Borderline Personality Disorder", "https://www.nami.org/About-Mental-Illness/Mental-Health-Conditions/Borderline-Personality-Disorder"},
				{"NHS - Personality disorders", "https://www.nhs.uk/mental-health/conditions/personality-disorders/"},
				{"Very Well Mind - DBT Skills", "https://www.verywellmind.com/dialectical-behavior-therapy-dbt-for-bpd-425454"},
			},
			scoring.OCD: {
				{"International OCD Foundation", "https://iocdf.org/"},
				{"OCD-UK", "https://www.ocduk.org/"},
				{"Very Well Mind - OCD Self-Help", "https://www.verywellmind.com/ocd-self-help-2510625"},
			},
			scoring.Stress: {
				{"American Psychological Association", "https://www.apa.org/topics/stress"},
				{"Mayo Clinic - Stress management", "https://www.mayoclinic.org/healthy-lifestyle/stress-management/basics/stress-basics/hlv-20049495"},
				{"HelpGuide - Stress Management", "https://www.helpguide.org/articles/stress/stress-management.htm"},
			},
			scoring.Suicidal: {
				{"National Suicide Prevention Lifeline", "https://988lifeline.org/"},
				{"Crisis Text Line", "https://www.crisistextline.org/"},
				{"American Foundation for Suicide Prevention", "https://afsp.org/"},
			},
			scoring.Normal: {
				{"Mental Health America - Staying Mentally Healthy", "https://mhanational.org/staying-mentally-healthy"},
				{"Mayo Clinic - Mental health: Overcoming the stigma", "https://www.mayoclinic.org/diseases-conditions/mental-illness/in-depth/mental-health/art-20046477"},
				{"Mind - How to improve mental wellbeing", "https://www.mind.org.uk/information-support/tips-for-everyday-living/wellbeing/"},
			},
		},
		topics: map[scoring.Condition][]string{
			scoring.Depression:          {"depression self help", "depression coping strategies", "depression management techniques"},
			scoring.Anxiety:             {"anxiety management", "anxiety coping techniques", "anxiety relief strategies"},
			scoring.Bipolar:             {"bipolar disorder self management", "bipolar mood stability techniques", "living with bipolar"},
			scoring.PersonalityDisorder: {"DBT skills", "emotional regulation techniques", "borderline personality self help"},
			scoring.OCD:                 {"OCD exposure response prevention", "intrusive thoughts management", "OCD self help"},
			scoring.Stress:              {"stress management techniques", "work life balance", "stress reduction methods"},
			scoring.Suicidal:            {"suicide prevention resources", "crisis management mental health", "suicide safety planning"},
			scoring.Normal:              {"mental wellness tips", "emotional resilience building", "preventive mental health"},
		},
		apps: []App{
			{"Headspace", "Guided meditation and mindfulness"},
			{"Woebot", "AI-based cognitive behavioral therapy"},
			{"MoodMission", "Evidence-based mood improvement activities"},
			{"Daylio", "Mood and activity tracking"},
		},
		crisisLines: []string{
			"National Suicide Prevention Lifeline: 988 or 1-800-273-8255",
			"Crisis Text Line: Text HOME to 741741",
			"Or go to your nearest emergency room",
		},
	}
}

// Strategies returns the general practices followed by any additions for c.
func (c *Catalog) Strategies(cond scoring.Condition) []string {
	out := make([]string, 0, len(c.general)+2)
	out = append(out, c.general...)
	return append(out, c.specific[cond]...)
}

// Resources returns the links for cond. Conditions without their own list
// get Normal's.
func (c *Catalog) Resources(cond scoring.Condition) []Resource {
	res, ok := c.resources[cond]
	if !ok {
		res = c.resources[scoring.Normal]
	}
	return append([]Resource(nil), res...)
}

// Topics returns search topics that describe useful self-help for cond.
func (c *Catalog) Topics(cond scoring.Condition) []string {
	t, ok := c.topics[cond]
	if !ok {
		t = c.topics[scoring.Normal]
	}
	return append([]string(nil), t...)
}

// Recommendations bundles Strategies and Resources.
func (c *Catalog) Recommendations(cond scoring.Condition) *Recommendations {
	return &Recommendations{Strategies: c.Strategies(cond), Resources: c.Resources(cond)}
}

func (c *Catalog) Apps() []App {
	return append([]App(nil), c.apps...)
}

// CrisisLines are shown when fusion.ShowCrisisResources is true.
func (c *Catalog) CrisisLines() []string {
	return append([]string(nil), c.crisisLines...)
}
