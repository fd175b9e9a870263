package questionnaire

// Frequency is the 4-point answer scale: how often a symptom was experienced
// over the past two weeks.
type Frequency int

const (
	NotAtAll Frequency = iota
	SeveralDays
	MoreThanHalfTheDays
	NearlyEveryDay
)

var frequencyPhrases = [...]string{
	NotAtAll:            "Not at all",
	SeveralDays:         "Several days",
	MoreThanHalfTheDays: "More than half the days",
	NearlyEveryDay:      "Nearly every day",
}

// Scale returns every frequency in ascending order.
func Scale() []Frequency {
	return []Frequency{NotAtAll, SeveralDays, MoreThanHalfTheDays, NearlyEveryDay}
}

// FrequencyOf clamps a raw answer onto the scale. Values above the top of the
// scale saturate to NearlyEveryDay; negative values map to NotAtAll.
func FrequencyOf(v int) Frequency {
	switch {
	case v <= int(NotAtAll):
		return NotAtAll
	case v >= int(NearlyEveryDay):
		return NearlyEveryDay
	default:
		return Frequency(v)
	}
}

// String returns the display phrase for the frequency.
func (f Frequency) String() string {
	return frequencyPhrases[FrequencyOf(int(f))]
}

// Valid reports whether v is an in-range raw answer.
func Valid(v int) bool {
	return v >= int(NotAtAll) && v <= int(NearlyEveryDay)
}
