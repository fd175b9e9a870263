package scoring

import "github.com/abhisek/mindcheck/internal/questionnaire"

// CategoryScore is one line of the per-category breakdown.
type CategoryScore struct {
	Name    string
	Title   string
	Score   int
	Max     int
	Percent float64
}

// Breakdown returns per-category scores as a share of their maximum, in
// schema order. The safety item is reported through its category, not on its
// own line.
func Breakdown(b ScoreBoard, s *questionnaire.Schema) []CategoryScore {
	out := make([]CategoryScore, 0, len(s.Categories))
	for _, c := range s.Categories {
		maxScore := s.MaxScore(c.Name)
		if maxScore == 0 {
			continue
		}
		score := b[c.Name]
		out = append(out, CategoryScore{
			Name:    c.Name,
			Title:   c.Title,
			Score:   score,
			Max:     maxScore,
			Percent: float64(score) / float64(maxScore) * 100,
		})
	}
	return out
}
