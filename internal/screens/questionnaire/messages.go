package questionnaire

import (
	"time"

	"github.com/abhisek/mindcheck/internal/assessment"
	"github.com/abhisek/mindcheck/internal/guidance"
)

// evaluatedMsg carries the pipeline outcome back to the screen.
type evaluatedMsg struct {
	Assessment *assessment.Assessment
	Guidance   guidance.Guidance
	Err        error
}

// spinnerTickMsg animates the "analyzing" indicator.
type spinnerTickMsg time.Time
