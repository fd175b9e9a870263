package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindcheck/internal/questionnaire"
	"github.com/abhisek/mindcheck/internal/ui/theme"
)

// FrequencyChoice asks one questionnaire item on the 0-3 frequency scale.
// Arrow keys move the cursor, Enter confirms it and a digit answers directly.
type FrequencyChoice struct {
	Prompt    string
	Options   []questionnaire.Frequency
	Selected  int
	Submitted bool
	Chosen    int
}

// NewFrequencyChoice creates a choice for prompt. previous is the earlier
// answer when the item is revisited, or -1.
func NewFrequencyChoice(prompt string, previous int) FrequencyChoice {
	c := FrequencyChoice{
		Prompt:  prompt,
		Options: questionnaire.Scale(),
		Chosen:  -1,
	}
	if questionnaire.Valid(previous) {
		c.Selected = previous
	}
	return c
}

// Init returns nil.
func (m FrequencyChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m FrequencyChoice) Update(msg tea.Msg) (FrequencyChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter", "space":
		m.submit(m.Selected)
	case "0", "1", "2", "3":
		m.submit(int(key[0] - '0'))
	}

	return m, nil
}

func (m *FrequencyChoice) submit(v int) {
	m.Selected = v
	m.Chosen = v
	m.Submitted = true
}

// View renders the prompt and the scale.
func (m FrequencyChoice) View(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(max(width, 20)).Render(m.Prompt))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d  %s", prefix, i, opt)

		switch {
		case m.Submitted && i == m.Chosen:
			b.WriteString(theme.Answered.Bold(true).Render(line))
		case i == m.Selected:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Answer returns the chosen value, valid only once Submitted is set.
func (m FrequencyChoice) Answer() int {
	return m.Chosen
}
