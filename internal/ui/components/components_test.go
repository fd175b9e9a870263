package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func digit(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestFrequencyChoice_ArrowsAndEnter(t *testing.T) {
	c := NewFrequencyChoice("I feel tense", -1)
	require.Len(t, c.Options, 4)
	assert.Equal(t, 0, c.Selected)

	c, _ = c.Update(key(tea.KeyUp))
	assert.Equal(t, 0, c.Selected, "cursor stays at the top")

	c, _ = c.Update(key(tea.KeyDown))
	c, _ = c.Update(key(tea.KeyDown))
	c, _ = c.Update(key(tea.KeyDown))
	c, _ = c.Update(key(tea.KeyDown))
	assert.Equal(t, 3, c.Selected, "cursor stays at the bottom")

	c, _ = c.Update(key(tea.KeyUp))
	c, _ = c.Update(key(tea.KeyEnter))
	require.True(t, c.Submitted)
	assert.Equal(t, 2, c.Answer())
}

func TestFrequencyChoice_DigitAnswersDirectly(t *testing.T) {
	c := NewFrequencyChoice("I feel tense", -1)
	c, _ = c.Update(digit('3'))
	require.True(t, c.Submitted)
	assert.Equal(t, 3, c.Answer())

	// Further keys are ignored once answered.
	c, _ = c.Update(digit('1'))
	assert.Equal(t, 3, c.Answer())
}

func TestFrequencyChoice_PreviousAnswerPreselected(t *testing.T) {
	c := NewFrequencyChoice("I feel tense", 1)
	assert.Equal(t, 1, c.Selected)
	assert.False(t, c.Submitted)
	assert.Equal(t, -1, c.Answer())

	out := c.View(60)
	assert.Contains(t, out, "I feel tense")
	assert.Contains(t, out, "▸ 1  Several days")
	assert.Contains(t, out, "3  Nearly every day")
}

func TestProgressBar_WidthIsStable(t *testing.T) {
	for _, pct := range []float64{-0.5, 0, 0.37, 1, 2} {
		bar := ProgressBar{Label: "Anxiety", LabelWidth: 12, Percent: pct, ShowPercent: true, Width: 50}
		assert.Equal(t, 50, lipgloss.Width(bar.View()), "percent %v", pct)
	}
}

func TestMenu_SkipsDisabledItems(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Start"},
		{Label: "History", Disabled: true},
		{Label: "Quit"},
	})
	assert.Equal(t, 0, m.Selected)

	m, _ = m.Update(key(tea.KeyDown))
	assert.Equal(t, 2, m.Selected)

	m, _ = m.Update(key(tea.KeyUp))
	assert.Equal(t, 0, m.Selected)
}

func TestCrisisBox_ListsEveryLine(t *testing.T) {
	out := CrisisBox([]string{"Call 988", "Text HOME to 741741"}, 60)
	assert.Contains(t, out, "If you are in crisis")
	assert.Contains(t, out, "Call 988")
	assert.Contains(t, out, "Text HOME to 741741")
}
