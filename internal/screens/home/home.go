package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindcheck/internal/assessment"
	"github.com/abhisek/mindcheck/internal/guidance"
	"github.com/abhisek/mindcheck/internal/router"
	"github.com/abhisek/mindcheck/internal/scoring"
	"github.com/abhisek/mindcheck/internal/screen"
	"github.com/abhisek/mindcheck/internal/screens/history"
	"github.com/abhisek/mindcheck/internal/screens/intro"
	"github.com/abhisek/mindcheck/internal/screens/questionnaire"
	"github.com/abhisek/mindcheck/internal/store"
	"github.com/abhisek/mindcheck/internal/ui/components"
)

type lastLoadedMsg struct {
	Event *store.AssessmentEvent
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu     components.Menu
	last     *store.AssessmentEvent
	loadLast tea.Cmd
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. events may be nil, which disables history.
func New(svc *assessment.Service, events store.EventRepo) *HomeScreen {
	h := &HomeScreen{}
	if events != nil {
		h.loadLast = func() tea.Msg {
			evs, err := events.QueryAssessments(context.Background(), store.QueryOpts{Limit: 1})
			if err != nil || len(evs) == 0 {
				return lastLoadedMsg{}
			}
			return lastLoadedMsg{Event: &evs[0]}
		}
	}

	items := []components.MenuItem{
		{
			Label: "Start screening",
			Hint:  fmt.Sprintf("%d questions, about 5 minutes", svc.Schema().Len()),
			Action: func() tea.Cmd {
				next := StartFlow(svc)()
				return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
			},
		},
		{
			Label:    "Past results",
			Hint:     "Review earlier check-ins",
			Disabled: events == nil,
			Action: func() tea.Cmd {
				return func() tea.Msg { return router.PushScreenMsg{Screen: history.New(events)} }
			},
		},
		{
			Label:  "Quit",
			Action: func() tea.Cmd { return tea.Quit },
		},
	}
	h.menu = components.NewMenu(items)
	return h
}

// StartFlow returns a factory for the intro screen that leads into a fresh
// questionnaire. The results screen reuses it for retakes.
func StartFlow(svc *assessment.Service) func() screen.Screen {
	var restart func() screen.Screen
	restart = func() screen.Screen {
		return intro.New(svc.Schema().Len(), func(label string) screen.Screen {
			return questionnaire.New(svc, label, restart)
		})
	}
	return restart
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadLast
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(lastLoadedMsg); ok {
		h.last = m.Event
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	var sections []string
	sections = append(sections,
		center.Render(RenderMascot(h.mascot())),
		center.Bold(true).Render("A private check-in on how you have been feeling"),
	)
	if line := h.lastLine(); line != "" {
		sections = append(sections, center.Faint(true).Render(line))
	}
	sections = append(sections,
		components.Card(h.menu.View(), cw),
		center.Italic(true).Faint(true).Render(guidance.Disclaimer),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n\n"))
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) mascot() MascotVariant {
	switch {
	case h.last == nil:
		return MascotIdle
	case h.last.FinalVerdict == string(scoring.Normal):
		return MascotContent
	default:
		return MascotCaring
	}
}

func (h *HomeScreen) lastLine() string {
	if h.last == nil {
		return ""
	}
	return fmt.Sprintf("Last check-in %s: %s",
		h.last.Timestamp.Local().Format("Jan 02, 2006"), h.last.FinalVerdict)
}
