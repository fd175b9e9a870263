package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindcheck/internal/ui/theme"
)

// MascotVariant selects which logo art to display.
type MascotVariant int

const (
	MascotIdle    MascotVariant = iota // No earlier result
	MascotContent                      // Last result was Normal
	MascotCaring                       // Last result flagged something
)

const mascotIdle = `╭─────╮
│ ◠ ◠ │
│  ◡  │
╰─────╯`

const mascotContent = `╭─────╮
│ ^ ^ │
│  ◡  │
╰─────╯`

const mascotCaring = `╭─────╮
│ ◠ ◠ │
│  ◡  │ ♥
╰─────╯`

// RenderMascot returns the logo art for the given variant.
func RenderMascot(v MascotVariant) string {
	art, fg := mascotIdle, theme.Primary
	switch v {
	case MascotContent:
		art, fg = mascotContent, theme.Success
	case MascotCaring:
		art, fg = mascotCaring, theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
