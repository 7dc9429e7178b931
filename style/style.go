// Package style composes lipgloss styles into plain string renderers.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/reelroll-cli/reelroll/color"
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

func renderer(s lipgloss.Style) func(string) string {
	return func(text string) string {
		return s.Render(text)
	}
}

// Fg returns a renderer painting text in c.
func Fg(c lipgloss.Color) func(string) string {
	return renderer(New().Foreground(c))
}

// Tag returns a renderer for a padded label on a colored background.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return renderer(New().Foreground(fg).Background(bg).Padding(0, 1))
}

var (
	Faint = renderer(New().Faint(true))
	Bold  = renderer(New().Bold(true))

	Title      = Tag(color.New("230"), color.New("62"))
	ErrorTitle = Tag(color.New("230"), color.Red)
)
