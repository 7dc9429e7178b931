// Package color names the terminal colors used by the commands and the browser.
package color

import "github.com/charmbracelet/lipgloss"

func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI colors, so the CLI output follows the terminal theme.
var (
	Red      = New("1")
	Green    = New("2")
	Yellow   = New("3")
	Blue     = New("4")
	Purple   = New("5")
	Cyan     = New("6")
	HiRed    = New("9")
	HiPurple = New("13")
)

var Orange = New("#ffb703")

// services tint the filter tags by catalog position.
var services = []lipgloss.Color{
	New("#e50914"),
	New("#113ccf"),
	New("#00a8e1"),
	New("#a2aaad"),
}

// Service returns the tag color of the i-th catalog service.
func Service(i int) lipgloss.Color {
	if i < 0 {
		return Purple
	}
	return services[i%len(services)]
}
