package style

import "github.com/charmbracelet/lipgloss"

var (
	Base    = lipgloss.Color("#1e1e2e")
	Text    = lipgloss.Color("#cdd6f4")
	Overlay = lipgloss.Color("#6c7086")
	Surface = lipgloss.Color("#313244")

	Mauve    = lipgloss.Color("#cba6f7")
	Red      = lipgloss.Color("#f38ba8")
	Teal     = lipgloss.Color("#94e2d5")
	Lavender = lipgloss.Color("#b4befe")
)

var (
	AccentColor       = Mauve
	SecondaryColor    = Lavender
	ErrorColor        = Red
	HiRed             = Red
	FaintColor        = Overlay
	BorderColor       = Surface
	ActiveBorderColor = AccentColor
)
