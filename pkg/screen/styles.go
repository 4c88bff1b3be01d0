package screen

import "github.com/charmbracelet/lipgloss"

var (
	accentColor   = lipgloss.Color("#A88A79") // cart button when enabled
	selectedColor = lipgloss.Color("#3C3C43")
	disabledColor = lipgloss.Color("238")
	mutedColor    = lipgloss.Color("241")
	errorColor    = lipgloss.Color("196")
	successColor  = lipgloss.Color("42")
	cursorColor   = lipgloss.Color("180")
)

var (
	imageStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Foreground(mutedColor).
			Align(lipgloss.Center, lipgloss.Center)

	titleStyle = lipgloss.NewStyle().Bold(true)

	infoMarkStyle = lipgloss.NewStyle().Foreground(mutedColor)

	headingStyle = lipgloss.NewStyle().Foreground(mutedColor)

	sizeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	sizeSelectedStyle = sizeStyle.
				Background(selectedColor).
				Foreground(lipgloss.Color("255")).
				Bold(true)

	cartEnabledStyle = lipgloss.NewStyle().
				Background(accentColor).
				Foreground(lipgloss.Color("255")).
				Bold(true).
				Align(lipgloss.Center).
				Padding(1, 0)

	cartDisabledStyle = lipgloss.NewStyle().
				Background(disabledColor).
				Foreground(mutedColor).
				Align(lipgloss.Center).
				Padding(1, 0)

	statusErrorStyle = lipgloss.NewStyle().Foreground(errorColor)
	statusOKStyle    = lipgloss.NewStyle().Foreground(successColor)
)
