package modal

import "github.com/charmbracelet/lipgloss"

// Colors shared with the screen styles
var (
	Primary      = lipgloss.Color("180") // tan, the cart button color
	Muted        = lipgloss.Color("241")
	BorderNormal = lipgloss.Color("240")
)

// Button styles
var (
	Button = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("238")).
		Padding(0, 2)

	ButtonFocused = lipgloss.NewStyle().
			Foreground(lipgloss.Color("232")).
			Background(Primary).
			Bold(true).
			Padding(0, 2)

	ButtonHover = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("245")).
			Padding(0, 2)
)

// Text styles
var (
	ModalTitle = lipgloss.NewStyle().Bold(true)
	MutedText  = lipgloss.NewStyle().Foreground(Muted)
	Body       = lipgloss.NewStyle()
)
