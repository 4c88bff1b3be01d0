package modal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FocusableInfo is a focusable element inside a rendered section, with its
// position relative to the section's top-left corner
type FocusableInfo struct {
	ID      string
	OffsetX int
	OffsetY int
	Width   int
	Height  int
}

// RenderedSection is the output of Section.Render
type RenderedSection struct {
	Content    string
	Focusables []FocusableInfo
}

// Section is one block of modal content
type Section interface {
	Render(contentWidth int, focusID, hoverID string) RenderedSection
}

type textSection struct {
	text string
}

// Text creates a static, word-wrapped text section
func Text(s string) Section {
	return &textSection{text: s}
}

func (s *textSection) Render(contentWidth int, _, _ string) RenderedSection {
	return RenderedSection{Content: Body.Width(contentWidth).Render(s.text)}
}

type spacerSection struct{}

// Spacer creates a blank line
func Spacer() Section {
	return spacerSection{}
}

func (spacerSection) Render(int, string, string) RenderedSection {
	return RenderedSection{Content: ""}
}

// ButtonDef describes one button of a Buttons section
type ButtonDef struct {
	Label  string
	Action string
}

// Btn creates a button definition; action is returned when it is activated
func Btn(label, action string) ButtonDef {
	return ButtonDef{Label: label, Action: action}
}

const buttonGap = 2

type buttonsSection struct {
	buttons []ButtonDef
}

// Buttons creates a row of buttons. Each button's action doubles as its focus ID.
func Buttons(btns ...ButtonDef) Section {
	return &buttonsSection{buttons: btns}
}

func (s *buttonsSection) Render(_ int, focusID, hoverID string) RenderedSection {
	var (
		parts      []string
		focusables []FocusableInfo
		x          int
	)

	for _, b := range s.buttons {
		style := Button
		switch b.Action {
		case focusID:
			style = ButtonFocused
		case hoverID:
			style = ButtonHover
		}
		rendered := style.Render(b.Label)
		w := lipgloss.Width(rendered)

		focusables = append(focusables, FocusableInfo{
			ID:      b.Action,
			OffsetX: x,
			Width:   w,
			Height:  1,
		})
		parts = append(parts, rendered)
		x += w + buttonGap
	}

	return RenderedSection{
		Content:    strings.Join(parts, strings.Repeat(" ", buttonGap)),
		Focusables: focusables,
	}
}
