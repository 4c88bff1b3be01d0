package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/pdp/pkg/screen/mouse"
)

// ActionCancel is returned by HandleKey when Esc is pressed
const ActionCancel = "cancel"

// RegionPrefix prefixes the hit region IDs of modal buttons
const RegionPrefix = "modal:"

// BackdropRegion covers the whole screen while a modal is shown
const BackdropRegion = "modal-backdrop"

const defaultWidth = 50

const defaultHints = "tab switch · enter confirm · esc close"

// Modal is a dialog made of sections
type Modal struct {
	title    string
	width    int
	hints    string
	sections []Section

	focusables []string
	focusIdx   int
	hoverID    string
}

// Option configures a Modal
type Option func(*Modal)

// WithWidth sets the modal width, borders excluded
func WithWidth(w int) Option {
	return func(m *Modal) {
		if w > 0 {
			m.width = w
		}
	}
}

// WithHints replaces the keyboard hint line. An empty string hides it.
func WithHints(hints string) Option {
	return func(m *Modal) {
		m.hints = hints
	}
}

// New creates an empty modal
func New(title string, opts ...Option) *Modal {
	m := &Modal{title: title, width: defaultWidth, hints: defaultHints}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddSection appends a section and returns m for chaining
func (m *Modal) AddSection(s Section) *Modal {
	if b, ok := s.(*buttonsSection); ok {
		for _, btn := range b.buttons {
			m.focusables = append(m.focusables, btn.Action)
		}
	}
	m.sections = append(m.sections, s)
	return m
}

// FocusedID returns the action ID of the focused button, or ""
func (m *Modal) FocusedID() string {
	if len(m.focusables) == 0 {
		return ""
	}
	return m.focusables[m.focusIdx]
}

// HandleKey processes a key press and returns the triggered action, if any
func (m *Modal) HandleKey(msg tea.KeyMsg) (string, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return ActionCancel, nil
	case "tab", "right", "l":
		m.moveFocus(1)
	case "shift+tab", "left", "h":
		m.moveFocus(-1)
	case "enter", " ":
		return m.FocusedID(), nil
	}
	return "", nil
}

func (m *Modal) moveFocus(delta int) {
	n := len(m.focusables)
	if n == 0 {
		return
	}
	m.focusIdx = ((m.focusIdx+delta)%n + n) % n
}

// HandleMouse processes a resolved mouse action and returns the clicked
// button's action, if any
func (m *Modal) HandleMouse(a mouse.Action) string {
	id := ""
	if a.Region != nil && strings.HasPrefix(a.Region.ID, RegionPrefix) {
		id = strings.TrimPrefix(a.Region.ID, RegionPrefix)
	}

	switch a.Type {
	case mouse.ActionHover:
		m.hoverID = id
	case mouse.ActionClick:
		return id
	}
	return ""
}

// Render draws the modal centered over background, a screenW x screenH
// frame, and registers its hit regions with handler (which may be nil).
// Rows of background outside the box stay visible.
func (m *Modal) Render(background string, screenW, screenH int, handler *mouse.Handler) string {
	contentWidth := m.width - 4
	focusID := m.FocusedID()

	type placed struct {
		info FocusableInfo
		y    int
	}
	var (
		blocks  []string
		regions []placed
		y       int
	)

	title := ModalTitle.Render(m.title)
	blocks = append(blocks, title, "")
	y += lipgloss.Height(title) + 1

	for _, s := range m.sections {
		rs := s.Render(contentWidth, focusID, m.hoverID)
		for _, f := range rs.Focusables {
			regions = append(regions, placed{info: f, y: y})
		}
		blocks = append(blocks, rs.Content)
		y += lipgloss.Height(rs.Content)
	}

	if m.hints != "" {
		blocks = append(blocks, "", MutedText.Render(m.hints))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderNormal).
		Padding(1, 2).
		Width(m.width).
		Render(strings.Join(blocks, "\n"))

	x0 := max(0, (screenW-lipgloss.Width(box))/2)
	y0 := max(0, (screenH-lipgloss.Height(box))/2)

	if handler != nil {
		// border + padding
		cx, cy := x0+3, y0+2

		handler.HitMap.AddRect(BackdropRegion, 0, 0, screenW, screenH, nil)
		for _, r := range regions {
			handler.HitMap.AddRect(RegionPrefix+r.info.ID,
				cx+r.info.OffsetX, cy+r.y+r.info.OffsetY,
				r.info.Width, max(1, r.info.Height), nil)
		}
	}

	return overlay(background, box, x0, y0, screenH)
}

// overlay draws box over the first height rows of bg with its top-left
// corner at column x, row y
func overlay(bg, box string, x, y, height int) string {
	lines := strings.Split(bg, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}

	for i, row := range strings.Split(box, "\n") {
		n := y + i
		if n >= len(lines) {
			break
		}
		line := lines[n]
		w := ansi.StringWidth(line)
		if w < x {
			line += strings.Repeat(" ", x-w)
			w = x
		}

		right := ""
		if end := x + ansi.StringWidth(row); w > end {
			right = ansi.ResetStyle + ansi.Cut(line, end, w)
		}
		lines[n] = ansi.Truncate(line, x, "") + ansi.ResetStyle + row + right
	}

	return strings.Join(lines, "\n")
}
