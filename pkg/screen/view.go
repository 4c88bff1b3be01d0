package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/pdp/pkg/screen/mouse"
)

// layout stacks blocks vertically and tracks the row each one starts on
type layout struct {
	blocks []string
	y      int
}

func (l *layout) add(s string) int {
	top := l.y
	l.blocks = append(l.blocks, s)
	l.y += lipgloss.Height(s)
	return top
}

func (l *layout) String() string {
	return strings.Join(l.blocks, "\n")
}

func (m Model) dims() (int, int) {
	w, h := m.Width, m.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// View implements tea.Model. Hit regions are rebuilt on every render.
func (m Model) View() string {
	w, h := m.dims()
	m.mouse.Clear()

	screen, regions := m.render(w, h)
	if m.infoModal != nil {
		return m.infoModal.Render(screen, w, h, m.mouse)
	}
	for _, r := range regions {
		m.mouse.HitMap.AddRect(r.ID, r.Rect.X, r.Rect.Y, r.Rect.W, r.Rect.H, r.Data)
	}
	return screen
}

// render lays out the screen and fits it to h rows. The terminal keeps the
// bottom of a frame that is too tall, so the top rows are dropped here and
// the returned regions are in the coordinates of what is actually shown.
func (m Model) render(w, h int) (string, []mouse.Region) {
	contentW := min(w, maxWidth)
	update := m.frame.update

	var (
		l       layout
		regions []mouse.Region
	)
	addRect := func(id string, x, y, width, height int, data any) {
		regions = append(regions, mouse.Region{
			ID:   id,
			Rect: mouse.Rect{X: x, Y: y, W: width, H: height},
			Data: data,
		})
	}

	l.add(m.renderImage(contentW, h))

	title, markX := m.renderTitle(contentW)
	top := l.add(title)
	addRect(regionInfo, markX, top, contentW-markX, 1, nil)

	l.add(m.desc.render(m.Product.Description, contentW))
	l.add("")
	l.add(headingStyle.Render(m.Labels.SizeHeading))

	row, offsets := m.renderSizes()
	top = l.add(row)
	rowH := lipgloss.Height(row)
	for i, v := range update.Sizes {
		addRect(regionSizePrefix+string(v.Size), offsets[i][0], top, offsets[i][1], rowH, v.Size)
	}

	l.add(m.renderStatus(contentW))

	cartStyle := cartDisabledStyle
	if update.Action.Enabled {
		cartStyle = cartEnabledStyle
	}
	cart := cartStyle.Width(contentW).Render(ansi.Truncate(update.Action.Label, contentW-2, "…"))
	top = l.add(cart)
	addRect(regionCart, 0, top, contentW, lipgloss.Height(cart), nil)

	l.add(m.help.View(m.keys))

	out := l.String()
	skip := l.y - h
	if skip <= 0 {
		return out, regions
	}

	lines := strings.Split(out, "\n")
	out = strings.Join(lines[min(skip, len(lines)):], "\n")

	visible := regions[:0]
	for _, r := range regions {
		r.Rect.Y -= skip
		if r.Rect.Y < 0 {
			r.Rect.H += r.Rect.Y
			r.Rect.Y = 0
		}
		if r.Rect.H > 0 {
			visible = append(visible, r)
		}
	}
	return out, visible
}

func (m Model) renderImage(contentW, screenH int) string {
	inner := min(6, max(1, screenH-24))
	return imageStyle.Width(contentW - 2).Height(inner).Render("[ image ]")
}

// renderTitle returns the title line and the column of the info marker
func (m Model) renderTitle(contentW int) (string, int) {
	mark := infoMarkStyle.Render("(i)")
	markW := lipgloss.Width(mark)

	title := titleStyle.Render(ansi.Truncate(m.Product.Title, max(1, contentW-markW-1), "…"))
	gap := max(1, contentW-lipgloss.Width(title)-markW)
	return title + strings.Repeat(" ", gap) + mark, lipgloss.Width(title) + gap
}

// renderSizes returns the size button row and each button's [x, width]
func (m Model) renderSizes() (string, [][2]int) {
	sizes := m.frame.update.Sizes
	parts := make([]string, 0, 2*len(sizes))
	offsets := make([][2]int, len(sizes))

	x := 0
	for i, v := range sizes {
		style := sizeStyle
		if v.Selected {
			style = sizeSelectedStyle
		}
		if i == m.cursor {
			style = style.BorderForeground(cursorColor)
		}

		btn := style.Render(string(v.Size))
		w := lipgloss.Width(btn)
		offsets[i] = [2]int{x, w}

		if i > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, btn)
		x += w + 1
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...), offsets
}

func (m Model) renderStatus(contentW int) string {
	if m.status == "" {
		return ""
	}
	s := ansi.Truncate(m.status, contentW, "…")
	if m.statusIsError {
		return statusErrorStyle.Render(s)
	}
	return statusOKStyle.Render(s)
}
