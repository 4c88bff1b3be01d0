package screen

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// descriptionRenderer renders the product description as markdown,
// caching the result per wrap width
type descriptionRenderer struct {
	cache map[int]string
}

func newDescriptionRenderer() *descriptionRenderer {
	return &descriptionRenderer{cache: make(map[int]string)}
}

func (d *descriptionRenderer) render(md string, width int) string {
	if s, ok := d.cache[width]; ok {
		return s
	}

	out, err := renderMarkdown(md, width)
	if err != nil {
		out = lipgloss.NewStyle().Width(width).Render(md)
	}
	d.cache[width] = out
	return out
}

func renderMarkdown(md string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render(md)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}
