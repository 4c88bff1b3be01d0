package modal

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/pdp/pkg/screen/mouse"
)

func newTestModal() *Modal {
	return New("Info", WithWidth(40)).
		AddSection(Text("hello")).
		AddSection(Spacer()).
		AddSection(Buttons(Btn(" OK ", "close"), Btn(" More ", "more")))
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHandleKeyFocus(t *testing.T) {
	m := newTestModal()

	if m.FocusedID() != "close" {
		t.Fatalf("initial focus = %q, want close", m.FocusedID())
	}

	m.HandleKey(key("tab"))
	if m.FocusedID() != "more" {
		t.Errorf("after tab focus = %q, want more", m.FocusedID())
	}

	// Wraps around
	m.HandleKey(key("tab"))
	if m.FocusedID() != "close" {
		t.Errorf("after second tab focus = %q, want close", m.FocusedID())
	}

	m.HandleKey(key("shift+tab"))
	if m.FocusedID() != "more" {
		t.Errorf("after shift+tab focus = %q, want more", m.FocusedID())
	}

	if action, _ := m.HandleKey(key("enter")); action != "more" {
		t.Errorf("enter action = %q, want more", action)
	}
}

func TestHandleKeyEsc(t *testing.T) {
	m := newTestModal()
	if action, _ := m.HandleKey(key("esc")); action != ActionCancel {
		t.Errorf("esc action = %q, want %q", action, ActionCancel)
	}
	if action, _ := m.HandleKey(key("x")); action != "" {
		t.Errorf("unbound key action = %q, want empty", action)
	}
}

func TestNoButtons(t *testing.T) {
	m := New("Empty").AddSection(Text("nothing to press"))
	if m.FocusedID() != "" {
		t.Errorf("FocusedID() = %q, want empty", m.FocusedID())
	}
	m.HandleKey(key("tab"))
	if action, _ := m.HandleKey(key("enter")); action != "" {
		t.Errorf("enter action = %q, want empty", action)
	}
}

func TestRenderRegistersButtons(t *testing.T) {
	m := newTestModal()
	h := mouse.NewHandler()

	out := m.Render("", 80, 24, h)
	lines := strings.Split(out, "\n")
	if len(lines) != 24 {
		t.Fatalf("rendered %d lines, want 24", len(lines))
	}

	regions := map[string]mouse.Region{}
	for _, r := range h.HitMap.Regions() {
		regions[r.ID] = r
	}
	if _, ok := regions[BackdropRegion]; !ok {
		t.Error("backdrop region not registered")
	}

	for id, label := range map[string]string{"close": "OK", "more": "More"} {
		r, ok := regions[RegionPrefix+id]
		if !ok {
			t.Fatalf("region for %q not registered", id)
		}
		if !strings.Contains(ansi.Strip(lines[r.Rect.Y]), label) {
			t.Errorf("line %d = %q, want it to contain %q", r.Rect.Y, ansi.Strip(lines[r.Rect.Y]), label)
		}

		click := h.HandleMouse(tea.MouseMsg{
			X:      r.Rect.X + 1,
			Y:      r.Rect.Y,
			Action: tea.MouseActionPress,
			Button: tea.MouseButtonLeft,
		})
		if got := m.HandleMouse(click); got != id {
			t.Errorf("click on %q returned %q", id, got)
		}
	}

	if regions[RegionPrefix+"more"].Rect.X <= regions[RegionPrefix+"close"].Rect.X {
		t.Error("second button should be right of the first")
	}
}

func TestHandleMouseBackdrop(t *testing.T) {
	m := newTestModal()
	h := mouse.NewHandler()
	m.Render("", 80, 24, h)

	click := h.HandleMouse(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.HandleMouse(click); got != "" {
		t.Errorf("backdrop click returned %q, want empty", got)
	}
}

func TestRenderOverBackground(t *testing.T) {
	bg := make([]string, 24)
	for i := range bg {
		bg[i] = strings.Repeat(".", 80)
	}
	h := mouse.NewHandler()
	out := New("Info", WithWidth(40)).
		AddSection(Buttons(Btn(" OK ", "close"))).
		Render(strings.Join(bg, "\n"), 80, 24, h)

	lines := strings.Split(out, "\n")
	if len(lines) != 24 {
		t.Fatalf("rendered %d lines, want 24", len(lines))
	}
	if got := ansi.Strip(lines[0]); got != bg[0] {
		t.Errorf("row above the box = %q, want background", got)
	}

	var ok mouse.Region
	for _, r := range h.HitMap.Regions() {
		if r.ID == RegionPrefix+"close" {
			ok = r
		}
	}
	row := ansi.Strip(lines[ok.Rect.Y])
	if !strings.Contains(row, "OK") {
		t.Errorf("button row = %q, want it to contain OK", row)
	}
	if !strings.HasPrefix(row, "..") || !strings.HasSuffix(row, "..") {
		t.Errorf("button row = %q, want background on both sides", row)
	}
	if w := ansi.StringWidth(row); w != 80 {
		t.Errorf("button row width = %d, want 80", w)
	}
}

func TestWithHints(t *testing.T) {
	tests := []struct {
		name  string
		opts  []Option
		want  string
		empty bool
	}{
		{name: "default", want: "esc close"},
		{name: "custom", opts: []Option{WithHints("esc закрыть")}, want: "esc закрыть"},
		{name: "hidden", opts: []Option{WithHints("")}, empty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ansi.Strip(New("Info", tt.opts...).AddSection(Text("hello")).Render("", 80, 24, nil))
			if tt.empty {
				if strings.Contains(out, "esc") {
					t.Errorf("hint line should be hidden:\n%s", out)
				}
				return
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}
}
