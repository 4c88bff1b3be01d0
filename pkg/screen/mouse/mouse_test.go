package mouse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}

	cases := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},  // Top-left corner
		{29, 19, true},  // Bottom-right corner
		{15, 15, true},  // Center
		{9, 10, false},  // Just left
		{30, 10, false}, // Just right (exclusive)
		{10, 9, false},  // Just above
		{10, 20, false}, // Just below (exclusive)
	}

	for _, tc := range cases {
		got := r.Contains(tc.x, tc.y)
		if got != tc.expected {
			t.Errorf("Rect(%+v).Contains(%d, %d) = %v, want %v", r, tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestHitMapPriority(t *testing.T) {
	hm := NewHitMap()

	hm.AddRect("screen", 0, 0, 100, 100, nil)
	hm.AddRect("size:M", 40, 40, 6, 3, "M")

	r := hm.Test(42, 41)
	if r == nil || r.ID != "size:M" {
		t.Fatalf("expected hit on size:M, got %v", r)
	}
	if r.Data != "M" {
		t.Errorf("region data = %v, want M", r.Data)
	}

	r = hm.Test(5, 5)
	if r == nil || r.ID != "screen" {
		t.Errorf("expected hit on screen, got %v", r)
	}

	if r := NewHitMap().Test(1, 1); r != nil {
		t.Errorf("empty map hit %v", r)
	}
}

func TestHitMapClear(t *testing.T) {
	hm := NewHitMap()
	hm.AddRect("a", 0, 0, 5, 5, nil)
	hm.AddRect("b", 6, 0, 5, 5, nil)

	if len(hm.Regions()) != 2 {
		t.Errorf("expected 2 regions, got %d", len(hm.Regions()))
	}
	hm.Clear()
	if len(hm.Regions()) != 0 {
		t.Errorf("expected 0 regions after clear, got %d", len(hm.Regions()))
	}
}

func TestHandleMouseActions(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("cart", 10, 10, 30, 3, nil)

	tests := []struct {
		name   string
		msg    tea.MouseMsg
		want   ActionType
		region string
	}{
		{
			name:   "left click",
			msg:    tea.MouseMsg{X: 20, Y: 11, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			want:   ActionClick,
			region: "cart",
		},
		{
			name: "click miss",
			msg:  tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			want: ActionClick,
		},
		{
			name:   "hover",
			msg:    tea.MouseMsg{X: 25, Y: 12, Action: tea.MouseActionMotion},
			want:   ActionHover,
			region: "cart",
		},
		{
			name: "wheel up",
			msg:  tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp},
			want: ActionScrollUp,
		},
		{
			name: "wheel down",
			msg:  tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown},
			want: ActionScrollDown,
		},
		{
			name: "release",
			msg:  tea.MouseMsg{X: 20, Y: 11, Action: tea.MouseActionRelease},
			want: ActionNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := h.HandleMouse(tt.msg)
			if a.Type != tt.want {
				t.Errorf("Type = %v, want %v", a.Type, tt.want)
			}
			gotRegion := ""
			if a.Region != nil {
				gotRegion = a.Region.ID
			}
			if tt.region != "" && gotRegion != tt.region {
				t.Errorf("Region = %q, want %q", gotRegion, tt.region)
			}
		})
	}
}

func TestHandlerClear(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("button", 10, 10, 30, 10, nil)

	h.Clear()

	if len(h.HitMap.Regions()) != 0 {
		t.Errorf("expected 0 regions after Clear, got %d", len(h.HitMap.Regions()))
	}
}
