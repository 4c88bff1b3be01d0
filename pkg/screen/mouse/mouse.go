// Package mouse maps terminal mouse events onto named screen regions.
package mouse

import tea "github.com/charmbracelet/bubbletea"

// Rect is a screen rectangle; W and H are exclusive bounds
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named clickable area
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds the regions registered during the last render.
// Regions added later take priority over earlier overlapping ones.
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty hit map
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region
func (h *HitMap) AddRect(id string, x, y, w, h2 int, data any) {
	h.regions = append(h.regions, Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: h2}, Data: data})
}

// Test returns the topmost region at (x, y), or nil
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			r := h.regions[i]
			return &r
		}
	}
	return nil
}

// Regions returns the registered regions in insertion order
func (h *HitMap) Regions() []Region {
	return h.regions
}

// Clear removes all regions
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// ActionType classifies a mouse event
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionHover
	ActionScrollUp
	ActionScrollDown
)

// Action is the result of HandleMouse
type Action struct {
	Type   ActionType
	Region *Region
	X, Y   int
}

// Handler resolves mouse messages against a HitMap
type Handler struct {
	HitMap *HitMap
}

// NewHandler creates a handler with an empty hit map
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// HandleMouse classifies msg and resolves the region under the pointer
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	a := Action{X: msg.X, Y: msg.Y, Region: h.HitMap.Test(msg.X, msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			a.Type = ActionClick
		case tea.MouseButtonWheelUp:
			a.Type = ActionScrollUp
		case tea.MouseButtonWheelDown:
			a.Type = ActionScrollDown
		}
	case tea.MouseActionMotion:
		a.Type = ActionHover
	}
	return a
}

// Clear removes all regions
func (h *Handler) Clear() {
	h.HitMap.Clear()
}
