// Package modal provides a small declarative modal dialog with mouse hit
// regions and keyboard focus handling.
//
// Hit regions are computed after rendering (render-then-measure), so button
// positions always match what is on screen.
//
//	m := modal.New("Additional information").
//	    AddSection(modal.Text(product.InfoText)).
//	    AddSection(modal.Spacer()).
//	    AddSection(modal.Buttons(modal.Btn(" Got it ", "close")))
//
//	// In View(), draw over the rendered screen:
//	content := m.Render(screen, screenW, screenH, mouseHandler)
//
//	// In Update():
//	if action, _ := m.HandleKey(keyMsg); action == "close" {
//	    ...
//	}
//
// Keys: Tab/Shift+Tab move focus, Enter activates the focused button, Esc
// returns the cancel action.
package modal
