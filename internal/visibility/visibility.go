// Package visibility toggles the main window from the tray.
package visibility

import (
	"github.com/Mavwarf/luwidget/internal/eventlog"
	"github.com/Mavwarf/luwidget/internal/window"
)

// Controller shows, hides and focuses the main window.
type Controller struct {
	windows window.Registry
}

// NewController returns a Controller over the given registry.
func NewController(r window.Registry) *Controller {
	return &Controller{windows: r}
}

// ToggleOrReveal hides the main window when it is visible. Otherwise, or
// when visibility cannot be determined, it shows and focuses it so the
// user can always get the window back.
func (c *Controller) ToggleOrReveal() {
	w, ok := c.windows.Get(window.Main)
	if !ok {
		return
	}
	visible, err := w.IsVisible()
	if err == nil && visible {
		if err := w.Hide(); err != nil {
			eventlog.Window(window.Main, "hide", err)
		}
		return
	}
	c.reveal(w)
}

// Reveal shows and focuses the main window regardless of its state.
func (c *Controller) Reveal() {
	if w, ok := c.windows.Get(window.Main); ok {
		c.reveal(w)
	}
}

func (c *Controller) reveal(w window.Window) {
	if err := w.Show(); err != nil {
		eventlog.Window(window.Main, "show", err)
	}
	if err := w.SetFocus(); err != nil {
		eventlog.Window(window.Main, "focus", err)
	}
}
