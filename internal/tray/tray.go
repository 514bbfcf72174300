// Package tray owns the tray icon and its menu and dispatches their events
// to the autostart registrar and the main window.
package tray

import (
	"errors"
	"sync"

	"github.com/Mavwarf/luwidget/internal/eventlog"
)

// ErrNoIcon is returned by New when no icon is supplied. A tray-less
// background app cannot be revealed again, so callers treat it as fatal.
var ErrNoIcon = errors.New("tray icon is required")

// ItemID identifies a tray menu entry.
type ItemID string

// Menu item identifiers.
const (
	ToggleAutostart ItemID = "toggle_autostart"
	Quit            ItemID = "quit"
)

// Item is one tray menu entry.
type Item struct {
	ID        ItemID
	Title     string
	Tooltip   string
	Checkable bool
	Checked   bool
}

// Menu is the ordered tray menu.
type Menu struct {
	Items []Item
}

// DefaultMenu is the two-entry menu: autostart checkbox, quit.
func DefaultMenu() *Menu {
	return &Menu{Items: []Item{
		{ID: ToggleAutostart, Title: "Start on boot", Tooltip: "Launch at login", Checkable: true},
		{ID: Quit, Title: "Quit", Tooltip: "Exit the application"},
	}}
}

// MouseButton is the button of a tray icon click.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
)

// ButtonState is the press state of a tray icon click.
type ButtonState int

const (
	StateUp ButtonState = iota
	StateDown
)

// ClickEvent is a mouse event over the tray icon.
type ClickEvent struct {
	Button MouseButton
	State  ButtonState
}

// MenuItem is a built platform menu entry.
type MenuItem interface {
	SetChecked(checked bool)
}

// Binding is the platform tray the controller drives.
type Binding interface {
	SetIcon(icon []byte)
	SetTooltip(text string)
	AddItem(item Item, onClick func()) MenuItem
	OnClick(fn func(ClickEvent))
}

// AutoLauncher is the autostart state the menu checkbox mirrors.
type AutoLauncher interface {
	IsEnabled() bool
	Toggle() (bool, error)
}

// WindowToggler reacts to tray icon activation.
type WindowToggler interface {
	ToggleOrReveal()
}

// Options configures a Controller. Menu may be nil for a click-only tray.
type Options struct {
	Icon       []byte
	Tooltip    string
	Menu       *Menu
	AutoLaunch AutoLauncher
	Windows    WindowToggler
	Exit       func(code int)
}

// command is the closed set of actions a menu id maps to.
type command int

const (
	cmdIgnore command = iota
	cmdToggleAutostart
	cmdQuit
)

func parseCommand(id string) command {
	switch ItemID(id) {
	case ToggleAutostart:
		return cmdToggleAutostart
	case Quit:
		return cmdQuit
	default:
		return cmdIgnore
	}
}

// Controller dispatches tray events. Handlers run one at a time.
type Controller struct {
	mu    sync.Mutex
	opts  Options
	items map[ItemID]MenuItem
}

// New validates opts and returns a Controller.
func New(opts Options) (*Controller, error) {
	if len(opts.Icon) == 0 {
		return nil, ErrNoIcon
	}
	return &Controller{opts: opts, items: map[ItemID]MenuItem{}}, nil
}

// Attach installs the icon, tooltip, menu and click handler on b. The
// autostart checkbox is seeded from the current OS state.
func (c *Controller) Attach(b Binding) {
	b.SetIcon(c.opts.Icon)
	if c.opts.Tooltip != "" {
		b.SetTooltip(c.opts.Tooltip)
	}
	if c.opts.Menu != nil {
		for _, item := range c.opts.Menu.Items {
			if item.ID == ToggleAutostart && c.opts.AutoLaunch != nil {
				item.Checked = c.opts.AutoLaunch.IsEnabled()
			}
			id := string(item.ID)
			mi := b.AddItem(item, func() { c.HandleMenuEvent(id) })
			c.mu.Lock()
			c.items[item.ID] = mi
			c.mu.Unlock()
		}
	}
	b.OnClick(c.HandleTrayEvent)
}

// HandleMenuEvent dispatches a menu click by item id. Unknown ids are
// ignored.
func (c *Controller) HandleMenuEvent(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch parseCommand(id) {
	case cmdToggleAutostart:
		c.toggleAutostart()
	case cmdQuit:
		eventlog.Menu(id, true)
		c.exit(0)
	case cmdIgnore:
		eventlog.Menu(id, false)
	}
}

// toggleAutostart flips the registration. The checkbox follows only a
// successful toggle.
func (c *Controller) toggleAutostart() {
	if c.opts.AutoLaunch == nil {
		return
	}
	on, err := c.opts.AutoLaunch.Toggle()
	eventlog.Toggle("menu", on, err)
	if err != nil {
		return
	}
	if mi, ok := c.items[ToggleAutostart]; ok {
		mi.SetChecked(on)
	}
}

// HandleTrayEvent reacts to a left button release over the icon; every
// other button and state is ignored.
func (c *Controller) HandleTrayEvent(ev ClickEvent) {
	if ev.Button != ButtonLeft || ev.State != StateUp {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.opts.Windows != nil {
		c.opts.Windows.ToggleOrReveal()
	}
}

// SetAutostartChecked updates the checkbox after a toggle made outside
// the menu, e.g. from the web UI.
func (c *Controller) SetAutostartChecked(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if mi, ok := c.items[ToggleAutostart]; ok {
		mi.SetChecked(on)
	}
}

func (c *Controller) exit(code int) {
	if c.opts.Exit != nil {
		c.opts.Exit(code)
	}
}
