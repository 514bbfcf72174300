package tray

import (
	"bytes"
	"encoding/binary"
	goruntime "runtime"

	"github.com/energye/systray"
)

// Run starts the system tray and attaches c once it is ready. Must be
// called in a goroutine; systray.Run blocks until Quit is called.
func Run(c *Controller, onReady func()) {
	// Lock this goroutine to an OS thread so that the hidden window created
	// by systray and the GetMessage loop share the same thread.
	goruntime.LockOSThread()
	systray.Run(func() {
		c.Attach(systrayBinding{hasMenu: c.opts.Menu != nil})
		if onReady != nil {
			onReady()
		}
	}, func() {})
}

// Stop removes the tray icon and ends Run.
func Stop() {
	systray.Quit()
}

// systrayBinding adapts energye/systray to Binding.
type systrayBinding struct {
	hasMenu bool
}

func (systrayBinding) SetIcon(icon []byte) {
	systray.SetIcon(platformIcon(icon))
}

func (systrayBinding) SetTooltip(text string) {
	systray.SetTooltip(text)
}

func (systrayBinding) AddItem(item Item, onClick func()) MenuItem {
	var mi *systray.MenuItem
	if item.Checkable {
		mi = systray.AddMenuItemCheckbox(item.Title, item.Tooltip, item.Checked)
	} else {
		mi = systray.AddMenuItem(item.Title, item.Tooltip)
	}
	mi.Click(onClick)
	return systrayItem{mi}
}

// OnClick routes left clicks to fn. energye/systray reports a left click
// once the button is released. Right click opens the menu when there is one.
func (b systrayBinding) OnClick(fn func(ClickEvent)) {
	systray.SetOnClick(func(menu systray.IMenu) {
		fn(ClickEvent{Button: ButtonLeft, State: StateUp})
	})
	systray.SetOnRClick(func(menu systray.IMenu) {
		if b.hasMenu {
			menu.ShowMenu()
		}
	})
}

type systrayItem struct {
	mi *systray.MenuItem
}

func (s systrayItem) SetChecked(checked bool) {
	if checked {
		s.mi.Check()
	} else {
		s.mi.Uncheck()
	}
}

// platformIcon converts PNG icon data to what the platform tray expects.
// Windows LoadImage(IMAGE_ICON) requires ICO format.
func platformIcon(png []byte) []byte {
	if goruntime.GOOS == "windows" {
		return pngToICO(png)
	}
	return png
}

// pngToICO wraps raw PNG bytes in a minimal ICO container.
// Since Vista, ICO supports embedded PNG data directly.
func pngToICO(png []byte) []byte {
	buf := new(bytes.Buffer)
	// ICONDIR header
	binary.Write(buf, binary.LittleEndian, uint16(0)) // reserved
	binary.Write(buf, binary.LittleEndian, uint16(1)) // type: 1 = ICO
	binary.Write(buf, binary.LittleEndian, uint16(1)) // count: 1 image

	// ICONDIRENTRY
	buf.WriteByte(0) // width (0 = 256)
	buf.WriteByte(0) // height (0 = 256)
	buf.WriteByte(0) // color count
	buf.WriteByte(0) // reserved
	binary.Write(buf, binary.LittleEndian, uint16(1))        // color planes
	binary.Write(buf, binary.LittleEndian, uint16(32))       // bits per pixel
	binary.Write(buf, binary.LittleEndian, uint32(len(png))) // image data size
	binary.Write(buf, binary.LittleEndian, uint32(6+1*16))   // offset to image data (header + 1 entry)

	buf.Write(png)
	return buf.Bytes()
}
