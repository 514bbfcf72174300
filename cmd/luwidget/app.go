package main

import (
	"context"
	"fmt"
	"os"

	"github.com/wailsapp/wails/v2/pkg/options"

	"github.com/Mavwarf/luwidget/internal/commands"
	"github.com/Mavwarf/luwidget/internal/webview"
)

// revealer brings the main window to the front.
type revealer interface {
	Reveal()
}

// App is bound to the main window's web UI. Its exported methods are the
// commands the page can call.
type App struct {
	surface *commands.Surface
	main    *webview.MainWindow
	windows revealer

	// pending is a request from the command line, run once Wails is up.
	pending request
}

func newApp(s *commands.Surface, m *webview.MainWindow, w revealer, pending request) *App {
	return &App{surface: s, main: m, windows: w, pending: pending}
}

func (a *App) startup(ctx context.Context) {
	a.main.Startup(ctx)
	if a.pending.cmd != "" {
		go a.forward(a.pending)
	}
}

// onSecondInstance handles a later launch of the binary. Wails exits the
// second process after handing over its arguments.
func (a *App) onSecondInstance(data options.SecondInstanceData) {
	req, _, err := parseForward(data.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "luwidget: second instance: %v\n", err)
		return
	}
	a.forward(req)
}

// forward runs req. A request without a command reveals the main window.
func (a *App) forward(req request) {
	if req.cmd == "" {
		a.windows.Reveal()
		return
	}
	if _, err := a.surface.Invoke(req.cmd, req.arg); err != nil {
		fmt.Fprintf(os.Stderr, "luwidget: %s: %v\n", req.cmd, err)
	}
}

func (a *App) ExitApp() {
	a.surface.ExitApp()
}

func (a *App) ShowNotification(message string) error {
	return a.surface.ShowNotification(message)
}

func (a *App) CloseNotification() {
	a.surface.CloseNotification()
}

func (a *App) ToggleAutoLaunch() (bool, error) {
	return a.surface.ToggleAutoLaunch()
}

func (a *App) IsAutoLaunchEnabled() bool {
	return a.surface.IsAutoLaunchEnabled()
}
