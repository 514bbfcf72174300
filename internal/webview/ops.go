package webview

import (
	"context"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// windowOps is the subset of the Wails runtime the adapters drive.
type windowOps interface {
	ExecJS(ctx context.Context, script string)
	Show(ctx context.Context)
	Hide(ctx context.Context)
	Unminimise(ctx context.Context)
	Center(ctx context.Context)
	Quit(ctx context.Context)
}

type wailsOps struct{}

func (wailsOps) ExecJS(ctx context.Context, script string) { wailsRuntime.WindowExecJS(ctx, script) }
func (wailsOps) Show(ctx context.Context)                  { wailsRuntime.WindowShow(ctx) }
func (wailsOps) Hide(ctx context.Context)                  { wailsRuntime.WindowHide(ctx) }
func (wailsOps) Unminimise(ctx context.Context)            { wailsRuntime.WindowUnminimise(ctx) }
func (wailsOps) Center(ctx context.Context)                { wailsRuntime.WindowCenter(ctx) }
func (wailsOps) Quit(ctx context.Context)                  { wailsRuntime.Quit(ctx) }
