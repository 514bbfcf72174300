package webview

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"

	"github.com/Mavwarf/luwidget/internal/procwait"
)

// ChildView runs inside a child window process. It applies frames from
// the parent and holds scripts until the page has loaded.
type ChildView struct {
	ops    windowOps
	center bool
	signal io.Writer     // told readyLine once the window exists
	ready  chan struct{} // closed when Wails startup completes

	mu      sync.Mutex
	ctx     context.Context
	loaded  bool
	pending []string
}

func newChildView(ops windowOps, center bool, signal io.Writer) *ChildView {
	return &ChildView{ops: ops, center: center, signal: signal, ready: make(chan struct{})}
}

func (v *ChildView) startup(ctx context.Context) {
	v.mu.Lock()
	v.ctx = ctx
	v.mu.Unlock()
	if v.center {
		v.ops.Center(ctx)
	}
	close(v.ready)
	fmt.Fprintln(v.signal, readyLine)
}

// domReady flushes scripts received before the page loaded, so values
// they set are readable by the page at load time.
func (v *ChildView) domReady(ctx context.Context) {
	v.mu.Lock()
	v.loaded = true
	pending := v.pending
	v.pending = nil
	v.mu.Unlock()
	for _, s := range pending {
		v.ops.ExecJS(ctx, s)
	}
}

func (v *ChildView) apply(f frame) {
	<-v.ready
	v.mu.Lock()
	ctx := v.ctx
	if f.Op == opEval && !v.loaded {
		v.pending = append(v.pending, f.Script)
		v.mu.Unlock()
		return
	}
	v.mu.Unlock()

	switch f.Op {
	case opEval:
		v.ops.ExecJS(ctx, f.Script)
	case opShow:
		v.ops.Show(ctx)
	case opHide:
		v.ops.Hide(ctx)
	case opFocus:
		v.ops.Unminimise(ctx)
		v.ops.Show(ctx)
	case opClose:
		v.ops.Quit(ctx)
	}
}

// follow applies frames from r and quits when the parent closes it.
func (v *ChildView) follow(r io.Reader) {
	if err := readFrames(r, v.apply); err != nil {
		fmt.Fprintf(os.Stderr, "luwidget: %v\n", err)
	}
	v.Dismiss()
}

// Dismiss closes the window. Bound to the page so it can close itself.
func (v *ChildView) Dismiss() {
	<-v.ready
	v.mu.Lock()
	ctx := v.ctx
	v.mu.Unlock()
	v.ops.Quit(ctx)
}

// RunChild runs a child window until it is closed. assets holds the
// bundled UI; spec.Options.URL names the page served at the root.
func RunChild(spec ChildSpec, assets fs.FS, in io.Reader) error {
	o := spec.Options
	v := newChildView(wailsOps{}, o.Center, os.Stdout)

	go v.follow(in)
	if spec.ParentPID > 0 {
		go func() {
			// Exit with the parent.
			procwait.Wait(context.Background(), spec.ParentPID)
			v.Dismiss()
		}()
	}

	return wails.Run(&options.App{
		Title:            o.Title,
		Width:            o.Width,
		Height:           o.Height,
		DisableResize:    !o.Resizable,
		Frameless:        !o.Decorations,
		AlwaysOnTop:      o.AlwaysOnTop,
		BackgroundColour: background(o.Transparent),
		AssetServer: &assetserver.Options{
			Handler: viewHandler(assets, o.URL),
		},
		OnStartup:  v.startup,
		OnDomReady: v.domReady,
		Bind:       []interface{}{v},
		Windows: &windows.Options{
			WebviewIsTransparent: o.Transparent,
			WindowIsTranslucent:  o.Transparent,
		},
		Mac: &mac.Options{
			WebviewIsTransparent: o.Transparent,
			WindowIsTranslucent:  o.Transparent,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: o.Transparent,
		},
	})
}

func background(transparent bool) *options.RGBA {
	if transparent {
		return &options.RGBA{R: 0, G: 0, B: 0, A: 0}
	}
	return &options.RGBA{R: 26, G: 27, B: 38, A: 255} // #1a1b26
}

// viewHandler serves page at the root and every other asset as is.
func viewHandler(assets fs.FS, page string) http.Handler {
	files := http.FileServer(http.FS(assets))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if page != "" && (r.URL.Path == "/" || r.URL.Path == "/index.html") {
			data, err := fs.ReadFile(assets, strings.TrimPrefix(page, "/"))
			if err != nil {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(data)
			return
		}
		files.ServeHTTP(w, r)
	})
}
