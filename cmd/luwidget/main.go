package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/Mavwarf/luwidget/internal/autolaunch"
	"github.com/Mavwarf/luwidget/internal/commands"
	"github.com/Mavwarf/luwidget/internal/config"
	"github.com/Mavwarf/luwidget/internal/eventlog"
	"github.com/Mavwarf/luwidget/internal/mqtt"
	"github.com/Mavwarf/luwidget/internal/notification"
	"github.com/Mavwarf/luwidget/internal/tray"
	"github.com/Mavwarf/luwidget/internal/visibility"
	"github.com/Mavwarf/luwidget/internal/webview"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

//go:embed appicon.png
var trayIcon []byte

//go:embed frontend
var frontend embed.FS

func main() {
	args := os.Args[1:]

	ui, err := fs.Sub(frontend, "frontend")
	if err != nil {
		fatal(err)
	}

	// Child window processes are started by the running instance.
	if spec, ok, err := webview.ParseChildArgs(args); ok {
		if err != nil {
			fatal(err)
		}
		if err := webview.RunChild(spec, ui, os.Stdin); err != nil {
			fatal(err)
		}
		return
	}

	opts, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run 'luwidget --help' for usage.\n")
		os.Exit(1)
	}
	if opts.help {
		printUsage()
		return
	}
	if opts.version {
		printVersion()
		return
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fatal(err)
	}
	if err := config.Validate(cfg); err != nil {
		fatal(err)
	}
	eventlog.OpenDefault(cfg.Log)

	exe, err := os.Executable()
	if err != nil {
		fatal(err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	registrar := autolaunch.FromExecutable(cfg.AppName)
	if !registrar.Initialized() {
		fmt.Fprintf(os.Stderr, "luwidget: autostart unavailable: %v\n", autolaunch.ErrNotInitialized)
	}
	eventlog.Startup(cfg.AppName, registrar.IsEnabled())

	startHidden := cfg.StartHidden || opts.hidden
	host := webview.NewHost(exe)
	mainWindow := webview.NewMainWindow(startHidden)
	if err := host.Attach(mainWindow); err != nil {
		fatal(err)
	}
	notifier := notification.NewManager(host)
	windows := visibility.NewController(host)

	exit := func(code int) {
		tray.Stop()
		os.Exit(code)
	}

	var menu *tray.Menu
	if cfg.TrayMenu {
		menu = tray.DefaultMenu()
	}
	ctrl, err := tray.New(tray.Options{
		Icon:       trayIcon,
		Tooltip:    cfg.TooltipText(),
		Menu:       menu,
		AutoLaunch: registrar,
		Windows:    windows,
		Exit:       exit,
	})
	if err != nil {
		// A background app without a tray icon cannot be reached again.
		fatal(err)
	}

	surface := commands.New(notifier, registrar, exit)
	surface.OnToggle(ctrl.SetAutostartChecked)

	go tray.Run(ctrl, nil)

	if cfg.MQTT.Enabled() {
		sub, err := mqtt.Subscribe(mqtt.Options{
			Broker:   cfg.MQTT.Broker,
			Topic:    cfg.MQTT.Topic,
			ClientID: cfg.MQTT.ClientID,
			Username: cfg.MQTT.Username,
			Password: cfg.MQTT.Password,
			QoS:      byte(cfg.MQTT.QoS),
		}, func(message string) {
			if err := surface.ShowNotification(message); err != nil {
				fmt.Fprintf(os.Stderr, "luwidget: mqtt notification: %v\n", err)
			}
		})
		if err != nil {
			// The widget is still useful without the remote feed.
			fmt.Fprintf(os.Stderr, "luwidget: %v\n", err)
		} else {
			defer sub.Stop()
		}
	}

	app := newApp(surface, mainWindow, windows, opts.req)

	err = wails.Run(&options.App{
		Title:         cfg.AppName,
		Width:         cfg.MainWindow.Width,
		Height:        cfg.MainWindow.Height,
		StartHidden:   startHidden,
		DisableResize: true,
		AssetServer: &assetserver.Options{
			Assets: ui,
		},
		BackgroundColour: &options.RGBA{R: 26, G: 27, B: 38, A: 255}, // #1a1b26
		OnStartup:        app.startup,
		OnBeforeClose:    mainWindow.BeforeClose,
		SingleInstanceLock: &options.SingleInstanceLock{
			UniqueId:               "com.mavwarf.luwidget." + cfg.AppName,
			OnSecondInstanceLaunch: app.onSecondInstance,
		},
		Bind: []interface{}{app},
	})
	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "luwidget: %v\n", err)
	os.Exit(1)
}

func printVersion() {
	fmt.Printf("luwidget %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("luwidget %s - Tray widget with notifications and start on boot\n", version)
	fmt.Println(`
Usage:
  luwidget [options]

Options:
  --config, -c <path>    Path to luwidget-config.json
  --hidden               Start with the main window hidden
  --version, -V          Show version and build date
  --help, -h             Show this help message

Running instance:
  --notify <message>     Show a notification
  --close-notify         Close the notification
  --toggle-autostart     Flip start on boot
  --quit                 Exit

  A plain second launch brings the main window to the front.

Config resolution:
  1. --config <path>                         (explicit)
  2. luwidget-config.json next to binary     (portable)
  3. ~/.config/luwidget/luwidget-config.json (user default)`)
}
