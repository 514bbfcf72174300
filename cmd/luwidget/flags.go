package main

import (
	"fmt"

	"github.com/Mavwarf/luwidget/internal/commands"
)

// cliOptions are the flags of a normal launch.
type cliOptions struct {
	configPath string
	hidden     bool
	version    bool
	help       bool
	req        request
}

// request is a command handed to the running instance.
type request struct {
	cmd commands.Name
	arg string
}

func parseFlags(args []string) (cliOptions, error) {
	var o cliOptions
	rest := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config", "-c":
			if i+1 >= len(args) {
				return o, fmt.Errorf("--config requires a file path")
			}
			o.configPath = args[i+1]
			i++
		case "--hidden":
			o.hidden = true
		case "--version", "-V":
			o.version = true
		case "--help", "-h":
			o.help = true
		default:
			rest = append(rest, args[i])
		}
	}
	req, _, err := parseForward(rest)
	if err != nil {
		return o, err
	}
	o.req = req
	return o, nil
}

// parseForward picks the forwarded command out of args. Unknown
// arguments are returned, not rejected: platforms add their own.
func parseForward(args []string) (request, []string, error) {
	var req request
	var unknown []string
	set := func(cmd commands.Name) error {
		if req.cmd != "" {
			return fmt.Errorf("only one of --notify, --close-notify, --toggle-autostart, --quit may be given")
		}
		req.cmd = cmd
		return nil
	}
	for i := 0; i < len(args); i++ {
		var err error
		switch args[i] {
		case "--notify":
			if i+1 >= len(args) {
				return req, unknown, fmt.Errorf("--notify requires a message")
			}
			err = set(commands.ShowNotification)
			req.arg = args[i+1]
			i++
		case "--close-notify":
			err = set(commands.CloseNotification)
		case "--toggle-autostart":
			err = set(commands.ToggleAutoLaunch)
		case "--quit":
			err = set(commands.ExitApp)
		default:
			unknown = append(unknown, args[i])
		}
		if err != nil {
			return request{}, unknown, err
		}
	}
	return req, unknown, nil
}
