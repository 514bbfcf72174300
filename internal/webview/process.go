package webview

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"

	"github.com/Mavwarf/luwidget/internal/window"
)

// Flags passed to a child window process.
const (
	flagWindow    = "--window"
	flagOptions   = "--window-options"
	flagParentPID = "--parent-pid"
)

// process is a running child window. Writes go to its stdin. Ready is
// closed once the child has built its window.
type process interface {
	io.WriteCloser
	Ready() <-chan struct{}
	Wait() error
	Kill() error
}

type starter func(label string, opts window.Options) (process, error)

type execProcess struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
	out   *readyWriter
}

func (p *execProcess) Write(b []byte) (int, error) { return p.stdin.Write(b) }
func (p *execProcess) Close() error                { return p.stdin.Close() }
func (p *execProcess) Ready() <-chan struct{}      { return p.out.ready }
func (p *execProcess) Wait() error                 { return p.cmd.Wait() }
func (p *execProcess) Kill() error                 { return p.cmd.Process.Kill() }

// execStarter starts exePath in child window mode.
func execStarter(exePath string) starter {
	return func(label string, opts window.Options) (process, error) {
		args, err := childArgs(label, opts, os.Getpid())
		if err != nil {
			return nil, err
		}
		out := newReadyWriter(os.Stdout)
		cmd := exec.Command(exePath, args...)
		cmd.Stdout = out
		cmd.Stderr = os.Stderr
		stdin, err := cmd.StdinPipe()
		if err != nil {
			return nil, fmt.Errorf("stdin pipe: %w", err)
		}
		if err := cmd.Start(); err != nil {
			return nil, err
		}
		return &execProcess{cmd: cmd, stdin: stdin, out: out}, nil
	}
}

// readyWriter passes a child's stdout through to out and closes ready
// when the child prints readyLine. exec.Cmd copies stdout from a single
// goroutine, so Write is never called concurrently.
type readyWriter struct {
	out     io.Writer
	ready   chan struct{}
	partial []byte
}

func newReadyWriter(out io.Writer) *readyWriter {
	return &readyWriter{out: out, ready: make(chan struct{})}
}

func (r *readyWriter) isReady() bool {
	select {
	case <-r.ready:
		return true
	default:
		return false
	}
}

func (r *readyWriter) Write(b []byte) (int, error) {
	if r.isReady() {
		r.out.Write(b)
		return len(b), nil
	}
	r.partial = append(r.partial, b...)
	for {
		i := bytes.IndexByte(r.partial, '\n')
		if i < 0 {
			break
		}
		line := r.partial[:i+1]
		if !r.isReady() && string(bytes.TrimSpace(line)) == readyLine {
			close(r.ready)
		} else {
			r.out.Write(line)
		}
		r.partial = r.partial[i+1:]
	}
	if r.isReady() && len(r.partial) > 0 {
		r.out.Write(r.partial)
		r.partial = nil
	}
	return len(b), nil
}

// ChildSpec is what a child window process is started with.
type ChildSpec struct {
	Label     string
	Options   window.Options
	ParentPID int
}

func childArgs(label string, opts window.Options, parentPID int) ([]string, error) {
	b, err := json.Marshal(opts)
	if err != nil {
		return nil, fmt.Errorf("encode window options: %w", err)
	}
	return []string{
		flagWindow, label,
		flagOptions, string(b),
		flagParentPID, strconv.Itoa(parentPID),
	}, nil
}

// ParseChildArgs reports whether args start a child window process and,
// if so, returns its spec.
func ParseChildArgs(args []string) (ChildSpec, bool, error) {
	var spec ChildSpec
	found := false
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case flagWindow:
			if i+1 >= len(args) {
				return spec, true, fmt.Errorf("%s requires a label", flagWindow)
			}
			spec.Label = args[i+1]
			found = true
			i++
		case flagOptions:
			if i+1 >= len(args) {
				return spec, true, fmt.Errorf("%s requires a value", flagOptions)
			}
			if err := json.Unmarshal([]byte(args[i+1]), &spec.Options); err != nil {
				return spec, true, fmt.Errorf("parse %s: %w", flagOptions, err)
			}
			i++
		case flagParentPID:
			if i+1 >= len(args) {
				return spec, true, fmt.Errorf("%s requires a pid", flagParentPID)
			}
			pid, err := strconv.Atoi(args[i+1])
			if err != nil {
				return spec, true, fmt.Errorf("parse %s: %w", flagParentPID, err)
			}
			spec.ParentPID = pid
			i++
		}
	}
	return spec, found, nil
}
