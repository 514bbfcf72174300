package eventlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Mavwarf/luwidget/internal/paths"
)

// maxMessageLen caps how much of a notification message is written.
const maxMessageLen = 80

// FileStore implements Store using a flat log file. When mirror is set,
// every line is also written there.
type FileStore struct {
	path   string
	mirror io.Writer
}

// NewFileStore returns a FileStore that reads and writes the given log file.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// WithMirror returns a copy of f that also writes each line to w.
func (f *FileStore) WithMirror(w io.Writer) *FileStore {
	return &FileStore{path: f.path, mirror: w}
}

// openLog opens (or creates) the log file for appending, creating the
// parent directory if needed.
func (f *FileStore) openLog() (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(f.path), paths.DirPerm); err != nil {
		return nil, err
	}
	return os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, paths.FilePerm)
}

// writeLine appends one "<ts>  event=<event>  fields..." line.
func (f *FileStore) writeLine(event string, fields ...string) error {
	file, err := f.openLog()
	if err != nil {
		return err
	}
	defer file.Close()

	line := time.Now().Format(time.RFC3339) + "  event=" + event
	if len(fields) > 0 {
		line += "  " + strings.Join(fields, "  ")
	}
	if f.mirror != nil {
		fmt.Fprintln(f.mirror, line)
	}
	_, err = fmt.Fprintln(file, line)
	return err
}

func (f *FileStore) LogStartup(appName string, autostart bool) error {
	return f.writeLine("startup",
		fmt.Sprintf("app=%s", appName),
		fmt.Sprintf("autostart=%t", autostart))
}

func (f *FileStore) LogToggle(source string, enabled bool, err error) error {
	if err != nil {
		return f.writeLine("toggle_autostart",
			fmt.Sprintf("source=%s", source),
			fmt.Sprintf("error=%q", err.Error()))
	}
	return f.writeLine("toggle_autostart",
		fmt.Sprintf("source=%s", source),
		fmt.Sprintf("enabled=%t", enabled))
}

func (f *FileStore) LogNotification(message string, err error) error {
	fields := []string{fmt.Sprintf("message=%q", truncate(message, maxMessageLen))}
	if err != nil {
		fields = append(fields, fmt.Sprintf("error=%q", err.Error()))
	}
	return f.writeLine("notification", fields...)
}

func (f *FileStore) LogWindow(label, op string, err error) error {
	fields := []string{
		fmt.Sprintf("window=%s", label),
		fmt.Sprintf("op=%s", op),
	}
	if err != nil {
		fields = append(fields, fmt.Sprintf("error=%q", err.Error()))
	}
	return f.writeLine("window", fields...)
}

func (f *FileStore) LogMenu(id string, handled bool) error {
	return f.writeLine("menu",
		fmt.Sprintf("id=%s", id),
		fmt.Sprintf("handled=%t", handled))
}

func (f *FileStore) ReadContent() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

func (f *FileStore) Path() string { return f.path }

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
