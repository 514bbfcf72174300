package eventlog

// Store abstracts event log storage. FileStore writes a flat log file;
// nopStore discards everything.
type Store interface {
	// Write. Errors are returned; the package-level helpers print
	// failures to stderr (best-effort).
	LogStartup(appName string, autostart bool) error
	LogToggle(source string, enabled bool, err error) error
	LogNotification(message string, err error) error
	LogWindow(label, op string, err error) error
	LogMenu(id string, handled bool) error

	// Read
	ReadContent() (string, error) // raw log text

	// Metadata
	Path() string
}

type nopStore struct{}

func (nopStore) LogStartup(string, bool) error         { return nil }
func (nopStore) LogToggle(string, bool, error) error   { return nil }
func (nopStore) LogNotification(string, error) error   { return nil }
func (nopStore) LogWindow(string, string, error) error { return nil }
func (nopStore) LogMenu(string, bool) error            { return nil }
func (nopStore) ReadContent() (string, error)          { return "", nil }
func (nopStore) Path() string                          { return "" }
