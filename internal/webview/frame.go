package webview

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// Frame ops sent from the parent to a child window process, one JSON
// object per line on the child's stdin.
const (
	opEval  = "eval"
	opShow  = "show"
	opHide  = "hide"
	opFocus = "focus"
	opClose = "close"
)

// readyLine is printed by a child on stdout once its window is built.
const readyLine = "luwidget:window-ready"

type frame struct {
	Op     string `json:"op"`
	Script string `json:"script,omitempty"`
}

// writeFrame encodes f as a single line. json.Marshal escapes newlines
// inside strings, so one frame is always one line.
func writeFrame(w io.Writer, f frame) error {
	b, err := json.Marshal(f)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// readFrames calls fn for each frame until r is exhausted. Malformed
// lines are skipped.
func readFrames(r io.Reader, fn func(frame)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for sc.Scan() {
		var f frame
		if err := json.Unmarshal(sc.Bytes(), &f); err != nil {
			continue
		}
		fn(f)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading frames: %w", err)
	}
	return nil
}
