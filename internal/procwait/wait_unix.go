//go:build unix

package procwait

import (
	"context"
	"fmt"
	"syscall"
	"time"
)

// pollInterval is how often the process is checked for.
var pollInterval = 500 * time.Millisecond

// Wait blocks until the process with the given PID exits or ctx is done.
// Polls with syscall.Kill(pid, 0); signal 0 only checks that the process
// exists. Returns an error immediately if the process doesn't exist at the
// start.
func Wait(ctx context.Context, pid int) error {
	// Check that the process exists before entering the poll loop.
	if err := syscall.Kill(pid, 0); err != nil {
		return fmt.Errorf("process %d not found: %w", pid, err)
	}

	t := time.NewTicker(pollInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := syscall.Kill(pid, 0); err != nil {
				return nil // process exited
			}
		}
	}
}
