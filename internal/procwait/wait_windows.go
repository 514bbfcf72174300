package procwait

import (
	"context"
	"fmt"

	"golang.org/x/sys/windows"
)

// waitSlice bounds each WaitForSingleObject call so ctx is observed.
const waitSlice = 500 // milliseconds

// Wait blocks until the process with the given PID exits or ctx is done.
// Uses OpenProcess(SYNCHRONIZE) + WaitForSingleObject for kernel-level
// blocking. Returns an error if the process doesn't exist or can't be
// opened.
func Wait(ctx context.Context, pid int) error {
	h, err := windows.OpenProcess(windows.SYNCHRONIZE, false, uint32(pid))
	if err != nil {
		return fmt.Errorf("process %d not found: %w", pid, err)
	}
	defer windows.CloseHandle(h)

	for {
		event, err := windows.WaitForSingleObject(h, waitSlice)
		if err != nil {
			return fmt.Errorf("waiting for process %d: %w", pid, err)
		}
		switch event {
		case windows.WAIT_OBJECT_0:
			return nil
		case uint32(windows.WAIT_TIMEOUT):
			if err := ctx.Err(); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unexpected wait result for process %d: %d", pid, event)
		}
	}
}
