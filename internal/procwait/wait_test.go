package procwait

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"testing"
	"time"
)

func TestWaitNonexistentPID(t *testing.T) {
	// Use a very high PID that won't exist on any platform.
	// PID 0 is not safe: on Linux, kill(0, 0) signals the process group.
	err := Wait(context.Background(), 4999999)
	if err == nil {
		t.Fatal("expected error for nonexistent PID")
	}
}

func TestWaitCompletedProcess(t *testing.T) {
	// Start a short-lived subprocess, wait for it to exit via os/exec first,
	// then verify that Wait returns (process already exited).
	cmd := exec.Command(os.Args[0], "-test.run=^$")
	if err := cmd.Start(); err != nil {
		t.Fatalf("start subprocess: %v", err)
	}
	pid := cmd.Process.Pid
	cmd.Wait() // ensure the process has exited

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	// On Windows, OpenProcess may still succeed briefly after exit.
	// On Unix, kill(pid,0) will return ESRCH once reaped.
	_ = Wait(ctx, pid)
}

func TestWaitHonoursContext(t *testing.T) {
	// The test binary itself is alive for the whole test.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := Wait(ctx, os.Getpid())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Wait() = %v, want deadline exceeded", err)
	}
}
