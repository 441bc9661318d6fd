package launcher

import (
	"context"
	"io"
	"os"
	"os/exec"
	"time"
)

// Runner runs a command to completion.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands as child processes. Cancelling the context sends
// the child an interrupt and kills it if it has not exited after WaitDelay.
type ExecRunner struct {
	Stdout    io.Writer
	Stderr    io.Writer
	WaitDelay time.Duration
}

// Run starts the command and waits for it.
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = r.WaitDelay
	if cmd.WaitDelay == 0 {
		cmd.WaitDelay = 5 * time.Second
	}
	return cmd.Run()
}
