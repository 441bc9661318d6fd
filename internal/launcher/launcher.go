// Package launcher starts a tutorial dashboard the way a user runs it from a
// terminal: check the working directory, spawn the server, wait, say goodbye.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"
)

// MissingFileError reports a required file that is not present.
type MissingFileError struct {
	Name string
}

func (e *MissingFileError) Error() string {
	return "required file not found: " + e.Name
}

// RunError wraps a failure to start or run the dashboard server.
type RunError struct {
	Err error
}

func (e *RunError) Error() string { return "running the application: " + e.Err.Error() }

func (e *RunError) Unwrap() error { return e.Err }

// Options describes one launcher.
type Options struct {
	AppID string
	Icon  string
	Title string
	Port  int
	// OpenBrowser asks the server to open a browser once it listens.
	OpenBrowser bool
	// RequiredFiles are checked relative to Dir. Entries may be doublestar
	// patterns; a pattern must match at least one file.
	RequiredFiles []string
	Dir           string
	// Executable is the deepdive binary to spawn. Defaults to the running
	// executable.
	Executable string
	// ExtraArgs are appended to the serve command line.
	ExtraArgs []string
	Verbose   bool
	Stdout    io.Writer
	Runner    Runner
}

// Launcher runs one tutorial dashboard.
type Launcher struct {
	opts Options
	out  io.Writer
}

// New creates a Launcher, filling in defaults.
func New(opts Options) *Launcher {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Runner == nil {
		opts.Runner = ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
	}
	if opts.Dir == "" {
		opts.Dir = "."
	}
	return &Launcher{opts: opts, out: opts.Stdout}
}

// Args returns the serve command line passed to the executable.
func (l *Launcher) Args() []string {
	args := []string{"serve", "--app", l.opts.AppID, "--port", strconv.Itoa(l.opts.Port)}
	if l.opts.OpenBrowser {
		args = append(args, "--open")
	}
	return append(args, l.opts.ExtraArgs...)
}

// Run checks the environment and runs the server until it exits or ctx is
// cancelled. SIGINT and SIGTERM cancel the run. An interrupted run returns
// nil; every other failure has already been reported on Stdout.
func (l *Launcher) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	l.printf("%s Starting %s - Interactive Tutorial\n", l.opts.Icon, l.opts.Title)
	l.printf("%s\n", strings.Repeat("=", 60))

	exe, err := l.executable()
	if err != nil {
		l.printf("❌ deepdive server is not available: %v\n", err)
		l.printf("Please reinstall: go install github.com/ziadkadry99/deepdive@latest\n")
		return &RunError{Err: err}
	}
	l.printf("✅ deepdive server is available\n")

	if err := CheckRequiredFiles(l.opts.Dir, l.opts.RequiredFiles); err != nil {
		var missing *MissingFileError
		if errors.As(err, &missing) {
			l.printf("❌ Required file not found: %s\n", missing.Name)
		} else {
			l.printf("❌ %v\n", err)
		}
		return err
	}
	l.printf("✅ All required files found\n")

	l.printf("\n🚀 Launching %s Tutorial...\n", l.opts.Title)
	if l.opts.OpenBrowser {
		l.printf("The app will open in your default web browser\n")
	} else {
		l.printf("Open http://localhost:%d in your web browser\n", l.opts.Port)
	}
	l.printf("Press Ctrl+C to stop the application\n")
	l.printf("%s\n", strings.Repeat("-", 60))

	args := l.Args()
	if l.opts.Verbose {
		l.printf("Running: %s %s\n", exe, strings.Join(args, " "))
	}

	err = l.opts.Runner.Run(ctx, exe, args...)
	if ctx.Err() != nil {
		l.printf("\n\n👋 %s Tutorial stopped\n", l.opts.Title)
		l.printf("Thank you for using the tutorial!\n")
		return nil
	}
	if err != nil {
		l.printf("\n❌ Error running the application: %v\n", err)
		return &RunError{Err: err}
	}
	return nil
}

func (l *Launcher) executable() (string, error) {
	exe := l.opts.Executable
	if exe == "" {
		var err error
		if exe, err = os.Executable(); err != nil {
			return "", err
		}
	}
	if _, err := os.Stat(exe); err != nil {
		return "", err
	}
	return exe, nil
}

func (l *Launcher) printf(format string, args ...any) {
	fmt.Fprintf(l.out, format, args...)
}

// CheckRequiredFiles verifies every entry matches at least one file in dir.
// The first missing entry is returned as a *MissingFileError.
func CheckRequiredFiles(dir string, patterns []string) error {
	fsys := os.DirFS(dir)
	for _, p := range patterns {
		clean := path.Clean(filepath.ToSlash(p))
		if !doublestar.ValidatePattern(clean) {
			return fmt.Errorf("invalid required file pattern %q", p)
		}
		matches, err := doublestar.Glob(fsys, clean)
		if err != nil {
			return fmt.Errorf("matching %q: %w", p, err)
		}
		if len(matches) == 0 {
			return &MissingFileError{Name: p}
		}
	}
	return nil
}
