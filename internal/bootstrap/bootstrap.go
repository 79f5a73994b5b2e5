// SPDX-License-Identifier: MPL-2.0

// Package bootstrap prepares the local Python workspace: create the
// virtual environment when absent, activate it in the current process,
// and install the pip requirements when a manifest is present.
//
// Failure handling differs by phase. Creation and activation failures
// abort the run; a failed installation only produces a warning and the
// run still reports success.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/catwalk-dev/catwalk/pkg/platform"
)

// Default workspace paths, relative to the directory setup runs in.
const (
	// DefaultVenvDir is the virtual environment directory.
	DefaultVenvDir = ".venv"

	// DefaultRequirements is the pip dependency manifest.
	DefaultRequirements = "requirements.txt"
)

// Sentinel errors for the fatal setup phases. Callers match them with
// errors.Is to pick the right guidance for the user.
var (
	// ErrPythonNotFound is returned when no usable Python interpreter
	// could be resolved.
	ErrPythonNotFound = errors.New("no python interpreter found")

	// ErrVenvCreation is returned when the venv module exits non-zero.
	ErrVenvCreation = errors.New("virtual environment creation failed")

	// ErrActivateMissing is returned when the environment directory
	// exists but its activation script does not.
	ErrActivateMissing = errors.New("activation script not found")

	// ErrActivation is returned when the activation script exists but
	// could not be evaluated or applied.
	ErrActivation = errors.New("environment activation failed")
)

type (
	// Commander runs external commands. The production implementation
	// execs on the host system; tests substitute a recorder.
	Commander interface {
		// LookPath searches for an executable by name and returns the
		// path to run it with.
		LookPath(name string) (string, error)

		// Run executes a command and waits for it, returning an error
		// on non-zero exit.
		Run(ctx context.Context, name string, args ...string) error
	}

	// Bootstrapper drives the setup phases over a fixed workspace
	// layout. The zero value is not usable; construct with New.
	Bootstrapper struct {
		venvDir      string
		requirements string
		python       string
		commander    Commander
		out          io.Writer
		logger       *log.Logger
	}

	// Option configures a Bootstrapper.
	Option func(*Bootstrapper)
)

// WithVenvDir overrides the virtual environment directory.
func WithVenvDir(dir string) Option {
	return func(b *Bootstrapper) { b.venvDir = dir }
}

// WithRequirements overrides the pip manifest path.
func WithRequirements(path string) Option {
	return func(b *Bootstrapper) { b.requirements = path }
}

// WithPython pins the interpreter used to create the environment instead
// of probing PATH for one.
func WithPython(python string) Option {
	return func(b *Bootstrapper) { b.python = python }
}

// WithCommander substitutes the external command runner.
func WithCommander(c Commander) Option {
	return func(b *Bootstrapper) { b.commander = c }
}

// WithOutput redirects user-facing progress messages.
func WithOutput(w io.Writer) Option {
	return func(b *Bootstrapper) { b.out = w }
}

// WithLogger overrides the diagnostic logger.
func WithLogger(logger *log.Logger) Option {
	return func(b *Bootstrapper) { b.logger = logger }
}

// New creates a Bootstrapper for the default workspace layout, adjusted
// by the given options.
func New(opts ...Option) *Bootstrapper {
	b := &Bootstrapper{
		venvDir:      DefaultVenvDir,
		requirements: DefaultRequirements,
		out:          os.Stdout,
		logger:       log.NewWithOptions(os.Stderr, log.Options{Prefix: "setup"}),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.commander == nil {
		b.commander = &execCommander{stdout: b.out, stderr: os.Stderr}
	}
	return b
}

// Run executes the setup phases in order: ensure the virtual environment
// exists, activate it, install dependencies. The first two phases are
// preconditions and abort the run on failure; installation is best
// effort and only warns.
func (b *Bootstrapper) Run(ctx context.Context) error {
	if err := b.ensureVenv(ctx); err != nil {
		return err
	}
	if err := b.activate(ctx); err != nil {
		return err
	}
	if err := b.installRequirements(ctx); err != nil {
		b.logger.Warn("dependency installation failed", "error", err)
		fmt.Fprintln(b.out, "⚠️  Dependency installation failed; continuing setup")
	}
	fmt.Fprintln(b.out, "\n✓ Setup complete")
	return nil
}

// ensureVenv creates the virtual environment unless it already exists.
// An existing directory is never recreated, so repeated runs invoke the
// venv module at most once.
func (b *Bootstrapper) ensureVenv(ctx context.Context) error {
	if info, err := os.Stat(b.venvDir); err == nil && info.IsDir() {
		b.logger.Debug("virtual environment present", "dir", b.venvDir)
		fmt.Fprintf(b.out, "✓ Virtual environment already exists at %s\n", b.venvDir)
		return nil
	}
	python, err := resolvePython(b.commander, b.python, runtime.GOOS)
	if err != nil {
		return err
	}
	fmt.Fprintf(b.out, "Creating virtual environment at %s...\n", b.venvDir)
	b.logger.Debug("creating virtual environment", "python", python, "dir", b.venvDir)
	if err := b.commander.Run(ctx, python, "-m", "venv", b.venvDir); err != nil {
		return fmt.Errorf("%w: %w", ErrVenvCreation, err)
	}
	fmt.Fprintln(b.out, "✓ Virtual environment created")
	return nil
}

// activate sources the activation script in-process and applies the
// exported variable mutations (VIRTUAL_ENV, the PATH prepend) to the
// current process, so later phases resolve executables from the
// environment. A directory without an activation script is a broken
// layout and aborts the run.
func (b *Bootstrapper) activate(ctx context.Context) error {
	script := platform.VenvActivateScript(b.venvDir)
	if _, err := os.Stat(script); err != nil {
		return fmt.Errorf("%w: %s", ErrActivateMissing, script)
	}
	env, err := sourceScript(ctx, script)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrActivation, err)
	}
	if err := env.apply(); err != nil {
		return fmt.Errorf("%w: %w", ErrActivation, err)
	}
	b.logger.Debug("environment activated", "script", script, "virtual_env", os.Getenv("VIRTUAL_ENV"))
	fmt.Fprintln(b.out, "✓ Virtual environment activated")
	return nil
}

// installRequirements installs the pip manifest when one exists. A
// missing manifest is a skip, not an error.
func (b *Bootstrapper) installRequirements(ctx context.Context) error {
	if _, err := os.Stat(b.requirements); err != nil {
		b.logger.Debug("no dependency manifest", "path", b.requirements)
		fmt.Fprintf(b.out, "ℹ️  No %s found; skipping dependency installation\n", b.requirements)
		return nil
	}
	pip, err := b.commander.LookPath("pip")
	if err != nil {
		return fmt.Errorf("locating pip: %w", err)
	}
	fmt.Fprintf(b.out, "Installing dependencies from %s...\n", b.requirements)
	if err := b.commander.Run(ctx, pip, "install", "-r", b.requirements); err != nil {
		return fmt.Errorf("installing %s: %w", b.requirements, err)
	}
	fmt.Fprintln(b.out, "✓ Dependencies installed")
	return nil
}

// execCommander invokes commands on the real system. Inside a sandbox
// the invocation is rewritten to spawn on the host, where interpreters
// and package indexes live.
type execCommander struct {
	stdout io.Writer
	stderr io.Writer
}

func (c *execCommander) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (c *execCommander) Run(ctx context.Context, name string, args ...string) error {
	hostName, hostArgs := platform.HostCommand(name, args...)
	cmd := exec.CommandContext(ctx, hostName, hostArgs...)
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr
	return cmd.Run()
}
