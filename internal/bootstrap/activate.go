// SPDX-License-Identifier: MPL-2.0

package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// scriptEnviron captures the environment mutations a sourced script
// made: exported variables it set and variables it unset.
type scriptEnviron struct {
	set   map[string]string
	unset []string
}

// sourceScript evaluates a POSIX shell script against a copy of the
// current process environment and returns the mutations it made,
// without touching the process itself. Shell-local assignments are not
// part of the result; only exported variables and explicit unsets are.
func sourceScript(ctx context.Context, path string) (*scriptEnviron, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading activation script: %w", err)
	}
	prog, err := syntax.NewParser().Parse(bytes.NewReader(src), path)
	if err != nil {
		return nil, fmt.Errorf("parsing activation script: %w", err)
	}

	var stderr bytes.Buffer
	runner, err := interp.New(
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(nil, io.Discard, &stderr),
	)
	if err != nil {
		return nil, fmt.Errorf("preparing shell interpreter: %w", err)
	}
	if err := runner.Run(ctx, prog); err != nil {
		var status interp.ExitStatus
		if errors.As(err, &status) {
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				return nil, fmt.Errorf("activation script exited with status %d: %s", int(status), msg)
			}
			return nil, fmt.Errorf("activation script exited with status %d", int(status))
		}
		return nil, fmt.Errorf("running activation script: %w", err)
	}

	env := &scriptEnviron{set: make(map[string]string)}
	for name, v := range runner.Vars {
		switch {
		case v.Kind == expand.Unset:
			env.unset = append(env.unset, name)
		case v.Exported && v.Kind == expand.String:
			env.set[name] = v.Str
		}
	}
	return env, nil
}

// apply replays the captured mutations onto the current process
// environment.
func (e *scriptEnviron) apply() error {
	for name, value := range e.set {
		if err := os.Setenv(name, value); err != nil {
			return fmt.Errorf("setting %s: %w", name, err)
		}
	}
	for _, name := range e.unset {
		if err := os.Unsetenv(name); err != nil {
			return fmt.Errorf("unsetting %s: %w", name, err)
		}
	}
	return nil
}
