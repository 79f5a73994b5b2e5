// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/catwalk-dev/catwalk/internal/issue"
	"github.com/catwalk-dev/catwalk/internal/testutil"
)

// The provider tests are not parallel: they mutate the working directory
// and the package-level config dir override.

func TestProvider_Load_DefaultsWhenNoFile(t *testing.T) {
	cleanup := testutil.MustChdir(t, t.TempDir())
	defer cleanup()
	SetConfigDirOverride(t.TempDir())
	defer Reset()

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.HTTP.Timeout != 20*time.Second {
		t.Errorf("HTTP.Timeout = %v, want default 20s", cfg.HTTP.Timeout)
	}
	if cfg.Setup.VenvDir != ".venv" {
		t.Errorf("Setup.VenvDir = %q, want default .venv", cfg.Setup.VenvDir)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("UI.ColorScheme = %q, want default auto", cfg.UI.ColorScheme)
	}
}

func TestProvider_Load_FromConfigDir(t *testing.T) {
	cleanup := testutil.MustChdir(t, t.TempDir())
	defer cleanup()

	cfgDir := t.TempDir()
	SetConfigDirOverride(cfgDir)
	defer Reset()

	content := `
user_agent = "MyBot/2.0"

[http]
timeout = "60s"
delay = "2s"

[setup]
venv_dir = "env"

[ui]
verbose = true
`
	testutil.MustWriteFile(t, filepath.Join(cfgDir, "config.toml"), []byte(content), 0o644)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.UserAgent != "MyBot/2.0" {
		t.Errorf("UserAgent = %q, want MyBot/2.0", cfg.UserAgent)
	}
	if cfg.HTTP.Timeout != 60*time.Second {
		t.Errorf("HTTP.Timeout = %v, want 60s", cfg.HTTP.Timeout)
	}
	if cfg.HTTP.Delay != 2*time.Second {
		t.Errorf("HTTP.Delay = %v, want 2s", cfg.HTTP.Delay)
	}
	if cfg.Setup.VenvDir != "env" {
		t.Errorf("Setup.VenvDir = %q, want env", cfg.Setup.VenvDir)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Setup.Requirements != "requirements.txt" {
		t.Errorf("Setup.Requirements = %q, want default requirements.txt", cfg.Setup.Requirements)
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose should be true")
	}
}

func TestProvider_Load_FromLocalFile(t *testing.T) {
	workDir := t.TempDir()
	cleanup := testutil.MustChdir(t, workDir)
	defer cleanup()
	SetConfigDirOverride(t.TempDir())
	defer Reset()

	testutil.MustWriteFile(t, filepath.Join(workDir, "config.toml"),
		[]byte("[output]\ndir = \"reports\"\n"), 0o644)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Output.Dir != "reports" {
		t.Errorf("Output.Dir = %q, want reports", cfg.Output.Dir)
	}
}

func TestProvider_Load_ConfigDirTakesPrecedenceOverLocal(t *testing.T) {
	workDir := t.TempDir()
	cleanup := testutil.MustChdir(t, workDir)
	defer cleanup()

	cfgDir := t.TempDir()
	SetConfigDirOverride(cfgDir)
	defer Reset()

	testutil.MustWriteFile(t, filepath.Join(cfgDir, "config.toml"),
		[]byte("[output]\ndir = \"from-config-dir\"\n"), 0o644)
	testutil.MustWriteFile(t, filepath.Join(workDir, "config.toml"),
		[]byte("[output]\ndir = \"from-local\"\n"), 0o644)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Output.Dir != "from-config-dir" {
		t.Errorf("Output.Dir = %q, want from-config-dir", cfg.Output.Dir)
	}
}

func TestProvider_Load_ExplicitFilePath(t *testing.T) {
	cleanup := testutil.MustChdir(t, t.TempDir())
	defer cleanup()
	SetConfigDirOverride(t.TempDir())
	defer Reset()

	path := filepath.Join(t.TempDir(), "custom.toml")
	testutil.MustWriteFile(t, path, []byte("[ui]\ncolor_scheme = \"dark\"\n"), 0o644)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.UI.ColorScheme != ColorSchemeDark {
		t.Errorf("UI.ColorScheme = %q, want dark", cfg.UI.ColorScheme)
	}
}

func TestProvider_Load_ExplicitFilePathMissing(t *testing.T) {
	cleanup := testutil.MustChdir(t, t.TempDir())
	defer cleanup()
	SetConfigDirOverride(t.TempDir())
	defer Reset()

	missing := filepath.Join(t.TempDir(), "nope.toml")
	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: missing})
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}

	var actionable *issue.ActionableError
	if !errors.As(err, &actionable) {
		t.Fatalf("error should be *issue.ActionableError, got: %T", err)
	}
	if len(actionable.Suggestions) == 0 {
		t.Error("missing-file error should carry suggestions")
	}
}

func TestProvider_Load_InvalidTOML(t *testing.T) {
	cleanup := testutil.MustChdir(t, t.TempDir())
	defer cleanup()
	SetConfigDirOverride(t.TempDir())
	defer Reset()

	path := filepath.Join(t.TempDir(), "broken.toml")
	testutil.MustWriteFile(t, path, []byte("timeout = \"unclosed\n"), 0o644)

	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	if err == nil {
		t.Fatal("expected error for invalid TOML")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error should name the offending file, got: %v", err)
	}
}

func TestProvider_Load_ValidationFailure(t *testing.T) {
	cleanup := testutil.MustChdir(t, t.TempDir())
	defer cleanup()

	cfgDir := t.TempDir()
	SetConfigDirOverride(cfgDir)
	defer Reset()

	testutil.MustWriteFile(t, filepath.Join(cfgDir, "config.toml"),
		[]byte("[setup]\nvenv_dir = \"   \"\n"), 0o644)

	_, err := NewProvider().Load(context.Background(), LoadOptions{})
	if err == nil {
		t.Fatal("expected validation error for whitespace-only venv_dir")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error should wrap ErrInvalidConfig, got: %v", err)
	}
}

func TestProvider_Load_ConfigDirPathOption(t *testing.T) {
	cleanup := testutil.MustChdir(t, t.TempDir())
	defer cleanup()
	defer Reset()

	optDir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(optDir, "config.toml"),
		[]byte("[output]\ndir = \"opt-dir\"\n"), 0o644)

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: optDir})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Output.Dir != "opt-dir" {
		t.Errorf("Output.Dir = %q, want opt-dir", cfg.Output.Dir)
	}
}

func TestProvider_Load_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProvider().Load(ctx, LoadOptions{})
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error should wrap context.Canceled, got: %v", err)
	}
}
