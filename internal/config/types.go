// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidUserAgent is returned when a UserAgent value is whitespace-only.
	ErrInvalidUserAgent = errors.New("invalid user agent")
	// ErrInvalidVenvDirPath is returned when a VenvDirPath value is whitespace-only.
	ErrInvalidVenvDirPath = errors.New("invalid venv dir path")
	// ErrInvalidPythonPath is returned when a PythonPath value is whitespace-only.
	ErrInvalidPythonPath = errors.New("invalid python path")
	// ErrInvalidRequirementsPath is returned when a RequirementsPath value is whitespace-only.
	ErrInvalidRequirementsPath = errors.New("invalid requirements path")
	// ErrInvalidOutputDirPath is returned when an OutputDirPath value is whitespace-only.
	ErrInvalidOutputDirPath = errors.New("invalid output dir path")
	// ErrInvalidHTTPConfig is the sentinel error wrapped by InvalidHTTPConfigError.
	ErrInvalidHTTPConfig = errors.New("invalid HTTP config")
	// ErrInvalidSetupConfig is the sentinel error wrapped by InvalidSetupConfigError.
	ErrInvalidSetupConfig = errors.New("invalid setup config")
	// ErrInvalidOutputConfig is the sentinel error wrapped by InvalidOutputConfigError.
	ErrInvalidOutputConfig = errors.New("invalid output config")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// UserAgent is the User-Agent header sent with catalog page requests.
	// The zero value ("") is valid and means "use the built-in default".
	// Non-zero values must not be whitespace-only.
	UserAgent string

	// InvalidUserAgentError is returned when a UserAgent value is
	// non-empty but whitespace-only.
	InvalidUserAgentError struct {
		Value UserAgent
	}

	// VenvDirPath is the directory of the Python virtual environment,
	// relative to the working directory unless absolute.
	// The zero value ("") is valid and means "use the default (.venv)".
	// Non-zero values must not be whitespace-only.
	VenvDirPath string

	// InvalidVenvDirPathError is returned when a VenvDirPath value is
	// non-empty but whitespace-only.
	InvalidVenvDirPathError struct {
		Value VenvDirPath
	}

	// PythonPath is an explicit path to the Python interpreter to use for
	// environment creation. The zero value ("") is valid and means
	// "auto-detect python3/python on PATH". Non-zero values must not be
	// whitespace-only.
	PythonPath string

	// InvalidPythonPathError is returned when a PythonPath value is
	// non-empty but whitespace-only.
	InvalidPythonPathError struct {
		Value PythonPath
	}

	// RequirementsPath is the path of the pip requirements manifest.
	// The zero value ("") is valid and means "use the default
	// (requirements.txt)". Non-zero values must not be whitespace-only.
	RequirementsPath string

	// InvalidRequirementsPathError is returned when a RequirementsPath value
	// is non-empty but whitespace-only.
	InvalidRequirementsPathError struct {
		Value RequirementsPath
	}

	// OutputDirPath is the directory where derived files (dictionary, JSON,
	// PDF, DOT) are written. The zero value ("") is valid and means
	// "current directory". Non-zero values must not be whitespace-only.
	OutputDirPath string

	// InvalidOutputDirPathError is returned when an OutputDirPath value is
	// non-empty but whitespace-only.
	InvalidOutputDirPathError struct {
		Value OutputDirPath
	}

	// InvalidHTTPConfigError is returned when an HTTPConfig has invalid fields.
	// It wraps ErrInvalidHTTPConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidHTTPConfigError struct {
		FieldErrors []error
	}

	// InvalidSetupConfigError is returned when a SetupConfig has invalid fields.
	// It wraps ErrInvalidSetupConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidSetupConfigError struct {
		FieldErrors []error
	}

	// InvalidOutputConfigError is returned when an OutputConfig has invalid fields.
	// It wraps ErrInvalidOutputConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidOutputConfigError struct {
		FieldErrors []error
	}

	// InvalidUIConfigError is returned when a UIConfig has invalid fields.
	// It wraps ErrInvalidUIConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidUIConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// UserAgent overrides the User-Agent header for catalog requests.
		UserAgent UserAgent `json:"user_agent" toml:"user_agent" mapstructure:"user_agent"`
		// HTTP configures catalog page fetching.
		HTTP HTTPConfig `json:"http" toml:"http" mapstructure:"http"`
		// Setup configures the virtual environment bootstrapper.
		Setup SetupConfig `json:"setup" toml:"setup" mapstructure:"setup"`
		// Output configures where derived files are written.
		Output OutputConfig `json:"output" toml:"output" mapstructure:"output"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" toml:"ui" mapstructure:"ui"`
	}

	// HTTPConfig configures catalog page fetching.
	HTTPConfig struct {
		// Timeout bounds each page request.
		Timeout time.Duration `json:"timeout" toml:"timeout" mapstructure:"timeout"`
		// Delay is the pause after each successful fetch, keeping the
		// crawl polite toward the catalog server.
		Delay time.Duration `json:"delay" toml:"delay" mapstructure:"delay"`
	}

	// SetupConfig configures the virtual environment bootstrapper.
	SetupConfig struct {
		// VenvDir is the virtual environment directory.
		VenvDir VenvDirPath `json:"venv_dir" toml:"venv_dir" mapstructure:"venv_dir"`
		// Python overrides the interpreter used to create the environment.
		Python PythonPath `json:"python" toml:"python" mapstructure:"python"`
		// Requirements is the pip manifest to install when present.
		Requirements RequirementsPath `json:"requirements" toml:"requirements" mapstructure:"requirements"`
	}

	// OutputConfig configures where derived files are written.
	OutputConfig struct {
		// Dir is the directory for dictionary, JSON, PDF, and DOT output.
		Dir OutputDirPath `json:"dir" toml:"dir" mapstructure:"dir"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" toml:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" toml:"verbose" mapstructure:"verbose"`
	}
)

// IsValid returns whether the HTTPConfig has valid fields.
// Both durations must be non-negative; a zero timeout means "no timeout"
// and a zero delay disables crawl pacing.
func (c HTTPConfig) IsValid() (bool, []error) {
	var errs []error
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("http.timeout must not be negative, got %s", c.Timeout))
	}
	if c.Delay < 0 {
		errs = append(errs, fmt.Errorf("http.delay must not be negative, got %s", c.Delay))
	}
	if len(errs) > 0 {
		return false, []error{&InvalidHTTPConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidHTTPConfigError.
func (e *InvalidHTTPConfigError) Error() string {
	return fmt.Sprintf("invalid HTTP config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidHTTPConfig for errors.Is() compatibility.
func (e *InvalidHTTPConfigError) Unwrap() error { return ErrInvalidHTTPConfig }

// IsValid returns whether the SetupConfig has valid fields.
// It delegates to VenvDir.IsValid(), Python.IsValid(), and
// Requirements.IsValid().
func (c SetupConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.VenvDir.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Python.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Requirements.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidSetupConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidSetupConfigError.
func (e *InvalidSetupConfigError) Error() string {
	return fmt.Sprintf("invalid setup config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidSetupConfig for errors.Is() compatibility.
func (e *InvalidSetupConfigError) Unwrap() error { return ErrInvalidSetupConfig }

// IsValid returns whether the OutputConfig has valid fields.
// It delegates to Dir.IsValid().
func (c OutputConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Dir.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidOutputConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidOutputConfigError.
func (e *InvalidOutputConfigError) Error() string {
	return fmt.Sprintf("invalid output config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidOutputConfig for errors.Is() compatibility.
func (e *InvalidOutputConfigError) Unwrap() error { return ErrInvalidOutputConfig }

// IsValid returns whether the UIConfig has valid fields.
// It delegates to ColorScheme.IsValid(); bool fields need no validation.
func (c UIConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidUIConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidUIConfigError.
func (e *InvalidUIConfigError) Error() string {
	return fmt.Sprintf("invalid UI config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidUIConfig for errors.Is() compatibility.
func (e *InvalidUIConfigError) Unwrap() error { return ErrInvalidUIConfig }

// IsValid returns whether the Config has valid fields.
// It delegates to UserAgent.IsValid(), HTTP.IsValid(), Setup.IsValid(),
// Output.IsValid(), and UI.IsValid().
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.UserAgent.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.HTTP.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Setup.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Output.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// String returns the string representation of the UserAgent.
func (a UserAgent) String() string { return string(a) }

// IsValid returns whether the UserAgent is valid.
// The zero value ("") is valid (means "use built-in default").
// Non-zero values must not be whitespace-only.
func (a UserAgent) IsValid() (bool, []error) {
	if a == "" {
		return true, nil
	}
	if strings.TrimSpace(string(a)) == "" {
		return false, []error{&InvalidUserAgentError{Value: a}}
	}
	return true, nil
}

// Error implements the error interface for InvalidUserAgentError.
func (e *InvalidUserAgentError) Error() string {
	return fmt.Sprintf("invalid user agent %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidUserAgent for errors.Is() compatibility.
func (e *InvalidUserAgentError) Unwrap() error { return ErrInvalidUserAgent }

// String returns the string representation of the VenvDirPath.
func (p VenvDirPath) String() string { return string(p) }

// IsValid returns whether the VenvDirPath is valid.
// The zero value ("") is valid (means "use the default").
// Non-zero values must not be whitespace-only.
func (p VenvDirPath) IsValid() (bool, []error) {
	if p == "" {
		return true, nil
	}
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidVenvDirPathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidVenvDirPathError.
func (e *InvalidVenvDirPathError) Error() string {
	return fmt.Sprintf("invalid venv dir path %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidVenvDirPath for errors.Is() compatibility.
func (e *InvalidVenvDirPathError) Unwrap() error { return ErrInvalidVenvDirPath }

// String returns the string representation of the PythonPath.
func (p PythonPath) String() string { return string(p) }

// IsValid returns whether the PythonPath is valid.
// The zero value ("") is valid (means "auto-detect").
// Non-zero values must not be whitespace-only.
func (p PythonPath) IsValid() (bool, []error) {
	if p == "" {
		return true, nil
	}
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidPythonPathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidPythonPathError.
func (e *InvalidPythonPathError) Error() string {
	return fmt.Sprintf("invalid python path %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidPythonPath for errors.Is() compatibility.
func (e *InvalidPythonPathError) Unwrap() error { return ErrInvalidPythonPath }

// String returns the string representation of the RequirementsPath.
func (p RequirementsPath) String() string { return string(p) }

// IsValid returns whether the RequirementsPath is valid.
// The zero value ("") is valid (means "use the default").
// Non-zero values must not be whitespace-only.
func (p RequirementsPath) IsValid() (bool, []error) {
	if p == "" {
		return true, nil
	}
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidRequirementsPathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidRequirementsPathError.
func (e *InvalidRequirementsPathError) Error() string {
	return fmt.Sprintf("invalid requirements path %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidRequirementsPath for errors.Is() compatibility.
func (e *InvalidRequirementsPathError) Unwrap() error { return ErrInvalidRequirementsPath }

// String returns the string representation of the OutputDirPath.
func (p OutputDirPath) String() string { return string(p) }

// IsValid returns whether the OutputDirPath is valid.
// The zero value ("") is valid (means "current directory").
// Non-zero values must not be whitespace-only.
func (p OutputDirPath) IsValid() (bool, []error) {
	if p == "" {
		return true, nil
	}
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidOutputDirPathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidOutputDirPathError.
func (e *InvalidOutputDirPathError) Error() string {
	return fmt.Sprintf("invalid output dir path %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidOutputDirPath for errors.Is() compatibility.
func (e *InvalidOutputDirPathError) Unwrap() error { return ErrInvalidOutputDirPath }

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		UserAgent: "", // Built-in catalog extractor UA is used if empty
		HTTP: HTTPConfig{
			Timeout: 20 * time.Second,
			Delay:   500 * time.Millisecond,
		},
		Setup: SetupConfig{
			VenvDir:      ".venv",
			Python:       "", // Auto-detect python3/python on PATH
			Requirements: "requirements.txt",
		},
		Output: OutputConfig{
			Dir: "", // Current directory
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
