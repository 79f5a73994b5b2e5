// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"os"
	"sync"
)

// Sandbox type constants.
const (
	// SandboxNone indicates no sandbox environment detected.
	SandboxNone SandboxType = ""
	// SandboxFlatpak indicates a Flatpak sandbox environment.
	SandboxFlatpak SandboxType = "flatpak"
	// SandboxSnap indicates a Snap sandbox environment.
	SandboxSnap SandboxType = "snap"
)

// detectOnce caches the sandbox detection result for the lifetime of the
// process. Sandbox type is immutable during process lifetime, making
// process-wide caching safe.
//
// INVARIANT: the detection function MUST NOT panic. sync.OnceValue
// propagates a panic on every subsequent call, creating a persistent
// crash condition.
var detectOnce = sync.OnceValue(func() SandboxType {
	return detectSandboxFrom(os.Getenv, statFile)
})

// SandboxType identifies the type of application sandbox, if any.
type SandboxType string

// DetectSandbox returns the type of application sandbox the current process
// is running in. The result is cached after the first call.
//
// Detection methods:
//   - Flatpak: checks for existence of /.flatpak-info
//   - Snap: checks for the SNAP_NAME environment variable
func DetectSandbox() SandboxType {
	return detectOnce()
}

// IsInSandbox returns true if the current process is running inside a sandbox.
func IsInSandbox() bool {
	return DetectSandbox() != SandboxNone
}

// HostCommand rewrites a command invocation so it executes on the host
// system rather than inside the sandbox. Outside a sandbox the invocation
// is returned unchanged. Interpreter lookups (python3, pip) must go
// through this so a sandboxed build manages environments on the host.
func HostCommand(name string, args ...string) (string, []string) {
	st := DetectSandbox()
	spawn := SpawnCommandFor(st)
	if spawn == "" {
		return name, args
	}
	prefixed := append(SpawnArgsFor(st), name)
	return spawn, append(prefixed, args...)
}

// SpawnCommandFor returns the spawn command for a given sandbox type.
// This is a pure function that does not depend on cached detection state,
// making it directly testable without process-wide side effects.
func SpawnCommandFor(st SandboxType) string {
	switch st {
	case SandboxFlatpak:
		return "flatpak-spawn"
	case SandboxSnap:
		return "snap"
	default:
		return ""
	}
}

// SpawnArgsFor returns the arguments that precede the actual command for
// a given sandbox type. For no sandbox, returns nil.
func SpawnArgsFor(st SandboxType) []string {
	switch st {
	case SandboxFlatpak:
		return []string{"--host"}
	case SandboxSnap:
		return []string{"run", "--shell"}
	default:
		return nil
	}
}

// detectSandboxFrom performs sandbox detection using the provided lookup
// functions. Accepting lookupEnv and statFile as parameters allows tests to
// inject custom behavior without mutating process-wide state.
func detectSandboxFrom(lookupEnv func(string) string, statFile func(string) error) SandboxType {
	// /.flatpak-info is always present inside Flatpak sandboxes and takes
	// precedence over Snap detection.
	if err := statFile("/.flatpak-info"); err == nil {
		return SandboxFlatpak
	}
	if lookupEnv("SNAP_NAME") != "" {
		return SandboxSnap
	}
	return SandboxNone
}

// statFile checks for the existence of a file at the given path, wrapping
// os.Stat to match the func(string) error signature of detectSandboxFrom.
func statFile(path string) error {
	_, err := os.Stat(path)
	return err
}
