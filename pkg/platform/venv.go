// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"path/filepath"
	"runtime"
)

// VenvBinDir returns the scripts directory of a Python virtual environment:
// <venv>/bin on POSIX systems, <venv>\Scripts on Windows.
func VenvBinDir(venvDir string) string {
	return venvBinDirFor(runtime.GOOS, venvDir)
}

// VenvPython returns the path of the Python interpreter inside a virtual
// environment.
func VenvPython(venvDir string) string {
	return filepath.Join(VenvBinDir(venvDir), ExecutableName("python"))
}

// VenvActivateScript returns the path of the POSIX-shell activation script
// inside a virtual environment. The venv module ships this script under
// Scripts\ on Windows too, for Git Bash and MSYS users.
func VenvActivateScript(venvDir string) string {
	return filepath.Join(VenvBinDir(venvDir), "activate")
}

// ExecutableName appends the platform executable suffix to a bare command
// name: "python" becomes "python.exe" on Windows and stays "python"
// elsewhere.
func ExecutableName(base string) string {
	return executableNameFor(runtime.GOOS, base)
}

// venvBinDirFor is the testable core of VenvBinDir, parameterized on GOOS.
func venvBinDirFor(goos, venvDir string) string {
	if goos == Windows {
		return filepath.Join(venvDir, "Scripts")
	}
	return filepath.Join(venvDir, "bin")
}

// executableNameFor is the testable core of ExecutableName, parameterized on GOOS.
func executableNameFor(goos, base string) string {
	if goos == Windows {
		return base + ".exe"
	}
	return base
}
