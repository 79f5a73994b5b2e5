// SPDX-License-Identifier: MPL-2.0

package bootstrap

import (
	"fmt"
	"strings"

	"github.com/catwalk-dev/catwalk/pkg/platform"
)

// pythonCandidatesFor returns the interpreter names probed on PATH when
// no explicit interpreter is configured. Windows installs often ship
// only "python" and the "py" launcher, so both are probed there.
func pythonCandidatesFor(goos string) []string {
	if goos == platform.Windows {
		return []string{"python3", "python", "py"}
	}
	return []string{"python3", "python"}
}

// resolvePython picks the interpreter used to create the virtual
// environment. An explicit override must resolve; without one the PATH
// candidates are probed in order and the first hit wins.
func resolvePython(c Commander, override, goos string) (string, error) {
	if override != "" {
		path, err := c.LookPath(override)
		if err != nil {
			return "", fmt.Errorf("%w: configured interpreter %q is not runnable: %v", ErrPythonNotFound, override, err)
		}
		return path, nil
	}
	for _, name := range pythonCandidatesFor(goos) {
		if path, err := c.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrPythonNotFound, strings.Join(pythonCandidatesFor(goos), ", "))
}
