// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/catwalk-dev/catwalk/internal/bootstrap"
	"github.com/catwalk-dev/catwalk/internal/issue"
	"github.com/catwalk-dev/catwalk/internal/logging"
)

// setupCmd prepares the local Python workspace
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Prepare the Python analysis environment",
	Long: `Prepare the Python environment used by the analysis notebooks.

Setup runs three phases in order:
  1. Create the virtual environment if it does not exist yet
  2. Activate it, adjusting PATH and VIRTUAL_ENV for this process
  3. Install dependencies from requirements.txt when one is present

The first two phases must succeed; a failure there aborts setup.
Dependency installation is best-effort: a failed or impossible install
is reported as a warning and setup still completes, since the exported
data pipeline works without the optional packages.

The virtual environment directory, interpreter, and requirements file
can be overridden in the [setup] section of the configuration file.`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	c := activeConfig()

	opts := []bootstrap.Option{
		bootstrap.WithOutput(cmd.OutOrStdout()),
		bootstrap.WithLogger(logging.New(verbose)),
	}
	if dir := c.Setup.VenvDir.String(); dir != "" {
		opts = append(opts, bootstrap.WithVenvDir(dir))
	}
	if req := c.Setup.Requirements.String(); req != "" {
		opts = append(opts, bootstrap.WithRequirements(req))
	}
	if python := c.Setup.Python.String(); python != "" {
		opts = append(opts, bootstrap.WithPython(python))
	}

	if err := bootstrap.New(opts...).Run(cmd.Context()); err != nil {
		stderr := cmd.ErrOrStderr()
		fmt.Fprintf(stderr, "%s Setup failed: %v\n", ErrorStyle.Render("✗"), err)
		renderIssue(stderr, setupIssueID(err))

		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: 1, Err: err}
	}
	return nil
}

// setupIssueID maps a bootstrap failure to its help card.
func setupIssueID(err error) issue.Id {
	switch {
	case errors.Is(err, bootstrap.ErrPythonNotFound):
		return issue.PythonNotFoundId
	case errors.Is(err, bootstrap.ErrVenvCreation):
		return issue.VenvCreationFailedId
	case errors.Is(err, bootstrap.ErrActivateMissing):
		return issue.ActivationScriptMissingId
	default:
		return issue.ActivationFailedId
	}
}
