// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/catwalk-dev/catwalk/internal/catalog"
	"github.com/catwalk-dev/catwalk/internal/issue"
	"github.com/catwalk-dev/catwalk/internal/report"
)

// depsCmd renders the course dependency report
var depsCmd = &cobra.Command{
	Use:   "deps <json-file>",
	Short: "Render the course dependency PDF",
	Long: `Render a PDF that lists, for every course in an exported summary,
which programs require it, which courses it unlocks, and what its own
prerequisites are.

The PDF is written next to the JSON input with a _dependencies suffix.

Examples:
  catwalk deps 2025-2026_undergraduate.json`,
	Args: cobra.ExactArgs(1),
	RunE: runDeps,
}

func runDeps(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()

	s, err := loadSummary(stdout, args[0], false)
	if err != nil {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return err
	}

	pdfFile := catalog.DependenciesPDFFilename(args[0])
	fmt.Fprintf(stdout, "Creating dependency PDF: %s\n", pdfFile)

	if err := report.WriteDependencies(s, pdfFile); err != nil {
		fmt.Fprintf(stdout, "❌ Error creating PDF: %v\n", err)
		renderIssue(cmd.ErrOrStderr(), issue.ReportWriteFailedId)
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: 1, Err: err}
	}

	fmt.Fprintf(stdout, "✓ PDF created successfully: %s\n", pdfFile)
	return nil
}
