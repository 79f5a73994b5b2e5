// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/catwalk-dev/catwalk/internal/catalog"
	"github.com/catwalk-dev/catwalk/internal/issue"
	"github.com/catwalk-dev/catwalk/internal/report"
)

// reportCmd renders an exported summary as a printable PDF
var reportCmd = &cobra.Command{
	Use:   "report <json-file>",
	Short: "Render an exported summary as a PDF report",
	Long: `Render an exported catalog summary as a printable PDF, one section
per school with its programs, courses, and prerequisites.

The PDF is written next to the JSON input.

Examples:
  catwalk report 2025-2026_undergraduate.json`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()

	s, err := loadSummary(stdout, args[0], true)
	if err != nil {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return err
	}

	pdfFile := catalog.PDFFilename(args[0])
	fmt.Fprintf(stdout, "Creating PDF: %s\n", pdfFile)

	if err := report.WriteCatalog(s, pdfFile); err != nil {
		fmt.Fprintf(stdout, "❌ Error creating PDF: %v\n", err)
		renderIssue(cmd.ErrOrStderr(), issue.ReportWriteFailedId)
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: 1, Err: err}
	}

	fmt.Fprintf(stdout, "✓ PDF created successfully: %s\n", pdfFile)
	return nil
}
