// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/catwalk-dev/catwalk/pkg/summary"
)

// showCmd prints an exported catalog summary
var showCmd = &cobra.Command{
	Use:   "show <json-file>",
	Short: "Print an exported catalog summary",
	Long: `Print the schools, programs, courses, and prerequisites recorded in
an exported catalog summary.

Examples:
  catwalk show 2025-2026_undergraduate.json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()

	s, err := loadSummary(stdout, args[0], true)
	if err != nil {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return err
	}

	fmt.Fprint(stdout, summary.RenderCatalog(s, summaryStyles()))
	return nil
}
