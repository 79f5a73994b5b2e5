// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/catwalk-dev/catwalk/internal/flow"
	"github.com/catwalk-dev/catwalk/internal/logging"
)

// flowCmd runs the dictionary and summarize steps as one workflow
var flowCmd = &cobra.Command{
	Use:   "flow <catalog-url>",
	Short: "Run the full catalog analysis workflow",
	Long: `Run the catalog analysis workflow end to end: build or load the
course dictionary, then summarize the catalog against it.

Each step prints the same transcript as its standalone command. A
failed step aborts the workflow.

Examples:
  catwalk flow https://catalog.sjf.edu/2025-2026/`,
	Args: requiredCatalogURLArgs,
	RunE: runFlow,
}

func runFlow(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	catalogURL := args[0]

	steps := []flow.Step{
		{
			Name:    "catwalk dict",
			Title:   "Creating/Loading Course Dictionary",
			Success: "✓ Course dictionary ready",
			Run: func(ctx context.Context) error {
				return buildDictionary(ctx, stdout, stderr, catalogURL)
			},
		},
		{
			Name:  "catwalk summarize",
			Title: "Summarizing Catalog",
			Needs: []string{"catwalk dict"},
			Run: func(ctx context.Context) error {
				return summarizeCatalog(ctx, stdout, stderr, catalogURL)
			},
		},
	}

	runner := flow.NewRunner("CATALOG ANALYSIS WORKFLOW", steps,
		flow.WithIntro("Catalog URL: "+catalogURL),
		flow.WithOutput(stdout),
		flow.WithLogger(logging.New(verbose)),
	)
	if err := runner.Run(cmd.Context()); err != nil {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: 1, Err: err}
	}
	return nil
}
