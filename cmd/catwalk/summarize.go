// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/catwalk-dev/catwalk/internal/catalog"
	"github.com/catwalk-dev/catwalk/internal/logging"
	"github.com/catwalk-dev/catwalk/pkg/summary"
)

// summarizeCmd walks a catalog and prints the analysis transcript
var summarizeCmd = &cobra.Command{
	Use:   "summarize [catalog-url]",
	Short: "Walk a catalog and print programs with prerequisites",
	Long: `Walk a catalog site and print every program's courses together with
the prerequisites resolved through the course dictionary.

The course dictionary for the catalog must exist already; build it
with 'catwalk dict' first.

Examples:
  catwalk summarize
  catwalk summarize https://catalog.sjf.edu/2025-2026/`,
	Args: catalogURLArgs,
	RunE: runSummarize,
}

func runSummarize(cmd *cobra.Command, args []string) error {
	err := summarizeCatalog(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), catalogURLArg(args))
	if err != nil {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
	}
	return err
}

// summarizeCatalog walks catalogURL and renders the program and
// prerequisite analysis. It is shared with the workflow command.
func summarizeCatalog(ctx context.Context, stdout, stderr io.Writer, catalogURL string) error {
	fmt.Fprintf(stdout, "Analyzing: %s\n\n", catalogURL)

	dictFile := outputPath(catalog.SerFilename(catalogURL))
	d, err := requireDictionary(stdout, stderr, dictFile)
	if err != nil {
		return err
	}

	client := newCatalogClient()
	result, err := walkCatalog(ctx, stdout, stderr, client, catalogURL)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, rule)
	fmt.Fprintf(stdout, "\nCollecting course data for analysis...\n\n")

	builder := summary.NewBuilder(client, d, summary.WithBuilderLogger(logging.New(verbose)))
	s, err := builder.Build(ctx, result)
	if err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return &ExitError{Code: 1, Err: err}
	}

	fmt.Fprint(stdout, summary.RenderAnalysis(s, summaryStyles()))
	return nil
}
