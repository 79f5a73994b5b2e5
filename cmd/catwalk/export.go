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

// exportCmd walks a catalog and writes the JSON summary
var exportCmd = &cobra.Command{
	Use:   "export [catalog-url]",
	Short: "Export a catalog summary as JSON",
	Long: `Walk a catalog site and export the full summary as a JSON file.

The export groups every school, program, and course together with the
requirement courses and resolved prerequisites. The resulting file is
the input for 'catwalk show', 'catwalk graph', 'catwalk report', and
'catwalk deps'.

The course dictionary for the catalog must exist already; build it
with 'catwalk dict' first.

Examples:
  catwalk export
  catwalk export https://catalog.sjf.edu/2025-2026/`,
	Args: catalogURLArgs,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	err := exportCatalog(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), catalogURLArg(args))
	if err != nil {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
	}
	return err
}

// exportCatalog walks catalogURL and writes the summary JSON next to the
// other derived files.
func exportCatalog(ctx context.Context, stdout, stderr io.Writer, catalogURL string) error {
	fmt.Fprintf(stdout, "Generating JSON summary for: %s\n\n", catalogURL)

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

	fmt.Fprintf(stdout, "Collecting course data...\n\n")
	fmt.Fprintf(stdout, "Building JSON structure...\n\n")

	builder := summary.NewBuilder(client, d, summary.WithBuilderLogger(logging.New(verbose)))
	s, err := builder.Build(ctx, result)
	if err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return &ExitError{Code: 1, Err: err}
	}

	jsonFile := outputPath(catalog.JSONFilename(catalogURL))
	if err := s.Save(jsonFile); err != nil {
		fmt.Fprintf(stdout, "⚠️  Error saving JSON file: %v\n", err)
	} else {
		fmt.Fprintf(stdout, "✓ Summary saved to %s\n", jsonFile)
	}

	fmt.Fprintf(stdout, "\n✓ JSON generation complete!\n")
	fmt.Fprintf(stdout, "  Total schools: %d\n", len(s.Schools))
	fmt.Fprintf(stdout, "  Total courses: %d\n", s.TotalCourses)
	return nil
}
