// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/catwalk-dev/catwalk/internal/catalog"
	"github.com/catwalk-dev/catwalk/pkg/types"
)

// dictCmd builds the course dictionary for a catalog
var dictCmd = &cobra.Command{
	Use:   "dict [catalog-url]",
	Short: "Build the course dictionary from a catalog",
	Long: `Build the course ID to title dictionary by walking a catalog site.

The dictionary is what later commands use to resolve prerequisite text
into concrete courses. It is stored next to the other derived files and
keyed by catalog year, so each catalog gets its own dictionary file.

When a dictionary for the catalog already exists it is loaded instead
of rebuilt; delete the .ser file to force a fresh walk.

Examples:
  catwalk dict
  catwalk dict https://catalog.sjf.edu/2025-2026/`,
	Args: catalogURLArgs,
	RunE: runDict,
}

func runDict(cmd *cobra.Command, args []string) error {
	err := buildDictionary(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), catalogURLArg(args))
	if err != nil {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
	}
	return err
}

// buildDictionary loads the dictionary for catalogURL, walking the catalog
// to build and save a fresh one when nothing usable is on disk. It is
// shared with the workflow command.
func buildDictionary(ctx context.Context, stdout, stderr io.Writer, catalogURL string) error {
	fmt.Fprintf(stdout, "Analyzing: %s\n\n", catalogURL)

	dictFile := outputPath(catalog.SerFilename(catalogURL))
	d := loadDictionary(stdout, dictFile)
	if d.Len() > 0 {
		fmt.Fprintln(stdout, "Course dictionary already exists and was loaded successfully.")
		return nil
	}

	fmt.Fprintf(stdout, "Building course dictionary from catalog...\n\n")

	result, err := walkCatalog(ctx, stdout, stderr, newCatalogClient(), catalogURL)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, rule)
	fmt.Fprintf(stdout, "\n🔍 PHASE 1: Building course dictionary...\n\n")

	for _, course := range result.Courses {
		d.Set(types.CourseID(course.ID), course.Title)
	}

	fmt.Fprintf(stdout, "✓ Built course dictionary with %d unique courses\n\n", d.Len())

	if err := d.Save(dictFile); err != nil {
		fmt.Fprintf(stdout, "⚠️  Error saving course dictionary: %v\n", err)
	} else {
		fmt.Fprintf(stdout, "✓ Course dictionary saved to %s\n", dictFile)
	}
	return nil
}
