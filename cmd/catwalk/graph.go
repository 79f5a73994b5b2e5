// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/catwalk-dev/catwalk/internal/catalog"
	"github.com/catwalk-dev/catwalk/internal/graph"
	"github.com/catwalk-dev/catwalk/internal/issue"
	"github.com/catwalk-dev/catwalk/internal/logging"
)

// graphCmd renders an exported summary as a Graphviz document
var graphCmd = &cobra.Command{
	Use:   "graph <json-file>",
	Short: "Render an exported summary as a Graphviz DOT graph",
	Long: `Render the schools, programs, courses, and prerequisite relationships
from an exported catalog summary as a Graphviz DOT document.

The DOT file is written next to the JSON input. Render it to an image
with the Graphviz 'dot' tool.

Examples:
  catwalk graph 2025-2026_undergraduate.json`,
	Args: cobra.ExactArgs(1),
	RunE: runGraph,
}

func runGraph(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()

	s, err := loadSummary(stdout, args[0], true)
	if err != nil {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return err
	}

	dotFile := catalog.DotFilename(args[0])
	fmt.Fprintf(stdout, "Creating DOT graph: %s\n", dotFile)

	stats, err := graph.Export(s, dotFile)
	if err != nil {
		fmt.Fprintf(stdout, "❌ Error creating DOT file: %v\n", err)
		renderIssue(cmd.ErrOrStderr(), issue.ReportWriteFailedId)
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: 1, Err: err}
	}

	if cycle := graph.PrerequisiteCycle(s); cycle != nil {
		logging.New(verbose).Warn("prerequisite cycle in catalog data",
			"cycle", strings.Join(cycle, " -> "))
	}

	fmt.Fprintf(stdout, "✓ DOT graph created successfully: %s\n", dotFile)
	fmt.Fprintf(stdout, "\n  Total nodes: %d\n", stats.Nodes)
	fmt.Fprintf(stdout, "  Total edges: %d\n", stats.Edges)
	fmt.Fprintf(stdout, "\nTo generate an image, you need Graphviz installed. Then run:\n")
	fmt.Fprintf(stdout, "  dot -Tpng %s -o %s\n", dotFile, strings.TrimSuffix(dotFile, ".dot")+".png")
	fmt.Fprintf(stdout, "  dot -Tsvg %s -o %s\n", dotFile, strings.TrimSuffix(dotFile, ".dot")+".svg")
	return nil
}
