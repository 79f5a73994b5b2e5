// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/catwalk-dev/catwalk/internal/catalog"
	"github.com/catwalk-dev/catwalk/internal/config"
	"github.com/catwalk-dev/catwalk/internal/dictionary"
	"github.com/catwalk-dev/catwalk/internal/issue"
	"github.com/catwalk-dev/catwalk/internal/logging"
	"github.com/catwalk-dev/catwalk/pkg/summary"
	"github.com/catwalk-dev/catwalk/pkg/types"
)

// defaultCatalogURL is the catalog analyzed when no URL argument is given.
const defaultCatalogURL = "https://catalog.sjf.edu/2025-2026/"

// rule is the heavy horizontal divider used in walk transcripts.
var rule = strings.Repeat("=", 80)

// catalogURLArg returns the catalog URL from the argument list, falling
// back to the default catalog.
func catalogURLArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultCatalogURL
}

// catalogURLArgs validates the optional catalog URL argument at parse
// time, so a malformed URL fails as a usage error before any walking.
func catalogURLArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
		return err
	}
	if len(args) == 1 {
		return types.CatalogURL(args[0]).Validate()
	}
	return nil
}

// requiredCatalogURLArgs is catalogURLArgs for commands that cannot fall
// back to the default catalog.
func requiredCatalogURLArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return err
	}
	return types.CatalogURL(args[0]).Validate()
}

// activeConfig returns the loaded configuration, falling back to defaults
// when a run function is exercised without the cobra initializer.
func activeConfig() *config.Config {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return cfg
}

// newCatalogClient builds the HTTP client used by catalog-walking commands
// from the active configuration.
func newCatalogClient() *catalog.Client {
	c := activeConfig()

	opts := []catalog.ClientOption{
		catalog.WithTimeout(c.HTTP.Timeout),
		catalog.WithDelay(c.HTTP.Delay),
	}
	if c.UserAgent != "" {
		opts = append(opts, catalog.WithUserAgent(c.UserAgent))
	}
	return catalog.NewClient(opts...)
}

// outputPath places a derived filename under the configured output
// directory. An empty directory means the current working directory.
func outputPath(name string) string {
	if dir := activeConfig().Output.Dir.String(); dir != "" {
		return filepath.Join(dir, name)
	}
	return name
}

// renderIssue writes the help card for an issue to w. Render failures are
// logged rather than surfaced so they never mask the original error.
func renderIssue(w io.Writer, id issue.Id) {
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	rendered, err := entry.Render("dark")
	if err != nil {
		logging.New(verbose).Warn("failed to render issue card", "issue", id, "error", err)
		return
	}
	fmt.Fprint(w, rendered)
}

// printDiscovered reports the school discovery tallies after a catalog walk.
func printDiscovered(w io.Writer, result *catalog.WalkResult) {
	fmt.Fprintf(w, "Discovered %d candidate school URLs; %d appear in sidebar\n\n",
		len(result.Candidates), len(result.Schools))
}

// walkCatalog traverses a catalog site and reports the discovery tallies.
// A failed walk is fatal; a walk that confirms no schools at all gets a
// help card on stderr but still proceeds, matching the lenient handling
// of individually broken pages.
func walkCatalog(ctx context.Context, stdout, stderr io.Writer, client *catalog.Client, catalogURL string) (*catalog.WalkResult, error) {
	walker := catalog.NewWalker(client, catalog.WithWalkerLogger(logging.New(verbose)))

	result, err := walker.Walk(ctx, catalogURL)
	if err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		renderIssue(stderr, issue.CatalogFetchFailedId)
		return nil, &ExitError{Code: 1, Err: err}
	}

	printDiscovered(stdout, result)
	if len(result.Schools) == 0 {
		renderIssue(stderr, issue.SidebarNotFoundId)
	}
	return result, nil
}

// loadDictionary reads the course dictionary for a catalog, starting fresh
// when none exists or when the stored file cannot be decoded.
func loadDictionary(stdout io.Writer, path string) *dictionary.Dictionary {
	d, err := dictionary.Load(path)
	switch {
	case err == nil:
		fmt.Fprintf(stdout, "✓ Loaded course dictionary from %s (%d courses)\n", path, d.Len())
		return d
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(stdout, "ℹ️  No existing course dictionary found at %s\n", path)
		return dictionary.New()
	default:
		fmt.Fprintf(stdout, "⚠️  Error loading course dictionary: %v\n", err)
		fmt.Fprintln(stdout, "   Starting with empty dictionary...")
		return dictionary.New()
	}
}

// requireDictionary reads the course dictionary for commands that cannot
// proceed without one. A missing file is fatal; a corrupt file degrades to
// an empty dictionary so the walk still runs.
func requireDictionary(stdout, stderr io.Writer, path string) (*dictionary.Dictionary, error) {
	d, err := dictionary.Load(path)
	switch {
	case err == nil:
		fmt.Fprintf(stdout, "✓ Loaded course dictionary from %s (%d courses)\n", path, d.Len())
		return d, nil
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(stdout, "❌ Course dictionary not found at %s\n", path)
		fmt.Fprintln(stdout, "   Please run 'catwalk dict' first to build the dictionary.")
		renderIssue(stderr, issue.DictionaryNotFoundId)
		return nil, &ExitError{Code: 1, Err: err}
	default:
		fmt.Fprintf(stdout, "⚠️  Error loading course dictionary: %v\n", err)
		return dictionary.New(), nil
	}
}

// loadSummary reads a previously exported catalog summary. The hint is
// shown for commands whose inputs are normally produced by 'catwalk export'.
func loadSummary(stdout io.Writer, path string, hint bool) (*summary.Summary, error) {
	s, err := summary.Load(path)
	switch {
	case err == nil:
		fmt.Fprintf(stdout, "✓ Loaded catalog summary from %s\n", path)
		return s, nil
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(stdout, "❌ JSON file not found: %s\n", path)
		if hint {
			fmt.Fprintln(stdout, "   Please run 'catwalk export' first to generate the JSON file.")
		}
		return nil, &ExitError{Code: 1, Err: err}
	default:
		var (
			syntaxErr *json.SyntaxError
			typeErr   *json.UnmarshalTypeError
		)
		if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
			fmt.Fprintf(stdout, "❌ Error parsing JSON file: %v\n", err)
		} else {
			fmt.Fprintf(stdout, "❌ Error loading JSON file: %v\n", err)
		}
		return nil, &ExitError{Code: 1, Err: err}
	}
}
