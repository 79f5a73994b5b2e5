// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/catwalk-dev/catwalk/pkg/platform"
)

// DefaultBaseName is used when a catalog URL has no usable path segments
// (or the derived name would collide with a reserved device name).
const DefaultBaseName = "catalog_summary"

// NormalizeURL canonicalizes a catalog URL for reliable comparison: the
// scheme and host are lowercased, query and fragment are dropped, an empty
// path becomes "/", and directory-like paths (last segment without a dot)
// get a trailing slash. Unparseable input is returned trimmed but otherwise
// unchanged, so callers can still use it as a map key.
func NormalizeURL(rawURL string) string {
	trimmed := strings.TrimSpace(rawURL)
	u, err := url.Parse(trimmed)
	if err != nil {
		return trimmed
	}

	path := u.Path
	if path == "" {
		path = "/"
	}
	if !strings.HasSuffix(path, "/") {
		segments := strings.Split(path, "/")
		if !strings.Contains(segments[len(segments)-1], ".") {
			path += "/"
		}
	}

	normalized := url.URL{
		Scheme: strings.ToLower(u.Scheme),
		Host:   strings.ToLower(u.Host),
		Path:   path,
	}
	return normalized.String()
}

// YearRoot returns the catalog year root for a page URL, e.g.
// "https://catalog.sjf.edu/2025-2026/" for any page beneath that year.
// A URL with no path segments yields "<scheme>://<host>/".
func YearRoot(pageURL string) (string, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("parsing page URL: %w", err)
	}

	segments := pathSegments(u.Path)
	if len(segments) == 0 {
		return fmt.Sprintf("%s://%s/", u.Scheme, u.Host), nil
	}
	return fmt.Sprintf("%s://%s/%s/", u.Scheme, u.Host, segments[0]), nil
}

// BaseName derives the artifact base name from a catalog URL by joining its
// first two path segments with an underscore, e.g.
// "https://catalog.sjf.edu/2025-2026/undergraduate/" -> "2025-2026_undergraduate".
// A single segment stands alone; no segments fall back to DefaultBaseName.
// Names that collide with reserved Windows device names (CON, PRN, ...) also
// fall back, so the derived files stay creatable everywhere.
func BaseName(catalogURL string) string {
	u, err := url.Parse(strings.TrimSpace(catalogURL))
	if err != nil {
		return DefaultBaseName
	}

	segments := pathSegments(u.Path)
	var base string
	switch {
	case len(segments) >= 2:
		base = segments[0] + "_" + segments[1]
	case len(segments) == 1:
		base = segments[0]
	default:
		return DefaultBaseName
	}

	if platform.IsWindowsReservedName(base) {
		return DefaultBaseName
	}
	return base
}

// SerFilename returns the course dictionary filename for a catalog URL.
func SerFilename(catalogURL string) string {
	return BaseName(catalogURL) + ".ser"
}

// JSONFilename returns the summary filename for a catalog URL.
func JSONFilename(catalogURL string) string {
	return BaseName(catalogURL) + ".json"
}

// DotFilename converts a summary filename to its Graphviz DOT counterpart.
func DotFilename(jsonFilename string) string {
	return trimExt(jsonFilename) + ".dot"
}

// PDFFilename converts a summary filename to its report PDF counterpart.
func PDFFilename(jsonFilename string) string {
	return trimExt(jsonFilename) + ".pdf"
}

// DependenciesPDFFilename converts a summary filename to the dependency
// analysis PDF counterpart.
func DependenciesPDFFilename(jsonFilename string) string {
	return trimExt(jsonFilename) + "_dependencies.pdf"
}

func trimExt(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

// pathSegments splits a URL path into its non-empty segments.
func pathSegments(path string) []string {
	var segments []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}
