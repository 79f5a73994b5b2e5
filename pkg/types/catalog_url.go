// SPDX-License-Identifier: MPL-2.0

// Package types defines cross-cutting Value Types used by multiple domain
// packages (catalog, dictionary, summary, etc.). These are foundation types
// that carry semantic meaning and validation but have no domain-specific
// dependencies.
//
// This package is a leaf dependency: it imports only the standard library.
// Domain packages import it; it never imports domain packages.
package types

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrInvalidCatalogURL is the sentinel error wrapped by InvalidCatalogURLError.
var ErrInvalidCatalogURL = errors.New("invalid catalog URL")

type (
	// CatalogURL represents the root URL of a catalog edition, e.g.
	// "https://catalog.sjf.edu/2025-2026/". It must be an absolute
	// http(s) URL with a host. The zero value ("") is invalid.
	CatalogURL string

	// InvalidCatalogURLError is returned when a CatalogURL value is not
	// an absolute http(s) URL.
	InvalidCatalogURLError struct {
		Value  CatalogURL
		Reason string
	}
)

// String returns the string representation of the CatalogURL.
func (u CatalogURL) String() string { return string(u) }

// Validate returns an error if the CatalogURL is not an absolute http(s)
// URL with a non-empty host.
func (u CatalogURL) Validate() error {
	if u == "" {
		return &InvalidCatalogURLError{Value: u, Reason: "must not be empty"}
	}
	parsed, err := url.Parse(string(u))
	if err != nil {
		return &InvalidCatalogURLError{Value: u, Reason: err.Error()}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &InvalidCatalogURLError{Value: u, Reason: fmt.Sprintf("scheme must be http or https, got %q", parsed.Scheme)}
	}
	if parsed.Host == "" {
		return &InvalidCatalogURLError{Value: u, Reason: "must include a host"}
	}
	return nil
}

// Error implements the error interface for InvalidCatalogURLError.
func (e *InvalidCatalogURLError) Error() string {
	return fmt.Sprintf("invalid catalog URL %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidCatalogURL for errors.Is() compatibility.
func (e *InvalidCatalogURLError) Unwrap() error { return ErrInvalidCatalogURL }
