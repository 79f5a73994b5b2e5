// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

type (
	// CourseRecord is one course encountered during a catalog walk, tagged
	// with the school and program pages it was reached through. Prerequisites
	// holds the raw text scraped from the course entry, resolved against a
	// course dictionary later.
	CourseRecord struct {
		SchoolURL       string
		ProgramName     string
		RequirementsURL string
		CoursesURL      string
		ID              string
		Title           string
		Prerequisites   string
	}

	// WalkResult is everything a catalog walk collects. Candidates holds all
	// discovered school URLs, Schools the subset confirmed by the landing
	// page sidebar in sorted order, and Courses the flat course records in
	// traversal order. SchoolNames maps school URLs to display names for the
	// pages that could be fetched.
	WalkResult struct {
		CatalogURL  string
		Candidates  []string
		Schools     []string
		SchoolNames map[string]string
		Courses     []CourseRecord
	}

	// Walker traverses a catalog site from its landing page down to course
	// listings. Pages that fail to fetch or parse are logged and skipped so
	// one broken school or program does not abort the walk.
	Walker struct {
		client          *Client
		logger          *log.Logger
		includeGraduate bool
	}

	// WalkerOption configures a Walker.
	WalkerOption func(*Walker)
)

// WithWalkerLogger sets the logger used for skipped-page warnings.
func WithWalkerLogger(logger *log.Logger) WalkerOption {
	return func(w *Walker) {
		w.logger = logger
	}
}

// WithGraduatePrograms widens school discovery to graduate schools in
// addition to undergraduate ones.
func WithGraduatePrograms() WalkerOption {
	return func(w *Walker) {
		w.includeGraduate = true
	}
}

// NewWalker returns a Walker that fetches pages through the given client.
// By default it walks undergraduate schools only and logs warnings to
// stderr.
func NewWalker(client *Client, opts ...WalkerOption) *Walker {
	w := &Walker{
		client: client,
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "catalog"}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Walk traverses the catalog rooted at catalogURL. The landing page is
// fetched once and scanned twice: once to discover candidate school URLs
// and once to confirm them against the sidebar. Each confirmed school page
// yields program navigation links; each program page is scanned for its
// "Program Requirements" and "Courses" links, and programs carrying both
// have their course listings extracted. A failed landing page fetch aborts
// the walk; failures further down are logged and skipped.
func (w *Walker) Walk(ctx context.Context, catalogURL string) (*WalkResult, error) {
	landingHTML, err := w.client.Get(ctx, catalogURL)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog page: %w", err)
	}

	candidates, err := DiscoverSchoolURLs(landingHTML, catalogURL, w.includeGraduate)
	if err != nil {
		return nil, fmt.Errorf("discovering school URLs: %w", err)
	}

	sidebar, err := SidebarSchoolLinks(landingHTML, catalogURL)
	if err != nil {
		return nil, fmt.Errorf("scanning catalog sidebar: %w", err)
	}

	result := &WalkResult{
		CatalogURL:  catalogURL,
		Candidates:  candidates,
		SchoolNames: make(map[string]string),
	}
	for _, candidate := range candidates {
		if sidebar[candidate] {
			result.Schools = append(result.Schools, candidate)
		}
	}

	for _, schoolURL := range result.Schools {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := w.walkSchool(ctx, schoolURL, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// walkSchool collects the course records reachable from one school page.
// Returns an error only when the context is canceled.
func (w *Walker) walkSchool(ctx context.Context, schoolURL string, result *WalkResult) error {
	schoolHTML, err := w.client.Get(ctx, schoolURL)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		w.logger.Warn("skipping school page", "url", schoolURL, "error", err)
		return nil
	}
	result.SchoolNames[schoolURL] = SchoolName(schoolHTML)

	navLinks, err := SidebarNavLinks(schoolHTML, schoolURL)
	if err != nil {
		w.logger.Warn("skipping school sidebar", "url", schoolURL, "error", err)
		return nil
	}

	for _, nav := range navLinks {
		if err := ctx.Err(); err != nil {
			return err
		}
		w.walkProgram(ctx, schoolURL, nav, result)
	}
	return nil
}

// walkProgram resolves one program's requirements and courses links and
// extracts its course listing. Programs missing either link are skipped,
// matching how the catalog publishes incomplete program pages.
func (w *Walker) walkProgram(ctx context.Context, schoolURL string, nav Link, result *WalkResult) {
	programHTML, err := w.client.Get(ctx, nav.URL)
	if err != nil {
		w.logger.Warn("skipping program page", "program", nav.Text, "url", nav.URL, "error", err)
		return
	}

	requirementsURL, ok, err := FindLink(programHTML, nav.URL, "Program Requirements")
	if err != nil || !ok {
		return
	}
	coursesURL, ok, err := FindLink(programHTML, nav.URL, "Courses")
	if err != nil || !ok {
		return
	}

	coursesHTML, err := w.client.Get(ctx, coursesURL)
	if err != nil {
		w.logger.Warn("skipping courses page", "program", nav.Text, "url", coursesURL, "error", err)
		return
	}
	entries, err := CourseEntries(coursesHTML)
	if err != nil {
		w.logger.Warn("skipping course listing", "program", nav.Text, "url", coursesURL, "error", err)
		return
	}

	for _, entry := range entries {
		result.Courses = append(result.Courses, CourseRecord{
			SchoolURL:       schoolURL,
			ProgramName:     nav.Text,
			RequirementsURL: requirementsURL,
			CoursesURL:      coursesURL,
			ID:              entry.ID,
			Title:           entry.Title,
			Prerequisites:   entry.Prerequisites,
		})
	}
}

// SchoolName returns the display name recorded for a school URL, falling
// back to UnknownSchool when the page could not be fetched during the walk.
func (r *WalkResult) SchoolName(schoolURL string) string {
	if name, ok := r.SchoolNames[schoolURL]; ok {
		return name
	}
	return UnknownSchool
}
