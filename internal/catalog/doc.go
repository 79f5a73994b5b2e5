// SPDX-License-Identifier: MPL-2.0

// Package catalog fetches and parses college course-catalog pages.
//
// The package is split along three seams:
//
//   - Client: a polite HTTP fetcher with a per-request timeout and a
//     post-fetch delay so crawls do not hammer the catalog server.
//   - Parse functions: goquery-based extractors for the specific markup the
//     catalog CMS emits (sidebar navigation, course headings, prerequisite
//     spans).
//   - Walker: drives a full catalog traversal (landing page -> schools ->
//     programs -> course pages) and returns flat CourseRecord rows.
//
// URL helpers (NormalizeURL, YearRoot, BaseName) define how catalog URLs are
// compared and how derived artifact filenames are named; every other package
// that touches catalog URLs goes through them.
package catalog
