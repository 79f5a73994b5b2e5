// SPDX-License-Identifier: MPL-2.0

// Package summary models the course catalog snapshot produced by a
// catalog walk: schools, their programs, and every course with its
// resolved requirement and prerequisite references. Snapshots are
// persisted as indented JSON so they can be rendered, graphed, and
// reported without re-crawling the catalog.
package summary

import (
	"encoding/json"
	"fmt"
	"os"
)

// NotAvailable marks a program link that the walk could not discover.
const NotAvailable = "Not available"

type (
	// Summary is the root of a catalog snapshot.
	Summary struct {
		CatalogURL   string   `json:"catalog_url"`
		TotalCourses int      `json:"total_courses"`
		Schools      []School `json:"schools"`
	}

	// School groups the programs found under one school overview page.
	School struct {
		SchoolName string    `json:"school_name"`
		SchoolURL  string    `json:"school_url"`
		Programs   []Program `json:"programs"`
	}

	// Program holds one program's course listing together with the
	// courses its requirements page references.
	Program struct {
		ProgramName            string      `json:"program_name"`
		ProgramRequirementsURL string      `json:"program_requirements_url"`
		CoursesURL             string      `json:"courses_url"`
		RequirementCourses     []CourseRef `json:"requirement_courses"`
		ProgramCourses         []Course    `json:"program_courses"`
	}

	// Course is a single catalog course with its resolved prerequisites.
	Course struct {
		CourseID      string      `json:"course_id"`
		CourseTitle   string      `json:"course_title"`
		Prerequisites []CourseRef `json:"prerequisites"`
	}

	// CourseRef points at a course by identifier and title.
	CourseRef struct {
		CourseID    string `json:"course_id"`
		CourseTitle string `json:"course_title"`
	}
)

// Save writes the summary to path as indented JSON. HTML escaping is
// disabled so catalog URLs survive a round trip unmangled.
func (s *Summary) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating summary file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding summary: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing summary file: %w", err)
	}
	return nil
}

// Load reads a summary previously written by Save. A missing file is
// reported with an error satisfying errors.Is(err, fs.ErrNotExist) so
// callers can tell "not generated yet" from a corrupt snapshot.
func Load(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading summary file: %w", err)
	}

	var s Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing summary file %s: %w", path, err)
	}
	return &s, nil
}
