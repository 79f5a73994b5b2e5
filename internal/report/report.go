// SPDX-License-Identifier: MPL-2.0

// Package report renders catalog summaries as PDF documents: the full
// catalog report with one school per page, and the course dependency
// analysis.
package report

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/catwalk-dev/catwalk/internal/catalog"
	"github.com/catwalk-dev/catwalk/pkg/summary"
)

// Page geometry in points. Letter paper with 0.75" margins for the
// catalog report and 1" x 0.5" margins for the dependency report.
const (
	catalogMargin = 54

	depsSideMargin = 72
	depsEdgeMargin = 36
)

// doc wraps an fpdf document with paragraph-style text placement:
// left-indented, wrap-at-right-margin blocks with trailing space.
type doc struct {
	pdf  *fpdf.Fpdf
	tr   func(string) string
	left float64
}

func newDoc(left, top, right, bottom float64) *doc {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(left, top, right)
	pdf.SetAutoPageBreak(true, bottom)
	pdf.AddPage()
	return &doc{
		pdf:  pdf,
		tr:   pdf.UnicodeTranslatorFromDescriptor(""),
		left: left,
	}
}

// para writes one paragraph. style is the fpdf font style string (""
// regular, "B" bold, "I" italic); indent offsets the paragraph from the
// left margin; after adds vertical space below it.
func (d *doc) para(text string, size float64, style string, indent, after float64) {
	d.pdf.SetFont("Helvetica", style, size)
	d.pdf.SetLeftMargin(d.left + indent)
	d.pdf.SetX(d.left + indent)
	d.pdf.MultiCell(0, size*1.2, d.tr(text), "", "L", false)
	d.pdf.SetLeftMargin(d.left)
	if after > 0 {
		d.pdf.Ln(after)
	}
}

func (d *doc) spacer(h float64) {
	d.pdf.Ln(h)
}

func (d *doc) save(path string) error {
	if err := d.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

// WriteCatalog renders the full catalog report: header with URL and
// course total, then every school with its programs, requirement
// courses, and prerequisite sub-lists, one school per page.
func WriteCatalog(s *summary.Summary, path string) error {
	d := newDoc(catalogMargin, catalogMargin, catalogMargin, catalogMargin)

	d.para("Catalog Analysis", 16, "B", 0, 12)
	d.para("URL: "+orDefault(s.CatalogURL, "Unknown"), 10, "", 60, 4)
	d.para(fmt.Sprintf("Total courses: %d", s.TotalCourses), 10, "", 60, 4)
	d.spacer(14.4)

	d.para("Program Courses and Prerequisite Relationships", 16, "B", 0, 12)
	d.spacer(7.2)

	for i, school := range s.Schools {
		d.spacer(10)
		d.para("School: "+orDefault(school.SchoolName, catalog.UnknownSchool), 14, "B", 0, 10)
		d.para("Overview: "+orDefault(school.SchoolURL, "Unknown URL"), 10, "", 60, 4)
		d.spacer(7.2)

		for _, program := range school.Programs {
			writeProgram(d, program)
		}

		if i < len(s.Schools)-1 {
			d.pdf.AddPage()
		}
	}

	return d.save(path)
}

func writeProgram(d *doc, program summary.Program) {
	d.spacer(8)
	d.para("Program: "+orDefault(program.ProgramName, "Unknown Program"), 12, "B", 20, 8)

	reqURL := orDefault(program.ProgramRequirementsURL, summary.NotAvailable)
	switch {
	case len(program.RequirementCourses) > 0:
		d.para(fmt.Sprintf("Requirement Courses (%d): %s", len(program.RequirementCourses), reqURL), 11, "B", 40, 6)
		for _, ref := range program.RequirementCourses {
			d.para(fmt.Sprintf("• %q: %q", orDefault(ref.CourseID, "Unknown"), orDefault(ref.CourseTitle, "Unknown")), 10, "", 60, 4)
		}
	case reqURL != summary.NotAvailable:
		d.para(fmt.Sprintf("Requirement Courses: None found (%s)", reqURL), 11, "B", 40, 6)
	default:
		d.para("Requirement Courses: Not available", 11, "B", 40, 6)
	}

	d.spacer(3.6)
	d.para("Courses URL: "+orDefault(program.CoursesURL, summary.NotAvailable), 11, "B", 40, 6)
	d.para("Program Courses:", 11, "B", 40, 6)
	d.spacer(3.6)

	for _, course := range program.ProgramCourses {
		d.para(fmt.Sprintf("• %q, %q", orDefault(course.CourseID, "Unknown"), orDefault(course.CourseTitle, "Unknown")), 10, "", 60, 4)
		if len(course.Prerequisites) == 0 {
			continue
		}
		d.para("Prerequisites:", 9, "", 80, 2)
		for _, ref := range course.Prerequisites {
			d.para(fmt.Sprintf("- %q: %q", orDefault(ref.CourseID, "Unknown"), orDefault(ref.CourseTitle, "Unknown")), 9, "", 80, 2)
		}
	}
	d.spacer(7.2)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
