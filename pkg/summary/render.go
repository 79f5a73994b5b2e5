// SPDX-License-Identifier: MPL-2.0

package summary

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/catwalk-dev/catwalk/internal/catalog"
)

const ruleWidth = 80

type (
	// Styles controls how the rendered reports are decorated. The
	// zero-ish PlainStyles leaves every line untouched, which is what
	// tests and non-TTY output want; the CLI passes colored styles.
	Styles struct {
		Banner  lipgloss.Style
		Header  lipgloss.Style
		School  lipgloss.Style
		Program lipgloss.Style
	}
)

// PlainStyles returns styles that render text unchanged.
func PlainStyles() Styles {
	return Styles{
		Banner:  lipgloss.NewStyle(),
		Header:  lipgloss.NewStyle(),
		School:  lipgloss.NewStyle(),
		Program: lipgloss.NewStyle(),
	}
}

// RenderAnalysis renders the program and prerequisite breakdown shown
// at the end of a live catalog walk. Schools are identified by URL
// because the walk report is printed while the catalog is still being
// analyzed.
func RenderAnalysis(s *Summary, st Styles) string {
	var b strings.Builder

	rule := st.Banner.Render(strings.Repeat("=", ruleWidth))
	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "\n%s\n\n", st.Header.Render("🔍 PHASE 2: Program Courses and prerequisite relationships..."))
	fmt.Fprintf(&b, "%s\n", rule)

	for _, school := range s.Schools {
		fmt.Fprintf(&b, "\n%s\n", st.School.Render("📚 School: "+school.SchoolURL))
		fmt.Fprintf(&b, "%s\n", st.Banner.Render(strings.Repeat("-", ruleWidth)))

		for _, program := range school.Programs {
			fmt.Fprintf(&b, "\n  %s\n", st.Program.Render("📄 Program: "+program.ProgramName))
			fmt.Fprintf(&b, "      Program Requirements URL: %s\n", program.ProgramRequirementsURL)

			if len(program.RequirementCourses) > 0 {
				fmt.Fprintf(&b, "\n      📋 Requirement Courses (%d):\n", len(program.RequirementCourses))
				for _, ref := range program.RequirementCourses {
					fmt.Fprintf(&b, "        • %q: %q\n", ref.CourseID, ref.CourseTitle)
				}
			}

			fmt.Fprintf(&b, "\n      Courses URL: %s\n", program.CoursesURL)
			fmt.Fprintf(&b, "\n      📚 Program Courses:\n\n")
			writeCourses(&b, program.ProgramCourses)
		}
	}

	return b.String()
}

// RenderCatalog renders a saved summary in full: catalog header,
// course total, and every school with its programs, requirement
// courses, and prerequisite relationships.
func RenderCatalog(s *Summary, st Styles) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\n\n", st.Header.Render("Analyzing: "+orDefault(s.CatalogURL, "Unknown")))
	fmt.Fprintf(&b, "%s\n\n", st.Header.Render(fmt.Sprintf("Total courses in catalog: %d", s.TotalCourses)))

	rule := st.Banner.Render(strings.Repeat("=", ruleWidth))
	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "\n%s\n\n", st.Header.Render("🔍 Program Courses and prerequisite relationships..."))
	fmt.Fprintf(&b, "%s\n", rule)

	for _, school := range s.Schools {
		fmt.Fprintf(&b, "\n%s\n", st.School.Render("📚 School: "+orDefault(school.SchoolName, catalog.UnknownSchool)))
		fmt.Fprintf(&b, "    Overview: %s\n", orDefault(school.SchoolURL, "Unknown URL"))
		fmt.Fprintf(&b, "%s\n", st.Banner.Render(strings.Repeat("-", ruleWidth)))

		for _, program := range school.Programs {
			fmt.Fprintf(&b, "\n  %s\n", st.Program.Render("📄 Program: "+orDefault(program.ProgramName, "Unknown Program")))

			reqURL := orDefault(program.ProgramRequirementsURL, NotAvailable)
			switch {
			case len(program.RequirementCourses) > 0:
				fmt.Fprintf(&b, "\n      📋 Requirement Courses (%d): %s\n", len(program.RequirementCourses), reqURL)
				for _, ref := range program.RequirementCourses {
					fmt.Fprintf(&b, "        • %q: %q\n", ref.CourseID, ref.CourseTitle)
				}
			case reqURL != NotAvailable:
				fmt.Fprintf(&b, "\n      📋 Requirement Courses: None found (%s)\n", reqURL)
			default:
				fmt.Fprintf(&b, "\n      📋 Requirement Courses: Not available\n")
			}

			fmt.Fprintf(&b, "\n      Courses URL: %s\n", orDefault(program.CoursesURL, NotAvailable))
			fmt.Fprintf(&b, "\n      📚 Program Courses:\n\n")
			writeCourses(&b, program.ProgramCourses)
		}
	}

	return b.String()
}

// writeCourses writes the course bullet list shared by both reports,
// one blank-line-terminated block per course.
func writeCourses(b *strings.Builder, courses []Course) {
	for _, course := range courses {
		fmt.Fprintf(b, "        • %q, %q\n", course.CourseID, course.CourseTitle)
		if len(course.Prerequisites) > 0 {
			fmt.Fprintf(b, "          Prerequisites:\n")
			for _, ref := range course.Prerequisites {
				fmt.Fprintf(b, "            - %q: %q\n", ref.CourseID, ref.CourseTitle)
			}
		}
		fmt.Fprintf(b, "\n")
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
