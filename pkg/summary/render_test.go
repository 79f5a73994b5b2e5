// SPDX-License-Identifier: MPL-2.0

package summary

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderAnalysis(t *testing.T) {
	t.Parallel()

	got := RenderAnalysis(sampleSummary(), PlainStyles())
	want := `================================================================================

🔍 PHASE 2: Program Courses and prerequisite relationships...

================================================================================

📚 School: https://catalog.sjf.edu/2025-2026/arts-sciences/
--------------------------------------------------------------------------------

  📄 Program: Biology
      Program Requirements URL: https://catalog.sjf.edu/2025-2026/biology/requirements

      📋 Requirement Courses (1):
        • "BIOL-101": "Introduction to Biology"

      Courses URL: https://catalog.sjf.edu/2025-2026/biology/courses

      📚 Program Courses:

        • "BIOL-101", "Introduction to Biology"

        • "BIOL-201", "Genetics"
          Prerequisites:
            - "BIOL-101": "Introduction to Biology"

  📄 Program: Chemistry
      Program Requirements URL: https://catalog.sjf.edu/2025-2026/chemistry/requirements

      Courses URL: https://catalog.sjf.edu/2025-2026/chemistry/courses

      📚 Program Courses:

        • "CHEM-101", "General Chemistry"

  📄 Program: Art History
      Program Requirements URL: Not available

      Courses URL: Not available

      📚 Program Courses:

`
	if got != want {
		t.Errorf("RenderAnalysis() mismatch\ngot:  %q\nwant: %q", got, want)
	}
}

func TestRenderCatalog(t *testing.T) {
	t.Parallel()

	got := RenderCatalog(sampleSummary(), PlainStyles())
	want := `
Analyzing: https://catalog.sjf.edu/2025-2026/

Total courses in catalog: 3

================================================================================

🔍 Program Courses and prerequisite relationships...

================================================================================

📚 School: School of Arts and Sciences
    Overview: https://catalog.sjf.edu/2025-2026/arts-sciences/
--------------------------------------------------------------------------------

  📄 Program: Biology

      📋 Requirement Courses (1): https://catalog.sjf.edu/2025-2026/biology/requirements
        • "BIOL-101": "Introduction to Biology"

      Courses URL: https://catalog.sjf.edu/2025-2026/biology/courses

      📚 Program Courses:

        • "BIOL-101", "Introduction to Biology"

        • "BIOL-201", "Genetics"
          Prerequisites:
            - "BIOL-101": "Introduction to Biology"

  📄 Program: Chemistry

      📋 Requirement Courses: None found (https://catalog.sjf.edu/2025-2026/chemistry/requirements)

      Courses URL: https://catalog.sjf.edu/2025-2026/chemistry/courses

      📚 Program Courses:

        • "CHEM-101", "General Chemistry"

  📄 Program: Art History

      📋 Requirement Courses: Not available

      Courses URL: Not available

      📚 Program Courses:

`
	if got != want {
		t.Errorf("RenderCatalog() mismatch\ngot:  %q\nwant: %q", got, want)
	}
}

func TestRenderCatalog_Fallbacks(t *testing.T) {
	t.Parallel()

	s := &Summary{
		Schools: []School{
			{Programs: []Program{{ProgramName: "Mystery"}}},
		},
	}

	got := RenderCatalog(s, PlainStyles())
	for _, want := range []string{
		"Analyzing: Unknown\n",
		"📚 School: Unknown School\n",
		"    Overview: Unknown URL\n",
		"📋 Requirement Courses: Not available\n",
		"Courses URL: Not available\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderCatalog() missing %q:\n%s", want, got)
		}
	}
}

func TestRenderCatalog_AppliesStyles(t *testing.T) {
	t.Parallel()

	st := PlainStyles()
	st.School = lipgloss.NewStyle().Transform(strings.ToUpper)

	got := RenderCatalog(sampleSummary(), st)
	if !strings.Contains(got, "📚 SCHOOL: SCHOOL OF ARTS AND SCIENCES") {
		t.Errorf("RenderCatalog() did not apply school style:\n%s", got)
	}
}
