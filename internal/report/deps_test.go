// SPDX-License-Identifier: MPL-2.0

package report

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/catwalk-dev/catwalk/pkg/summary"
)

func TestBuildDependencyIndex(t *testing.T) {
	t.Parallel()

	idx := buildDependencyIndex(reportFixture())

	wantIDs := []string{"BIOL-101", "BIOL-201", "CHEM-101"}
	if got := idx.sortedIDs(); !reflect.DeepEqual(got, wantIDs) {
		t.Errorf("sortedIDs() = %v, want %v", got, wantIDs)
	}

	if got := idx.requiredBy["BIOL-101"]; !got["Biology"] || len(got) != 1 {
		t.Errorf("requiredBy[BIOL-101] = %v, want {Biology}", got)
	}
	if got := idx.prereqFor["BIOL-101"]; !got["BIOL-201"] || len(got) != 1 {
		t.Errorf("prereqFor[BIOL-101] = %v, want {BIOL-201}", got)
	}
	if got := idx.prereqFor["CHEM-101"]; len(got) != 0 {
		t.Errorf("prereqFor[CHEM-101] = %v, want empty", got)
	}
	if got := idx.titleOrUnknown("BIOL-201"); got != "Genetics" {
		t.Errorf("titleOrUnknown(BIOL-201) = %q, want Genetics", got)
	}
	if got := idx.titleOrUnknown("MATH-999"); got != "Unknown Title" {
		t.Errorf("titleOrUnknown(MATH-999) = %q, want Unknown Title", got)
	}
}

func TestBuildDependencyIndex_LaterTitleWins(t *testing.T) {
	t.Parallel()

	s := &summary.Summary{
		Schools: []summary.School{
			{
				SchoolName: "School of Arts and Sciences",
				Programs: []summary.Program{
					{
						ProgramName: "Biology",
						RequirementCourses: []summary.CourseRef{
							{CourseID: "BIOL-101", CourseTitle: "Biology (requirement listing)"},
						},
						ProgramCourses: []summary.Course{
							{CourseID: "BIOL-101", CourseTitle: "Introduction to Biology", Prerequisites: []summary.CourseRef{}},
						},
					},
				},
			},
		},
	}

	idx := buildDependencyIndex(s)
	if got := idx.titles["BIOL-101"]; got != "Introduction to Biology" {
		t.Errorf("titles[BIOL-101] = %q, want the course listing title", got)
	}
}

func TestBuildDependencyIndex_SkipsEmptyIDs(t *testing.T) {
	t.Parallel()

	s := &summary.Summary{
		Schools: []summary.School{
			{
				Programs: []summary.Program{
					{
						ProgramName: "Biology",
						RequirementCourses: []summary.CourseRef{
							{CourseID: "", CourseTitle: "Orphan"},
						},
						ProgramCourses: []summary.Course{
							{
								CourseID:    "BIOL-201",
								CourseTitle: "Genetics",
								Prerequisites: []summary.CourseRef{
									{CourseID: "", CourseTitle: "Orphan"},
								},
							},
						},
					},
				},
			},
		},
	}

	idx := buildDependencyIndex(s)
	if got := idx.sortedIDs(); !reflect.DeepEqual(got, []string{"BIOL-201"}) {
		t.Errorf("sortedIDs() = %v, want [BIOL-201]", got)
	}
	if len(idx.prereqFor) != 0 {
		t.Errorf("prereqFor = %v, want empty", idx.prereqFor)
	}
}

func TestWriteDependencies(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog_summary_dependencies.pdf")
	if err := WriteDependencies(reportFixture(), path); err != nil {
		t.Fatalf("WriteDependencies() error = %v", err)
	}
	assertPDFFile(t, path)
}

func TestWriteDependencies_BadPath(t *testing.T) {
	t.Parallel()

	err := WriteDependencies(reportFixture(), filepath.Join(t.TempDir(), "missing", "out.pdf"))
	if err == nil {
		t.Fatal("WriteDependencies() error = nil, want write error")
	}
}
