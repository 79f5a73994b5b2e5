// SPDX-License-Identifier: MPL-2.0

package report

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/catwalk-dev/catwalk/pkg/summary"
)

// dependencyIndex inverts a summary's relationships: which programs
// require each course, and which courses list it as a prerequisite.
type dependencyIndex struct {
	// titles maps each course seen in a requirement or program listing
	// to its title. Later sightings overwrite earlier ones.
	titles     map[string]string
	requiredBy map[string]map[string]bool
	prereqFor  map[string]map[string]bool
}

func buildDependencyIndex(s *summary.Summary) *dependencyIndex {
	idx := &dependencyIndex{
		titles:     make(map[string]string),
		requiredBy: make(map[string]map[string]bool),
		prereqFor:  make(map[string]map[string]bool),
	}

	for _, school := range s.Schools {
		for _, program := range school.Programs {
			programName := orDefault(program.ProgramName, "Unknown Program")

			for _, ref := range program.RequirementCourses {
				if ref.CourseID == "" {
					continue
				}
				idx.titles[ref.CourseID] = orDefault(ref.CourseTitle, "Unknown Title")
				addTo(idx.requiredBy, ref.CourseID, programName)
			}

			for _, course := range program.ProgramCourses {
				if course.CourseID == "" {
					continue
				}
				idx.titles[course.CourseID] = orDefault(course.CourseTitle, "Unknown Title")
				for _, ref := range course.Prerequisites {
					if ref.CourseID == "" {
						continue
					}
					addTo(idx.prereqFor, ref.CourseID, course.CourseID)
				}
			}
		}
	}

	return idx
}

func (idx *dependencyIndex) sortedIDs() []string {
	ids := maps.Keys(idx.titles)
	slices.Sort(ids)
	return ids
}

func (idx *dependencyIndex) titleOrUnknown(id string) string {
	if title, ok := idx.titles[id]; ok {
		return title
	}
	return "Unknown Title"
}

func addTo(m map[string]map[string]bool, key, member string) {
	if m[key] == nil {
		m[key] = make(map[string]bool)
	}
	m[key][member] = true
}

// WriteDependencies renders the course dependency analysis: one
// alphabetical section per course listing the programs that require it
// and the courses that build on it.
func WriteDependencies(s *summary.Summary, path string) error {
	idx := buildDependencyIndex(s)

	d := newDoc(depsSideMargin, depsEdgeMargin, depsSideMargin, depsEdgeMargin)
	d.para("Course Dependency Analysis", 18, "B", 0, 6)

	for _, id := range idx.sortedIDs() {
		d.spacer(12)
		d.para(fmt.Sprintf("%s: %s", id, idx.titles[id]), 14, "B", 0, 6)

		programs := maps.Keys(idx.requiredBy[id])
		if len(programs) > 0 {
			slices.Sort(programs)
			d.para("Required By Programs:", 12, "B", 18, 2)
			for _, name := range programs {
				d.para("• "+name, 10, "", 36, 0)
			}
		}

		dependents := maps.Keys(idx.prereqFor[id])
		if len(dependents) > 0 {
			slices.Sort(dependents)
			d.para("Prerequisite For:", 12, "B", 18, 2)
			for _, dep := range dependents {
				d.para(fmt.Sprintf("• %s: %s", dep, idx.titleOrUnknown(dep)), 10, "", 36, 0)
			}
		}

		if len(programs) == 0 && len(dependents) == 0 {
			d.para("No dependencies found in other programs or courses.", 10, "I", 36, 0)
		}
	}

	return d.save(path)
}
