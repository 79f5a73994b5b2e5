// SPDX-License-Identifier: MPL-2.0

// Package graph renders a catalog summary as a Graphviz document.
// Schools, programs, and courses become colored box nodes; requirement
// and prerequisite relationships become labeled edges.
package graph

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/emicklei/dot"

	"github.com/catwalk-dev/catwalk/internal/catalog"
	"github.com/catwalk-dev/catwalk/internal/dag"
	"github.com/catwalk-dev/catwalk/pkg/summary"
)

// Node fill colors, one per entity kind.
const (
	schoolFill  = "lightblue"
	programFill = "lightgreen"
	courseFill  = "lightyellow"
)

type (
	// Stats counts the distinct nodes and edges of a built document.
	Stats struct {
		Nodes int
		Edges int
	}

	builder struct {
		g     *dot.Graph
		nodes map[string]bool
		edges map[string]bool
	}
)

var (
	idUnsafeRe   = regexp.MustCompile(`[^a-zA-Z0-9_]`)
	idCollapseRe = regexp.MustCompile(`_+`)
)

// Build assembles the Graphviz document for a summary. Node identifiers
// are derived from school, program, and course names, so entities that
// appear in several places collapse into a single node, and repeated
// relationships into a single edge.
func Build(s *summary.Summary) (*dot.Graph, Stats) {
	b := &builder{
		g:     dot.NewGraph(dot.Directed),
		nodes: make(map[string]bool),
		edges: make(map[string]bool),
	}
	b.g.Attr("rankdir", "LR")

	for _, school := range s.Schools {
		schoolName := school.SchoolName
		if schoolName == "" {
			schoolName = catalog.UnknownSchool
		}
		schoolID := b.schoolNode(schoolName)

		for _, program := range school.Programs {
			programID := b.programNode(schoolName, program.ProgramName)
			b.memberEdge(schoolID, programID)

			for _, ref := range program.RequirementCourses {
				courseID := b.courseNode(ref.CourseID, ref.CourseTitle)
				b.requirementEdge(programID, courseID)
			}
			for _, course := range program.ProgramCourses {
				courseID := b.courseNode(course.CourseID, course.CourseTitle)
				for _, ref := range course.Prerequisites {
					prereqID := b.courseNode(ref.CourseID, ref.CourseTitle)
					b.prereqEdge(prereqID, courseID)
				}
			}
		}
	}

	return b.g, Stats{Nodes: len(b.nodes), Edges: len(b.edges)}
}

// Export writes the summary's Graphviz document to path.
func Export(s *summary.Summary, path string) (Stats, error) {
	g, stats := Build(s)
	if err := os.WriteFile(path, []byte(g.String()), 0o644); err != nil {
		return Stats{}, fmt.Errorf("writing graph file: %w", err)
	}
	return stats, nil
}

// PrerequisiteCycle reports the courses caught in a prerequisite cycle,
// or nil when every prerequisite chain is acyclic. Catalogs should
// never contain one; a non-nil result points at bad catalog data.
func PrerequisiteCycle(s *summary.Summary) []string {
	g := dag.New()
	for _, school := range s.Schools {
		for _, program := range school.Programs {
			for _, course := range program.ProgramCourses {
				for _, ref := range course.Prerequisites {
					g.AddEdge(ref.CourseID, course.CourseID)
				}
			}
		}
	}

	if _, err := g.Order(); err != nil {
		var cycleErr *dag.CycleError
		if errors.As(err, &cycleErr) {
			return cycleErr.Cycle
		}
	}
	return nil
}

func (b *builder) schoolNode(name string) string {
	id := sanitizeID("school_" + name)
	if !b.nodes[id] {
		b.nodes[id] = true
		n := b.g.Node(id)
		n.Attr("shape", "box")
		n.Attr("style", "filled")
		n.Attr("fillcolor", schoolFill)
		n.Attr("label", name)
	}
	return id
}

func (b *builder) programNode(schoolName, programName string) string {
	id := sanitizeID("program_" + schoolName + "_" + programName)
	if !b.nodes[id] {
		b.nodes[id] = true
		n := b.g.Node(id)
		n.Attr("shape", "box")
		n.Attr("style", "filled")
		n.Attr("fillcolor", programFill)
		n.Attr("label", programName)
	}
	return id
}

// courseNode creates a course node on first sight, labeled with the
// course identifier over its title. Later sightings reuse the node, so
// the title seen first wins.
func (b *builder) courseNode(courseID, title string) string {
	id := sanitizeID("course_" + courseID)
	if !b.nodes[id] {
		b.nodes[id] = true
		n := b.g.Node(id)
		n.Attr("shape", "box")
		n.Attr("style", "filled")
		n.Attr("fillcolor", courseFill)
		n.Attr("label", dot.Literal(fmt.Sprintf(`"%s\n%s"`, escapeLabel(courseID), escapeLabel(title))))
	}
	return id
}

func (b *builder) memberEdge(fromID, toID string) {
	key := fromID + "->" + toID
	if b.edges[key] {
		return
	}
	b.edges[key] = true
	b.g.Edge(b.g.Node(fromID), b.g.Node(toID))
}

func (b *builder) requirementEdge(programID, courseID string) {
	// Keyed apart from prerequisite edges so a course can be both a
	// requirement of a program and a prerequisite of its courses.
	key := programID + "->" + courseID + "->requires"
	if b.edges[key] {
		return
	}
	b.edges[key] = true
	e := b.g.Edge(b.g.Node(programID), b.g.Node(courseID))
	e.Attr("label", "Requirement")
	e.Attr("color", "red")
	e.Attr("style", "bold")
	e.Attr("fontsize", "10")
}

func (b *builder) prereqEdge(prereqID, courseID string) {
	key := prereqID + "->" + courseID
	if b.edges[key] {
		return
	}
	b.edges[key] = true
	e := b.g.Edge(b.g.Node(prereqID), b.g.Node(courseID))
	e.Attr("label", "Prereq")
	e.Attr("color", "orange")
	e.Attr("style", "dashed")
	e.Attr("fontsize", "10")
}

// sanitizeID reduces free text to a Graphviz-safe identifier: runs of
// anything outside [a-zA-Z0-9_] become single underscores, trimmed at
// both ends.
func sanitizeID(s string) string {
	s = idUnsafeRe.ReplaceAllString(s, "_")
	s = idCollapseRe.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// escapeLabel escapes backslashes and double quotes for use inside a
// quoted Graphviz label.
func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
