// SPDX-License-Identifier: MPL-2.0

package summary

import (
	"context"
	"os"

	"github.com/charmbracelet/log"

	"github.com/catwalk-dev/catwalk/internal/catalog"
	"github.com/catwalk-dev/catwalk/internal/dictionary"
)

type (
	// Builder assembles a Summary from the flat course records a
	// catalog walk produced. It fetches each program's requirements
	// page once to resolve the courses the requirements reference,
	// and resolves prerequisite text through the course dictionary.
	Builder struct {
		client *catalog.Client
		dict   *dictionary.Dictionary
		logger *log.Logger
	}

	// BuilderOption configures a Builder.
	BuilderOption func(*Builder)
)

// WithBuilderLogger routes build warnings to logger.
func WithBuilderLogger(logger *log.Logger) BuilderOption {
	return func(b *Builder) {
		b.logger = logger
	}
}

// NewBuilder returns a Builder that fetches requirements pages with
// client and resolves course references through dict.
func NewBuilder(client *catalog.Client, dict *dictionary.Dictionary, opts ...BuilderOption) *Builder {
	b := &Builder{
		client: client,
		dict:   dict,
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "summary"}),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build groups walk records into schools and programs, preserving the
// order in which the walk discovered them. Each program's requirements
// page is fetched when the program first appears; a page that cannot
// be fetched is logged and leaves the program with no requirement
// courses rather than failing the build.
func (b *Builder) Build(ctx context.Context, walk *catalog.WalkResult) (*Summary, error) {
	s := &Summary{
		CatalogURL:   walk.CatalogURL,
		TotalCourses: len(walk.Courses),
		Schools:      []School{},
	}

	schoolIndex := make(map[string]int)
	programIndex := make(map[string]map[string]int)

	for _, rec := range walk.Courses {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		si, ok := schoolIndex[rec.SchoolURL]
		if !ok {
			si = len(s.Schools)
			schoolIndex[rec.SchoolURL] = si
			programIndex[rec.SchoolURL] = make(map[string]int)
			s.Schools = append(s.Schools, School{
				SchoolName: walk.SchoolName(rec.SchoolURL),
				SchoolURL:  rec.SchoolURL,
				Programs:   []Program{},
			})
		}
		school := &s.Schools[si]

		pi, ok := programIndex[rec.SchoolURL][rec.ProgramName]
		if !ok {
			pi = len(school.Programs)
			programIndex[rec.SchoolURL][rec.ProgramName] = pi
			school.Programs = append(school.Programs, Program{
				ProgramName:            rec.ProgramName,
				ProgramRequirementsURL: rec.RequirementsURL,
				CoursesURL:             rec.CoursesURL,
				RequirementCourses:     b.requirementCourses(ctx, rec.RequirementsURL),
				ProgramCourses:         []Course{},
			})
		}
		program := &school.Programs[pi]

		program.ProgramCourses = append(program.ProgramCourses, Course{
			CourseID:      rec.ID,
			CourseTitle:   rec.Title,
			Prerequisites: b.prerequisiteRefs(rec.Prerequisites),
		})
	}

	return s, nil
}

// requirementCourses fetches a requirements page and resolves every
// course identifier its text mentions, deduplicated in first-mention
// order.
func (b *Builder) requirementCourses(ctx context.Context, requirementsURL string) []CourseRef {
	refs := []CourseRef{}
	if requirementsURL == "" {
		return refs
	}

	pageHTML, err := b.client.Get(ctx, requirementsURL)
	if err != nil {
		b.logger.Warn("skipping requirements page", "url", requirementsURL, "error", err)
		return refs
	}
	text, err := catalog.PageText(pageHTML)
	if err != nil {
		b.logger.Warn("skipping requirements page", "url", requirementsURL, "error", err)
		return refs
	}

	for _, id := range b.dict.ResolveUnique(text) {
		refs = append(refs, CourseRef{CourseID: id.String(), CourseTitle: b.dict.TitleOrUnknown(id)})
	}
	return refs
}

// prerequisiteRefs resolves the raw prerequisite text of one course.
// Unlike requirement resolution, repeated mentions are kept so the
// reference list mirrors the prerequisite text.
func (b *Builder) prerequisiteRefs(prereqText string) []CourseRef {
	refs := []CourseRef{}
	if prereqText == "" {
		return refs
	}
	for _, id := range b.dict.Resolve(prereqText) {
		refs = append(refs, CourseRef{CourseID: id.String(), CourseTitle: b.dict.TitleOrUnknown(id)})
	}
	return refs
}
