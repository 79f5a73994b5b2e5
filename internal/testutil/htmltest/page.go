// SPDX-License-Identifier: MPL-2.0

// Package htmltest provides builders for catalog HTML fixtures used in
// parser and walker tests. This package is separate from testutil so that
// fixture markup stays in one place instead of being repeated as string
// literals across test files.
//
// Usage:
//
//	import "github.com/catwalk-dev/catwalk/internal/testutil/htmltest"
//
//	page := htmltest.Page(htmltest.WithCourse("MATH-101", "Calculus I"))
package htmltest

import (
	"fmt"
	"strings"
)

type (
	// PageOption configures a test catalog page.
	// Apply options to customize beyond the minimal defaults.
	PageOption func(*page)

	// CourseOption configures a single course entry on a page.
	CourseOption func(*course)

	page struct {
		title        string
		sidebarLinks []link
		bodyLinks    []link
		courses      []course
		heading      string
		rawBody      []string
	}

	link struct {
		text string
		href string
	}

	course struct {
		title         string
		prereqSibling string
		prereqInline  string
	}
)

// Page renders a complete catalog HTML document with the given options.
// By default, produces a page with:
//   - Title "Catalog"
//   - No sidebar (add one with WithSidebarLink)
//   - No courses (add them with WithCourse)
//
// Usage:
//
//	html := htmltest.Page()
//	html := htmltest.Page(htmltest.WithSidebarLink("School of Arts", "/2025-2026/undergraduate/arts/"))
//	html := htmltest.Page(
//	    htmltest.WithCourse("MATH-101 Calculus I (4 credits)",
//	        htmltest.PrereqText("MATH-100 or placement")),
//	)
func Page(opts ...PageOption) string {
	p := &page{title: "Catalog"}
	for _, opt := range opts {
		opt(p)
	}
	return p.render()
}

// --- Page options ---

// WithTitle sets the document <title>.
func WithTitle(title string) PageOption {
	return func(p *page) {
		p.title = title
	}
}

// WithHeading sets an <h1> heading at the top of the body.
func WithHeading(text string) PageOption {
	return func(p *page) {
		p.heading = text
	}
}

// WithSidebarLink adds an anchor to the sidebar's navigation list.
// The sidebar is only emitted when at least one sidebar link exists.
func WithSidebarLink(text, href string) PageOption {
	return func(p *page) {
		p.sidebarLinks = append(p.sidebarLinks, link{text: text, href: href})
	}
}

// WithBodyLink adds an anchor to the main body, outside the sidebar.
func WithBodyLink(text, href string) PageOption {
	return func(p *page) {
		p.bodyLinks = append(p.bodyLinks, link{text: text, href: href})
	}
}

// WithCourse adds a course entry. The title is rendered verbatim inside
// the course heading, so parenthetical credit annotations can be included.
func WithCourse(title string, opts ...CourseOption) PageOption {
	return func(p *page) {
		c := course{title: title}
		for _, opt := range opts {
			opt(&c)
		}
		p.courses = append(p.courses, c)
	}
}

// WithRawBody appends raw HTML to the body. Use for structures the other
// options do not cover, like nested lists or malformed markup.
func WithRawBody(html string) PageOption {
	return func(p *page) {
		p.rawBody = append(p.rawBody, html)
	}
}

// --- Course options ---

// PrereqText places the prerequisite text as a sibling text node right
// after the label span, the common shape on real catalog pages:
//
//	<span>Pre-requisite:</span> MATH-100
func PrereqText(text string) CourseOption {
	return func(c *course) {
		c.prereqSibling = text
	}
}

// PrereqInline places the prerequisite text inside the label span itself,
// the fallback shape:
//
//	<span>Pre-requisites: MATH-100 and MATH-090</span>
func PrereqInline(text string) CourseOption {
	return func(c *course) {
		c.prereqInline = text
	}
}

func (p *page) render() string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", p.title)
	b.WriteString("</head>\n<body>\n")

	if len(p.sidebarLinks) > 0 {
		b.WriteString("<div id=\"sidebar\">\n<ul>\n")
		for _, l := range p.sidebarLinks {
			fmt.Fprintf(&b, "<li><a href=%q>%s</a></li>\n", l.href, l.text)
		}
		b.WriteString("</ul>\n</div>\n")
	}

	b.WriteString("<div id=\"main\">\n")
	if p.heading != "" {
		fmt.Fprintf(&b, "<h1>%s</h1>\n", p.heading)
	}
	for _, l := range p.bodyLinks {
		fmt.Fprintf(&b, "<p><a href=%q>%s</a></p>\n", l.href, l.text)
	}
	if len(p.courses) > 0 {
		b.WriteString("<ul class=\"courses\">\n")
		for _, c := range p.courses {
			b.WriteString("<li>\n")
			fmt.Fprintf(&b, "<h3 class=\"maryann_course_title\">%s</h3>\n", c.title)
			switch {
			case c.prereqSibling != "":
				fmt.Fprintf(&b, "<p><span>Pre-requisite:</span> %s</p>\n", c.prereqSibling)
			case c.prereqInline != "":
				fmt.Fprintf(&b, "<p><span>Pre-requisites: %s</span></p>\n", c.prereqInline)
			}
			b.WriteString("</li>\n")
		}
		b.WriteString("</ul>\n")
	}
	for _, raw := range p.rawBody {
		b.WriteString(raw)
		b.WriteString("\n")
	}
	b.WriteString("</div>\n</body>\n</html>\n")
	return b.String()
}
