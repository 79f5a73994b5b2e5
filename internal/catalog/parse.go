// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// UnknownSchool is the fallback name when a school page yields no heading.
const UnknownSchool = "Unknown School"

var (
	// prereqLabelRe matches the label span that introduces prerequisite text
	// on course pages.
	prereqLabelRe = regexp.MustCompile(`(?i)Pre-requisites?`)

	// prereqSplitRe splits an enclosing paragraph on the prerequisite label
	// so the text after it can be harvested.
	prereqSplitRe = regexp.MustCompile(`(?i)Pre-requisites?:?\s*`)

	// parentheticalRe matches an innermost parenthesized phrase.
	parentheticalRe = regexp.MustCompile(`\([^()]*\)`)

	// whitespaceRe collapses runs of whitespace.
	whitespaceRe = regexp.MustCompile(`\s+`)

	// undergradSlugRe matches top-level undergraduate school paths,
	// e.g. /2025-2026/undergraduate/school-of-arts/.
	undergradSlugRe = regexp.MustCompile(`/(?:undergraduate)/([^/]+)/?$`)

	// allLevelsSlugRe additionally admits graduate school paths.
	allLevelsSlugRe = regexp.MustCompile(`/(?:undergraduate|graduate)/([^/]+)/?$`)
)

type (
	// Link pairs an anchor's text with its absolute, normalized URL.
	Link struct {
		Text string
		URL  string
	}

	// CourseEntry is one course heading parsed from a courses page.
	// Prerequisites holds the raw text after the label, empty when the
	// course lists none.
	CourseEntry struct {
		ID            string
		Title         string
		Prerequisites string
	}
)

// SidebarSchoolLinks returns the set of school overview URLs linked from the
// page's sidebar: anchors inside div#sidebar whose text mentions "school"
// (case-insensitive). Keys are normalized absolute URLs. Pages without a
// sidebar yield an empty set.
func SidebarSchoolLinks(pageHTML, pageURL string) (map[string]bool, error) {
	doc, base, err := parsePage(pageHTML, pageURL)
	if err != nil {
		return nil, err
	}

	links := make(map[string]bool)
	doc.Find("div#sidebar").First().Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		text := strings.TrimSpace(a.Text())
		if !strings.Contains(strings.ToLower(text), "school") {
			return
		}
		if abs, ok := resolveHref(base, a); ok {
			links[NormalizeURL(abs)] = true
		}
	})
	return links, nil
}

// SidebarNavLinks returns the program navigation entries from a school
// page's sidebar: the direct li children of the first ul inside div#sidebar,
// each reduced to its first anchor. Pages without a sidebar or list yield nil.
func SidebarNavLinks(pageHTML, pageURL string) ([]Link, error) {
	doc, base, err := parsePage(pageHTML, pageURL)
	if err != nil {
		return nil, err
	}

	var links []Link
	ul := doc.Find("div#sidebar").First().Find("ul").First()
	ul.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		a := li.Find("a[href]").First()
		if a.Length() == 0 {
			return
		}
		abs, ok := resolveHref(base, a)
		if !ok {
			return
		}
		links = append(links, Link{
			Text: strings.TrimSpace(a.Text()),
			URL:  NormalizeURL(abs),
		})
	})
	return links, nil
}

// FindLink returns the absolute URL of the first anchor whose text contains
// the given substring, case-insensitively. The second return is false when
// no anchor matches.
func FindLink(pageHTML, pageURL, textSubstring string) (string, bool, error) {
	doc, base, err := parsePage(pageHTML, pageURL)
	if err != nil {
		return "", false, err
	}

	needle := strings.ToLower(textSubstring)
	var found string
	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		text := strings.ToLower(strings.TrimSpace(a.Text()))
		if !strings.Contains(text, needle) {
			return true
		}
		if abs, ok := resolveHref(base, a); ok {
			found = abs
			return false
		}
		return true
	})
	return found, found != "", nil
}

// CourseEntries extracts every course heading (h3.maryann_course_title) from
// a courses page. Headings are stripped of parenthetical credit annotations
// and split into ID and title on the first space. Prerequisite text is
// harvested from a labeled span inside the enclosing li: the text node right
// after the label when present, otherwise the remainder of the enclosing
// paragraph up to the first line break.
func CourseEntries(pageHTML string) ([]CourseEntry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, fmt.Errorf("parsing courses page: %w", err)
	}

	var entries []CourseEntry
	doc.Find("h3.maryann_course_title").Each(func(_ int, h3 *goquery.Selection) {
		heading := strings.TrimSpace(h3.Text())
		if heading == "" {
			return
		}
		cleaned := removeParenthetical(heading)
		if cleaned == "" {
			return
		}

		entry := CourseEntry{ID: cleaned}
		if id, title, ok := strings.Cut(cleaned, " "); ok {
			entry.ID = strings.TrimSpace(id)
			entry.Title = strings.TrimSpace(title)
		}

		if li := h3.Closest("li"); li.Length() > 0 {
			entry.Prerequisites = prerequisiteText(li)
		}

		entries = append(entries, entry)
	})
	return entries, nil
}

// SchoolName extracts the school's display name from its overview page:
// the first h1, else the page title with any "| Site Name" suffix removed,
// else UnknownSchool.
func SchoolName(pageHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return UnknownSchool
	}

	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return UnknownSchool
	}
	if name, _, ok := strings.Cut(title, "|"); ok {
		return strings.TrimSpace(name)
	}
	return title
}

// DiscoverSchoolURLs scans every anchor on a catalog landing page for
// top-level school overview paths beneath the page's year root, e.g.
// /2025-2026/undergraduate/school-of-arts/. Graduate paths are included only
// when includeGraduate is set. Returns a sorted set of normalized URLs.
func DiscoverSchoolURLs(pageHTML, pageURL string, includeGraduate bool) ([]string, error) {
	doc, base, err := parsePage(pageHTML, pageURL)
	if err != nil {
		return nil, err
	}

	yearRoot, err := YearRoot(pageURL)
	if err != nil {
		return nil, err
	}

	slugRe := undergradSlugRe
	if includeGraduate {
		slugRe = allLevelsSlugRe
	}

	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		abs, ok := resolveHref(base, a)
		if !ok || !strings.HasPrefix(abs, yearRoot) {
			return
		}
		parsed, parseErr := url.Parse(abs)
		if parseErr != nil || !slugRe.MatchString(parsed.Path) {
			return
		}
		seen[NormalizeURL(abs)] = true
	})

	candidates := make([]string, 0, len(seen))
	for u := range seen {
		candidates = append(candidates, u)
	}
	sort.Strings(candidates)
	return candidates, nil
}

// PageText returns the page's flattened text content, used when scanning
// program requirement pages for course-ID mentions.
func PageText(pageHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return "", fmt.Errorf("parsing page: %w", err)
	}
	return doc.Text(), nil
}

// prerequisiteText finds the prerequisite label span inside a course li and
// returns the raw prerequisite text, empty when the course lists none.
func prerequisiteText(li *goquery.Selection) string {
	var span *goquery.Selection
	li.Find("span").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if prereqLabelRe.MatchString(s.Text()) {
			span = s
			return false
		}
		return true
	})
	if span == nil {
		return ""
	}

	// Common shape: the text follows the label span as a sibling text node.
	if node := span.Get(0); node.NextSibling != nil && node.NextSibling.Type == html.TextNode {
		return strings.TrimSpace(node.NextSibling.Data)
	}

	// Fallback shape: the label and text share the span; split the
	// enclosing text on the label and keep the first line after it.
	parentText := span.Parent().Text()
	if !strings.Contains(parentText, "Pre-requisite") {
		return ""
	}
	parts := prereqSplitRe.Split(parentText, 2)
	if len(parts) < 2 {
		return ""
	}
	text, _, _ := strings.Cut(strings.TrimSpace(parts[1]), "\n")
	return strings.TrimSpace(text)
}

// removeParenthetical strips parenthesized phrases (innermost first, so
// nesting unwinds) and collapses the remaining whitespace.
func removeParenthetical(text string) string {
	for strings.Contains(text, "(") {
		next := parentheticalRe.ReplaceAllString(text, "")
		if next == text {
			break
		}
		text = next
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// parsePage parses HTML and the page URL it was fetched from, so relative
// hrefs can be absolutized against the right base.
func parsePage(pageHTML, pageURL string) (*goquery.Document, *url.URL, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, nil, fmt.Errorf("parsing page: %w", err)
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing page URL: %w", err)
	}
	return doc, base, nil
}

// resolveHref absolutizes an anchor's href against the page base URL.
func resolveHref(base *url.URL, a *goquery.Selection) (string, bool) {
	href, ok := a.Attr("href")
	if !ok {
		return "", false
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", false
	}
	return base.ResolveReference(ref).String(), true
}
