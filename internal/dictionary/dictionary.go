// SPDX-License-Identifier: MPL-2.0

// Package dictionary maintains the course dictionary built during a catalog
// walk: every course ID spelling seen in the catalog mapped to its title.
// Free-text course mentions (prerequisite notes, requirement pages) are
// resolved back to catalog spellings through their canonical form, since
// the catalog itself is inconsistent about separators.
package dictionary

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"sort"

	"github.com/catwalk-dev/catwalk/pkg/types"
)

// UnknownTitle is the placeholder title for course IDs that resolve but
// have no dictionary entry.
const UnknownTitle = "Unknown"

// Dictionary maps course ID spellings to course titles. The zero value is
// not usable; construct with New or Load.
type Dictionary struct {
	entries map[types.CourseID]string
	canon   map[string]types.CourseID
}

// New returns an empty dictionary.
func New() *Dictionary {
	return &Dictionary{
		entries: make(map[types.CourseID]string),
		canon:   make(map[string]types.CourseID),
	}
}

// Set records a course title under its catalog spelling. Setting the same
// spelling again replaces the title. When two spellings share a canonical
// form, free-text resolution keeps returning the first spelling seen.
func (d *Dictionary) Set(id types.CourseID, title string) {
	d.entries[id] = title
	if _, ok := d.canon[id.Canonical()]; !ok {
		d.canon[id.Canonical()] = id
	}
}

// Title returns the title recorded for an exact spelling.
func (d *Dictionary) Title(id types.CourseID) (string, bool) {
	title, ok := d.entries[id]
	return title, ok
}

// TitleOrUnknown returns the title recorded for an exact spelling, or
// UnknownTitle when the spelling has no entry.
func (d *Dictionary) TitleOrUnknown(id types.CourseID) string {
	if title, ok := d.entries[id]; ok {
		return title
	}
	return UnknownTitle
}

// Len returns the number of distinct spellings recorded.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// IDs returns all recorded spellings in sorted order.
func (d *Dictionary) IDs() []types.CourseID {
	ids := make([]types.CourseID, 0, len(d.entries))
	for id := range d.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Resolve scans free text for course mentions and returns the catalog
// spellings they resolve to, in order of appearance. Mentions without a
// dictionary entry are dropped; repeated mentions repeat in the result.
func (d *Dictionary) Resolve(text string) []types.CourseID {
	var resolved []types.CourseID
	for _, mention := range types.FindCourseIDs(text) {
		if id, ok := d.canon[mention.Canonical()]; ok {
			resolved = append(resolved, id)
		}
	}
	return resolved
}

// ResolveUnique is Resolve with each spelling reported once, keeping the
// position of its first mention. Used for requirement pages, where the
// same course is often cited several times.
func (d *Dictionary) ResolveUnique(text string) []types.CourseID {
	var resolved []types.CourseID
	seen := make(map[types.CourseID]bool)
	for _, mention := range types.FindCourseIDs(text) {
		id, ok := d.canon[mention.Canonical()]
		if !ok || seen[id] {
			continue
		}
		resolved = append(resolved, id)
		seen[id] = true
	}
	return resolved
}

// Save writes the dictionary to path in gob encoding.
func (d *Dictionary) Save(path string) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(d.entries); err != nil {
		return fmt.Errorf("encoding course dictionary: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing course dictionary: %w", err)
	}
	return nil
}

// Load reads a dictionary previously written by Save. A missing file is
// reported as fs.ErrNotExist so callers can distinguish "not built yet"
// from a corrupt file. Canonical-form resolution is rebuilt over sorted
// spellings, so resolution stays deterministic across loads.
func Load(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading course dictionary: %w", err)
	}

	entries := make(map[types.CourseID]string)
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding course dictionary %s: %w", path, err)
	}

	d := &Dictionary{
		entries: entries,
		canon:   make(map[string]types.CourseID),
	}
	for _, id := range d.IDs() {
		if _, ok := d.canon[id.Canonical()]; !ok {
			d.canon[id.Canonical()] = id
		}
	}
	return d, nil
}
