// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidCourseID is the sentinel error wrapped by InvalidCourseIDError.
var ErrInvalidCourseID = errors.New("invalid course ID")

// CourseIDPattern matches course identifiers embedded in free text:
// a 3-4 letter department code, an optional dash or space, a 3-digit
// number, and an optional trailing letter (e.g. "CSCI-140", "BIO 204L").
var CourseIDPattern = regexp.MustCompile(`\b([A-Z]{3,4}[-\s]?\d{3}[A-Z]?)\b`)

// courseIDExact anchors CourseIDPattern for whole-value validation.
var courseIDExact = regexp.MustCompile(`^[A-Z]{3,4}[-\s]?\d{3}[A-Z]?$`)

type (
	// CourseID identifies a single course as published in the catalog,
	// e.g. "CSCI-140". Catalog pages are inconsistent about separators
	// ("CSCI-140", "CSCI 140", "CSCI140" all refer to the same course),
	// so comparisons must go through Canonical, never ==.
	CourseID string

	// InvalidCourseIDError is returned when a CourseID value does not
	// match the catalog's course identifier shape.
	InvalidCourseIDError struct {
		Value CourseID
	}
)

// String returns the string representation of the CourseID.
func (c CourseID) String() string { return string(c) }

// Canonical returns the separator-free uppercase form used for matching:
// "csci 140" and "CSCI-140" both canonicalize to "CSCI140".
func (c CourseID) Canonical() string {
	s := strings.ToUpper(string(c))
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, "-", "")
}

// Equivalent reports whether two course IDs refer to the same course,
// ignoring separator and case differences.
func (c CourseID) Equivalent(other CourseID) bool {
	return c.Canonical() == other.Canonical()
}

// Validate returns an error if the CourseID does not match the catalog's
// course identifier shape (3-4 uppercase letters, optional separator,
// 3 digits, optional trailing letter).
func (c CourseID) Validate() error {
	if !courseIDExact.MatchString(string(c)) {
		return &InvalidCourseIDError{Value: c}
	}
	return nil
}

// FindCourseIDs extracts all course identifiers embedded in free text,
// in order of appearance. The text is uppercased before matching, so
// lowercase references are found too. Duplicates are preserved.
func FindCourseIDs(text string) []CourseID {
	matches := CourseIDPattern.FindAllString(strings.ToUpper(text), -1)
	if len(matches) == 0 {
		return nil
	}
	ids := make([]CourseID, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, CourseID(m))
	}
	return ids
}

// Error implements the error interface for InvalidCourseIDError.
func (e *InvalidCourseIDError) Error() string {
	return fmt.Sprintf("invalid course ID %q: must be 3-4 letters, an optional separator, 3 digits, and an optional trailing letter", e.Value)
}

// Unwrap returns ErrInvalidCourseID for errors.Is() compatibility.
func (e *InvalidCourseIDError) Unwrap() error { return ErrInvalidCourseID }
