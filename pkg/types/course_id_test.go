// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestCourseIDValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     CourseID
		wantValid bool
	}{
		{name: "dash separator", value: "CSCI-140", wantValid: true},
		{name: "space separator", value: "BIO 204", wantValid: true},
		{name: "no separator", value: "MATH201", wantValid: true},
		{name: "trailing letter", value: "CHEM-101L", wantValid: true},
		{name: "four letter department", value: "CSCI-140", wantValid: true},
		{name: "three letter department", value: "BIO-204", wantValid: true},
		{name: "empty is invalid", value: "", wantValid: false},
		{name: "lowercase is invalid", value: "csci-140", wantValid: false},
		{name: "two letter department is invalid", value: "CS-140", wantValid: false},
		{name: "five letter department is invalid", value: "ABCDE-140", wantValid: false},
		{name: "two digit number is invalid", value: "CSCI-14", wantValid: false},
		{name: "four digit number is invalid", value: "CSCI-1400", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.value.Validate()
			if (err == nil) != tt.wantValid {
				t.Errorf("CourseID(%q).Validate() error = %v, wantValid %v", tt.value, err, tt.wantValid)
			}
			if !tt.wantValid && !errors.Is(err, ErrInvalidCourseID) {
				t.Errorf("error does not wrap ErrInvalidCourseID: %v", err)
			}
		})
	}
}

func TestCourseIDCanonical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value CourseID
		want  string
	}{
		{"CSCI-140", "CSCI140"},
		{"CSCI 140", "CSCI140"},
		{"csci-140", "CSCI140"},
		{"MATH201", "MATH201"},
		{"CHEM-101L", "CHEM101L"},
	}

	for _, tt := range tests {
		if got := tt.value.Canonical(); got != tt.want {
			t.Errorf("CourseID(%q).Canonical() = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestCourseIDEquivalent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b CourseID
		want bool
	}{
		{name: "dash vs space", a: "CSCI-140", b: "CSCI 140", want: true},
		{name: "dash vs bare", a: "CSCI-140", b: "CSCI140", want: true},
		{name: "case insensitive", a: "csci-140", b: "CSCI-140", want: true},
		{name: "different numbers", a: "CSCI-140", b: "CSCI-141", want: false},
		{name: "different departments", a: "CSCI-140", b: "MATH-140", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.a.Equivalent(tt.b); got != tt.want {
				t.Errorf("CourseID(%q).Equivalent(%q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFindCourseIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []CourseID
	}{
		{
			name: "single id",
			text: "Pre-requisites: CSCI-140",
			want: []CourseID{"CSCI-140"},
		},
		{
			name: "multiple ids in prose",
			text: "CSCI-140 and MATH 201 or permission of instructor",
			want: []CourseID{"CSCI-140", "MATH 201"},
		},
		{
			name: "lowercase text is uppercased",
			text: "csci-140 recommended",
			want: []CourseID{"CSCI-140"},
		},
		{
			name: "trailing letter",
			text: "Take CHEM-101L first",
			want: []CourseID{"CHEM-101L"},
		},
		{
			name: "duplicates preserved",
			text: "CSCI-140, then CSCI-140 again",
			want: []CourseID{"CSCI-140", "CSCI-140"},
		},
		{
			name: "no ids",
			text: "Permission of instructor required.",
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FindCourseIDs(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("FindCourseIDs(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("FindCourseIDs(%q)[%d] = %q, want %q", tt.text, i, got[i], tt.want[i])
				}
			}
		})
	}
}
