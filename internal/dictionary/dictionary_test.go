// SPDX-License-Identifier: MPL-2.0

package dictionary

import (
	"errors"
	"io/fs"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/catwalk-dev/catwalk/internal/testutil"
	"github.com/catwalk-dev/catwalk/pkg/types"
)

func TestDictionary_SetAndTitle(t *testing.T) {
	t.Parallel()

	d := New()
	d.Set("BIOL-101", "General Biology I")
	d.Set("BIOL-102", "General Biology II")

	if got := d.Len(); got != 2 {
		t.Errorf("Len = %d, want 2", got)
	}

	title, ok := d.Title("BIOL-101")
	if !ok || title != "General Biology I" {
		t.Errorf("Title(BIOL-101) = (%q, %t), want (%q, true)", title, ok, "General Biology I")
	}
	if _, ok := d.Title("MATH-101"); ok {
		t.Error("Title(MATH-101) found, want missing")
	}

	d.Set("BIOL-101", "Foundations of Biology")
	if got := d.TitleOrUnknown("BIOL-101"); got != "Foundations of Biology" {
		t.Errorf("TitleOrUnknown after overwrite = %q, want %q", got, "Foundations of Biology")
	}
	if got := d.TitleOrUnknown("MATH-101"); got != UnknownTitle {
		t.Errorf("TitleOrUnknown(MATH-101) = %q, want %q", got, UnknownTitle)
	}
}

func TestDictionary_IDs_Sorted(t *testing.T) {
	t.Parallel()

	d := New()
	d.Set("MATH-210", "Linear Algebra")
	d.Set("BIOL-101", "General Biology I")
	d.Set("CHEM-104", "General Chemistry")

	want := []types.CourseID{"BIOL-101", "CHEM-104", "MATH-210"}
	if got := d.IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("IDs = %v, want %v", got, want)
	}
}

func TestDictionary_Resolve(t *testing.T) {
	t.Parallel()

	d := New()
	d.Set("BIOL-101", "General Biology I")
	d.Set("BIOL-102", "General Biology II")

	tests := []struct {
		name string
		text string
		want []types.CourseID
	}{
		{
			name: "mentions resolve through canonical form",
			text: "Complete BIOL-101 and BIOL102 before enrolling.",
			want: []types.CourseID{"BIOL-101", "BIOL-102"},
		},
		{
			name: "lowercase mentions resolve too",
			text: "biol-101 or equivalent",
			want: []types.CourseID{"BIOL-101"},
		},
		{
			name: "repeats are preserved",
			text: "BIOL-101, then BIOL-102, then BIOL-101 again",
			want: []types.CourseID{"BIOL-101", "BIOL-102", "BIOL-101"},
		},
		{
			name: "unknown mentions are dropped",
			text: "MATH-499 and BIOL-101",
			want: []types.CourseID{"BIOL-101"},
		},
		{
			name: "no mentions",
			text: "Instructor permission required.",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := d.Resolve(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Resolve(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDictionary_ResolveUnique(t *testing.T) {
	t.Parallel()

	d := New()
	d.Set("BIOL-101", "General Biology I")
	d.Set("BIOL-102", "General Biology II")
	d.Set("CHEM-104", "General Chemistry")

	text := "BIOL-101 (fall), BIOL-102, then BIOL 101 again, plus CHEM-104."
	want := []types.CourseID{"BIOL-101", "BIOL-102", "CHEM-104"}
	if got := d.ResolveUnique(text); !reflect.DeepEqual(got, want) {
		t.Errorf("ResolveUnique = %v, want %v", got, want)
	}
}

func TestDictionary_FirstSpellingWins(t *testing.T) {
	t.Parallel()

	d := New()
	d.Set("CSCI-140", "Data Structures")
	d.Set("CSCI 140", "Data Structures (Honors)")

	// Both spellings stay addressable exactly, but free text resolves to
	// the spelling recorded first.
	if got := d.Len(); got != 2 {
		t.Errorf("Len = %d, want 2", got)
	}
	if got := d.Resolve("requires csci140"); !reflect.DeepEqual(got, []types.CourseID{"CSCI-140"}) {
		t.Errorf("Resolve = %v, want [CSCI-140]", got)
	}
	if got := d.TitleOrUnknown("CSCI 140"); got != "Data Structures (Honors)" {
		t.Errorf("TitleOrUnknown(CSCI 140) = %q, want the honors title", got)
	}
}

func TestDictionary_SaveAndLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "2025-2026_undergraduate.ser")

	d := New()
	d.Set("BIOL-101", "General Biology I")
	d.Set("MATH-210", "Linear Algebra")
	if err := d.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := loaded.Len(); got != 2 {
		t.Errorf("Len after load = %d, want 2", got)
	}
	if got := loaded.TitleOrUnknown("MATH-210"); got != "Linear Algebra" {
		t.Errorf("TitleOrUnknown(MATH-210) = %q, want %q", got, "Linear Algebra")
	}
	if got := loaded.Resolve("MATH 210"); !reflect.DeepEqual(got, []types.CourseID{"MATH-210"}) {
		t.Errorf("Resolve after load = %v, want [MATH-210]", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.ser"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "corrupt.ser")
	testutil.MustWriteFile(t, path, []byte("not a gob stream"), 0o644)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load succeeded on corrupt file, want error")
	}
	if errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load error = %v, should not be fs.ErrNotExist", err)
	}
}
