// SPDX-License-Identifier: MPL-2.0

package catalog

import "testing"

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "already normalized",
			in:   "https://catalog.sjf.edu/2025-2026/",
			want: "https://catalog.sjf.edu/2025-2026/",
		},
		{
			name: "adds trailing slash to directory path",
			in:   "https://catalog.sjf.edu/2025-2026",
			want: "https://catalog.sjf.edu/2025-2026/",
		},
		{
			name: "keeps file-like path without slash",
			in:   "https://catalog.sjf.edu/2025-2026/handbook.pdf",
			want: "https://catalog.sjf.edu/2025-2026/handbook.pdf",
		},
		{
			name: "lowercases scheme and host but not path",
			in:   "HTTPS://Catalog.SJF.edu/Undergraduate",
			want: "https://catalog.sjf.edu/Undergraduate/",
		},
		{
			name: "drops query and fragment",
			in:   "https://catalog.sjf.edu/2025-2026/?print=1#courses",
			want: "https://catalog.sjf.edu/2025-2026/",
		},
		{
			name: "empty path becomes root",
			in:   "https://catalog.sjf.edu",
			want: "https://catalog.sjf.edu/",
		},
		{
			name: "trims surrounding whitespace",
			in:   "  https://catalog.sjf.edu/2025-2026/  ",
			want: "https://catalog.sjf.edu/2025-2026/",
		},
		{
			name: "unparseable input returned trimmed",
			in:   " http://[::1]:namedport ",
			want: "http://[::1]:namedport",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeURL(tt.in); got != tt.want {
				t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestYearRoot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{
			name: "deep page",
			in:   "https://catalog.sjf.edu/2025-2026/undergraduate/ug-academic-programs/",
			want: "https://catalog.sjf.edu/2025-2026/",
		},
		{
			name: "year page itself",
			in:   "https://catalog.sjf.edu/2025-2026/",
			want: "https://catalog.sjf.edu/2025-2026/",
		},
		{
			name: "no path segments",
			in:   "https://catalog.sjf.edu/",
			want: "https://catalog.sjf.edu/",
		},
		{
			name: "missing trailing slash",
			in:   "https://catalog.sjf.edu/2025-2026",
			want: "https://catalog.sjf.edu/2025-2026/",
		},
		{
			name:    "unparseable URL",
			in:      "http://[::1]:namedport",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := YearRoot(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("YearRoot(%q) succeeded, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("YearRoot(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("YearRoot(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBaseName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "two segments joined",
			in:   "https://catalog.sjf.edu/2025-2026/undergraduate/ug-academic-programs/",
			want: "2025-2026_undergraduate",
		},
		{
			name: "single segment stands alone",
			in:   "https://catalog.sjf.edu/2025-2026/",
			want: "2025-2026",
		},
		{
			name: "no segments falls back",
			in:   "https://catalog.sjf.edu/",
			want: DefaultBaseName,
		},
		{
			name: "reserved device name falls back",
			in:   "https://catalog.sjf.edu/con/",
			want: DefaultBaseName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := BaseName(tt.in); got != tt.want {
				t.Errorf("BaseName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestArtifactFilenames(t *testing.T) {
	t.Parallel()

	catalogURL := "https://catalog.sjf.edu/2025-2026/undergraduate/"

	if got, want := SerFilename(catalogURL), "2025-2026_undergraduate.ser"; got != want {
		t.Errorf("SerFilename = %q, want %q", got, want)
	}
	if got, want := JSONFilename(catalogURL), "2025-2026_undergraduate.json"; got != want {
		t.Errorf("JSONFilename = %q, want %q", got, want)
	}
	if got, want := DotFilename("2025-2026_undergraduate.json"), "2025-2026_undergraduate.dot"; got != want {
		t.Errorf("DotFilename = %q, want %q", got, want)
	}
	if got, want := DotFilename("summary"), "summary.dot"; got != want {
		t.Errorf("DotFilename without extension = %q, want %q", got, want)
	}
	if got, want := PDFFilename("2025-2026_undergraduate.json"), "2025-2026_undergraduate.pdf"; got != want {
		t.Errorf("PDFFilename = %q, want %q", got, want)
	}
	if got, want := DependenciesPDFFilename("2025-2026_undergraduate.json"), "2025-2026_undergraduate_dependencies.pdf"; got != want {
		t.Errorf("DependenciesPDFFilename = %q, want %q", got, want)
	}
}
