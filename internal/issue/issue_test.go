// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	// Verify all IDs are unique and sequential
	ids := []Id{
		PythonNotFoundId,
		VenvCreationFailedId,
		ActivationScriptMissingId,
		ActivationFailedId,
		RequirementsInstallFailedId,
		DictionaryNotFoundId,
		CatalogFetchFailedId,
		SidebarNotFoundId,
		ConfigLoadFailedId,
		ReportWriteFailedId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	// Verify IDs start at 1 (iota + 1)
	if PythonNotFoundId != 1 {
		t.Errorf("PythonNotFoundId = %d, want 1", PythonNotFoundId)
	}
}

func TestIssue_Id(t *testing.T) {
	issue := Get(PythonNotFoundId)
	if issue == nil {
		t.Fatal("Get(PythonNotFoundId) returned nil")
	}

	if issue.Id() != PythonNotFoundId {
		t.Errorf("issue.Id() = %d, want %d", issue.Id(), PythonNotFoundId)
	}
}

func TestIssue_MarkdownMsg(t *testing.T) {
	issue := Get(DictionaryNotFoundId)
	if issue == nil {
		t.Fatal("Get(DictionaryNotFoundId) returned nil")
	}

	msg := issue.MarkdownMsg()
	if msg == "" {
		t.Error("MarkdownMsg() returned empty string")
	}

	// Verify it contains expected content
	if !strings.Contains(string(msg), "Course dictionary not found") {
		t.Error("MarkdownMsg() should contain 'Course dictionary not found'")
	}
}

func TestIssue_ExtLinks(t *testing.T) {
	issue := Get(PythonNotFoundId)
	if issue == nil {
		t.Fatal("Get(PythonNotFoundId) returned nil")
	}

	// ExtLinks returns a clone of the links
	links := issue.ExtLinks()
	if len(links) == 0 {
		t.Fatal("PythonNotFoundId should carry at least one external link")
	}

	// Modifying the returned slice should not affect the original
	original := links[0]
	links[0] = "modified"
	newLinks := issue.ExtLinks()
	if newLinks[0] != original {
		t.Error("ExtLinks() should return a clone")
	}
}

func TestIssue_Render(t *testing.T) {
	// Mock the render function for testing
	originalRender := render
	defer func() { render = originalRender }()

	render = func(in string, stylePath string) (string, error) {
		// Simple mock that just returns the input
		return in, nil
	}

	issue := Get(VenvCreationFailedId)
	if issue == nil {
		t.Fatal("Get(VenvCreationFailedId) returned nil")
	}

	rendered, err := issue.Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	if rendered == "" {
		t.Error("Render() returned empty string")
	}

	if !strings.Contains(rendered, "venv") {
		t.Error("Render() output should contain 'venv'")
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		id       Id
		wantNil  bool
		contains string
	}{
		{PythonNotFoundId, false, "Python interpreter not found"},
		{VenvCreationFailedId, false, "Virtual environment creation failed"},
		{ActivationScriptMissingId, false, "Activation script missing"},
		{ActivationFailedId, false, "Environment activation failed"},
		{RequirementsInstallFailedId, false, "Dependency installation failed"},
		{DictionaryNotFoundId, false, "Course dictionary not found"},
		{CatalogFetchFailedId, false, "Catalog page fetch failed"},
		{SidebarNotFoundId, false, "No sidebar found"},
		{ConfigLoadFailedId, false, "Failed to load configuration"},
		{ReportWriteFailedId, false, "Report generation failed"},
		{Id(9999), true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.contains, func(t *testing.T) {
			issue := Get(tt.id)

			if tt.wantNil {
				if issue != nil {
					t.Errorf("Get(%d) should return nil", tt.id)
				}
				return
			}

			if issue == nil {
				t.Fatalf("Get(%d) returned nil", tt.id)
			}

			if tt.contains != "" && !strings.Contains(string(issue.MarkdownMsg()), tt.contains) {
				t.Errorf("Get(%d).MarkdownMsg() should contain '%s'", tt.id, tt.contains)
			}
		})
	}
}

func TestValues(t *testing.T) {
	issues := Values()

	if len(issues) == 0 {
		t.Fatal("Values() returned empty slice")
	}

	expectedCount := 10

	if len(issues) != expectedCount {
		t.Errorf("Values() returned %d issues, want %d", len(issues), expectedCount)
	}

	// Verify all issues have valid IDs
	for _, issue := range issues {
		if issue.Id() == 0 {
			t.Error("found issue with ID 0")
		}
	}
}

func TestIssue_Render_WithLinks(t *testing.T) {
	// Mock the render function for testing
	originalRender := render
	defer func() { render = originalRender }()

	render = func(in string, stylePath string) (string, error) {
		return in, nil
	}

	// Create a test issue with links to verify the rendering logic
	testIssue := &Issue{
		id:       Id(9999),
		mdMsg:    "# Test Issue\n\nThis is a test.",
		docLinks: []HttpLink{"https://docs.example.com"},
		extLinks: []HttpLink{"https://external.example.com"},
	}

	rendered, err := testIssue.Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	// The rendered output should include the "See also" section
	if !strings.Contains(rendered, "See also") {
		t.Error("Render() with links should contain 'See also'")
	}
}

func TestIssue_Render_NoLinks(t *testing.T) {
	// Mock the render function for testing
	originalRender := render
	defer func() { render = originalRender }()

	render = func(in string, stylePath string) (string, error) {
		return in, nil
	}

	// Create a test issue without links
	testIssue := &Issue{
		id:    Id(9998),
		mdMsg: "# Test Issue\n\nNo links here.",
	}

	rendered, err := testIssue.Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	// Should render without the "See also" section
	if strings.Contains(rendered, "See also") {
		t.Error("Render() without links should not contain 'See also'")
	}
}

func TestAllIssuesHaveContent(t *testing.T) {
	issues := Values()

	for _, issue := range issues {
		if issue.MarkdownMsg() == "" {
			t.Errorf("Issue %d has empty MarkdownMsg", issue.Id())
		}
	}
}

func TestAllIssuesAreRenderable(t *testing.T) {
	// Mock the render function for testing
	originalRender := render
	defer func() { render = originalRender }()

	render = func(in string, stylePath string) (string, error) {
		return in, nil
	}

	issues := Values()

	for _, issue := range issues {
		rendered, err := issue.Render("")
		if err != nil {
			t.Errorf("Issue %d failed to render: %v", issue.Id(), err)
		}
		if rendered == "" {
			t.Errorf("Issue %d rendered to empty string", issue.Id())
		}
	}
}

// TestIssuesMapCompleteness verifies all issue IDs are in the map
func TestIssuesMapCompleteness(t *testing.T) {
	expectedIds := []Id{
		PythonNotFoundId,
		VenvCreationFailedId,
		ActivationScriptMissingId,
		ActivationFailedId,
		RequirementsInstallFailedId,
		DictionaryNotFoundId,
		CatalogFetchFailedId,
		SidebarNotFoundId,
		ConfigLoadFailedId,
		ReportWriteFailedId,
	}

	for _, id := range expectedIds {
		issue := Get(id)
		if issue == nil {
			t.Errorf("Issue with ID %d is not in the issues map", id)
		}
	}
}
