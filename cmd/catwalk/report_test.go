// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/catwalk-dev/catwalk/internal/catalog"
)

func TestRunReport(t *testing.T) {
	t.Parallel()

	path := writeFixtureSummary(t, t.TempDir())
	var out bytes.Buffer
	reportCmd := &cobra.Command{}
	reportCmd.SetOut(&out)

	if err := runReport(reportCmd, []string{path}); err != nil {
		t.Fatalf("runReport() failed: %v", err)
	}

	pdfFile := catalog.PDFFilename(path)
	info, err := os.Stat(pdfFile)
	if err != nil {
		t.Fatalf("stat PDF output: %v", err)
	}
	if info.Size() == 0 {
		t.Error("PDF output is empty")
	}

	transcript := out.String()
	if !strings.Contains(transcript, "Creating PDF: "+pdfFile) {
		t.Errorf("transcript missing creating line: %q", transcript)
	}
	if !strings.Contains(transcript, "✓ PDF created successfully: "+pdfFile) {
		t.Errorf("transcript missing success line: %q", transcript)
	}
}
