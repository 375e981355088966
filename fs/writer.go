// Package fs provides file-based storage for statute renderings.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	hourei "github.com/ToAmano/hourei-api"
)

// OutputPath returns the file name for a statute rendering.
// Example: 405AC0000000088 as text → 405AC0000000088.txt
func OutputPath(out *hourei.Output) string {
	return out.LawID + "." + out.Format.Ext()
}

// FormatOutput returns the file content for a rendering. Text and YAML
// files get a short comment header so saved files are self-identifying;
// XML is written verbatim because the header would corrupt it.
func FormatOutput(out *hourei.Output) string {
	if out.Format == hourei.FormatXML {
		return out.Content
	}

	var b strings.Builder
	b.WriteString("# law_id: ")
	b.WriteString(out.LawID)
	b.WriteString("\n")
	if out.Title != "" {
		b.WriteString("# title: ")
		b.WriteString(out.Title)
		b.WriteString("\n")
	}
	if !out.FetchedAt.IsZero() {
		b.WriteString("# fetched: ")
		b.WriteString(out.FetchedAt.Format("2006-01-02"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(out.Content)
	return b.String()
}

// Ensure Writer implements hourei.OutputWriter at compile time.
var _ hourei.OutputWriter = (*Writer)(nil)

// Writer writes statute renderings as files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteOutput writes a rendering to disk.
func (w *Writer) WriteOutput(ctx context.Context, out *hourei.Output) error {
	if err := out.Validate(); err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, OutputPath(out))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatOutput(out)), 0644)
}
