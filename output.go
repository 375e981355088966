package hourei

import (
	"context"
	"time"
)

// Format identifies the rendering of a statute.
type Format string

// Supported output formats.
const (
	FormatXML  Format = "xml"
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// Ext returns the file extension used when the format is written to disk.
func (f Format) Ext() string {
	switch f {
	case FormatText:
		return "txt"
	case FormatYAML:
		return "yaml"
	default:
		return "xml"
	}
}

// Output is a statute rendering destined for storage.
type Output struct {
	LawID     string    `json:"lawId"`
	Title     string    `json:"title"`
	Format    Format    `json:"format"`
	Content   string    `json:"content"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Validate returns an error if the output contains invalid fields.
func (o *Output) Validate() error {
	if o.LawID == "" {
		return Errorf(EINVALID, "output law ID required")
	}
	switch o.Format {
	case FormatXML, FormatText, FormatYAML:
		return nil
	default:
		return Errorf(EINVALID, "unsupported output format %q", o.Format)
	}
}

// OutputWriter writes statute renderings to storage.
type OutputWriter interface {
	WriteOutput(ctx context.Context, out *Output) error
}
