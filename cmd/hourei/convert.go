package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	hourei "github.com/ToAmano/hourei-api"
	"github.com/ToAmano/hourei-api/fs"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	xml, lawID, err := c.statuteXML(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hourei.ErrorMessage(err))
		return err
	}

	converter := deps.Text
	format := hourei.FormatText
	if c.Format == "yaml" {
		converter = deps.YAML
		format = hourei.FormatYAML
	}

	rendered, err := converter.Convert(xml)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hourei.ErrorMessage(err))
		return err
	}

	if c.Out == "" {
		fmt.Fprintln(deps.Stdout, rendered)
		return nil
	}

	out := &hourei.Output{
		LawID:     lawID,
		Title:     c.Title,
		Format:    format,
		Content:   rendered,
		FetchedAt: time.Now(),
	}
	if err := deps.WriterFor(c.Out).WriteOutput(deps.Ctx, out); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hourei.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %s\n", filepath.Join(c.Out, fs.OutputPath(out)))
	return nil
}

// statuteXML returns the statute XML and its law ID from whichever source
// the flags selected: a local file, an explicit law ID, or a title that
// resolves to one.
func (c *ConvertCmd) statuteXML(deps *Dependencies) (string, string, error) {
	if c.File != "" {
		data, err := os.ReadFile(c.File)
		if err != nil {
			return "", "", err
		}
		base := filepath.Base(c.File)
		lawID := strings.TrimSuffix(base, filepath.Ext(base))
		return string(data), lawID, nil
	}

	if c.Title == "" && c.ID == "" {
		return "", "", hourei.Errorf(hourei.EINVALID, "a statute title, --id or --file is required")
	}

	lawID := c.ID
	if lawID == "" {
		id, err := deps.Laws.ResolveLawID(deps.Ctx, c.Title)
		if err != nil {
			return "", "", err
		}
		lawID = id
	}

	xml, err := deps.Laws.FetchLawData(deps.Ctx, lawID)
	if err != nil {
		return "", "", err
	}
	return xml, lawID, nil
}
