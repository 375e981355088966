package main

import (
	"fmt"
	"path/filepath"
	"time"

	hourei "github.com/ToAmano/hourei-api"
	"github.com/ToAmano/hourei-api/fs"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	if c.Title == "" && c.ID == "" {
		err := hourei.Errorf(hourei.EINVALID, "a statute title or --id is required")
		fmt.Fprintf(deps.Stderr, "error: %s\n", hourei.ErrorMessage(err))
		return err
	}

	lawID := c.ID
	if lawID == "" {
		id, err := deps.Laws.ResolveLawID(deps.Ctx, c.Title)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", hourei.ErrorMessage(err))
			return err
		}
		lawID = id
	}

	xml, err := deps.Laws.FetchLawData(deps.Ctx, lawID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hourei.ErrorMessage(err))
		return err
	}

	if c.Out == "" {
		fmt.Fprintln(deps.Stdout, xml)
		return nil
	}

	out := &hourei.Output{
		LawID:     lawID,
		Title:     c.Title,
		Format:    hourei.FormatXML,
		Content:   xml,
		FetchedAt: time.Now(),
	}
	if err := deps.WriterFor(c.Out).WriteOutput(deps.Ctx, out); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hourei.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %s\n", filepath.Join(c.Out, fs.OutputPath(out)))
	return nil
}
