package main

import (
	"fmt"

	hourei "github.com/ToAmano/hourei-api"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	laws, err := deps.Laws.SearchLaws(deps.Ctx, c.Title)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hourei.ErrorMessage(err))
		return err
	}

	if len(laws) == 0 {
		fmt.Fprintf(deps.Stdout, "No laws found for %q.\n", c.Title)
		return nil
	}

	for _, law := range laws {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", law.ID, law.Num, law.Title)
	}
	fmt.Fprintf(deps.Stdout, "\n%d laws found.\n", len(laws))

	return nil
}
