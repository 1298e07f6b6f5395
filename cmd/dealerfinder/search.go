package main

import (
	"fmt"
)

// Run performs a one-shot search and prints the listings.
func (c *SearchCmd) Run(deps *Dependencies) error {
	result, err := deps.Searcher.Search(deps.Ctx, c.Zip)
	if err != nil {
		return err
	}

	if len(result.Outcomes) == 0 {
		fmt.Fprintf(deps.Stdout, "No independent dealers found near %s.\n", c.Zip)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Found %d independent dealers near %s:\n\n", len(result.Outcomes), c.Zip)
	for _, o := range result.Outcomes {
		fmt.Fprintf(deps.Stdout, "%s\n  %s\n", o.Listing.Name, o.Listing.Address)
		if o.Listing.Phone != "" {
			fmt.Fprintf(deps.Stdout, "  %s\n", o.Listing.Phone)
		}
		if o.Listing.Website != "" {
			fmt.Fprintf(deps.Stdout, "  %s\n", o.Listing.Website)
		}
		if o.Listing.Summary != "" {
			fmt.Fprintf(deps.Stdout, "  %s\n", o.Listing.Summary)
		} else if o.SummaryErr != nil {
			fmt.Fprintln(deps.Stdout, "  (summary unavailable)")
		}
		fmt.Fprintln(deps.Stdout)
	}
	return nil
}
