package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/guiluca/dineboard"
	"github.com/guiluca/dineboard/renderer"
)

type searchCmd struct {
	date string
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "find the orders recorded on a day" }
func (*searchCmd) Usage() string {
	return `dine search -d <date>

  Displays the orders recorded in the ledger on a day (YYYY-MM-DD), with the
  total of that day. The ledger must be sorted by date, see 'dine check'.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "day to search (YYYY-MM-DD)")
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "" {
		fmt.Fprintln(os.Stderr, "Error: -d flag is required.")
		return subcommands.ExitUsageError
	}
	ledger := Ledger(Currency())
	rows, err := ledger.FindByDate(c.date)
	if errors.Is(err, dineboard.ErrMalformedDate) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if errors.Is(err, dineboard.ErrNotFound) {
		return fail("no ledger at %s, no orders have been processed yet", ledger.Path)
	}
	if err != nil {
		return fail("%v", err)
	}
	printMarkdown(renderer.SearchMarkdown(c.date, rows))
	return subcommands.ExitSuccess
}
