package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/guiluca/dineboard"
	"github.com/guiluca/dineboard/date"
	"github.com/guiluca/dineboard/renderer"
)

type processCmd struct {
	date string
}

func (*processCmd) Name() string     { return "process" }
func (*processCmd) Synopsis() string { return "apply the pending orders to the stock and record them" }
func (*processCmd) Usage() string {
	return `dine process [-d <date>]

  Processes the pending orders as the orders of a day: the ingredients they
  use are taken from the stock, and each order is appended to the ledger
  with its cost. Ingredients running low are reported.

  Days must be processed in chronological order and once: a day before the
  last day of the ledger is rejected, and so is that last day itself.
  Orders of a day must all be taken before processing it.
`
}

func (c *processCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "day of the orders (YYYY-MM-DD)")
}

func (c *processCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	k, err := DecodeKitchen()
	if err != nil {
		return fail("could not load kitchen: %v", err)
	}

	summary, warnings, err := k.ProcessDay(Ledger(k.Currency), on)
	if errors.Is(err, dineboard.ErrNoOrders) {
		return fail("no pending orders to process, add some with 'dine order'")
	}
	if errors.Is(err, dineboard.ErrDayRecorded) {
		return fail("%s is already recorded in %s, the pending orders are kept", on, LedgerPath())
	}
	if err != nil {
		return fail("%v", err)
	}
	if err := EncodeKitchen(k); err != nil {
		return fail("orders were recorded in %s but the stock could not be saved: %v", summary.File, err)
	}

	printMarkdown(renderer.DayMarkdown(summary, warnings))
	return subcommands.ExitSuccess
}
