package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "verify that the ledger is sorted by date" }
func (*checkCmd) Usage() string {
	return `dine check

  Verifies that the rows of the ledger are in chronological order, which
  'dine search' relies on. A ledger edited by hand can be repaired with
  'dine fmt'.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := Ledger(Currency())
	if err := ledger.Check(); err != nil {
		return fail("%v", err)
	}
	fmt.Printf("%s is sorted by date.\n", ledger.Path)
	return subcommands.ExitSuccess
}
