package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "sorts the ledger file by date"
}
func (*fmtCmd) Usage() string {
	return `dine fmt

  Rewrites the ledger sorted by date. Rows of the same day keep their
  relative order. Amounts are written with the digits of the currency.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := Ledger(Currency())
	if err := ledger.Fmt(); err != nil {
		return fail("could not format ledger: %v", err)
	}
	fmt.Printf("Formatted %s.\n", ledger.Path)
	return subcommands.ExitSuccess
}
