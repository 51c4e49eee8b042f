package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type clearOrdersCmd struct{}

func (*clearOrdersCmd) Name() string     { return "clear-orders" }
func (*clearOrdersCmd) Synopsis() string { return "discard the pending orders" }
func (*clearOrdersCmd) Usage() string {
	return `dine clear-orders

  Discards the orders waiting to be processed. The stock and the ledger are
  left untouched.
`
}

func (c *clearOrdersCmd) SetFlags(f *flag.FlagSet) {}

func (c *clearOrdersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	k, err := DecodeKitchen()
	if err != nil {
		return fail("could not load kitchen: %v", err)
	}
	n := k.Pending.Len()
	k.Pending.Clear()
	if err := EncodeKitchen(k); err != nil {
		return fail("%v", err)
	}
	fmt.Printf("Discarded %d pending orders.\n", n)
	return subcommands.ExitSuccess
}
