package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type orderCmd struct {
	dish     string
	quantity int
}

func (*orderCmd) Name() string     { return "order" }
func (*orderCmd) Synopsis() string { return "add servings of a dish to the pending orders" }
func (*orderCmd) Usage() string {
	return `dine order -n <dish> [-q <quantity>]

  Adds servings of a dish of the menu to the orders of the day. Ordering the
  same dish again adds to its quantity. Pending orders are applied to the
  stock and recorded in the ledger by 'dine process'.
`
}

func (c *orderCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dish, "n", "", "dish name")
	f.IntVar(&c.quantity, "q", 1, "number of servings")
}

func (c *orderCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.dish == "" {
		fmt.Fprintln(os.Stderr, "Error: -n flag is required.")
		return subcommands.ExitUsageError
	}
	k, err := DecodeKitchen()
	if err != nil {
		return fail("could not load kitchen: %v", err)
	}
	if err := k.Order(c.dish, c.quantity); err != nil {
		return fail("%v", err)
	}
	if err := EncodeKitchen(k); err != nil {
		return fail("%v", err)
	}
	fmt.Printf("Ordered %d x %s.\n", c.quantity, c.dish)
	return subcommands.ExitSuccess
}
