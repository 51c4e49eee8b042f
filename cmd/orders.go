package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/guiluca/dineboard/renderer"
)

type ordersCmd struct{}

func (*ordersCmd) Name() string     { return "orders" }
func (*ordersCmd) Synopsis() string { return "display the pending orders" }
func (*ordersCmd) Usage() string {
	return `dine orders

  Displays the orders waiting to be processed with their cost and the day total.
`
}

func (c *ordersCmd) SetFlags(f *flag.FlagSet) {}

func (c *ordersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	k, err := DecodeKitchen()
	if err != nil {
		return fail("could not load kitchen: %v", err)
	}
	printMarkdown(renderer.OrdersMarkdown(k.Pending.Orders(), k, k.Currency))
	return subcommands.ExitSuccess
}
