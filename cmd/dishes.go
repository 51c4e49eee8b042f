package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/guiluca/dineboard/renderer"
)

type dishesCmd struct{}

func (*dishesCmd) Name() string     { return "dishes" }
func (*dishesCmd) Synopsis() string { return "display the menu with the cost of each dish" }
func (*dishesCmd) Usage() string {
	return `dine dishes

  Displays every dish of the menu with its recipe and the cost of one serving.
`
}

func (c *dishesCmd) SetFlags(f *flag.FlagSet) {}

func (c *dishesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	k, err := DecodeKitchen()
	if err != nil {
		return fail("could not load kitchen: %v", err)
	}
	printMarkdown(renderer.MenuMarkdown(k.MenuCosts()))
	return subcommands.ExitSuccess
}
