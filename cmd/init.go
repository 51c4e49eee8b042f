package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/guiluca/dineboard"
)

type initCmd struct {
	sample bool
	force  bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create the kitchen file" }
func (*initCmd) Usage() string {
	return `dine init [-sample] [-f]

  Creates an empty kitchen file in the display currency. With -sample, the
  kitchen is stocked with a few ingredients and a stir fry noodles dish.
  An existing kitchen file is only replaced with -f.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.sample, "sample", false, "seed the kitchen with sample ingredients and a dish")
	f.BoolVar(&c.force, "f", false, "replace an existing kitchen file")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path := KitchenPath()
	if _, err := os.Stat(path); err == nil && !c.force {
		return fail("kitchen file %q already exists, use -f to replace it", path)
	}

	k := dineboard.NewKitchen(Currency())
	if c.sample {
		k = dineboard.SampleKitchen(Currency())
	}
	if err := EncodeKitchen(k); err != nil {
		return fail("%v", err)
	}
	fmt.Printf("Created %s with %d ingredients and %d dishes.\n", path, k.Ingredients.Len(), k.Menu.Len())
	return subcommands.ExitSuccess
}
