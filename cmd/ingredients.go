package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/guiluca/dineboard/renderer"
)

type ingredientsCmd struct {
	bought bool
}

func (*ingredientsCmd) Name() string     { return "ingredients" }
func (*ingredientsCmd) Synopsis() string { return "display the ingredients in stock" }
func (*ingredientsCmd) Usage() string {
	return `dine ingredients [-bought]

  Displays the current stock of each ingredient, what it is worth and its
  price per unit. With -bought, displays the amounts as they were bought.
`
}

func (c *ingredientsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.bought, "bought", false, "display the amounts bought instead of the current stock")
}

func (c *ingredientsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	k, err := DecodeKitchen()
	if err != nil {
		return fail("could not load kitchen: %v", err)
	}
	if c.bought {
		printMarkdown(renderer.IngredientsMarkdown("Ingredients Bought", k.Ingredients, k.Currency))
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.IngredientsMarkdown("Inventory", k.Stock, k.Currency))
	return subcommands.ExitSuccess
}
