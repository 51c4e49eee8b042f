package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/guiluca/dineboard"
)

type addDishCmd struct {
	name string
}

func (*addDishCmd) Name() string     { return "add-dish" }
func (*addDishCmd) Synopsis() string { return "register the recipe of a dish" }
func (*addDishCmd) Usage() string {
	return `dine add-dish -n <name> <ingredient>=<amount>...

  Registers a dish with the amount of each ingredient one serving needs.
  Amounts must use the unit the ingredient is priced in for the dish to be
  costed. Adding an existing dish replaces its recipe.

Usage Examples:
$ dine add-dish -n "stir fry noodles" "noodles=0.2 kg" "chicken=0.1 kg"
`
}

func (c *addDishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "dish name")
}

// parseRecipe parses ingredient=amount arguments.
func parseRecipe(args []string) (dineboard.Recipe, error) {
	pairs := make([]string, 0, 2*len(args))
	for _, arg := range args {
		ingredient, amount, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q is not an ingredient=amount pair", dineboard.ErrInvalidDish, arg)
		}
		pairs = append(pairs, ingredient, amount)
	}
	return dineboard.NewRecipe(pairs...)
}

func (c *addDishCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: -n flag and at least one ingredient=amount are required.")
		return subcommands.ExitUsageError
	}
	recipe, err := parseRecipe(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	k, err := DecodeKitchen()
	if err != nil {
		return fail("could not load kitchen: %v", err)
	}
	if err := k.AddDish(c.name, recipe); err != nil {
		return fail("%v", err)
	}
	if err := EncodeKitchen(k); err != nil {
		return fail("%v", err)
	}

	cost, err := k.CostPerServing(c.name)
	if err != nil {
		fmt.Printf("Added dish %q, it cannot be costed yet: %v\n", c.name, err)
		return subcommands.ExitSuccess
	}
	fmt.Printf("Added dish %q at %s per serving.\n", c.name, cost)
	return subcommands.ExitSuccess
}
