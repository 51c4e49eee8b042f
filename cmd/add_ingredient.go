package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addIngredientCmd struct {
	name   string
	amount string
	cost   string
}

func (*addIngredientCmd) Name() string     { return "add-ingredient" }
func (*addIngredientCmd) Synopsis() string { return "register or restock an ingredient" }
func (*addIngredientCmd) Usage() string {
	return `dine add-ingredient -n <name> -a <amount> -c <total cost>

  Registers an ingredient with the amount bought and what that whole amount
  cost. The amount is a number followed by a unit label, like "20 kg" or
  "50 units". Adding an existing ingredient restocks it: its stock and price
  are replaced.

Usage Examples:
$ dine add-ingredient -n noodles -a "20 kg" -c 60
`
}

func (c *addIngredientCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "ingredient name")
	f.StringVar(&c.amount, "a", "", "amount bought, e.g. '20 kg'")
	f.StringVar(&c.cost, "c", "", "total cost of the amount bought")
}

func (c *addIngredientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.amount == "" || c.cost == "" {
		fmt.Fprintln(os.Stderr, "Error: -n, -a and -c flags are all required.")
		return subcommands.ExitUsageError
	}
	cost, err := decimal.NewFromString(c.cost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing cost %q: %v\n", c.cost, err)
		return subcommands.ExitUsageError
	}

	k, err := DecodeKitchen()
	if err != nil {
		return fail("could not load kitchen: %v", err)
	}
	if err := k.AddIngredient(c.name, c.amount, cost); err != nil {
		return fail("%v", err)
	}
	if err := EncodeKitchen(k); err != nil {
		return fail("%v", err)
	}

	rec, _ := k.Ingredients.Get(c.name)
	fmt.Printf("Added %s of %s at %s / %s.\n", rec.Amount, rec.Name, rec.PricePerUnit(), rec.PriceUnit())
	return subcommands.ExitSuccess
}
