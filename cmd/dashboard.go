package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/guiluca/dineboard/renderer"
)

type dashboardCmd struct {
	json bool
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the kitchen metrics, stock alerts, inventory and menu" }
func (*dashboardCmd) Usage() string {
	return `dine dashboard [-json]

  Displays an overview of the kitchen: the value of the stock, the pending
  orders, the ingredients running low, the inventory and the cost of each dish.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "output the dashboard as JSON")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	k, err := DecodeKitchen()
	if err != nil {
		return fail("could not load kitchen: %v", err)
	}
	d := renderer.NewDashboard(k)
	if c.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return fail("%v", err)
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderDashboard(d))
	return subcommands.ExitSuccess
}
