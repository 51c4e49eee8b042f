package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/guiluca/dineboard"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "query the kitchen file with JSONPath" }
func (*queryCmd) Usage() string {
	return `dine query <jsonpath>

  Evaluates a JSONPath expression against the kitchen file and prints the
  result as JSON.

Usage Examples:
$ dine query '$.dishes[*].name'
$ dine query '$.stock[?(@.name=="noodles")].amount'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one JSONPath expression is required.")
		return subcommands.ExitUsageError
	}
	k, err := DecodeKitchen()
	if err != nil {
		return fail("could not load kitchen: %v", err)
	}
	result, err := dineboard.Query(k, f.Arg(0))
	if err != nil {
		return fail("%v", err)
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fail("%v", err)
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
