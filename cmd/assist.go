package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/guiluca/dineboard/agent"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive session with the kitchen assistant"
}
func (*assistCmd) Usage() string {
	return `dine assist [<prompt>]

  Starts an interactive session with an AI assistant that can read the stock,
  the menu costs and the ledger. It needs a Gemini API key in the
  GEMINI_API_KEY environment variable, which can be set in the .env file.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}

	k, err := DecodeKitchen()
	if err != nil {
		return fail("could not load kitchen: %v", err)
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin,
		agent.NewStorekeeper(k),
		agent.NewAccountant(k, Ledger(k.Currency)),
		agent.NewBuyer(),
	)
	a.Print = func(_ io.Writer, answer string) { printMarkdown(answer) }

	if err := a.Run(ctx, client, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
