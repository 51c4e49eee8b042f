// Package cmd implements the CLI application to run the bookkeeping of a restaurant.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/guiluca/dineboard"
	"github.com/joho/godotenv"
	"golang.org/x/term"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "kitchen")
	c.Register(&addIngredientCmd{}, "kitchen")
	c.Register(&addDishCmd{}, "kitchen")
	c.Register(&ingredientsCmd{}, "kitchen")
	c.Register(&dishesCmd{}, "kitchen")
	c.Register(&dashboardCmd{}, "kitchen")
	c.Register(&queryCmd{}, "kitchen")

	c.Register(&orderCmd{}, "orders")
	c.Register(&ordersCmd{}, "orders")
	c.Register(&clearOrdersCmd{}, "orders")
	c.Register(&processCmd{}, "orders")

	c.Register(&searchCmd{}, "ledger")
	c.Register(&checkCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")
	c.Register(&publishCmd{}, "ledger")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var kitchenFile = flag.String("kitchen-file", "", "Path to the kitchen file (JSON). Defaults to $"+EnvKitchenFile+" or "+dineboard.DefaultKitchenFile)
var ledgerFile = flag.String("ledger-file", "", "Path to the ledger of processed orders (CSV). Defaults to $"+EnvLedgerFile+" or "+dineboard.DefaultLedgerFile)
var defaultCurrency = flag.String("currency", "", "Display currency. Defaults to $"+EnvCurrency+" or "+dineboard.DefaultCurrency)
var Verbose = flag.Bool("v", false, "Log diagnostics to stderr. Defaults to $"+EnvVerbose)

// Configure loads the .env file of the working directory, if any, and sets up
// logging. It is called once the global flags are parsed.
func Configure() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("could not load .env file: %v", err)
	}
	if !*Verbose {
		*Verbose, _ = strconv.ParseBool(os.Getenv(EnvVerbose))
	}
	if !*Verbose {
		log.SetOutput(io.Discard)
	}
}

// setting returns the flag value if set, then the environment variable, then def.
func setting(flagValue, env, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

// KitchenPath returns the path to the kitchen file.
func KitchenPath() string { return setting(*kitchenFile, EnvKitchenFile, dineboard.DefaultKitchenFile) }

// LedgerPath returns the path to the ledger file.
func LedgerPath() string { return setting(*ledgerFile, EnvLedgerFile, dineboard.DefaultLedgerFile) }

// Currency returns the display currency.
func Currency() string { return setting(*defaultCurrency, EnvCurrency, dineboard.DefaultCurrency) }

// DecodeKitchen loads the kitchen from the app kitchen file.
// A missing file is an empty kitchen.
func DecodeKitchen() (*dineboard.Kitchen, error) {
	k, err := dineboard.LoadKitchen(KitchenPath())
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, kitchen file does not exist, using an empty kitchen instead")
		return dineboard.NewKitchen(Currency()), nil
	}
	return k, err
}

// EncodeKitchen saves the kitchen into the app kitchen file.
func EncodeKitchen(k *dineboard.Kitchen) error {
	return dineboard.SaveKitchen(KitchenPath(), k)
}

// Ledger returns the app ledger file, with amounts in currency.
func Ledger(currency string) *dineboard.LedgerFile {
	return dineboard.NewLedgerFile(LedgerPath(), currency)
}

// printMarkdown renders md on a terminal, or prints it as is when the output
// is redirected.
func printMarkdown(md string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// fail prints the error and returns the failure status.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}
