package cmd

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"syscall"
)

// Environment variables configuring dine. Extensions receive the resolved
// global settings through them.
const (
	EnvKitchenFile = "DINE_KITCHEN_FILE"
	EnvLedgerFile  = "DINE_LEDGER_FILE"
	EnvCurrency    = "DINE_CURRENCY"
	EnvVerbose     = "DINE_VERBOSE"
)

// RunExtension attempts to find and execute an external dine-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "dine-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvKitchenFile+"="+KitchenPath())
	cmd.Env = append(cmd.Env, EnvLedgerFile+"="+LedgerPath())
	cmd.Env = append(cmd.Env, EnvCurrency+"="+Currency())
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(*Verbose))

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
