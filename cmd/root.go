// Package cmd holds the guild-swap cobra commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"guild-swap/pkg/exchange"
)

var rootCmd = &cobra.Command{
	Use:   "guild-swap",
	Short: "A CLI for swapping and pooling tokens on the GuildSwap exchange",
	Long: `guild-swap trades BEP20 tokens against BUSD on the GuildSwap exchange
contract. Prices come from the pool reserves; every swap or deposit is preceded
by the token approvals it needs and signed with your configured wallet.

Examples:
  guild-swap connect
  guild-swap price PLANT
  guild-swap swap 10 BUSD to PLANT
  guild-swap pool add 2 UNI
  guild-swap pool create-pair 10 BUSD + 4 AXS
  guild-swap history`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().String("config", "", "Config file (default is $HOME/.guild-swap.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolP("yes", "y", false, "Skip confirmation prompts")
}

// commandContext is cancelled on Ctrl+C
func commandContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "\n%s %v\n\n", color.RedString("Error:"), err)
}

func printSuccess(message string) {
	fmt.Printf("\n%s\n\n", color.GreenString(message))
}

// exit terminates with a status derived from err. Actions of the exchange
// package have already alerted the user; anything else is printed here.
func exit(err error) {
	kind := exchange.KindOf(err)
	if kind == exchange.KindUnknown {
		printError(err)
	}

	switch kind {
	case exchange.KindValidation:
		os.Exit(2)
	case exchange.KindUserRejected:
		os.Exit(3)
	default:
		os.Exit(1)
	}
}

// pollInterval converts an --interval flag value for the watch loops
func pollInterval(seconds int) (time.Duration, error) {
	if seconds <= 0 {
		return 0, fmt.Errorf("interval must be a positive number of seconds, got %d", seconds)
	}
	return time.Duration(seconds) * time.Second, nil
}
