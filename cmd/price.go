package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"guild-swap/pkg/parser"
	"guild-swap/pkg/token"
	"guild-swap/pkg/types"
)

var (
	watchPrice    bool
	priceInterval int
	priceSell     bool
)

var priceCmd = &cobra.Command{
	Use:   "price [TOKEN]",
	Short: "Show the pool price of a token against BUSD",
	Long: `Read the pool reserves of a token and print its price in BUSD.
Without a token the default PLANT pool is used.

Examples:
  guild-swap price
  guild-swap price UNI
  guild-swap price UNI --sell
  guild-swap price YGG --watch --interval 10`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPrice,
}

func init() {
	rootCmd.AddCommand(priceCmd)

	priceCmd.Flags().BoolVarP(&watchPrice, "watch", "w", false, "Refresh the price continuously")
	priceCmd.Flags().IntVar(&priceInterval, "interval", 5, "Polling interval in seconds (when watching)")
	priceCmd.Flags().BoolVar(&priceSell, "sell", false, "Quote the token to BUSD direction")
}

func runPrice(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	item := token.PLANT
	if len(args) == 1 {
		parsed, err := token.Parse(parser.NormalizeTokenSymbol(args[0]))
		if err != nil {
			printError(err)
			os.Exit(2)
		}
		item = parsed
	}
	interval, err := pollInterval(priceInterval)
	if watchPrice && err != nil {
		printError(err)
		os.Exit(2)
	}

	rt, err := setup(cmd, false)
	if err != nil {
		exit(err)
	}
	defer rt.close()

	source, dest := token.BUSD, item
	if priceSell {
		source, dest = item, token.BUSD
	}
	if err := rt.app.SetPair(source, dest); err != nil {
		printError(err)
		exit(err)
	}

	if !watchPrice {
		rt.terminal.Status("Fetching price...")
		rt.terminal.Show()
		quote, err := rt.app.RefreshPrice(ctx)
		rt.terminal.Hide()
		if err != nil {
			printError(err)
			exit(err)
		}
		if rt.jsonOutput {
			rt.printJSON(quote)
			return
		}
		displayPrice(quote)
		return
	}

	if rt.jsonOutput {
		fmt.Println(`{"error": "watch mode not supported with JSON output"}`)
		return
	}

	fmt.Printf("\nWatching %s/%s price. Checking every %d seconds. Press Ctrl+C to stop.\n",
		source, dest, priceInterval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		quote, err := rt.app.RefreshPrice(ctx)
		if err != nil {
			color.Red("Error: %v", err)
		} else {
			fmt.Printf("[%s] 1 %s = %s %s\n", time.Now().Format("15:04:05"), dest, quote.Price, source)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func displayPrice(quote *types.Quote) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	color.Green("                       POOL PRICE")
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("\n  Price:             1 %s = %s %s\n", color.YellowString(quote.DestToken), quote.Price, quote.SourceToken)
	fmt.Printf("  %-18s %s\n", quote.SourceToken+" reserve:", quote.ReserveA)
	fmt.Printf("  %-18s %s\n", quote.DestToken+" reserve:", quote.ReserveB)

	fmt.Println("\n" + strings.Repeat("=", 60) + "\n")
}
