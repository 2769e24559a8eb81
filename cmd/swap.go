package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"guild-swap/pkg/exchange"
	"guild-swap/pkg/parser"
	"guild-swap/pkg/pricing"
	"guild-swap/pkg/token"
	"guild-swap/pkg/types"
)

var exactOut bool

var swapCmd = &cobra.Command{
	Use:   "swap <amount> <source-token> to <dest-token>",
	Short: "Swap a token for another at the pool price",
	Long: `Swap tokens on the GuildSwap exchange. One side of every swap is BUSD.

The exchange is first approved to spend the source amount, then the swap is
sent. Each transaction is shown for confirmation before it is signed unless
--yes is given.

Examples:
  guild-swap swap 10 BUSD to PLANT
  guild-swap swap 2 UNI to BUSD
  guild-swap swap 3 BUSD to PLANT --to-amount
  guild-swap swap 10 BUSD to YGG --yes`,
	Args: cobra.MinimumNArgs(1),
	Run:  runSwap,
}

func init() {
	rootCmd.AddCommand(swapCmd)

	swapCmd.Flags().BoolVar(&exactOut, "to-amount", false, "Treat the amount as the destination amount")
}

func runSwap(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	// Parse the command
	swapReq, err := parser.ParseSwapCommand(strings.Join(args, " "))
	if err != nil {
		printError(err)
		os.Exit(2)
	}
	swapReq.SourceToken = parser.NormalizeTokenSymbol(swapReq.SourceToken)
	swapReq.DestToken = parser.NormalizeTokenSymbol(swapReq.DestToken)
	if exactOut {
		swapReq.DestAmount, swapReq.Amount = swapReq.Amount, ""
	}
	if err := parser.ValidateSwapRequest(swapReq); err != nil {
		printError(err)
		os.Exit(2)
	}

	source, err := token.Parse(swapReq.SourceToken)
	if err != nil {
		printError(err)
		os.Exit(2)
	}
	dest, err := token.Parse(swapReq.DestToken)
	if err != nil {
		printError(err)
		os.Exit(2)
	}

	rt, err := setup(cmd, true)
	if err != nil {
		exit(err)
	}
	defer rt.close()

	if err := rt.app.SetPair(source, dest); err != nil {
		printError(err)
		exit(err)
	}

	rt.connect(ctx)

	rt.terminal.Status("Fetching price...")
	rt.terminal.Show()
	_, err = rt.app.RefreshPrice(ctx)
	rt.terminal.Hide()
	if err != nil {
		printError(err)
		exit(err)
	}

	if swapReq.DestAmount != "" {
		amount, err := pricing.ParseAmount(swapReq.DestAmount)
		if err != nil {
			printError(err)
			os.Exit(2)
		}
		rt.app.SetToAmount(amount)
	} else {
		amount, err := pricing.ParseAmount(swapReq.Amount)
		if err != nil {
			printError(err)
			os.Exit(2)
		}
		rt.app.SetFromAmount(amount)
	}

	form := rt.app.Swap()
	if !rt.jsonOutput {
		displaySwapQuote(form)
	}

	// Ask for confirmation
	if !rt.skipPrompt && !rt.jsonOutput {
		if !confirm("Proceed with swap?") {
			fmt.Println("\nSwap cancelled.")
			return
		}
	}

	rt.terminal.Status("Approving and swapping...")
	result, err := rt.app.SubmitSwap(ctx)
	if err != nil {
		rt.close()
		exit(err)
	}

	summaries := []types.TxSummary{
		summarize("approve", result.Approve),
		summarize("swap", result.Swap),
	}
	if rt.jsonOutput {
		rt.printJSON(summaries)
		return
	}

	printSuccess("✓ Swap confirmed")
	displaySummaries(summaries)
	fmt.Println("You can inspect the transaction using:")
	color.Cyan("  guild-swap status %s\n", result.Swap.TxHash.Hex())
}

func displaySwapQuote(form exchange.SwapForm) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	color.Green("                      SWAP QUOTE")
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("\n  From:              %s %s\n", form.FromAmount.String(), color.YellowString(string(form.Source)))
	fmt.Printf("  To:                ~%s %s\n", form.ToAmount.StringFixed(6), color.YellowString(string(form.Dest)))
	fmt.Printf("  Price:             1 %s = %s %s\n", form.Dest, form.Price.String(), form.Source)

	fmt.Println("\n" + strings.Repeat("=", 60))
}
