package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"guild-swap/pkg/exchange"
	"guild-swap/pkg/parser"
	"guild-swap/pkg/pricing"
	"guild-swap/pkg/token"
	"guild-swap/pkg/types"
)

var depositBUSD bool

var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Manage your liquidity positions",
	Long: `List your pool positions, add liquidity to an existing pool or create a
new pair against BUSD.

Examples:
  guild-swap pool list
  guild-swap pool add 2 UNI
  guild-swap pool add 10 UNI --busd
  guild-swap pool create-pair 10 BUSD + 4 AXS`,
}

var poolListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the pools you have liquidity in",
	Args:    cobra.NoArgs,
	Run:     runPoolList,
}

var poolAddCmd = &cobra.Command{
	Use:   "add <amount> <token>",
	Short: "Add liquidity to a pool at the current price",
	Long: `Deposit a token and the matching BUSD amount into its pool. The BUSD side
is computed from the pool price. With --busd the amount is the BUSD side and
the token side is computed instead.

Examples:
  guild-swap pool add 2 UNI
  guild-swap pool add 10 PLANT --busd`,
	Args: cobra.ExactArgs(2),
	Run:  runPoolAdd,
}

var poolCreateCmd = &cobra.Command{
	Use:   "create-pair <busd-amount> BUSD + <amount> <token>",
	Short: "Create a pool with an initial BUSD and token deposit",
	Long: `Create a pair by depositing both sides. The ratio of the two amounts sets
the initial price.

Examples:
  guild-swap pool create-pair 10 BUSD + 4 AXS`,
	Args: cobra.MinimumNArgs(1),
	Run:  runPoolCreate,
}

func init() {
	rootCmd.AddCommand(poolCmd)
	poolCmd.AddCommand(poolListCmd, poolAddCmd, poolCreateCmd)

	poolAddCmd.Flags().BoolVar(&depositBUSD, "busd", false, "Treat the amount as the BUSD side")
}

func runPoolList(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	rt, err := setup(cmd, true)
	if err != nil {
		exit(err)
	}
	defer rt.close()

	rt.connect(ctx)
	rt.app.OpenPage(exchange.PageLiquidity)
	showPositions(ctx, rt)
}

func showPositions(ctx context.Context, rt *runtime) {
	rt.terminal.Status("Loading positions...")
	rt.terminal.Show()
	positions, err := rt.app.ListPositions(ctx)
	rt.terminal.Hide()
	if err != nil {
		rt.close()
		exit(err)
	}
	renderPositions(rt, positions)
}

func renderPositions(rt *runtime, positions []exchange.PoolPosition) {
	if rt.jsonOutput {
		out := make([]map[string]string, 0, len(positions))
		for _, p := range positions {
			out = append(out, map[string]string{
				"token":       string(p.Token),
				"amount":      p.Amount.String(),
				"busd":        p.BUSD.String(),
				"pool_tokens": p.PoolTokens.StringFixed(6),
			})
		}
		rt.printJSON(out)
		return
	}

	fmt.Println("\n" + strings.Repeat("=", 70))
	color.Green("                          YOUR LIQUIDITY")
	fmt.Println(strings.Repeat("=", 70))

	if len(positions) == 0 {
		fmt.Println("\n  No liquidity found")
		fmt.Println("\n" + strings.Repeat("=", 70) + "\n")
		return
	}

	fmt.Printf("\n  %-8s %-22s %-22s %s\n", "PAIR", "POOLED TOKEN", "POOLED BUSD", "POOL TOKENS")
	fmt.Println("  " + strings.Repeat("-", 66))
	for _, p := range positions {
		fmt.Printf("  %-8s %-22s %-22s %s\n",
			string(p.Token)+"/BUSD", p.Amount.StringFixed(6), p.BUSD.StringFixed(6), p.PoolTokens.StringFixed(6))
	}
	fmt.Println("\n" + strings.Repeat("=", 70) + "\n")
}

func runPoolAdd(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	amount, err := pricing.ParseAmount(args[0])
	if err != nil {
		printError(err)
		os.Exit(2)
	}
	item, err := token.Parse(parser.NormalizeTokenSymbol(args[1]))
	if err != nil {
		printError(err)
		os.Exit(2)
	}

	rt, err := setup(cmd, true)
	if err != nil {
		exit(err)
	}
	defer rt.close()

	rt.connect(ctx)
	rt.app.OpenPage(exchange.PageAddLiquidity)
	form := rt.app.Liquidity()

	if depositBUSD {
		form.SetInitAmount(amount)
	} else {
		form.SetTargetAmount(amount)
	}

	rt.terminal.Status("Fetching price...")
	rt.terminal.Show()
	err = form.SelectToken(ctx, item)
	rt.terminal.Hide()
	if err != nil {
		printError(err)
		exit(err)
	}

	submitLiquidity(ctx, rt, form, false)
}

func runPoolCreate(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	req, err := parser.ParseLiquidityCommand(strings.Join(args, " "))
	if err != nil {
		printError(err)
		os.Exit(2)
	}
	req.InitToken = parser.NormalizeTokenSymbol(req.InitToken)
	req.TargetToken = parser.NormalizeTokenSymbol(req.TargetToken)
	if err := parser.ValidateLiquidityRequest(req); err != nil {
		printError(err)
		os.Exit(2)
	}
	if req.InitToken != string(token.BUSD) {
		printError(fmt.Errorf("the first amount must be BUSD, got %s", req.InitToken))
		os.Exit(2)
	}

	item, err := token.Parse(req.TargetToken)
	if err != nil {
		printError(err)
		os.Exit(2)
	}
	initAmount, err := pricing.ParseAmount(req.InitAmount)
	if err != nil {
		printError(err)
		os.Exit(2)
	}
	targetAmount, err := pricing.ParseAmount(req.TargetAmount)
	if err != nil {
		printError(err)
		os.Exit(2)
	}

	rt, err := setup(cmd, true)
	if err != nil {
		exit(err)
	}
	defer rt.close()

	rt.connect(ctx)
	rt.app.OpenPage(exchange.PageCreatePairs)
	form := rt.app.Liquidity()

	if err := form.SelectToken(ctx, item); err != nil {
		printError(err)
		exit(err)
	}
	form.SetInitAmount(initAmount)
	form.SetTargetAmount(targetAmount)

	submitLiquidity(ctx, rt, form, true)
}

func submitLiquidity(ctx context.Context, rt *runtime, form *exchange.LiquidityForm, fromCreate bool) {
	if !rt.jsonOutput {
		displayDeposit(form)
	}

	if !rt.skipPrompt && !rt.jsonOutput {
		if !confirm(fmt.Sprintf("Proceed to %s?", form.Mode())) {
			fmt.Println("\nCancelled.")
			return
		}
	}

	rt.terminal.Status("Approving and depositing...")
	result, err := form.Submit(ctx)
	if err != nil {
		rt.close()
		exit(err)
	}

	summaries := []types.TxSummary{
		summarize("approve", result.ApproveToken),
		summarize("approve", result.ApproveBUSD),
		summarize(strings.ReplaceAll(form.Mode().String(), " ", "_"), result.Deposit),
	}
	if rt.jsonOutput {
		rt.printJSON(summaries)
		return
	}

	printSuccess("✓ Liquidity deposited")
	displaySummaries(summaries)

	// creating a pair reloads the position list
	if err := rt.app.GoBack(ctx, fromCreate); err != nil {
		return
	}
	if fromCreate {
		renderPositions(rt, rt.app.Positions())
	}
}

func displayDeposit(form *exchange.LiquidityForm) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	color.Green("                     %s", strings.ToUpper(form.Mode().String()))
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("\n  Deposit:           %s %s\n", form.TargetAmount().StringFixed(6), color.YellowString(string(form.Selected())))
	fmt.Printf("  Deposit:           %s %s\n", form.InitAmount().StringFixed(6), color.YellowString(string(token.BUSD)))
	fmt.Printf("  Price:             1 %s = %s BUSD\n", form.Selected(), priceText(form.DisplayPrice()))

	fmt.Println("\n" + strings.Repeat("=", 60))
}

func priceText(p decimal.Decimal) string {
	if p.IsZero() {
		return "-"
	}
	return p.String()
}
