package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"guild-swap/pkg/token"
)

var (
	showBalances bool
	filterSymbol string
)

var tokensCmd = &cobra.Command{
	Use:     "list-tokens",
	Aliases: []string{"tokens", "ls"},
	Short:   "List the tokens traded on the exchange",
	Long: `List BUSD and every token that can be paired against it.

With --balances the configured wallet is connected and its balance of each
token is shown.

Examples:
  guild-swap list-tokens
  guild-swap list-tokens --balances
  guild-swap list-tokens --symbol UNI`,
	Args: cobra.NoArgs,
	Run:  runListTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().BoolVar(&showBalances, "balances", false, "Show the connected wallet's balances")
	tokensCmd.Flags().StringVar(&filterSymbol, "symbol", "", "Filter by token symbol")
}

type tokenRow struct {
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Quote   bool   `json:"quote"`
	Balance string `json:"balance,omitempty"`
}

func runListTokens(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	// Apply filters
	var rows []tokenRow
	for _, t := range token.All() {
		if filterSymbol != "" && !strings.Contains(string(t.Symbol), strings.ToUpper(filterSymbol)) {
			continue
		}
		rows = append(rows, tokenRow{
			Symbol:  string(t.Symbol),
			Name:    t.Name,
			Address: t.Address.Hex(),
			Quote:   t.Symbol == token.BUSD,
		})
	}

	if showBalances && len(rows) > 0 {
		loadBalances(cmd, rows)
	}

	// Output
	if jsonOutput {
		printJSON(rows)
		return
	}
	displayTokens(rows)
}

func loadBalances(cmd *cobra.Command, rows []tokenRow) {
	ctx, cancel := commandContext()
	defer cancel()

	rt, err := setup(cmd, true)
	if err != nil {
		exit(err)
	}
	defer rt.close()

	account := rt.connect(ctx)

	rt.terminal.Status("Fetching balances...")
	rt.terminal.Show()
	defer rt.terminal.Hide()

	for i := range rows {
		item, _ := token.Parse(rows[i].Symbol)
		balance, err := rt.client.BalanceOf(ctx, token.Address(item), account)
		if err != nil {
			rt.log.Warn("[loadBalances][BalanceOf]", map[string]string{
				"token": rows[i].Symbol,
				"error": err.Error(),
			})
		}
		rows[i].Balance = formatBalance(balance, err)
	}
}

func displayTokens(rows []tokenRow) {
	if len(rows) == 0 {
		fmt.Println("\nNo tokens found matching the criteria.")
		return
	}

	fmt.Println("\n" + strings.Repeat("=", 90))
	color.Green("                            SUPPORTED TOKENS")
	fmt.Println(strings.Repeat("=", 90) + "\n")

	for _, r := range rows {
		symbol := color.YellowString("%-6s", r.Symbol)
		if r.Quote {
			symbol = color.CyanString("%-6s", r.Symbol)
		}
		line := fmt.Sprintf("  %s  %-18s  %s", symbol, r.Name, color.HiBlackString(r.Address))
		if r.Balance != "" {
			line += "  " + r.Balance
		}
		fmt.Println(line)
	}

	fmt.Println("\n" + strings.Repeat("=", 90))
	fmt.Printf("\nTotal: %d tokens, %d decimals each. Every pool is quoted in %s.\n\n", len(rows), token.Decimals, token.BUSD)
}
