package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"guild-swap/pkg/token"
)

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect the configured wallet and show its account",
	Long: `Unlock the configured wallet (private key or keystore) and print the
active account together with its BUSD balance.

Examples:
  guild-swap connect
  GUILD_SWAP_WALLET_KEYSTORE_DIR=~/.keys guild-swap connect`,
	Args: cobra.NoArgs,
	Run:  runConnect,
}

func init() {
	rootCmd.AddCommand(connectCmd)
}

func runConnect(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	rt, err := setup(cmd, true)
	if err != nil {
		exit(err)
	}
	defer rt.close()

	account := rt.connect(ctx)

	balance, err := rt.client.BalanceOf(ctx, token.Address(token.BUSD), account)
	if err != nil {
		rt.log.Warn("[runConnect][BalanceOf]", map[string]string{"error": err.Error()})
	}
	busd := formatBalance(balance, err)

	if rt.jsonOutput {
		rt.printJSON(map[string]string{
			"address":      account.Hex(),
			"busd_balance": busd,
		})
		return
	}

	printSuccess("✓ Wallet connected")
	fmt.Printf("  Address:      %s\n", color.CyanString(account.Hex()))
	fmt.Printf("  BUSD balance: %s\n\n", busd)
}
