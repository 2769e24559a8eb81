package cmd

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"guild-swap/pkg/chain"
	"guild-swap/pkg/journal"
)

var (
	watchStatus   bool
	watchInterval int
)

var txHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

var statusCmd = &cobra.Command{
	Use:   "status <tx-hash>",
	Short: "Check the status of a submitted transaction",
	Long: `Look up an approval, swap or deposit transaction by its hash. A mined
result is written back to the local history.

Examples:
  guild-swap status 0x5c50...e1f2
  guild-swap status 0x5c50...e1f2 --watch
  guild-swap status 0x5c50...e1f2 --watch --interval 10`,
	Args: cobra.ExactArgs(1),
	Run:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().BoolVarP(&watchStatus, "watch", "w", false, "Watch until the transaction is mined")
	statusCmd.Flags().IntVar(&watchInterval, "interval", 5, "Polling interval in seconds (when watching)")
}

func runStatus(cmd *cobra.Command, args []string) {
	if !txHashPattern.MatchString(args[0]) {
		printError(fmt.Errorf("invalid transaction hash: %s", args[0]))
		os.Exit(2)
	}
	hash := common.HexToHash(args[0])
	interval, err := pollInterval(watchInterval)
	if watchStatus && err != nil {
		printError(err)
		os.Exit(2)
	}

	ctx, cancel := commandContext()
	defer cancel()

	rt, err := setup(cmd, false)
	if err != nil {
		exit(err)
	}
	defer rt.close()

	if watchStatus {
		watchTransaction(ctx, rt, hash, interval)
	} else {
		checkTransaction(ctx, rt, hash)
	}
}

func checkTransaction(ctx context.Context, rt *runtime, hash common.Hash) {
	rt.terminal.Status("Checking transaction status...")
	rt.terminal.Show()
	info, err := rt.client.TransactionInfo(ctx, hash)
	rt.terminal.Hide()

	if err != nil {
		printError(err)
		rt.close()
		os.Exit(1)
	}
	rec := syncJournal(rt, info)

	if rt.jsonOutput {
		rt.printJSON(map[string]any{
			"transaction": info,
			"record":      rec,
		})
		return
	}
	displayStatus(info, rec)
}

func watchTransaction(ctx context.Context, rt *runtime, hash common.Hash, interval time.Duration) {
	if rt.jsonOutput {
		fmt.Println(`{"error": "watch mode not supported with JSON output"}`)
		return
	}

	fmt.Printf("\nWatching transaction %s\n", color.CyanString(hash.Hex()))
	fmt.Printf("Checking every %d seconds. Press Ctrl+C to stop.\n", watchInterval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		info, err := rt.client.TransactionInfo(ctx, hash)
		if err != nil {
			color.Red("Error: %v", err)
		} else {
			rec := syncJournal(rt, info)
			displayStatus(info, rec)
			if info.HasReceipt {
				return
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// syncJournal stores a mined outcome on the matching history record
func syncJournal(rt *runtime, info *chain.TxInfo) *journal.Record {
	rec, err := rt.journal.FindByHash(info.Hash)
	if err != nil {
		return nil
	}
	if !info.HasReceipt {
		return rec
	}

	status, message := journal.StatusConfirmed, ""
	if info.Status == 0 {
		status, message = journal.StatusFailed, chain.ErrReverted.Error()
	}
	if rec.Status != status || rec.BlockNumber != info.BlockNumber {
		if err := rt.journal.UpdateStatus(rec.ID, status, info.BlockNumber, message); err != nil {
			rt.log.Warn("[syncJournal][UpdateStatus]", map[string]string{
				"id":    rec.ID,
				"error": err.Error(),
			})
		}
	}
	return rec
}

func txStatus(info *chain.TxInfo) string {
	switch {
	case info.Pending || !info.HasReceipt:
		return "PENDING"
	case info.Status == 1:
		return "SUCCESS"
	default:
		return "REVERTED"
	}
}

func displayStatus(info *chain.TxInfo, rec *journal.Record) {
	fmt.Println("\n" + strings.Repeat("=", 70))
	color.Green("                      TRANSACTION STATUS")
	fmt.Println(strings.Repeat("=", 70))

	fmt.Printf("\n  Hash:            %s\n", color.CyanString(info.Hash))
	fmt.Printf("  Status:          %s\n", coloredStatus(txStatus(info)))
	fmt.Printf("  To:              %s\n", info.To)
	fmt.Printf("  Nonce:           %d\n", info.Nonce)
	fmt.Printf("  Gas limit:       %d\n", info.GasLimit)

	if info.HasReceipt {
		fmt.Printf("  Block:           %d\n", info.BlockNumber)
		fmt.Printf("  Gas used:        %d\n", info.GasUsed)
	}

	if rec != nil {
		fmt.Printf("  Action:          %s\n", rec.Kind)
		fmt.Printf("  Amount:          %s %s\n", rec.AmountA, rec.TokenA)
		if rec.TokenB != "" {
			fmt.Printf("  Paired with:     %s %s\n", rec.AmountB, rec.TokenB)
		}
		fmt.Printf("  Submitted:       %s\n", rec.Created.Format("2006-01-02 15:04:05"))
	}

	fmt.Println("\n" + strings.Repeat("=", 70) + "\n")
}
