package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"guild-swap/config"
	"guild-swap/pkg/journal"
)

var (
	historyLimit int
	historyKind  string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the transactions submitted from this machine",
	Long: `List recorded approvals, swaps and deposits, newest first.

Examples:
  guild-swap history
  guild-swap history --limit 5
  guild-swap history --kind swap`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of records to show (0 for all)")
	historyCmd.Flags().StringVar(&historyKind, "kind", "", "Only show approve, swap, add_liquidity or create_pair")
}

func runHistory(cmd *cobra.Command, args []string) {
	configFile, _ := cmd.Flags().GetString("config")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := config.Load(configFile)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	store, err := journal.NewStorage(cfg.JournalPath)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	var records []*journal.Record
	for _, rec := range store.List() {
		if historyKind != "" && !strings.EqualFold(string(rec.Kind), historyKind) {
			continue
		}
		records = append(records, rec)
		if historyLimit > 0 && len(records) == historyLimit {
			break
		}
	}

	if jsonOutput {
		printJSON(records)
		return
	}

	if len(records) == 0 {
		fmt.Println("\nNo transactions recorded yet.")
		return
	}

	fmt.Println("\n" + strings.Repeat("=", 100))
	color.Green("                                    TRANSACTION HISTORY")
	fmt.Println(strings.Repeat("=", 100) + "\n")

	for _, rec := range records {
		pair := fmt.Sprintf("%s %s", rec.AmountA, rec.TokenA)
		if rec.TokenB != "" {
			pair += fmt.Sprintf(" / %s %s", rec.AmountB, rec.TokenB)
		}
		fmt.Printf("  %s  %-14s %-34s %s\n",
			rec.Created.Format("2006-01-02 15:04"),
			rec.Kind,
			pair,
			coloredStatus(string(rec.Status)))
		if rec.TxHash != "" {
			fmt.Printf("  %s\n", color.HiBlackString(rec.TxHash))
		}
		if rec.ErrorMessage != "" {
			fmt.Printf("  %s\n", color.RedString(rec.ErrorMessage))
		}
	}

	fmt.Println("\n" + strings.Repeat("=", 100))
	fmt.Printf("\nShowing %d of %d records from %s\n\n", len(records), store.Count(), store.GetFilePath())
}
