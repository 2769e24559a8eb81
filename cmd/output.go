package cmd

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/fatih/color"

	"guild-swap/pkg/chain"
	"guild-swap/pkg/journal"
	"guild-swap/pkg/pricing"
	"guild-swap/pkg/token"
	"guild-swap/pkg/types"
)

func summarize(kind string, rcpt *chain.Receipt) types.TxSummary {
	summary := types.TxSummary{Kind: kind, Status: string(journal.StatusFailed)}
	if rcpt == nil {
		return summary
	}
	summary.TxHash = rcpt.TxHash.Hex()
	summary.BlockNumber = rcpt.BlockNumber
	if rcpt.Success {
		summary.Status = string(journal.StatusConfirmed)
	}
	return summary
}

func displaySummaries(summaries []types.TxSummary) {
	for _, s := range summaries {
		fmt.Printf("  %-14s %s  block %d  %s\n", s.Kind, color.HiBlackString(s.TxHash), s.BlockNumber, coloredStatus(s.Status))
	}
	fmt.Println()
}

func coloredStatus(status string) string {
	status = strings.ToUpper(status)

	switch status {
	case "CONFIRMED", "SUCCESS":
		return color.GreenString(status)
	case "PENDING":
		return color.YellowString(status)
	case "FAILED", "REVERTED":
		return color.RedString(status)
	default:
		return status
	}
}

// formatBalance renders a token balance, or "?" when it could not be read
func formatBalance(balance *big.Int, err error) string {
	if err != nil || balance == nil {
		return "?"
	}
	return pricing.FromBaseUnits(balance, token.Decimals).String()
}
