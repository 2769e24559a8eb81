package cmd

import (
	"bufio"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/fatih/color"

	"guild-swap/pkg/pricing"
	"guild-swap/pkg/token"
)

// terminal renders the exchange's loading indicator, alerts and wallet
// confirmations on the console
type terminal struct {
	spinner *spinner.Spinner
	quiet   bool
}

func newTerminal(quiet bool) *terminal {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " Waiting for the chain..."
	return &terminal{spinner: s, quiet: quiet}
}

// Show starts the spinner
func (t *terminal) Show() {
	if t.quiet {
		return
	}
	t.spinner.Start()
}

// Hide stops the spinner
func (t *terminal) Hide() {
	t.spinner.Stop()
}

// Status changes the spinner text
func (t *terminal) Status(message string) {
	t.spinner.Lock()
	t.spinner.Suffix = " " + message
	t.spinner.Unlock()
}

func (t *terminal) Alert(message string) {
	t.spinner.Stop()
	fmt.Fprintf(os.Stderr, "\n%s %s\n", color.RedString("✗"), message)
}

func (t *terminal) Info(message string) {
	if t.quiet {
		return
	}
	restart := t.pause()
	defer restart()
	fmt.Fprintf(os.Stderr, "%s %s\n", color.CyanString("ℹ"), message)
}

// pause stops the spinner and returns a func that restarts it if it was running
func (t *terminal) pause() func() {
	active := t.spinner.Active()
	t.spinner.Stop()
	return func() {
		if active {
			t.spinner.Start()
		}
	}
}

// ConfirmTransaction is the wallet prompt shown before every signature
func (t *terminal) ConfirmTransaction(tx *types.Transaction) bool {
	restart := t.pause()
	defer restart()

	fmt.Fprintln(os.Stderr, "\n"+strings.Repeat("-", 60))
	color.New(color.FgYellow).Fprintln(os.Stderr, "  SIGNATURE REQUEST")
	fmt.Fprintf(os.Stderr, "  To:        %s\n", describeAddress(tx))
	fmt.Fprintf(os.Stderr, "  Nonce:     %d\n", tx.Nonce())
	fmt.Fprintf(os.Stderr, "  Gas limit: %d\n", tx.Gas())
	if price := tx.GasPrice(); price != nil {
		fee := new(big.Int).Mul(price, new(big.Int).SetUint64(tx.Gas()))
		fmt.Fprintf(os.Stderr, "  Max fee:   %s BNB\n", pricing.FromBaseUnits(fee, token.Decimals).String())
	}
	fmt.Fprintln(os.Stderr, strings.Repeat("-", 60))

	return confirm("Confirm transaction?")
}

func describeAddress(tx *types.Transaction) string {
	if tx.To() == nil {
		return "contract creation"
	}
	to := *tx.To()
	for _, tok := range token.All() {
		if tok.Address == to {
			return fmt.Sprintf("%s (%s)", to.Hex(), tok.Symbol)
		}
	}
	return to.Hex()
}

// stdin is shared by every prompt so piped answers are not lost between them
var stdin = bufio.NewReader(os.Stdin)

func confirm(question string) bool {
	return ask(stdin, question)
}

func ask(reader *bufio.Reader, question string) bool {
	fmt.Fprintf(os.Stderr, "\n%s (y/N): ", question)

	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
