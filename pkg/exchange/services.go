package exchange

import (
	"errors"

	"guild-swap/pkg/chain"
	"guild-swap/pkg/journal"
	"guild-swap/pkg/logger"
	"guild-swap/pkg/wallet"
)

// Journal records submitted transactions
type Journal interface {
	Add(rec *journal.Record) error
}

// services is what the shell and its sub-forms share
type services struct {
	client   chain.Client
	provider wallet.Provider
	notifier Notifier
	journal  Journal
	logger   *logger.Logger
}

// fail logs err, surfaces it through the notifier and returns it classified
func (s *services) fail(op string, err error) error {
	e := classify(op, err)
	s.logger.Error("["+op+"]", map[string]string{
		"kind":  e.Kind.String(),
		"error": e.Err.Error(),
	})
	s.notifier.Alert(e.Err.Error())
	return e
}

// entry is one transaction to be journaled
type entry struct {
	kind    journal.Kind
	account string
	tokenA  string
	tokenB  string
	amountA string
	amountB string
}

// record journals a sent transaction. Calls that never reached the chain are skipped.
func (s *services) record(e entry, rcpt *chain.Receipt, err error) {
	if s.journal == nil || (rcpt == nil && err != nil) {
		return
	}

	rec := &journal.Record{
		Kind:    e.kind,
		Account: e.account,
		TokenA:  e.tokenA,
		TokenB:  e.tokenB,
		AmountA: e.amountA,
		AmountB: e.amountB,
		Status:  journal.StatusConfirmed,
	}
	if rcpt != nil {
		rec.TxHash = rcpt.TxHash.Hex()
		rec.BlockNumber = rcpt.BlockNumber
	}
	if err != nil {
		rec.Status = journal.StatusFailed
		rec.ErrorMessage = err.Error()
		if errors.Is(err, chain.ErrReverted) {
			rec.ErrorMessage = chain.ErrReverted.Error()
		}
	}

	if jerr := s.journal.Add(rec); jerr != nil {
		s.logger.Warn("[record][Add]", map[string]string{
			"kind":  string(e.kind),
			"error": jerr.Error(),
		})
	}
}
