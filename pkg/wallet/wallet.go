// Package wallet provides the account access and transaction signing that a
// browser wallet would otherwise supply.
package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ErrRejected is returned when the user declines an account or signature request
var ErrRejected = errors.New("user rejected the request")

// Provider hands out accounts and signing options for them
type Provider interface {
	// RequestAccounts asks for account access. The first address is the active account.
	RequestAccounts(ctx context.Context) ([]common.Address, error)
	// Transactor returns transaction options that sign as account
	Transactor(ctx context.Context, account common.Address) (*bind.TransactOpts, error)
}

// ConfirmFunc is consulted before every signature; returning false rejects it
type ConfirmFunc func(tx *types.Transaction) bool

// Session is the connected wallet as seen by the user interface
type Session struct {
	Address string
	Loading bool
}

// Connected reports whether an account has been granted
func (s Session) Connected() bool {
	return s.Address != ""
}

// Account returns the connected address
func (s Session) Account() (common.Address, error) {
	if !s.Connected() {
		return common.Address{}, fmt.Errorf("wallet not connected")
	}
	if !common.IsHexAddress(s.Address) {
		return common.Address{}, fmt.Errorf("invalid wallet address: %s", s.Address)
	}
	return common.HexToAddress(s.Address), nil
}

// gate wraps signer so every signature passes through confirm first
func gate(signer bind.SignerFn, confirm ConfirmFunc) bind.SignerFn {
	if confirm == nil {
		return signer
	}
	return func(addr common.Address, tx *types.Transaction) (*types.Transaction, error) {
		if !confirm(tx) {
			return nil, fmt.Errorf("%w: transaction signature denied", ErrRejected)
		}
		return signer(addr, tx)
	}
}
