// Package chain talks to the GuildSwap exchange contract and the BEP20 tokens
// it trades.
package chain

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// ErrReverted is returned when a transaction was mined but failed on chain
var ErrReverted = errors.New("transaction reverted")

// Pair holds the reserves of a pool as returned by getPair
type Pair struct {
	ReserveA *big.Int // quote token reserve
	ReserveB *big.Int // paired token reserve
}

// Position holds the amounts an owner has pooled for one token pair
type Position struct {
	AmountA *big.Int
	AmountB *big.Int
}

// Receipt summarizes a mined transaction
type Receipt struct {
	TxHash      common.Hash
	BlockNumber uint64
	GasUsed     uint64
	Success     bool
}

// TxInfo describes a transaction looked up by hash
type TxInfo struct {
	Hash        string
	Nonce       uint64
	GasPrice    string
	GasLimit    uint64
	To          string
	Value       string
	Pending     bool
	HasReceipt  bool
	BlockNumber uint64
	GasUsed     uint64
	Status      uint64
}

// Client is every chain read and write the exchange front end performs.
// Write methods block until the transaction is mined.
type Client interface {
	GetPair(ctx context.Context, token common.Address) (*Pair, error)
	GetOwnerPools(ctx context.Context, owner, token common.Address) (*Position, error)
	BalanceOf(ctx context.Context, token, owner common.Address) (*big.Int, error)

	Approve(ctx context.Context, opts *bind.TransactOpts, token common.Address, amount *big.Int) (*Receipt, error)
	Swap(ctx context.Context, opts *bind.TransactOpts, tokenIn, tokenOut common.Address, amount *big.Int) (*Receipt, error)
	AddLiquidity(ctx context.Context, opts *bind.TransactOpts, tokenA, tokenB common.Address, amountA, amountB *big.Int) (*Receipt, error)
	CreatePair(ctx context.Context, opts *bind.TransactOpts, tokenA, tokenB common.Address, amountA, amountB *big.Int) (*Receipt, error)

	TransactionInfo(ctx context.Context, hash common.Hash) (*TxInfo, error)
}
