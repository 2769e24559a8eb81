package exchange

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"guild-swap/pkg/chain"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) GetPair(ctx context.Context, tok common.Address) (*chain.Pair, error) {
	args := m.Called(ctx, tok)
	pair, _ := args.Get(0).(*chain.Pair)
	return pair, args.Error(1)
}

func (m *mockClient) GetOwnerPools(ctx context.Context, owner, tok common.Address) (*chain.Position, error) {
	args := m.Called(ctx, owner, tok)
	pos, _ := args.Get(0).(*chain.Position)
	return pos, args.Error(1)
}

func (m *mockClient) BalanceOf(ctx context.Context, tok, owner common.Address) (*big.Int, error) {
	args := m.Called(ctx, tok, owner)
	balance, _ := args.Get(0).(*big.Int)
	return balance, args.Error(1)
}

func (m *mockClient) Approve(ctx context.Context, opts *bind.TransactOpts, tok common.Address, amount *big.Int) (*chain.Receipt, error) {
	args := m.Called(ctx, opts, tok, amount)
	rcpt, _ := args.Get(0).(*chain.Receipt)
	return rcpt, args.Error(1)
}

func (m *mockClient) Swap(ctx context.Context, opts *bind.TransactOpts, tokenIn, tokenOut common.Address, amount *big.Int) (*chain.Receipt, error) {
	args := m.Called(ctx, opts, tokenIn, tokenOut, amount)
	rcpt, _ := args.Get(0).(*chain.Receipt)
	return rcpt, args.Error(1)
}

func (m *mockClient) AddLiquidity(ctx context.Context, opts *bind.TransactOpts, tokenA, tokenB common.Address, amountA, amountB *big.Int) (*chain.Receipt, error) {
	args := m.Called(ctx, opts, tokenA, tokenB, amountA, amountB)
	rcpt, _ := args.Get(0).(*chain.Receipt)
	return rcpt, args.Error(1)
}

func (m *mockClient) CreatePair(ctx context.Context, opts *bind.TransactOpts, tokenA, tokenB common.Address, amountA, amountB *big.Int) (*chain.Receipt, error) {
	args := m.Called(ctx, opts, tokenA, tokenB, amountA, amountB)
	rcpt, _ := args.Get(0).(*chain.Receipt)
	return rcpt, args.Error(1)
}

func (m *mockClient) TransactionInfo(ctx context.Context, hash common.Hash) (*chain.TxInfo, error) {
	args := m.Called(ctx, hash)
	info, _ := args.Get(0).(*chain.TxInfo)
	return info, args.Error(1)
}

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	args := m.Called(ctx)
	accounts, _ := args.Get(0).([]common.Address)
	return accounts, args.Error(1)
}

func (m *mockProvider) Transactor(ctx context.Context, account common.Address) (*bind.TransactOpts, error) {
	args := m.Called(ctx, account)
	opts, _ := args.Get(0).(*bind.TransactOpts)
	return opts, args.Error(1)
}

type recordingNotifier struct {
	alerts []string
	infos  []string
}

func (n *recordingNotifier) Alert(message string) { n.alerts = append(n.alerts, message) }

func (n *recordingNotifier) Info(message string) { n.infos = append(n.infos, message) }

type countingLoader struct {
	shows int
	hides int
}

func (l *countingLoader) Show() { l.shows++ }

func (l *countingLoader) Hide() { l.hides++ }

// units returns n whole tokens in base units
func units(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1e18))
}

func sameAmount(want *big.Int) any {
	return mock.MatchedBy(func(got *big.Int) bool {
		return got != nil && got.Cmp(want) == 0
	})
}

func receipt(hash string, block uint64) *chain.Receipt {
	return &chain.Receipt{TxHash: common.HexToHash(hash), BlockNumber: block, Success: true}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.String())
}
