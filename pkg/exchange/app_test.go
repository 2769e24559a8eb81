package exchange

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"guild-swap/pkg/chain"
	"guild-swap/pkg/journal"
	"guild-swap/pkg/logger"
	"guild-swap/pkg/token"
	"guild-swap/pkg/wallet"
)

var testAccount = common.HexToAddress("0x8844fcde9037a54a8E48c5a6fd1728C31661BE3A")

type testHarness struct {
	app      *App
	client   *mockClient
	provider *mockProvider
	notifier *recordingNotifier
	loader   *countingLoader
	journal  *journal.Storage
}

func newHarness(t *testing.T) *testHarness {
	t.Helper()

	store, err := journal.NewStorage(filepath.Join(t.TempDir(), "history.json"))
	require.NoError(t, err)

	h := &testHarness{
		client:   &mockClient{},
		provider: &mockProvider{},
		notifier: &recordingNotifier{},
		loader:   &countingLoader{},
		journal:  store,
	}
	h.app, err = New(Options{
		Client:   h.client,
		Wallet:   h.provider,
		Notifier: h.notifier,
		Loader:   h.loader,
		Journal:  store,
		Logger:   logger.New(logger.Test, "debug"),
	})
	require.NoError(t, err)
	return h
}

// connect grants testAccount and sets up signing for it
func (h *testHarness) connect(t *testing.T) *bind.TransactOpts {
	t.Helper()

	opts := &bind.TransactOpts{From: testAccount}
	h.provider.On("RequestAccounts", mock.Anything).Return([]common.Address{testAccount}, nil).Once()
	h.provider.On("Transactor", mock.Anything, testAccount).Return(opts, nil).Maybe()
	require.NoError(t, h.app.ConnectWallet(context.Background()))
	return opts
}

// quote makes getPair return the given whole token reserves for item
func (h *testHarness) quote(item token.Item, reserveA, reserveB int64) {
	h.client.On("GetPair", mock.Anything, token.Address(item)).
		Return(&chain.Pair{ReserveA: units(reserveA), ReserveB: units(reserveB)}, nil)
}

func TestNew(t *testing.T) {
	_, err := New(Options{Wallet: &mockProvider{}})
	assert.Error(t, err)

	_, err = New(Options{Client: &mockClient{}})
	assert.Error(t, err)

	app, err := New(Options{Client: &mockClient{}, Wallet: &mockProvider{}})
	require.NoError(t, err)
	assert.Equal(t, TabSwap, app.Tab())
	assert.Equal(t, token.BUSD, app.Swap().Source)
	assert.Equal(t, token.PLANT, app.Swap().Dest)
	assert.False(t, app.Session().Connected())
}

func TestConnectWallet(t *testing.T) {
	t.Run("stores first account", func(t *testing.T) {
		h := newHarness(t)
		other := common.HexToAddress("0x0000000000000000000000000000000000000001")
		h.provider.On("RequestAccounts", mock.Anything).Return([]common.Address{testAccount, other}, nil)

		require.NoError(t, h.app.ConnectWallet(context.Background()))
		assert.Equal(t, testAccount.Hex(), h.app.Session().Address)
		assert.False(t, h.app.Loading())
		assert.Equal(t, 1, h.loader.shows)
		assert.Equal(t, 1, h.loader.hides)
		assert.Empty(t, h.notifier.alerts)
	})

	t.Run("rejected", func(t *testing.T) {
		h := newHarness(t)
		rejection := fmt.Errorf("%w: User denied account authorization", wallet.ErrRejected)
		h.provider.On("RequestAccounts", mock.Anything).Return(nil, rejection)

		err := h.app.ConnectWallet(context.Background())
		require.Error(t, err)
		assert.Equal(t, KindUserRejected, KindOf(err))
		assert.Equal(t, "", h.app.Session().Address)
		assert.Equal(t, []string{rejection.Error()}, h.notifier.alerts)
		assert.False(t, h.app.Loading())
	})

	t.Run("no accounts", func(t *testing.T) {
		h := newHarness(t)
		h.provider.On("RequestAccounts", mock.Anything).Return([]common.Address{}, nil)

		err := h.app.ConnectWallet(context.Background())
		assert.Equal(t, KindUserRejected, KindOf(err))
		assert.False(t, h.app.Session().Connected())
	})
}

func TestRefreshPrice(t *testing.T) {
	h := newHarness(t)
	h.quote(token.PLANT, 5, 1)

	quote, err := h.app.RefreshPrice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "5", quote.Price)
	assert.Equal(t, "BUSD", quote.SourceToken)
	assert.Equal(t, "PLANT", quote.DestToken)
	assertDecimal(t, "5", h.app.Swap().Price)

	h.app.SetFromAmount(decimal.NewFromInt(10))
	assertDecimal(t, "2", h.app.Swap().ToAmount)

	h.app.SetToAmount(decimal.NewFromInt(3))
	assertDecimal(t, "15", h.app.Swap().FromAmount)
}

func TestRefreshPrice_ReverseDirection(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.app.SetPair(token.UNI, token.BUSD))
	h.quote(token.UNI, 10, 2)

	_, err := h.app.RefreshPrice(context.Background())
	require.NoError(t, err)
	assertDecimal(t, "0.2", h.app.Swap().Price)

	h.app.SetFromAmount(decimal.NewFromInt(1))
	assertDecimal(t, "5", h.app.Swap().ToAmount)
}

func TestRefreshPrice_FailureKeepsPrice(t *testing.T) {
	h := newHarness(t)
	h.client.On("GetPair", mock.Anything, token.Address(token.PLANT)).
		Return(&chain.Pair{ReserveA: units(4), ReserveB: units(2)}, nil).Once()
	h.client.On("GetPair", mock.Anything, token.Address(token.PLANT)).
		Return(nil, errors.New("dial tcp: connection refused")).Once()

	_, err := h.app.RefreshPrice(context.Background())
	require.NoError(t, err)

	_, err = h.app.RefreshPrice(context.Background())
	require.Error(t, err)
	assert.Equal(t, KindOnChain, KindOf(err))
	assertDecimal(t, "2", h.app.Swap().Price)
}

func TestSetPair(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, KindValidation, KindOf(h.app.SetPair(token.BUSD, token.BUSD)))
	assert.Equal(t, KindValidation, KindOf(h.app.SetPair(token.UNI, token.YGG)))
	assert.Equal(t, KindValidation, KindOf(h.app.SetPair(token.BUSD, token.Item("DOGE"))))

	require.NoError(t, h.app.SetPair(token.BUSD, token.AXS))
	assert.Equal(t, token.AXS, h.app.Swap().Dest)
}

func TestSetAmounts_ZeroPrice(t *testing.T) {
	h := newHarness(t)

	h.app.SetFromAmount(decimal.NewFromInt(10))
	assert.True(t, h.app.Swap().ToAmount.IsZero())
}

func TestSubmitSwap(t *testing.T) {
	h := newHarness(t)
	opts := h.connect(t)
	h.quote(token.PLANT, 5, 1)
	_, err := h.app.RefreshPrice(context.Background())
	require.NoError(t, err)
	h.app.SetFromAmount(decimal.NewFromInt(10))

	var order []string
	h.client.On("Approve", mock.Anything, opts, token.Address(token.BUSD), sameAmount(units(10))).
		Run(func(mock.Arguments) { order = append(order, "approve") }).
		Return(receipt("0x01", 7), nil).Once()
	h.client.On("Swap", mock.Anything, opts, token.Address(token.BUSD), token.Address(token.PLANT), sameAmount(units(10))).
		Run(func(mock.Arguments) { order = append(order, "swap") }).
		Return(receipt("0x02", 8), nil).Once()

	result, err := h.app.SubmitSwap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"approve", "swap"}, order)
	assert.Equal(t, uint64(8), result.Swap.BlockNumber)

	assert.True(t, h.app.Swap().FromAmount.IsZero())
	assert.True(t, h.app.Swap().ToAmount.IsZero())
	assert.False(t, h.app.Loading())
	assert.Empty(t, h.notifier.alerts)
	assert.Equal(t, []string{"BUSD approved, sending swap"}, h.notifier.infos)
	h.client.AssertExpectations(t)

	records := h.journal.List()
	require.Len(t, records, 2)
	kinds := []journal.Kind{records[0].Kind, records[1].Kind}
	assert.ElementsMatch(t, []journal.Kind{journal.KindApprove, journal.KindSwap}, kinds)

	swapRec, err := h.journal.FindByHash(result.Swap.TxHash.Hex())
	require.NoError(t, err)
	assert.Equal(t, journal.StatusConfirmed, swapRec.Status)
	assert.Equal(t, "10", swapRec.AmountA)
	assert.Equal(t, "2", swapRec.AmountB)
}

func TestSubmitSwap_ZeroAmountCallsNothing(t *testing.T) {
	for _, tc := range []struct {
		name string
		from int64
		to   int64
	}{
		{name: "both zero"},
		{name: "destination zero", from: 10},
		{name: "source zero", to: 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			h.connect(t)
			h.app.swap.FromAmount = decimal.NewFromInt(tc.from)
			h.app.swap.ToAmount = decimal.NewFromInt(tc.to)

			_, err := h.app.SubmitSwap(context.Background())
			require.Error(t, err)
			assert.Equal(t, KindValidation, KindOf(err))
			assert.Len(t, h.notifier.alerts, 1)

			h.client.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			h.client.AssertNotCalled(t, "Swap", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			h.provider.AssertNotCalled(t, "Transactor", mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitSwap_NotConnected(t *testing.T) {
	h := newHarness(t)
	h.app.swap.FromAmount = decimal.NewFromInt(10)
	h.app.swap.ToAmount = decimal.NewFromInt(2)

	_, err := h.app.SubmitSwap(context.Background())
	assert.Equal(t, KindValidation, KindOf(err))
	h.client.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitSwap_ApproveFailureSkipsSwap(t *testing.T) {
	h := newHarness(t)
	h.connect(t)
	h.quote(token.PLANT, 5, 1)
	_, err := h.app.RefreshPrice(context.Background())
	require.NoError(t, err)
	h.app.SetFromAmount(decimal.NewFromInt(10))

	h.client.On("Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(receipt("0x0a", 3), fmt.Errorf("approve: %w", chain.ErrReverted))

	_, err = h.app.SubmitSwap(context.Background())
	require.Error(t, err)
	assert.Equal(t, KindOnChain, KindOf(err))
	assert.ErrorIs(t, err, chain.ErrReverted)

	h.client.AssertNotCalled(t, "Swap", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.False(t, h.app.Loading())
	assert.True(t, h.app.Swap().FromAmount.IsZero())
	assert.True(t, h.app.Swap().ToAmount.IsZero())
	assert.Len(t, h.notifier.alerts, 1)
	assert.Empty(t, h.notifier.infos)

	rec, err := h.journal.FindByHash(common.HexToHash("0x0a").Hex())
	require.NoError(t, err)
	assert.Equal(t, journal.StatusFailed, rec.Status)
	assert.Equal(t, chain.ErrReverted.Error(), rec.ErrorMessage)
}

func TestSubmitSwap_SignatureRejected(t *testing.T) {
	h := newHarness(t)
	h.connect(t)
	h.app.swap.Price = decimal.NewFromInt(5)
	h.app.SetFromAmount(decimal.NewFromInt(10))

	h.client.On("Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: transaction signature denied", wallet.ErrRejected))

	_, err := h.app.SubmitSwap(context.Background())
	assert.Equal(t, KindUserRejected, KindOf(err))
	assert.Equal(t, 0, h.journal.Count())
	assert.False(t, h.app.Loading())
}

func TestSubmitSwap_SwapFailureAfterApproval(t *testing.T) {
	h := newHarness(t)
	h.connect(t)
	h.app.swap.Price = decimal.NewFromInt(5)
	h.app.SetFromAmount(decimal.NewFromInt(10))

	h.client.On("Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(receipt("0x01", 1), nil)
	h.client.On("Swap", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("insufficient funds for gas"))

	_, err := h.app.SubmitSwap(context.Background())
	require.Error(t, err)
	assert.Equal(t, KindOnChain, KindOf(err))
	assert.False(t, h.app.Loading())
	assert.True(t, h.app.Swap().FromAmount.IsZero())
	assert.True(t, h.app.Swap().ToAmount.IsZero())
	// the spent approval stays on record
	assert.Equal(t, 1, h.journal.Count())
}

func TestPrimaryAction(t *testing.T) {
	h := newHarness(t)
	h.provider.On("RequestAccounts", mock.Anything).Return([]common.Address{testAccount}, nil).Once()

	require.NoError(t, h.app.PrimaryAction(context.Background()))
	assert.True(t, h.app.Session().Connected())

	// connected: the same action now submits, which fails validation on an empty form
	err := h.app.PrimaryAction(context.Background())
	assert.Equal(t, KindValidation, KindOf(err))
	h.provider.AssertNumberOfCalls(t, "RequestAccounts", 1)
}

func TestListPositions(t *testing.T) {
	h := newHarness(t)
	h.connect(t)

	for _, item := range token.Selectable() {
		pos := &chain.Position{AmountA: units(0), AmountB: units(0)}
		if item == token.UNI {
			pos = &chain.Position{AmountA: units(2), AmountB: units(10)}
		}
		h.client.On("GetOwnerPools", mock.Anything, testAccount, token.Address(item)).Return(pos, nil)
	}

	positions, err := h.app.ListPositions(context.Background())
	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Equal(t, token.UNI, positions[0].Token)
	assertDecimal(t, "2", positions[0].Amount)
	assertDecimal(t, "10", positions[0].BUSD)
	assert.True(t, strings.HasPrefix(positions[0].PoolTokens.String(), "4.4721"))
	assert.Equal(t, positions, h.app.Positions())
}

func TestListPositions_NotConnected(t *testing.T) {
	h := newHarness(t)

	_, err := h.app.ListPositions(context.Background())
	assert.Equal(t, KindValidation, KindOf(err))
	h.client.AssertNotCalled(t, "GetOwnerPools", mock.Anything, mock.Anything, mock.Anything)
}

func TestNavigation(t *testing.T) {
	h := newHarness(t)
	h.connect(t)
	h.client.On("GetOwnerPools", mock.Anything, mock.Anything, mock.Anything).
		Return(&chain.Position{}, nil)

	h.app.OpenPage(PageCreatePairs)
	assert.Equal(t, TabPool, h.app.Tab())
	assert.Equal(t, PageCreatePairs, h.app.Page())
	assert.Equal(t, ModeCreatePair, h.app.Liquidity().Mode())

	require.NoError(t, h.app.GoBack(context.Background(), false))
	assert.Equal(t, PageLiquidity, h.app.Page())
	h.client.AssertNotCalled(t, "GetOwnerPools", mock.Anything, mock.Anything, mock.Anything)

	h.app.OpenPage(PageCreatePairs)
	require.NoError(t, h.app.GoBack(context.Background(), true))
	h.client.AssertNumberOfCalls(t, "GetOwnerPools", len(token.Selectable()))

	h.app.OpenPage(PageAddLiquidity)
	assert.Equal(t, ModeAddLiquidity, h.app.Liquidity().Mode())

	h.app.SelectTab(TabSwap)
	assert.Equal(t, TabSwap, h.app.Tab())
}
