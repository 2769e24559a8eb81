// Package exchange holds the front end state of the exchange: the swap form,
// the wallet session, the liquidity pages and the actions that drive them.
// It knows nothing about how it is rendered.
package exchange

import (
	"context"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"guild-swap/pkg/chain"
	"guild-swap/pkg/journal"
	"guild-swap/pkg/logger"
	"guild-swap/pkg/pricing"
	"guild-swap/pkg/token"
	"guild-swap/pkg/types"
	"guild-swap/pkg/wallet"
)

// Tab is the top level view
type Tab int

const (
	TabSwap Tab = iota
	TabPool
)

// Page is the active page of the pool tab
type Page int

const (
	PageLiquidity Page = iota
	PageAddLiquidity
	PageCreatePairs
)

// SwapForm is the state of the swap view
type SwapForm struct {
	Source     token.Item
	Dest       token.Item
	FromAmount decimal.Decimal
	ToAmount   decimal.Decimal
	// Price is source units per destination unit
	Price decimal.Decimal
}

// SwapResult holds the receipts of a completed swap
type SwapResult struct {
	Approve *chain.Receipt
	Swap    *chain.Receipt
}

// PoolPosition is one pool the connected account has liquidity in
type PoolPosition struct {
	Token      token.Item
	Amount     decimal.Decimal // paired token side
	BUSD       decimal.Decimal
	PoolTokens decimal.Decimal
}

// Options configures an App
type Options struct {
	Client   chain.Client
	Wallet   wallet.Provider
	Notifier Notifier
	Loader   Loader
	Journal  Journal
	Logger   *logger.Logger
}

// App is the application shell. It is not safe for concurrent use.
type App struct {
	services
	loader Loader

	tab       Tab
	page      Page
	session   wallet.Session
	swap      SwapForm
	liquidity *LiquidityForm
	positions []PoolPosition
}

// New creates the shell with the default BUSD to PLANT pair selected
func New(opts Options) (*App, error) {
	if opts.Client == nil {
		return nil, fmt.Errorf("chain client is required")
	}
	if opts.Wallet == nil {
		return nil, fmt.Errorf("wallet provider is required")
	}

	app := &App{
		services: services{
			client:   opts.Client,
			provider: opts.Wallet,
			notifier: opts.Notifier,
			journal:  opts.Journal,
			logger:   opts.Logger,
		},
		loader: opts.Loader,
		tab:    TabSwap,
		page:   PageLiquidity,
		swap:   SwapForm{Source: token.BUSD, Dest: token.PLANT},
	}
	if app.notifier == nil {
		app.notifier = nopNotifier{}
	}
	if app.loader == nil {
		app.loader = nopLoader{}
	}
	if app.logger == nil {
		app.logger = logger.Nop()
	}
	app.liquidity = newLiquidityForm(ModeAddLiquidity, &app.services, &app.session, app.showLoading, app.hideLoading)

	return app, nil
}

func (a *App) Tab() Tab { return a.tab }

func (a *App) Page() Page { return a.page }

func (a *App) Session() wallet.Session { return a.session }

func (a *App) Swap() SwapForm { return a.swap }

func (a *App) Liquidity() *LiquidityForm { return a.liquidity }

func (a *App) Positions() []PoolPosition { return a.positions }

// Loading reports whether a wallet or chain action is in flight
func (a *App) Loading() bool { return a.session.Loading }

func (a *App) SelectTab(tab Tab) { a.tab = tab }

func (a *App) showLoading() {
	a.session.Loading = true
	a.loader.Show()
}

func (a *App) hideLoading() {
	a.session.Loading = false
	a.loader.Hide()
}

// ConnectWallet requests account access and keeps the first account
func (a *App) ConnectWallet(ctx context.Context) error {
	a.showLoading()
	defer a.hideLoading()

	accounts, err := a.provider.RequestAccounts(ctx)
	if err != nil {
		return a.fail("ConnectWallet", err)
	}
	if len(accounts) == 0 {
		return a.fail("ConnectWallet", fmt.Errorf("%w: no accounts available", wallet.ErrRejected))
	}

	a.session.Address = accounts[0].Hex()
	a.logger.Info("[ConnectWallet][Connected]", map[string]string{
		"address": a.session.Address,
	})
	return nil
}

// SetPair selects the swap direction. One side must be BUSD.
func (a *App) SetPair(source, dest token.Item) error {
	if source == dest {
		return validationError("SetPair", "source and destination must differ")
	}
	paired := dest
	if source != token.BUSD {
		if dest != token.BUSD {
			return validationError("SetPair", "every pair is quoted in %s", token.BUSD)
		}
		paired = source
	}
	if !token.IsSelectable(paired) {
		return validationError("SetPair", "unsupported token: %s", paired)
	}

	if a.swap.Source != source || a.swap.Dest != dest {
		a.swap.Source = source
		a.swap.Dest = dest
		a.swap.Price = decimal.Zero
	}
	return nil
}

func (a *App) pairedToken() token.Item {
	if a.swap.Source == token.BUSD {
		return a.swap.Dest
	}
	return a.swap.Source
}

// RefreshPrice reads the pair reserves and stores the price of the swap pair.
// On failure the previous price is kept.
func (a *App) RefreshPrice(ctx context.Context) (*types.Quote, error) {
	paired := a.pairedToken()

	pair, err := a.client.GetPair(ctx, token.Address(paired))
	if err != nil {
		a.logger.Error("[RefreshPrice][GetPair]", map[string]string{
			"token": string(paired),
			"error": err.Error(),
		})
		return nil, classify("RefreshPrice", err)
	}

	// reserveA is the BUSD side of the pool
	reserveSource, reserveDest := pair.ReserveA, pair.ReserveB
	if a.swap.Source != token.BUSD {
		reserveSource, reserveDest = pair.ReserveB, pair.ReserveA
	}
	price, err := pricing.Ratio(reserveSource, reserveDest)
	if err != nil {
		a.logger.Error("[RefreshPrice][Ratio]", map[string]string{
			"token": string(paired),
			"error": err.Error(),
		})
		return nil, classify("RefreshPrice", err)
	}

	a.swap.Price = price
	if !a.swap.FromAmount.IsZero() {
		a.swap.ToAmount = pricing.DestFromSource(a.swap.FromAmount, price)
	}

	return &types.Quote{
		SourceToken: string(a.swap.Source),
		DestToken:   string(a.swap.Dest),
		ReserveA:    pricing.FromBaseUnits(reserveSource, token.Decimals).String(),
		ReserveB:    pricing.FromBaseUnits(reserveDest, token.Decimals).String(),
		Price:       price.String(),
	}, nil
}

// SetFromAmount edits the source field and recomputes the destination
func (a *App) SetFromAmount(amount decimal.Decimal) {
	a.swap.FromAmount = amount
	a.swap.ToAmount = pricing.DestFromSource(amount, a.swap.Price)
}

// SetToAmount edits the destination field and recomputes the source
func (a *App) SetToAmount(amount decimal.Decimal) {
	a.swap.ToAmount = amount
	a.swap.FromAmount = pricing.SourceFromDest(amount, a.swap.Price)
}

// SubmitSwap approves the exchange for the source amount and then swaps it.
// Both amounts are reset to zero once the submission ends, whatever the outcome.
func (a *App) SubmitSwap(ctx context.Context) (*SwapResult, error) {
	const op = "SubmitSwap"
	defer a.resetSwapAmounts()

	if a.swap.FromAmount.IsZero() || a.swap.ToAmount.IsZero() {
		return nil, a.fail(op, validationError(op, "both amounts must be non-zero"))
	}
	account, err := a.session.Account()
	if err != nil {
		return nil, a.fail(op, validationError(op, "%v", err))
	}
	amount, err := pricing.ToBaseUnits(a.swap.FromAmount, token.Decimals)
	if err != nil {
		return nil, a.fail(op, validationError(op, "%v", err))
	}

	a.showLoading()
	defer a.hideLoading()

	opts, err := a.provider.Transactor(ctx, account)
	if err != nil {
		return nil, a.fail(op, err)
	}

	source, dest := token.Address(a.swap.Source), token.Address(a.swap.Dest)
	log := entry{
		account: account.Hex(),
		tokenA:  string(a.swap.Source),
		amountA: a.swap.FromAmount.String(),
	}

	a.logger.Info("[SubmitSwap][Approve]", map[string]string{
		"token":  string(a.swap.Source),
		"amount": amount.String(),
	})
	approved, err := a.client.Approve(ctx, opts, source, amount)
	log.kind = journal.KindApprove
	a.record(log, approved, err)
	if err != nil {
		return nil, a.fail(op, fmt.Errorf("approve %s: %w", a.swap.Source, err))
	}
	a.notifier.Info(fmt.Sprintf("%s approved, sending swap", a.swap.Source))

	swapped, err := a.client.Swap(ctx, opts, source, dest, amount)
	log.kind = journal.KindSwap
	log.tokenB = string(a.swap.Dest)
	log.amountB = a.swap.ToAmount.String()
	a.record(log, swapped, err)
	if err != nil {
		return nil, a.fail(op, fmt.Errorf("swap %s to %s: %w", a.swap.Source, a.swap.Dest, err))
	}

	a.logger.Info("[SubmitSwap][Done]", map[string]string{
		"tx": swapped.TxHash.Hex(),
	})
	return &SwapResult{Approve: approved, Swap: swapped}, nil
}

func (a *App) resetSwapAmounts() {
	a.swap.FromAmount = decimal.Zero
	a.swap.ToAmount = decimal.Zero
}

// PrimaryAction connects the wallet when none is connected and swaps otherwise
func (a *App) PrimaryAction(ctx context.Context) error {
	if !a.session.Connected() {
		return a.ConnectWallet(ctx)
	}
	_, err := a.SubmitSwap(ctx)
	return err
}

// OpenPage switches the pool tab to page. Opening a form starts it empty.
func (a *App) OpenPage(page Page) {
	a.tab = TabPool
	a.page = page

	switch page {
	case PageAddLiquidity:
		a.liquidity = newLiquidityForm(ModeAddLiquidity, &a.services, &a.session, a.showLoading, a.hideLoading)
	case PageCreatePairs:
		a.liquidity = newLiquidityForm(ModeCreatePair, &a.services, &a.session, a.showLoading, a.hideLoading)
	}
}

// GoBack returns to the position list, reloading it after a pair was created
func (a *App) GoBack(ctx context.Context, fromCreate bool) error {
	a.page = PageLiquidity
	if !fromCreate {
		return nil
	}
	_, err := a.ListPositions(ctx)
	return err
}

// ListPositions loads the connected account's pooled amounts for every selectable token
func (a *App) ListPositions(ctx context.Context) ([]PoolPosition, error) {
	const op = "ListPositions"

	a.positions = nil
	owner, err := a.session.Account()
	if err != nil {
		return nil, a.fail(op, validationError(op, "%v", err))
	}

	var positions []PoolPosition
	for _, item := range token.Selectable() {
		pos, err := a.client.GetOwnerPools(ctx, owner, token.Address(item))
		if err != nil {
			return nil, a.fail(op, fmt.Errorf("%s pool: %w", item, err))
		}
		if pos == nil || (isZero(pos.AmountA) && isZero(pos.AmountB)) {
			continue
		}

		amount := pricing.FromBaseUnits(pos.AmountA, token.Decimals)
		busd := pricing.FromBaseUnits(pos.AmountB, token.Decimals)
		positions = append(positions, PoolPosition{
			Token:      item,
			Amount:     amount,
			BUSD:       busd,
			PoolTokens: pricing.PoolTokens(amount, busd),
		})
	}

	a.positions = positions
	return positions, nil
}

func isZero(v *big.Int) bool {
	return v == nil || v.Sign() == 0
}
