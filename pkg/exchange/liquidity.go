package exchange

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"guild-swap/pkg/chain"
	"guild-swap/pkg/journal"
	"guild-swap/pkg/pricing"
	"guild-swap/pkg/token"
	"guild-swap/pkg/wallet"
)

// Mode selects which contract call the liquidity form submits
type Mode int

const (
	ModeAddLiquidity Mode = iota
	ModeCreatePair
)

func (m Mode) String() string {
	if m == ModeCreatePair {
		return "create pair"
	}
	return "add liquidity"
}

// LiquidityResult holds the receipts of a completed deposit
type LiquidityResult struct {
	ApproveToken *chain.Receipt
	ApproveBUSD  *chain.Receipt
	Deposit      *chain.Receipt
}

// LiquidityForm deposits a BUSD (init) amount against a token (target) amount.
// In add-liquidity mode the two amounts are linked by the pool price; when
// creating a pair they are independent and their quotient becomes the price.
type LiquidityForm struct {
	*services
	session     *wallet.Session
	showLoading func()
	hideLoading func()

	mode         Mode
	selected     token.Item
	initAmount   decimal.Decimal
	targetAmount decimal.Decimal
	price        decimal.Decimal
}

func newLiquidityForm(mode Mode, svc *services, session *wallet.Session, show, hide func()) *LiquidityForm {
	return &LiquidityForm{
		services:    svc,
		session:     session,
		showLoading: show,
		hideLoading: hide,
		mode:        mode,
	}
}

func (f *LiquidityForm) Mode() Mode { return f.mode }

func (f *LiquidityForm) Selected() token.Item { return f.selected }

func (f *LiquidityForm) InitAmount() decimal.Decimal { return f.initAmount }

func (f *LiquidityForm) TargetAmount() decimal.Decimal { return f.targetAmount }

// SelectToken picks the paired token. In add-liquidity mode this fetches the
// pool price once and rebalances whichever amount was not entered.
func (f *LiquidityForm) SelectToken(ctx context.Context, item token.Item) error {
	if !token.IsSelectable(item) {
		return validationError("SelectToken", "unsupported token: %s", item)
	}
	f.selected = item

	if f.mode != ModeAddLiquidity {
		return nil
	}

	pair, err := f.client.GetPair(ctx, token.Address(item))
	if err != nil {
		f.logger.Error("[SelectToken][GetPair]", map[string]string{
			"token": string(item),
			"error": err.Error(),
		})
		return classify("SelectToken", err)
	}
	price, err := pricing.Ratio(pair.ReserveA, pair.ReserveB)
	if err != nil {
		f.logger.Error("[SelectToken][Ratio]", map[string]string{
			"token": string(item),
			"error": err.Error(),
		})
		return classify("SelectToken", err)
	}
	f.price = price

	switch {
	case !f.initAmount.IsZero():
		f.targetAmount = pricing.DestFromSource(f.initAmount, price)
	case !f.targetAmount.IsZero():
		f.initAmount = pricing.SourceFromDest(f.targetAmount, price)
	}
	return nil
}

// SetInitAmount edits the BUSD amount
func (f *LiquidityForm) SetInitAmount(amount decimal.Decimal) {
	f.initAmount = amount
	if f.mode == ModeAddLiquidity {
		f.targetAmount = pricing.DestFromSource(amount, f.price)
	}
}

// SetTargetAmount edits the token amount
func (f *LiquidityForm) SetTargetAmount(amount decimal.Decimal) {
	f.targetAmount = amount
	if f.mode == ModeAddLiquidity {
		f.initAmount = pricing.SourceFromDest(amount, f.price)
	}
}

// DisplayPrice is the BUSD price of one target token as the form shows it
func (f *LiquidityForm) DisplayPrice() decimal.Decimal {
	if f.mode == ModeAddLiquidity {
		return f.price
	}
	if f.targetAmount.IsZero() {
		return decimal.Zero
	}
	return f.initAmount.Div(f.targetAmount)
}

// CanSubmit reports whether a token is selected and a token amount entered
func (f *LiquidityForm) CanSubmit() bool {
	return f.selected != "" && !f.targetAmount.IsZero()
}

// Submit approves the target token and BUSD, then deposits both.
// The amounts are cleared when the submission ends.
func (f *LiquidityForm) Submit(ctx context.Context) (*LiquidityResult, error) {
	op := "AddLiquidity"
	kind := journal.KindAddLiquidity
	deposit := f.client.AddLiquidity
	if f.mode == ModeCreatePair {
		op = "CreatePair"
		kind = journal.KindCreatePair
		deposit = f.client.CreatePair
	}

	if !f.CanSubmit() {
		return nil, f.fail(op, validationError(op, "select a token and enter its amount"))
	}
	account, err := f.session.Account()
	if err != nil {
		return nil, f.fail(op, validationError(op, "%v", err))
	}
	targetUnits, err := pricing.ToBaseUnits(f.targetAmount, token.Decimals)
	if err != nil {
		return nil, f.fail(op, validationError(op, "%v", err))
	}
	initUnits, err := pricing.ToBaseUnits(f.initAmount, token.Decimals)
	if err != nil {
		return nil, f.fail(op, validationError(op, "%v", err))
	}

	f.showLoading()
	defer func() {
		f.hideLoading()
		f.initAmount = decimal.Zero
		f.targetAmount = decimal.Zero
	}()

	opts, err := f.provider.Transactor(ctx, account)
	if err != nil {
		return nil, f.fail(op, err)
	}

	target := token.Address(f.selected)
	busd := token.Address(token.BUSD)
	result := &LiquidityResult{}

	result.ApproveToken, err = f.client.Approve(ctx, opts, target, targetUnits)
	f.record(entry{
		kind:    journal.KindApprove,
		account: account.Hex(),
		tokenA:  string(f.selected),
		amountA: f.targetAmount.String(),
	}, result.ApproveToken, err)
	if err != nil {
		return nil, f.fail(op, fmt.Errorf("approve %s: %w", f.selected, err))
	}

	result.ApproveBUSD, err = f.client.Approve(ctx, opts, busd, initUnits)
	f.record(entry{
		kind:    journal.KindApprove,
		account: account.Hex(),
		tokenA:  string(token.BUSD),
		amountA: f.initAmount.String(),
	}, result.ApproveBUSD, err)
	if err != nil {
		return nil, f.fail(op, fmt.Errorf("approve %s: %w", token.BUSD, err))
	}
	f.notifier.Info(fmt.Sprintf("%s and %s approved, submitting %s", f.selected, token.BUSD, f.mode))

	f.logger.Info("["+op+"][Deposit]", map[string]string{
		"token":       string(f.selected),
		"tokenAmount": targetUnits.String(),
		"busdAmount":  initUnits.String(),
	})
	result.Deposit, err = deposit(ctx, opts, target, busd, targetUnits, initUnits)
	f.record(entry{
		kind:    kind,
		account: account.Hex(),
		tokenA:  string(f.selected),
		tokenB:  string(token.BUSD),
		amountA: f.targetAmount.String(),
		amountB: f.initAmount.String(),
	}, result.Deposit, err)
	if err != nil {
		return nil, f.fail(op, fmt.Errorf("%s %s: %w", f.mode, f.selected, err))
	}

	return result, nil
}
