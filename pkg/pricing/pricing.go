// Package pricing holds the pure amount arithmetic behind the swap and
// liquidity forms: reserve ratios, linked field recomputation and base-unit
// conversion.
package pricing

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// PriceDigits is the number of fractional digits kept by Ratio
const PriceDigits = 36

// Ratio returns reserveA / reserveB, the amount of token A paid per unit of token B
func Ratio(reserveA, reserveB *big.Int) (decimal.Decimal, error) {
	if reserveA == nil || reserveB == nil {
		return decimal.Zero, fmt.Errorf("pair reserves not available")
	}
	if reserveB.Sign() == 0 {
		return decimal.Zero, fmt.Errorf("pair has no liquidity")
	}
	a := decimal.NewFromBigInt(reserveA, 0)
	b := decimal.NewFromBigInt(reserveB, 0)
	ratio := a.DivRound(b, PriceDigits)
	if ratio.IsZero() && reserveA.Sign() != 0 {
		return decimal.Zero, fmt.Errorf("pair price below %d decimal places", PriceDigits)
	}
	return ratio, nil
}

// DestFromSource recomputes the destination field after the source field was
// edited. A zero price leaves the destination at zero.
func DestFromSource(source, price decimal.Decimal) decimal.Decimal {
	if price.IsZero() {
		return decimal.Zero
	}
	return source.Div(price)
}

// SourceFromDest recomputes the source field after the destination field was edited
func SourceFromDest(dest, price decimal.Decimal) decimal.Decimal {
	return dest.Mul(price)
}

// ParseAmount parses a user supplied amount. An empty string is zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount format: %s", s)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount cannot be negative: %s", s)
	}
	return amount, nil
}

// ToBaseUnits converts a human amount to the token's smallest denomination.
// Digits below the token's precision are truncated.
func ToBaseUnits(amount decimal.Decimal, decimals int32) (*big.Int, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("amount cannot be negative: %s", amount.String())
	}
	return amount.Shift(decimals).Truncate(0).BigInt(), nil
}

// FromBaseUnits converts a base-unit quantity back to a human amount
func FromBaseUnits(value *big.Int, decimals int32) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(value, -decimals)
}

// PoolTokens estimates the pool tokens held for a position as sqrt(a*b)
func PoolTokens(amountA, amountB decimal.Decimal) decimal.Decimal {
	product := amountA.Mul(amountB)
	if !product.IsPositive() {
		return decimal.Zero
	}

	f, ok := new(big.Float).SetPrec(256).SetString(product.String())
	if !ok {
		return decimal.Zero
	}
	root := new(big.Float).SetPrec(256).Sqrt(f)

	out, err := decimal.NewFromString(root.Text('f', 18))
	if err != nil {
		return decimal.Zero
	}
	return out
}
