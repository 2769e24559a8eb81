// Package token is the registry of tokens the exchange trades and the
// contract address of each.
package token

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Item identifies a token that can be paired against the quote token
type Item string

const (
	PLANT Item = "PLANT"
	YGG   Item = "YGG"
	AXS   Item = "AXS"
	UNI   Item = "UNI"

	// BUSD is the quote token every pool is priced in
	BUSD Item = "BUSD"
)

// Decimals is the fixed scale used for every token on the exchange
const Decimals = 18

// Token describes a token deployed on the exchange's network
type Token struct {
	Symbol  Item
	Name    string
	Address common.Address
}

var registry = map[Item]Token{
	BUSD:  {Symbol: BUSD, Name: "Binance USD", Address: common.HexToAddress("0xdA9c9d10130d84f49898aF81D5beF7AA67077834")},
	PLANT: {Symbol: PLANT, Name: "Plant", Address: common.HexToAddress("0x1d59AC95be8becA40C295Ea049ad31C19959Ef19")},
	UNI:   {Symbol: UNI, Name: "Uniswap", Address: common.HexToAddress("0xA75f472BA6F52F1D080f080526092A1ecD26125a")},
	YGG:   {Symbol: YGG, Name: "Yield Guild Games", Address: common.HexToAddress("0xE745600b2960C5F7cCc68054223aA79DE0207F51")},
	AXS:   {Symbol: AXS, Name: "Axie Infinity", Address: common.HexToAddress("0x354b06C1ab529BDbfbD11F984Cb2385243e8Fb76")},
}

// selectable keeps the order tokens are offered in
var selectable = []Item{UNI, YGG, AXS, PLANT}

// Selectable returns the tokens that can be paired against BUSD
func Selectable() []Item {
	out := make([]Item, len(selectable))
	copy(out, selectable)
	return out
}

// All returns the quote token followed by every selectable token
func All() []Token {
	out := []Token{registry[BUSD]}
	for _, item := range selectable {
		out = append(out, registry[item])
	}
	return out
}

// Parse normalizes a symbol and checks it is a known token
func Parse(symbol string) (Item, error) {
	item := Item(strings.ToUpper(strings.TrimSpace(symbol)))
	if _, ok := registry[item]; !ok {
		return "", fmt.Errorf("unknown token '%s' (supported: BUSD, %s)", symbol, joinItems(selectable))
	}
	return item, nil
}

// Lookup returns the token for an item
func Lookup(item Item) (Token, error) {
	t, ok := registry[item]
	if !ok {
		return Token{}, fmt.Errorf("unknown token '%s'", item)
	}
	return t, nil
}

// Address returns the contract address for an item, or the zero address
func Address(item Item) common.Address {
	return registry[item].Address
}

// IsSelectable reports whether item can be paired against BUSD
func IsSelectable(item Item) bool {
	for _, s := range selectable {
		if s == item {
			return true
		}
	}
	return false
}

func joinItems(items []Item) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = string(item)
	}
	return strings.Join(parts, ", ")
}
