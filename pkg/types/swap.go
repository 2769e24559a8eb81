// Package types holds the request and result shapes shared by the commands.
package types

// SwapRequest represents a user's swap command
type SwapRequest struct {
	Amount      string `json:"amount" validate:"required_without=DestAmount,omitempty,numeric"`
	SourceToken string `json:"source_token" validate:"required,alphanum"`
	DestToken   string `json:"dest_token" validate:"required,alphanum,nefield=SourceToken"`
	// DestAmount is set instead of Amount when the user fixes the output side
	DestAmount string `json:"dest_amount,omitempty" validate:"omitempty,numeric"`
}

// LiquidityRequest represents a deposit of a BUSD amount against a token amount
type LiquidityRequest struct {
	InitAmount   string `json:"init_amount" validate:"omitempty,numeric"`
	InitToken    string `json:"init_token" validate:"required,alphanum"`
	TargetAmount string `json:"target_amount" validate:"required,numeric"`
	TargetToken  string `json:"target_token" validate:"required,alphanum,nefield=InitToken"`
}

// Quote holds the pair reserves and the ratio derived from them
type Quote struct {
	SourceToken string `json:"source_token"`
	DestToken   string `json:"dest_token"`
	ReserveA    string `json:"reserve_a"`
	ReserveB    string `json:"reserve_b"`
	Price       string `json:"price"` // Source units per destination unit
}

// TxSummary is the printable outcome of one submitted transaction
type TxSummary struct {
	Kind        string `json:"kind"`
	TxHash      string `json:"tx_hash"`
	BlockNumber uint64 `json:"block_number,omitempty"`
	Status      string `json:"status"`
}
