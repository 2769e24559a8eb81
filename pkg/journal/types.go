package journal

import "time"

// Kind is the contract call a record was made for
type Kind string

const (
	KindApprove      Kind = "approve"
	KindSwap         Kind = "swap"
	KindAddLiquidity Kind = "add_liquidity"
	KindCreatePair   Kind = "create_pair"
)

// Status is the last known outcome of a recorded transaction
type Status string

const (
	StatusConfirmed Status = "confirmed" // Mined successfully
	StatusFailed    Status = "failed"    // Reverted or never mined
)

// Record is one submitted transaction
type Record struct {
	ID           string    `json:"id"`
	Kind         Kind      `json:"kind"`
	TxHash       string    `json:"tx_hash,omitempty"`
	Account      string    `json:"account"`
	TokenA       string    `json:"token_a"`
	TokenB       string    `json:"token_b,omitempty"`
	AmountA      string    `json:"amount_a"`           // Human amount of TokenA
	AmountB      string    `json:"amount_b,omitempty"` // Human amount of TokenB
	Status       Status    `json:"status"`
	ErrorMessage string    `json:"error_message,omitempty"`
	BlockNumber  uint64    `json:"block_number,omitempty"`
	Created      time.Time `json:"created"`
	LastUpdated  time.Time `json:"last_updated"`
}
