// Package parser turns free form swap and liquidity commands into validated
// requests.
package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"guild-swap/pkg/types"
)

var (
	swapPattern      = regexp.MustCompile(`^(\d+\.?\d*)\s+([A-Z0-9]+)\s+TO\s+([A-Z0-9]+)$`)
	liquidityPattern = regexp.MustCompile(`^(\d+\.?\d*)\s+([A-Z0-9]+)\s*\+\s*(\d+\.?\d*)\s+([A-Z0-9]+)$`)

	validate = validator.New()
)

// ParseSwapCommand parses a swap command
// Examples:
//   - "swap 10 BUSD to PLANT"
//   - "2.5 UNI to BUSD"
func ParseSwapCommand(command string) (*types.SwapRequest, error) {
	command = strings.TrimSpace(strings.ToUpper(command))
	command = strings.TrimPrefix(command, "SWAP ")

	matches := swapPattern.FindStringSubmatch(command)
	if matches == nil {
		return nil, fmt.Errorf("invalid swap command format. Expected: 'swap <amount> <token> to <token>' (e.g., 'swap 10 BUSD to PLANT')")
	}

	return &types.SwapRequest{
		Amount:      matches[1],
		SourceToken: matches[2],
		DestToken:   matches[3],
	}, nil
}

// ParseLiquidityCommand parses "<busd amount> BUSD + <amount> <token>"
func ParseLiquidityCommand(command string) (*types.LiquidityRequest, error) {
	command = strings.TrimSpace(strings.ToUpper(command))

	matches := liquidityPattern.FindStringSubmatch(command)
	if matches == nil {
		return nil, fmt.Errorf("invalid liquidity format. Expected: '<amount> BUSD + <amount> <token>' (e.g., '10 BUSD + 2 UNI')")
	}

	return &types.LiquidityRequest{
		InitAmount:   matches[1],
		InitToken:    matches[2],
		TargetAmount: matches[3],
		TargetToken:  matches[4],
	}, nil
}

// ValidateSwapRequest validates that a swap request has all required fields
func ValidateSwapRequest(req *types.SwapRequest) error {
	if req == nil {
		return fmt.Errorf("swap request is required")
	}
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("invalid swap request: %w", err)
	}
	return nil
}

// ValidateLiquidityRequest validates a liquidity request
func ValidateLiquidityRequest(req *types.LiquidityRequest) error {
	if req == nil {
		return fmt.Errorf("liquidity request is required")
	}
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("invalid liquidity request: %w", err)
	}
	return nil
}

// NormalizeTokenSymbol normalizes token symbols to the registry format
func NormalizeTokenSymbol(symbol string) string {
	symbol = strings.TrimSpace(strings.ToUpper(symbol))

	aliases := map[string]string{
		"WBUSD": "BUSD",
		"PLNT":  "PLANT",
	}
	if normalized, exists := aliases[symbol]; exists {
		return normalized
	}

	return symbol
}
