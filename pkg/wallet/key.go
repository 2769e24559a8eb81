package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// KeyProvider signs with a single raw private key
type KeyProvider struct {
	key     *ecdsa.PrivateKey
	address common.Address
	chainID *big.Int
	confirm ConfirmFunc
}

// NewKeyProvider parses a hex encoded private key, with or without 0x prefix
func NewKeyProvider(hexKey string, chainID *big.Int, confirm ConfirmFunc) (*KeyProvider, error) {
	if hexKey == "" {
		return nil, fmt.Errorf("private key not configured")
	}

	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	return &KeyProvider{
		key:     privateKey,
		address: crypto.PubkeyToAddress(privateKey.PublicKey),
		chainID: chainID,
		confirm: confirm,
	}, nil
}

func (p *KeyProvider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []common.Address{p.address}, nil
}

func (p *KeyProvider) Transactor(ctx context.Context, account common.Address) (*bind.TransactOpts, error) {
	if account != p.address {
		return nil, fmt.Errorf("account %s is not managed by this wallet", account.Hex())
	}

	opts, err := bind.NewKeyedTransactorWithChainID(p.key, p.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx
	opts.Signer = gate(opts.Signer, p.confirm)

	return opts, nil
}
