package wallet

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
)

// KeystoreProvider signs with accounts from an encrypted keystore directory.
// A wrong passphrase counts as the user rejecting account access.
type KeystoreProvider struct {
	ks         *keystore.KeyStore
	passphrase string
	chainID    *big.Int
	confirm    ConfirmFunc
}

// NewKeystoreProvider opens the keystore in dir
func NewKeystoreProvider(dir, passphrase string, chainID *big.Int, confirm ConfirmFunc) (*KeystoreProvider, error) {
	if dir == "" {
		return nil, fmt.Errorf("keystore directory not configured")
	}
	ks := keystore.NewKeyStore(dir, keystore.StandardScryptN, keystore.StandardScryptP)
	return newKeystoreProvider(ks, passphrase, chainID, confirm), nil
}

func newKeystoreProvider(ks *keystore.KeyStore, passphrase string, chainID *big.Int, confirm ConfirmFunc) *KeystoreProvider {
	return &KeystoreProvider{
		ks:         ks,
		passphrase: passphrase,
		chainID:    chainID,
		confirm:    confirm,
	}
}

func (p *KeystoreProvider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	accs := p.ks.Accounts()
	if len(accs) == 0 {
		return nil, fmt.Errorf("no accounts found in keystore")
	}

	// only the active account needs to be unlocked
	if err := p.ks.Unlock(accs[0], p.passphrase); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRejected, err)
	}

	addresses := make([]common.Address, len(accs))
	for i, acc := range accs {
		addresses[i] = acc.Address
	}
	return addresses, nil
}

func (p *KeystoreProvider) Transactor(ctx context.Context, account common.Address) (*bind.TransactOpts, error) {
	if !p.ks.HasAddress(account) {
		return nil, fmt.Errorf("account %s is not managed by this wallet", account.Hex())
	}

	opts, err := bind.NewKeyStoreTransactorWithChainID(p.ks, accounts.Account{Address: account}, p.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx
	opts.Signer = gate(opts.Signer, p.confirm)

	return opts, nil
}
