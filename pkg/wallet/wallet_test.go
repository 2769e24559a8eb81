package wallet

import (
	"context"
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testChainID = big.NewInt(97)

func newTestTx() *types.Transaction {
	to := common.HexToAddress("0x1964fe51eeCdAA5858214f286d4154Cafa5c5F68")
	return types.NewTransaction(0, to, big.NewInt(0), 21000, big.NewInt(21000000000), nil)
}

func TestSession(t *testing.T) {
	s := &Session{}
	assert.False(t, s.Connected())
	_, err := s.Account()
	assert.Error(t, err)

	s.Address = "0x8844fcde9037a54a8E48c5a6fd1728C31661BE3A"
	acc, err := s.Account()
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(s.Address), acc)

	s.Address = "not-an-address"
	_, err = s.Account()
	assert.Error(t, err)
}

func TestSession_ByValue(t *testing.T) {
	current := func(address string) Session { return Session{Address: address} }

	assert.False(t, current("").Connected())
	assert.True(t, current("0x8844fcde9037a54a8E48c5a6fd1728C31661BE3A").Connected())

	acc, err := current("0x8844fcde9037a54a8E48c5a6fd1728C31661BE3A").Account()
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x8844fcde9037a54a8E48c5a6fd1728C31661BE3A"), acc)
}

func TestKeyProvider(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	hexKey := "0x" + hex.EncodeToString(crypto.FromECDSA(key))
	want := crypto.PubkeyToAddress(key.PublicKey)

	confirmed := 0
	p, err := NewKeyProvider(hexKey, testChainID, func(tx *types.Transaction) bool {
		confirmed++
		return true
	})
	require.NoError(t, err)

	accs, err := p.RequestAccounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []common.Address{want}, accs)

	opts, err := p.Transactor(context.Background(), want)
	require.NoError(t, err)
	assert.Equal(t, want, opts.From)

	signed, err := opts.Signer(want, newTestTx())
	require.NoError(t, err)
	assert.Equal(t, 1, confirmed)

	sender, err := types.Sender(types.LatestSignerForChainID(testChainID), signed)
	require.NoError(t, err)
	assert.Equal(t, want, sender)

	_, err = p.Transactor(context.Background(), common.HexToAddress("0x01"))
	assert.Error(t, err)
}

func TestKeyProvider_InvalidKey(t *testing.T) {
	_, err := NewKeyProvider("", testChainID, nil)
	assert.Error(t, err)

	_, err = NewKeyProvider("0xzz", testChainID, nil)
	assert.Error(t, err)
}

func TestKeyProvider_DeclinedSignature(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	p, err := NewKeyProvider(hex.EncodeToString(crypto.FromECDSA(key)), testChainID, func(*types.Transaction) bool {
		return false
	})
	require.NoError(t, err)

	addr := crypto.PubkeyToAddress(key.PublicKey)
	opts, err := p.Transactor(context.Background(), addr)
	require.NoError(t, err)

	_, err = opts.Signer(addr, newTestTx())
	assert.True(t, errors.Is(err, ErrRejected))
}

func TestKeystoreProvider(t *testing.T) {
	ks := keystore.NewKeyStore(t.TempDir(), keystore.LightScryptN, keystore.LightScryptP)
	acc, err := ks.NewAccount("secret")
	require.NoError(t, err)

	t.Run("wrong passphrase is a rejection", func(t *testing.T) {
		p := newKeystoreProvider(ks, "wrong", testChainID, nil)
		_, err := p.RequestAccounts(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrRejected))
	})

	t.Run("unlocks the first account", func(t *testing.T) {
		p := newKeystoreProvider(ks, "secret", testChainID, nil)
		accs, err := p.RequestAccounts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, acc.Address, accs[0])

		opts, err := p.Transactor(context.Background(), acc.Address)
		require.NoError(t, err)

		signed, err := opts.Signer(acc.Address, newTestTx())
		require.NoError(t, err)
		sender, err := types.Sender(types.LatestSignerForChainID(testChainID), signed)
		require.NoError(t, err)
		assert.Equal(t, acc.Address, sender)
	})

	t.Run("unknown account", func(t *testing.T) {
		p := newKeystoreProvider(ks, "secret", testChainID, nil)
		_, err := p.Transactor(context.Background(), common.HexToAddress("0x02"))
		assert.Error(t, err)
	})

	t.Run("empty keystore", func(t *testing.T) {
		empty := keystore.NewKeyStore(t.TempDir(), keystore.LightScryptN, keystore.LightScryptP)
		p := newKeystoreProvider(empty, "secret", testChainID, nil)
		_, err := p.RequestAccounts(context.Background())
		assert.Error(t, err)
		assert.False(t, errors.Is(err, ErrRejected))
	})
}
