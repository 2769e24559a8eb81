package chain

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guild-swap/config"
	"guild-swap/pkg/logger"
)

func TestNewEVMClient_InvalidConfig(t *testing.T) {
	_, err := NewEVMClient(config.ChainConfig{ContractAddress: "0x1964fe51eeCdAA5858214f286d4154Cafa5c5F68"}, logger.Nop())
	assert.Error(t, err)

	_, err = NewEVMClient(config.ChainConfig{RPCURL: "http://127.0.0.1:8545", ContractAddress: "nope"}, logger.Nop())
	assert.Error(t, err)
}

func TestNewEVMClient_GasSettings(t *testing.T) {
	gasPrice := int64(21000000000)
	gasLimit := uint64(300000)

	// http endpoints are dialed lazily so no node is needed
	c, err := NewEVMClient(config.ChainConfig{
		RPCURL:          "http://127.0.0.1:8545",
		ContractAddress: "0x1964fe51eeCdAA5858214f286d4154Cafa5c5F68",
		GasPrice:        &gasPrice,
		GasLimit:        &gasLimit,
	}, logger.Nop())
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, common.HexToAddress("0x1964fe51eeCdAA5858214f286d4154Cafa5c5F68"), c.ExchangeAddress())
	assert.Equal(t, big.NewInt(gasPrice), c.gasPrice)
	assert.Equal(t, gasLimit, c.gasLimit)
}

func TestPrepare(t *testing.T) {
	c := &EVMClient{gasPrice: big.NewInt(21000000000), gasLimit: 250000}
	ctx := context.Background()

	t.Run("fills missing gas settings", func(t *testing.T) {
		opts := &bind.TransactOpts{From: common.HexToAddress("0x01")}
		got := c.prepare(ctx, opts)

		assert.Equal(t, big.NewInt(21000000000), got.GasPrice)
		assert.Equal(t, uint64(250000), got.GasLimit)
		assert.Equal(t, ctx, got.Context)
		// the caller's options are left untouched
		assert.Nil(t, opts.GasPrice)
		assert.Zero(t, opts.GasLimit)
	})

	t.Run("keeps explicit settings", func(t *testing.T) {
		opts := &bind.TransactOpts{GasPrice: big.NewInt(5), GasLimit: 10}
		got := c.prepare(ctx, opts)

		assert.Equal(t, big.NewInt(5), got.GasPrice)
		assert.Equal(t, uint64(10), got.GasLimit)
	})

	t.Run("no configured gas", func(t *testing.T) {
		got := (&EVMClient{}).prepare(ctx, &bind.TransactOpts{})
		assert.Nil(t, got.GasPrice)
		assert.Zero(t, got.GasLimit)
	})
}

func TestNewReceipt(t *testing.T) {
	hash := common.HexToHash("0xabc")

	ok := newReceipt(&types.Receipt{
		TxHash:      hash,
		Status:      types.ReceiptStatusSuccessful,
		GasUsed:     21000,
		BlockNumber: big.NewInt(42),
	})
	assert.True(t, ok.Success)
	assert.Equal(t, uint64(42), ok.BlockNumber)
	assert.Equal(t, uint64(21000), ok.GasUsed)
	assert.Equal(t, hash, ok.TxHash)

	failed := newReceipt(&types.Receipt{TxHash: hash, Status: types.ReceiptStatusFailed})
	assert.False(t, failed.Success)
	assert.Zero(t, failed.BlockNumber)
}
