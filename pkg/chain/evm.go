package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"guild-swap/config"
	"guild-swap/contracts/bep20"
	"guild-swap/contracts/guildswap"
	"guild-swap/pkg/logger"
)

// EVMClient implements Client over a JSON-RPC endpoint
type EVMClient struct {
	client       *ethclient.Client
	exchange     *guildswap.GuildSwap
	exchangeAddr common.Address
	gasPrice     *big.Int
	gasLimit     uint64
	logger       *logger.Logger
}

// NewEVMClient connects to the configured RPC endpoint and binds the exchange contract
func NewEVMClient(cfg config.ChainConfig, log *logger.Logger) (*EVMClient, error) {
	if cfg.RPCURL == "" {
		return nil, fmt.Errorf("RPC URL not configured")
	}
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("invalid exchange contract address: %s", cfg.ContractAddress)
	}

	client, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC endpoint: %w", err)
	}

	exchangeAddr := common.HexToAddress(cfg.ContractAddress)
	exchange, err := guildswap.NewGuildSwap(exchangeAddr, client)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to bind exchange contract: %w", err)
	}

	c := &EVMClient{
		client:       client,
		exchange:     exchange,
		exchangeAddr: exchangeAddr,
		logger:       log,
	}
	if cfg.GasPrice != nil {
		c.gasPrice = big.NewInt(*cfg.GasPrice)
	}
	if cfg.GasLimit != nil {
		c.gasLimit = *cfg.GasLimit
	}

	return c, nil
}

// ExchangeAddress is the spender every approval is granted to
func (c *EVMClient) ExchangeAddress() common.Address {
	return c.exchangeAddr
}

func (c *EVMClient) GetPair(ctx context.Context, token common.Address) (*Pair, error) {
	out, err := c.exchange.GetPair(&bind.CallOpts{Context: ctx}, token)
	if err != nil {
		c.logger.Error("[GetPair][GetPair]", map[string]string{
			"token": token.Hex(),
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to read pair reserves: %w", err)
	}
	return &Pair{ReserveA: out.ReserveA, ReserveB: out.ReserveB}, nil
}

func (c *EVMClient) GetOwnerPools(ctx context.Context, owner, token common.Address) (*Position, error) {
	out, err := c.exchange.GetOwnerPools(&bind.CallOpts{Context: ctx, From: owner}, token)
	if err != nil {
		c.logger.Error("[GetOwnerPools][GetOwnerPools]", map[string]string{
			"owner": owner.Hex(),
			"token": token.Hex(),
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to read owner pools: %w", err)
	}
	return &Position{AmountA: out.AmountA, AmountB: out.AmountB}, nil
}

func (c *EVMClient) BalanceOf(ctx context.Context, token, owner common.Address) (*big.Int, error) {
	erc20, err := bep20.NewBep20Caller(token, c.client)
	if err != nil {
		return nil, fmt.Errorf("failed to bind token contract: %w", err)
	}
	balance, err := erc20.BalanceOf(&bind.CallOpts{Context: ctx}, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get token balance: %w", err)
	}
	return balance, nil
}

// Approve lets the exchange contract move amount of token for the signer
func (c *EVMClient) Approve(ctx context.Context, opts *bind.TransactOpts, token common.Address, amount *big.Int) (*Receipt, error) {
	erc20, err := bep20.NewBep20Transactor(token, c.client)
	if err != nil {
		return nil, fmt.Errorf("failed to bind token contract: %w", err)
	}

	tx, err := erc20.Approve(c.prepare(ctx, opts), c.exchangeAddr, amount)
	if err != nil {
		return nil, c.sendError("approve", err)
	}
	return c.await(ctx, "approve", tx)
}

func (c *EVMClient) Swap(ctx context.Context, opts *bind.TransactOpts, tokenIn, tokenOut common.Address, amount *big.Int) (*Receipt, error) {
	tx, err := c.exchange.Swap(c.prepare(ctx, opts), tokenIn, tokenOut, amount)
	if err != nil {
		return nil, c.sendError("swap", err)
	}
	return c.await(ctx, "swap", tx)
}

func (c *EVMClient) AddLiquidity(ctx context.Context, opts *bind.TransactOpts, tokenA, tokenB common.Address, amountA, amountB *big.Int) (*Receipt, error) {
	tx, err := c.exchange.AddLiq(c.prepare(ctx, opts), tokenA, tokenB, amountA, amountB)
	if err != nil {
		return nil, c.sendError("addLiq", err)
	}
	return c.await(ctx, "addLiq", tx)
}

func (c *EVMClient) CreatePair(ctx context.Context, opts *bind.TransactOpts, tokenA, tokenB common.Address, amountA, amountB *big.Int) (*Receipt, error) {
	tx, err := c.exchange.CreatePair(c.prepare(ctx, opts), tokenA, tokenB, amountA, amountB)
	if err != nil {
		return nil, c.sendError("createPair", err)
	}
	return c.await(ctx, "createPair", tx)
}

// TransactionInfo retrieves a transaction and, once mined, its receipt
func (c *EVMClient) TransactionInfo(ctx context.Context, hash common.Hash) (*TxInfo, error) {
	tx, isPending, err := c.client.TransactionByHash(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	info := &TxInfo{
		Hash:     tx.Hash().Hex(),
		Nonce:    tx.Nonce(),
		GasPrice: tx.GasPrice().String(),
		GasLimit: tx.Gas(),
		Value:    tx.Value().String(),
		Pending:  isPending,
	}
	if tx.To() != nil {
		info.To = tx.To().Hex()
	}

	if isPending {
		return info, nil
	}

	receipt, err := c.client.TransactionReceipt(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction receipt: %w", err)
	}
	info.HasReceipt = true
	info.BlockNumber = receipt.BlockNumber.Uint64()
	info.GasUsed = receipt.GasUsed
	info.Status = receipt.Status

	return info, nil
}

// Close closes the RPC connection
func (c *EVMClient) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// prepare applies configured gas settings without touching the caller's options
func (c *EVMClient) prepare(ctx context.Context, opts *bind.TransactOpts) *bind.TransactOpts {
	o := *opts
	if o.Context == nil {
		o.Context = ctx
	}
	if o.GasPrice == nil && c.gasPrice != nil {
		o.GasPrice = new(big.Int).Set(c.gasPrice)
	}
	if o.GasLimit == 0 && c.gasLimit != 0 {
		o.GasLimit = c.gasLimit
	}
	return &o
}

func (c *EVMClient) sendError(method string, err error) error {
	c.logger.Error(fmt.Sprintf("[%s][Transact]", method), map[string]string{
		"error": err.Error(),
	})
	return fmt.Errorf("failed to send %s transaction: %w", method, err)
}

// await blocks until tx is mined. The receipt carries the hash even on failure.
func (c *EVMClient) await(ctx context.Context, method string, tx *types.Transaction) (*Receipt, error) {
	c.logger.Info(fmt.Sprintf("[%s][Sent]", method), map[string]string{
		"txHash": tx.Hash().Hex(),
	})

	mined, err := bind.WaitMined(ctx, c.client, tx)
	if err != nil {
		return &Receipt{TxHash: tx.Hash()}, fmt.Errorf("failed waiting for %s transaction %s: %w", method, tx.Hash().Hex(), err)
	}

	receipt := newReceipt(mined)
	if !receipt.Success {
		return receipt, fmt.Errorf("%w: %s transaction %s", ErrReverted, method, tx.Hash().Hex())
	}
	return receipt, nil
}

func newReceipt(r *types.Receipt) *Receipt {
	out := &Receipt{
		TxHash:  r.TxHash,
		GasUsed: r.GasUsed,
		Success: r.Status == types.ReceiptStatusSuccessful,
	}
	if r.BlockNumber != nil {
		out.BlockNumber = r.BlockNumber.Uint64()
	}
	return out
}
