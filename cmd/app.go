package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"guild-swap/config"
	"guild-swap/pkg/chain"
	"guild-swap/pkg/exchange"
	"guild-swap/pkg/journal"
	"guild-swap/pkg/logger"
	"guild-swap/pkg/wallet"
)

// runtime is everything a command needs, built from flags and configuration
type runtime struct {
	cfg      *config.Config
	log      *logger.Logger
	client   *chain.EVMClient
	journal  *journal.Storage
	terminal *terminal
	app      *exchange.App

	verbose    bool
	jsonOutput bool
	skipPrompt bool
}

// setup loads configuration and wires the exchange. Commands that sign
// transactions pass needWallet.
func setup(cmd *cobra.Command, needWallet bool) (*runtime, error) {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	yes, _ := cmd.Flags().GetBool("yes")

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	env, level := logger.Environment(cfg.Log.Environment), cfg.Log.Level
	if verbose {
		env, level = logger.Development, "debug"
	}
	log := logger.New(env, level)

	rt := &runtime{
		cfg:        cfg,
		log:        log,
		terminal:   newTerminal(jsonOutput),
		verbose:    verbose,
		jsonOutput: jsonOutput,
		skipPrompt: yes || cfg.AutoConfirm,
	}

	rt.client, err = chain.NewEVMClient(cfg.Chain, log)
	if err != nil {
		return nil, err
	}

	rt.journal, err = journal.NewStorage(cfg.JournalPath)
	if err != nil {
		rt.client.Close()
		return nil, err
	}

	provider, err := rt.walletProvider(needWallet)
	if err != nil {
		rt.client.Close()
		return nil, err
	}

	rt.app, err = exchange.New(exchange.Options{
		Client:   rt.client,
		Wallet:   provider,
		Notifier: rt.terminal,
		Loader:   rt.terminal,
		Journal:  rt.journal,
		Logger:   log,
	})
	if err != nil {
		rt.client.Close()
		return nil, err
	}

	log.Debug("[setup][Ready]", map[string]string{
		"rpc":      cfg.Chain.RPCURL,
		"exchange": rt.client.ExchangeAddress().Hex(),
		"journal":  cfg.JournalPath,
	})
	return rt, nil
}

func (rt *runtime) walletProvider(needWallet bool) (wallet.Provider, error) {
	if !rt.cfg.HasWallet() {
		if needWallet {
			return nil, fmt.Errorf("no wallet configured. Set GUILD_SWAP_WALLET_PRIVATE_KEY or wallet.keystore_dir in .guild-swap.yaml")
		}
		return noWallet{}, nil
	}

	var confirmFn wallet.ConfirmFunc
	if !rt.skipPrompt {
		confirmFn = rt.terminal.ConfirmTransaction
	}

	chainID := big.NewInt(rt.cfg.Chain.ChainID)
	if rt.cfg.Wallet.PrivateKey != "" {
		return wallet.NewKeyProvider(rt.cfg.Wallet.PrivateKey, chainID, confirmFn)
	}
	return wallet.NewKeystoreProvider(rt.cfg.Wallet.KeystoreDir, rt.cfg.Wallet.Passphrase, chainID, confirmFn)
}

func (rt *runtime) close() {
	rt.terminal.Hide()
	rt.client.Close()
	rt.log.Sync()
}

// connect runs the wallet connection and returns the active account
func (rt *runtime) connect(ctx context.Context) common.Address {
	rt.terminal.Status("Connecting wallet...")
	if err := rt.app.ConnectWallet(ctx); err != nil {
		rt.close()
		exit(err)
	}
	account, _ := rt.app.Session().Account()
	return account
}

func (rt *runtime) printJSON(v any) {
	printJSON(v)
}

func printJSON(v any) {
	data, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(data))
}

// noWallet backs read-only commands when no signer is configured
type noWallet struct{}

func (noWallet) RequestAccounts(context.Context) ([]common.Address, error) {
	return nil, fmt.Errorf("%w: no wallet configured", wallet.ErrRejected)
}

func (noWallet) Transactor(context.Context, common.Address) (*bind.TransactOpts, error) {
	return nil, fmt.Errorf("%w: no wallet configured", wallet.ErrRejected)
}
