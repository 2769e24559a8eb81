// Package config loads the CLI settings from an optional YAML file and
// GUILD_SWAP_ prefixed environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"
)

const (
	DefaultRPCURL          = "https://data-seed-prebsc-2-s3.binance.org:8545/"
	DefaultChainID         = 97
	DefaultContractAddress = "0x1964fe51eeCdAA5858214f286d4154Cafa5c5F68"
	DefaultGasPrice        = 21000000000
	DefaultJournalFileName = ".guild-swap-history.json"
)

// Config holds the application configuration
type Config struct {
	Chain       ChainConfig
	Wallet      WalletConfig
	Log         LogConfig
	JournalPath string
	AutoConfirm bool
}

// ChainConfig holds the network and exchange contract settings
type ChainConfig struct {
	RPCURL          string
	ChainID         int64
	ContractAddress string
	GasPrice        *int64  // Gas price in wei (optional, suggested by the node when unset)
	GasLimit        *uint64 // Gas limit (optional, estimated when unset)
}

// WalletConfig selects how transactions are signed. A private key takes
// precedence over a keystore.
type WalletConfig struct {
	PrivateKey  string
	KeystoreDir string
	Passphrase  string
}

// LogConfig controls the diagnostic logger
type LogConfig struct {
	Environment string
	Level       string
}

// Load reads configuration from environment variables and an optional config
// file. An empty configFile searches $HOME and the working directory.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".guild-swap")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME")
		v.AddConfigPath(".")
	}

	// Set default values
	v.SetDefault("rpc_url", DefaultRPCURL)
	v.SetDefault("chain_id", DefaultChainID)
	v.SetDefault("contract_address", DefaultContractAddress)
	v.SetDefault("gas_price", DefaultGasPrice)
	v.SetDefault("log.environment", "production")
	v.SetDefault("auto_confirm", false)

	// Read from environment variables, wallet.private_key -> GUILD_SWAP_WALLET_PRIVATE_KEY
	v.SetEnvPrefix("GUILD_SWAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// the config file is optional unless one was asked for explicitly
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Chain: ChainConfig{
			RPCURL:          v.GetString("rpc_url"),
			ChainID:         v.GetInt64("chain_id"),
			ContractAddress: v.GetString("contract_address"),
		},
		Wallet: WalletConfig{
			PrivateKey:  v.GetString("wallet.private_key"),
			KeystoreDir: v.GetString("wallet.keystore_dir"),
			Passphrase:  v.GetString("wallet.passphrase"),
		},
		Log: LogConfig{
			Environment: v.GetString("log.environment"),
			Level:       v.GetString("log.level"),
		},
		JournalPath: v.GetString("journal_path"),
		AutoConfirm: v.GetBool("auto_confirm"),
	}

	if gasPrice := v.GetInt64("gas_price"); gasPrice > 0 {
		cfg.Chain.GasPrice = &gasPrice
	}
	if v.IsSet("gas_limit") {
		gasLimit := v.GetUint64("gas_limit")
		cfg.Chain.GasLimit = &gasLimit
	}

	if cfg.JournalPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.JournalPath = filepath.Join(home, DefaultJournalFileName)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings every command depends on
func (c *Config) Validate() error {
	if c.Chain.RPCURL == "" {
		return fmt.Errorf("RPC URL not configured. Set GUILD_SWAP_RPC_URL or rpc_url in .guild-swap.yaml")
	}
	if c.Chain.ChainID <= 0 {
		return fmt.Errorf("invalid chain id: %d", c.Chain.ChainID)
	}
	if !common.IsHexAddress(c.Chain.ContractAddress) {
		return fmt.Errorf("invalid exchange contract address: %s", c.Chain.ContractAddress)
	}
	return nil
}

// HasWallet reports whether a signing method is configured
func (c *Config) HasWallet() bool {
	return c.Wallet.PrivateKey != "" || c.Wallet.KeystoreDir != ""
}
