// Package config loads service settings from an optional config.yaml, a .env
// file and PPAY_-prefixed environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/protectedpay/protectedpay-api/internal/constants"
	"github.com/protectedpay/protectedpay-api/internal/helpers"
	"github.com/spf13/viper"
)

const envPrefix = "PPAY"

type Config struct {
	Stage     string          `mapstructure:"stage"`
	LogLevel  string          `mapstructure:"log_level"`
	API       APIConfig       `mapstructure:"api"`
	Chain     ChainConfig     `mapstructure:"chain"`
	Contract  ContractConfig  `mapstructure:"contract"`
	Wallet    WalletConfig    `mapstructure:"wallet"`
	Tx        TxConfig        `mapstructure:"tx"`
	RPC       RPCConfig       `mapstructure:"rpc"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Indexer   IndexerConfig   `mapstructure:"indexer"`
	Cache     CacheConfig     `mapstructure:"cache"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

type APIConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// ChainConfig selects the chain the wallet connects to first. RPCURL
// overrides the built-in endpoint for that chain.
type ChainConfig struct {
	ID     int64  `mapstructure:"id"`
	RPCURL string `mapstructure:"rpc_url"`
}

type ContractConfig struct {
	Address string `mapstructure:"address"`
}

// WalletConfig names one signer source. PrivateKey takes precedence over
// PrivateKeyARN; KeystorePath is used when neither is set.
type WalletConfig struct {
	PrivateKey         string `mapstructure:"private_key"`
	PrivateKeyARN      string `mapstructure:"private_key_arn"`
	KeystorePath       string `mapstructure:"keystore_path"`
	KeystorePassphrase string `mapstructure:"keystore_passphrase"`
}

// TxConfig controls contract writes. A zero ConfirmTimeout waits for the
// receipt until the request context ends.
type TxConfig struct {
	ConfirmTimeout time.Duration `mapstructure:"confirm_timeout"`
	PollInterval   time.Duration `mapstructure:"poll_interval"`
}

type RPCConfig struct {
	Timeout         time.Duration `mapstructure:"timeout"`
	MaxRetries      int           `mapstructure:"max_retries"`
	InitialInterval time.Duration `mapstructure:"initial_interval"`
	MaxInterval     time.Duration `mapstructure:"max_interval"`
}

type DatabaseConfig struct {
	URL      string `mapstructure:"url"`
	MaxConns int32  `mapstructure:"max_conns"`
}

type IndexerConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	StartBlock   uint64        `mapstructure:"start_block"`
	BatchSize    uint64        `mapstructure:"batch_size"`
}

type CacheConfig struct {
	LifeWindow  time.Duration `mapstructure:"life_window"`
	CleanWindow time.Duration `mapstructure:"clean_window"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}

type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("stage", constants.DevEnvironment)
	v.SetDefault("log_level", "info")

	v.SetDefault("api.port", 8080)
	v.SetDefault("api.read_timeout", "15s")
	v.SetDefault("api.write_timeout", "3m")
	v.SetDefault("api.shutdown_timeout", "30s")

	v.SetDefault("chain.id", constants.NeoXTestnetChainID)
	v.SetDefault("chain.rpc_url", "")
	v.SetDefault("contract.address", "")

	v.SetDefault("wallet.private_key", "")
	v.SetDefault("wallet.private_key_arn", "")
	v.SetDefault("wallet.keystore_path", "")
	v.SetDefault("wallet.keystore_passphrase", "")

	v.SetDefault("tx.confirm_timeout", "2m")
	v.SetDefault("tx.poll_interval", "2s")

	v.SetDefault("rpc.timeout", "30s")
	v.SetDefault("rpc.max_retries", 3)
	v.SetDefault("rpc.initial_interval", "500ms")
	v.SetDefault("rpc.max_interval", "5s")

	v.SetDefault("database.url", "")
	v.SetDefault("database.max_conns", 10)

	v.SetDefault("indexer.enabled", true)
	v.SetDefault("indexer.poll_interval", "15s")
	v.SetDefault("indexer.start_block", 0)
	v.SetDefault("indexer.batch_size", 2000)

	v.SetDefault("cache.life_window", "10m")
	v.SetDefault("cache.clean_window", "5m")

	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Origin", "Content-Type", "Accept", "X-Correlation-ID"})
	v.SetDefault("cors.exposed_headers", []string{"X-Correlation-ID"})
	v.SetDefault("cors.allow_credentials", false)

	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.requests_per_second", 10)
	v.SetDefault("ratelimit.burst", 20)
}

// Load reads configuration from configDir/config.yaml (optional), then a .env
// file in the working directory (optional), then the environment
func Load(configDir string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configDir != "" {
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// "a, b" in the environment becomes ["a", "b"]
	cfg.CORS.AllowedOrigins = splitList(cfg.CORS.AllowedOrigins)
	cfg.CORS.AllowedMethods = splitList(cfg.CORS.AllowedMethods)
	cfg.CORS.AllowedHeaders = splitList(cfg.CORS.AllowedHeaders)
	cfg.CORS.ExposedHeaders = splitList(cfg.CORS.ExposedHeaders)

	return &cfg, nil
}

func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Validate checks the settings every entry point needs
func (c *Config) Validate() error {
	if !helpers.IsValidStage(c.Stage) {
		return fmt.Errorf("invalid stage %q", c.Stage)
	}
	if c.Contract.Address == "" {
		return errors.New("contract.address is required")
	}
	if !helpers.IsAddressValid(c.Contract.Address) {
		return fmt.Errorf("contract.address %q is not a valid address", c.Contract.Address)
	}
	if common.HexToAddress(c.Contract.Address) == (common.Address{}) {
		return errors.New("contract.address must not be the zero address")
	}
	if !isSupportedChain(c.Chain.ID) && c.Chain.RPCURL == "" {
		return fmt.Errorf("chain.id %d is not built in; chain.rpc_url is required", c.Chain.ID)
	}
	if c.API.Port <= 0 || c.API.Port > 65535 {
		return fmt.Errorf("api.port %d is out of range", c.API.Port)
	}
	if c.Tx.ConfirmTimeout < 0 {
		return errors.New("tx.confirm_timeout must not be negative")
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerSecond <= 0 {
		return errors.New("ratelimit.requests_per_second must be positive")
	}
	return nil
}

// ContractAddress returns the validated contract address
func (c *Config) ContractAddress() common.Address {
	return common.HexToAddress(c.Contract.Address)
}

// IndexerEnabled reports whether the activity indexer should run
func (c *Config) IndexerEnabled() bool {
	return c.Indexer.Enabled && c.Database.URL != ""
}

func isSupportedChain(id int64) bool {
	for _, chain := range constants.SupportedChains {
		if chain.ID == id {
			return true
		}
	}
	return false
}
