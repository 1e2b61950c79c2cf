// Package app wires the wallet session, contract client, services and the
// optional activity indexer from a loaded config. The API server and the
// ppay CLI both start from New.
package app

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/protectedpay/protectedpay-api/internal/cache"
	"github.com/protectedpay/protectedpay-api/internal/client/aws"
	"github.com/protectedpay/protectedpay-api/internal/client/protectedpay"
	"github.com/protectedpay/protectedpay-api/internal/client/rpc"
	"github.com/protectedpay/protectedpay-api/internal/config"
	"github.com/protectedpay/protectedpay-api/internal/contract"
	"github.com/protectedpay/protectedpay-api/internal/db"
	"github.com/protectedpay/protectedpay-api/internal/indexer"
	"github.com/protectedpay/protectedpay-api/internal/interfaces"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"github.com/protectedpay/protectedpay-api/internal/metrics"
	"github.com/protectedpay/protectedpay-api/internal/services"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"github.com/protectedpay/protectedpay-api/internal/wallet"
	"go.uber.org/zap"
)

// App holds everything a surface needs to serve contract operations
type App struct {
	Config    *config.Config
	Metrics   *metrics.Metrics
	Chains    *wallet.ChainRegistry
	Session   *wallet.Session
	Directory *cache.Directory
	Client    *protectedpay.Client

	Transfers     *services.TransferService
	Profiles      *services.ProfileService
	GroupPayments *services.GroupPaymentService
	SavingsPots   *services.SavingsPotService
	Wallet        *services.WalletService
	// Activity is nil when no database is configured
	Activity *services.ActivityService

	pool    *pgxpool.Pool
	indexer *indexer.Indexer
	logger  *zap.Logger
}

// New builds the application. The wallet is connected once; a failed
// connection is logged and leaves the session disconnected so read-only
// operations still work.
func New(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (*App, error) {
	if m == nil {
		m = metrics.New()
	}
	a := &App{
		Config:  cfg,
		Metrics: m,
		Chains:  wallet.DefaultChainRegistry(),
		logger:  logger.Component("app"),
	}

	chain, err := PrimaryChain(cfg.Chain, a.Chains)
	if err != nil {
		return nil, err
	}

	signer, err := loadSigner(ctx, cfg.Wallet)
	if err != nil {
		return nil, err
	}

	rpcOpts := a.rpcOptions()
	var connector wallet.Connector
	if signer != nil {
		connector = wallet.NewKeyConnector(signer, chain, rpc.ChainDialer(rpcOpts...))
	}

	a.Directory, err = cache.NewDirectory(ctx, cache.DirectoryConfig{
		LifeWindow:  cfg.Cache.LifeWindow,
		CleanWindow: cfg.Cache.CleanWindow,
		Shards:      cache.DefaultDirectoryConfig().Shards,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user directory: %w", err)
	}

	a.Session = wallet.NewSession(connector, a.Chains, wallet.WithReloader(wallet.ReloaderFunc(a.reload)))
	if err := a.Session.Connect(ctx); err != nil && !errors.Is(err, wallet.ErrNoProvider) {
		a.logger.Warn("Starting with a disconnected wallet", zap.Error(err))
	}

	codec, err := contract.NewCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to load contract ABI: %w", err)
	}

	a.Client, err = protectedpay.NewClient(protectedpay.Config{
		ContractAddress: cfg.ContractAddress(),
		ConfirmTimeout:  cfg.Tx.ConfirmTimeout,
		PollInterval:    cfg.Tx.PollInterval,
		ViewRetry:       RetryConfig(cfg.RPC),
	}, codec, a.Session,
		protectedpay.WithDirectory(a.Directory),
		protectedpay.WithExplorer(a.Chains),
		protectedpay.WithRecorder(m),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create contract client: %w", err)
	}

	a.Transfers = services.NewTransferService(a.Client, a.Session)
	a.Profiles = services.NewProfileService(a.Client, a.Session)
	a.GroupPayments = services.NewGroupPaymentService(a.Client, a.Session)
	a.SavingsPots = services.NewSavingsPotService(a.Client, a.Session)
	a.Wallet = services.NewWalletService(a.Session)

	if cfg.Database.URL != "" {
		if err := a.openDatabase(ctx, codec, chain); err != nil {
			a.Close()
			return nil, err
		}
	}

	return a, nil
}

// Pool returns the database pool, or nil without a database
func (a *App) Pool() *pgxpool.Pool {
	return a.pool
}

// StartIndexer runs the activity indexer until ctx ends or Close is called.
// It is a no-op when indexing is disabled.
func (a *App) StartIndexer(ctx context.Context) {
	if a.indexer == nil {
		a.logger.Info("Activity indexer disabled")
		return
	}
	a.indexer.Start(ctx)
}

// Indexer returns the activity indexer, or nil when indexing is disabled
func (a *App) Indexer() *indexer.Indexer {
	return a.indexer
}

// Close stops background work and releases connections
func (a *App) Close() {
	if a.indexer != nil {
		a.indexer.Stop()
	}
	if a.Session != nil {
		a.Session.Close()
	}
	if a.Directory != nil {
		if err := a.Directory.Close(); err != nil {
			a.logger.Warn("Failed to close user directory", zap.Error(err))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}

func (a *App) openDatabase(ctx context.Context, codec *contract.Codec, chain business.Chain) error {
	pool, err := db.NewPool(ctx, a.Config.Database.URL, a.Config.Database.MaxConns)
	if err != nil {
		return err
	}
	a.pool = pool

	if err := db.Migrate(ctx, pool); err != nil {
		return err
	}
	a.Activity = services.NewActivityService(db.New(pool), chain.ID.Int64())

	if !a.Config.IndexerEnabled() {
		return nil
	}

	// The indexer keeps its own connection so wallet chain switches never move it
	backend, err := rpc.Dial(ctx, chain.RPCURL, a.rpcOptions()...)
	if err != nil {
		return err
	}
	a.indexer, err = indexer.New(indexer.Config{
		ChainID:      chain.ID.Int64(),
		Contract:     a.Config.ContractAddress(),
		StartBlock:   a.Config.Indexer.StartBlock,
		BatchSize:    a.Config.Indexer.BatchSize,
		PollInterval: a.Config.Indexer.PollInterval,
		Retry:        RetryConfig(a.Config.RPC),
	}, backend, codec, indexer.NewPostgresStore(pool), a.Metrics)
	if err != nil {
		return fmt.Errorf("failed to create indexer: %w", err)
	}
	return nil
}

func (a *App) rpcOptions() []rpc.ClientOption {
	return []rpc.ClientOption{
		rpc.WithTimeout(a.Config.RPC.Timeout),
		rpc.WithRetryConfig(RetryConfig(a.Config.RPC)),
		rpc.WithMetricsCollector(a.Metrics),
		rpc.WithMiddleware(rpc.LoggingMiddleware()),
	}
}

// reload runs on every chain change before the session is rebuilt.
// Usernames are per deployment, so the directory starts over.
func (a *App) reload(_ context.Context, reason string) {
	a.logger.Info("Reloading wallet session", zap.String("reason", reason))
	if err := a.Directory.Reset(); err != nil {
		a.logger.Warn("Failed to reset user directory", zap.Error(err))
	}
}

// PrimaryChain picks the chain the wallet starts on. A configured RPC URL
// overrides the built-in endpoint; an unknown chain id needs one.
func PrimaryChain(cfg config.ChainConfig, chains *wallet.ChainRegistry) (business.Chain, error) {
	id := big.NewInt(cfg.ID)
	chain, known := chains.Get(id)
	if !known {
		if cfg.RPCURL == "" {
			return business.Chain{}, fmt.Errorf("chain %d is not built in and has no rpc_url", cfg.ID)
		}
		chain = business.Chain{
			ID:     id,
			Name:   fmt.Sprintf("Chain %d", cfg.ID),
			Symbol: "ETH",
		}
	}
	if cfg.RPCURL != "" {
		chain.RPCURL = cfg.RPCURL
	}
	if err := chains.Add(chain); err != nil {
		return business.Chain{}, fmt.Errorf("failed to register chain: %w", err)
	}
	return chain, nil
}

// RetryConfig converts the RPC settings into transport retries
func RetryConfig(cfg config.RPCConfig) *rpc.RetryConfig {
	retry := rpc.DefaultRetryConfig()
	retry.MaxRetries = cfg.MaxRetries
	if cfg.InitialInterval > 0 {
		retry.InitialInterval = cfg.InitialInterval
	}
	if cfg.MaxInterval > 0 {
		retry.MaxInterval = cfg.MaxInterval
	}
	return retry
}

func loadSigner(ctx context.Context, cfg config.WalletConfig) (interfaces.Signer, error) {
	signerCfg := wallet.SignerConfig{
		PrivateKey:         cfg.PrivateKey,
		PrivateKeySecretID: cfg.PrivateKeyARN,
		KeystorePath:       cfg.KeystorePath,
		KeystorePassphrase: cfg.KeystorePassphrase,
	}
	if !signerCfg.Configured() {
		logger.Log.Warn("No signer configured; contract writes are unavailable")
		return nil, nil
	}

	var secrets interfaces.SecretsManagerClient
	if cfg.PrivateKey == "" && cfg.PrivateKeyARN != "" {
		client, err := aws.NewSecretsManagerClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create secrets manager client: %w", err)
		}
		secrets = client
	}

	signer, err := wallet.LoadSigner(ctx, signerCfg, secrets)
	if err != nil {
		return nil, fmt.Errorf("failed to load signer: %w", err)
	}
	return signer, nil
}
