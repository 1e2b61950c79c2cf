// Package indexer mirrors ProtectedPay contract events into the activity
// store so transfer, group payment and savings pot history can be queried
// without scanning the chain.
package indexer

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/protectedpay/protectedpay-api/internal/client/rpc"
	"github.com/protectedpay/protectedpay-api/internal/contract"
	"github.com/protectedpay/protectedpay-api/internal/interfaces"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"go.uber.org/zap"
)

const (
	defaultBatchSize    uint64 = 2000
	defaultPollInterval        = 15 * time.Second
)

// Recorder receives indexer progress, typically for Prometheus
type Recorder interface {
	RecordIndexedEvent(name string)
	SetIndexerBlock(block uint64)
	RecordIndexerError()
}

type noopRecorder struct{}

func (noopRecorder) RecordIndexedEvent(string) {}
func (noopRecorder) SetIndexerBlock(uint64)    {}
func (noopRecorder) RecordIndexerError()       {}

// Config holds the indexer settings
type Config struct {
	ChainID  int64
	Contract common.Address
	// StartBlock is where a contract without a cursor starts
	StartBlock   uint64
	BatchSize    uint64
	PollInterval time.Duration
	// Retry is applied to each block window; nil disables retries
	Retry *rpc.RetryConfig
}

// Indexer polls contract logs from a persisted cursor up to the chain head
type Indexer struct {
	config   Config
	backend  interfaces.EthBackend
	codec    *contract.Codec
	store    interfaces.EventStore
	recorder Recorder
	logger   *zap.Logger
	now      func() time.Time

	mu      sync.Mutex
	running bool
	wg      sync.WaitGroup
	cancel  context.CancelFunc
}

// New creates an indexer. recorder may be nil.
func New(config Config, backend interfaces.EthBackend, codec *contract.Codec, store interfaces.EventStore, recorder Recorder) (*Indexer, error) {
	if backend == nil || codec == nil || store == nil {
		return nil, errors.New("indexer requires a backend, a codec and a store")
	}
	if config.Contract == (common.Address{}) {
		return nil, errors.New("indexer requires a contract address")
	}
	if config.BatchSize == 0 {
		config.BatchSize = defaultBatchSize
	}
	if config.PollInterval <= 0 {
		config.PollInterval = defaultPollInterval
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}

	return &Indexer{
		config:   config,
		backend:  backend,
		codec:    codec,
		store:    store,
		recorder: recorder,
		logger: logger.Log.With(
			zap.String("component", "indexer"),
			zap.Int64("chain_id", config.ChainID),
			zap.String("contract", config.Contract.Hex()),
		),
		now: time.Now,
	}, nil
}

// Start launches the poll loop. Calling Start on a running indexer is a no-op.
func (ix *Indexer) Start(ctx context.Context) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if ix.running {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	ix.cancel = cancel
	ix.running = true

	ix.logger.Info("Starting contract event indexer",
		zap.Uint64("batch_size", ix.config.BatchSize),
		zap.Duration("poll_interval", ix.config.PollInterval))

	ix.wg.Add(1)
	go func() {
		defer ix.wg.Done()
		ix.run(ctx)
	}()
}

// Stop cancels the poll loop and waits for it to exit
func (ix *Indexer) Stop() {
	ix.mu.Lock()
	if !ix.running {
		ix.mu.Unlock()
		return
	}
	ix.running = false
	cancel := ix.cancel
	ix.mu.Unlock()

	ix.logger.Info("Stopping contract event indexer")
	cancel()
	ix.wg.Wait()
	ix.logger.Info("Contract event indexer stopped")
}

func (ix *Indexer) run(ctx context.Context) {
	ticker := time.NewTicker(ix.config.PollInterval)
	defer ticker.Stop()

	for {
		if _, err := ix.Sync(ctx); err != nil && ctx.Err() == nil {
			ix.recorder.RecordIndexerError()
			ix.logger.Error("Indexer sync failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Sync indexes every block between the cursor and the current head and
// returns the number of events stored
func (ix *Indexer) Sync(ctx context.Context) (int, error) {
	head, err := ix.backend.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get head block: %w", err)
	}

	from := ix.config.StartBlock
	last, found, err := ix.store.LastIndexedBlock(ctx, ix.config.ChainID, ix.config.Contract)
	if err != nil {
		return 0, err
	}
	if found {
		from = last + 1
	}

	total := 0
	for from <= head {
		to := from + ix.config.BatchSize - 1
		if to > head {
			to = head
		}

		n, err := ix.syncWindow(ctx, from, to)
		if err != nil {
			return total, err
		}
		total += n
		from = to + 1
	}
	return total, nil
}

// syncWindow indexes [from, to] and advances the cursor to to
func (ix *Indexer) syncWindow(ctx context.Context, from, to uint64) (int, error) {
	var events []business.ContractEvent

	operation := func() error {
		logs, err := ix.backend.FilterLogs(ctx, ethereum.FilterQuery{
			FromBlock: new(big.Int).SetUint64(from),
			ToBlock:   new(big.Int).SetUint64(to),
			Addresses: []common.Address{ix.config.Contract},
			Topics:    [][]common.Hash{ix.codec.EventTopics()},
		})
		if err != nil {
			return fmt.Errorf("failed to filter logs %d-%d: %w", from, to, err)
		}

		events = events[:0]
		for _, l := range logs {
			if l.Removed {
				continue
			}
			ev, err := ix.codec.DecodeEvent(l)
			if err != nil {
				ix.logger.Debug("Skipping undecodable log",
					zap.String("tx_hash", l.TxHash.Hex()),
					zap.Uint("log_index", l.Index),
					zap.Error(err))
				continue
			}
			ev.ChainID = ix.config.ChainID
			ev.ObservedAt = ix.now()
			events = append(events, *ev)
		}

		return ix.store.SaveEvents(ctx, ix.config.ChainID, ix.config.Contract, events, to)
	}

	var err error
	if ix.config.Retry == nil {
		err = operation()
	} else {
		err = backoff.RetryNotify(operation, ix.config.Retry.NewBackOff(ctx), func(err error, wait time.Duration) {
			ix.recorder.RecordIndexerError()
			ix.logger.Warn("Indexer window failed, retrying",
				zap.Uint64("from", from),
				zap.Uint64("to", to),
				zap.Duration("wait", wait),
				zap.Error(err))
		})
	}
	if err != nil {
		return 0, err
	}

	for _, ev := range events {
		ix.recorder.RecordIndexedEvent(ev.Name)
	}
	ix.recorder.SetIndexerBlock(to)
	if len(events) > 0 {
		ix.logger.Info("Indexed contract events",
			zap.Uint64("from", from),
			zap.Uint64("to", to),
			zap.Int("events", len(events)))
	}
	return len(events), nil
}
