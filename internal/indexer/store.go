package indexer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
	"github.com/protectedpay/protectedpay-api/internal/db"
	"github.com/protectedpay/protectedpay-api/internal/helpers"
	"github.com/protectedpay/protectedpay-api/internal/interfaces"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
)

// Pool is what PostgresStore needs from a pgx pool
type Pool interface {
	db.DBTX
	helpers.TxBeginner
}

// PostgresStore keeps indexed events and the cursor in Postgres. Events and
// the cursor of one batch are written in a single transaction.
type PostgresStore struct {
	pool    Pool
	queries *db.Queries
}

// NewPostgresStore creates a store over pool
func NewPostgresStore(pool Pool) *PostgresStore {
	return &PostgresStore{
		pool:    pool,
		queries: db.New(pool),
	}
}

// LastIndexedBlock returns the cursor for a contract, found=false when the
// contract has never been indexed
func (s *PostgresStore) LastIndexedBlock(ctx context.Context, chainID int64, contract common.Address) (uint64, bool, error) {
	block, err := s.queries.GetIndexerCursor(ctx, db.GetIndexerCursorParams{
		ChainID:         chainID,
		ContractAddress: strings.ToLower(contract.Hex()),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get indexer cursor: %w", err)
	}
	return uint64(block), true, nil
}

// saveRetries bounds retries when two indexers race on the same cursor
const saveRetries = 2

// SaveEvents upserts events and advances the cursor to lastBlock
func (s *PostgresStore) SaveEvents(ctx context.Context, chainID int64, contract common.Address, events []business.ContractEvent, lastBlock uint64) error {
	return helpers.WithTransactionRetry(ctx, s.pool, saveRetries, func(tx pgx.Tx) error {
		qtx := s.queries.WithTx(tx)
		for _, ev := range events {
			ev.ChainID = chainID
			if err := qtx.UpsertContractEvent(ctx, db.NewUpsertContractEventParams(contract, ev)); err != nil {
				return fmt.Errorf("failed to store %s event %s/%d: %w", ev.Name, ev.TxHash.Hex(), ev.LogIndex, err)
			}
		}
		if err := qtx.UpsertIndexerCursor(ctx, db.UpsertIndexerCursorParams{
			ChainID:         chainID,
			ContractAddress: strings.ToLower(contract.Hex()),
			LastBlock:       int64(lastBlock),
		}); err != nil {
			return fmt.Errorf("failed to advance indexer cursor: %w", err)
		}
		return nil
	})
}

var _ interfaces.EventStore = (*PostgresStore)(nil)
