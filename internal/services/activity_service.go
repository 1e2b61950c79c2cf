package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/protectedpay/protectedpay-api/internal/db"
	"github.com/protectedpay/protectedpay-api/internal/helpers"
	"github.com/protectedpay/protectedpay-api/internal/interfaces"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"github.com/protectedpay/protectedpay-api/internal/types/api/params"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"go.uber.org/zap"
)

// ActivityService reads the contract events mirrored by the indexer
type ActivityService struct {
	queries db.Querier
	chainID int64
	logger  *zap.Logger
}

// NewActivityService creates a new activity service for one chain
func NewActivityService(queries db.Querier, chainID int64) *ActivityService {
	return &ActivityService{
		queries: queries,
		chainID: chainID,
		logger:  logger.Log,
	}
}

// ListActivity returns the events an address took part in, newest first
func (s *ActivityService) ListActivity(ctx context.Context, p params.ListActivityParams) ([]business.ContractEvent, error) {
	const op = "list activity"

	address, err := helpers.ParseAddress(p.Address)
	if err != nil {
		return nil, invalidInput(op, err)
	}
	if p.Offset < 0 {
		return nil, invalidInput(op, fmt.Errorf("offset must not be negative"))
	}
	limit := params.NormalizeLimit(p.Limit)

	rows, err := s.queries.ListContractEventsByAddress(ctx, db.ListContractEventsByAddressParams{
		ChainID: s.chainID,
		Actor:   db.TextOf(strings.ToLower(address.Hex())),
		Limit:   limit,
		Offset:  p.Offset,
	})
	if err != nil {
		s.logger.Error("Failed to list activity",
			zap.String("address", address.Hex()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	events := make([]business.ContractEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, row.ToBusiness())
	}
	return events, nil
}

// ListEntityHistory returns the events of one transfer, group payment or pot
// in chain order
func (s *ActivityService) ListEntityHistory(ctx context.Context, entityID string) ([]business.ContractEvent, error) {
	id, err := parseID("list entity history", entityID)
	if err != nil {
		return nil, err
	}

	rows, err := s.queries.ListContractEventsByEntity(ctx, db.ListContractEventsByEntityParams{
		ChainID:  s.chainID,
		EntityID: db.TextOf(id.Hex()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list entity history: %w", err)
	}

	events := make([]business.ContractEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, row.ToBusiness())
	}
	return events, nil
}

var _ interfaces.ActivityService = (*ActivityService)(nil)
