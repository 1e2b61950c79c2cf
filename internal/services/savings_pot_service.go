package services

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/protectedpay/protectedpay-api/internal/helpers"
	"github.com/protectedpay/protectedpay-api/internal/interfaces"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"github.com/protectedpay/protectedpay-api/internal/types/api/params"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"go.uber.org/zap"
)

// SavingsPotService handles business logic for savings pots
type SavingsPotService struct {
	client interfaces.ProtectedPayClient
	wallet interfaces.WalletSession
	logger *zap.Logger
}

// NewSavingsPotService creates a new savings pot service
func NewSavingsPotService(client interfaces.ProtectedPayClient, wallet interfaces.WalletSession) *SavingsPotService {
	return &SavingsPotService{
		client: client,
		wallet: wallet,
		logger: logger.Log,
	}
}

// Create opens a savings pot, optionally seeding it with an initial deposit
func (s *SavingsPotService) Create(ctx context.Context, p params.CreateSavingsPotParams) (*business.TxReceipt, error) {
	const op = "create savings pot"

	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, invalidInput(op, fmt.Errorf("pot name is required"))
	}
	targetWei, err := helpers.ParsePositiveAmount(p.TargetAmount)
	if err != nil {
		return nil, invalidInput(op, fmt.Errorf("target: %w", err))
	}
	initialWei := new(big.Int)
	if strings.TrimSpace(p.InitialAmount) != "" {
		initialWei, err = helpers.ParseAmount(p.InitialAmount)
		if err != nil {
			return nil, invalidInput(op, fmt.Errorf("initial amount: %w", err))
		}
		if initialWei.Sign() < 0 {
			return nil, invalidInput(op, fmt.Errorf("initial amount must not be negative"))
		}
	}

	receipt, err := s.client.CreateSavingsPot(ctx, name, targetWei, initialWei, p.Remarks)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Savings pot created",
		zap.String("name", name),
		zap.String("target_wei", targetWei.String()),
		zap.String("initial_wei", initialWei.String()),
		zap.String("tx_hash", receipt.TxHash.Hex()),
	)
	refreshBalance(ctx, s.wallet, s.logger)
	return receipt, nil
}

// Contribute adds amount to an active pot
func (s *SavingsPotService) Contribute(ctx context.Context, potID, amount string) (*business.TxReceipt, error) {
	const op = "contribute to savings pot"

	id, err := parseID(op, potID)
	if err != nil {
		return nil, err
	}
	amountWei, err := helpers.ParsePositiveAmount(amount)
	if err != nil {
		return nil, invalidInput(op, err)
	}

	receipt, err := s.client.ContributeToSavingsPot(ctx, id, amountWei)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Contributed to savings pot",
		zap.String("pot_id", id.Hex()),
		zap.String("amount_wei", amountWei.String()),
		zap.String("tx_hash", receipt.TxHash.Hex()),
	)
	refreshBalance(ctx, s.wallet, s.logger)
	return receipt, nil
}

// Break releases an active pot's balance to its owner
func (s *SavingsPotService) Break(ctx context.Context, potID string) (*business.TxReceipt, error) {
	const op = "break savings pot"

	id, err := parseID(op, potID)
	if err != nil {
		return nil, err
	}
	pot, err := s.client.GetSavingsPotDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if pot.Status == business.SavingsPotBroken {
		return nil, invalidInput(op, fmt.Errorf("savings pot is already broken"))
	}

	receipt, err := s.client.BreakPot(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Savings pot broken",
		zap.String("pot_id", id.Hex()),
		zap.String("tx_hash", receipt.TxHash.Hex()),
	)
	refreshBalance(ctx, s.wallet, s.logger)
	return receipt, nil
}

// Get reads a savings pot
func (s *SavingsPotService) Get(ctx context.Context, potID string) (*business.SavingsPot, error) {
	id, err := parseID("get savings pot", potID)
	if err != nil {
		return nil, err
	}
	return s.client.GetSavingsPotDetails(ctx, id)
}

// ListForUser returns the pots owned by address
func (s *SavingsPotService) ListForUser(ctx context.Context, address string) ([]business.SavingsPot, error) {
	user, err := addressOrConnected(s.wallet, "list savings pots", address)
	if err != nil {
		return nil, err
	}

	profile, err := s.client.GetUserProfile(ctx, user)
	if err != nil {
		return nil, err
	}

	pots := make([]business.SavingsPot, 0, len(profile.SavingsPotIDs))
	for _, id := range profile.SavingsPotIDs {
		pot, err := s.client.GetSavingsPotDetails(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load savings pot %s: %w", id.Hex(), err)
		}
		pots = append(pots, *pot)
	}
	return pots, nil
}

var _ interfaces.SavingsPotService = (*SavingsPotService)(nil)
