package services

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/protectedpay/protectedpay-api/internal/client/protectedpay"
	"github.com/protectedpay/protectedpay-api/internal/interfaces"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"github.com/protectedpay/protectedpay-api/internal/wallet"
	"go.uber.org/zap"
)

// WalletService exposes the wallet session to the outer surfaces
type WalletService struct {
	session interfaces.WalletSession
	logger  *zap.Logger
}

// NewWalletService creates a new wallet service
func NewWalletService(session interfaces.WalletSession) *WalletService {
	return &WalletService{
		session: session,
		logger:  logger.Log,
	}
}

// Status returns the current session snapshot with a fresh balance when
// connected
func (s *WalletService) Status(ctx context.Context) (*business.WalletStatus, error) {
	status := s.session.Status()
	if status.IsConnected {
		if err := s.session.RefreshBalance(ctx); err != nil {
			s.logger.Warn("Failed to refresh wallet balance", zap.Error(err))
		} else {
			status = s.session.Status()
		}
	}
	return &status, nil
}

// Connect connects the wallet
func (s *WalletService) Connect(ctx context.Context) (*business.WalletStatus, error) {
	if err := s.session.Connect(ctx); err != nil {
		return nil, classifyWalletError("connect wallet", err)
	}
	status := s.session.Status()
	return &status, nil
}

// Disconnect drops the wallet session
func (s *WalletService) Disconnect(ctx context.Context) error {
	return s.session.Disconnect(ctx)
}

// SwitchChain moves the wallet to one of the supported chains. The session is
// rebuilt from scratch for the new chain.
func (s *WalletService) SwitchChain(ctx context.Context, chainID *big.Int) (*business.WalletStatus, error) {
	const op = "switch chain"

	if chainID == nil || chainID.Sign() <= 0 {
		return nil, invalidInput(op, fmt.Errorf("chain id must be positive"))
	}
	if !s.supported(chainID) {
		return nil, invalidInput(op, fmt.Errorf("chain %s is not supported", chainID))
	}

	if err := s.session.SwitchChain(ctx, chainID); err != nil {
		return nil, classifyWalletError(op, err)
	}

	s.logger.Info("Wallet chain switched", zap.String("chain_id", chainID.String()))
	status := s.session.Status()
	return &status, nil
}

// ListChains returns the supported chains
func (s *WalletService) ListChains() []business.Chain {
	return s.session.Chains()
}

func (s *WalletService) supported(chainID *big.Int) bool {
	for _, chain := range s.session.Chains() {
		if chain.ID != nil && chain.ID.Cmp(chainID) == 0 {
			return true
		}
	}
	return false
}

func classifyWalletError(op string, err error) error {
	switch {
	case errors.Is(err, wallet.ErrNoProvider), errors.Is(err, wallet.ErrNoAccount), errors.Is(err, wallet.ErrNotConnected):
		return protectedpay.NewError(protectedpay.KindWalletNotConnected, op, err)
	case errors.Is(err, wallet.ErrUnrecognizedChain):
		return protectedpay.NewError(protectedpay.KindInvalidInput, op, err)
	default:
		return protectedpay.NewError(protectedpay.KindRPC, op, err)
	}
}

var _ interfaces.WalletService = (*WalletService)(nil)
