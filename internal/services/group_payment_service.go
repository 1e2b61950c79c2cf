package services

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/protectedpay/protectedpay-api/internal/client/protectedpay"
	"github.com/protectedpay/protectedpay-api/internal/constants"
	"github.com/protectedpay/protectedpay-api/internal/helpers"
	"github.com/protectedpay/protectedpay-api/internal/interfaces"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"github.com/protectedpay/protectedpay-api/internal/types/api/params"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"go.uber.org/zap"
)

// GroupPaymentService handles business logic for split payments
type GroupPaymentService struct {
	client interfaces.ProtectedPayClient
	wallet interfaces.WalletSession
	logger *zap.Logger
}

// NewGroupPaymentService creates a new group payment service
func NewGroupPaymentService(client interfaces.ProtectedPayClient, wallet interfaces.WalletSession) *GroupPaymentService {
	return &GroupPaymentService{
		client: client,
		wallet: wallet,
		logger: logger.Log,
	}
}

// Create opens a group payment for a recipient address or username
func (s *GroupPaymentService) Create(ctx context.Context, p params.CreateGroupPaymentParams) (*business.TxReceipt, error) {
	const op = "create group payment"

	if p.NumParticipants < constants.MinGroupParticipants {
		return nil, invalidInput(op, fmt.Errorf("a group payment needs at least %d participants", constants.MinGroupParticipants))
	}
	totalWei, err := helpers.ParsePositiveAmount(p.TotalAmount)
	if err != nil {
		return nil, invalidInput(op, err)
	}
	target, err := helpers.ResolveRecipient(p.Recipient)
	if err != nil {
		return nil, invalidInput(op, err)
	}

	recipient := target.Address
	if target.Kind == helpers.TargetUsername {
		recipient, err = s.client.GetUserByUsername(ctx, target.Username)
		if err != nil {
			return nil, err
		}
		if recipient == (common.Address{}) {
			return nil, invalidInput(op, fmt.Errorf("username %q is not registered", target.Username))
		}
	}

	receipt, err := s.client.CreateGroupPayment(ctx, recipient, p.NumParticipants, totalWei, p.Remarks)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Group payment created",
		zap.String("recipient", recipient.Hex()),
		zap.Uint64("participants", p.NumParticipants),
		zap.String("total_wei", totalWei.String()),
		zap.String("tx_hash", receipt.TxHash.Hex()),
	)
	refreshBalance(ctx, s.wallet, s.logger)
	return receipt, nil
}

// Contribute pays the per-person share of a pending group payment
func (s *GroupPaymentService) Contribute(ctx context.Context, paymentID string) (*business.TxReceipt, error) {
	const op = "contribute to group payment"

	id, err := parseID(op, paymentID)
	if err != nil {
		return nil, err
	}
	payment, err := s.client.GetGroupPaymentDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment.Status != business.GroupPaymentPending {
		return nil, invalidInput(op, fmt.Errorf("group payment is %s", payment.Status))
	}
	if payment.AmountPerPersonWei == nil || payment.AmountPerPersonWei.Sign() <= 0 {
		return nil, protectedpay.NewError(protectedpay.KindInvalidInput, op, protectedpay.ErrNonPositiveAmount)
	}

	receipt, err := s.client.ContributeToGroupPayment(ctx, id, payment.AmountPerPersonWei)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Contributed to group payment",
		zap.String("payment_id", id.Hex()),
		zap.String("amount_wei", payment.AmountPerPersonWei.String()),
		zap.String("tx_hash", receipt.TxHash.Hex()),
	)
	refreshBalance(ctx, s.wallet, s.logger)
	return receipt, nil
}

// Get reads a group payment
func (s *GroupPaymentService) Get(ctx context.Context, paymentID string) (*business.GroupPayment, error) {
	id, err := parseID("get group payment", paymentID)
	if err != nil {
		return nil, err
	}
	return s.client.GetGroupPaymentDetails(ctx, id)
}

// ListForUser returns the group payments address created and the ones it
// contributed to
func (s *GroupPaymentService) ListForUser(ctx context.Context, address string) (*business.GroupPayments, error) {
	user, err := addressOrConnected(s.wallet, "list group payments", address)
	if err != nil {
		return nil, err
	}

	profile, err := s.client.GetUserProfile(ctx, user)
	if err != nil {
		return nil, err
	}

	created, err := s.load(ctx, profile.GroupPaymentIDs)
	if err != nil {
		return nil, err
	}
	participating, err := s.load(ctx, profile.ParticipatedGroupPayments)
	if err != nil {
		return nil, err
	}

	return &business.GroupPayments{Created: created, Participating: participating}, nil
}

func (s *GroupPaymentService) load(ctx context.Context, ids []common.Hash) ([]business.GroupPayment, error) {
	payments := make([]business.GroupPayment, 0, len(ids))
	for _, id := range ids {
		payment, err := s.client.GetGroupPaymentDetails(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load group payment %s: %w", id.Hex(), err)
		}
		payments = append(payments, *payment)
	}
	return payments, nil
}

var _ interfaces.GroupPaymentService = (*GroupPaymentService)(nil)
