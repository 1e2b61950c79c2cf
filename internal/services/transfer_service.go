package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/protectedpay/protectedpay-api/internal/helpers"
	"github.com/protectedpay/protectedpay-api/internal/interfaces"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"go.uber.org/zap"
)

// TransferService handles business logic for escrowed transfers
type TransferService struct {
	client interfaces.ProtectedPayClient
	wallet interfaces.WalletSession
	logger *zap.Logger
}

// NewTransferService creates a new transfer service
func NewTransferService(client interfaces.ProtectedPayClient, wallet interfaces.WalletSession) *TransferService {
	return &TransferService{
		client: client,
		wallet: wallet,
		logger: logger.Log,
	}
}

// Send escrows amount (decimal, in the chain's native unit) for recipient,
// which is either an address or a registered username
func (s *TransferService) Send(ctx context.Context, recipient, amount string) (*business.TxReceipt, error) {
	const op = "send transfer"

	target, err := helpers.ResolveRecipient(recipient)
	if err != nil {
		return nil, invalidInput(op, err)
	}
	amountWei, err := helpers.ParsePositiveAmount(amount)
	if err != nil {
		return nil, invalidInput(op, err)
	}

	var receipt *business.TxReceipt
	switch target.Kind {
	case helpers.TargetAddress:
		receipt, err = s.client.SendToAddress(ctx, target.Address, amountWei)
	default:
		receipt, err = s.client.SendToUsername(ctx, target.Username, amountWei)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("Transfer sent",
		zap.String("recipient", target.String()),
		zap.String("amount_wei", amountWei.String()),
		zap.String("tx_hash", receipt.TxHash.Hex()),
	)
	refreshBalance(ctx, s.wallet, s.logger)
	return receipt, nil
}

// Claim claims a pending transfer. identifier is a transfer id, the sender's
// address or the sender's username.
func (s *TransferService) Claim(ctx context.Context, identifier string) (*business.TxReceipt, error) {
	target, err := helpers.ResolveClaimTarget(identifier)
	if err != nil {
		return nil, invalidInput("claim transfer", err)
	}

	var receipt *business.TxReceipt
	switch target.Kind {
	case helpers.TargetTransferID:
		receipt, err = s.client.ClaimTransferByID(ctx, target.TransferID)
	case helpers.TargetAddress:
		receipt, err = s.client.ClaimTransferByAddress(ctx, target.Address)
	default:
		receipt, err = s.client.ClaimTransferByUsername(ctx, target.Username)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("Transfer claimed",
		zap.String("target_kind", target.Kind.String()),
		zap.String("target", target.String()),
		zap.String("tx_hash", receipt.TxHash.Hex()),
	)
	refreshBalance(ctx, s.wallet, s.logger)
	return receipt, nil
}

// Refund returns an unclaimed transfer to its sender
func (s *TransferService) Refund(ctx context.Context, transferID string) (*business.TxReceipt, error) {
	id, err := parseID("refund transfer", transferID)
	if err != nil {
		return nil, err
	}

	receipt, err := s.client.RefundTransfer(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Transfer refunded",
		zap.String("transfer_id", id.Hex()),
		zap.String("tx_hash", receipt.TxHash.Hex()),
	)
	refreshBalance(ctx, s.wallet, s.logger)
	return receipt, nil
}

// GetTransfer reads a transfer by id
func (s *TransferService) GetTransfer(ctx context.Context, transferID string) (*business.Transfer, error) {
	id, err := parseID("get transfer", transferID)
	if err != nil {
		return nil, err
	}
	return s.client.GetTransferDetails(ctx, id)
}

// ListTransfers returns the transfers of address, newest first. An empty
// address lists the connected account's transfers.
func (s *TransferService) ListTransfers(ctx context.Context, address string) ([]business.Transfer, error) {
	user, err := addressOrConnected(s.wallet, "list transfers", address)
	if err != nil {
		return nil, err
	}

	profile, err := s.client.GetUserProfile(ctx, user)
	if err != nil {
		return nil, err
	}

	transfers := make([]business.Transfer, 0, len(profile.TransferIDs))
	for _, id := range profile.TransferIDs {
		transfer, err := s.client.GetTransferDetails(ctx, id)
		if err != nil {
			s.logger.Error("Failed to load transfer",
				zap.String("address", user.Hex()),
				zap.String("transfer_id", id.Hex()),
				zap.Error(err))
			return nil, fmt.Errorf("failed to load transfer %s: %w", id.Hex(), err)
		}
		transfers = append(transfers, *transfer)
	}

	sort.SliceStable(transfers, func(i, j int) bool {
		return transfers[i].Timestamp.After(transfers[j].Timestamp)
	})
	return transfers, nil
}

var _ interfaces.TransferService = (*TransferService)(nil)
