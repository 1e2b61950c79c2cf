package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/protectedpay/protectedpay-api/internal/client/protectedpay"
	"github.com/protectedpay/protectedpay-api/internal/helpers"
	"github.com/protectedpay/protectedpay-api/internal/interfaces"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const (
	paymentQRApp  = "ProtectedPay"
	paymentQRType = "payment"
	paymentQRSize = 256
)

// paymentQRPayload is the JSON carried by a payment QR code
type paymentQRPayload struct {
	App      string `json:"app"`
	Username string `json:"username,omitempty"`
	Address  string `json:"address"`
	Type     string `json:"type"`
}

// ProfileService handles usernames, profiles and payment QR codes
type ProfileService struct {
	client interfaces.ProtectedPayClient
	wallet interfaces.WalletSession
	logger *zap.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(client interfaces.ProtectedPayClient, wallet interfaces.WalletSession) *ProfileService {
	return &ProfileService{
		client: client,
		wallet: wallet,
		logger: logger.Log,
	}
}

// GetProfile returns the username, balance and transfers of address, or of
// the connected account when address is empty
func (s *ProfileService) GetProfile(ctx context.Context, address string) (*business.ProfileOverview, error) {
	const op = "get profile"

	user, err := addressOrConnected(s.wallet, op, address)
	if err != nil {
		return nil, err
	}
	backend := s.wallet.Backend()
	if backend == nil {
		return nil, protectedpay.NewError(protectedpay.KindWalletNotConnected, op, protectedpay.ErrWalletNotConnected)
	}

	username, err := s.client.GetUserByAddress(ctx, user)
	if err != nil {
		return nil, err
	}
	balance, err := backend.BalanceAt(ctx, user, nil)
	if err != nil {
		s.logger.Error("Failed to get balance", zap.String("address", user.Hex()), zap.Error(err))
		return nil, protectedpay.NewError(protectedpay.KindRPC, op, fmt.Errorf("failed to get balance: %w", err))
	}
	transfers, err := s.client.GetUserTransfers(ctx, user)
	if err != nil {
		return nil, err
	}

	return &business.ProfileOverview{
		Address:    user,
		Username:   username,
		BalanceWei: balance,
		Transfers:  transfers,
	}, nil
}

// RegisterUsername registers username for the connected account. An account
// that already has a username is refused before anything is sent.
func (s *ProfileService) RegisterUsername(ctx context.Context, username string) (*business.TxReceipt, error) {
	const op = "register username"

	if err := helpers.ValidateUsername(username); err != nil {
		return nil, invalidInput(op, err)
	}
	signer := s.wallet.Signer()
	if signer == nil {
		return nil, protectedpay.NewError(protectedpay.KindWalletNotConnected, op, protectedpay.ErrWalletNotConnected)
	}

	existing, err := s.client.GetUserByAddress(ctx, signer.Address())
	if err != nil {
		return nil, err
	}
	if existing != "" {
		return nil, protectedpay.NewError(protectedpay.KindAlreadyRegistered, op,
			fmt.Errorf("%w: %s", protectedpay.ErrAlreadyRegistered, existing))
	}

	owner, err := s.client.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if owner != (common.Address{}) {
		return nil, invalidInput(op, fmt.Errorf("username %q is already taken", username))
	}

	receipt, err := s.client.RegisterUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Username registered",
		zap.String("address", signer.Address().Hex()),
		zap.String("username", username),
		zap.String("tx_hash", receipt.TxHash.Hex()),
	)
	return receipt, nil
}

// LookupUser resolves an address to its username or a username to its address
func (s *ProfileService) LookupUser(ctx context.Context, identifier string) (*business.User, error) {
	const op = "lookup user"

	target, err := helpers.ResolveRecipient(identifier)
	if err != nil {
		return nil, invalidInput(op, err)
	}

	if target.Kind == helpers.TargetAddress {
		username, err := s.client.GetUserByAddress(ctx, target.Address)
		if err != nil {
			return nil, err
		}
		return &business.User{Address: target.Address, Username: username}, nil
	}

	address, err := s.client.GetUserByUsername(ctx, target.Username)
	if err != nil {
		return nil, err
	}
	if address == (common.Address{}) {
		return nil, protectedpay.NewError(protectedpay.KindNotFound, op,
			fmt.Errorf("username %q: %w", target.Username, protectedpay.ErrNotFound))
	}
	return &business.User{Address: address, Username: target.Username}, nil
}

// PaymentQR renders a payment request for address as a QR code
func (s *ProfileService) PaymentQR(ctx context.Context, address string) (*business.PaymentQR, error) {
	user, err := addressOrConnected(s.wallet, "payment qr", address)
	if err != nil {
		return nil, err
	}

	username, err := s.client.GetUserByAddress(ctx, user)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(paymentQRPayload{
		App:      paymentQRApp,
		Username: username,
		Address:  user.Hex(),
		Type:     paymentQRType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode payment request: %w", err)
	}

	qr, err := qrcode.New(string(payload), qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}
	pngBytes, err := qr.PNG(paymentQRSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return &business.PaymentQR{
		Payload: string(payload),
		DataURL: fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(pngBytes)),
	}, nil
}

// ParsePaymentQR decodes a scanned QR code. Besides the JSON payment request
// it accepts a bare address or an ethereum: URI.
func (s *ProfileService) ParsePaymentQR(payload string) (*business.PaymentRequest, error) {
	const op = "parse payment qr"

	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, invalidInput(op, fmt.Errorf("QR payload is empty"))
	}

	if strings.HasPrefix(payload, "{") {
		var decoded paymentQRPayload
		if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
			return nil, invalidInput(op, fmt.Errorf("malformed payment request: %w", err))
		}
		if decoded.App != paymentQRApp || decoded.Type != paymentQRType {
			return nil, invalidInput(op, fmt.Errorf("not a ProtectedPay payment request"))
		}
		address, err := helpers.ParseAddress(decoded.Address)
		if err != nil {
			return nil, invalidInput(op, err)
		}
		return &business.PaymentRequest{Address: address, Username: decoded.Username}, nil
	}

	raw := strings.TrimPrefix(payload, "ethereum:")
	if i := strings.IndexAny(raw, "@/?"); i >= 0 {
		raw = raw[:i]
	}
	address, err := helpers.ParseAddress(raw)
	if err != nil {
		return nil, invalidInput(op, err)
	}
	return &business.PaymentRequest{Address: address}, nil
}

var _ interfaces.ProfileService = (*ProfileService)(nil)
