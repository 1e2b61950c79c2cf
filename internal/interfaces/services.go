package interfaces

import (
	"context"
	"math/big"

	"github.com/protectedpay/protectedpay-api/internal/types/api/params"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
)

// TransferService handles escrowed transfers
type TransferService interface {
	Send(ctx context.Context, recipient, amount string) (*business.TxReceipt, error)
	Claim(ctx context.Context, identifier string) (*business.TxReceipt, error)
	Refund(ctx context.Context, transferID string) (*business.TxReceipt, error)
	GetTransfer(ctx context.Context, transferID string) (*business.Transfer, error)
	ListTransfers(ctx context.Context, address string) ([]business.Transfer, error)
}

// ProfileService handles usernames, profiles and payment QR codes
type ProfileService interface {
	GetProfile(ctx context.Context, address string) (*business.ProfileOverview, error)
	RegisterUsername(ctx context.Context, username string) (*business.TxReceipt, error)
	LookupUser(ctx context.Context, identifier string) (*business.User, error)
	PaymentQR(ctx context.Context, address string) (*business.PaymentQR, error)
	ParsePaymentQR(payload string) (*business.PaymentRequest, error)
}

// GroupPaymentService handles split payments
type GroupPaymentService interface {
	Create(ctx context.Context, params params.CreateGroupPaymentParams) (*business.TxReceipt, error)
	Contribute(ctx context.Context, paymentID string) (*business.TxReceipt, error)
	Get(ctx context.Context, paymentID string) (*business.GroupPayment, error)
	ListForUser(ctx context.Context, address string) (*business.GroupPayments, error)
}

// SavingsPotService handles savings pots
type SavingsPotService interface {
	Create(ctx context.Context, params params.CreateSavingsPotParams) (*business.TxReceipt, error)
	Contribute(ctx context.Context, potID, amount string) (*business.TxReceipt, error)
	Break(ctx context.Context, potID string) (*business.TxReceipt, error)
	Get(ctx context.Context, potID string) (*business.SavingsPot, error)
	ListForUser(ctx context.Context, address string) ([]business.SavingsPot, error)
}

// WalletService exposes the wallet session
type WalletService interface {
	Status(ctx context.Context) (*business.WalletStatus, error)
	Connect(ctx context.Context) (*business.WalletStatus, error)
	Disconnect(ctx context.Context) error
	SwitchChain(ctx context.Context, chainID *big.Int) (*business.WalletStatus, error)
	ListChains() []business.Chain
}

// ActivityService reads indexed contract events
type ActivityService interface {
	ListActivity(ctx context.Context, params params.ListActivityParams) ([]business.ContractEvent, error)
	ListEntityHistory(ctx context.Context, entityID string) ([]business.ContractEvent, error)
}
