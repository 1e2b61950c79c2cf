package interfaces

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
)

// EthBackend is the subset of an Ethereum JSON-RPC client the module talks to.
// *ethclient.Client satisfies it.
type EthBackend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
}

// Signer signs transactions for a single account
type Signer interface {
	Address() common.Address
	SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
}

// Wallet is what the contract client needs from the wallet session. Signer
// returns nil while disconnected; Backend returns nil when no connector is
// configured.
type Wallet interface {
	Signer() Signer
	Backend() EthBackend
	ChainID() *big.Int
}

// WalletSession is the connected-wallet context shared by the services
type WalletSession interface {
	Wallet
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	RefreshBalance(ctx context.Context) error
	SwitchChain(ctx context.Context, chainID *big.Int) error
	Status() business.WalletStatus
	Chains() []business.Chain
}

// ProtectedPayClient exposes one method per ProtectedPay contract operation.
// Writes block until the transaction is confirmed.
type ProtectedPayClient interface {
	RegisterUsername(ctx context.Context, username string) (*business.TxReceipt, error)
	SendToAddress(ctx context.Context, recipient common.Address, amountWei *big.Int) (*business.TxReceipt, error)
	SendToUsername(ctx context.Context, username string, amountWei *big.Int) (*business.TxReceipt, error)
	ClaimTransferByAddress(ctx context.Context, sender common.Address) (*business.TxReceipt, error)
	ClaimTransferByUsername(ctx context.Context, senderUsername string) (*business.TxReceipt, error)
	ClaimTransferByID(ctx context.Context, transferID common.Hash) (*business.TxReceipt, error)
	RefundTransfer(ctx context.Context, transferID common.Hash) (*business.TxReceipt, error)
	GetUserTransfers(ctx context.Context, user common.Address) ([]business.Transfer, error)
	GetTransferDetails(ctx context.Context, transferID common.Hash) (*business.Transfer, error)
	GetUserByAddress(ctx context.Context, user common.Address) (string, error)
	GetUserByUsername(ctx context.Context, username string) (common.Address, error)
	GetUserProfile(ctx context.Context, user common.Address) (*business.UserProfile, error)

	CreateGroupPayment(ctx context.Context, recipient common.Address, numParticipants uint64, totalWei *big.Int, remarks string) (*business.TxReceipt, error)
	ContributeToGroupPayment(ctx context.Context, paymentID common.Hash, amountWei *big.Int) (*business.TxReceipt, error)
	GetGroupPaymentDetails(ctx context.Context, paymentID common.Hash) (*business.GroupPayment, error)

	CreateSavingsPot(ctx context.Context, name string, targetWei, initialWei *big.Int, remarks string) (*business.TxReceipt, error)
	ContributeToSavingsPot(ctx context.Context, potID common.Hash, amountWei *big.Int) (*business.TxReceipt, error)
	BreakPot(ctx context.Context, potID common.Hash) (*business.TxReceipt, error)
	GetSavingsPotDetails(ctx context.Context, potID common.Hash) (*business.SavingsPot, error)
}

// UserDirectory caches the address <-> username mapping
type UserDirectory interface {
	UsernameOf(address common.Address) (string, bool)
	AddressOf(username string) (common.Address, bool)
	Remember(address common.Address, username string)
	Forget(address common.Address)
}

// SecretsManagerClient retrieves secrets such as the signer key
type SecretsManagerClient interface {
	GetSecretString(ctx context.Context, secretID string, fallback string) (string, error)
	GetSecretField(ctx context.Context, secretID, field, fallback string) (string, error)
}

// EventStore persists indexed contract events together with the last block
// the indexer has fully processed
type EventStore interface {
	LastIndexedBlock(ctx context.Context, chainID int64, contract common.Address) (block uint64, found bool, err error)
	SaveEvents(ctx context.Context, chainID int64, contract common.Address, events []business.ContractEvent, lastBlock uint64) error
}
