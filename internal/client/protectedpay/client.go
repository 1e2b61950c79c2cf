// Package protectedpay is the typed client for the ProtectedPay contract. Every
// write is signed by the connected wallet and waits for its receipt.
package protectedpay

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
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/protectedpay/protectedpay-api/internal/client/rpc"
	"github.com/protectedpay/protectedpay-api/internal/contract"
	"github.com/protectedpay/protectedpay-api/internal/helpers"
	"github.com/protectedpay/protectedpay-api/internal/interfaces"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"go.uber.org/zap"
)

const (
	defaultPollInterval = 2 * time.Second
	// gas estimates are padded by this percentage
	gasLimitBufferPercent = 20
)

// Transaction outcomes reported to the TxRecorder
const (
	OutcomeConfirmed = "confirmed"
	OutcomeFailed    = "failed"
)

// TxRecorder receives one observation per contract write
type TxRecorder interface {
	RecordContractTx(operation, outcome string, duration time.Duration)
}

// ExplorerLinker builds block explorer links for receipts
type ExplorerLinker interface {
	ExplorerTxURL(chainID *big.Int, txHash common.Hash) string
}

// Config holds the contract client settings
type Config struct {
	ContractAddress common.Address
	// ConfirmTimeout bounds the wait for a receipt; zero waits until the
	// caller's context is done
	ConfirmTimeout time.Duration
	PollInterval   time.Duration
	// ViewRetry retries read-only calls; nil disables retries
	ViewRetry *rpc.RetryConfig
}

// Option configures optional client collaborators
type Option func(*Client)

// WithDirectory caches username lookups
func WithDirectory(directory interfaces.UserDirectory) Option {
	return func(c *Client) {
		c.directory = directory
	}
}

// WithExplorer adds explorer links to receipts
func WithExplorer(linker ExplorerLinker) Option {
	return func(c *Client) {
		c.explorer = linker
	}
}

// WithRecorder reports write outcomes, typically to Prometheus
func WithRecorder(recorder TxRecorder) Option {
	return func(c *Client) {
		c.recorder = recorder
	}
}

// Client implements interfaces.ProtectedPayClient on top of the wallet session
type Client struct {
	config    Config
	codec     *contract.Codec
	wallet    interfaces.Wallet
	directory interfaces.UserDirectory
	explorer  ExplorerLinker
	recorder  TxRecorder
	logger    *zap.Logger

	locksMu sync.Mutex
	locks   map[common.Address]*sync.Mutex
}

// NewClient creates a contract client
func NewClient(config Config, codec *contract.Codec, wallet interfaces.Wallet, opts ...Option) (*Client, error) {
	if codec == nil {
		return nil, fmt.Errorf("contract codec is required")
	}
	if wallet == nil {
		return nil, fmt.Errorf("wallet is required")
	}
	if config.ContractAddress == (common.Address{}) {
		return nil, fmt.Errorf("contract address is required")
	}
	if config.PollInterval <= 0 {
		config.PollInterval = defaultPollInterval
	}

	c := &Client{
		config: config,
		codec:  codec,
		wallet: wallet,
		logger: logger.Log.With(zap.String("component", "protectedpay_client"), zap.String("contract", config.ContractAddress.Hex())),
		locks:  make(map[common.Address]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ContractAddress returns the address of the contract the client talks to
func (c *Client) ContractAddress() common.Address {
	return c.config.ContractAddress
}

// RegisterUsername registers a username for the connected address
func (c *Client) RegisterUsername(ctx context.Context, username string) (*business.TxReceipt, error) {
	if err := helpers.ValidateUsername(username); err != nil {
		return nil, NewError(KindInvalidInput, contract.MethodRegisterUsername, err)
	}
	receipt, err := c.transact(ctx, contract.MethodRegisterUsername, nil, username)
	if err != nil {
		return nil, err
	}
	if c.directory != nil {
		c.directory.Remember(receipt.From, username)
	}
	return receipt, nil
}

// SendToAddress escrows amountWei for recipient
func (c *Client) SendToAddress(ctx context.Context, recipient common.Address, amountWei *big.Int) (*business.TxReceipt, error) {
	if recipient == (common.Address{}) {
		return nil, NewError(KindInvalidInput, contract.MethodSendToAddress, helpers.ErrInvalidAddress)
	}
	return c.transact(ctx, contract.MethodSendToAddress, amountWei, recipient)
}

// SendToUsername escrows amountWei for the owner of username
func (c *Client) SendToUsername(ctx context.Context, username string, amountWei *big.Int) (*business.TxReceipt, error) {
	if username == "" {
		return nil, NewError(KindInvalidInput, contract.MethodSendToUsername, helpers.ErrInvalidUsername)
	}
	return c.transact(ctx, contract.MethodSendToUsername, amountWei, username)
}

// ClaimTransferByAddress claims the pending transfer sent by sender
func (c *Client) ClaimTransferByAddress(ctx context.Context, sender common.Address) (*business.TxReceipt, error) {
	if sender == (common.Address{}) {
		return nil, NewError(KindInvalidInput, contract.MethodClaimTransferByAddress, helpers.ErrInvalidAddress)
	}
	return c.transact(ctx, contract.MethodClaimTransferByAddress, nil, sender)
}

// ClaimTransferByUsername claims the pending transfer sent by senderUsername
func (c *Client) ClaimTransferByUsername(ctx context.Context, senderUsername string) (*business.TxReceipt, error) {
	if senderUsername == "" {
		return nil, NewError(KindInvalidInput, contract.MethodClaimTransferByUsername, helpers.ErrInvalidUsername)
	}
	return c.transact(ctx, contract.MethodClaimTransferByUsername, nil, senderUsername)
}

// ClaimTransferByID claims a transfer by its id
func (c *Client) ClaimTransferByID(ctx context.Context, transferID common.Hash) (*business.TxReceipt, error) {
	return c.transact(ctx, contract.MethodClaimTransferByID, nil, [32]byte(transferID))
}

// RefundTransfer returns an unclaimed transfer to its sender
func (c *Client) RefundTransfer(ctx context.Context, transferID common.Hash) (*business.TxReceipt, error) {
	return c.transact(ctx, contract.MethodRefundTransfer, nil, [32]byte(transferID))
}

// GetUserTransfers lists the transfers sent or received by user
func (c *Client) GetUserTransfers(ctx context.Context, user common.Address) ([]business.Transfer, error) {
	data, err := c.call(ctx, contract.MethodGetUserTransfers, user)
	if err != nil {
		return nil, err
	}
	transfers, err := c.codec.UnpackTransfers(data)
	if err != nil {
		return nil, NewError(KindRPC, contract.MethodGetUserTransfers, err)
	}
	return transfers, nil
}

// GetTransferDetails reads one transfer
func (c *Client) GetTransferDetails(ctx context.Context, transferID common.Hash) (*business.Transfer, error) {
	data, err := c.call(ctx, contract.MethodGetTransferDetails, [32]byte(transferID))
	if err != nil {
		return nil, err
	}
	transfer, err := c.codec.UnpackTransfer(transferID, data)
	if err != nil {
		return nil, NewError(KindRPC, contract.MethodGetTransferDetails, err)
	}
	if transfer.Sender == (common.Address{}) {
		return nil, NewError(KindNotFound, contract.MethodGetTransferDetails, fmt.Errorf("transfer %s: %w", transferID.Hex(), ErrNotFound))
	}
	return transfer, nil
}

// GetUserByAddress returns the username registered for user, or "" when there
// is none
func (c *Client) GetUserByAddress(ctx context.Context, user common.Address) (string, error) {
	if c.directory != nil {
		if username, ok := c.directory.UsernameOf(user); ok {
			return username, nil
		}
	}
	data, err := c.call(ctx, contract.MethodGetUserByAddress, user)
	if err != nil {
		return "", err
	}
	username, err := c.codec.UnpackUsername(data)
	if err != nil {
		return "", NewError(KindRPC, contract.MethodGetUserByAddress, err)
	}
	if c.directory != nil {
		c.directory.Remember(user, username)
	}
	return username, nil
}

// GetUserByUsername returns the address owning username, or the zero address
// when it is not registered
func (c *Client) GetUserByUsername(ctx context.Context, username string) (common.Address, error) {
	if username == "" {
		return common.Address{}, NewError(KindInvalidInput, contract.MethodGetUserByUsername, helpers.ErrInvalidUsername)
	}
	if c.directory != nil {
		if address, ok := c.directory.AddressOf(username); ok {
			return address, nil
		}
	}
	data, err := c.call(ctx, contract.MethodGetUserByUsername, username)
	if err != nil {
		return common.Address{}, err
	}
	address, err := c.codec.UnpackAddress(data)
	if err != nil {
		return common.Address{}, NewError(KindRPC, contract.MethodGetUserByUsername, err)
	}
	if c.directory != nil {
		c.directory.Remember(address, username)
	}
	return address, nil
}

// GetUserProfile reads the profile index of user
func (c *Client) GetUserProfile(ctx context.Context, user common.Address) (*business.UserProfile, error) {
	data, err := c.call(ctx, contract.MethodGetUserProfile, user)
	if err != nil {
		return nil, err
	}
	profile, err := c.codec.UnpackUserProfile(user, data)
	if err != nil {
		return nil, NewError(KindRPC, contract.MethodGetUserProfile, err)
	}
	if c.directory != nil {
		c.directory.Remember(user, profile.Username)
	}
	return profile, nil
}

// CreateGroupPayment opens a group payment funded with totalWei up front
func (c *Client) CreateGroupPayment(ctx context.Context, recipient common.Address, numParticipants uint64, totalWei *big.Int, remarks string) (*business.TxReceipt, error) {
	if recipient == (common.Address{}) {
		return nil, NewError(KindInvalidInput, contract.MethodCreateGroupPayment, helpers.ErrInvalidAddress)
	}
	if numParticipants == 0 {
		return nil, NewError(KindInvalidInput, contract.MethodCreateGroupPayment, fmt.Errorf("number of participants must be positive"))
	}
	return c.transact(ctx, contract.MethodCreateGroupPayment, totalWei, recipient, new(big.Int).SetUint64(numParticipants), remarks)
}

// ContributeToGroupPayment pays a share of a group payment
func (c *Client) ContributeToGroupPayment(ctx context.Context, paymentID common.Hash, amountWei *big.Int) (*business.TxReceipt, error) {
	return c.transact(ctx, contract.MethodContributeToGroupPayment, amountWei, [32]byte(paymentID))
}

// GetGroupPaymentDetails reads one group payment
func (c *Client) GetGroupPaymentDetails(ctx context.Context, paymentID common.Hash) (*business.GroupPayment, error) {
	data, err := c.call(ctx, contract.MethodGetGroupPaymentDetails, [32]byte(paymentID))
	if err != nil {
		return nil, err
	}
	payment, err := c.codec.UnpackGroupPayment(paymentID, data)
	if err != nil {
		return nil, NewError(KindRPC, contract.MethodGetGroupPaymentDetails, err)
	}
	if payment.Creator == (common.Address{}) {
		return nil, NewError(KindNotFound, contract.MethodGetGroupPaymentDetails, fmt.Errorf("group payment %s: %w", paymentID.Hex(), ErrNotFound))
	}
	return payment, nil
}

// CreateSavingsPot opens a savings pot. initialWei may be zero.
func (c *Client) CreateSavingsPot(ctx context.Context, name string, targetWei, initialWei *big.Int, remarks string) (*business.TxReceipt, error) {
	if name == "" {
		return nil, NewError(KindInvalidInput, contract.MethodCreateSavingsPot, fmt.Errorf("pot name is required"))
	}
	if targetWei == nil || targetWei.Sign() <= 0 {
		return nil, NewError(KindInvalidInput, contract.MethodCreateSavingsPot, fmt.Errorf("target: %w", ErrNonPositiveAmount))
	}
	if initialWei == nil {
		initialWei = new(big.Int)
	}
	if initialWei.Sign() < 0 {
		return nil, NewError(KindInvalidInput, contract.MethodCreateSavingsPot, fmt.Errorf("initial amount must not be negative"))
	}
	return c.transactValue(ctx, contract.MethodCreateSavingsPot, initialWei, name, targetWei, remarks)
}

// ContributeToSavingsPot adds amountWei to a pot
func (c *Client) ContributeToSavingsPot(ctx context.Context, potID common.Hash, amountWei *big.Int) (*business.TxReceipt, error) {
	return c.transact(ctx, contract.MethodContributeToSavingsPot, amountWei, [32]byte(potID))
}

// BreakPot withdraws a pot's balance to its owner
func (c *Client) BreakPot(ctx context.Context, potID common.Hash) (*business.TxReceipt, error) {
	return c.transact(ctx, contract.MethodBreakPot, nil, [32]byte(potID))
}

// GetSavingsPotDetails reads one savings pot
func (c *Client) GetSavingsPotDetails(ctx context.Context, potID common.Hash) (*business.SavingsPot, error) {
	data, err := c.call(ctx, contract.MethodGetSavingsPotDetails, [32]byte(potID))
	if err != nil {
		return nil, err
	}
	pot, err := c.codec.UnpackSavingsPot(potID, data)
	if err != nil {
		return nil, NewError(KindRPC, contract.MethodGetSavingsPotDetails, err)
	}
	if pot.Owner == (common.Address{}) {
		return nil, NewError(KindNotFound, contract.MethodGetSavingsPotDetails, fmt.Errorf("savings pot %s: %w", potID.Hex(), ErrNotFound))
	}
	return pot, nil
}

// transact runs a write. Payable methods require a positive value; the guard
// runs before anything is sent to the backend.
func (c *Client) transact(ctx context.Context, method string, value *big.Int, args ...interface{}) (*business.TxReceipt, error) {
	if c.codec.IsPayable(method) && (value == nil || value.Sign() <= 0) {
		return nil, NewError(KindInvalidInput, method, ErrNonPositiveAmount)
	}
	return c.transactValue(ctx, method, value, args...)
}

// transactValue runs a write without the positive value guard
func (c *Client) transactValue(ctx context.Context, method string, value *big.Int, args ...interface{}) (*business.TxReceipt, error) {
	signer := c.wallet.Signer()
	backend := c.wallet.Backend()
	if signer == nil || backend == nil {
		return nil, NewError(KindWalletNotConnected, method, ErrWalletNotConnected)
	}
	if value == nil {
		value = new(big.Int)
	}

	data, err := c.codec.Pack(method, args...)
	if err != nil {
		return nil, NewError(KindInvalidInput, method, err)
	}

	from := signer.Address()
	lock := c.lockFor(from)
	lock.Lock()
	defer lock.Unlock()

	start := time.Now()
	receipt, err := c.submit(ctx, backend, signer, method, value, data)
	outcome := OutcomeConfirmed
	if err != nil {
		outcome = OutcomeFailed
		c.logger.Error("Contract transaction failed",
			zap.String("method", method),
			zap.String("from", from.Hex()),
			zap.String("kind", KindOf(err).String()),
			zap.Error(err),
		)
	}
	if c.recorder != nil {
		c.recorder.RecordContractTx(method, outcome, time.Since(start))
	}
	return receipt, err
}

func (c *Client) submit(ctx context.Context, backend interfaces.EthBackend, signer interfaces.Signer, method string, value *big.Int, data []byte) (*business.TxReceipt, error) {
	from := signer.Address()
	to := c.config.ContractAddress

	chainID := c.wallet.ChainID()
	if chainID == nil {
		id, err := backend.ChainID(ctx)
		if err != nil {
			return nil, classifyRPC(method, fmt.Errorf("failed to get chain id: %w", err))
		}
		chainID = id
	}

	nonce, err := backend.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, classifyRPC(method, fmt.Errorf("failed to get nonce: %w", err))
	}
	gasPrice, err := backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, classifyRPC(method, fmt.Errorf("failed to suggest gas price: %w", err))
	}
	gas, err := backend.EstimateGas(ctx, ethereum.CallMsg{
		From:     from,
		To:       &to,
		GasPrice: gasPrice,
		Value:    value,
		Data:     data,
	})
	if err != nil {
		return nil, classifyRPC(method, fmt.Errorf("failed to estimate gas: %w", err))
	}
	gas += gas * gasLimitBufferPercent / 100

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       &to,
		Value:    value,
		Data:     data,
	})
	signed, err := signer.SignTx(tx, chainID)
	if err != nil {
		return nil, NewError(KindRejected, method, fmt.Errorf("failed to sign transaction: %w", err))
	}

	if err := backend.SendTransaction(ctx, signed); err != nil {
		return nil, classifyRPC(method, fmt.Errorf("failed to send transaction: %w", err))
	}
	c.logger.Info("Contract transaction sent",
		zap.String("method", method),
		zap.String("tx_hash", signed.Hash().Hex()),
		zap.String("from", from.Hex()),
		zap.Uint64("nonce", nonce),
		zap.String("value_wei", value.String()),
	)

	mined, err := c.waitMined(ctx, backend, signed.Hash())
	if err != nil {
		return nil, classifyRPC(method, fmt.Errorf("failed waiting for %s: %w", signed.Hash().Hex(), err))
	}
	if mined.Status == types.ReceiptStatusFailed {
		return nil, NewError(KindReverted, method, fmt.Errorf("%w: %s", ErrReverted, signed.Hash().Hex()))
	}

	receipt := &business.TxReceipt{
		Operation: method,
		TxHash:    signed.Hash(),
		GasUsed:   mined.GasUsed,
		From:      from,
		ValueWei:  value,
		EntityID:  c.entityID(mined.Logs),
	}
	if mined.BlockNumber != nil {
		receipt.BlockNumber = mined.BlockNumber.Uint64()
	}
	if c.explorer != nil {
		receipt.ExplorerURL = c.explorer.ExplorerTxURL(chainID, signed.Hash())
	}

	c.logger.Info("Contract transaction confirmed",
		zap.String("method", method),
		zap.String("tx_hash", receipt.TxHash.Hex()),
		zap.Uint64("block", receipt.BlockNumber),
		zap.Uint64("gas_used", receipt.GasUsed),
	)
	return receipt, nil
}

// waitMined polls for the receipt until the transaction is in a block
func (c *Client) waitMined(ctx context.Context, backend interfaces.EthBackend, hash common.Hash) (*types.Receipt, error) {
	if c.config.ConfirmTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.ConfirmTimeout)
		defer cancel()
	}

	ticker := time.NewTicker(c.config.PollInterval)
	defer ticker.Stop()

	for {
		receipt, err := backend.TransactionReceipt(ctx, hash)
		if err == nil && receipt != nil {
			return receipt, nil
		}
		if err != nil && !errors.Is(err, ethereum.NotFound) {
			c.logger.Debug("Receipt lookup failed, retrying", zap.String("tx_hash", hash.Hex()), zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// entityID returns the first transfer, payment or pot id emitted by the
// contract in logs
func (c *Client) entityID(logs []*types.Log) *common.Hash {
	for _, l := range logs {
		if l == nil || l.Address != c.config.ContractAddress {
			continue
		}
		ev, err := c.codec.DecodeEvent(*l)
		if err != nil {
			continue
		}
		if ev.EntityID != nil {
			return ev.EntityID
		}
	}
	return nil
}

// call runs a view, retrying transient failures. Reverts are not retried.
func (c *Client) call(ctx context.Context, method string, args ...interface{}) ([]byte, error) {
	backend := c.wallet.Backend()
	if backend == nil {
		return nil, NewError(KindWalletNotConnected, method, ErrWalletNotConnected)
	}
	data, err := c.codec.Pack(method, args...)
	if err != nil {
		return nil, NewError(KindInvalidInput, method, err)
	}

	to := c.config.ContractAddress
	msg := ethereum.CallMsg{To: &to, Data: data}
	if signer := c.wallet.Signer(); signer != nil {
		msg.From = signer.Address()
	}

	var out []byte
	operation := func() error {
		res, err := backend.CallContract(ctx, msg, nil)
		if err != nil {
			if isRevert(err) || ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		out = res
		return nil
	}

	if c.config.ViewRetry == nil {
		err = operation()
		var permanent *backoff.PermanentError
		if errors.As(err, &permanent) {
			err = permanent.Err
		}
	} else {
		err = backoff.RetryNotify(operation, c.config.ViewRetry.NewBackOff(ctx), func(err error, wait time.Duration) {
			c.logger.Warn("Contract call failed, retrying",
				zap.String("method", method),
				zap.Duration("wait", wait),
				zap.Error(err),
			)
		})
	}
	if err != nil {
		return nil, classifyRPC(method, fmt.Errorf("failed to call %s: %w", method, err))
	}
	return out, nil
}

func (c *Client) lockFor(address common.Address) *sync.Mutex {
	c.locksMu.Lock()
	defer c.locksMu.Unlock()
	lock, ok := c.locks[address]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[address] = lock
	}
	return lock
}

var _ interfaces.ProtectedPayClient = (*Client)(nil)
