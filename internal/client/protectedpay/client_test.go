package protectedpay_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/protectedpay/protectedpay-api/internal/client/protectedpay"
	"github.com/protectedpay/protectedpay-api/internal/client/rpc"
	"github.com/protectedpay/protectedpay-api/internal/constants"
	"github.com/protectedpay/protectedpay-api/internal/contract"
	"github.com/protectedpay/protectedpay-api/internal/interfaces"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"github.com/protectedpay/protectedpay-api/internal/testutil"
	"github.com/protectedpay/protectedpay-api/internal/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger("test")
}

const testKeyHex = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

var (
	contractAddress = common.HexToAddress("0x00000000000000000000000000000000000c0de1")
	recipient       = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	testChainID     = big.NewInt(constants.NeoXTestnetChainID)
)

type stubWallet struct {
	signer  interfaces.Signer
	backend interfaces.EthBackend
}

func (w *stubWallet) Signer() interfaces.Signer      { return w.signer }
func (w *stubWallet) Backend() interfaces.EthBackend { return w.backend }
func (w *stubWallet) ChainID() *big.Int              { return testChainID }

type mapDirectory struct {
	byAddress map[common.Address]string
}

func (d *mapDirectory) UsernameOf(a common.Address) (string, bool) {
	name, ok := d.byAddress[a]
	return name, ok
}

func (d *mapDirectory) AddressOf(username string) (common.Address, bool) {
	for a, name := range d.byAddress {
		if name == username {
			return a, true
		}
	}
	return common.Address{}, false
}

func (d *mapDirectory) Remember(a common.Address, username string) {
	if username != "" {
		d.byAddress[a] = username
	}
}

func (d *mapDirectory) Forget(a common.Address) { delete(d.byAddress, a) }

type recordedTx struct {
	operation string
	outcome   string
}

type txRecorder struct {
	calls []recordedTx
}

func (r *txRecorder) RecordContractTx(operation, outcome string, _ time.Duration) {
	r.calls = append(r.calls, recordedTx{operation, outcome})
}

func newSigner(t *testing.T) interfaces.Signer {
	t.Helper()
	signer, err := wallet.NewKeySignerFromHex(testKeyHex)
	require.NoError(t, err)
	return signer
}

func newClient(t *testing.T, w interfaces.Wallet, config protectedpay.Config, opts ...protectedpay.Option) *protectedpay.Client {
	t.Helper()
	codec, err := contract.NewCodec()
	require.NoError(t, err)
	config.ContractAddress = contractAddress
	if config.PollInterval == 0 {
		config.PollInterval = time.Millisecond
	}
	client, err := protectedpay.NewClient(config, codec, w, opts...)
	require.NoError(t, err)
	return client
}

func expectSubmission(backend *testutil.MockBackend) {
	backend.On("PendingNonceAt", mock.Anything, mock.Anything).Return(uint64(4), nil)
	backend.On("SuggestGasPrice", mock.Anything).Return(big.NewInt(1_000_000_000), nil)
	backend.On("EstimateGas", mock.Anything, mock.Anything).Return(uint64(100_000), nil)
	backend.On("SendTransaction", mock.Anything, mock.Anything).Return(nil)
}

func transferInitiatedLog(t *testing.T, id common.Hash, sender common.Address) *types.Log {
	t.Helper()
	ev := contract.MustABI().Events[constants.EventTransferInitiated]
	data, err := ev.Inputs.NonIndexed().Pack(big.NewInt(5))
	require.NoError(t, err)
	return &types.Log{
		Address: contractAddress,
		Topics:  []common.Hash{ev.ID, id, common.BytesToHash(sender.Bytes()), common.BytesToHash(recipient.Bytes())},
		Data:    data,
	}
}

func TestClient_WriteGuards(t *testing.T) {
	tests := []struct {
		name     string
		noWallet bool
		call     func(c *protectedpay.Client) error
		wantKind protectedpay.Kind
	}{
		{
			name: "zero amount",
			call: func(c *protectedpay.Client) error {
				_, err := c.SendToAddress(context.Background(), recipient, big.NewInt(0))
				return err
			},
			wantKind: protectedpay.KindInvalidInput,
		},
		{
			name: "negative amount",
			call: func(c *protectedpay.Client) error {
				_, err := c.SendToUsername(context.Background(), "bob", big.NewInt(-1))
				return err
			},
			wantKind: protectedpay.KindInvalidInput,
		},
		{
			name: "nil amount",
			call: func(c *protectedpay.Client) error {
				_, err := c.ContributeToSavingsPot(context.Background(), common.HexToHash("0x1"), nil)
				return err
			},
			wantKind: protectedpay.KindInvalidInput,
		},
		{
			name:     "send without wallet",
			noWallet: true,
			call: func(c *protectedpay.Client) error {
				_, err := c.SendToAddress(context.Background(), recipient, big.NewInt(1))
				return err
			},
			wantKind: protectedpay.KindWalletNotConnected,
		},
		{
			name:     "claim without wallet",
			noWallet: true,
			call: func(c *protectedpay.Client) error {
				_, err := c.ClaimTransferByID(context.Background(), common.HexToHash("0x1"))
				return err
			},
			wantKind: protectedpay.KindWalletNotConnected,
		},
		{
			name: "invalid username",
			call: func(c *protectedpay.Client) error {
				_, err := c.RegisterUsername(context.Background(), "a")
				return err
			},
			wantKind: protectedpay.KindInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &testutil.MockBackend{}
			w := &stubWallet{signer: newSigner(t), backend: backend}
			if tt.noWallet {
				w.signer = nil
			}
			client := newClient(t, w, protectedpay.Config{})

			err := tt.call(client)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, protectedpay.KindOf(err))
			backend.AssertNotCalled(t, "PendingNonceAt", mock.Anything, mock.Anything)
			backend.AssertNotCalled(t, "EstimateGas", mock.Anything, mock.Anything)
			backend.AssertNotCalled(t, "SendTransaction", mock.Anything, mock.Anything)
		})
	}
}

func TestClient_SendToAddress(t *testing.T) {
	signer := newSigner(t)
	backend := &testutil.MockBackend{}
	recorder := &txRecorder{}
	client := newClient(t, &stubWallet{signer: signer, backend: backend}, protectedpay.Config{},
		protectedpay.WithRecorder(recorder),
		protectedpay.WithExplorer(wallet.DefaultChainRegistry()),
	)

	transferID := common.HexToHash("0xabc")
	backend.On("PendingNonceAt", mock.Anything, signer.Address()).Return(uint64(4), nil)
	backend.On("SuggestGasPrice", mock.Anything).Return(big.NewInt(1_000_000_000), nil)
	backend.On("EstimateGas", mock.Anything, mock.Anything).Return(uint64(100_000), nil)

	var sent *types.Transaction
	backend.On("SendTransaction", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*types.Transaction) }).
		Return(nil)
	backend.On("TransactionReceipt", mock.Anything, mock.Anything).Return(nil, ethereum.NotFound).Once()
	backend.On("TransactionReceipt", mock.Anything, mock.Anything).Return(&types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(99),
		GasUsed:     60_000,
		Logs:        []*types.Log{transferInitiatedLog(t, transferID, signer.Address())},
	}, nil)

	receipt, err := client.SendToAddress(context.Background(), recipient, big.NewInt(5))
	require.NoError(t, err)

	require.NotNil(t, sent)
	assert.Equal(t, contractAddress, *sent.To())
	assert.Equal(t, "5", sent.Value().String())
	assert.Equal(t, uint64(4), sent.Nonce())
	assert.Equal(t, uint64(120_000), sent.Gas())

	from, err := types.Sender(types.LatestSignerForChainID(testChainID), sent)
	require.NoError(t, err)
	assert.Equal(t, signer.Address(), from)

	assert.Equal(t, contract.MethodSendToAddress, receipt.Operation)
	assert.Equal(t, sent.Hash(), receipt.TxHash)
	assert.Equal(t, uint64(99), receipt.BlockNumber)
	require.NotNil(t, receipt.EntityID)
	assert.Equal(t, transferID, *receipt.EntityID)
	assert.Equal(t, "https://xt4scan.ngd.network/tx/"+sent.Hash().Hex(), receipt.ExplorerURL)
	assert.Equal(t, []recordedTx{{contract.MethodSendToAddress, protectedpay.OutcomeConfirmed}}, recorder.calls)
}

func TestClient_Reverted(t *testing.T) {
	backend := &testutil.MockBackend{}
	recorder := &txRecorder{}
	client := newClient(t, &stubWallet{signer: newSigner(t), backend: backend}, protectedpay.Config{}, protectedpay.WithRecorder(recorder))

	expectSubmission(backend)
	backend.On("TransactionReceipt", mock.Anything, mock.Anything).Return(&types.Receipt{
		Status:      types.ReceiptStatusFailed,
		BlockNumber: big.NewInt(10),
	}, nil)

	_, err := client.RefundTransfer(context.Background(), common.HexToHash("0x1"))
	require.Error(t, err)
	assert.Equal(t, protectedpay.KindReverted, protectedpay.KindOf(err))
	assert.ErrorIs(t, err, protectedpay.ErrReverted)
	assert.Equal(t, []recordedTx{{contract.MethodRefundTransfer, protectedpay.OutcomeFailed}}, recorder.calls)
}

func TestClient_EstimateRevertIsNotSent(t *testing.T) {
	backend := &testutil.MockBackend{}
	client := newClient(t, &stubWallet{signer: newSigner(t), backend: backend}, protectedpay.Config{})

	backend.On("PendingNonceAt", mock.Anything, mock.Anything).Return(uint64(0), nil)
	backend.On("SuggestGasPrice", mock.Anything).Return(big.NewInt(1), nil)
	backend.On("EstimateGas", mock.Anything, mock.Anything).Return(uint64(0), errors.New("execution reverted: No pending transfer"))

	_, err := client.ClaimTransferByUsername(context.Background(), "alice")
	require.Error(t, err)
	assert.Equal(t, protectedpay.KindReverted, protectedpay.KindOf(err))
	backend.AssertNotCalled(t, "SendTransaction", mock.Anything, mock.Anything)
}

func TestClient_ConfirmTimeout(t *testing.T) {
	backend := &testutil.MockBackend{}
	client := newClient(t, &stubWallet{signer: newSigner(t), backend: backend}, protectedpay.Config{
		ConfirmTimeout: 20 * time.Millisecond,
	})

	expectSubmission(backend)
	backend.On("TransactionReceipt", mock.Anything, mock.Anything).Return(nil, ethereum.NotFound)

	_, err := client.BreakPot(context.Background(), common.HexToHash("0x2"))
	require.Error(t, err)
	assert.Equal(t, protectedpay.KindTimeout, protectedpay.KindOf(err))
}

func TestClient_GetUserByAddress(t *testing.T) {
	backend := &testutil.MockBackend{}
	directory := &mapDirectory{byAddress: map[common.Address]string{}}
	client := newClient(t, &stubWallet{backend: backend}, protectedpay.Config{}, protectedpay.WithDirectory(directory))

	out, err := contract.MustABI().Methods[contract.MethodGetUserByAddress].Outputs.Pack("bob")
	require.NoError(t, err)
	backend.On("CallContract", mock.Anything, mock.MatchedBy(func(msg ethereum.CallMsg) bool {
		return msg.To != nil && *msg.To == contractAddress
	}), mock.Anything).Return(out, nil).Once()

	name, err := client.GetUserByAddress(context.Background(), recipient)
	require.NoError(t, err)
	assert.Equal(t, "bob", name)

	// served from the directory
	name, err = client.GetUserByAddress(context.Background(), recipient)
	require.NoError(t, err)
	assert.Equal(t, "bob", name)
	backend.AssertNumberOfCalls(t, "CallContract", 1)

	addr, err := client.GetUserByUsername(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, recipient, addr)
}

func TestClient_ViewRetry(t *testing.T) {
	backend := &testutil.MockBackend{}
	client := newClient(t, &stubWallet{backend: backend}, protectedpay.Config{
		ViewRetry: &rpc.RetryConfig{
			MaxRetries:      3,
			InitialInterval: time.Millisecond,
			MaxInterval:     time.Millisecond,
			Multiplier:      1,
			MaxElapsedTime:  time.Second,
		},
	})

	out, err := contract.MustABI().Methods[contract.MethodGetUserByUsername].Outputs.Pack(recipient)
	require.NoError(t, err)
	backend.On("CallContract", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("connection reset")).Twice()
	backend.On("CallContract", mock.Anything, mock.Anything, mock.Anything).Return(out, nil).Once()

	addr, err := client.GetUserByUsername(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, recipient, addr)
	backend.AssertNumberOfCalls(t, "CallContract", 3)
}

func TestClient_ViewRevertIsNotRetried(t *testing.T) {
	backend := &testutil.MockBackend{}
	client := newClient(t, &stubWallet{backend: backend}, protectedpay.Config{ViewRetry: rpc.DefaultRetryConfig()})

	backend.On("CallContract", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("execution reverted")).Once()

	_, err := client.GetTransferDetails(context.Background(), common.HexToHash("0x1"))
	require.Error(t, err)
	assert.Equal(t, protectedpay.KindReverted, protectedpay.KindOf(err))
	backend.AssertNumberOfCalls(t, "CallContract", 1)
}

func TestClient_ViewWithoutBackend(t *testing.T) {
	client := newClient(t, &stubWallet{}, protectedpay.Config{})

	_, err := client.GetUserProfile(context.Background(), recipient)
	assert.Equal(t, protectedpay.KindWalletNotConnected, protectedpay.KindOf(err))
}

func TestClient_GetTransferDetailsNotFound(t *testing.T) {
	backend := &testutil.MockBackend{}
	client := newClient(t, &stubWallet{backend: backend}, protectedpay.Config{})

	out, err := contract.MustABI().Methods[contract.MethodGetTransferDetails].Outputs.Pack(struct {
		Sender    common.Address
		Recipient common.Address
		Amount    *big.Int
		Timestamp *big.Int
		Status    uint8
		Remarks   string
	}{Amount: new(big.Int), Timestamp: new(big.Int)})
	require.NoError(t, err)
	backend.On("CallContract", mock.Anything, mock.Anything, mock.Anything).Return(out, nil)

	_, err = client.GetTransferDetails(context.Background(), common.HexToHash("0x1"))
	assert.Equal(t, protectedpay.KindNotFound, protectedpay.KindOf(err))
	assert.ErrorIs(t, err, protectedpay.ErrNotFound)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want protectedpay.Kind
	}{
		{"nil", nil, protectedpay.KindUnknown},
		{"typed", protectedpay.NewError(protectedpay.KindRejected, "op", errors.New("denied")), protectedpay.KindRejected},
		{"wrapped typed", errors.Join(errors.New("outer"), protectedpay.NewError(protectedpay.KindTimeout, "op", nil)), protectedpay.KindTimeout},
		{"deadline", context.DeadlineExceeded, protectedpay.KindTimeout},
		{"revert text", errors.New("execution reverted: nope"), protectedpay.KindReverted},
		{"sentinel", protectedpay.ErrWalletNotConnected, protectedpay.KindWalletNotConnected},
		{"other", errors.New("dial tcp: refused"), protectedpay.KindRPC},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, protectedpay.KindOf(tt.err))
		})
	}
}
