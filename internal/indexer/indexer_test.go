package indexer_test

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/protectedpay/protectedpay-api/internal/client/rpc"
	"github.com/protectedpay/protectedpay-api/internal/constants"
	"github.com/protectedpay/protectedpay-api/internal/contract"
	"github.com/protectedpay/protectedpay-api/internal/indexer"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"github.com/protectedpay/protectedpay-api/internal/mocks"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
}

var contractAddress = common.HexToAddress("0x00000000000000000000000000000000000c0de1")

type fakeRecorder struct {
	mu     sync.Mutex
	events []string
	block  uint64
	errors int
}

func (r *fakeRecorder) RecordIndexedEvent(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, name)
}

func (r *fakeRecorder) SetIndexerBlock(block uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.block = block
}

func (r *fakeRecorder) RecordIndexerError() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors++
}

// windowMatcher matches a FilterQuery by block range
type windowMatcher struct {
	from, to int64
}

func (m windowMatcher) Matches(x any) bool {
	q, ok := x.(ethereum.FilterQuery)
	return ok && q.FromBlock.Int64() == m.from && q.ToBlock.Int64() == m.to &&
		len(q.Addresses) == 1 && q.Addresses[0] == contractAddress
}

func (m windowMatcher) String() string {
	return "filter window"
}

func claimedLog(t *testing.T, block uint64) types.Log {
	t.Helper()
	ev := contract.MustABI().Events[constants.EventTransferClaimed]
	data, err := ev.Inputs.NonIndexed().Pack(big.NewInt(9))
	require.NoError(t, err)
	return types.Log{
		Address:     contractAddress,
		Topics:      []common.Hash{ev.ID, common.HexToHash("0x01"), common.BytesToHash(common.HexToAddress("0xb2").Bytes())},
		Data:        data,
		BlockNumber: block,
		TxHash:      common.HexToHash("0xaa"),
		Index:       3,
	}
}

func newIndexer(t *testing.T, config indexer.Config, backend *mocks.MockEthBackend, store *mocks.MockEventStore, recorder indexer.Recorder) *indexer.Indexer {
	t.Helper()
	codec, err := contract.NewCodec()
	require.NoError(t, err)
	config.Contract = contractAddress
	config.ChainID = constants.NeoXTestnetChainID
	ix, err := indexer.New(config, backend, codec, store, recorder)
	require.NoError(t, err)
	return ix
}

func TestIndexer_SyncFromStartBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockEthBackend(ctrl)
	store := mocks.NewMockEventStore(ctrl)
	recorder := &fakeRecorder{}
	ix := newIndexer(t, indexer.Config{StartBlock: 10, BatchSize: 10}, backend, store, recorder)
	ctx := context.Background()

	backend.EXPECT().BlockNumber(ctx).Return(uint64(25), nil)
	store.EXPECT().LastIndexedBlock(ctx, constants.NeoXTestnetChainID, contractAddress).Return(uint64(0), false, nil)

	gomock.InOrder(
		backend.EXPECT().FilterLogs(ctx, windowMatcher{10, 19}).Return([]types.Log{claimedLog(t, 12)}, nil),
		store.EXPECT().SaveEvents(ctx, constants.NeoXTestnetChainID, contractAddress, gomock.Any(), uint64(19)).
			DoAndReturn(func(_ context.Context, _ int64, _ common.Address, events []business.ContractEvent, _ uint64) error {
				require.Len(t, events, 1)
				assert.Equal(t, constants.EventTransferClaimed, events[0].Name)
				assert.Equal(t, constants.NeoXTestnetChainID, events[0].ChainID)
				assert.False(t, events[0].ObservedAt.IsZero())
				return nil
			}),
		backend.EXPECT().FilterLogs(ctx, windowMatcher{20, 25}).Return(nil, nil),
		store.EXPECT().SaveEvents(ctx, constants.NeoXTestnetChainID, contractAddress, gomock.Len(0), uint64(25)).Return(nil),
	)

	n, err := ix.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{constants.EventTransferClaimed}, recorder.events)
	assert.Equal(t, uint64(25), recorder.block)
}

func TestIndexer_SyncResumesFromCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockEthBackend(ctrl)
	store := mocks.NewMockEventStore(ctrl)
	ix := newIndexer(t, indexer.Config{StartBlock: 1, BatchSize: 100}, backend, store, nil)
	ctx := context.Background()

	backend.EXPECT().BlockNumber(ctx).Return(uint64(30), nil)
	store.EXPECT().LastIndexedBlock(ctx, gomock.Any(), gomock.Any()).Return(uint64(30), true, nil)

	n, err := ix.Sync(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestIndexer_SkipsRemovedAndForeignLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockEthBackend(ctrl)
	store := mocks.NewMockEventStore(ctrl)
	ix := newIndexer(t, indexer.Config{StartBlock: 5, BatchSize: 10}, backend, store, nil)
	ctx := context.Background()

	removed := claimedLog(t, 5)
	removed.Removed = true
	foreign := types.Log{Address: contractAddress, Topics: []common.Hash{common.HexToHash("0xdead")}}

	backend.EXPECT().BlockNumber(ctx).Return(uint64(5), nil)
	store.EXPECT().LastIndexedBlock(ctx, gomock.Any(), gomock.Any()).Return(uint64(0), false, nil)
	backend.EXPECT().FilterLogs(ctx, windowMatcher{5, 5}).Return([]types.Log{removed, foreign}, nil)
	store.EXPECT().SaveEvents(ctx, gomock.Any(), gomock.Any(), gomock.Len(0), uint64(5)).Return(nil)

	n, err := ix.Sync(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestIndexer_RetriesWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockEthBackend(ctrl)
	store := mocks.NewMockEventStore(ctrl)
	recorder := &fakeRecorder{}
	ix := newIndexer(t, indexer.Config{
		BatchSize: 10,
		Retry: &rpc.RetryConfig{
			MaxRetries:      2,
			InitialInterval: time.Millisecond,
			MaxInterval:     time.Millisecond,
			Multiplier:      1,
			MaxElapsedTime:  time.Second,
		},
	}, backend, store, recorder)
	ctx := context.Background()

	backend.EXPECT().BlockNumber(ctx).Return(uint64(3), nil)
	store.EXPECT().LastIndexedBlock(ctx, gomock.Any(), gomock.Any()).Return(uint64(0), false, nil)
	gomock.InOrder(
		backend.EXPECT().FilterLogs(ctx, windowMatcher{0, 3}).Return(nil, errors.New("query timeout")),
		backend.EXPECT().FilterLogs(ctx, windowMatcher{0, 3}).Return(nil, nil),
	)
	store.EXPECT().SaveEvents(ctx, gomock.Any(), gomock.Any(), gomock.Any(), uint64(3)).Return(nil)

	_, err := ix.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, recorder.errors)
}

func TestIndexer_StoreFailureStopsSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockEthBackend(ctrl)
	store := mocks.NewMockEventStore(ctrl)
	ix := newIndexer(t, indexer.Config{StartBlock: 0, BatchSize: 2}, backend, store, nil)
	ctx := context.Background()

	backend.EXPECT().BlockNumber(ctx).Return(uint64(5), nil)
	store.EXPECT().LastIndexedBlock(ctx, gomock.Any(), gomock.Any()).Return(uint64(0), false, nil)
	backend.EXPECT().FilterLogs(ctx, windowMatcher{0, 1}).Return(nil, nil)
	store.EXPECT().SaveEvents(ctx, gomock.Any(), gomock.Any(), gomock.Any(), uint64(1)).Return(errors.New("disk full"))

	_, err := ix.Sync(ctx)
	assert.ErrorContains(t, err, "disk full")
}

func TestIndexer_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockEthBackend(ctrl)
	store := mocks.NewMockEventStore(ctrl)
	ix := newIndexer(t, indexer.Config{PollInterval: time.Millisecond}, backend, store, nil)

	backend.EXPECT().BlockNumber(gomock.Any()).Return(uint64(0), nil).AnyTimes()
	store.EXPECT().LastIndexedBlock(gomock.Any(), gomock.Any(), gomock.Any()).Return(uint64(0), true, nil).MinTimes(1)

	ix.Start(context.Background())
	ix.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	ix.Stop()
	ix.Stop()
}

func TestNew_Validation(t *testing.T) {
	codec, err := contract.NewCodec()
	require.NoError(t, err)
	ctrl := gomock.NewController(t)

	_, err = indexer.New(indexer.Config{}, mocks.NewMockEthBackend(ctrl), codec, mocks.NewMockEventStore(ctrl), nil)
	assert.Error(t, err)

	_, err = indexer.New(indexer.Config{Contract: contractAddress}, nil, codec, mocks.NewMockEventStore(ctrl), nil)
	assert.Error(t, err)
}
