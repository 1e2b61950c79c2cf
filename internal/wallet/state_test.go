package wallet_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/protectedpay/protectedpay-api/internal/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce(t *testing.T) {
	alice := common.HexToAddress("0xa1")
	bob := common.HexToAddress("0xb2")

	connected := wallet.Reduce(wallet.State{}, wallet.Connected{
		Address:    alice,
		BalanceWei: big.NewInt(10),
		ChainID:    big.NewInt(12227332),
	})

	tests := []struct {
		name   string
		state  wallet.State
		action wallet.Action
		check  func(t *testing.T, got wallet.State)
	}{
		{
			name:   "connected populates the state",
			state:  wallet.State{},
			action: wallet.Connected{Address: alice, BalanceWei: big.NewInt(10), ChainID: big.NewInt(1)},
			check: func(t *testing.T, got wallet.State) {
				assert.True(t, got.IsConnected)
				require.NotNil(t, got.Address)
				assert.Equal(t, alice, *got.Address)
				assert.Equal(t, "10", got.BalanceWei.String())
			},
		},
		{
			name:   "account change keeps chain and clears balance",
			state:  connected,
			action: wallet.AccountChanged{Address: bob},
			check: func(t *testing.T, got wallet.State) {
				assert.True(t, got.IsConnected)
				assert.Equal(t, bob, *got.Address)
				assert.Nil(t, got.BalanceWei)
				assert.Equal(t, "12227332", got.ChainID.String())
			},
		},
		{
			name:   "account change ignored while disconnected",
			state:  wallet.State{},
			action: wallet.AccountChanged{Address: bob},
			check: func(t *testing.T, got wallet.State) {
				assert.Equal(t, wallet.State{}, got)
			},
		},
		{
			name:   "balance update",
			state:  connected,
			action: wallet.BalanceUpdated{BalanceWei: big.NewInt(99)},
			check: func(t *testing.T, got wallet.State) {
				assert.Equal(t, "99", got.BalanceWei.String())
			},
		},
		{
			name:   "balance update ignored while disconnected",
			state:  wallet.State{},
			action: wallet.BalanceUpdated{BalanceWei: big.NewInt(99)},
			check: func(t *testing.T, got wallet.State) {
				assert.Nil(t, got.BalanceWei)
			},
		},
		{
			name:   "disconnected resets",
			state:  connected,
			action: wallet.Disconnected{},
			check: func(t *testing.T, got wallet.State) {
				assert.Equal(t, wallet.State{}, got)
			},
		},
		{
			name:   "connect failure resets",
			state:  connected,
			action: wallet.ConnectFailed{},
			check: func(t *testing.T, got wallet.State) {
				assert.Equal(t, wallet.State{}, got)
			},
		},
		{
			name:   "reset",
			state:  connected,
			action: wallet.Reset{},
			check: func(t *testing.T, got wallet.State) {
				assert.Equal(t, wallet.State{}, got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, wallet.Reduce(tt.state, tt.action))
		})
	}
}

func TestReduce_DoesNotAliasInputs(t *testing.T) {
	balance := big.NewInt(5)
	state := wallet.Reduce(wallet.State{}, wallet.Connected{Address: common.HexToAddress("0x1"), BalanceWei: balance, ChainID: big.NewInt(1)})
	balance.SetInt64(500)
	assert.Equal(t, "5", state.BalanceWei.String())
}

func TestStore_Subscribe(t *testing.T) {
	store := wallet.NewStore()

	var seen []bool
	unsubscribe := store.Subscribe(func(prev, next wallet.State) {
		seen = append(seen, next.IsConnected)
	})

	store.Dispatch(wallet.Connected{Address: common.HexToAddress("0x1"), ChainID: big.NewInt(1)})
	store.Dispatch(wallet.Disconnected{})
	unsubscribe()
	store.Dispatch(wallet.Connected{Address: common.HexToAddress("0x1"), ChainID: big.NewInt(1)})

	assert.Equal(t, []bool{true, false}, seen)
	assert.True(t, store.State().IsConnected)
}
