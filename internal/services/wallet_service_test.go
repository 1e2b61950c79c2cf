package services_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/protectedpay/protectedpay-api/internal/client/protectedpay"
	"github.com/protectedpay/protectedpay-api/internal/mocks"
	"github.com/protectedpay/protectedpay-api/internal/services"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"github.com/protectedpay/protectedpay-api/internal/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletService_Connect(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the connected status", func(t *testing.T) {
		mockSession := mocks.NewMockWalletSessionForTest(t)
		service := services.NewWalletService(mockSession)

		mockSession.EXPECT().Connect(ctx).Return(nil)
		mockSession.EXPECT().Status().Return(connected(alice))

		status, err := service.Connect(ctx)
		require.NoError(t, err)
		assert.True(t, status.IsConnected)
		assert.Equal(t, alice, *status.Address)
	})

	t.Run("no provider is a wallet error", func(t *testing.T) {
		mockSession := mocks.NewMockWalletSessionForTest(t)
		service := services.NewWalletService(mockSession)

		mockSession.EXPECT().Connect(ctx).Return(wallet.ErrNoProvider)

		status, err := service.Connect(ctx)
		assert.Nil(t, status)
		assert.Equal(t, protectedpay.KindWalletNotConnected, protectedpay.KindOf(err))
	})
}

func TestWalletService_SwitchChain(t *testing.T) {
	ctx := context.Background()
	chains := wallet.DefaultChainRegistry().List()

	t.Run("switches to a supported chain", func(t *testing.T) {
		mockSession := mocks.NewMockWalletSessionForTest(t)
		service := services.NewWalletService(mockSession)
		target := big.NewInt(656476)

		mockSession.EXPECT().Chains().Return(chains)
		mockSession.EXPECT().SwitchChain(ctx, target).Return(nil)
		status := connected(alice)
		status.ChainID = target
		mockSession.EXPECT().Status().Return(status)

		got, err := service.SwitchChain(ctx, target)
		require.NoError(t, err)
		assert.Equal(t, "656476", got.ChainID.String())
	})

	t.Run("refuses an unsupported chain", func(t *testing.T) {
		mockSession := mocks.NewMockWalletSessionForTest(t)
		service := services.NewWalletService(mockSession)

		mockSession.EXPECT().Chains().Return(chains)

		_, err := service.SwitchChain(ctx, big.NewInt(1))
		assert.Equal(t, protectedpay.KindInvalidInput, protectedpay.KindOf(err))
	})
}

func TestWalletService_Status(t *testing.T) {
	ctx := context.Background()
	mockSession := mocks.NewMockWalletSessionForTest(t)
	service := services.NewWalletService(mockSession)

	mockSession.EXPECT().Status().Return(business.WalletStatus{})

	status, err := service.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.IsConnected)
	assert.Nil(t, status.Address)
}
