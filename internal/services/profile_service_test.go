package services_test

import (
	"context"
	"encoding/json"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/protectedpay/protectedpay-api/internal/client/protectedpay"
	"github.com/protectedpay/protectedpay-api/internal/mocks"
	"github.com/protectedpay/protectedpay-api/internal/services"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"github.com/protectedpay/protectedpay-api/internal/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testKeyHex = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

func TestProfileService_RegisterUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockProtectedPayClient(ctrl)
	mockWallet := mocks.NewMockWalletSession(ctrl)
	service := services.NewProfileService(mockClient, mockWallet)
	ctx := context.Background()

	signer, err := wallet.NewKeySignerFromHex(testKeyHex)
	require.NoError(t, err)

	tests := []struct {
		name       string
		username   string
		setupMocks func()
		wantErr    bool
		wantKind   protectedpay.Kind
	}{
		{
			name:     "registers a free username",
			username: "alice",
			setupMocks: func() {
				mockWallet.EXPECT().Signer().Return(signer)
				mockClient.EXPECT().GetUserByAddress(ctx, signer.Address()).Return("", nil)
				mockClient.EXPECT().GetUserByUsername(ctx, "alice").Return(common.Address{}, nil)
				mockClient.EXPECT().RegisterUsername(ctx, "alice").Return(receipt("registerUsername"), nil)
			},
		},
		{
			name:     "blocks an address that already has a username",
			username: "alice",
			setupMocks: func() {
				mockWallet.EXPECT().Signer().Return(signer)
				mockClient.EXPECT().GetUserByAddress(ctx, signer.Address()).Return("existing", nil)
			},
			wantErr:  true,
			wantKind: protectedpay.KindAlreadyRegistered,
		},
		{
			name:     "rejects a taken username",
			username: "alice",
			setupMocks: func() {
				mockWallet.EXPECT().Signer().Return(signer)
				mockClient.EXPECT().GetUserByAddress(ctx, signer.Address()).Return("", nil)
				mockClient.EXPECT().GetUserByUsername(ctx, "alice").Return(bob, nil)
			},
			wantErr:  true,
			wantKind: protectedpay.KindInvalidInput,
		},
		{
			name:     "requires a connected wallet",
			username: "alice",
			setupMocks: func() {
				mockWallet.EXPECT().Signer().Return(nil)
			},
			wantErr:  true,
			wantKind: protectedpay.KindWalletNotConnected,
		},
		{
			name:       "rejects an invalid username",
			username:   "a b",
			setupMocks: func() {},
			wantErr:    true,
			wantKind:   protectedpay.KindInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			result, err := service.RegisterUsername(ctx, tt.username)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				assert.Equal(t, tt.wantKind, protectedpay.KindOf(err))
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
			}
		})
	}
}

func TestProfileService_GetProfile(t *testing.T) {
	mockClient := mocks.NewMockProtectedPayClientForTest(t)
	mockWallet := mocks.NewMockWalletSessionForTest(t)
	mockBackend := mocks.NewMockEthBackend(gomock.NewController(t))
	service := services.NewProfileService(mockClient, mockWallet)
	ctx := context.Background()

	transfers := []business.Transfer{{Sender: alice, Recipient: bob, AmountWei: big.NewInt(7)}}
	mockWallet.EXPECT().Backend().Return(mockBackend)
	mockClient.EXPECT().GetUserByAddress(ctx, bob).Return("bob", nil)
	mockBackend.EXPECT().BalanceAt(ctx, bob, gomock.Nil()).Return(big.NewInt(1000), nil)
	mockClient.EXPECT().GetUserTransfers(ctx, bob).Return(transfers, nil)

	profile, err := service.GetProfile(ctx, bob.Hex())
	require.NoError(t, err)
	assert.Equal(t, bob, profile.Address)
	assert.Equal(t, "bob", profile.Username)
	assert.Equal(t, "1000", profile.BalanceWei.String())
	assert.Equal(t, transfers, profile.Transfers)
}

func TestProfileService_LookupUser(t *testing.T) {
	mockClient := mocks.NewMockProtectedPayClientForTest(t)
	service := services.NewProfileService(mockClient, mocks.NewMockWalletSessionForTest(t))
	ctx := context.Background()

	mockClient.EXPECT().GetUserByAddress(ctx, alice).Return("alice", nil)
	user, err := service.LookupUser(ctx, alice.Hex())
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	mockClient.EXPECT().GetUserByUsername(ctx, "bob").Return(bob, nil)
	user, err = service.LookupUser(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, bob, user.Address)

	mockClient.EXPECT().GetUserByUsername(ctx, "nobody").Return(common.Address{}, nil)
	_, err = service.LookupUser(ctx, "nobody")
	assert.Equal(t, protectedpay.KindNotFound, protectedpay.KindOf(err))
}

func TestProfileService_PaymentQR(t *testing.T) {
	mockClient := mocks.NewMockProtectedPayClientForTest(t)
	mockWallet := mocks.NewMockWalletSessionForTest(t)
	service := services.NewProfileService(mockClient, mockWallet)
	ctx := context.Background()

	mockWallet.EXPECT().Status().Return(connected(alice))
	mockClient.EXPECT().GetUserByAddress(ctx, alice).Return("alice", nil)

	qr, err := service.PaymentQR(ctx, "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(qr.DataURL, "data:image/png;base64,"))

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(qr.Payload), &payload))
	assert.Equal(t, "ProtectedPay", payload["app"])
	assert.Equal(t, "payment", payload["type"])
	assert.Equal(t, "alice", payload["username"])
	assert.Equal(t, alice.Hex(), payload["address"])

	request, err := service.ParsePaymentQR(qr.Payload)
	require.NoError(t, err)
	assert.Equal(t, alice, request.Address)
	assert.Equal(t, "alice", request.Username)
}

func TestProfileService_ParsePaymentQR(t *testing.T) {
	service := services.NewProfileService(mocks.NewMockProtectedPayClientForTest(t), mocks.NewMockWalletSessionForTest(t))

	tests := []struct {
		name    string
		payload string
		want    common.Address
		wantErr bool
	}{
		{name: "bare address", payload: bob.Hex(), want: bob},
		{name: "ethereum uri", payload: "ethereum:" + bob.Hex() + "@12227332", want: bob},
		{name: "foreign json", payload: `{"app":"Other","address":"` + bob.Hex() + `","type":"payment"}`, wantErr: true},
		{name: "json with bad address", payload: `{"app":"ProtectedPay","address":"0x12","type":"payment"}`, wantErr: true},
		{name: "garbage", payload: "hello", wantErr: true},
		{name: "empty", payload: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request, err := service.ParsePaymentQR(tt.payload)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, protectedpay.KindInvalidInput, protectedpay.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, request.Address)
		})
	}
}
