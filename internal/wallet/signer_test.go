package wallet_test

import (
	"context"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/protectedpay/protectedpay-api/internal/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

func TestNewKeySignerFromHex(t *testing.T) {
	signer, err := wallet.NewKeySignerFromHex(testKeyHex)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"), signer.Address())

	bare, err := wallet.NewKeySignerFromHex(testKeyHex[2:])
	require.NoError(t, err)
	assert.Equal(t, signer.Address(), bare.Address())

	_, err = wallet.NewKeySignerFromHex("0x1234")
	assert.ErrorIs(t, err, wallet.ErrInvalidPrivateKey)
}

func TestKeySigner_SignTx(t *testing.T) {
	signer, err := wallet.NewKeySignerFromHex(testKeyHex)
	require.NoError(t, err)

	chainID := big.NewInt(12227332)
	to := common.HexToAddress("0x1")
	tx := types.NewTx(&types.LegacyTx{Nonce: 1, To: &to, Value: big.NewInt(1), Gas: 21000, GasPrice: big.NewInt(1)})

	signed, err := signer.SignTx(tx, chainID)
	require.NoError(t, err)

	from, err := types.Sender(types.LatestSignerForChainID(chainID), signed)
	require.NoError(t, err)
	assert.Equal(t, signer.Address(), from)
}

func TestNewKeystoreSigner(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	keyJSON, err := keystore.EncryptKey(&keystore.Key{
		Id:         uuid.New(),
		Address:    crypto.PubkeyToAddress(key.PublicKey),
		PrivateKey: key,
	}, "secret", keystore.LightScryptN, keystore.LightScryptP)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "key.json")
	require.NoError(t, os.WriteFile(path, keyJSON, 0o600))

	signer, err := wallet.NewKeystoreSigner(path, "secret")
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), signer.Address())

	_, err = wallet.NewKeystoreSigner(path, "wrong")
	assert.Error(t, err)
}

type mockSecrets struct {
	mock.Mock
}

func (m *mockSecrets) GetSecretString(ctx context.Context, secretID, fallback string) (string, error) {
	args := m.Called(ctx, secretID, fallback)
	return args.String(0), args.Error(1)
}

func (m *mockSecrets) GetSecretField(ctx context.Context, secretID, field, fallback string) (string, error) {
	args := m.Called(ctx, secretID, field, fallback)
	return args.String(0), args.Error(1)
}

func TestLoadSigner(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing configured", func(t *testing.T) {
		signer, err := wallet.LoadSigner(ctx, wallet.SignerConfig{}, nil)
		require.NoError(t, err)
		assert.Nil(t, signer)
	})

	t.Run("raw key", func(t *testing.T) {
		signer, err := wallet.LoadSigner(ctx, wallet.SignerConfig{PrivateKey: testKeyHex}, nil)
		require.NoError(t, err)
		require.NotNil(t, signer)
	})

	t.Run("secrets manager", func(t *testing.T) {
		secrets := &mockSecrets{}
		secrets.On("GetSecretField", ctx, "arn:key", "private_key", "").Return(testKeyHex, nil)

		signer, err := wallet.LoadSigner(ctx, wallet.SignerConfig{PrivateKeySecretID: "arn:key"}, secrets)
		require.NoError(t, err)
		assert.Equal(t, common.HexToAddress("0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"), signer.Address())
		secrets.AssertExpectations(t)
	})

	t.Run("secret id without client", func(t *testing.T) {
		_, err := wallet.LoadSigner(ctx, wallet.SignerConfig{PrivateKeySecretID: "arn:key"}, nil)
		assert.Error(t, err)
	})
}
