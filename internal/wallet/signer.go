package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/protectedpay/protectedpay-api/internal/interfaces"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"go.uber.org/zap"
)

// ErrInvalidPrivateKey is returned for malformed hex keys
var ErrInvalidPrivateKey = errors.New("invalid private key")

// KeySigner signs with an in-memory ECDSA key
type KeySigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewKeySigner wraps an ECDSA key
func NewKeySigner(key *ecdsa.PrivateKey) *KeySigner {
	return &KeySigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}
}

// NewKeySignerFromHex parses a 0x-prefixed or bare 64-character hex key
func NewKeySignerFromHex(hexKey string) (*KeySigner, error) {
	hexKey = strings.TrimSpace(hexKey)
	if !IsPrivateKeyValid(hexKey) {
		return nil, ErrInvalidPrivateKey
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	return NewKeySigner(key), nil
}

// NewKeystoreSigner decrypts a go-ethereum keystore file
func NewKeystoreSigner(path, passphrase string) (*KeySigner, error) {
	keyJSON, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keystore file: %w", err)
	}

	key, err := keystore.DecryptKey(keyJSON, passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt keystore: %w", err)
	}
	return NewKeySigner(key.PrivateKey), nil
}

// Address returns the signing account
func (s *KeySigner) Address() common.Address {
	return s.address
}

// SignTx signs tx for chainID
func (s *KeySigner) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}
	return signed, nil
}

// IsPrivateKeyValid checks for 64 hex characters with an optional 0x prefix
func IsPrivateKeyValid(key string) bool {
	key = strings.TrimPrefix(key, "0x")
	if len(key) != 64 {
		return false
	}
	for _, c := range key {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

// SignerConfig selects where the signing key comes from. The first populated
// source wins: PrivateKey, then PrivateKeySecretID, then KeystorePath.
type SignerConfig struct {
	PrivateKey         string
	PrivateKeySecretID string
	KeystorePath       string
	KeystorePassphrase string
}

// Configured reports whether any key source is set
func (c SignerConfig) Configured() bool {
	return c.PrivateKey != "" || c.PrivateKeySecretID != "" || c.KeystorePath != ""
}

// LoadSigner resolves the configured key source. It returns (nil, nil) when no
// source is configured; secrets may be nil unless PrivateKeySecretID is set.
func LoadSigner(ctx context.Context, cfg SignerConfig, secrets interfaces.SecretsManagerClient) (interfaces.Signer, error) {
	switch {
	case cfg.PrivateKey != "":
		signer, err := NewKeySignerFromHex(cfg.PrivateKey)
		if err != nil {
			return nil, err
		}
		logger.Log.Info("Loaded signer from private key", zap.String("address", signer.Address().Hex()))
		return signer, nil

	case cfg.PrivateKeySecretID != "":
		if secrets == nil {
			return nil, errors.New("secrets manager client is required for a private key secret")
		}
		hexKey, err := secrets.GetSecretField(ctx, cfg.PrivateKeySecretID, "private_key", "")
		if err != nil {
			return nil, fmt.Errorf("failed to fetch signer key: %w", err)
		}
		signer, err := NewKeySignerFromHex(hexKey)
		if err != nil {
			return nil, err
		}
		logger.Log.Info("Loaded signer from secrets manager", zap.String("address", signer.Address().Hex()))
		return signer, nil

	case cfg.KeystorePath != "":
		signer, err := NewKeystoreSigner(cfg.KeystorePath, cfg.KeystorePassphrase)
		if err != nil {
			return nil, err
		}
		logger.Log.Info("Loaded signer from keystore",
			zap.String("address", signer.Address().Hex()),
			zap.String("path", cfg.KeystorePath))
		return signer, nil
	}

	return nil, nil
}
