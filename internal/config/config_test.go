package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/protectedpay/protectedpay-api/internal/config"
	"github.com/protectedpay/protectedpay-api/internal/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contractAddr = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, constants.DevEnvironment, cfg.Stage)
	assert.Equal(t, 8080, cfg.API.Port)
	assert.Equal(t, constants.NeoXTestnetChainID, cfg.Chain.ID)
	assert.Equal(t, 2*time.Minute, cfg.Tx.ConfirmTimeout)
	assert.Equal(t, 3, cfg.RPC.MaxRetries)
	assert.Equal(t, uint64(2000), cfg.Indexer.BatchSize)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.IndexerEnabled(), "no database configured")
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
stage: prod
api:
  port: 9090
chain:
  id: 656476
contract:
  address: "0x0000000000000000000000000000000000000001"
indexer:
  poll_interval: 30s
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	t.Setenv("PPAY_CONTRACT_ADDRESS", contractAddr)
	t.Setenv("PPAY_DATABASE_URL", "postgres://localhost/ppay")
	t.Setenv("PPAY_TX_CONFIRM_TIMEOUT", "0s")
	t.Setenv("PPAY_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, constants.ProdEnvironment, cfg.Stage)
	assert.Equal(t, 9090, cfg.API.Port)
	assert.Equal(t, constants.EduChainTestnetChainID, cfg.Chain.ID)
	assert.Equal(t, contractAddr, cfg.Contract.Address, "env overrides file")
	assert.Equal(t, 30*time.Second, cfg.Indexer.PollInterval)
	assert.Zero(t, cfg.Tx.ConfirmTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.IndexerEnabled())
	require.NoError(t, cfg.Validate())
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("api: [unclosed"), 0o600))

	_, err := config.Load(dir)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *config.Config {
		cfg, err := config.Load(t.TempDir())
		require.NoError(t, err)
		cfg.Contract.Address = contractAddr
		return cfg
	}

	tests := []struct {
		name        string
		mutate      func(c *config.Config)
		errorString string
	}{
		{name: "valid", mutate: func(c *config.Config) {}},
		{
			name:        "missing contract",
			mutate:      func(c *config.Config) { c.Contract.Address = "" },
			errorString: "contract.address is required",
		},
		{
			name:        "malformed contract",
			mutate:      func(c *config.Config) { c.Contract.Address = "0x1234" },
			errorString: "is not a valid address",
		},
		{
			name:        "zero contract",
			mutate:      func(c *config.Config) { c.Contract.Address = "0x0000000000000000000000000000000000000000" },
			errorString: "zero address",
		},
		{
			name:        "unknown chain without rpc",
			mutate:      func(c *config.Config) { c.Chain.ID = 1 },
			errorString: "chain.rpc_url is required",
		},
		{
			name:   "unknown chain with rpc",
			mutate: func(c *config.Config) { c.Chain.ID = 1; c.Chain.RPCURL = "http://localhost:8545" },
		},
		{
			name:        "bad stage",
			mutate:      func(c *config.Config) { c.Stage = "staging" },
			errorString: "invalid stage",
		},
		{
			name:        "bad port",
			mutate:      func(c *config.Config) { c.API.Port = 0 },
			errorString: "api.port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.errorString == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}
