package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/protectedpay/protectedpay-api/internal/client/protectedpay"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	bob   = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
)

func TestNewPrinter(t *testing.T) {
	p, err := newPrinter("", &bytes.Buffer{})
	require.NoError(t, err)
	assert.False(t, p.json)

	p, err = newPrinter(formatJSON, &bytes.Buffer{})
	require.NoError(t, err)
	assert.True(t, p.json)

	_, err = newPrinter("yaml", &bytes.Buffer{})
	assert.EqualError(t, err, `unknown output format "yaml"`)
}

func TestPrinter_ReceiptJSON(t *testing.T) {
	var buf bytes.Buffer
	p, err := newPrinter(formatJSON, &buf)
	require.NoError(t, err)

	entity := common.HexToHash("0x1234")
	require.NoError(t, p.receipt(&business.TxReceipt{
		Operation:   "sendToAddress",
		TxHash:      common.HexToHash("0xabcd"),
		BlockNumber: 42,
		From:        alice,
		ValueWei:    big.NewInt(5e17),
		EntityID:    &entity,
	}))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "transaction", got["object"])
	assert.Equal(t, "0.5", got["value"])
	assert.Equal(t, entity.Hex(), got["entity_id"])
}

func TestPrinter_WaitSkipsSpinnerForJSON(t *testing.T) {
	p, err := newPrinter(formatJSON, &bytes.Buffer{})
	require.NoError(t, err)

	want := &business.TxReceipt{Operation: "refundTransfer"}
	got, err := p.wait("Refunding", func() (*business.TxReceipt, error) { return want, nil })
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestTransferRows(t *testing.T) {
	rows := transferRows([]business.Transfer{
		{
			Sender:    alice,
			Recipient: bob,
			AmountWei: big.NewInt(1e18),
			Timestamp: time.Unix(1700000000, 0),
			Status:    business.TransferPending,
			Remarks:   "rent",
		},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, []string{"-", alice.Hex(), bob.Hex(), "1", "pending", "2023-11-14T22:13:20Z", "rent"}, rows[1])
}

func TestReceiptRows_OptionalFields(t *testing.T) {
	rows := receiptRows(&business.TxReceipt{Operation: "breakPot"})
	for _, row := range rows {
		assert.NotEqual(t, "Entity id", row[0])
		assert.NotEqual(t, "Explorer", row[0])
	}

	entity := common.HexToHash("0x01")
	rows = receiptRows(&business.TxReceipt{Operation: "breakPot", EntityID: &entity, ExplorerURL: "https://x/tx/1"})
	assert.Contains(t, rows, []string{"Entity id", entity.Hex()})
	assert.Contains(t, rows, []string{"Explorer", "https://x/tx/1"})
}

func TestEventRows_Dashes(t *testing.T) {
	rows := eventRows([]business.ContractEvent{{Name: "UserRegistered", BlockNumber: 7, Actor: &alice, Label: "alice"}})
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"7", "UserRegistered", "-", alice.Hex(), "-", "-", "alice"}, rows[1])
}

func TestParseChainID(t *testing.T) {
	id, err := parseChainID("0xba9304")
	require.NoError(t, err)
	assert.Equal(t, int64(12227332), id.Int64())

	id, err = parseChainID("656476")
	require.NoError(t, err)
	assert.Equal(t, int64(656476), id.Int64())

	_, err = parseChainID("neox")
	assert.Error(t, err)
	_, err = parseChainID("0")
	assert.Error(t, err)
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		errorString string
	}{
		{
			name:        "wallet not connected",
			err:         protectedpay.NewError(protectedpay.KindWalletNotConnected, "send", protectedpay.ErrWalletNotConnected),
			errorString: "please connect your wallet first",
		},
		{
			name:        "timeout",
			err:         protectedpay.NewError(protectedpay.KindTimeout, "send", errors.New("deadline")),
			errorString: "timed out trying to send transfer",
		},
		{
			name:        "revert",
			err:         protectedpay.NewError(protectedpay.KindReverted, "send", protectedpay.ErrReverted),
			errorString: "failed to send transfer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := describeError(tt.err, "send transfer")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}

	assert.NoError(t, describeError(nil, "send transfer"))
}
