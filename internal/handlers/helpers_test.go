package handlers_test

import (
	"bytes"
	"encoding/json"
	"math/big"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"github.com/protectedpay/protectedpay-api/internal/middleware"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger("test")
	gin.SetMode(gin.TestMode)
}

var (
	alice      = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	bob        = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	transferID = common.HexToHash("0x1111111111111111111111111111111111111111111111111111111111111111")
)

func newRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.CorrelationIDMiddleware())
	return router
}

func perform(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func ether(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1_000_000_000_000_000_000))
}

func receipt(op string) *business.TxReceipt {
	id := transferID
	return &business.TxReceipt{
		Operation:   op,
		TxHash:      common.HexToHash("0xbeef"),
		BlockNumber: 7,
		GasUsed:     21000,
		From:        alice,
		ValueWei:    ether(1),
		ExplorerURL: "https://xt4scan.ngd.network/tx/0xbeef",
		EntityID:    &id,
	}
}
