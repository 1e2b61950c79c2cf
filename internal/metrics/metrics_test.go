package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/protectedpay/protectedpay-api/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.New()

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/api/v1/transfers/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/transfers/0x1", nil)
		router.ServeHTTP(w, req)
	}

	count, err := testutil.GatherAndCount(m.Registry(), "protectedpay_api_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "requests are grouped by route template")
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.RecordRequestCount("eth_call", "", 200)
	m.RecordRequestDuration("eth_call", "", 200, 10*time.Millisecond)
	m.RecordRequestError("eth_call", "")
	m.RecordContractTx("sendToAddress", "confirmed", 3*time.Second)
	m.RecordIndexedEvent("TransferInitiated")
	m.SetIndexerBlock(42)
	m.RecordIndexerError()

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := w.Body.String()
	assert.Equal(t, http.StatusOK, w.Code)
	for _, name := range []string{
		`protectedpay_rpc_requests_total{method="eth_call",status="200"} 1`,
		`protectedpay_rpc_errors_total{method="eth_call"} 1`,
		`protectedpay_contract_transactions_total{operation="sendToAddress",outcome="confirmed"} 1`,
		`protectedpay_indexer_events_total{event="TransferInitiated"} 1`,
		`protectedpay_indexer_last_block 42`,
	} {
		assert.True(t, strings.Contains(body, name), "missing %s", name)
	}
}
