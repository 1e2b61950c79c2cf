// Package rpc builds the HTTP transport used for Ethereum JSON-RPC: retries
// for idempotent calls, per-method metrics and request logging.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"go.uber.org/zap"
)

// Middleware represents a function that wraps an http.RoundTripper
type Middleware func(http.RoundTripper) http.RoundTripper

// RetryConfig configures the retry behavior
type RetryConfig struct {
	MaxRetries           int
	InitialInterval      time.Duration
	MaxInterval          time.Duration
	Multiplier           float64
	MaxElapsedTime       time.Duration
	RetryableStatusCodes []int
}

// DefaultRetryConfig provides sensible defaults for retries
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:           3,
		InitialInterval:      100 * time.Millisecond,
		MaxInterval:          5 * time.Second,
		Multiplier:           2.0,
		MaxElapsedTime:       30 * time.Second,
		RetryableStatusCodes: []int{408, 429, 500, 502, 503, 504},
	}
}

// NewBackOff builds an exponential backoff from the config, bounded by
// MaxRetries and ctx
func (c *RetryConfig) NewBackOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.InitialInterval
	exp.MaxInterval = c.MaxInterval
	exp.Multiplier = c.Multiplier
	exp.MaxElapsedTime = c.MaxElapsedTime
	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(c.MaxRetries)), ctx)
}

// MetricsCollector defines an interface for collecting metrics. method is the
// JSON-RPC method name.
type MetricsCollector interface {
	RecordRequestDuration(method, path string, statusCode int, duration time.Duration)
	RecordRequestCount(method, path string, statusCode int)
	RecordRequestError(method, path string)
}

// NoopMetricsCollector is a metrics collector that does nothing
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordRequestDuration(method, path string, statusCode int, duration time.Duration) {
}
func (n *NoopMetricsCollector) RecordRequestCount(method, path string, statusCode int) {}
func (n *NoopMetricsCollector) RecordRequestError(method, path string)                 {}

// writeMethods submit transactions; resubmitting them is left to the caller
var writeMethods = map[string]bool{
	"eth_sendRawTransaction": true,
	"eth_sendTransaction":    true,
}

// retryableStatusError marks a response whose status code warrants a retry
type retryableStatusError struct {
	code int
}

func (e *retryableStatusError) Error() string {
	return fmt.Sprintf("retryable status code: %d", e.code)
}

// Transport is an http.RoundTripper for JSON-RPC requests
type Transport struct {
	next    http.RoundTripper
	retry   *RetryConfig
	metrics MetricsCollector
}

// NewTransport wraps next. A nil retry config disables retries.
func NewTransport(next http.RoundTripper, retry *RetryConfig, metrics MetricsCollector) *Transport {
	if next == nil {
		next = http.DefaultTransport
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	return &Transport{next: next, retry: retry, metrics: metrics}
}

// RoundTrip sends the request, retrying read-only calls on network errors and
// retryable status codes
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
	}
	method := RPCMethod(body)
	path := req.URL.Path

	attempt := func() (*http.Response, error) {
		clone := req.Clone(req.Context())
		if body != nil {
			clone.Body = io.NopCloser(bytes.NewReader(body))
			clone.ContentLength = int64(len(body))
		}
		return t.next.RoundTrip(clone)
	}

	var resp *http.Response
	var err error
	if t.retry != nil && t.retry.MaxRetries > 0 && !writeMethods[method] {
		operation := func() error {
			resp, err = attempt()
			if err != nil {
				if req.Context().Err() != nil {
					return backoff.Permanent(err)
				}
				return err
			}
			if t.isRetryableStatus(resp.StatusCode) {
				_, _ = io.Copy(io.Discard, resp.Body)
				_ = resp.Body.Close()
				return &retryableStatusError{code: resp.StatusCode}
			}
			return nil
		}
		err = backoff.Retry(operation, t.retry.NewBackOff(req.Context()))
		var statusErr *retryableStatusError
		if errors.As(err, &statusErr) {
			resp = nil
		}
	} else {
		resp, err = attempt()
	}

	duration := time.Since(start)
	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	t.metrics.RecordRequestDuration(method, path, statusCode, duration)
	t.metrics.RecordRequestCount(method, path, statusCode)

	if err != nil {
		t.metrics.RecordRequestError(method, path)
		logger.Error("JSON-RPC request failed",
			zap.String("rpc_method", method),
			zap.String("host", req.URL.Host),
			zap.Error(err),
			zap.Duration("duration", duration))
		return nil, fmt.Errorf("rpc request failed: %w", err)
	}
	if statusCode >= 400 {
		t.metrics.RecordRequestError(method, path)
	}

	logger.Debug("JSON-RPC request completed",
		zap.String("rpc_method", method),
		zap.Int("status", statusCode),
		zap.Duration("duration", duration))
	return resp, nil
}

func (t *Transport) isRetryableStatus(code int) bool {
	for _, c := range t.retry.RetryableStatusCodes {
		if c == code {
			return true
		}
	}
	return false
}

// RPCMethod extracts the method name from a JSON-RPC request body. Batches
// are reported as "batch" and unparsable bodies as "unknown".
func RPCMethod(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return "batch"
	}
	var msg struct {
		Method string `json:"method"`
	}
	if err := json.Unmarshal(trimmed, &msg); err != nil || msg.Method == "" {
		return "unknown"
	}
	return msg.Method
}

// LoggingMiddleware creates a middleware that logs requests and responses
func LoggingMiddleware() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return &loggingRoundTripper{next: next}
	}
}

type loggingRoundTripper struct {
	next http.RoundTripper
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	logger.Debug("Sending RPC HTTP request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()))

	resp, err := l.next.RoundTrip(req)
	if err != nil {
		logger.Debug("RPC HTTP request errored",
			zap.String("url", req.URL.Redacted()),
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return nil, err
	}

	logger.Debug("Received RPC HTTP response",
		zap.String("url", req.URL.Redacted()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))
	return resp, nil
}
