package rpc

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/protectedpay/protectedpay-api/internal/interfaces"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"go.uber.org/zap"
)

// ClientOption represents a function that can modify the dialer
type ClientOption func(*options)

type options struct {
	timeout     time.Duration
	retry       *RetryConfig
	metrics     MetricsCollector
	middlewares []Middleware
	headers     map[string]string
}

// WithTimeout sets the per-request HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithRetryConfig sets the retry configuration; nil disables retries
func WithRetryConfig(config *RetryConfig) ClientOption {
	return func(o *options) {
		o.retry = config
	}
}

// WithMetricsCollector sets the metrics collector
func WithMetricsCollector(collector MetricsCollector) ClientOption {
	return func(o *options) {
		o.metrics = collector
	}
}

// WithMiddleware adds a middleware below the retrying transport
func WithMiddleware(middleware Middleware) ClientOption {
	return func(o *options) {
		o.middlewares = append(o.middlewares, middleware)
	}
}

// WithHeader adds a header to every HTTP request, e.g. an RPC provider key
func WithHeader(key, value string) ClientOption {
	return func(o *options) {
		o.headers[key] = value
	}
}

func buildOptions(opts []ClientOption) *options {
	o := &options{
		timeout: 30 * time.Second,
		retry:   DefaultRetryConfig(),
		metrics: &NoopMetricsCollector{},
		headers: make(map[string]string),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// NewHTTPClient returns an http.Client with the retrying JSON-RPC transport
func NewHTTPClient(opts ...ClientOption) *http.Client {
	o := buildOptions(opts)
	return newHTTPClient(o)
}

func newHTTPClient(o *options) *http.Client {
	var base http.RoundTripper = http.DefaultTransport
	// Apply middlewares in reverse order so the first one is outermost
	for i := len(o.middlewares) - 1; i >= 0; i-- {
		base = o.middlewares[i](base)
	}
	return &http.Client{
		Timeout:   o.timeout,
		Transport: NewTransport(base, o.retry, o.metrics),
	}
}

// Dial connects to an Ethereum JSON-RPC endpoint. HTTP(S) endpoints use the
// retrying transport; WebSocket and IPC endpoints are dialed directly.
func Dial(ctx context.Context, rawURL string, opts ...ClientOption) (*ethclient.Client, error) {
	o := buildOptions(opts)

	var dialOpts []gethrpc.ClientOption
	if strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://") {
		dialOpts = append(dialOpts, gethrpc.WithHTTPClient(newHTTPClient(o)))
		for k, v := range o.headers {
			dialOpts = append(dialOpts, gethrpc.WithHeader(k, v))
		}
	}

	client, err := gethrpc.DialOptions(ctx, rawURL, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rpc endpoint: %w", err)
	}

	logger.Log.Info("Connected to RPC endpoint", zap.String("url", redact(rawURL)))
	return ethclient.NewClient(client), nil
}

// ChainDialer returns a dial func for the wallet connector
func ChainDialer(opts ...ClientOption) func(ctx context.Context, chain business.Chain) (interfaces.EthBackend, error) {
	return func(ctx context.Context, chain business.Chain) (interfaces.EthBackend, error) {
		client, err := Dial(ctx, chain.RPCURL, opts...)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}

// redact drops any path or query from an RPC URL, which often embed API keys
func redact(rawURL string) string {
	if i := strings.Index(rawURL, "://"); i >= 0 {
		rest := rawURL[i+3:]
		if j := strings.IndexAny(rest, "/?"); j >= 0 {
			return rawURL[:i+3+j]
		}
	}
	return rawURL
}
