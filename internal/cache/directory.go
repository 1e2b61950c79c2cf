// Package cache holds in-process caches backed by bigcache.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/ethereum/go-ethereum/common"
	"github.com/protectedpay/protectedpay-api/internal/interfaces"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"go.uber.org/zap"
)

const (
	addressPrefix  = "addr:"
	usernamePrefix = "user:"
)

// DirectoryConfig tunes the username directory cache
type DirectoryConfig struct {
	LifeWindow  time.Duration
	CleanWindow time.Duration
	Shards      int
}

// DefaultDirectoryConfig keeps entries for ten minutes
func DefaultDirectoryConfig() DirectoryConfig {
	return DirectoryConfig{
		LifeWindow:  10 * time.Minute,
		CleanWindow: 5 * time.Minute,
		Shards:      64,
	}
}

// Directory caches the address <-> username mapping read from the contract.
// Only registered users are cached; a miss always falls through to the chain.
type Directory struct {
	cache  *bigcache.BigCache
	logger *zap.Logger
}

// NewDirectory creates a directory cache
func NewDirectory(ctx context.Context, cfg DirectoryConfig) (*Directory, error) {
	bigCacheConfig := bigcache.DefaultConfig(cfg.LifeWindow)
	bigCacheConfig.CleanWindow = cfg.CleanWindow
	if cfg.Shards > 0 {
		bigCacheConfig.Shards = cfg.Shards
	}
	bigCacheConfig.MaxEntrySize = 128
	bigCacheConfig.Verbose = false

	c, err := bigcache.New(ctx, bigCacheConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory cache: %w", err)
	}

	return &Directory{
		cache:  c,
		logger: logger.Log.With(zap.String("component", "user_directory")),
	}, nil
}

// UsernameOf returns the cached username for address
func (d *Directory) UsernameOf(address common.Address) (string, bool) {
	return d.get(addressKey(address))
}

// AddressOf returns the cached address for username
func (d *Directory) AddressOf(username string) (common.Address, bool) {
	hex, ok := d.get(usernameKey(username))
	if !ok {
		return common.Address{}, false
	}
	return common.HexToAddress(hex), true
}

// Remember stores both directions of a registration. Empty usernames and the
// zero address are ignored.
func (d *Directory) Remember(address common.Address, username string) {
	if username == "" || address == (common.Address{}) {
		return
	}
	d.set(addressKey(address), username)
	d.set(usernameKey(username), address.Hex())
}

// Forget drops an address and its username
func (d *Directory) Forget(address common.Address) {
	if username, ok := d.UsernameOf(address); ok {
		d.delete(usernameKey(username))
	}
	d.delete(addressKey(address))
}

// Reset drops every entry
func (d *Directory) Reset() error {
	return d.cache.Reset()
}

// Close releases the cache
func (d *Directory) Close() error {
	return d.cache.Close()
}

func (d *Directory) get(key string) (string, bool) {
	value, err := d.cache.Get(key)
	if err != nil {
		if !errors.Is(err, bigcache.ErrEntryNotFound) {
			d.logger.Warn("Directory cache read failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return string(value), true
}

func (d *Directory) set(key, value string) {
	if err := d.cache.Set(key, []byte(value)); err != nil {
		d.logger.Warn("Directory cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (d *Directory) delete(key string) {
	if err := d.cache.Delete(key); err != nil && !errors.Is(err, bigcache.ErrEntryNotFound) {
		d.logger.Warn("Directory cache delete failed", zap.String("key", key), zap.Error(err))
	}
}

func addressKey(address common.Address) string {
	return addressPrefix + strings.ToLower(address.Hex())
}

// usernameKey keeps usernames case-sensitive, matching the contract
func usernameKey(username string) string {
	return usernamePrefix + username
}

var _ interfaces.UserDirectory = (*Directory)(nil)
