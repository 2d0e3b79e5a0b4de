// Package redis wraps the go-redis client so repositories depend on an
// interface that can be faked in tests.
package redis

import (
	"crypto/tls"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configures Redis client behavior
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

func (o *Options) apply(redisOpts *redis.Options) {
	if o == nil {
		return
	}
	if o.PoolSize > 0 {
		redisOpts.PoolSize = o.PoolSize
	}
	if o.MinIdleConns > 0 {
		redisOpts.MinIdleConns = o.MinIdleConns
	}
	if o.ConnMaxIdleTime > 0 {
		redisOpts.ConnMaxIdleTime = o.ConnMaxIdleTime
	}
	if o.MaxRetries != 0 {
		redisOpts.MaxRetries = o.MaxRetries
	}
	if o.UseTLS && redisOpts.TLSConfig == nil {
		redisOpts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}
}

// NewClient creates a Redis client for a single instance at host:port
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	redisOpts := &redis.Options{Addr: endpoint}
	opts.apply(redisOpts)

	return redis.NewClient(redisOpts), nil
}

// NewClientFromURL creates a Redis client from a redis:// or rediss:// URL.
// A bare host:port is accepted as well.
func NewClientFromURL(rawURL string, opts *Options) (Client, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, errors.New("redis: url is required")
	}
	if !strings.Contains(rawURL, "://") {
		return NewClient(rawURL, opts)
	}

	redisOpts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, err
	}
	opts.apply(redisOpts)

	return redis.NewClient(redisOpts), nil
}
