// Package cache provides Redis caching for hot read paths.
package cache

import (
	"context"
	"log/slog"
	"net"
	"time"

	"ripple/internal/config"
	"ripple/internal/middleware"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// metricsHook counts Redis command errors so cache degradation is visible.
type metricsHook struct{}

func (metricsHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		if err != nil {
			middleware.RedisErrors.WithLabelValues("dial").Inc()
		}
		return conn, err
	}
}

func (metricsHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if err != nil && err != redis.Nil {
			middleware.RedisErrors.WithLabelValues(cmd.Name()).Inc()
		}
		return err
	}
}

func (metricsHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		if err != nil && err != redis.Nil {
			middleware.RedisErrors.WithLabelValues("pipeline").Inc()
		}
		return err
	}
}

// InitRedis connects to Redis using the loaded config. The returned client is
// also stored globally for GetClient. A failed ping is returned to the caller;
// the app degrades to cache-miss behavior rather than refusing to start.
func InitRedis(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisURL,
	})
	rdb.AddHook(metricsHook{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Warn("redis ping failed, caching disabled", "addr", cfg.RedisURL, "error", err)
		return rdb, err
	}

	client = rdb
	slog.Info("redis connected", "addr", cfg.RedisURL)
	return rdb, nil
}

// SetClient replaces the global client. Used by tests with miniredis.
func SetClient(rdb *redis.Client) {
	client = rdb
}

// GetClient returns the global Redis client, or nil when caching is disabled.
func GetClient() *redis.Client {
	return client
}
