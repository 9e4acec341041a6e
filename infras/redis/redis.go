package redis

import (
	"appointly/config"
	"context"
	"net"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const retryBackoff = time.Second

// Options maps the cache config onto go-redis options.
func Options(config *config.Config) *goRedis.Options {
	primary := config.Cache.Redis.Primary

	return &goRedis.Options{
		Addr:        net.JoinHostPort(primary.Host, primary.Port),
		Password:    primary.Password,
		DB:          primary.DB,
		PoolSize:    config.Cache.Redis.PoolSize,
		DialTimeout: time.Duration(config.Cache.Redis.DialTimeoutSeconds) * time.Second,
	}
}

func ping(client *goRedis.Client, timeout time.Duration, attempts int) error {
	var err error

	for attempt := 1; attempt <= max(attempts, 1); attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		err = client.Ping(ctx).Err()
		cancel()

		if err == nil {
			return nil
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("Redis ping failed")
		time.Sleep(retryBackoff * time.Duration(attempt))
	}

	return err
}

func New(config *config.Config) *goRedis.Client {
	options := Options(config)
	client := goRedis.NewClient(options)

	timeout := options.DialTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	if err := ping(client, timeout, config.Cache.Redis.MaxRetry); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	log.Info().
		Int("db", options.DB).
		Str("addr", options.Addr).
		Int("pool_size", options.PoolSize).
		Msg("Connected to Redis")

	return client
}
