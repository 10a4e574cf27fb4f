package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JonMunkholm/admintables/internal/catalog"
	"github.com/JonMunkholm/admintables/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// openSource builds the configured dataset source. The returned func
// releases its connections.
func openSource(ctx context.Context, cfg *config.Config) (catalog.Source, func(), error) {
	switch cfg.Dataset.Source {
	case config.SourceEmbedded:
		return catalog.EmbeddedSource{}, func() {}, nil

	case config.SourceYAML:
		return catalog.YAMLSource{Path: cfg.Dataset.Path}, func() {}, nil

	case config.SourcePostgres:
		pool, err := openPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		src := catalog.NewPostgresSource(pool)
		if cfg.Dataset.AutoMigrate {
			if err := src.EnsureSchema(ctx); err != nil {
				pool.Close()
				return nil, nil, err
			}
			slog.Info("dataset schema ensured")
		}
		return src, pool.Close, nil

	case config.SourceRedis:
		client, err := openRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return catalog.NewRedisSource(client, cfg.Redis.Prefix), func() { _ = client.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown dataset source %q", cfg.Dataset.Source)
}

func openPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MinConns = int32(cfg.MinConns)
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	slog.Info("connected to database", "database", poolConfig.ConnConfig.Database)
	return pool, nil
}

func openRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	slog.Info("connected to redis", "addr", cfg.Addr, "db", cfg.DB)
	return client, nil
}

// publishSeed writes the embedded seed datasets under the configured prefix.
func publishSeed(ctx context.Context, cfg *config.Config) error {
	d, err := catalog.EmbeddedSource{}.Load(ctx)
	if err != nil {
		return err
	}
	client, err := openRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer client.Close()

	src := catalog.NewRedisSource(client, cfg.Redis.Prefix)
	if err := src.Publish(ctx, d); err != nil {
		return err
	}
	slog.Info("seed published", "prefix", cfg.Redis.Prefix, "counts", d.Counts())
	return nil
}
