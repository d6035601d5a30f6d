// Package repository provides database access layer.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool sizing. Every handler issues a single query per request, so a
// small pool suffices; MinConns keeps warm connections for the login
// path, which already pays for an argon2 verification.
const (
	poolMaxConns        = 10
	poolMinConns        = 2
	poolMaxConnIdleTime = 5 * time.Minute
)

// Repository wraps a pgx connection pool and carries the query methods
// for the usuarios and alimentos tables.
type Repository struct {
	pool *pgxpool.Pool
}

// New connects to PostgreSQL and verifies the connection with a ping
// before returning. The caller owns the lifecycle and must Close.
func New(ctx context.Context, databaseURL string) (*Repository, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	cfg.MaxConns = poolMaxConns
	cfg.MinConns = poolMinConns
	cfg.MaxConnIdleTime = poolMaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Repository{pool: pool}, nil
}

// Ping checks database connectivity, used by the readiness probe.
func (r *Repository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Close releases the connection pool.
func (r *Repository) Close() {
	r.pool.Close()
}

// Pool exposes the underlying pool for test plumbing. Application
// code goes through Repository methods instead.
func (r *Repository) Pool() *pgxpool.Pool {
	return r.pool
}
