package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresKV implementa KVStore sobre pgxpool, para despliegues con
// base de datos compartida en lugar del archivo local.
type PostgresKV struct {
	pool *pgxpool.Pool
}

func NewPostgresKV(pool *pgxpool.Pool) *PostgresKV {
	return &PostgresKV{pool: pool}
}

// Init crea la tabla kv si no existe.
func (s *PostgresKV) Init(ctx context.Context) error {
	const query = `
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`
	_, err := s.pool.Exec(ctx, query)
	return err
}

func (s *PostgresKV) Get(ctx context.Context, key string) (string, bool, error) {
	const query = `SELECT value FROM kv WHERE key = $1`
	var value string
	err := s.pool.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *PostgresKV) Set(ctx context.Context, key, value string) error {
	const query = `
		INSERT INTO kv (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`
	_, err := s.pool.Exec(ctx, query, key, value)
	return err
}

func (s *PostgresKV) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM kv WHERE key = $1`
	_, err := s.pool.Exec(ctx, query, key)
	return err
}
