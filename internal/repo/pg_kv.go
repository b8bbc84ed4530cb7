package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGKV stores records in the kv_store table (see migrations/).
type PGKV struct {
	db *pgxpool.Pool
}

func NewPGKV(db *pgxpool.Pool) *PGKV {
	return &PGKV{db: db}
}

func (r *PGKV) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := r.db.QueryRow(ctx, `SELECT value::text FROM kv_store WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (r *PGKV) Put(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	_, err := r.db.Exec(ctx, query, key, string(value))
	return err
}
