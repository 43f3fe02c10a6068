package blobstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgStore keeps blobs in a single key/value table. Used when DB_DSN is set.
type PgStore struct {
	pool *pgxpool.Pool
}

// NewPgStore ensures the blob table exists and returns the store.
func NewPgStore(ctx context.Context, pool *pgxpool.Pool) (*PgStore, error) {
	s := &PgStore{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to prepare blob table: %w", err)
	}
	return s, nil
}

func (s *PgStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS public.kv_blobs (
			key   text PRIMARY KEY,
			value jsonb NOT NULL
		)`)
	return err
}

// Load reads and decodes the blob for key into dst. Any failure leaves dst untouched.
func (s *PgStore) Load(ctx context.Context, key string, dst any) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("value").
		From("public.kv_blobs").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		log.Printf("blobstore: failed to build load query for %q: %v", key, err)
		return
	}

	var raw []byte
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUndefinedTable(err) {
			return
		}
		log.Printf("blobstore: failed to load %q: %v", key, err)
		return
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		// Incompatible shape falls back to the caller's default.
		log.Printf("blobstore: failed to decode %q, using default: %v", key, err)
	}
}

// Save upserts the encoded blob. A missing table is recreated and the write retried once.
func (s *PgStore) Save(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("blobstore: failed to encode %q: %v", key, err)
		return
	}

	if err := s.upsert(ctx, key, raw); err != nil {
		if isUndefinedTable(err) {
			if err := s.ensureSchema(ctx); err == nil {
				err = s.upsert(ctx, key, raw)
			}
			if err == nil {
				return
			}
		}
		log.Printf("blobstore: failed to save %q: %v", key, err)
	}
}

func (s *PgStore) upsert(ctx context.Context, key string, raw []byte) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.kv_blobs").
		Columns("key", "value").
		Values(key, raw).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert query failed: %w", err)
	}

	_, err = s.pool.Exec(ctx, query, args...)
	return err
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable
}
