package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// likeEscaper neutralizes the LIKE metacharacters so a key prefix always
// matches literally, the same way the file backend's HasPrefix does.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern converts a literal key prefix into a LIKE pattern
func likePattern(prefix string) string {
	return likeEscaper.Replace(prefix) + "%"
}

// PostgresStore keeps all records in a single kv_store table
// (key TEXT PRIMARY KEY, value JSONB). The schema is managed by the
// goose migrations under migrations/.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a store backed by the given connection pool
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Get returns the value stored under key
func (s *PostgresStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var value json.RawMessage
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("get key %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, overwriting any previous value
func (s *PostgresStore) Set(ctx context.Context, key string, value interface{}) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value for key %q: %w", key, err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`, key, encoded)
	if err != nil {
		return fmt.Errorf("set key %q: %w", key, err)
	}
	return nil
}

// Delete removes key; deleting a missing key is a no-op
func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("delete key %q: %w", key, err)
	}
	return nil
}

// GetByPrefix returns the values of all keys starting with prefix
func (s *PostgresStore) GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT value FROM kv_store
		WHERE key LIKE $1
		ORDER BY key
	`, likePattern(prefix))
	if err != nil {
		return nil, fmt.Errorf("scan prefix %q: %w", prefix, err)
	}
	defer rows.Close()

	var values []json.RawMessage
	for rows.Next() {
		var value json.RawMessage
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("scan value for prefix %q: %w", prefix, err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan prefix %q: %w", prefix, err)
	}

	return values, nil
}

// Reset removes every key
func (s *PostgresStore) Reset(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM kv_store`); err != nil {
		return fmt.Errorf("reset store: %w", err)
	}
	return nil
}

// Close releases the connection pool; the store owns it once built
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
