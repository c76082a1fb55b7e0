package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/fit-training-service/internal/domain"
)

// PostgresSnapshots persists the trainee collection as a single jsonb row in
// the snapshots table, keyed by collection name. Each save replaces the whole
// document; the upsert is atomic, so a failed write leaves the previous
// committed snapshot intact.
type PostgresSnapshots struct {
	pool *pgxpool.Pool
	key  string
}

// NewPostgresSnapshots builds a Postgres-backed snapshot store.
func NewPostgresSnapshots(pool *pgxpool.Pool, key string) *PostgresSnapshots {
	return &PostgresSnapshots{pool: pool, key: key}
}

// Load reads the snapshot document. A missing row is an empty collection.
func (p *PostgresSnapshots) Load(ctx context.Context) ([]domain.Trainee, error) {
	const query = `SELECT document FROM snapshots WHERE collection=$1`

	var data []byte
	if err := p.pool.QueryRow(ctx, query, p.key).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot %s: %w", p.key, err)
	}
	var trainees []domain.Trainee
	if err := json.Unmarshal(data, &trainees); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", p.key, err)
	}
	return trainees, nil
}

// Save upserts a complete replacement snapshot under the collection key.
func (p *PostgresSnapshots) Save(ctx context.Context, trainees []domain.Trainee) error {
	data, err := json.Marshal(trainees)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	const query = `
        INSERT INTO snapshots (collection, document, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (collection) DO UPDATE SET document=EXCLUDED.document, updated_at=NOW()`

	if _, err := p.pool.Exec(ctx, query, p.key, data); err != nil {
		return fmt.Errorf("write snapshot %s: %w", p.key, err)
	}
	return nil
}
