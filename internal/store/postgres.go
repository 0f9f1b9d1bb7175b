package store

import (
	"context"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"ecaretag/internal/models"
	"ecaretag/migrations"
)

// Postgres is a Store backed by a pgx connection pool, so counters survive
// restarts and can be shared across replicas.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a connection pool and verifies connectivity.
func NewPostgres(ctx context.Context, connString string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

// RunMigrations runs all embedded SQL migrations.
func (p *Postgres) RunMigrations(connString string) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, connString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// IncrementCodeMatch upserts the match count for a taxonomy code.
func (p *Postgres) IncrementCodeMatch(ctx context.Context, code string) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO code_matches (code, count, last_seen_at)
		VALUES ($1, 1, NOW())
		ON CONFLICT (code) DO UPDATE
		SET count = code_matches.count + 1, last_seen_at = NOW()
	`, code)
	return err
}

// IncrementClassification upserts the count for a classification outcome.
func (p *Postgres) IncrementClassification(ctx context.Context, outcome string) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO classification_runs (outcome, count, last_seen_at)
		VALUES ($1, 1, NOW())
		ON CONFLICT (outcome) DO UPDATE
		SET count = classification_runs.count + 1, last_seen_at = NOW()
	`, outcome)
	return err
}

// CodeMatches returns all per-code counters for metrics export.
func (p *Postgres) CodeMatches(ctx context.Context) ([]models.CodeMatch, error) {
	rows, err := p.pool.Query(ctx, `SELECT code, count, last_seen_at FROM code_matches ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []models.CodeMatch
	for rows.Next() {
		var m models.CodeMatch
		if err := rows.Scan(&m.Code, &m.Count, &m.LastSeenAt); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// Classifications returns all per-outcome counters for metrics export.
func (p *Postgres) Classifications(ctx context.Context) ([]models.ClassificationCount, error) {
	rows, err := p.pool.Query(ctx, `SELECT outcome, count, last_seen_at FROM classification_runs ORDER BY outcome`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.ClassificationCount
	for rows.Next() {
		var c models.ClassificationCount
		if err := rows.Scan(&c.Outcome, &c.Count, &c.LastSeenAt); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// Ping checks database connectivity.
func (p *Postgres) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close closes the connection pool.
func (p *Postgres) Close() {
	p.pool.Close()
}
