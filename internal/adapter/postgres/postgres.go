// Package postgres implements the record store on PostgreSQL, for setups
// that keep their data in a local database instead of flat files.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"nutritrack/internal/domain"
)

// Ensure interface is met.
var _ domain.RecordStore = (*DB)(nil)

// DB wraps a *sql.DB and stores each named record as one JSONB row.
type DB struct {
	sql *sql.DB
}

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmt := `CREATE TABLE IF NOT EXISTS nutrition_records (
		name TEXT PRIMARY KEY,
		data JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);`
	if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Load reads the named record row and unmarshals it into out.
func (d *DB) Load(ctx context.Context, name string, out any) (bool, error) {
	var data []byte
	err := d.sql.QueryRowContext(ctx,
		`SELECT data FROM nutrition_records WHERE name = $1;`, name,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode record %q: %w", name, err)
	}
	return true, nil
}

// Save upserts the named record row.
func (d *DB) Save(ctx context.Context, name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = d.sql.ExecContext(ctx,
		`INSERT INTO nutrition_records(name, data, updated_at) VALUES($1, $2, $3)
		 ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at;`,
		name, data, time.Now().UTC(),
	)
	return err
}
