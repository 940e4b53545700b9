package mirror

import (
	"context"
	"database/sql"
	"fmt"
)

// execQuerier is satisfied by *sql.DB and by the wbf dbpg wrapper.
type execQuerier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// SQL keeps the slot as one row of the mirror_slots table. The queries are
// valid for both PostgreSQL and SQLite.
type SQL struct {
	db   execQuerier
	name string
}

// NewSQL creates a table-backed slot identified by name.
func NewSQL(db execQuerier, name string) *SQL {
	return &SQL{db: db, name: name}
}

// Init creates the mirror_slots table if it does not exist.
func (s *SQL) Init(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS mirror_slots (
		    name TEXT PRIMARY KEY,
		    data TEXT NOT NULL,
		    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
    `

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create mirror_slots table: %w", err)
	}

	return nil
}

// Load reads the slot row. A missing row is an empty slot.
func (s *SQL) Load(ctx context.Context) ([]byte, error) {
	query := `
		SELECT data
		FROM mirror_slots
		WHERE name = $1;
    `

	rows, err := s.db.QueryContext(ctx, query, s.name)
	if err != nil {
		return nil, fmt.Errorf("failed to load slot: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to load slot: %w", err)
		}

		return nil, ErrSlotEmpty
	}

	var data string
	if err := rows.Scan(&data); err != nil {
		return nil, fmt.Errorf("failed to scan slot: %w", err)
	}

	return []byte(data), nil
}

// Save upserts the slot row.
func (s *SQL) Save(ctx context.Context, data []byte) error {
	query := `
		INSERT INTO mirror_slots (name, data, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (name) DO UPDATE
		SET data = EXCLUDED.data, updated_at = CURRENT_TIMESTAMP;
    `

	if _, err := s.db.ExecContext(ctx, query, s.name, string(data)); err != nil {
		return fmt.Errorf("failed to save slot: %w", err)
	}

	return nil
}
