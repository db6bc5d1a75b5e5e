package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS saves (
	save_key TEXT PRIMARY KEY,
	updated_at INTEGER NOT NULL,
	data BLOB NOT NULL
);
`

func NewSQLiteRepository(ctx context.Context, path string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return nil, fmt.Errorf("failed to create saves table: %v", err)
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) Save(ctx context.Context, key string, data []byte) error {
	q := `
	INSERT OR REPLACE INTO saves (save_key, updated_at, data)
	VALUES (?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, q, key, time.Now().UnixMilli(), data)
	if err != nil {
		return fmt.Errorf("failed to insert save: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context, key string) ([]byte, error) {
	q := `
	SELECT data FROM saves WHERE save_key = ?;
	`
	var data []byte
	if err := r.db.QueryRowContext(ctx, q, key).Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan save: %v", err)
	}

	return data, nil
}
