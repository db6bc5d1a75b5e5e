package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

type PostgresRepository struct {
	conn *pgx.Conn
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS saves (
	save_key TEXT PRIMARY KEY,
	updated_at BIGINT NOT NULL,
	data BYTEA NOT NULL
);
`

// NewPostgresRepository connects to the database and ensures the
// saves table exists. The caller is responsible for calling Close()
// on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (Repository, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	if _, err := conn.Exec(ctx, postgresSchema); err != nil {
		return nil, fmt.Errorf("failed to create saves table: %v", err)
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) Save(ctx context.Context, key string, data []byte) error {
	q := `
	INSERT INTO saves (save_key, updated_at, data) VALUES ($1, $2, $3)
	ON CONFLICT (save_key) DO UPDATE SET updated_at = $2, data = $3;
	`
	_, err := r.conn.Exec(ctx, q, key, time.Now().UnixMilli(), data)
	if err != nil {
		return fmt.Errorf("failed to insert save: %v", err)
	}

	return nil
}

func (r *PostgresRepository) Load(ctx context.Context, key string) ([]byte, error) {
	q := `
	SELECT data FROM saves WHERE save_key = $1;
	`
	var data []byte
	if err := r.conn.QueryRow(ctx, q, key).Scan(&data); err != nil {
		if err == pgx.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan save: %v", err)
	}

	return data, nil
}
