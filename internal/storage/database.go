package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite handle backing accounts and token revocation.
type DB struct {
	sql *sql.DB
}

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
		"id" TEXT PRIMARY KEY,
		"email" TEXT NOT NULL UNIQUE,
		"password_hash" TEXT NOT NULL,
		"full_name" TEXT NOT NULL,
		"gender" TEXT NOT NULL,
		"date_of_birth" TEXT,
		"created_at" INTEGER NOT NULL
);`

const createRevokedTokensTable = `
CREATE TABLE IF NOT EXISTS revoked_tokens (
		"jti" TEXT PRIMARY KEY,
		"expires_at" INTEGER NOT NULL
);`

// Open opens (or creates) the database at path and makes sure the tables exist.
func Open(ctx context.Context, path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("Open(): failed to open database: %w", err)
	}
	// sqlite는 writer가 하나뿐
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("Open(): failed to connect to database: %w", err)
	}

	for name, stmt := range map[string]string{
		"users":          createUsersTable,
		"revoked_tokens": createRevokedTokensTable,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("Open(): failed to create %s table: %w", name, err)
		}
	}
	log.Info().Str("path", path).Msg("storage.Open(): database ready")
	return &DB{sql: db}, nil
}

func (d *DB) Ping(ctx context.Context) error {
	return d.sql.PingContext(ctx)
}

func (d *DB) Close() error {
	return d.sql.Close()
}
