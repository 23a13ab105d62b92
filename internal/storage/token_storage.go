package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// RevokeToken remembers a signed-out token id until it would have expired anyway.
func (d *DB) RevokeToken(ctx context.Context, jti string, expiresAt time.Time) error {
	_, err := d.sql.ExecContext(ctx, `INSERT OR IGNORE INTO revoked_tokens(jti, expires_at) VALUES(?, ?)`, jti, expiresAt.Unix())
	return err
}

func (d *DB) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	var found string
	err := d.sql.QueryRowContext(ctx, `SELECT jti FROM revoked_tokens WHERE jti = ?`, jti).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// PurgeRevokedTokens drops revocations whose tokens are past expiry.
func (d *DB) PurgeRevokedTokens(ctx context.Context, now time.Time) (int64, error) {
	res, err := d.sql.ExecContext(ctx, `DELETE FROM revoked_tokens WHERE expires_at < ?`, now.Unix())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
