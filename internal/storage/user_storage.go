package storage

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"MedSyncAI/internal/models"

	"modernc.org/sqlite"
)

var (
	ErrEmailExists  = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")
)

// SQLITE_CONSTRAINT_UNIQUE
const sqliteConstraintUnique = 2067

const dateLayout = "2006-01-02"

// NormalizeEmail is the lookup key for accounts.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (d *DB) CreateUser(ctx context.Context, user models.User) error {
	stmt, err := d.sql.PrepareContext(ctx, `INSERT INTO users(id, email, password_hash, full_name, gender, date_of_birth, created_at) VALUES(?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	var dob sql.NullString
	if user.Profile.DateOfBirth != nil {
		dob = sql.NullString{String: user.Profile.DateOfBirth.Format(dateLayout), Valid: true}
	}

	_, err = stmt.ExecContext(ctx,
		user.ID,
		NormalizeEmail(user.Email),
		user.PasswordHash,
		user.Profile.FullName,
		string(user.Profile.Gender),
		dob,
		user.CreatedAt.Unix(),
	)
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqliteConstraintUnique {
			return ErrEmailExists
		}
		return err
	}
	return nil
}

func (d *DB) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	row := d.sql.QueryRowContext(ctx, `SELECT id, email, password_hash, full_name, gender, date_of_birth, created_at FROM users WHERE email = ?`, NormalizeEmail(email))
	return scanUser(row)
}

func (d *DB) GetUserByID(ctx context.Context, id string) (models.User, error) {
	row := d.sql.QueryRowContext(ctx, `SELECT id, email, password_hash, full_name, gender, date_of_birth, created_at FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	var gender string
	var dob sql.NullString
	var createdAt int64

	if err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Profile.FullName,
		&gender,
		&dob,
		&createdAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user, ErrUserNotFound
		}
		return user, err
	}

	user.CreatedAt = time.Unix(createdAt, 0).UTC()
	user.Profile.Email = user.Email
	user.Profile.Gender = models.Gender(gender)
	if dob.Valid && dob.String != "" {
		parsed, err := time.Parse(dateLayout, dob.String)
		if err == nil {
			user.Profile.DateOfBirth = &parsed
		}
	}
	return user, nil
}
