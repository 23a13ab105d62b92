package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"MedSyncAI/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testUser(id, email string) models.User {
	dob := time.Date(1990, 4, 2, 0, 0, 0, 0, time.UTC)
	return models.User{
		ID:           id,
		Email:        email,
		PasswordHash: "hash",
		Profile: models.Profile{
			FullName:    "Jane Doe",
			Gender:      models.GenderFemale,
			DateOfBirth: &dob,
		},
		CreatedAt: time.Unix(1700000000, 0),
	}
}

func TestCreateAndGetUser(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.CreateUser(ctx, testUser("u1", " Jane@Example.com ")))

	user, err := db.GetUserByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, "jane@example.com", user.Profile.Email)
	assert.Equal(t, models.GenderFemale, user.Profile.Gender)
	require.NotNil(t, user.Profile.DateOfBirth)
	assert.Equal(t, "1990-04-02", user.Profile.DateOfBirth.Format("2006-01-02"))
	assert.Equal(t, int64(1700000000), user.CreatedAt.Unix())

	byID, err := db.GetUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, user, byID)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.CreateUser(ctx, testUser("u1", "jane@example.com")))
	err := db.CreateUser(ctx, testUser("u2", "JANE@example.com"))
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestGetUserNotFound(t *testing.T) {
	db := openTestDB(t)

	_, err := db.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserWithoutDateOfBirth(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	u := testUser("u1", "sam@example.com")
	u.Profile.DateOfBirth = nil
	require.NoError(t, db.CreateUser(ctx, u))

	got, err := db.GetUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, got.Profile.DateOfBirth)
}

func TestRevokedTokens(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	now := time.Now()

	revoked, err := db.IsTokenRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, db.RevokeToken(ctx, "jti-1", now.Add(time.Hour)))
	require.NoError(t, db.RevokeToken(ctx, "jti-1", now.Add(time.Hour)))
	require.NoError(t, db.RevokeToken(ctx, "jti-old", now.Add(-time.Hour)))

	revoked, err = db.IsTokenRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	n, err := db.PurgeRevokedTokens(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	revoked, err = db.IsTokenRevoked(ctx, "jti-old")
	require.NoError(t, err)
	assert.False(t, revoked)
}
