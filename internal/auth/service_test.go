package auth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"MedSyncAI/internal/models"
	"MedSyncAI/internal/session"
	"MedSyncAI/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewService(db, NewTokenIssuer([]byte("test-secret"), time.Hour), bcrypt.MinCost)
}

var janeFields = session.ProfileFields{FullName: "Jane Doe", Gender: models.GenderFemale, DateOfBirth: "1990-04-02"}

func TestServiceSignUpAndSignIn(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.SignUp(ctx, "Jane@Example.com", "secret1", janeFields)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", created.Email)
	assert.NotEmpty(t, created.Token)

	signedIn, err := svc.SignIn(ctx, "jane@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, signedIn.UserID)

	profile, err := svc.FetchProfile(ctx, signedIn.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.FullName)
	assert.Equal(t, "jane@example.com", profile.Email)
	require.NotNil(t, profile.DateOfBirth)
}

func TestServiceSignUpConflict(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "jane@example.com", "secret1", janeFields)
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, "jane@example.com", "other12", janeFields)
	var cErr *session.ConflictError
	assert.ErrorAs(t, err, &cErr)
}

func TestServiceSignInBadCredentials(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	_, err := svc.SignUp(ctx, "jane@example.com", "secret1", janeFields)
	require.NoError(t, err)

	for _, tc := range []struct{ email, password string }{
		{"jane@example.com", "wrong"},
		{"nobody@example.com", "secret1"},
		{"", ""},
	} {
		_, err := svc.SignIn(ctx, tc.email, tc.password)
		var aErr *session.AuthError
		assert.ErrorAs(t, err, &aErr, "email=%q", tc.email)
	}
}

func TestServiceSignOutRevokes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id, err := svc.SignUp(ctx, "jane@example.com", "secret1", janeFields)
	require.NoError(t, err)

	resumed, err := svc.Resume(ctx, id.Token)
	require.NoError(t, err)
	assert.Equal(t, id.UserID, resumed.UserID)

	require.NoError(t, svc.SignOut(ctx, id.Token))
	_, err = svc.Resume(ctx, id.Token)
	var aErr *session.AuthError
	require.ErrorAs(t, err, &aErr)
	assert.Equal(t, "token has been revoked", aErr.Reason)

	// garbage tokens are a no-op
	assert.NoError(t, svc.SignOut(ctx, "garbage"))
}

func TestServiceRejectsExpiredToken(t *testing.T) {
	svc := newTestService(t)
	svc.tokens.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.tokens.Generate("u1", "jane@example.com")
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), token)
	var aErr *session.AuthError
	require.ErrorAs(t, err, &aErr)
	assert.Equal(t, "token has expired", aErr.Reason)
}

func TestTokenIssuerRejectsOtherKey(t *testing.T) {
	a := NewTokenIssuer([]byte("key-a"), time.Hour)
	b := NewTokenIssuer([]byte("key-b"), time.Hour)

	token, err := a.Generate("u1", "jane@example.com")
	require.NoError(t, err)

	claims, err := a.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "u1", claims.Subject)
	assert.NotEmpty(t, claims.ID)

	_, err = b.Validate(token)
	assert.Error(t, err)
}

func TestFetchProfileMissingUser(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.FetchProfile(context.Background(), "ghost")
	var aErr *session.AuthError
	assert.ErrorAs(t, err, &aErr)
}

func TestSessionStoreOverService(t *testing.T) {
	svc := newTestService(t)
	store := session.NewStore(svc)
	store.Restore(context.Background(), "")

	_, err := store.SignUp(context.Background(), session.SignUpInput{
		Email:           "jane@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		FullName:        "Jane Doe",
		Gender:          "female",
	})
	require.NoError(t, err)
	store.SignOut(context.Background())

	_, err = store.SignIn(context.Background(), "jane@example.com", "secret1")
	require.NoError(t, err)
	snap := store.Current()
	assert.Equal(t, session.StateAuthenticated, snap.State)
	require.NotNil(t, snap.Profile)
	assert.Equal(t, "Jane Doe", snap.Profile.FullName)
}
