package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"MedSyncAI/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccount struct {
	id       string
	password string
	profile  models.Profile
}

type fakeBackend struct {
	mu       sync.Mutex
	accounts map[string]fakeAccount
	calls    int
	revoked  []string
	down     bool
	// gate, when set, blocks SignIn until a value is received
	gate chan struct{}
	// resumeGate blocks Resume the same way; resumeStarted is closed on entry
	resumeGate    chan struct{}
	resumeStarted chan struct{}
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{accounts: make(map[string]fakeAccount)}
}

func (f *fakeBackend) SignUp(ctx context.Context, email, password string, fields ProfileFields) (models.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.down {
		return models.Identity{}, &NetworkError{Op: "SignUp", Err: errors.New("connection refused")}
	}
	if _, ok := f.accounts[email]; ok {
		return models.Identity{}, &ConflictError{Email: email}
	}
	id := "user-" + email
	f.accounts[email] = fakeAccount{
		id:       id,
		password: password,
		profile:  models.Profile{FullName: fields.FullName, Email: email, Gender: fields.Gender},
	}
	return models.Identity{UserID: id, Email: email, Token: "token-" + id}, nil
}

func (f *fakeBackend) SignIn(ctx context.Context, email, password string) (models.Identity, error) {
	f.mu.Lock()
	gate := f.gate
	f.calls++
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	acct, ok := f.accounts[email]
	if !ok || acct.password != password {
		return models.Identity{}, &AuthError{}
	}
	return models.Identity{UserID: acct.id, Email: email, Token: "token-" + acct.id}, nil
}

func (f *fakeBackend) SignOut(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked = append(f.revoked, token)
	return nil
}

func (f *fakeBackend) Resume(ctx context.Context, token string) (models.Identity, error) {
	f.mu.Lock()
	gate, started := f.resumeGate, f.resumeStarted
	f.mu.Unlock()
	if started != nil {
		close(started)
	}
	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for email, acct := range f.accounts {
		if token == "token-"+acct.id {
			return models.Identity{UserID: acct.id, Email: email, Token: token}, nil
		}
	}
	return models.Identity{}, &AuthError{Reason: "invalid token"}
}

func (f *fakeBackend) FetchProfile(ctx context.Context, userID string) (models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, acct := range f.accounts {
		if acct.id == userID {
			return acct.profile, nil
		}
	}
	return models.Profile{}, errors.New("no profile")
}

func (f *fakeBackend) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func validSignUp() SignUpInput {
	return SignUpInput{
		Email:           "jane@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		FullName:        "Jane Doe",
		Gender:          "female",
	}
}

func settledStore(t *testing.T, backend Backend) *Store {
	t.Helper()
	s := NewStore(backend)
	s.Restore(context.Background(), "")
	require.Equal(t, StateUnauthenticated, s.Current().State)
	return s
}

func TestNewStoreStartsLoading(t *testing.T) {
	s := NewStore(newFakeBackend())
	assert.Equal(t, StateLoading, s.Current().State)
	assert.Nil(t, s.Current().Session)
}

func TestSignUpShortPassword(t *testing.T) {
	backend := newFakeBackend()
	s := settledStore(t, backend)

	in := validSignUp()
	in.Password, in.ConfirmPassword = "abc", "abc"
	_, err := s.SignUp(context.Background(), in)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "password must be at least 6 characters", vErr.Message)
	assert.Equal(t, StateUnauthenticated, s.Current().State)
	assert.Zero(t, backend.callCount())
}

func TestSignUpPasswordMismatch(t *testing.T) {
	backend := newFakeBackend()
	s := settledStore(t, backend)

	in := validSignUp()
	in.ConfirmPassword = "secret2"
	_, err := s.SignUp(context.Background(), in)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "passwords do not match", vErr.Message)
	assert.Equal(t, StateUnauthenticated, s.Current().State)
	assert.Zero(t, backend.callCount())
}

func TestSignUpValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SignUpInput)
		want   string
	}{
		{"missing gender", func(in *SignUpInput) { in.Gender = "" }, "please select your gender"},
		{"unknown gender", func(in *SignUpInput) { in.Gender = "robot" }, "please select your gender"},
		{"bad email", func(in *SignUpInput) { in.Email = "not-an-email" }, "please enter a valid email address"},
		{"missing name", func(in *SignUpInput) { in.FullName = "   " }, "please enter your full name"},
		{"bad birth date", func(in *SignUpInput) { in.DateOfBirth = "02/04/1990" }, "date of birth must be a valid date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validSignUp()
			tt.mutate(&in)
			err := in.Validate()
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.want, vErr.Message)
		})
	}

	in := validSignUp()
	in.DateOfBirth = "1990-04-02"
	assert.NoError(t, in.Validate())
}

func TestSignUpSuccessNotifies(t *testing.T) {
	s := settledStore(t, newFakeBackend())

	var got []Snapshot
	s.Subscribe(func(snap Snapshot) { got = append(got, snap) })

	sess, err := s.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)
	assert.True(t, sess.IsAuthenticated)
	assert.Equal(t, "jane@example.com", sess.Email)

	snap := s.Current()
	assert.Equal(t, StateAuthenticated, snap.State)
	require.NotNil(t, snap.Profile)
	assert.Equal(t, "Jane Doe", snap.Profile.FullName)
	require.Len(t, got, 1)
	assert.Equal(t, StateAuthenticated, got[0].State)
}

func TestSignUpConflictRevertsState(t *testing.T) {
	backend := newFakeBackend()
	s := settledStore(t, backend)
	_, err := s.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)
	s.SignOut(context.Background())

	_, err = s.SignUp(context.Background(), validSignUp())
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, StateUnauthenticated, s.Current().State)
}

func TestSignInTransitions(t *testing.T) {
	backend := newFakeBackend()
	s := settledStore(t, backend)
	_, err := s.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)
	s.SignOut(context.Background())
	require.Equal(t, StateUnauthenticated, s.Current().State)

	_, err = s.SignIn(context.Background(), "jane@example.com", "wrong-pass")
	var aErr *AuthError
	require.ErrorAs(t, err, &aErr)
	assert.Equal(t, StateUnauthenticated, s.Current().State)

	sess, err := s.SignIn(context.Background(), "jane@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "user-jane@example.com", sess.UserID)

	snap := s.Current()
	assert.Equal(t, StateAuthenticated, snap.State)
	require.NotNil(t, snap.Profile)
	assert.Equal(t, "Jane Doe", snap.Profile.FullName)
	assert.Equal(t, "token-user-jane@example.com", s.Token())
}

func TestSignInEmptyFieldsSkipsBackend(t *testing.T) {
	backend := newFakeBackend()
	s := settledStore(t, backend)

	_, err := s.SignIn(context.Background(), "", "")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Zero(t, backend.callCount())
}

func TestNetworkErrorKeepsStoreUsable(t *testing.T) {
	backend := newFakeBackend()
	s := settledStore(t, backend)

	backend.down = true
	_, err := s.SignUp(context.Background(), validSignUp())
	var nErr *NetworkError
	require.ErrorAs(t, err, &nErr)
	assert.Equal(t, StateUnauthenticated, s.Current().State)

	backend.down = false
	_, err = s.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, s.Current().State)
}

func TestSignOutRevokesToken(t *testing.T) {
	backend := newFakeBackend()
	s := settledStore(t, backend)
	_, err := s.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)

	var states []State
	s.Subscribe(func(snap Snapshot) { states = append(states, snap.State) })
	s.SignOut(context.Background())

	assert.Equal(t, StateUnauthenticated, s.Current().State)
	assert.Nil(t, s.Current().Profile)
	assert.Equal(t, []State{StateUnauthenticated}, states)
	assert.Equal(t, []string{"token-user-jane@example.com"}, backend.revoked)

	// signing out twice is harmless
	s.SignOut(context.Background())
	assert.Len(t, backend.revoked, 1)
}

func TestStaleSignInIgnoredAfterSignOut(t *testing.T) {
	backend := newFakeBackend()
	s := settledStore(t, backend)
	_, err := s.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)
	s.SignOut(context.Background())

	backend.mu.Lock()
	backend.gate = make(chan struct{})
	gate := backend.gate
	backend.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		_, err := s.SignIn(context.Background(), "jane@example.com", "secret1")
		done <- err
	}()

	require.Eventually(t, func() bool { return s.Current().State == StateLoading }, time.Second, time.Millisecond)
	s.SignOut(context.Background())
	close(gate)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrSuperseded)
	case <-time.After(time.Second):
		t.Fatal("sign-in did not return")
	}
	assert.Equal(t, StateUnauthenticated, s.Current().State)
}

func TestRestore(t *testing.T) {
	backend := newFakeBackend()
	first := settledStore(t, backend)
	_, err := first.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)
	token := first.Token()

	reloaded := NewStore(backend)
	assert.Equal(t, StateLoading, reloaded.Current().State)
	reloaded.Restore(context.Background(), token)
	assert.Equal(t, StateAuthenticated, reloaded.Current().State)
	assert.Equal(t, "Jane Doe", reloaded.Current().Profile.FullName)

	bogus := NewStore(backend)
	bogus.Restore(context.Background(), "garbage")
	assert.Equal(t, StateUnauthenticated, bogus.Current().State)
}

// restoringStore returns a fresh store whose Restore is blocked inside
// Resume, plus the func that lets it finish and waits for it.
func restoringStore(t *testing.T, backend *fakeBackend, token string) (*Store, func()) {
	t.Helper()
	backend.mu.Lock()
	backend.resumeGate = make(chan struct{})
	backend.resumeStarted = make(chan struct{})
	gate, started := backend.resumeGate, backend.resumeStarted
	backend.mu.Unlock()

	s := NewStore(backend)
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Restore(context.Background(), token)
	}()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("restore did not reach the backend")
	}
	require.Equal(t, StateLoading, s.Current().State)

	return s, func() {
		close(gate)
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("restore did not return")
		}
	}
}

func TestFailedSignInDuringRestoreSettles(t *testing.T) {
	backend := newFakeBackend()
	first := settledStore(t, backend)
	_, err := first.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)

	s, finishRestore := restoringStore(t, backend, first.Token())

	var states []State
	s.Subscribe(func(snap Snapshot) { states = append(states, snap.State) })

	_, err = s.SignIn(context.Background(), "jane@example.com", "wrong-pass")
	var aErr *AuthError
	require.ErrorAs(t, err, &aErr)
	assert.Equal(t, StateUnauthenticated, s.Current().State)

	finishRestore()
	assert.Equal(t, StateUnauthenticated, s.Current().State)
	assert.Equal(t, []State{StateUnauthenticated}, states)

	_, err = s.SignIn(context.Background(), "jane@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, s.Current().State)
}

func TestFailedSignUpDuringRestoreSettles(t *testing.T) {
	backend := newFakeBackend()
	first := settledStore(t, backend)
	_, err := first.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)

	s, finishRestore := restoringStore(t, backend, first.Token())

	_, err = s.SignUp(context.Background(), validSignUp())
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, StateUnauthenticated, s.Current().State)

	finishRestore()
	assert.Equal(t, StateUnauthenticated, s.Current().State)
}

func TestSignInDuringRestoreWins(t *testing.T) {
	backend := newFakeBackend()
	first := settledStore(t, backend)
	_, err := first.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)

	s, finishRestore := restoringStore(t, backend, "garbage")

	sess, err := s.SignIn(context.Background(), "jane@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "user-jane@example.com", sess.UserID)

	// the late restore answer (an invalid token) must not log the user out
	finishRestore()
	snap := s.Current()
	assert.Equal(t, StateAuthenticated, snap.State)
	require.NotNil(t, snap.Profile)
	assert.Equal(t, "Jane Doe", snap.Profile.FullName)
	assert.Equal(t, "token-user-jane@example.com", s.Token())
}

func TestUnsubscribe(t *testing.T) {
	s := NewStore(newFakeBackend())

	var order []string
	unsubA := s.Subscribe(func(Snapshot) { order = append(order, "a") })
	s.Subscribe(func(Snapshot) { order = append(order, "b") })

	s.Restore(context.Background(), "")
	assert.Equal(t, []string{"a", "b"}, order)

	unsubA()
	s.SignOut(context.Background())
	assert.Equal(t, []string{"a", "b", "b"}, order)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "passwords do not match", UserMessage(&ValidationError{Message: "passwords do not match"}))
	assert.Equal(t, "invalid email or password", UserMessage(&AuthError{}))
	assert.Equal(t, "an account with this email already exists", UserMessage(&ConflictError{}))
	assert.Contains(t, UserMessage(&NetworkError{Op: "x", Err: errors.New("down")}), "couldn't reach")
	assert.Contains(t, UserMessage(ErrSuperseded), "cancelled")
}
