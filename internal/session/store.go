package session

import (
	"context"
	"sync"

	"MedSyncAI/internal/models"

	"github.com/rs/zerolog/log"
)

type State int

const (
	StateLoading State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	}
	return "unknown"
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Snapshot is a consistent read of the store. Session and Profile are only
// set when State is StateAuthenticated.
type Snapshot struct {
	State   State           `json:"state"`
	Session *models.Session `json:"session,omitempty"`
	Profile *models.Profile `json:"profile,omitempty"`
}

func (s Snapshot) Authenticated() bool {
	return s.State == StateAuthenticated
}

// Backend is the remote auth/profile service the store talks to.
type Backend interface {
	SignUp(ctx context.Context, email, password string, fields ProfileFields) (models.Identity, error)
	SignIn(ctx context.Context, email, password string) (models.Identity, error)
	SignOut(ctx context.Context, token string) error
	Resume(ctx context.Context, token string) (models.Identity, error)
	FetchProfile(ctx context.Context, userID string) (models.Profile, error)
}

// Store holds "who is logged in" for one browsing session.
//
// Every backend round trip is tagged with a sequence number taken under the
// lock. When the result comes back it is applied only if no other operation
// has started since; otherwise it is dropped and the caller gets ErrSuperseded.
// A failed call puts back the state it found, except that a call which
// superseded a pending restore settles to StateUnauthenticated.
type Store struct {
	backend Backend

	mu      sync.Mutex
	state   State
	session *models.Session
	profile *models.Profile
	token   string
	seq     uint64

	subMu   sync.Mutex
	subs    map[uint64]func(Snapshot)
	nextSub uint64
	// 알림 순서를 고정하기 위한 구독 순서
	subOrder []uint64
}

// NewStore returns a store in StateLoading; call Restore (or one of the
// sign-in operations) to settle it.
func NewStore(backend Backend) *Store {
	return &Store{
		backend: backend,
		state:   StateLoading,
		subs:    make(map[uint64]func(Snapshot)),
	}
}

func (s *Store) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Token is the backend access token of the current session, if any.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Subscribe registers fn for every settled state change. The returned func
// removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subOrder = append(s.subOrder, id)
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
		for i, sid := range s.subOrder {
			if sid == id {
				s.subOrder = append(s.subOrder[:i:i], s.subOrder[i+1:]...)
				break
			}
		}
	}
}

func (s *Store) SignUp(ctx context.Context, in SignUpInput) (models.Session, error) {
	if err := in.Validate(); err != nil {
		return models.Session{}, err
	}
	email, password, fields := in.Email, in.Password, in.profileFields()
	return s.authenticate(ctx, "SignUp", func(ctx context.Context) (models.Identity, error) {
		return s.backend.SignUp(ctx, email, password, fields)
	})
}

func (s *Store) SignIn(ctx context.Context, email, password string) (models.Session, error) {
	if email == "" || password == "" {
		return models.Session{}, &ValidationError{Field: "Email", Message: "please enter your email and password"}
	}
	return s.authenticate(ctx, "SignIn", func(ctx context.Context) (models.Identity, error) {
		return s.backend.SignIn(ctx, email, password)
	})
}

// SignOut always leaves the store unauthenticated. It also invalidates any
// in-flight sign-in so a late answer cannot log the user back in.
func (s *Store) SignOut(ctx context.Context) {
	s.mu.Lock()
	s.seq++
	token := s.token
	s.setUnauthenticatedLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)

	if token == "" {
		return
	}
	if err := s.backend.SignOut(ctx, token); err != nil {
		log.Warn().Err(err).Msg("Store.SignOut(): backend sign-out failed")
	}
}

// Restore settles the initial Loading state from a persisted access token.
// An empty, expired or revoked token leaves the store unauthenticated.
func (s *Store) Restore(ctx context.Context, token string) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.state = StateLoading
	s.mu.Unlock()

	if token == "" {
		s.settle(seq, nil, nil, "")
		return
	}

	identity, err := s.backend.Resume(ctx, token)
	if err != nil {
		log.Debug().Err(err).Msg("Store.Restore(): token not resumable")
		s.settle(seq, nil, nil, "")
		return
	}
	profile, err := s.backend.FetchProfile(ctx, identity.UserID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", identity.UserID).Msg("Store.Restore(): profile fetch failed")
		s.settle(seq, nil, nil, "")
		return
	}
	s.settle(seq, &identity, &profile, token)
}

func (s *Store) authenticate(ctx context.Context, op string, call func(context.Context) (models.Identity, error)) (models.Session, error) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	prev := s.saveLocked()
	s.state = StateLoading
	s.mu.Unlock()

	identity, err := call(ctx)
	if err == nil {
		var profile models.Profile
		profile, err = s.backend.FetchProfile(ctx, identity.UserID)
		if err == nil {
			if !s.settle(seq, &identity, &profile, identity.Token) {
				return models.Session{}, ErrSuperseded
			}
			return models.Session{UserID: identity.UserID, Email: identity.Email, IsAuthenticated: true}, nil
		}
	}

	s.mu.Lock()
	if s.seq != seq {
		s.mu.Unlock()
		return models.Session{}, ErrSuperseded
	}
	if prev.state == StateLoading {
		// the restore this call superseded will never settle the store
		s.setUnauthenticatedLocked()
	} else {
		s.restoreLocked(prev)
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	log.Debug().Err(err).Str("op", op).Msg("Store.authenticate(): reverted to previous state")
	s.notify(snap)
	return models.Session{}, err
}

// settle applies a backend result if seq is still current. A nil identity
// settles to unauthenticated.
func (s *Store) settle(seq uint64, identity *models.Identity, profile *models.Profile, token string) bool {
	s.mu.Lock()
	if s.seq != seq {
		s.mu.Unlock()
		return false
	}
	if identity == nil {
		s.setUnauthenticatedLocked()
	} else {
		s.state = StateAuthenticated
		s.session = &models.Session{UserID: identity.UserID, Email: identity.Email, IsAuthenticated: true}
		s.profile = profile
		s.token = token
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return true
}

func (s *Store) notify(snap Snapshot) {
	s.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subOrder))
	for _, id := range s.subOrder {
		fns = append(fns, s.subs[id])
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

type savedState struct {
	state   State
	session *models.Session
	profile *models.Profile
	token   string
}

func (s *Store) saveLocked() savedState {
	return savedState{state: s.state, session: s.session, profile: s.profile, token: s.token}
}

func (s *Store) restoreLocked(saved savedState) {
	s.state = saved.state
	s.session = saved.session
	s.profile = saved.profile
	s.token = saved.token
}

func (s *Store) setUnauthenticatedLocked() {
	s.state = StateUnauthenticated
	s.session = nil
	s.profile = nil
	s.token = ""
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{State: s.state}
	if s.state == StateAuthenticated {
		sess := *s.session
		snap.Session = &sess
		if s.profile != nil {
			profile := *s.profile
			snap.Profile = &profile
		}
	}
	return snap
}
