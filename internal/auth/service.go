package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"MedSyncAI/internal/models"
	"MedSyncAI/internal/session"
	"MedSyncAI/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// Service is the credential and profile backend behind every session.Store.
type Service struct {
	db     *storage.DB
	tokens *TokenIssuer
	cost   int
}

var _ session.Backend = (*Service)(nil)

func NewService(db *storage.DB, tokens *TokenIssuer, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{db: db, tokens: tokens, cost: bcryptCost}
}

func (s *Service) SignUp(ctx context.Context, email, password string, fields session.ProfileFields) (models.Identity, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return models.Identity{}, &session.NetworkError{Op: "SignUp", Err: err}
	}

	profile := models.Profile{FullName: fields.FullName, Gender: fields.Gender}
	if fields.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", fields.DateOfBirth)
		if err != nil {
			return models.Identity{}, &session.ValidationError{Field: "DateOfBirth", Message: "date of birth must be a valid date"}
		}
		profile.DateOfBirth = &dob
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        storage.NormalizeEmail(email),
		PasswordHash: string(hashedPassword),
		Profile:      profile,
		CreatedAt:    time.Now(),
	}
	if err := s.db.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrEmailExists) {
			return models.Identity{}, &session.ConflictError{Email: user.Email}
		}
		log.Error().Err(err).Msg("Service.SignUp(): failed to create user (database error)")
		return models.Identity{}, &session.NetworkError{Op: "SignUp", Err: err}
	}

	log.Info().Str("user_id", user.ID).Msg("Service.SignUp(): account created")
	return s.issue(user)
}

func (s *Service) SignIn(ctx context.Context, email, password string) (models.Identity, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return models.Identity{}, &session.AuthError{}
	}

	user, err := s.db.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return models.Identity{}, &session.AuthError{}
		}
		log.Error().Err(err).Msg("Service.SignIn(): GetUserByEmail failed")
		return models.Identity{}, &session.NetworkError{Op: "SignIn", Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.Identity{}, &session.AuthError{}
	}
	return s.issue(user)
}

// SignOut revokes the token so it cannot be resumed. Unparseable tokens are
// ignored; there is nothing to revoke.
func (s *Service) SignOut(ctx context.Context, token string) error {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil
	}
	if err := s.db.RevokeToken(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return &session.NetworkError{Op: "SignOut", Err: err}
	}
	return nil
}

// Resume checks a previously issued token and returns its identity.
func (s *Service) Resume(ctx context.Context, token string) (models.Identity, error) {
	claims, err := s.Authenticate(ctx, token)
	if err != nil {
		return models.Identity{}, err
	}
	return models.Identity{UserID: claims.UserID, Email: claims.Email, Token: token}, nil
}

// Authenticate validates signature, expiry and revocation.
func (s *Service) Authenticate(ctx context.Context, token string) (*Claims, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		if IsExpired(err) {
			return nil, &session.AuthError{Reason: "token has expired"}
		}
		return nil, &session.AuthError{Reason: "invalid token"}
	}
	revoked, err := s.db.IsTokenRevoked(ctx, claims.ID)
	if err != nil {
		return nil, &session.NetworkError{Op: "Authenticate", Err: err}
	}
	if revoked {
		return nil, &session.AuthError{Reason: "token has been revoked"}
	}
	return claims, nil
}

func (s *Service) FetchProfile(ctx context.Context, userID string) (models.Profile, error) {
	user, err := s.db.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return models.Profile{}, &session.AuthError{Reason: "account no longer exists"}
		}
		return models.Profile{}, &session.NetworkError{Op: "FetchProfile", Err: err}
	}
	return user.Profile, nil
}

// PurgeExpiredRevocations is run periodically from main.
func (s *Service) PurgeExpiredRevocations(ctx context.Context) {
	n, err := s.db.PurgeRevokedTokens(ctx, time.Now())
	if err != nil {
		log.Warn().Err(err).Msg("Service.PurgeExpiredRevocations(): failed")
		return
	}
	if n > 0 {
		log.Debug().Int64("purged", n).Msg("Service.PurgeExpiredRevocations(): done")
	}
}

func (s *Service) issue(user models.User) (models.Identity, error) {
	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return models.Identity{}, &session.NetworkError{Op: "issue", Err: err}
	}
	return models.Identity{UserID: user.ID, Email: user.Email, Token: token}, nil
}
