package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/finbuddy/finbuddy/internal/common"
	"github.com/finbuddy/finbuddy/internal/server/auth"
	"github.com/finbuddy/finbuddy/internal/server/config"
	"github.com/finbuddy/finbuddy/internal/server/models"
	"github.com/finbuddy/finbuddy/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// TokenPair bundles the credentials returned by Register and Login.
// ExpiresIn is the access-token TTL in seconds.
type TokenPair struct {
	UserID       string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// AccessToken is the result of a Refresh call. No new refresh token is
// issued; refresh tokens are not rotated in this design.
type AccessToken struct {
	Token     string
	ExpiresIn int64
}

// UserService implements the authentication flows:
// - Register: create an account and mint the first token pair
// - Login: verify credentials and mint tokens
// - Refresh: mint a new access token from a refresh token
// - Logout: no-op (stateless tokens cannot be revoked server-side)
type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	hasher                       *auth.PasswordHasher
	codec                        *auth.TokenCodec
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories, the shared
// token codec, and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, codec *auth.TokenCodec, cfg *config.Config) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		hasher:                       auth.NewPasswordHasher(0),
		codec:                        codec,
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Register creates a new user and returns their first token pair. A taken
// email yields ErrorAlreadyExists. The pre-check keeps the common case
// friendly; the unique index on lower(email) settles concurrent races, so
// the losing insert also comes back as ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, email, password, name string) (*TokenPair, error) {
	repo := s.repomanager.Users(s.db)

	ctx, cancel := withStoreTimeout(ctx)
	defer cancel()

	_, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, storeErr(err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}

	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, storeErr(err)
	}

	return s.generateTokenPair(user)
}

// Login verifies the credentials and returns a fresh token pair. An unknown
// email and a wrong password produce the same ErrInvalidCredentials so the
// response never reveals whether the account exists.
func (s *UserService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	repo := s.repomanager.Users(s.db)

	ctx, cancel := withStoreTimeout(ctx)
	defer cancel()

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, storeErr(err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	return s.generateTokenPair(user)
}

// Refresh validates a refresh token and mints a new access token for the
// same subject. Access tokens presented here fail with ErrInvalidTokenType.
// No store lookup happens: the token alone carries the identity.
func (s *UserService) Refresh(_ context.Context, refreshToken string) (*AccessToken, error) {
	claims, err := s.codec.Decode(refreshToken)
	if err != nil {
		return nil, common.ErrInvalidRefreshToken
	}
	if claims.Kind() != auth.TokenKindRefresh {
		return nil, common.ErrInvalidTokenType
	}

	token, err := s.codec.Issue(claims.Subject, auth.TokenKindAccess, s.accessTokenValidityDuration, "")
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AccessToken{
		Token:     token,
		ExpiresIn: int64(s.accessTokenValidityDuration.Seconds()),
	}, nil
}

// Logout is a no-op: tokens are stateless and expire on their own. Revoking
// them early would require a server-side token store this design does not
// have.
func (s *UserService) Logout(_ context.Context) error {
	return nil
}

// GetUser returns the profile for the given user id.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	ctx, cancel := withStoreTimeout(ctx)
	defer cancel()

	user, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, storeErr(err)
	}
	return user, nil
}

func (s *UserService) generateTokenPair(user *models.User) (*TokenPair, error) {
	accessToken, err := s.codec.Issue(user.ID, auth.TokenKindAccess, s.accessTokenValidityDuration, user.Email)
	if err != nil {
		return nil, common.ErrorInternal
	}

	refreshToken, err := s.codec.Issue(user.ID, auth.TokenKindRefresh, s.refreshTokenValidityDuration, "")
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &TokenPair{
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessTokenValidityDuration.Seconds()),
	}, nil
}
