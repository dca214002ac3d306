// Package auth owns user accounts and session tokens. A session is a
// signed JWT carrying the user's email; logout revokes the token id until
// the token would have expired anyway.
package auth

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"portfoliokollen/internal/model"
	"portfoliokollen/pkg/util"
)

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionRevoked     = errors.New("session has been revoked")
)

// UserStore is the slice of the domain store the auth service needs.
type UserStore interface {
	CreateUser(ctx context.Context, u *model.User) error
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
}

type Service struct {
	users     UserStore
	blacklist Blacklist
	jwtSecret string
	logger    *zap.Logger
}

func NewService(users UserStore, blacklist Blacklist, jwtSecret string, logger *zap.Logger) *Service {
	return &Service{
		users:     users,
		blacklist: blacklist,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// Register creates a new user account.
func (s *Service) Register(ctx context.Context, email, password string) (*model.User, error) {
	existing, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.String("email", email))
	return u, nil
}

// Login checks credentials and returns a session token.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil || !util.CheckPassword(password, u.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(u.ID, u.Email, s.jwtSecret)
	if err != nil {
		return "", err
	}

	s.logger.Info("User logged in", zap.String("email", email))
	return token, nil
}

// Logout revokes the session token until its natural expiry.
func (s *Service) Logout(ctx context.Context, tokenStr string) error {
	claims, err := util.ParseJWT(tokenStr, s.jwtSecret)
	if err != nil {
		return err
	}

	until := claims.ExpiresAt
	if until.IsZero() {
		until = time.Now().Add(24 * time.Hour)
	}
	if err := s.blacklist.Revoke(ctx, claims.TokenID, until); err != nil {
		return err
	}

	s.logger.Info("Session revoked", zap.String("email", claims.Email))
	return nil
}

// Verify parses a session token and rejects revoked sessions. Middleware
// calls this on every protected request.
func (s *Service) Verify(ctx context.Context, tokenStr string) (*util.SessionClaims, error) {
	claims, err := util.ParseJWT(tokenStr, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	revoked, err := s.blacklist.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrSessionRevoked
	}
	return claims, nil
}
