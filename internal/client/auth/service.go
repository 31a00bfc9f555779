// Package auth manages the client session: login against the backend,
// durable token storage, and expiry inspection without verifying the
// signature (only the server holds the secret).
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	httpClient "github.com/iudanet/leadsync/internal/client/api"
	"github.com/iudanet/leadsync/internal/client/storage"
)

// ErrNotAuthenticated is returned when no session token is stored
var ErrNotAuthenticated = errors.New("not authenticated")

// Session describes the stored session for display purposes
type Session struct {
	Username  string
	ExpiresAt time.Time
}

// Service handles login, logout and token lookups
type Service struct {
	apiClient httpClient.ClientAPI
	store     storage.AuthStorage
}

// NewService creates the auth service
func NewService(apiClient httpClient.ClientAPI, store storage.AuthStorage) *Service {
	return &Service{
		apiClient: apiClient,
		store:     store,
	}
}

// Login authenticates against the backend and stores the issued token
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	token, err := s.apiClient.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveToken(ctx, token.AccessToken); err != nil {
		return nil, fmt.Errorf("failed to save token: %w", err)
	}

	return sessionFromToken(token.AccessToken)
}

// Logout removes the stored token
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.DeleteToken(ctx); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}

// Token returns the stored access token, or ErrNotAuthenticated
func (s *Service) Token(ctx context.Context) (string, error) {
	token, err := s.store.GetToken(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			return "", ErrNotAuthenticated
		}
		return "", err
	}
	return token, nil
}

// CurrentSession returns the stored session, or ErrNotAuthenticated
func (s *Service) CurrentSession(ctx context.Context) (*Session, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return nil, err
	}
	return sessionFromToken(token)
}

// IsAuthenticated reports whether a token is stored and unexpired
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	session, err := s.CurrentSession(ctx)
	if err != nil {
		if errors.Is(err, ErrNotAuthenticated) {
			return false, nil
		}
		return false, err
	}
	return time.Now().Before(session.ExpiresAt), nil
}

// sessionFromToken reads the claims without verifying the signature. The
// client cannot verify anyway; the server re-checks on every request.
func sessionFromToken(token string) (*Session, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	session := &Session{}
	if sub, err := claims.GetSubject(); err == nil {
		session.Username = sub
	}
	if username, ok := claims["username"].(string); ok {
		session.Username = username
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		session.ExpiresAt = exp.Time
	}

	return session, nil
}
