package application

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/mohamedsham20017/ecommerce-website/internal/domains/users/domain"
	"github.com/mohamedsham20017/ecommerce-website/internal/domains/users/ports"
)

// Service exposes the users bounded context use cases: registration,
// session-backed login, and identity resolution for the auth middleware.
type Service struct {
	repo     ports.Repository
	sessions ports.SessionStore
}

func NewService(repo ports.Repository, sessions ports.SessionStore) *Service {
	return &Service{repo: repo, sessions: sessions}
}

func (s *Service) Register(ctx context.Context, username, displayName, email, password string) (*domain.User, error) {
	user, err := domain.NewUser(username, displayName, email, password)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByUsername(ctx, user.Username); err == nil {
		return nil, ports.ErrUsernameTaken
	} else if !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	}
	return s.repo.Create(ctx, user)
}

func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return "", ports.ErrInvalidCredentials
	}
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return "", ports.ErrInvalidCredentials
		}
		return "", err
	}
	if !user.CheckPassword(password) {
		return "", ports.ErrInvalidCredentials
	}
	token, err := newSessionToken()
	if err != nil {
		return "", err
	}
	if err := s.sessions.Save(ctx, token, user.Username); err != nil {
		return "", err
	}
	return token, nil
}

func (s *Service) Logout(ctx context.Context, token string) {
	if strings.TrimSpace(token) == "" {
		return
	}
	_ = s.sessions.Delete(ctx, token)
}

// IdentityForToken resolves a session token to the normalized identity.
// This is the single point where identity is captured for a request.
func (s *Service) IdentityForToken(ctx context.Context, token string) (domain.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Identity{}, ports.ErrSessionNotFound
	}
	username, err := s.sessions.GetUsername(ctx, token)
	if err != nil {
		return domain.Identity{}, err
	}
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			// Account deleted while the session lived on.
			return domain.Identity{}, ports.ErrSessionNotFound
		}
		return domain.Identity{}, err
	}
	return user.Identity(), nil
}

func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

var _ ports.Service = (*Service)(nil)
