package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mohamedsham20017/ecommerce-website/internal/domains/users/domain"
	"github.com/mohamedsham20017/ecommerce-website/internal/domains/users/ports"
)

type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := f.users[user.Username]; ok {
		return nil, ports.ErrUsernameTaken
	}
	clone := *user
	f.nextID++
	clone.ID = f.nextID
	f.users[clone.Username] = &clone
	out := clone
	return &out, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := f.users[username]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, ports.ErrNotFound
}

func (f *fakeUserRepo) Delete(_ context.Context, username string) error {
	if _, ok := f.users[username]; !ok {
		return ports.ErrNotFound
	}
	delete(f.users, username)
	return nil
}

type fakeSessionStore struct {
	sessions map[string]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]string{}}
}

func (f *fakeSessionStore) Save(_ context.Context, token, username string) error {
	f.sessions[token] = username
	return nil
}

func (f *fakeSessionStore) GetUsername(_ context.Context, token string) (string, error) {
	if username, ok := f.sessions[token]; ok {
		return username, nil
	}
	return "", ports.ErrSessionNotFound
}

func (f *fakeSessionStore) Delete(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

func (f *fakeSessionStore) DeleteForUser(_ context.Context, username string) error {
	for token, owner := range f.sessions {
		if owner == username {
			delete(f.sessions, token)
		}
	}
	return nil
}

func (f *fakeSessionStore) PurgeExpired(_ context.Context) error { return nil }

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	sessions := newFakeSessionStore()
	svc := NewService(repo, sessions)

	user, err := svc.Register(context.Background(), "alice", "Alice Perera", "alice@example.com", "hunter22")
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	require.NotEmpty(t, user.PasswordHash)
	require.NotEqual(t, "hunter22", user.PasswordHash)

	token, err := svc.Login(context.Background(), "alice", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	ident, err := svc.IdentityForToken(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "alice", ident.Key())
	require.Equal(t, "alice@example.com", ident.Email)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := NewService(newFakeUserRepo(), newFakeSessionStore())

	_, err := svc.Register(context.Background(), "alice", "", "", "hunter22")
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), "alice", "", "", "other-pass")
	require.ErrorIs(t, err, ports.ErrUsernameTaken)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, newFakeSessionStore())

	_, err := svc.Login(context.Background(), "missing", "secret-pass")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)

	_, err = svc.Register(context.Background(), "alice", "", "", "hunter22")
	require.NoError(t, err)
	_, err = svc.Login(context.Background(), "alice", "wrong-pass")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestLogout_InvalidatesSession(t *testing.T) {
	repo := newFakeUserRepo()
	sessions := newFakeSessionStore()
	svc := NewService(repo, sessions)

	_, err := svc.Register(context.Background(), "alice", "", "", "hunter22")
	require.NoError(t, err)
	token, err := svc.Login(context.Background(), "alice", "hunter22")
	require.NoError(t, err)

	svc.Logout(context.Background(), token)
	_, err = svc.IdentityForToken(context.Background(), token)
	require.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestIdentityKeyResolution(t *testing.T) {
	withNickname := domain.Identity{Nickname: "alice", DisplayName: "Alice Perera"}
	require.Equal(t, "alice", withNickname.Key())

	withoutNickname := domain.Identity{DisplayName: "Alice Perera"}
	require.Equal(t, "Alice Perera", withoutNickname.Key())

	require.True(t, domain.Identity{}.IsZero())
}

func TestSessionTokensAreUnique(t *testing.T) {
	repo := newFakeUserRepo()
	sessions := newFakeSessionStore()
	svc := NewService(repo, sessions)

	_, err := svc.Register(context.Background(), "alice", "", "", "hunter22")
	require.NoError(t, err)

	seen := map[string]bool{}
	deadline := time.Now().Add(5 * time.Second)
	for i := 0; i < 5 && time.Now().Before(deadline); i++ {
		token, err := svc.Login(context.Background(), "alice", "hunter22")
		require.NoError(t, err)
		require.False(t, seen[token])
		seen[token] = true
	}
}
