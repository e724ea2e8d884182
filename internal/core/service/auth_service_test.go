package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/precify/pricing-api/internal/core/domain"
)

// stubUserRepo is an in-memory UserRepository shared by the service tests.
type stubUserRepo struct {
	users   map[string]*domain.User
	deletes int
	failErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	if r.failErr != nil {
		return 0, r.failErr
	}
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	created := cloneUser(user)
	created.ID = "id-" + user.Username
	r.users[created.Username] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if r.failErr != nil {
		return r.failErr
	}
	for username, u := range r.users {
		if u.ID == id {
			delete(r.users, username)
			break
		}
	}
	r.deletes++
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func newAuthFixture(repo *stubUserRepo) (*AuthService, *TokenService) {
	hasher := NewPasswordHasher()
	tokens := NewTokenService("test-secret", time.Hour)
	return NewAuthService(repo, hasher, tokens, zerolog.Nop()), tokens
}

func seedUser(t *testing.T, repo *stubUserRepo, username, password, role string) *domain.User {
	t.Helper()
	hash, err := NewPasswordHasher().Hash(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	created, err := repo.Insert(context.Background(), &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return created
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	stored := seedUser(t, repo, "carol", "s3cret", domain.RoleAdmin)
	svc, tokens := newAuthFixture(repo)

	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if user.PasswordHash == "" {
		t.Fatalf("service should return the stored record unchanged")
	}

	identity, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	want := domain.Identity{ID: stored.ID, Username: "carol", Role: domain.RoleAdmin}
	if identity != want {
		t.Fatalf("token identity %+v, want %+v", identity, want)
	}
}

func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "dave", "goodpass", domain.RoleManager)
	svc, _ := newAuthFixture(repo)

	_, _, unknownErr := svc.Login(context.Background(), "ghost", "whatever")
	_, _, wrongPassErr := svc.Login(context.Background(), "dave", "badpass")

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongPassErr, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassErr)
	}
	if unknownErr.Error() != wrongPassErr.Error() {
		t.Fatalf("failure messages differ: %q vs %q", unknownErr, wrongPassErr)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc, _ := newAuthFixture(newStubUserRepo())

	if _, _, err := svc.Login(context.Background(), "", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "user", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	repo := newStubUserRepo()
	repo.failErr = errors.New("connection reset")
	svc, _ := newAuthFixture(repo)

	_, _, err := svc.Login(context.Background(), "carol", "s3cret")
	if err == nil {
		t.Fatalf("expected error")
	}
	if errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("store failure must not masquerade as bad credentials")
	}
}
