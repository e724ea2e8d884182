package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/precify/pricing-api/internal/core/domain"
)

func newUserService(repo *stubUserRepo) *UserService {
	return NewUserService(repo, NewPasswordHasher(), zerolog.Nop())
}

func TestUserService_Create_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	user, err := svc.Create(context.Background(), "bob", "pw", domain.RoleManager)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected store-assigned id")
	}
	if user.PasswordHash == "pw" {
		t.Fatalf("password must be hashed before insert")
	}
	if !NewPasswordHasher().Verify("pw", user.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
	if user.Role != domain.RoleManager {
		t.Fatalf("unexpected role %q", user.Role)
	}
}

func TestUserService_Create_MissingFields(t *testing.T) {
	svc := newUserService(newStubUserRepo())

	cases := [][3]string{
		{"", "pw", "admin"},
		{"bob", "", "admin"},
		{"bob", "pw", ""},
	}
	for _, c := range cases {
		if _, err := svc.Create(context.Background(), c[0], c[1], c[2]); !errors.Is(err, domain.ErrMissingFields) {
			t.Fatalf("args %v: expected ErrMissingFields, got %v", c, err)
		}
	}
}

func TestUserService_Create_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	if _, err := svc.Create(context.Background(), "bob", "pw", "gestor"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(context.Background(), "bob", "pw2", "admin"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("duplicate insert must leave the store unchanged, have %d users", len(repo.users))
	}
}

func TestUserService_Create_OpenRoleSet(t *testing.T) {
	svc := newUserService(newStubUserRepo())

	user, err := svc.Create(context.Background(), "eve", "pw", "auditor")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.Role != "auditor" {
		t.Fatalf("role is an open set, got %q", user.Role)
	}
}

func TestUserService_Delete_Self(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)
	admin := seedUser(t, repo, "root", "pw", domain.RoleAdmin)

	if err := svc.Delete(context.Background(), admin.ID, admin.ID); !errors.Is(err, domain.ErrSelfDelete) {
		t.Fatalf("expected ErrSelfDelete, got %v", err)
	}
	if repo.deletes != 0 {
		t.Fatalf("self-delete must be rejected before the store is touched")
	}
	if len(repo.users) != 1 {
		t.Fatalf("record was removed")
	}
}

func TestUserService_Delete_Other(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)
	admin := seedUser(t, repo, "root", "pw", domain.RoleAdmin)
	victim := seedUser(t, repo, "bob", "pw", domain.RoleManager)

	if err := svc.Delete(context.Background(), admin.ID, victim.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := repo.users["bob"]; ok {
		t.Fatalf("target not removed")
	}
}

func TestUserService_List_OrderedByUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)
	seedUser(t, repo, "zoe", "pw", "gestor")
	seedUser(t, repo, "adam", "pw", "admin")

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 2 || users[0].Username != "adam" || users[1].Username != "zoe" {
		t.Fatalf("expected username order [adam zoe], got %+v", users)
	}
}
