package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pagoservicios/payments-api/internal/core/domain"
	"github.com/pagoservicios/payments-api/internal/core/ports"
)

type stubUserRepo struct {
	users   map[string]*domain.User
	nextID  uint
	updates int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	created := cloneUser(user)
	created.ID = r.nextID
	r.nextID++
	r.users[created.Username] = cloneUser(created)
	return cloneUser(created), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	r.updates++
	for name, u := range r.users {
		if u.ID == user.ID {
			delete(r.users, name)
			r.users[user.Username] = cloneUser(user)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *stubUserRepo) Delete(_ context.Context, id uint) error {
	for name, u := range r.users {
		if u.ID == id {
			delete(r.users, name)
			return nil
		}
	}
	return domain.ErrNotFound
}

func newAuthService(repo ports.UserRepository) *AuthService {
	return NewAuthService(repo, "secret", time.Hour, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register(context.Background(), "ana", "secret123", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil {
		t.Fatalf("expected user, got nil")
	}
	if user.PasswordHash == "secret123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), "", "pass", domain.RoleClient); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if _, err := svc.Register(context.Background(), "bob", "pass", "SuperUser"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad role, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_, _ = svc.Register(context.Background(), "bob", "pass", domain.RoleClient)
	if _, err := svc.Register(context.Background(), "bob", "pass2", domain.RoleClient); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), "ana", "secret123", domain.RoleAdmin); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "ana", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %v", domain.RoleAdmin, claims["role"])
	}
	if claims["username"] != "ana" {
		t.Fatalf("expected username claim, got %v", claims["username"])
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		t.Fatalf("expected exp claim: %v", err)
	}
	if remaining := time.Until(exp.Time); remaining < 55*time.Minute || remaining > time.Hour {
		t.Fatalf("unexpected expiry window: %v", remaining)
	}
}

// A wrong password and an unknown username must produce the same error.
func TestAuthService_Login_NoCredentialLeak(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_, _ = svc.Register(context.Background(), "dave", "goodpass", domain.RoleClient)

	_, badPass := svc.Login(context.Background(), "dave", "badpass")
	_, unknown := svc.Login(context.Background(), "ghost", "whatever")

	if !errors.Is(badPass, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", badPass)
	}
	if !errors.Is(unknown, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", unknown)
	}
}

func TestAuthService_ListUsers_Empty(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.ListUsers(context.Background()); !errors.Is(err, domain.ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
}

func TestAuthService_UpdateUser_IDMismatch(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_, _ = svc.Register(context.Background(), "carol", "pass", domain.RoleClient)

	_, err := svc.UpdateUser(context.Background(), 1, ports.UpdateUserInput{ID: 2, Username: "carol", Role: domain.RoleClient})
	if !errors.Is(err, domain.ErrIDMismatch) {
		t.Fatalf("expected ErrIDMismatch, got %v", err)
	}
	if repo.updates != 0 {
		t.Fatalf("expected no write, got %d updates", repo.updates)
	}
}

func TestAuthService_UpdateUser_KeepsPasswordWhenEmpty(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	created, _ := svc.Register(context.Background(), "carol", "original", domain.RoleClient)

	updated, err := svc.UpdateUser(context.Background(), created.ID, ports.UpdateUserInput{
		ID:       created.ID,
		Username: "carol",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Fatalf("expected role change, got %s", updated.Role)
	}
	if bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("original")) != nil {
		t.Fatalf("password hash should be unchanged")
	}
}

func TestAuthService_UpdateUser_RehashesNewPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	created, _ := svc.Register(context.Background(), "carol", "original", domain.RoleClient)

	updated, err := svc.UpdateUser(context.Background(), created.ID, ports.UpdateUserInput{
		ID:       created.ID,
		Username: "carol",
		Role:     domain.RoleClient,
		Password: "changed",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("changed")) != nil {
		t.Fatalf("expected hash of the new password")
	}
}

func TestAuthService_DeleteUser_NotFound(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if err := svc.DeleteUser(context.Background(), 42); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
