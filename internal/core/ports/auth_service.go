package ports

import (
	"context"

	"github.com/pagoservicios/payments-api/internal/core/domain"
)

// UpdateUserInput carries the editable fields of a user account. Password is
// optional: when empty the stored hash is kept.
type UpdateUserInput struct {
	ID       uint
	Username string
	Role     string
	Password string
}

// AuthService covers credential verification, token issuance and the
// administrative user operations.
type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, id uint, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id uint) error
}
