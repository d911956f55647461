package domain

import "time"

const (
	RoleAdmin  = "Administrador"
	RoleClient = "Cliente"
)

// ValidRole reports whether role is one of the enumerated roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleClient
}

// User models an authenticated actor in the system. The password is stored
// only as a bcrypt hash and is never serialized.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         string    `json:"role" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u User) RecordID() uint { return u.ID }

// Identity is the decoded token identity injected by the auth middleware.
type Identity struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
