package domain

import (
	"context"
	"time"
)

const (
	RoleCandidate = "candidate"
	RoleAdmin     = "admin"
	RoleRecruiter = "recruiter"
)

type User struct {
	ID           string    `json:"id"`
	UserName     string    `json:"user_name"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsBlocked    bool      `json:"is_blocked"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}

type AuthUsecase interface {
	Signup(ctx context.Context, user *User, password string) (*User, error)
	SignIn(ctx context.Context, email, password string) (*User, string, error)
	CurrentUser(ctx context.Context) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
}
