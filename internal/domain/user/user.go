// Package user models login accounts and their roles.
package user

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"fibernet/internal/shared/authorization"
	"fibernet/internal/shared/biztime"
	"fibernet/internal/shared/errors"
)

type User struct {
	id           uint
	username     string
	passwordHash string
	role         authorization.UserRole
	lastLogin    *time.Time
	createdAt    time.Time
}

// NewUser creates an account with a bcrypt-hashed password.
func NewUser(username, password string, role authorization.UserRole, bcryptCost int) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.NewValidationError("username is required")
	}
	if len(password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}
	if !role.IsValid() {
		return nil, errors.NewValidationError("invalid role: " + role.String())
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password", err)
	}

	return &User{
		username:     username,
		passwordHash: string(hash),
		role:         role,
		createdAt:    biztime.Now(),
	}, nil
}

func ReconstructUser(id uint, username, passwordHash string, role authorization.UserRole, lastLogin *time.Time, createdAt time.Time) *User {
	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
	}
}

func (u *User) ID() uint                     { return u.id }
func (u *User) Username() string             { return u.username }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) LastLogin() *time.Time        { return u.lastLogin }
func (u *User) CreatedAt() time.Time         { return u.createdAt }

func (u *User) SetID(id uint) {
	u.id = id
}

// VerifyPassword checks a candidate password against the stored hash.
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)) == nil
}

func (u *User) RecordLogin() {
	now := biztime.Now()
	u.lastLogin = &now
}
