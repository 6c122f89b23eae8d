package mappers

import (
	"fibernet/internal/domain/user"
	"fibernet/internal/infrastructure/persistence/models"
	"fibernet/internal/shared/authorization"
)

type UserMapper struct{}

func NewUserMapper() UserMapper {
	return UserMapper{}
}

func (UserMapper) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		LastLogin:    u.LastLogin(),
		CreatedAt:    u.CreatedAt(),
	}
}

func (UserMapper) ToDomain(m *models.UserModel) *user.User {
	return user.ReconstructUser(
		m.ID,
		m.Username,
		m.PasswordHash,
		authorization.UserRole(m.Role),
		m.LastLogin,
		m.CreatedAt,
	)
}
