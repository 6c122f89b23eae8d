package models

import "time"

type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Username     string `gorm:"uniqueIndex:uk_users_username;not null;size:100"`
	PasswordHash string `gorm:"not null;size:255"`
	Role         string `gorm:"not null;size:20"`
	LastLogin    *time.Time
	CreatedAt    time.Time
}

func (UserModel) TableName() string {
	return TableUsers
}
