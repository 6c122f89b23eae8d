package models

import "time"

// AuditModel rows are append-only. There is no update or delete path.
type AuditModel struct {
	ID          uint      `gorm:"primarykey"`
	Reference   string    `gorm:"uniqueIndex:uk_audit_reference;not null;size:36"`
	ActorID     uint      `gorm:"not null;index:idx_audit_actor"`
	ActorRole   string    `gorm:"not null;size:20"`
	Action      string    `gorm:"not null;size:20;index:idx_audit_action"`
	Description string    `gorm:"not null;size:500"`
	CreatedAt   time.Time `gorm:"index:idx_audit_created"`
}

func (AuditModel) TableName() string {
	return TableAuditLog
}
