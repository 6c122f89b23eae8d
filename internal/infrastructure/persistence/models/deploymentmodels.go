package models

import "time"

// TaskModel stores the notes log as appended timestamped lines.
type TaskModel struct {
	ID            uint   `gorm:"primarykey"`
	CustomerID    uint   `gorm:"not null;index:idx_tasks_customer"`
	TechnicianID  *uint  `gorm:"index:idx_tasks_technician"`
	Status        string `gorm:"not null;size:20;index:idx_tasks_status"`
	ScheduledDate *time.Time
	Notes         string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (TaskModel) TableName() string {
	return TableTasks
}

type TechnicianModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:100"`
	Contact   string `gorm:"size:100"`
	Region    string `gorm:"size:100;index:idx_technicians_region"`
	UserID    *uint  `gorm:"uniqueIndex:uk_technicians_user"`
	CreatedAt time.Time
}

func (TechnicianModel) TableName() string {
	return TableTechnicians
}
