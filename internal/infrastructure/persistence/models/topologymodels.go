package models

import "time"

type HeadendModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"uniqueIndex:uk_headends_name;not null;size:100"`
	Location  string `gorm:"size:255"`
	Region    string `gorm:"size:100"`
	CreatedAt time.Time
}

func (HeadendModel) TableName() string {
	return TableHeadends
}

type FDHModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"uniqueIndex:uk_fdhs_name;not null;size:100"`
	Location    string `gorm:"size:255"`
	Region      string `gorm:"size:100"`
	MaxCapacity int    `gorm:"not null"`
	HeadendID   uint   `gorm:"not null;index:idx_fdhs_headend"`
	CreatedAt   time.Time
}

func (FDHModel) TableName() string {
	return TableFDHs
}

type SplitterModel struct {
	ID           uint   `gorm:"primarykey"`
	Model        string `gorm:"not null;size:100"`
	Location     string `gorm:"size:255"`
	PortCapacity int    `gorm:"not null"`
	FDHID        uint   `gorm:"column:fdh_id;not null;index:idx_splitters_fdh"`
	CreatedAt    time.Time
}

func (SplitterModel) TableName() string {
	return TableSplitters
}
