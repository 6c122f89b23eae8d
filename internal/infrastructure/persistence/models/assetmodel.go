package models

import "time"

// AssetModel is the persistence shape of an inventory asset.
type AssetModel struct {
	ID                 uint   `gorm:"primarykey"`
	Type               string `gorm:"not null;size:20;index:idx_assets_type_status"`
	Model              string `gorm:"not null;size:100"`
	SerialNumber       string `gorm:"uniqueIndex:uk_assets_serial;not null;size:100"`
	Status             string `gorm:"not null;size:20;index:idx_assets_type_status"`
	Location           string `gorm:"size:255"`
	AssignedCustomerID *uint  `gorm:"index:idx_assets_customer"`
	AssignedAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (AssetModel) TableName() string {
	return TableAssets
}

// AssignmentModel is one row of an asset's custody history.
type AssignmentModel struct {
	ID           uint      `gorm:"primarykey"`
	AssetID      uint      `gorm:"not null;index:idx_assignments_asset"`
	CustomerID   uint      `gorm:"not null;index:idx_assignments_customer"`
	AssignedOn   time.Time `gorm:"not null"`
	UnassignedOn *time.Time
}

func (AssignmentModel) TableName() string {
	return TableAssignments
}
