package models

import "time"

// CustomerModel carries the subscriber record plus its network binding.
// The composite unique index on (splitter_id, assigned_port) is the
// arbiter for concurrent onboarding onto the same port.
type CustomerModel struct {
	ID                uint   `gorm:"primarykey"`
	Name              string `gorm:"not null;size:100"`
	Address           string `gorm:"not null;size:255"`
	Neighborhood      string `gorm:"not null;size:100;index:idx_customers_neighborhood"`
	Plan              string `gorm:"size:50"`
	ConnectionType    string `gorm:"not null;size:20"`
	Status            string `gorm:"not null;size:20;index:idx_customers_status"`
	SplitterID        *uint  `gorm:"uniqueIndex:uk_customers_splitter_port"`
	AssignedPort      *int   `gorm:"uniqueIndex:uk_customers_splitter_port"`
	ONTAssetID        *uint
	RouterAssetID     *uint
	FiberLengthMeters *float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (CustomerModel) TableName() string {
	return TableCustomers
}
