package asset

import (
	"time"

	"fibernet/internal/shared/biztime"
	"fibernet/internal/shared/errors"
)

// Assignment is one entry in an asset's assignment history. An asset is
// Assigned exactly when it has one open entry (unassignedOn == nil).
type Assignment struct {
	id           uint
	assetID      uint
	customerID   uint
	assignedOn   time.Time
	unassignedOn *time.Time
}

func NewAssignment(assetID, customerID uint) *Assignment {
	return &Assignment{
		assetID:    assetID,
		customerID: customerID,
		assignedOn: biztime.Now(),
	}
}

func ReconstructAssignment(id, assetID, customerID uint, assignedOn time.Time, unassignedOn *time.Time) *Assignment {
	return &Assignment{
		id:           id,
		assetID:      assetID,
		customerID:   customerID,
		assignedOn:   assignedOn,
		unassignedOn: unassignedOn,
	}
}

func (a *Assignment) ID() uint                 { return a.id }
func (a *Assignment) AssetID() uint            { return a.assetID }
func (a *Assignment) CustomerID() uint         { return a.customerID }
func (a *Assignment) AssignedOn() time.Time    { return a.assignedOn }
func (a *Assignment) UnassignedOn() *time.Time { return a.unassignedOn }

func (a *Assignment) SetID(id uint) {
	a.id = id
}

func (a *Assignment) IsOpen() bool {
	return a.unassignedOn == nil
}

// Close stamps the release time on an open entry.
func (a *Assignment) Close() error {
	if a.unassignedOn != nil {
		return errors.NewConflictError("assignment entry is already closed")
	}
	now := biztime.Now()
	a.unassignedOn = &now
	return nil
}

// DurationDays reports how long the assignment has been (or was) open.
func (a *Assignment) DurationDays() int {
	end := biztime.Now()
	if a.unassignedOn != nil {
		end = *a.unassignedOn
	}
	return int(end.Sub(a.assignedOn).Hours() / 24)
}
