// Package asset models network equipment and its lifecycle. Assets move
// between Available, Assigned, Faulty and Retired. Retired is final.
package asset

import (
	"strings"
	"time"

	"fibernet/internal/shared/biztime"
	"fibernet/internal/shared/errors"
)

type Asset struct {
	id                 uint
	assetType          Type
	model              string
	serialNumber       string
	status             Status
	location           string
	assignedCustomerID *uint
	assignedAt         *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

// NewAsset creates an asset in Available status.
func NewAsset(assetType Type, model, serialNumber, location string) (*Asset, error) {
	if !assetType.IsValid() {
		return nil, errors.NewValidationError("invalid asset type: " + string(assetType))
	}
	model = strings.TrimSpace(model)
	if model == "" {
		return nil, errors.NewValidationError("asset model is required")
	}
	serialNumber = strings.TrimSpace(serialNumber)
	if serialNumber == "" {
		return nil, errors.NewValidationError("serial number is required")
	}

	now := biztime.Now()
	return &Asset{
		assetType:    assetType,
		model:        model,
		serialNumber: serialNumber,
		status:       StatusAvailable,
		location:     strings.TrimSpace(location),
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructAsset rebuilds an asset from persistence without validation.
func ReconstructAsset(
	id uint,
	assetType Type,
	model string,
	serialNumber string,
	status Status,
	location string,
	assignedCustomerID *uint,
	assignedAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) *Asset {
	return &Asset{
		id:                 id,
		assetType:          assetType,
		model:              model,
		serialNumber:       serialNumber,
		status:             status,
		location:           location,
		assignedCustomerID: assignedCustomerID,
		assignedAt:         assignedAt,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (a *Asset) ID() uint                   { return a.id }
func (a *Asset) Type() Type                 { return a.assetType }
func (a *Asset) Model() string              { return a.model }
func (a *Asset) SerialNumber() string       { return a.serialNumber }
func (a *Asset) Status() Status             { return a.status }
func (a *Asset) Location() string           { return a.location }
func (a *Asset) AssignedCustomerID() *uint  { return a.assignedCustomerID }
func (a *Asset) AssignedAt() *time.Time     { return a.assignedAt }
func (a *Asset) CreatedAt() time.Time       { return a.createdAt }
func (a *Asset) UpdatedAt() time.Time       { return a.updatedAt }

func (a *Asset) SetID(id uint) {
	a.id = id
}

func (a *Asset) IsAvailable() bool {
	return a.status == StatusAvailable
}

func (a *Asset) IsAssigned() bool {
	return a.status == StatusAssigned
}

// Assign binds the asset to a customer.
func (a *Asset) Assign(customerID uint) error {
	if !a.status.CanTransitionTo(StatusAssigned) {
		return errors.NewInvalidTransitionError(a.status.String(), StatusAssigned.String())
	}
	now := biztime.Now()
	a.status = StatusAssigned
	a.assignedCustomerID = &customerID
	a.assignedAt = &now
	a.updatedAt = now
	return nil
}

// Release returns the asset to the available pool.
func (a *Asset) Release() error {
	if !a.status.CanTransitionTo(StatusAvailable) {
		return errors.NewInvalidTransitionError(a.status.String(), StatusAvailable.String())
	}
	a.status = StatusAvailable
	a.assignedCustomerID = nil
	a.assignedAt = nil
	a.updatedAt = biztime.Now()
	return nil
}

// Reassign moves an assigned asset to a different customer without
// passing through Available.
func (a *Asset) Reassign(newCustomerID uint) error {
	if a.status != StatusAssigned {
		return errors.NewInvalidTransitionError(a.status.String(), StatusAssigned.String())
	}
	now := biztime.Now()
	a.assignedCustomerID = &newCustomerID
	a.assignedAt = &now
	a.updatedAt = now
	return nil
}

func (a *Asset) MarkFaulty() error {
	if !a.status.CanTransitionTo(StatusFaulty) {
		return errors.NewInvalidTransitionError(a.status.String(), StatusFaulty.String())
	}
	a.status = StatusFaulty
	a.assignedCustomerID = nil
	a.assignedAt = nil
	a.updatedAt = biztime.Now()
	return nil
}

// Repair returns a faulty asset to the available pool.
func (a *Asset) Repair() error {
	if a.status != StatusFaulty {
		return errors.NewInvalidTransitionError(a.status.String(), StatusAvailable.String())
	}
	a.status = StatusAvailable
	a.updatedAt = biztime.Now()
	return nil
}

// UpdateDetails edits the descriptive fields. Type, serial number and
// status are fixed; status moves only through the lifecycle operations.
// Retired equipment is read-only.
func (a *Asset) UpdateDetails(model, location string) error {
	if a.status.IsTerminal() {
		return errors.NewConflictError("retired assets cannot be edited")
	}
	model = strings.TrimSpace(model)
	if model == "" {
		return errors.NewValidationError("asset model is required")
	}
	a.model = model
	a.location = strings.TrimSpace(location)
	a.updatedAt = biztime.Now()
	return nil
}

// Retire permanently removes the asset from service. Assigned assets must
// be reclaimed first.
func (a *Asset) Retire() error {
	if !a.status.CanTransitionTo(StatusRetired) {
		return errors.NewInvalidTransitionError(a.status.String(), StatusRetired.String())
	}
	a.status = StatusRetired
	a.assignedCustomerID = nil
	a.assignedAt = nil
	a.updatedAt = biztime.Now()
	return nil
}
