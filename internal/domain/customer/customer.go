// Package customer models subscribers and their bindings to the fiber
// network: a splitter port plus the equipment installed at the premises.
package customer

import (
	"strings"
	"time"

	"fibernet/internal/shared/biztime"
	"fibernet/internal/shared/errors"
)

type Customer struct {
	id             uint
	name           string
	address        string
	neighborhood   string
	plan           string
	connectionType ConnectionType
	status         Status
	splitterID     *uint
	assignedPort   *int
	ontAssetID     *uint
	routerAssetID  *uint
	fiberLengthM   *float64
	createdAt      time.Time
	updatedAt      time.Time
}

// NewCustomer creates a customer in Pending status with no network binding.
func NewCustomer(name, address, neighborhood, plan string, connectionType ConnectionType) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("customer name is required")
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, errors.NewValidationError("customer address is required")
	}
	neighborhood = strings.TrimSpace(neighborhood)
	if neighborhood == "" {
		return nil, errors.NewValidationError("customer neighborhood is required")
	}
	if !connectionType.IsValid() {
		return nil, errors.NewValidationError("invalid connection type: " + string(connectionType))
	}

	now := biztime.Now()
	return &Customer{
		name:           name,
		address:        address,
		neighborhood:   neighborhood,
		plan:           strings.TrimSpace(plan),
		connectionType: connectionType,
		status:         StatusPending,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructCustomer(
	id uint,
	name string,
	address string,
	neighborhood string,
	plan string,
	connectionType ConnectionType,
	status Status,
	splitterID *uint,
	assignedPort *int,
	ontAssetID *uint,
	routerAssetID *uint,
	fiberLengthM *float64,
	createdAt time.Time,
	updatedAt time.Time,
) *Customer {
	return &Customer{
		id:             id,
		name:           name,
		address:        address,
		neighborhood:   neighborhood,
		plan:           plan,
		connectionType: connectionType,
		status:         status,
		splitterID:     splitterID,
		assignedPort:   assignedPort,
		ontAssetID:     ontAssetID,
		routerAssetID:  routerAssetID,
		fiberLengthM:   fiberLengthM,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (c *Customer) ID() uint                       { return c.id }
func (c *Customer) Name() string                   { return c.name }
func (c *Customer) Address() string                { return c.address }
func (c *Customer) Neighborhood() string           { return c.neighborhood }
func (c *Customer) Plan() string                   { return c.plan }
func (c *Customer) ConnectionType() ConnectionType { return c.connectionType }
func (c *Customer) Status() Status                 { return c.status }
func (c *Customer) SplitterID() *uint              { return c.splitterID }
func (c *Customer) AssignedPort() *int             { return c.assignedPort }
func (c *Customer) ONTAssetID() *uint              { return c.ontAssetID }
func (c *Customer) RouterAssetID() *uint           { return c.routerAssetID }
func (c *Customer) FiberLengthMeters() *float64    { return c.fiberLengthM }
func (c *Customer) CreatedAt() time.Time           { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time           { return c.updatedAt }

func (c *Customer) SetID(id uint) {
	c.id = id
}

// UpdateDetails edits the contact and service fields. Status and the
// network binding are untouched; those move through onboarding and the
// lifecycle operations.
func (c *Customer) UpdateDetails(name, address, neighborhood, plan string, connectionType ConnectionType) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.NewValidationError("customer name is required")
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return errors.NewValidationError("customer address is required")
	}
	neighborhood = strings.TrimSpace(neighborhood)
	if neighborhood == "" {
		return errors.NewValidationError("customer neighborhood is required")
	}
	if !connectionType.IsValid() {
		return errors.NewValidationError("invalid connection type: " + string(connectionType))
	}
	c.name = name
	c.address = address
	c.neighborhood = neighborhood
	c.plan = strings.TrimSpace(plan)
	c.connectionType = connectionType
	c.updatedAt = biztime.Now()
	return nil
}

// BindNetwork attaches the customer to a splitter port and its equipment.
func (c *Customer) BindNetwork(splitterID uint, port int, ontAssetID, routerAssetID uint, fiberLengthM *float64) {
	c.splitterID = &splitterID
	c.assignedPort = &port
	c.ontAssetID = &ontAssetID
	c.routerAssetID = &routerAssetID
	c.fiberLengthM = fiberLengthM
	c.updatedAt = biztime.Now()
}

// ReleaseNetwork clears the port and equipment bindings. The customer
// record itself is kept.
func (c *Customer) ReleaseNetwork() {
	c.splitterID = nil
	c.assignedPort = nil
	c.ontAssetID = nil
	c.routerAssetID = nil
	c.updatedAt = biztime.Now()
}

// AttachONT points the customer at a different ONT unit.
func (c *Customer) AttachONT(assetID uint) {
	c.ontAssetID = &assetID
	c.updatedAt = biztime.Now()
}

// AttachRouter points the customer at a different router unit.
func (c *Customer) AttachRouter(assetID uint) {
	c.routerAssetID = &assetID
	c.updatedAt = biztime.Now()
}

// DetachAsset clears whichever equipment reference matches the id.
func (c *Customer) DetachAsset(assetID uint) {
	if c.ontAssetID != nil && *c.ontAssetID == assetID {
		c.ontAssetID = nil
	}
	if c.routerAssetID != nil && *c.routerAssetID == assetID {
		c.routerAssetID = nil
	}
	c.updatedAt = biztime.Now()
}

// ReplaceAsset swaps one of the bound equipment references.
func (c *Customer) ReplaceAsset(oldAssetID, newAssetID uint) {
	if c.ontAssetID != nil && *c.ontAssetID == oldAssetID {
		c.ontAssetID = &newAssetID
	}
	if c.routerAssetID != nil && *c.routerAssetID == oldAssetID {
		c.routerAssetID = &newAssetID
	}
	c.updatedAt = biztime.Now()
}

// Activate marks the customer live. Only reached through a completed
// deployment task.
func (c *Customer) Activate() error {
	if !c.status.CanTransitionTo(StatusActive) {
		return errors.NewInvalidTransitionError(c.status.String(), StatusActive.String())
	}
	c.status = StatusActive
	c.updatedAt = biztime.Now()
	return nil
}

func (c *Customer) Deactivate() error {
	if !c.status.CanTransitionTo(StatusInactive) {
		return errors.NewInvalidTransitionError(c.status.String(), StatusInactive.String())
	}
	c.status = StatusInactive
	c.updatedAt = biztime.Now()
	return nil
}

// Reactivate re-enters the lifecycle at Pending. A fresh deployment task
// is required before the customer can become Active again.
func (c *Customer) Reactivate() error {
	if !c.status.CanTransitionTo(StatusPending) {
		return errors.NewInvalidTransitionError(c.status.String(), StatusPending.String())
	}
	c.status = StatusPending
	c.updatedAt = biztime.Now()
	return nil
}
