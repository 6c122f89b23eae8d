package usecases

import (
	"context"
	"strings"
	"time"

	"fibernet/internal/domain/asset"
	"fibernet/internal/domain/customer"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type SearchDeviceCommand struct {
	SerialNumber string
}

type DeviceHistoryEntry struct {
	CustomerID   uint       `json:"customer_id"`
	AssignedOn   time.Time  `json:"assigned_on"`
	UnassignedOn *time.Time `json:"unassigned_on,omitempty"`
	DurationDays int        `json:"duration_days"`
}

type SearchDeviceResult struct {
	Asset    TopologyAssetInfo    `json:"asset"`
	Location string               `json:"location,omitempty"`
	Owner    *SplitterCustomer    `json:"owner,omitempty"`
	History  []DeviceHistoryEntry `json:"history"`
}

// SearchDeviceUseCase finds a device by serial number with its current
// owner and full assignment history.
type SearchDeviceUseCase struct {
	assetRepo      asset.Repository
	assignmentRepo asset.AssignmentRepository
	customerRepo   customer.Repository
	logger         logger.Interface
}

func NewSearchDeviceUseCase(
	assetRepo asset.Repository,
	assignmentRepo asset.AssignmentRepository,
	customerRepo customer.Repository,
	log logger.Interface,
) *SearchDeviceUseCase {
	return &SearchDeviceUseCase{
		assetRepo:      assetRepo,
		assignmentRepo: assignmentRepo,
		customerRepo:   customerRepo,
		logger:         log,
	}
}

func (uc *SearchDeviceUseCase) Execute(ctx context.Context, cmd SearchDeviceCommand) (*SearchDeviceResult, error) {
	serial := strings.TrimSpace(cmd.SerialNumber)
	if serial == "" {
		return nil, errors.NewValidationError("serial number is required")
	}

	a, err := uc.assetRepo.FindBySerialNumber(ctx, serial)
	if err != nil {
		return nil, err
	}

	result := &SearchDeviceResult{
		Asset: TopologyAssetInfo{
			ID:           a.ID(),
			Type:         a.Type().String(),
			Model:        a.Model(),
			SerialNumber: a.SerialNumber(),
			Status:       a.Status().String(),
		},
		Location: a.Location(),
	}

	if a.AssignedCustomerID() != nil {
		owner, err := uc.customerRepo.FindByID(ctx, *a.AssignedCustomerID())
		if err == nil {
			port := 0
			if owner.AssignedPort() != nil {
				port = *owner.AssignedPort()
			}
			result.Owner = &SplitterCustomer{
				CustomerID: owner.ID(),
				Name:       owner.Name(),
				Port:       port,
				Status:     owner.Status().String(),
			}
		}
	}

	history, err := uc.assignmentRepo.FindByAssetID(ctx, a.ID())
	if err != nil {
		return nil, errors.NewInternalError("failed to load assignment history", err)
	}
	for _, entry := range history {
		result.History = append(result.History, DeviceHistoryEntry{
			CustomerID:   entry.CustomerID(),
			AssignedOn:   entry.AssignedOn(),
			UnassignedOn: entry.UnassignedOn(),
			DurationDays: entry.DurationDays(),
		})
	}

	return result, nil
}
