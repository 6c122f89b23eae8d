// Package usecases implements reads and detail edits over customer
// records. Status changes go through the onboarding and lifecycle
// packages.
package usecases

import (
	"context"
	"time"

	"fibernet/internal/domain/customer"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type ListCustomersCommand struct {
	Status       string
	Neighborhood string
	SplitterID   *uint
	Page         int
	PageSize     int
}

type CustomerResult struct {
	ID                uint      `json:"id"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	Neighborhood      string    `json:"neighborhood"`
	Plan              string    `json:"plan"`
	ConnectionType    string    `json:"connection_type"`
	Status            string    `json:"status"`
	SplitterID        *uint     `json:"splitter_id,omitempty"`
	AssignedPort      *int      `json:"assigned_port,omitempty"`
	ONTAssetID        *uint     `json:"ont_asset_id,omitempty"`
	RouterAssetID     *uint     `json:"router_asset_id,omitempty"`
	FiberLengthMeters *float64  `json:"fiber_length_meters,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type ListCustomersResult struct {
	Customers []CustomerResult `json:"customers"`
	Total     int64            `json:"total"`
}

type ListCustomersUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewListCustomersUseCase(customerRepo customer.Repository, log logger.Interface) *ListCustomersUseCase {
	return &ListCustomersUseCase{customerRepo: customerRepo, logger: log}
}

func (uc *ListCustomersUseCase) Execute(ctx context.Context, cmd ListCustomersCommand) (*ListCustomersResult, error) {
	if cmd.Status != "" && !customer.Status(cmd.Status).IsValid() {
		return nil, errors.NewValidationError("invalid customer status: " + cmd.Status)
	}
	if cmd.Page < 1 {
		cmd.Page = 1
	}
	if cmd.PageSize < 1 || cmd.PageSize > 100 {
		cmd.PageSize = 20
	}

	customers, total, err := uc.customerRepo.ListPaged(ctx, customer.ListFilter{
		Status:       customer.Status(cmd.Status),
		Neighborhood: cmd.Neighborhood,
		SplitterID:   cmd.SplitterID,
	}, cmd.Page, cmd.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list customers", "error", err)
		return nil, errors.NewInternalError("failed to list customers", err)
	}

	results := make([]CustomerResult, 0, len(customers))
	for _, c := range customers {
		results = append(results, *customerResult(c))
	}
	return &ListCustomersResult{Customers: results, Total: total}, nil
}

func customerResult(c *customer.Customer) *CustomerResult {
	return &CustomerResult{
		ID:                c.ID(),
		Name:              c.Name(),
		Address:           c.Address(),
		Neighborhood:      c.Neighborhood(),
		Plan:              c.Plan(),
		ConnectionType:    c.ConnectionType().String(),
		Status:            c.Status().String(),
		SplitterID:        c.SplitterID(),
		AssignedPort:      c.AssignedPort(),
		ONTAssetID:        c.ONTAssetID(),
		RouterAssetID:     c.RouterAssetID(),
		FiberLengthMeters: c.FiberLengthMeters(),
		CreatedAt:         c.CreatedAt(),
	}
}

type GetCustomerCommand struct {
	CustomerID uint
}

type GetCustomerUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewGetCustomerUseCase(customerRepo customer.Repository, log logger.Interface) *GetCustomerUseCase {
	return &GetCustomerUseCase{customerRepo: customerRepo, logger: log}
}

func (uc *GetCustomerUseCase) Execute(ctx context.Context, cmd GetCustomerCommand) (*CustomerResult, error) {
	c, err := uc.customerRepo.FindByID(ctx, cmd.CustomerID)
	if err != nil {
		return nil, err
	}
	return customerResult(c), nil
}
