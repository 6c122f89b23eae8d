package usecases

import (
	"context"

	"fibernet/internal/domain/asset"
	"fibernet/internal/domain/customer"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type InactiveCustomerResult struct {
	CustomerID   uint   `json:"customer_id"`
	Name         string `json:"name"`
	Neighborhood string `json:"neighborhood"`
	HeldAssets   []uint `json:"held_assets"`
}

type InactiveCustomersResult struct {
	Customers []InactiveCustomerResult `json:"customers"`
}

// InactiveCustomersUseCase lists inactive customers, flagging any that
// still hold open assignments. A non-empty held list points at an
// incomplete reclaim that needs operator attention.
type InactiveCustomersUseCase struct {
	customerRepo   customer.Repository
	assignmentRepo asset.AssignmentRepository
	logger         logger.Interface
}

func NewInactiveCustomersUseCase(
	customerRepo customer.Repository,
	assignmentRepo asset.AssignmentRepository,
	log logger.Interface,
) *InactiveCustomersUseCase {
	return &InactiveCustomersUseCase{customerRepo: customerRepo, assignmentRepo: assignmentRepo, logger: log}
}

func (uc *InactiveCustomersUseCase) Execute(ctx context.Context) (*InactiveCustomersResult, error) {
	customers, err := uc.customerRepo.List(ctx, customer.ListFilter{Status: customer.StatusInactive})
	if err != nil {
		uc.logger.Errorw("failed to list inactive customers", "error", err)
		return nil, errors.NewInternalError("failed to list inactive customers", err)
	}

	results := make([]InactiveCustomerResult, 0, len(customers))
	for _, c := range customers {
		open, err := uc.assignmentRepo.FindOpenByCustomerID(ctx, c.ID())
		if err != nil {
			return nil, errors.NewInternalError("failed to load open assignments", err)
		}
		held := make([]uint, 0, len(open))
		for _, entry := range open {
			held = append(held, entry.AssetID())
		}
		results = append(results, InactiveCustomerResult{
			CustomerID:   c.ID(),
			Name:         c.Name(),
			Neighborhood: c.Neighborhood(),
			HeldAssets:   held,
		})
	}

	return &InactiveCustomersResult{Customers: results}, nil
}
