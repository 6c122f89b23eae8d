package usecases

import (
	"context"

	"fibernet/internal/domain/asset"
	"fibernet/internal/domain/customer"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type LifecycleSummaryResult struct {
	AssignmentsLast30Days int64                       `json:"assignments_last_30_days"`
	AssetStatusCounts     map[string]map[string]int64 `json:"asset_status_counts"`
	CustomerStatusCounts  map[string]int64            `json:"customer_status_counts"`
}

// LifecycleSummaryUseCase reports recent assignment volume and the
// current status distribution of assets and customers.
type LifecycleSummaryUseCase struct {
	customerRepo   customer.Repository
	assetRepo      asset.Repository
	assignmentRepo asset.AssignmentRepository
	logger         logger.Interface
}

func NewLifecycleSummaryUseCase(
	customerRepo customer.Repository,
	assetRepo asset.Repository,
	assignmentRepo asset.AssignmentRepository,
	log logger.Interface,
) *LifecycleSummaryUseCase {
	return &LifecycleSummaryUseCase{
		customerRepo:   customerRepo,
		assetRepo:      assetRepo,
		assignmentRepo: assignmentRepo,
		logger:         log,
	}
}

func (uc *LifecycleSummaryUseCase) Execute(ctx context.Context) (*LifecycleSummaryResult, error) {
	recentAssignments, err := uc.assignmentRepo.CountAssignedSince(ctx, 30)
	if err != nil {
		uc.logger.Errorw("failed to count recent assignments", "error", err)
		return nil, errors.NewInternalError("failed to count recent assignments", err)
	}

	assetCounts, err := uc.assetRepo.CountByTypeAndStatus(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to count assets", err)
	}
	assetsByType := make(map[string]map[string]int64, len(assetCounts))
	for t, statuses := range assetCounts {
		byStatus := make(map[string]int64, len(statuses))
		for s, n := range statuses {
			byStatus[s.String()] = n
		}
		assetsByType[t.String()] = byStatus
	}

	customerCounts, err := uc.customerRepo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to count customers", err)
	}
	customersByStatus := make(map[string]int64, len(customerCounts))
	for s, n := range customerCounts {
		customersByStatus[s.String()] = n
	}

	return &LifecycleSummaryResult{
		AssignmentsLast30Days: recentAssignments,
		AssetStatusCounts:     assetsByType,
		CustomerStatusCounts:  customersByStatus,
	}, nil
}
