package usecases

import (
	"context"

	"fibernet/internal/domain/asset"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type TypeUtilization struct {
	Total           int64   `json:"total"`
	Available       int64   `json:"available"`
	Assigned        int64   `json:"assigned"`
	Faulty          int64   `json:"faulty"`
	Retired         int64   `json:"retired"`
	UtilizationRate float64 `json:"utilization_rate"`
}

type UtilizationStatsResult struct {
	ByType map[string]TypeUtilization `json:"by_type"`
}

// UtilizationStatsUseCase reports per-type status counts. The rate is
// assigned over non-retired stock.
type UtilizationStatsUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewUtilizationStatsUseCase(assetRepo asset.Repository, log logger.Interface) *UtilizationStatsUseCase {
	return &UtilizationStatsUseCase{assetRepo: assetRepo, logger: log}
}

func (uc *UtilizationStatsUseCase) Execute(ctx context.Context) (*UtilizationStatsResult, error) {
	counts, err := uc.assetRepo.CountByTypeAndStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count assets", "error", err)
		return nil, errors.NewInternalError("failed to count assets", err)
	}

	byType := make(map[string]TypeUtilization, len(counts))
	for t, statuses := range counts {
		u := TypeUtilization{
			Available: statuses[asset.StatusAvailable],
			Assigned:  statuses[asset.StatusAssigned],
			Faulty:    statuses[asset.StatusFaulty],
			Retired:   statuses[asset.StatusRetired],
		}
		u.Total = u.Available + u.Assigned + u.Faulty + u.Retired
		if inService := u.Total - u.Retired; inService > 0 {
			u.UtilizationRate = float64(u.Assigned) / float64(inService)
		}
		byType[t.String()] = u
	}

	return &UtilizationStatsResult{ByType: byType}, nil
}
