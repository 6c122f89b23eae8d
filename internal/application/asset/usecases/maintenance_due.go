package usecases

import (
	"context"

	"fibernet/internal/domain/asset"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type MaintenanceDueCommand struct {
	ThresholdDays int
}

type MaintenanceDueResult struct {
	ThresholdDays int           `json:"threshold_days"`
	Assets        []AssetResult `json:"assets"`
}

// MaintenanceDueUseCase flags equipment that has been in the field
// longer than the threshold without a service visit.
type MaintenanceDueUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewMaintenanceDueUseCase(assetRepo asset.Repository, log logger.Interface) *MaintenanceDueUseCase {
	return &MaintenanceDueUseCase{assetRepo: assetRepo, logger: log}
}

func (uc *MaintenanceDueUseCase) Execute(ctx context.Context, cmd MaintenanceDueCommand) (*MaintenanceDueResult, error) {
	if cmd.ThresholdDays < 1 {
		cmd.ThresholdDays = 365
	}

	assets, err := uc.assetRepo.FindAssignedBefore(ctx, cmd.ThresholdDays)
	if err != nil {
		uc.logger.Errorw("failed to load maintenance candidates", "error", err)
		return nil, errors.NewInternalError("failed to load maintenance candidates", err)
	}

	results := make([]AssetResult, 0, len(assets))
	for _, a := range assets {
		results = append(results, *assetResult(a))
	}
	return &MaintenanceDueResult{ThresholdDays: cmd.ThresholdDays, Assets: results}, nil
}
