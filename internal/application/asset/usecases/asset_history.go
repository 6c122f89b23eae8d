package usecases

import (
	"context"
	"time"

	"fibernet/internal/domain/asset"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type AssetHistoryCommand struct {
	AssetID uint
}

type HistoryEntryResult struct {
	CustomerID   uint       `json:"customer_id"`
	AssignedOn   time.Time  `json:"assigned_on"`
	UnassignedOn *time.Time `json:"unassigned_on,omitempty"`
	DurationDays int        `json:"duration_days"`
	Open         bool       `json:"open"`
}

type AssetHistoryResult struct {
	AssetID uint                 `json:"asset_id"`
	Entries []HistoryEntryResult `json:"entries"`
}

type AssetHistoryUseCase struct {
	assetRepo      asset.Repository
	assignmentRepo asset.AssignmentRepository
	logger         logger.Interface
}

func NewAssetHistoryUseCase(
	assetRepo asset.Repository,
	assignmentRepo asset.AssignmentRepository,
	log logger.Interface,
) *AssetHistoryUseCase {
	return &AssetHistoryUseCase{assetRepo: assetRepo, assignmentRepo: assignmentRepo, logger: log}
}

func (uc *AssetHistoryUseCase) Execute(ctx context.Context, cmd AssetHistoryCommand) (*AssetHistoryResult, error) {
	if _, err := uc.assetRepo.FindByID(ctx, cmd.AssetID); err != nil {
		return nil, err
	}

	entries, err := uc.assignmentRepo.FindByAssetID(ctx, cmd.AssetID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load assignment history", err)
	}

	results := make([]HistoryEntryResult, 0, len(entries))
	for _, e := range entries {
		results = append(results, HistoryEntryResult{
			CustomerID:   e.CustomerID(),
			AssignedOn:   e.AssignedOn(),
			UnassignedOn: e.UnassignedOn(),
			DurationDays: e.DurationDays(),
			Open:         e.IsOpen(),
		})
	}
	return &AssetHistoryResult{AssetID: cmd.AssetID, Entries: results}, nil
}
