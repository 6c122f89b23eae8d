package usecases

import (
	"context"

	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type BulkReclaimCommand struct {
	ActorID     uint
	ActorRole   string
	CustomerIDs []uint
}

type BulkReclaimFailure struct {
	CustomerID uint   `json:"customer_id"`
	Error      string `json:"error"`
}

type BulkReclaimResult struct {
	TotalProcessed int                   `json:"total_processed"`
	Successful     int                   `json:"successful"`
	Failed         int                   `json:"failed"`
	Results        []ReclaimAssetsResult `json:"results"`
	Failures       []BulkReclaimFailure  `json:"failures"`
}

// BulkReclaimUseCase runs the reclaim operation over a batch of
// customers. Each customer is its own transaction with its own audit
// entry, so one failure does not roll back the rest of the batch.
type BulkReclaimUseCase struct {
	reclaimUC *ReclaimAssetsUseCase
	logger    logger.Interface
}

func NewBulkReclaimUseCase(reclaimUC *ReclaimAssetsUseCase, log logger.Interface) *BulkReclaimUseCase {
	return &BulkReclaimUseCase{reclaimUC: reclaimUC, logger: log}
}

func (uc *BulkReclaimUseCase) Execute(ctx context.Context, cmd BulkReclaimCommand) (*BulkReclaimResult, error) {
	if len(cmd.CustomerIDs) == 0 {
		return nil, errors.NewValidationError("at least one customer id is required")
	}

	result := &BulkReclaimResult{
		TotalProcessed: len(cmd.CustomerIDs),
		Results:        make([]ReclaimAssetsResult, 0, len(cmd.CustomerIDs)),
		Failures:       []BulkReclaimFailure{},
	}
	for _, customerID := range cmd.CustomerIDs {
		one, err := uc.reclaimUC.Execute(ctx, ReclaimAssetsCommand{
			ActorID:    cmd.ActorID,
			ActorRole:  cmd.ActorRole,
			CustomerID: customerID,
		})
		if err != nil {
			uc.logger.Warnw("bulk reclaim skipped customer", "customer_id", customerID, "error", err)
			result.Failures = append(result.Failures, BulkReclaimFailure{
				CustomerID: customerID,
				Error:      err.Error(),
			})
			continue
		}
		result.Results = append(result.Results, *one)
	}
	result.Successful = len(result.Results)
	result.Failed = len(result.Failures)

	uc.logger.Infow("bulk reclaim finished", "total", result.TotalProcessed, "failed", result.Failed)
	return result, nil
}
