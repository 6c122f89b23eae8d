package usecases

import (
	"context"
	"fmt"
	"strings"

	appaudit "fibernet/internal/application/audit"
	"fibernet/internal/domain/asset"
	auditdomain "fibernet/internal/domain/audit"
	"fibernet/internal/shared/db"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type RetireAssetCommand struct {
	ActorID   uint
	ActorRole string
	AssetID   uint
	Reason    string
}

type RetireAssetResult struct {
	AssetID uint   `json:"asset_id"`
	Status  string `json:"status"`
}

// RetireAssetUseCase permanently removes an asset from service. Assigned
// assets must be reclaimed first.
type RetireAssetUseCase struct {
	assetRepo asset.Repository
	recorder  appaudit.Recorder
	txManager db.TransactionManager
	logger    logger.Interface
}

func NewRetireAssetUseCase(
	assetRepo asset.Repository,
	recorder appaudit.Recorder,
	txManager db.TransactionManager,
	log logger.Interface,
) *RetireAssetUseCase {
	return &RetireAssetUseCase{assetRepo: assetRepo, recorder: recorder, txManager: txManager, logger: log}
}

func (uc *RetireAssetUseCase) Execute(ctx context.Context, cmd RetireAssetCommand) (*RetireAssetResult, error) {
	if cmd.AssetID == 0 {
		return nil, errors.NewValidationError("asset id is required")
	}
	reason := strings.TrimSpace(cmd.Reason)
	if reason == "" {
		return nil, errors.NewValidationError("retirement reason is required")
	}

	var result *RetireAssetResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		a, err := uc.assetRepo.FindByID(txCtx, cmd.AssetID)
		if err != nil {
			return err
		}
		if err := a.Retire(); err != nil {
			return err
		}
		if err := uc.assetRepo.Update(txCtx, a); err != nil {
			return errors.NewInternalError("failed to retire asset", err)
		}

		if err := uc.recorder.Record(txCtx, cmd.ActorID, cmd.ActorRole, auditdomain.ActionRetire,
			fmt.Sprintf("retired asset %d (%s %s): %s", a.ID(), a.Type(), a.SerialNumber(), reason)); err != nil {
			return err
		}

		result = &RetireAssetResult{AssetID: a.ID(), Status: a.Status().String()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("asset retired", "asset_id", cmd.AssetID, "reason", reason)
	return result, nil
}
