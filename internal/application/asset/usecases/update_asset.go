package usecases

import (
	"context"
	"fmt"

	appaudit "fibernet/internal/application/audit"
	"fibernet/internal/domain/asset"
	auditdomain "fibernet/internal/domain/audit"
	"fibernet/internal/shared/db"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

// UpdateAssetCommand carries the editable fields. Nil pointers leave the
// current value in place. Type, serial number and status are not editable
// here; status moves through the lifecycle operations only.
type UpdateAssetCommand struct {
	ActorID   uint
	ActorRole string
	AssetID   uint
	Model     *string
	Location  *string
}

type UpdateAssetUseCase struct {
	assetRepo asset.Repository
	recorder  appaudit.Recorder
	txManager db.TransactionManager
	logger    logger.Interface
}

func NewUpdateAssetUseCase(
	assetRepo asset.Repository,
	recorder appaudit.Recorder,
	txManager db.TransactionManager,
	log logger.Interface,
) *UpdateAssetUseCase {
	return &UpdateAssetUseCase{assetRepo: assetRepo, recorder: recorder, txManager: txManager, logger: log}
}

func (uc *UpdateAssetUseCase) Execute(ctx context.Context, cmd UpdateAssetCommand) (*AssetResult, error) {
	if cmd.Model == nil && cmd.Location == nil {
		return nil, errors.NewValidationError("no fields to update")
	}

	var result *AssetResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		a, err := uc.assetRepo.FindByID(txCtx, cmd.AssetID)
		if err != nil {
			return err
		}

		model := a.Model()
		if cmd.Model != nil {
			model = *cmd.Model
		}
		location := a.Location()
		if cmd.Location != nil {
			location = *cmd.Location
		}
		if err := a.UpdateDetails(model, location); err != nil {
			return err
		}

		if err := uc.assetRepo.Update(txCtx, a); err != nil {
			return errors.NewInternalError("failed to update asset", err)
		}
		if err := uc.recorder.Record(txCtx, cmd.ActorID, cmd.ActorRole, auditdomain.ActionUpdate,
			fmt.Sprintf("updated asset %q (id=%d)", a.SerialNumber(), a.ID())); err != nil {
			return err
		}
		result = assetResult(a)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("asset updated", "asset_id", cmd.AssetID)
	return result, nil
}
