package usecases

import (
	"context"
	"fmt"

	appaudit "fibernet/internal/application/audit"
	"fibernet/internal/domain/asset"
	auditdomain "fibernet/internal/domain/audit"
	"fibernet/internal/domain/customer"
	"fibernet/internal/shared/db"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type ReplaceFaultyAssetCommand struct {
	ActorID    uint
	ActorRole  string
	OldAssetID uint
	NewAssetID uint
}

type ReplaceFaultyAssetResult struct {
	OldAssetID     uint   `json:"old_asset_id"`
	OldAssetStatus string `json:"old_asset_status"`
	NewAssetID     uint   `json:"new_asset_id"`
	CustomerID     uint   `json:"customer_id"`
}

// ReplaceFaultyAssetUseCase swaps a faulty unit for an available one of
// the same type. The faulty unit is retired and the replacement takes
// over its customer binding.
type ReplaceFaultyAssetUseCase struct {
	customerRepo   customer.Repository
	assetRepo      asset.Repository
	assignmentRepo asset.AssignmentRepository
	recorder       appaudit.Recorder
	txManager      db.TransactionManager
	logger         logger.Interface
}

func NewReplaceFaultyAssetUseCase(
	customerRepo customer.Repository,
	assetRepo asset.Repository,
	assignmentRepo asset.AssignmentRepository,
	recorder appaudit.Recorder,
	txManager db.TransactionManager,
	log logger.Interface,
) *ReplaceFaultyAssetUseCase {
	return &ReplaceFaultyAssetUseCase{
		customerRepo:   customerRepo,
		assetRepo:      assetRepo,
		assignmentRepo: assignmentRepo,
		recorder:       recorder,
		txManager:      txManager,
		logger:         log,
	}
}

func (uc *ReplaceFaultyAssetUseCase) Execute(ctx context.Context, cmd ReplaceFaultyAssetCommand) (*ReplaceFaultyAssetResult, error) {
	if cmd.OldAssetID == 0 || cmd.NewAssetID == 0 {
		return nil, errors.NewValidationError("old and new asset ids are required")
	}
	if cmd.OldAssetID == cmd.NewAssetID {
		return nil, errors.NewValidationError("replacement must be a different asset")
	}

	var result *ReplaceFaultyAssetResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		oldAsset, err := uc.assetRepo.FindByID(txCtx, cmd.OldAssetID)
		if err != nil {
			return err
		}
		if oldAsset.Status() != asset.StatusFaulty {
			return errors.NewInvalidTransitionError(oldAsset.Status().String(), asset.StatusRetired.String())
		}

		newAsset, err := uc.assetRepo.FindByID(txCtx, cmd.NewAssetID)
		if err != nil {
			return err
		}
		if newAsset.Type() != oldAsset.Type() {
			return errors.NewValidationError(fmt.Sprintf(
				"replacement type mismatch: %s cannot replace %s", newAsset.Type(), oldAsset.Type()))
		}
		if !newAsset.IsAvailable() {
			return errors.NewAssetNotAvailableError(cmd.NewAssetID)
		}

		customerID, err := uc.servedCustomer(txCtx, oldAsset)
		if err != nil {
			return err
		}

		if err := closeOpenAssignment(txCtx, uc.assignmentRepo, oldAsset.ID()); err != nil {
			return err
		}
		if err := oldAsset.Retire(); err != nil {
			return err
		}
		if err := uc.assetRepo.Update(txCtx, oldAsset); err != nil {
			return errors.NewInternalError("failed to retire faulty asset", err)
		}

		claimed, err := uc.assetRepo.ClaimAvailable(txCtx, newAsset.ID(), customerID)
		if err != nil {
			return errors.NewInternalError("failed to reserve replacement asset", err)
		}
		if !claimed {
			return errors.NewAssetNotAvailableError(cmd.NewAssetID)
		}
		if err := uc.assignmentRepo.Create(txCtx, asset.NewAssignment(newAsset.ID(), customerID)); err != nil {
			return errors.NewInternalError("failed to open assignment history", err)
		}

		cust, err := uc.customerRepo.FindByID(txCtx, customerID)
		if err != nil {
			return err
		}
		cust.ReplaceAsset(oldAsset.ID(), newAsset.ID())
		attachAssetToCustomer(cust, newAsset)
		if err := uc.customerRepo.Update(txCtx, cust); err != nil {
			return errors.NewInternalError("failed to update customer", err)
		}

		if err := uc.recorder.Record(txCtx, cmd.ActorID, cmd.ActorRole, auditdomain.ActionReplace,
			fmt.Sprintf("replaced faulty asset %d with %d for customer %d", oldAsset.ID(), newAsset.ID(), customerID)); err != nil {
			return err
		}

		result = &ReplaceFaultyAssetResult{
			OldAssetID:     oldAsset.ID(),
			OldAssetStatus: oldAsset.Status().String(),
			NewAssetID:     newAsset.ID(),
			CustomerID:     customerID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("faulty asset replaced",
		"old_asset_id", cmd.OldAssetID, "new_asset_id", cmd.NewAssetID, "customer_id", result.CustomerID)
	return result, nil
}

// servedCustomer resolves which customer the faulty unit was serving from
// its assignment history: the open entry if one exists, otherwise the
// most recent closed one.
func (uc *ReplaceFaultyAssetUseCase) servedCustomer(ctx context.Context, a *asset.Asset) (uint, error) {
	open, err := uc.assignmentRepo.FindOpenByAssetID(ctx, a.ID())
	if err == nil {
		return open.CustomerID(), nil
	}
	if !errors.IsNotFound(err) {
		return 0, errors.NewInternalError("failed to load assignment history", err)
	}

	history, err := uc.assignmentRepo.FindByAssetID(ctx, a.ID())
	if err != nil {
		return 0, errors.NewInternalError("failed to load assignment history", err)
	}
	if len(history) == 0 {
		return 0, errors.NewValidationError(fmt.Sprintf("asset %d has no customer to replace for", a.ID()))
	}
	// History is ordered most recent first.
	return history[0].CustomerID(), nil
}
