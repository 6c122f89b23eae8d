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

type MarkAssetFaultyCommand struct {
	ActorID   uint
	ActorRole string
	AssetID   uint
	Reason    string
}

type MarkAssetFaultyResult struct {
	AssetID uint   `json:"asset_id"`
	Status  string `json:"status"`
}

// MarkAssetFaultyUseCase flags a unit as defective. If the unit was
// serving a customer its history entry is closed and the customer's
// equipment reference cleared; a replacement restores service.
type MarkAssetFaultyUseCase struct {
	customerRepo   customer.Repository
	assetRepo      asset.Repository
	assignmentRepo asset.AssignmentRepository
	recorder       appaudit.Recorder
	txManager      db.TransactionManager
	logger         logger.Interface
}

func NewMarkAssetFaultyUseCase(
	customerRepo customer.Repository,
	assetRepo asset.Repository,
	assignmentRepo asset.AssignmentRepository,
	recorder appaudit.Recorder,
	txManager db.TransactionManager,
	log logger.Interface,
) *MarkAssetFaultyUseCase {
	return &MarkAssetFaultyUseCase{
		customerRepo:   customerRepo,
		assetRepo:      assetRepo,
		assignmentRepo: assignmentRepo,
		recorder:       recorder,
		txManager:      txManager,
		logger:         log,
	}
}

func (uc *MarkAssetFaultyUseCase) Execute(ctx context.Context, cmd MarkAssetFaultyCommand) (*MarkAssetFaultyResult, error) {
	if cmd.AssetID == 0 {
		return nil, errors.NewValidationError("asset id is required")
	}

	var result *MarkAssetFaultyResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		a, err := uc.assetRepo.FindByID(txCtx, cmd.AssetID)
		if err != nil {
			return err
		}

		var servedCustomerID *uint
		if a.IsAssigned() && a.AssignedCustomerID() != nil {
			id := *a.AssignedCustomerID()
			servedCustomerID = &id
		}

		if err := a.MarkFaulty(); err != nil {
			return err
		}
		if err := uc.assetRepo.Update(txCtx, a); err != nil {
			return errors.NewInternalError("failed to update asset", err)
		}
		if err := closeOpenAssignment(txCtx, uc.assignmentRepo, a.ID()); err != nil {
			return err
		}

		if servedCustomerID != nil {
			cust, err := uc.customerRepo.FindByID(txCtx, *servedCustomerID)
			if err != nil {
				return err
			}
			cust.DetachAsset(a.ID())
			if err := uc.customerRepo.Update(txCtx, cust); err != nil {
				return errors.NewInternalError("failed to update customer", err)
			}
		}

		description := fmt.Sprintf("marked asset %d (%s %s) faulty", a.ID(), a.Type(), a.SerialNumber())
		if cmd.Reason != "" {
			description += ": " + cmd.Reason
		}
		if err := uc.recorder.Record(txCtx, cmd.ActorID, cmd.ActorRole, auditdomain.ActionUpdate, description); err != nil {
			return err
		}

		result = &MarkAssetFaultyResult{AssetID: a.ID(), Status: a.Status().String()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("asset marked faulty", "asset_id", cmd.AssetID)
	return result, nil
}
