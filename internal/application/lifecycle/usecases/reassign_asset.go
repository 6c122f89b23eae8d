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

type ReassignAssetCommand struct {
	ActorID       uint
	ActorRole     string
	AssetID       uint
	NewCustomerID uint
}

type ReassignAssetResult struct {
	AssetID       uint `json:"asset_id"`
	OldCustomerID uint `json:"old_customer_id"`
	NewCustomerID uint `json:"new_customer_id"`
}

// ReassignAssetUseCase moves an assigned asset to a different customer
// without passing through the available pool.
type ReassignAssetUseCase struct {
	customerRepo   customer.Repository
	assetRepo      asset.Repository
	assignmentRepo asset.AssignmentRepository
	recorder       appaudit.Recorder
	txManager      db.TransactionManager
	logger         logger.Interface
}

func NewReassignAssetUseCase(
	customerRepo customer.Repository,
	assetRepo asset.Repository,
	assignmentRepo asset.AssignmentRepository,
	recorder appaudit.Recorder,
	txManager db.TransactionManager,
	log logger.Interface,
) *ReassignAssetUseCase {
	return &ReassignAssetUseCase{
		customerRepo:   customerRepo,
		assetRepo:      assetRepo,
		assignmentRepo: assignmentRepo,
		recorder:       recorder,
		txManager:      txManager,
		logger:         log,
	}
}

func (uc *ReassignAssetUseCase) Execute(ctx context.Context, cmd ReassignAssetCommand) (*ReassignAssetResult, error) {
	if cmd.AssetID == 0 || cmd.NewCustomerID == 0 {
		return nil, errors.NewValidationError("asset id and new customer id are required")
	}

	var result *ReassignAssetResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		a, err := uc.assetRepo.FindByID(txCtx, cmd.AssetID)
		if err != nil {
			return err
		}
		if !a.IsAssigned() || a.AssignedCustomerID() == nil {
			return errors.NewInvalidTransitionError(a.Status().String(), asset.StatusAssigned.String())
		}
		oldCustomerID := *a.AssignedCustomerID()
		if oldCustomerID == cmd.NewCustomerID {
			return errors.NewValidationError("asset is already assigned to this customer")
		}

		newCust, err := uc.customerRepo.FindByID(txCtx, cmd.NewCustomerID)
		if err != nil {
			return err
		}
		if newCust.Status() == customer.StatusInactive {
			return errors.NewValidationError("cannot reassign to an inactive customer")
		}

		oldCust, err := uc.customerRepo.FindByID(txCtx, oldCustomerID)
		if err != nil {
			return err
		}

		if err := closeOpenAssignment(txCtx, uc.assignmentRepo, a.ID()); err != nil {
			return err
		}
		if err := a.Reassign(cmd.NewCustomerID); err != nil {
			return err
		}
		if err := uc.assetRepo.Update(txCtx, a); err != nil {
			return errors.NewInternalError("failed to update asset", err)
		}
		if err := uc.assignmentRepo.Create(txCtx, asset.NewAssignment(a.ID(), cmd.NewCustomerID)); err != nil {
			return errors.NewInternalError("failed to open assignment history", err)
		}

		oldCust.DetachAsset(a.ID())
		if err := uc.customerRepo.Update(txCtx, oldCust); err != nil {
			return errors.NewInternalError("failed to update previous customer", err)
		}
		attachAssetToCustomer(newCust, a)
		if err := uc.customerRepo.Update(txCtx, newCust); err != nil {
			return errors.NewInternalError("failed to update new customer", err)
		}

		if err := uc.recorder.Record(txCtx, cmd.ActorID, cmd.ActorRole, auditdomain.ActionReassign,
			fmt.Sprintf("reassigned asset %d from customer %d to customer %d", a.ID(), oldCustomerID, cmd.NewCustomerID)); err != nil {
			return err
		}

		result = &ReassignAssetResult{
			AssetID:       a.ID(),
			OldCustomerID: oldCustomerID,
			NewCustomerID: cmd.NewCustomerID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("asset reassigned",
		"asset_id", cmd.AssetID, "old_customer_id", result.OldCustomerID, "new_customer_id", cmd.NewCustomerID)
	return result, nil
}

func attachAssetToCustomer(cust *customer.Customer, a *asset.Asset) {
	switch a.Type() {
	case asset.TypeONT:
		cust.AttachONT(a.ID())
	case asset.TypeRouter:
		cust.AttachRouter(a.ID())
	}
}
