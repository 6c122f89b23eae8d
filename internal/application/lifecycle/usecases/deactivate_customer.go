package usecases

import (
	"context"
	"fmt"
	"strings"

	appaudit "fibernet/internal/application/audit"
	"fibernet/internal/domain/asset"
	auditdomain "fibernet/internal/domain/audit"
	"fibernet/internal/domain/customer"
	"fibernet/internal/shared/db"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type DeactivateCustomerCommand struct {
	ActorID    uint
	ActorRole  string
	CustomerID uint
	Reason     string
}

type DeactivateCustomerResult struct {
	CustomerID      uint   `json:"customer_id"`
	Status          string `json:"status"`
	ReclaimedAssets []uint `json:"reclaimed_assets"`
}

// DeactivateCustomerUseCase is the supported removal path: it reclaims
// the customer's resources and records why. The record itself is kept
// and can be reactivated later.
type DeactivateCustomerUseCase struct {
	customerRepo   customer.Repository
	assetRepo      asset.Repository
	assignmentRepo asset.AssignmentRepository
	recorder       appaudit.Recorder
	txManager      db.TransactionManager
	logger         logger.Interface
}

func NewDeactivateCustomerUseCase(
	customerRepo customer.Repository,
	assetRepo asset.Repository,
	assignmentRepo asset.AssignmentRepository,
	recorder appaudit.Recorder,
	txManager db.TransactionManager,
	log logger.Interface,
) *DeactivateCustomerUseCase {
	return &DeactivateCustomerUseCase{
		customerRepo:   customerRepo,
		assetRepo:      assetRepo,
		assignmentRepo: assignmentRepo,
		recorder:       recorder,
		txManager:      txManager,
		logger:         log,
	}
}

func (uc *DeactivateCustomerUseCase) Execute(ctx context.Context, cmd DeactivateCustomerCommand) (*DeactivateCustomerResult, error) {
	if cmd.CustomerID == 0 {
		return nil, errors.NewValidationError("customer id is required")
	}
	reason := strings.TrimSpace(cmd.Reason)
	if reason == "" {
		return nil, errors.NewValidationError("deactivation reason is required")
	}

	var result *DeactivateCustomerResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		cust, err := uc.customerRepo.FindByID(txCtx, cmd.CustomerID)
		if err != nil {
			return err
		}
		if cust.Status() == customer.StatusInactive {
			return errors.NewInvalidTransitionError(cust.Status().String(), customer.StatusInactive.String())
		}

		released, _, err := releaseCustomerResources(txCtx, uc.customerRepo, uc.assetRepo, uc.assignmentRepo, cust)
		if err != nil {
			return err
		}

		if err := uc.recorder.Record(txCtx, cmd.ActorID, cmd.ActorRole, auditdomain.ActionDeactivate,
			fmt.Sprintf("deactivated customer %d: %s", cust.ID(), reason)); err != nil {
			return err
		}

		result = &DeactivateCustomerResult{
			CustomerID:      cust.ID(),
			Status:          cust.Status().String(),
			ReclaimedAssets: released,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("customer deactivated", "customer_id", cmd.CustomerID, "reason", reason)
	return result, nil
}
