package usecases

import (
	"context"
	"fmt"

	appaudit "fibernet/internal/application/audit"
	auditdomain "fibernet/internal/domain/audit"
	"fibernet/internal/domain/customer"
	"fibernet/internal/shared/db"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type ReactivateCustomerCommand struct {
	ActorID    uint
	ActorRole  string
	CustomerID uint
}

type ReactivateCustomerResult struct {
	CustomerID uint   `json:"customer_id"`
	Status     string `json:"status"`
}

// ReactivateCustomerUseCase re-enters an inactive customer at Pending. A
// fresh onboarding and deployment task are needed before it goes Active.
type ReactivateCustomerUseCase struct {
	customerRepo customer.Repository
	recorder     appaudit.Recorder
	txManager    db.TransactionManager
	logger       logger.Interface
}

func NewReactivateCustomerUseCase(
	customerRepo customer.Repository,
	recorder appaudit.Recorder,
	txManager db.TransactionManager,
	log logger.Interface,
) *ReactivateCustomerUseCase {
	return &ReactivateCustomerUseCase{customerRepo: customerRepo, recorder: recorder, txManager: txManager, logger: log}
}

func (uc *ReactivateCustomerUseCase) Execute(ctx context.Context, cmd ReactivateCustomerCommand) (*ReactivateCustomerResult, error) {
	if cmd.CustomerID == 0 {
		return nil, errors.NewValidationError("customer id is required")
	}

	var result *ReactivateCustomerResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		cust, err := uc.customerRepo.FindByID(txCtx, cmd.CustomerID)
		if err != nil {
			return err
		}
		if err := cust.Reactivate(); err != nil {
			return err
		}
		if err := uc.customerRepo.Update(txCtx, cust); err != nil {
			return errors.NewInternalError("failed to update customer", err)
		}

		if err := uc.recorder.Record(txCtx, cmd.ActorID, cmd.ActorRole, auditdomain.ActionActivate,
			fmt.Sprintf("reactivated customer %d", cust.ID())); err != nil {
			return err
		}

		result = &ReactivateCustomerResult{CustomerID: cust.ID(), Status: cust.Status().String()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("customer reactivated", "customer_id", cmd.CustomerID)
	return result, nil
}
