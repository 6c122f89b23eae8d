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

// UpdateCustomerCommand carries the editable contact and service fields.
// Nil pointers leave the current value in place. Status and the splitter
// port binding are not editable here; those move through onboarding and
// the lifecycle operations only.
type UpdateCustomerCommand struct {
	ActorID        uint
	ActorRole      string
	CustomerID     uint
	Name           *string
	Address        *string
	Neighborhood   *string
	Plan           *string
	ConnectionType *string
}

type UpdateCustomerUseCase struct {
	customerRepo customer.Repository
	recorder     appaudit.Recorder
	txManager    db.TransactionManager
	logger       logger.Interface
}

func NewUpdateCustomerUseCase(
	customerRepo customer.Repository,
	recorder appaudit.Recorder,
	txManager db.TransactionManager,
	log logger.Interface,
) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{customerRepo: customerRepo, recorder: recorder, txManager: txManager, logger: log}
}

func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, cmd UpdateCustomerCommand) (*CustomerResult, error) {
	if cmd.Name == nil && cmd.Address == nil && cmd.Neighborhood == nil &&
		cmd.Plan == nil && cmd.ConnectionType == nil {
		return nil, errors.NewValidationError("no fields to update")
	}

	var result *CustomerResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		c, err := uc.customerRepo.FindByID(txCtx, cmd.CustomerID)
		if err != nil {
			return err
		}

		name := c.Name()
		if cmd.Name != nil {
			name = *cmd.Name
		}
		address := c.Address()
		if cmd.Address != nil {
			address = *cmd.Address
		}
		neighborhood := c.Neighborhood()
		if cmd.Neighborhood != nil {
			neighborhood = *cmd.Neighborhood
		}
		plan := c.Plan()
		if cmd.Plan != nil {
			plan = *cmd.Plan
		}
		connectionType := c.ConnectionType()
		if cmd.ConnectionType != nil {
			connectionType = customer.ConnectionType(*cmd.ConnectionType)
		}
		if err := c.UpdateDetails(name, address, neighborhood, plan, connectionType); err != nil {
			return err
		}

		if err := uc.customerRepo.Update(txCtx, c); err != nil {
			return errors.NewInternalError("failed to update customer", err)
		}
		if err := uc.recorder.Record(txCtx, cmd.ActorID, cmd.ActorRole, auditdomain.ActionUpdate,
			fmt.Sprintf("updated customer %d", c.ID())); err != nil {
			return err
		}
		result = customerResult(c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("customer updated", "customer_id", cmd.CustomerID)
	return result, nil
}
