package usecases

import (
	"context"
	"fmt"

	appaudit "fibernet/internal/application/audit"
	auditdomain "fibernet/internal/domain/audit"
	"fibernet/internal/domain/customer"
	"fibernet/internal/domain/deployment"
	"fibernet/internal/shared/authorization"
	"fibernet/internal/shared/db"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type TransitionTaskCommand struct {
	ActorID   uint
	ActorRole string
	TaskID    uint
	NewStatus string
	Notes     string
}

type TransitionTaskResult struct {
	Task           *TaskResult `json:"task"`
	CustomerStatus string      `json:"customer_status,omitempty"`
}

// TransitionTaskUseCase drives the task state machine. Completing a task
// activates its customer in the same transaction.
type TransitionTaskUseCase struct {
	taskRepo       deployment.TaskRepository
	technicianRepo deployment.TechnicianRepository
	customerRepo   customer.Repository
	recorder       appaudit.Recorder
	txManager      db.TransactionManager
	logger         logger.Interface
}

func NewTransitionTaskUseCase(
	taskRepo deployment.TaskRepository,
	technicianRepo deployment.TechnicianRepository,
	customerRepo customer.Repository,
	recorder appaudit.Recorder,
	txManager db.TransactionManager,
	log logger.Interface,
) *TransitionTaskUseCase {
	return &TransitionTaskUseCase{
		taskRepo:       taskRepo,
		technicianRepo: technicianRepo,
		customerRepo:   customerRepo,
		recorder:       recorder,
		txManager:      txManager,
		logger:         log,
	}
}

func (uc *TransitionTaskUseCase) Execute(ctx context.Context, cmd TransitionTaskCommand) (*TransitionTaskResult, error) {
	newStatus := deployment.Status(cmd.NewStatus)
	if !newStatus.IsValid() || newStatus == deployment.StatusScheduled {
		return nil, errors.NewValidationError("invalid target status: " + cmd.NewStatus)
	}

	var result *TransitionTaskResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		task, err := uc.taskRepo.FindByID(txCtx, cmd.TaskID)
		if err != nil {
			return err
		}

		if err := uc.authorize(txCtx, task, cmd); err != nil {
			return err
		}

		if cmd.Notes != "" {
			if err := task.AddNotes(cmd.Notes); err != nil {
				return err
			}
		}

		var customerStatus string
		switch newStatus {
		case deployment.StatusInProgress:
			if err := task.Start(); err != nil {
				return err
			}
		case deployment.StatusFailed:
			if err := task.Fail(); err != nil {
				return err
			}
		case deployment.StatusCompleted:
			if err := task.Complete(); err != nil {
				return err
			}
			cust, err := uc.customerRepo.FindByID(txCtx, task.CustomerID())
			if err != nil {
				return err
			}
			if err := cust.Activate(); err != nil {
				return err
			}
			if err := uc.customerRepo.Update(txCtx, cust); err != nil {
				return errors.NewInternalError("failed to activate customer", err)
			}
			customerStatus = cust.Status().String()
		}

		if err := uc.taskRepo.Update(txCtx, task); err != nil {
			return errors.NewInternalError("failed to update task", err)
		}

		action := auditdomain.ActionUpdate
		if newStatus == deployment.StatusCompleted {
			action = auditdomain.ActionComplete
		}
		if err := uc.recorder.Record(txCtx, cmd.ActorID, cmd.ActorRole, action,
			fmt.Sprintf("task %d transitioned to %s", task.ID(), newStatus)); err != nil {
			return err
		}

		result = &TransitionTaskResult{Task: taskResult(task), CustomerStatus: customerStatus}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("deployment task transitioned", "task_id", cmd.TaskID, "status", cmd.NewStatus)
	return result, nil
}

// authorize allows admins through and otherwise requires the caller to be
// the technician assigned to the task, resolved through the account link.
func (uc *TransitionTaskUseCase) authorize(ctx context.Context, task *deployment.Task, cmd TransitionTaskCommand) error {
	if authorization.UserRole(cmd.ActorRole) == authorization.RoleAdmin {
		return nil
	}
	if task.TechnicianID() == nil {
		return errors.NewForbiddenError("task has no assigned technician")
	}
	tech, err := uc.technicianRepo.FindByUserID(ctx, cmd.ActorID)
	if err != nil {
		if errors.IsNotFound(err) {
			return errors.NewForbiddenError("caller is not a registered technician")
		}
		return errors.NewInternalError("failed to resolve technician", err)
	}
	if tech.ID() != *task.TechnicianID() {
		return errors.NewForbiddenError("only the assigned technician or an admin may progress this task")
	}
	return nil
}
