package usecases

import (
	"context"
	"fmt"
	"time"

	appaudit "fibernet/internal/application/audit"
	auditdomain "fibernet/internal/domain/audit"
	"fibernet/internal/domain/customer"
	"fibernet/internal/domain/deployment"
	"fibernet/internal/shared/db"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type CreateTaskCommand struct {
	ActorID       uint
	ActorRole     string
	CustomerID    uint
	TechnicianID  *uint
	ScheduledDate *time.Time
	Notes         string
}

type TaskResult struct {
	ID            uint       `json:"id"`
	CustomerID    uint       `json:"customer_id"`
	TechnicianID  *uint      `json:"technician_id,omitempty"`
	Status        string     `json:"status"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	NotesLog      string     `json:"notes_log"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type CreateTaskUseCase struct {
	taskRepo       deployment.TaskRepository
	technicianRepo deployment.TechnicianRepository
	customerRepo   customer.Repository
	recorder       appaudit.Recorder
	txManager      db.TransactionManager
	logger         logger.Interface
}

func NewCreateTaskUseCase(
	taskRepo deployment.TaskRepository,
	technicianRepo deployment.TechnicianRepository,
	customerRepo customer.Repository,
	recorder appaudit.Recorder,
	txManager db.TransactionManager,
	log logger.Interface,
) *CreateTaskUseCase {
	return &CreateTaskUseCase{
		taskRepo:       taskRepo,
		technicianRepo: technicianRepo,
		customerRepo:   customerRepo,
		recorder:       recorder,
		txManager:      txManager,
		logger:         log,
	}
}

func (uc *CreateTaskUseCase) Execute(ctx context.Context, cmd CreateTaskCommand) (*TaskResult, error) {
	task, err := deployment.NewTask(cmd.CustomerID, cmd.TechnicianID, cmd.ScheduledDate, cmd.Notes)
	if err != nil {
		return nil, err
	}

	var result *TaskResult
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.customerRepo.FindByID(txCtx, cmd.CustomerID); err != nil {
			return err
		}
		if cmd.TechnicianID != nil {
			if _, err := uc.technicianRepo.FindByID(txCtx, *cmd.TechnicianID); err != nil {
				return err
			}
		}

		if err := uc.taskRepo.Create(txCtx, task); err != nil {
			return errors.NewInternalError("failed to create deployment task", err)
		}
		if err := uc.recorder.Record(txCtx, cmd.ActorID, cmd.ActorRole, auditdomain.ActionCreate,
			fmt.Sprintf("created deployment task %d for customer %d", task.ID(), cmd.CustomerID)); err != nil {
			return err
		}
		result = taskResult(task)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("deployment task created", "task_id", result.ID, "customer_id", cmd.CustomerID)
	return result, nil
}

func taskResult(t *deployment.Task) *TaskResult {
	return &TaskResult{
		ID:            t.ID(),
		CustomerID:    t.CustomerID(),
		TechnicianID:  t.TechnicianID(),
		Status:        t.Status().String(),
		ScheduledDate: t.ScheduledDate(),
		NotesLog:      t.NotesLog(),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
	}
}
