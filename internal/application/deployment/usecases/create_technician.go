// Package usecases implements deployment task and technician operations.
package usecases

import (
	"context"
	"fmt"

	appaudit "fibernet/internal/application/audit"
	auditdomain "fibernet/internal/domain/audit"
	"fibernet/internal/domain/deployment"
	"fibernet/internal/shared/db"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type CreateTechnicianCommand struct {
	ActorID   uint
	ActorRole string
	Name      string
	Contact   string
	Region    string
}

type TechnicianResult struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Region  string `json:"region"`
	UserID  *uint  `json:"user_id,omitempty"`
}

type CreateTechnicianUseCase struct {
	technicianRepo deployment.TechnicianRepository
	recorder       appaudit.Recorder
	txManager      db.TransactionManager
	logger         logger.Interface
}

func NewCreateTechnicianUseCase(
	technicianRepo deployment.TechnicianRepository,
	recorder appaudit.Recorder,
	txManager db.TransactionManager,
	log logger.Interface,
) *CreateTechnicianUseCase {
	return &CreateTechnicianUseCase{technicianRepo: technicianRepo, recorder: recorder, txManager: txManager, logger: log}
}

func (uc *CreateTechnicianUseCase) Execute(ctx context.Context, cmd CreateTechnicianCommand) (*TechnicianResult, error) {
	tech, err := deployment.NewTechnician(cmd.Name, cmd.Contact, cmd.Region)
	if err != nil {
		return nil, err
	}

	var result *TechnicianResult
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.technicianRepo.Create(txCtx, tech); err != nil {
			return errors.NewInternalError("failed to create technician", err)
		}
		if err := uc.recorder.Record(txCtx, cmd.ActorID, cmd.ActorRole, auditdomain.ActionCreate,
			fmt.Sprintf("created technician %q (id=%d)", tech.Name(), tech.ID())); err != nil {
			return err
		}
		result = technicianResult(tech)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("technician created", "technician_id", result.ID)
	return result, nil
}

func technicianResult(t *deployment.Technician) *TechnicianResult {
	return &TechnicianResult{
		ID:      t.ID(),
		Name:    t.Name(),
		Contact: t.Contact(),
		Region:  t.Region(),
		UserID:  t.UserID(),
	}
}
