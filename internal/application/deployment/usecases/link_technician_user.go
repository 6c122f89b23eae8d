package usecases

import (
	"context"
	"fmt"

	appaudit "fibernet/internal/application/audit"
	auditdomain "fibernet/internal/domain/audit"
	"fibernet/internal/domain/deployment"
	"fibernet/internal/domain/user"
	"fibernet/internal/shared/authorization"
	"fibernet/internal/shared/db"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type LinkTechnicianUserCommand struct {
	ActorID      uint
	ActorRole    string
	TechnicianID uint
	UserID       uint
}

// LinkTechnicianUserUseCase ties a technician record to a login account.
// Task ownership checks then resolve through this explicit foreign key
// instead of matching on display names.
type LinkTechnicianUserUseCase struct {
	technicianRepo deployment.TechnicianRepository
	userRepo       user.Repository
	recorder       appaudit.Recorder
	txManager      db.TransactionManager
	logger         logger.Interface
}

func NewLinkTechnicianUserUseCase(
	technicianRepo deployment.TechnicianRepository,
	userRepo user.Repository,
	recorder appaudit.Recorder,
	txManager db.TransactionManager,
	log logger.Interface,
) *LinkTechnicianUserUseCase {
	return &LinkTechnicianUserUseCase{
		technicianRepo: technicianRepo,
		userRepo:       userRepo,
		recorder:       recorder,
		txManager:      txManager,
		logger:         log,
	}
}

func (uc *LinkTechnicianUserUseCase) Execute(ctx context.Context, cmd LinkTechnicianUserCommand) (*TechnicianResult, error) {
	if cmd.TechnicianID == 0 || cmd.UserID == 0 {
		return nil, errors.NewValidationError("technician id and user id are required")
	}

	var result *TechnicianResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		tech, err := uc.technicianRepo.FindByID(txCtx, cmd.TechnicianID)
		if err != nil {
			return err
		}
		account, err := uc.userRepo.FindByID(txCtx, cmd.UserID)
		if err != nil {
			return err
		}
		if account.Role() != authorization.RoleTechnician {
			return errors.NewValidationError("linked account must hold the Technician role")
		}

		tech.LinkUser(cmd.UserID)
		if err := uc.technicianRepo.Update(txCtx, tech); err != nil {
			return errors.NewInternalError("failed to link technician account", err)
		}
		if err := uc.recorder.Record(txCtx, cmd.ActorID, cmd.ActorRole, auditdomain.ActionUpdate,
			fmt.Sprintf("linked technician %d to user %d", tech.ID(), cmd.UserID)); err != nil {
			return err
		}
		result = technicianResult(tech)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("technician linked to account", "technician_id", cmd.TechnicianID, "user_id", cmd.UserID)
	return result, nil
}
