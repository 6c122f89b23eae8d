package usecases

import (
	"context"

	auditapp "fibernet/internal/application/audit"
	"fibernet/internal/domain/audit"
	"fibernet/internal/shared/logger"
)

type LogoutCommand struct {
	ActorID   uint
	ActorRole string
}

// LogoutUseCase only leaves an audit trail entry. Tokens are stateless,
// so the client discards them.
type LogoutUseCase struct {
	recorder auditapp.Recorder
	logger   logger.Interface
}

func NewLogoutUseCase(recorder auditapp.Recorder, log logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{recorder: recorder, logger: log}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if err := uc.recorder.Record(ctx, cmd.ActorID, cmd.ActorRole, audit.ActionLogout, "logged out"); err != nil {
		uc.logger.Errorw("failed to record logout", "user_id", cmd.ActorID, "error", err)
		return err
	}
	return nil
}
