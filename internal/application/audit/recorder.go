// Package audit wires the append-only trail into the rest of the
// application. Recorder is called inside the same transaction as the
// mutation it describes, so a failed audit write aborts the operation.
package audit

import (
	"context"

	auditdomain "fibernet/internal/domain/audit"
	"fibernet/internal/shared/errors"
)

type Recorder interface {
	Record(ctx context.Context, actorID uint, actorRole string, action auditdomain.Action, description string) error
}

type recorder struct {
	auditRepo auditdomain.Repository
}

func NewRecorder(auditRepo auditdomain.Repository) Recorder {
	return &recorder{auditRepo: auditRepo}
}

func (r *recorder) Record(ctx context.Context, actorID uint, actorRole string, action auditdomain.Action, description string) error {
	entry, err := auditdomain.NewEntry(actorID, actorRole, action, description)
	if err != nil {
		return err
	}
	if err := r.auditRepo.Create(ctx, entry); err != nil {
		return errors.NewInternalError("failed to write audit entry", err)
	}
	return nil
}
