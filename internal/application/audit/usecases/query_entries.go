package usecases

import (
	"context"
	"time"

	auditdomain "fibernet/internal/domain/audit"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type QueryEntriesCommand struct {
	ActorID  *uint
	Action   string
	From     *time.Time
	To       *time.Time
	Page     int
	PageSize int
}

type EntryResult struct {
	ID          uint      `json:"id"`
	Reference   string    `json:"reference"`
	ActorID     uint      `json:"actor_id"`
	ActorName   string    `json:"actor_name,omitempty"`
	ActorRole   string    `json:"actor_role"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type QueryEntriesResult struct {
	Entries []EntryResult `json:"entries"`
	Total   int64         `json:"total"`
}

type QueryEntriesUseCase struct {
	auditRepo auditdomain.Repository
	users     UserDirectory
	logger    logger.Interface
}

func NewQueryEntriesUseCase(auditRepo auditdomain.Repository, users UserDirectory, log logger.Interface) *QueryEntriesUseCase {
	return &QueryEntriesUseCase{auditRepo: auditRepo, users: users, logger: log}
}

func (uc *QueryEntriesUseCase) Execute(ctx context.Context, cmd QueryEntriesCommand) (*QueryEntriesResult, error) {
	if cmd.Action != "" && !auditdomain.Action(cmd.Action).IsValid() {
		return nil, errors.NewValidationError("invalid audit action: " + cmd.Action)
	}
	if cmd.Page < 1 {
		cmd.Page = 1
	}
	if cmd.PageSize < 1 || cmd.PageSize > 200 {
		cmd.PageSize = 50
	}

	filter := auditdomain.QueryFilter{
		ActorID: cmd.ActorID,
		Action:  auditdomain.Action(cmd.Action),
		From:    cmd.From,
		To:      cmd.To,
	}

	entries, total, err := uc.auditRepo.Query(ctx, filter, cmd.Page, cmd.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to query audit entries", "error", err)
		return nil, errors.NewInternalError("failed to query audit entries", err)
	}

	results, err := uc.enrich(ctx, entries)
	if err != nil {
		return nil, err
	}
	return &QueryEntriesResult{Entries: results, Total: total}, nil
}

func (uc *QueryEntriesUseCase) enrich(ctx context.Context, entries []*auditdomain.Entry) ([]EntryResult, error) {
	ids := make([]uint, 0, len(entries))
	seen := make(map[uint]struct{})
	for _, e := range entries {
		if _, ok := seen[e.ActorID()]; !ok {
			seen[e.ActorID()] = struct{}{}
			ids = append(ids, e.ActorID())
		}
	}

	names, err := uc.users.UsernamesByIDs(ctx, ids)
	if err != nil {
		return nil, errors.NewInternalError("failed to resolve actor names", err)
	}

	results := make([]EntryResult, 0, len(entries))
	for _, e := range entries {
		results = append(results, EntryResult{
			ID:          e.ID(),
			Reference:   e.Reference(),
			ActorID:     e.ActorID(),
			ActorName:   names[e.ActorID()],
			ActorRole:   e.ActorRole(),
			Action:      e.Action().String(),
			Description: e.Description(),
			CreatedAt:   e.CreatedAt(),
		})
	}
	return results, nil
}
