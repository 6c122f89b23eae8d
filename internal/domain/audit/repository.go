package audit

import (
	"context"
	"time"
)

type QueryFilter struct {
	ActorID *uint
	Action  Action
	From    *time.Time
	To      *time.Time
}

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	Query(ctx context.Context, filter QueryFilter, page, pageSize int) ([]*Entry, int64, error)
	FindByActorSince(ctx context.Context, actorID uint, days int) ([]*Entry, error)
	FindRecent(ctx context.Context, limit int) ([]*Entry, error)
	CountByActionSince(ctx context.Context, days int) (map[Action]int64, error)
	CountByActorSince(ctx context.Context, days int) (map[uint]int64, error)
}
