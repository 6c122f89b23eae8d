package usecases

import "context"

// UserDirectory resolves actor ids to display names for enriched audit
// output.
type UserDirectory interface {
	UsernamesByIDs(ctx context.Context, ids []uint) (map[uint]string, error)
}
