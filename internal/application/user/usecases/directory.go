package usecases

import (
	"context"

	"fibernet/internal/domain/user"
)

// Directory resolves user ids to usernames for display, e.g. when
// rendering the audit trail.
type Directory struct {
	userRepo user.Repository
}

func NewDirectory(userRepo user.Repository) *Directory {
	return &Directory{userRepo: userRepo}
}

func (d *Directory) UsernamesByIDs(ctx context.Context, ids []uint) (map[uint]string, error) {
	if len(ids) == 0 {
		return map[uint]string{}, nil
	}
	users, err := d.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(users))
	for id, u := range users {
		names[id] = u.Username()
	}
	return names, nil
}
