// Package audit provides the append-only trail of every mutating
// operation. Entries are written in the same transaction as the change
// they describe and are never updated or deleted.
package audit

import (
	"time"

	"github.com/google/uuid"

	"fibernet/internal/shared/biztime"
	"fibernet/internal/shared/errors"
)

type Entry struct {
	id          uint
	reference   string
	actorID     uint
	actorRole   string
	action      Action
	description string
	createdAt   time.Time
}

func NewEntry(actorID uint, actorRole string, action Action, description string) (*Entry, error) {
	if !action.IsValid() {
		return nil, errors.NewValidationError("invalid audit action: " + string(action))
	}
	if description == "" {
		return nil, errors.NewValidationError("audit description is required")
	}
	return &Entry{
		reference:   uuid.NewString(),
		actorID:     actorID,
		actorRole:   actorRole,
		action:      action,
		description: description,
		createdAt:   biztime.Now(),
	}, nil
}

func ReconstructEntry(id uint, reference string, actorID uint, actorRole string, action Action, description string, createdAt time.Time) *Entry {
	return &Entry{
		id:          id,
		reference:   reference,
		actorID:     actorID,
		actorRole:   actorRole,
		action:      action,
		description: description,
		createdAt:   createdAt,
	}
}

func (e *Entry) ID() uint             { return e.id }
func (e *Entry) Reference() string    { return e.reference }
func (e *Entry) ActorID() uint        { return e.actorID }
func (e *Entry) ActorRole() string    { return e.actorRole }
func (e *Entry) Action() Action       { return e.action }
func (e *Entry) Description() string  { return e.description }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }

func (e *Entry) SetID(id uint) {
	e.id = id
}
