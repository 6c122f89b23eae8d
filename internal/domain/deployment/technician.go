package deployment

import (
	"strings"
	"time"

	"fibernet/internal/shared/biztime"
	"fibernet/internal/shared/errors"
)

// Technician is a field worker. The optional userID links the technician
// to a login account so "my tasks" queries use an explicit foreign key.
type Technician struct {
	id        uint
	name      string
	contact   string
	region    string
	userID    *uint
	createdAt time.Time
}

func NewTechnician(name, contact, region string) (*Technician, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("technician name is required")
	}
	return &Technician{
		name:      name,
		contact:   strings.TrimSpace(contact),
		region:    strings.TrimSpace(region),
		createdAt: biztime.Now(),
	}, nil
}

func ReconstructTechnician(id uint, name, contact, region string, userID *uint, createdAt time.Time) *Technician {
	return &Technician{
		id:        id,
		name:      name,
		contact:   contact,
		region:    region,
		userID:    userID,
		createdAt: createdAt,
	}
}

func (t *Technician) ID() uint             { return t.id }
func (t *Technician) Name() string         { return t.name }
func (t *Technician) Contact() string      { return t.contact }
func (t *Technician) Region() string       { return t.region }
func (t *Technician) UserID() *uint        { return t.userID }
func (t *Technician) CreatedAt() time.Time { return t.createdAt }

func (t *Technician) SetID(id uint) {
	t.id = id
}

func (t *Technician) LinkUser(userID uint) {
	t.userID = &userID
}
