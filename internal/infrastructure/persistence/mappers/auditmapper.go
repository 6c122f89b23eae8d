package mappers

import (
	"fibernet/internal/domain/audit"
	"fibernet/internal/infrastructure/persistence/models"
)

type AuditMapper struct{}

func NewAuditMapper() AuditMapper {
	return AuditMapper{}
}

func (AuditMapper) ToModel(e *audit.Entry) *models.AuditModel {
	return &models.AuditModel{
		ID:          e.ID(),
		Reference:   e.Reference(),
		ActorID:     e.ActorID(),
		ActorRole:   e.ActorRole(),
		Action:      e.Action().String(),
		Description: e.Description(),
		CreatedAt:   e.CreatedAt(),
	}
}

func (AuditMapper) ToDomain(m *models.AuditModel) *audit.Entry {
	return audit.ReconstructEntry(
		m.ID,
		m.Reference,
		m.ActorID,
		m.ActorRole,
		audit.Action(m.Action),
		m.Description,
		m.CreatedAt,
	)
}
