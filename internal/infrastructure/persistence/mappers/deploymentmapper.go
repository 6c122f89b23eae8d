package mappers

import (
	"fibernet/internal/domain/deployment"
	"fibernet/internal/infrastructure/persistence/models"
)

type TaskMapper struct{}

func NewTaskMapper() TaskMapper {
	return TaskMapper{}
}

func (TaskMapper) ToModel(t *deployment.Task) *models.TaskModel {
	return &models.TaskModel{
		ID:            t.ID(),
		CustomerID:    t.CustomerID(),
		TechnicianID:  t.TechnicianID(),
		Status:        t.Status().String(),
		ScheduledDate: t.ScheduledDate(),
		Notes:         t.NotesLog(),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
	}
}

func (TaskMapper) ToDomain(m *models.TaskModel) *deployment.Task {
	return deployment.ReconstructTask(
		m.ID,
		m.CustomerID,
		m.TechnicianID,
		deployment.Status(m.Status),
		m.ScheduledDate,
		m.Notes,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

type TechnicianMapper struct{}

func NewTechnicianMapper() TechnicianMapper {
	return TechnicianMapper{}
}

func (TechnicianMapper) ToModel(t *deployment.Technician) *models.TechnicianModel {
	return &models.TechnicianModel{
		ID:        t.ID(),
		Name:      t.Name(),
		Contact:   t.Contact(),
		Region:    t.Region(),
		UserID:    t.UserID(),
		CreatedAt: t.CreatedAt(),
	}
}

func (TechnicianMapper) ToDomain(m *models.TechnicianModel) *deployment.Technician {
	return deployment.ReconstructTechnician(m.ID, m.Name, m.Contact, m.Region, m.UserID, m.CreatedAt)
}
