package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fibernet/internal/domain/deployment"
	"fibernet/internal/infrastructure/persistence/mappers"
	"fibernet/internal/infrastructure/persistence/models"
	"fibernet/internal/shared/db"
	"fibernet/internal/shared/errors"
)

type TechnicianRepository struct {
	db     *gorm.DB
	mapper mappers.TechnicianMapper
}

func NewTechnicianRepository(gdb *gorm.DB) deployment.TechnicianRepository {
	return &TechnicianRepository{db: gdb, mapper: mappers.NewTechnicianMapper()}
}

func (r *TechnicianRepository) Create(ctx context.Context, t *deployment.Technician) error {
	model := r.mapper.ToModel(t)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create technician: %w", err)
	}
	t.SetID(model.ID)
	return nil
}

func (r *TechnicianRepository) Update(ctx context.Context, t *deployment.Technician) error {
	model := r.mapper.ToModel(t)
	result := db.GetTxFromContext(ctx, r.db).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update technician: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("technician")
	}
	return nil
}

func (r *TechnicianRepository) FindByID(ctx context.Context, id uint) (*deployment.Technician, error) {
	var model models.TechnicianModel
	err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("technician")
		}
		return nil, fmt.Errorf("failed to find technician: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *TechnicianRepository) FindByUserID(ctx context.Context, userID uint) (*deployment.Technician, error) {
	var model models.TechnicianModel
	err := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("technician")
		}
		return nil, fmt.Errorf("failed to find technician by user: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *TechnicianRepository) List(ctx context.Context) ([]*deployment.Technician, error) {
	var technicianModels []models.TechnicianModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id").Find(&technicianModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list technicians: %w", err)
	}
	technicians := make([]*deployment.Technician, len(technicianModels))
	for i := range technicianModels {
		technicians[i] = r.mapper.ToDomain(&technicianModels[i])
	}
	return technicians, nil
}
