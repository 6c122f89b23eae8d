package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fibernet/internal/domain/asset"
	"fibernet/internal/infrastructure/persistence/mappers"
	"fibernet/internal/infrastructure/persistence/models"
	"fibernet/internal/shared/biztime"
	"fibernet/internal/shared/db"
	"fibernet/internal/shared/errors"
)

type AssignmentRepository struct {
	db     *gorm.DB
	mapper mappers.AssignmentMapper
}

func NewAssignmentRepository(gdb *gorm.DB) asset.AssignmentRepository {
	return &AssignmentRepository{db: gdb, mapper: mappers.NewAssignmentMapper()}
}

func (r *AssignmentRepository) Create(ctx context.Context, entry *asset.Assignment) error {
	model := r.mapper.ToModel(entry)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create assignment entry: %w", err)
	}
	entry.SetID(model.ID)
	return nil
}

func (r *AssignmentRepository) Update(ctx context.Context, entry *asset.Assignment) error {
	model := r.mapper.ToModel(entry)
	result := db.GetTxFromContext(ctx, r.db).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update assignment entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("assignment entry")
	}
	return nil
}

func (r *AssignmentRepository) FindOpenByAssetID(ctx context.Context, assetID uint) (*asset.Assignment, error) {
	var model models.AssignmentModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("asset_id = ? AND unassigned_on IS NULL", assetID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("open assignment entry")
		}
		return nil, fmt.Errorf("failed to find open assignment entry: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *AssignmentRepository) FindOpenByCustomerID(ctx context.Context, customerID uint) ([]*asset.Assignment, error) {
	var entryModels []models.AssignmentModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("customer_id = ? AND unassigned_on IS NULL", customerID).
		Order("assigned_on DESC").
		Find(&entryModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find open assignment entries: %w", err)
	}
	return r.toDomainSlice(entryModels), nil
}

// FindByAssetID returns the full custody history, most recent first.
func (r *AssignmentRepository) FindByAssetID(ctx context.Context, assetID uint) ([]*asset.Assignment, error) {
	var entryModels []models.AssignmentModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("asset_id = ?", assetID).
		Order("assigned_on DESC").
		Find(&entryModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find assignment history: %w", err)
	}
	return r.toDomainSlice(entryModels), nil
}

func (r *AssignmentRepository) CountAssignedSince(ctx context.Context, days int) (int64, error) {
	cutoff := biztime.Now().AddDate(0, 0, -days)
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AssignmentModel{}).
		Where("assigned_on >= ?", cutoff).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count recent assignments: %w", err)
	}
	return count, nil
}

func (r *AssignmentRepository) toDomainSlice(entryModels []models.AssignmentModel) []*asset.Assignment {
	entries := make([]*asset.Assignment, len(entryModels))
	for i := range entryModels {
		entries[i] = r.mapper.ToDomain(&entryModels[i])
	}
	return entries
}
