package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fibernet/internal/domain/audit"
	"fibernet/internal/infrastructure/persistence/mappers"
	"fibernet/internal/infrastructure/persistence/models"
	"fibernet/internal/shared/biztime"
	"fibernet/internal/shared/db"
)

// AuditRepository is append-only by construction: it implements no
// update or delete operations.
type AuditRepository struct {
	db     *gorm.DB
	mapper mappers.AuditMapper
}

func NewAuditRepository(gdb *gorm.DB) audit.Repository {
	return &AuditRepository{db: gdb, mapper: mappers.NewAuditMapper()}
}

func (r *AuditRepository) Create(ctx context.Context, e *audit.Entry) error {
	model := r.mapper.ToModel(e)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create audit entry: %w", err)
	}
	e.SetID(model.ID)
	return nil
}

func (r *AuditRepository) Query(ctx context.Context, filter audit.QueryFilter, page, pageSize int) ([]*audit.Entry, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.AuditModel{})
	if filter.ActorID != nil {
		query = query.Where("actor_id = ?", *filter.ActorID)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action.String())
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	var entryModels []models.AuditModel
	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&entryModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query audit entries: %w", err)
	}
	return r.toDomainSlice(entryModels), total, nil
}

func (r *AuditRepository) FindByActorSince(ctx context.Context, actorID uint, days int) ([]*audit.Entry, error) {
	cutoff := biztime.Now().AddDate(0, 0, -days)
	var entryModels []models.AuditModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("actor_id = ? AND created_at >= ?", actorID, cutoff).
		Order("created_at DESC").
		Find(&entryModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find audit entries by actor: %w", err)
	}
	return r.toDomainSlice(entryModels), nil
}

func (r *AuditRepository) FindRecent(ctx context.Context, limit int) ([]*audit.Entry, error) {
	var entryModels []models.AuditModel
	err := db.GetTxFromContext(ctx, r.db).
		Order("created_at DESC").
		Limit(limit).
		Find(&entryModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find recent audit entries: %w", err)
	}
	return r.toDomainSlice(entryModels), nil
}

func (r *AuditRepository) CountByActionSince(ctx context.Context, days int) (map[audit.Action]int64, error) {
	cutoff := biztime.Now().AddDate(0, 0, -days)
	var rows []struct {
		Action string
		Count  int64
	}
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AuditModel{}).
		Select("action, count(*) as count").
		Where("created_at >= ?", cutoff).
		Group("action").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count audit entries by action: %w", err)
	}

	counts := make(map[audit.Action]int64, len(rows))
	for _, row := range rows {
		counts[audit.Action(row.Action)] = row.Count
	}
	return counts, nil
}

func (r *AuditRepository) CountByActorSince(ctx context.Context, days int) (map[uint]int64, error) {
	cutoff := biztime.Now().AddDate(0, 0, -days)
	var rows []struct {
		ActorID uint
		Count   int64
	}
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AuditModel{}).
		Select("actor_id, count(*) as count").
		Where("created_at >= ?", cutoff).
		Group("actor_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count audit entries by actor: %w", err)
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.ActorID] = row.Count
	}
	return counts, nil
}

func (r *AuditRepository) toDomainSlice(entryModels []models.AuditModel) []*audit.Entry {
	entries := make([]*audit.Entry, len(entryModels))
	for i := range entryModels {
		entries[i] = r.mapper.ToDomain(&entryModels[i])
	}
	return entries
}
