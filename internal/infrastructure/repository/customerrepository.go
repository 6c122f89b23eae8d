package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fibernet/internal/domain/customer"
	"fibernet/internal/infrastructure/persistence/mappers"
	"fibernet/internal/infrastructure/persistence/models"
	"fibernet/internal/shared/biztime"
	"fibernet/internal/shared/db"
	"fibernet/internal/shared/errors"
)

type CustomerRepository struct {
	db     *gorm.DB
	mapper mappers.CustomerMapper
}

func NewCustomerRepository(gdb *gorm.DB) customer.Repository {
	return &CustomerRepository{db: gdb, mapper: mappers.NewCustomerMapper()}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	model := r.mapper.ToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		// Surface duplicate key errors untouched so callers can map the
		// (splitter_id, assigned_port) race to a port conflict.
		return err
	}
	c.SetID(model.ID)
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	model := r.mapper.ToModel(c)
	result := db.GetTxFromContext(ctx, r.db).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("customer")
	}
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model models.CustomerModel
	err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("customer")
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *CustomerRepository) List(ctx context.Context, filter customer.ListFilter) ([]*customer.Customer, error) {
	var customerModels []models.CustomerModel
	if err := r.applyFilter(ctx, filter).Order("id").Find(&customerModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return r.toDomainSlice(customerModels), nil
}

func (r *CustomerRepository) ListPaged(ctx context.Context, filter customer.ListFilter, page, pageSize int) ([]*customer.Customer, int64, error) {
	query := r.applyFilter(ctx, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	var customerModels []models.CustomerModel
	err := query.Order("id").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&customerModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}
	return r.toDomainSlice(customerModels), total, nil
}

func (r *CustomerRepository) CountByStatus(ctx context.Context) (map[customer.Status]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.CustomerModel{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	counts := make(map[customer.Status]int64, len(rows))
	for _, row := range rows {
		counts[customer.Status(row.Status)] = row.Count
	}
	return counts, nil
}

func (r *CustomerRepository) FindCreatedSince(ctx context.Context, days int) ([]*customer.Customer, error) {
	cutoff := biztime.Now().AddDate(0, 0, -days)
	var customerModels []models.CustomerModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("created_at >= ?", cutoff).
		Order("created_at DESC").
		Find(&customerModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find recent customers: %w", err)
	}
	return r.toDomainSlice(customerModels), nil
}

func (r *CustomerRepository) FindOccupiedPorts(ctx context.Context, splitterID uint) ([]int, error) {
	var ports []int
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.CustomerModel{}).
		Where("splitter_id = ? AND assigned_port IS NOT NULL AND status IN ?",
			splitterID, []string{customer.StatusPending.String(), customer.StatusActive.String()}).
		Order("assigned_port").
		Pluck("assigned_port", &ports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find occupied ports: %w", err)
	}
	return ports, nil
}

func (r *CustomerRepository) FindBySplitterID(ctx context.Context, splitterID uint) ([]*customer.Customer, error) {
	var customerModels []models.CustomerModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("splitter_id = ?", splitterID).
		Order("assigned_port").
		Find(&customerModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find customers by splitter: %w", err)
	}
	return r.toDomainSlice(customerModels), nil
}

func (r *CustomerRepository) applyFilter(ctx context.Context, filter customer.ListFilter) *gorm.DB {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.CustomerModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Neighborhood != "" {
		query = query.Where("neighborhood = ?", filter.Neighborhood)
	}
	if filter.SplitterID != nil {
		query = query.Where("splitter_id = ?", *filter.SplitterID)
	}
	return query
}

func (r *CustomerRepository) toDomainSlice(customerModels []models.CustomerModel) []*customer.Customer {
	customers := make([]*customer.Customer, len(customerModels))
	for i := range customerModels {
		customers[i] = r.mapper.ToDomain(&customerModels[i])
	}
	return customers
}
