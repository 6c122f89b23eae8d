package deployment

import "context"

type TaskFilter struct {
	Status       Status
	TechnicianID *uint
	CustomerID   *uint
}

type TaskRepository interface {
	Create(ctx context.Context, t *Task) error
	Update(ctx context.Context, t *Task) error
	FindByID(ctx context.Context, id uint) (*Task, error)
	List(ctx context.Context, filter TaskFilter) ([]*Task, error)
	FindByCustomerID(ctx context.Context, customerID uint) ([]*Task, error)
	CountByStatus(ctx context.Context) (map[Status]int64, error)
	FindCompletedSince(ctx context.Context, days int) ([]*Task, error)
	FindOverdue(ctx context.Context) ([]*Task, error)
	FindUnassigned(ctx context.Context) ([]*Task, error)
}

type TechnicianRepository interface {
	Create(ctx context.Context, t *Technician) error
	Update(ctx context.Context, t *Technician) error
	FindByID(ctx context.Context, id uint) (*Technician, error)
	FindByUserID(ctx context.Context, userID uint) (*Technician, error)
	List(ctx context.Context) ([]*Technician, error)
}
