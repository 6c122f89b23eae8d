package customer

import "context"

type ListFilter struct {
	Status       Status
	Neighborhood string
	SplitterID   *uint
}

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	Update(ctx context.Context, c *Customer) error
	FindByID(ctx context.Context, id uint) (*Customer, error)
	List(ctx context.Context, filter ListFilter) ([]*Customer, error)
	ListPaged(ctx context.Context, filter ListFilter, page, pageSize int) ([]*Customer, int64, error)
	CountByStatus(ctx context.Context) (map[Status]int64, error)
	FindCreatedSince(ctx context.Context, days int) ([]*Customer, error)

	// FindOccupiedPorts returns the ports on a splitter held by customers
	// whose status keeps the port occupied (Pending or Active).
	FindOccupiedPorts(ctx context.Context, splitterID uint) ([]int, error)
	FindBySplitterID(ctx context.Context, splitterID uint) ([]*Customer, error)
}
