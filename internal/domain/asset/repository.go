package asset

import "context"

// ListFilter narrows asset queries. Zero values mean no filtering.
type ListFilter struct {
	Type     Type
	Status   Status
	Location string
}

type Repository interface {
	Create(ctx context.Context, a *Asset) error
	Update(ctx context.Context, a *Asset) error
	FindByID(ctx context.Context, id uint) (*Asset, error)
	FindBySerialNumber(ctx context.Context, serial string) (*Asset, error)
	FindByCustomerID(ctx context.Context, customerID uint) ([]*Asset, error)
	List(ctx context.Context, filter ListFilter) ([]*Asset, error)
	CountByTypeAndStatus(ctx context.Context) (map[Type]map[Status]int64, error)
	FindAssignedBefore(ctx context.Context, thresholdDays int) ([]*Asset, error)

	// ClaimAvailable conditionally moves an Available asset to Assigned for
	// the given customer. Returns false when the asset was not Available,
	// which is how concurrent reservation races lose.
	ClaimAvailable(ctx context.Context, assetID, customerID uint) (bool, error)
}

type AssignmentRepository interface {
	Create(ctx context.Context, entry *Assignment) error
	Update(ctx context.Context, entry *Assignment) error
	FindOpenByAssetID(ctx context.Context, assetID uint) (*Assignment, error)
	FindOpenByCustomerID(ctx context.Context, customerID uint) ([]*Assignment, error)
	FindByAssetID(ctx context.Context, assetID uint) ([]*Assignment, error)
	CountAssignedSince(ctx context.Context, days int) (int64, error)
}
