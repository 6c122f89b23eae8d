// Package usecases implements the lifecycle operations that move assets
// and customers between states: reclaim, reassign, replace, retire,
// deactivate and reactivate. Each operation is one transaction with one
// audit entry.
package usecases

import (
	"context"
	"fmt"

	appaudit "fibernet/internal/application/audit"
	"fibernet/internal/domain/asset"
	auditdomain "fibernet/internal/domain/audit"
	"fibernet/internal/domain/customer"
	"fibernet/internal/shared/db"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type ReclaimAssetsCommand struct {
	ActorID    uint
	ActorRole  string
	CustomerID uint
}

type ReclaimAssetsResult struct {
	CustomerID      uint   `json:"customer_id"`
	CustomerStatus  string `json:"customer_status"`
	ReclaimedAssets []uint `json:"reclaimed_assets"`
	ReleasedPort    *int   `json:"released_port,omitempty"`
}

// ReclaimAssetsUseCase returns every asset bound to a customer to the
// available pool, frees the splitter port and deactivates the customer.
type ReclaimAssetsUseCase struct {
	customerRepo   customer.Repository
	assetRepo      asset.Repository
	assignmentRepo asset.AssignmentRepository
	recorder       appaudit.Recorder
	txManager      db.TransactionManager
	logger         logger.Interface
}

func NewReclaimAssetsUseCase(
	customerRepo customer.Repository,
	assetRepo asset.Repository,
	assignmentRepo asset.AssignmentRepository,
	recorder appaudit.Recorder,
	txManager db.TransactionManager,
	log logger.Interface,
) *ReclaimAssetsUseCase {
	return &ReclaimAssetsUseCase{
		customerRepo:   customerRepo,
		assetRepo:      assetRepo,
		assignmentRepo: assignmentRepo,
		recorder:       recorder,
		txManager:      txManager,
		logger:         log,
	}
}

func (uc *ReclaimAssetsUseCase) Execute(ctx context.Context, cmd ReclaimAssetsCommand) (*ReclaimAssetsResult, error) {
	if cmd.CustomerID == 0 {
		return nil, errors.NewValidationError("customer id is required")
	}

	var result *ReclaimAssetsResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		cust, err := uc.customerRepo.FindByID(txCtx, cmd.CustomerID)
		if err != nil {
			return err
		}

		released, port, err := releaseCustomerResources(txCtx, uc.customerRepo, uc.assetRepo, uc.assignmentRepo, cust)
		if err != nil {
			return err
		}

		if err := uc.recorder.Record(txCtx, cmd.ActorID, cmd.ActorRole, auditdomain.ActionReclaim,
			fmt.Sprintf("reclaimed %d assets from customer %d", len(released), cust.ID())); err != nil {
			return err
		}

		result = &ReclaimAssetsResult{
			CustomerID:      cust.ID(),
			CustomerStatus:  cust.Status().String(),
			ReclaimedAssets: released,
			ReleasedPort:    port,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("assets reclaimed", "customer_id", cmd.CustomerID, "count", len(result.ReclaimedAssets))
	return result, nil
}

// releaseCustomerResources is the shared reclaim path used by both the
// reclaim and deactivate operations. It is idempotent with respect to
// assets that were already released.
func releaseCustomerResources(
	ctx context.Context,
	customerRepo customer.Repository,
	assetRepo asset.Repository,
	assignmentRepo asset.AssignmentRepository,
	cust *customer.Customer,
) (releasedAssets []uint, releasedPort *int, err error) {
	assets, err := assetRepo.FindByCustomerID(ctx, cust.ID())
	if err != nil {
		return nil, nil, errors.NewInternalError("failed to load customer assets", err)
	}

	released := make([]uint, 0, len(assets))
	for _, a := range assets {
		if !a.IsAssigned() {
			continue
		}
		if err := a.Release(); err != nil {
			return nil, nil, err
		}
		if err := assetRepo.Update(ctx, a); err != nil {
			return nil, nil, errors.NewInternalError("failed to release asset", err)
		}
		if err := closeOpenAssignment(ctx, assignmentRepo, a.ID()); err != nil {
			return nil, nil, err
		}
		released = append(released, a.ID())
	}

	port := cust.AssignedPort()
	cust.ReleaseNetwork()
	if cust.Status() != customer.StatusInactive {
		if err := cust.Deactivate(); err != nil {
			return nil, nil, err
		}
	}
	if err := customerRepo.Update(ctx, cust); err != nil {
		return nil, nil, errors.NewInternalError("failed to update customer", err)
	}

	return released, port, nil
}

// closeOpenAssignment stamps the release time on the asset's open history
// entry. A missing entry is not an error so reclaims stay idempotent.
func closeOpenAssignment(ctx context.Context, assignmentRepo asset.AssignmentRepository, assetID uint) error {
	entry, err := assignmentRepo.FindOpenByAssetID(ctx, assetID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil
		}
		return errors.NewInternalError("failed to load assignment history", err)
	}
	if err := entry.Close(); err != nil {
		return err
	}
	if err := assignmentRepo.Update(ctx, entry); err != nil {
		return errors.NewInternalError("failed to close assignment history", err)
	}
	return nil
}
