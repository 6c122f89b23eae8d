package usecases

import (
	"context"
	"fmt"
	"time"

	appaudit "fibernet/internal/application/audit"
	"fibernet/internal/domain/asset"
	auditdomain "fibernet/internal/domain/audit"
	"fibernet/internal/domain/customer"
	"fibernet/internal/domain/topology"
	"fibernet/internal/shared/db"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type OnboardCustomerCommand struct {
	ActorID   uint
	ActorRole string

	Name              string
	Address           string
	Neighborhood      string
	Plan              string
	ConnectionType    string
	SplitterID        uint
	Port              int
	ONTAssetID        uint
	RouterAssetID     uint
	FiberLengthMeters *float64
}

type OnboardCustomerResult struct {
	CustomerID    uint      `json:"customer_id"`
	Name          string    `json:"name"`
	Status        string    `json:"status"`
	SplitterID    uint      `json:"splitter_id"`
	Port          int       `json:"port"`
	ONTAssetID    uint      `json:"ont_asset_id"`
	RouterAssetID uint      `json:"router_asset_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// OnboardCustomerUseCase creates a customer together with its port and
// equipment bindings as one atomic unit. Any failure, including the
// audit write, rolls everything back.
type OnboardCustomerUseCase struct {
	customerRepo   customer.Repository
	splitterRepo   topology.SplitterRepository
	assetRepo      asset.Repository
	assignmentRepo asset.AssignmentRepository
	recorder       appaudit.Recorder
	txManager      db.TransactionManager
	logger         logger.Interface
}

func NewOnboardCustomerUseCase(
	customerRepo customer.Repository,
	splitterRepo topology.SplitterRepository,
	assetRepo asset.Repository,
	assignmentRepo asset.AssignmentRepository,
	recorder appaudit.Recorder,
	txManager db.TransactionManager,
	log logger.Interface,
) *OnboardCustomerUseCase {
	return &OnboardCustomerUseCase{
		customerRepo:   customerRepo,
		splitterRepo:   splitterRepo,
		assetRepo:      assetRepo,
		assignmentRepo: assignmentRepo,
		recorder:       recorder,
		txManager:      txManager,
		logger:         log,
	}
}

func (uc *OnboardCustomerUseCase) Execute(ctx context.Context, cmd OnboardCustomerCommand) (*OnboardCustomerResult, error) {
	cust, err := customer.NewCustomer(cmd.Name, cmd.Address, cmd.Neighborhood, cmd.Plan, customer.ConnectionType(cmd.ConnectionType))
	if err != nil {
		return nil, err
	}
	if cmd.ONTAssetID == 0 || cmd.RouterAssetID == 0 {
		return nil, errors.NewValidationError("onboarding requires both an ont and a router asset")
	}

	var result *OnboardCustomerResult
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		splitter, err := uc.splitterRepo.FindByID(txCtx, cmd.SplitterID)
		if err != nil {
			return err
		}
		if !splitter.ValidPort(cmd.Port) {
			return errors.NewPortConflictError(cmd.SplitterID, cmd.Port)
		}

		occupied, err := uc.customerRepo.FindOccupiedPorts(txCtx, cmd.SplitterID)
		if err != nil {
			return errors.NewInternalError("failed to check port occupancy", err)
		}
		for _, p := range occupied {
			if p == cmd.Port {
				return errors.NewPortConflictError(cmd.SplitterID, cmd.Port)
			}
		}

		if err := uc.checkAssetType(txCtx, cmd.ONTAssetID, asset.TypeONT); err != nil {
			return err
		}
		if err := uc.checkAssetType(txCtx, cmd.RouterAssetID, asset.TypeRouter); err != nil {
			return err
		}

		cust.BindNetwork(cmd.SplitterID, cmd.Port, cmd.ONTAssetID, cmd.RouterAssetID, cmd.FiberLengthMeters)
		if err := uc.customerRepo.Create(txCtx, cust); err != nil {
			// The unique index on (splitter_id, assigned_port) is the
			// arbiter when two onboardings race for the same port.
			if errors.IsDuplicateKeyError(err) {
				return errors.NewPortConflictError(cmd.SplitterID, cmd.Port)
			}
			return errors.NewInternalError("failed to create customer", err)
		}

		for _, assetID := range []uint{cmd.ONTAssetID, cmd.RouterAssetID} {
			if err := uc.claimAsset(txCtx, assetID, cust.ID()); err != nil {
				return err
			}
		}

		if err := uc.recorder.Record(txCtx, cmd.ActorID, cmd.ActorRole, auditdomain.ActionCreate,
			fmt.Sprintf("onboarded customer %q (id=%d) on splitter %d port %d with ont %d and router %d",
				cust.Name(), cust.ID(), cmd.SplitterID, cmd.Port, cmd.ONTAssetID, cmd.RouterAssetID)); err != nil {
			return err
		}

		result = &OnboardCustomerResult{
			CustomerID:    cust.ID(),
			Name:          cust.Name(),
			Status:        cust.Status().String(),
			SplitterID:    cmd.SplitterID,
			Port:          cmd.Port,
			ONTAssetID:    cmd.ONTAssetID,
			RouterAssetID: cmd.RouterAssetID,
			CreatedAt:     cust.CreatedAt(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("customer onboarded",
		"customer_id", result.CustomerID, "splitter_id", cmd.SplitterID, "port", cmd.Port)
	return result, nil
}

func (uc *OnboardCustomerUseCase) checkAssetType(ctx context.Context, assetID uint, want asset.Type) error {
	a, err := uc.assetRepo.FindByID(ctx, assetID)
	if err != nil {
		return err
	}
	if a.Type() != want {
		return errors.NewValidationError(fmt.Sprintf("asset %d is a %s, expected %s", assetID, a.Type(), want))
	}
	if !a.IsAvailable() {
		return errors.NewAssetNotAvailableError(assetID)
	}
	return nil
}

// claimAsset reserves the asset with a conditional update so concurrent
// onboardings cannot both take it, then opens its history entry.
func (uc *OnboardCustomerUseCase) claimAsset(ctx context.Context, assetID, customerID uint) error {
	claimed, err := uc.assetRepo.ClaimAvailable(ctx, assetID, customerID)
	if err != nil {
		return errors.NewInternalError("failed to reserve asset", err)
	}
	if !claimed {
		return errors.NewAssetNotAvailableError(assetID)
	}
	entry := asset.NewAssignment(assetID, customerID)
	if err := uc.assignmentRepo.Create(ctx, entry); err != nil {
		return errors.NewInternalError("failed to open assignment history", err)
	}
	return nil
}
