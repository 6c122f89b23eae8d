// Package usecases implements asset registry operations.
package usecases

import (
	"context"
	"fmt"
	"time"

	appaudit "fibernet/internal/application/audit"
	"fibernet/internal/domain/asset"
	auditdomain "fibernet/internal/domain/audit"
	"fibernet/internal/shared/db"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type RegisterAssetCommand struct {
	ActorID      uint
	ActorRole    string
	Type         string
	Model        string
	SerialNumber string
	Location     string
}

type AssetResult struct {
	ID                 uint       `json:"id"`
	Type               string     `json:"type"`
	Model              string     `json:"model"`
	SerialNumber       string     `json:"serial_number"`
	Status             string     `json:"status"`
	Location           string     `json:"location,omitempty"`
	AssignedCustomerID *uint      `json:"assigned_customer_id,omitempty"`
	AssignedAt         *time.Time `json:"assigned_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type RegisterAssetUseCase struct {
	assetRepo asset.Repository
	recorder  appaudit.Recorder
	txManager db.TransactionManager
	logger    logger.Interface
}

func NewRegisterAssetUseCase(
	assetRepo asset.Repository,
	recorder appaudit.Recorder,
	txManager db.TransactionManager,
	log logger.Interface,
) *RegisterAssetUseCase {
	return &RegisterAssetUseCase{assetRepo: assetRepo, recorder: recorder, txManager: txManager, logger: log}
}

func (uc *RegisterAssetUseCase) Execute(ctx context.Context, cmd RegisterAssetCommand) (*AssetResult, error) {
	a, err := asset.NewAsset(asset.Type(cmd.Type), cmd.Model, cmd.SerialNumber, cmd.Location)
	if err != nil {
		return nil, err
	}

	var result *AssetResult
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.assetRepo.Create(txCtx, a); err != nil {
			// Serial numbers carry a unique constraint.
			if errors.IsDuplicateKeyError(err) {
				return errors.NewDuplicateSerialError(a.SerialNumber())
			}
			return errors.NewInternalError("failed to register asset", err)
		}
		if err := uc.recorder.Record(txCtx, cmd.ActorID, cmd.ActorRole, auditdomain.ActionCreate,
			fmt.Sprintf("registered %s asset %q (id=%d)", a.Type(), a.SerialNumber(), a.ID())); err != nil {
			return err
		}
		result = assetResult(a)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("asset registered", "asset_id", result.ID, "type", cmd.Type, "serial", cmd.SerialNumber)
	return result, nil
}

func assetResult(a *asset.Asset) *AssetResult {
	return &AssetResult{
		ID:                 a.ID(),
		Type:               a.Type().String(),
		Model:              a.Model(),
		SerialNumber:       a.SerialNumber(),
		Status:             a.Status().String(),
		Location:           a.Location(),
		AssignedCustomerID: a.AssignedCustomerID(),
		AssignedAt:         a.AssignedAt(),
		CreatedAt:          a.CreatedAt(),
	}
}
