package usecases

import (
	"context"

	"fibernet/internal/domain/asset"
	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
)

type ListAssetsCommand struct {
	Type     string
	Status   string
	Location string
}

type ListAssetsResult struct {
	Assets []AssetResult `json:"assets"`
}

type ListAssetsUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewListAssetsUseCase(assetRepo asset.Repository, log logger.Interface) *ListAssetsUseCase {
	return &ListAssetsUseCase{assetRepo: assetRepo, logger: log}
}

func (uc *ListAssetsUseCase) Execute(ctx context.Context, cmd ListAssetsCommand) (*ListAssetsResult, error) {
	if cmd.Type != "" && !asset.Type(cmd.Type).IsValid() {
		return nil, errors.NewValidationError("invalid asset type: " + cmd.Type)
	}
	if cmd.Status != "" && !asset.Status(cmd.Status).IsValid() {
		return nil, errors.NewValidationError("invalid asset status: " + cmd.Status)
	}

	assets, err := uc.assetRepo.List(ctx, asset.ListFilter{
		Type:     asset.Type(cmd.Type),
		Status:   asset.Status(cmd.Status),
		Location: cmd.Location,
	})
	if err != nil {
		uc.logger.Errorw("failed to list assets", "error", err)
		return nil, errors.NewInternalError("failed to list assets", err)
	}

	results := make([]AssetResult, 0, len(assets))
	for _, a := range assets {
		results = append(results, *assetResult(a))
	}
	return &ListAssetsResult{Assets: results}, nil
}

type GetAssetCommand struct {
	AssetID uint
}

type GetAssetUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewGetAssetUseCase(assetRepo asset.Repository, log logger.Interface) *GetAssetUseCase {
	return &GetAssetUseCase{assetRepo: assetRepo, logger: log}
}

func (uc *GetAssetUseCase) Execute(ctx context.Context, cmd GetAssetCommand) (*AssetResult, error) {
	a, err := uc.assetRepo.FindByID(ctx, cmd.AssetID)
	if err != nil {
		return nil, err
	}
	return assetResult(a), nil
}
