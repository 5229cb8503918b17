package usecase

import (
	"context"

	"coshare/internal/domain/entity"
)

// SyndicateUsecase forms buying groups around a public asset.
type SyndicateUsecase interface {
	// Create opens a syndicate with the initiator holding the first share
	Create(ctx context.Context, assetID, initiatorID string) (*entity.Syndicate, error)

	// Get returns a syndicate created by this process
	Get(ctx context.Context, id string) (*entity.Syndicate, error)

	// InviteQR renders the syndicate share link as a PNG
	InviteQR(ctx context.Context, id string) ([]byte, error)
}
