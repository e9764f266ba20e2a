package leaguetier

import (
	"context"

	"github.com/denizatesh/foosleague/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/denizatesh/foosleague/internal/repositories/leaguetier Repository

// Repository defines the interface for league tier persistence
type Repository interface {
	// CreateTier persists a new tier definition; the name must be unused
	CreateTier(ctx context.Context, input *CreateTierInput) error

	// GetTier retrieves a tier by name
	GetTier(ctx context.Context, input *GetTierInput) (*models.LeagueTier, error)

	// ListTiers retrieves all tier definitions
	ListTiers(ctx context.Context, input *ListTiersInput) (*ListTiersOutput, error)

	// UpdateTier replaces an existing tier's point value
	UpdateTier(ctx context.Context, input *UpdateTierInput) error

	// DeleteTier removes a tier by name
	DeleteTier(ctx context.Context, input *DeleteTierInput) error
}
