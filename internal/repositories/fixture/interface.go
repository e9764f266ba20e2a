package fixture

import (
	"context"

	"github.com/denizatesh/foosleague/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/denizatesh/foosleague/internal/repositories/fixture Repository

// Repository defines the interface for fixture persistence
type Repository interface {
	// CreateFixture persists a fixture and returns its generated numeric id
	CreateFixture(ctx context.Context, input *CreateFixtureInput) (*CreateFixtureOutput, error)

	// GetFixture retrieves a fixture by id
	GetFixture(ctx context.Context, input *GetFixtureInput) (*models.Fixture, error)

	// ListFixtures retrieves all fixtures
	ListFixtures(ctx context.Context, input *ListFixturesInput) (*ListFixturesOutput, error)

	// UpdateFixture replaces a whole fixture record by id
	UpdateFixture(ctx context.Context, input *UpdateFixtureInput) error

	// DeleteFixture removes a fixture by id
	DeleteFixture(ctx context.Context, input *DeleteFixtureInput) error
}
