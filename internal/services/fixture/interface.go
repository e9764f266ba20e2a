package fixture

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/denizatesh/foosleague/internal/services/fixture Service

// Service defines the interface for fixture lifecycle operations
type Service interface {
	// CreateFixture validates the request, generates a randomized match
	// set for the game and persists it
	CreateFixture(ctx context.Context, input *CreateFixtureInput) (*CreateFixtureOutput, error)

	// GetFixture retrieves a fixture by id
	GetFixture(ctx context.Context, input *GetFixtureInput) (*GetFixtureOutput, error)

	// ListFixtures retrieves all fixtures
	ListFixtures(ctx context.Context, input *ListFixturesInput) (*ListFixturesOutput, error)

	// RecordWinner sets the winner team of one active match. It does not
	// deactivate the match; settlement does that.
	RecordWinner(ctx context.Context, input *RecordWinnerInput) (*RecordWinnerOutput, error)

	// DeleteFixture removes a fixture by id
	DeleteFixture(ctx context.Context, input *DeleteFixtureInput) (*DeleteFixtureOutput, error)
}
