package fixture

import "github.com/denizatesh/foosleague/internal/models"

// CreateFixtureInput contains parameters for creating a fixture. The
// fixture's ID field is ignored; the store assigns one.
type CreateFixtureInput struct {
	Fixture *models.Fixture
}

// CreateFixtureOutput contains the result of creating a fixture
type CreateFixtureOutput struct {
	FixtureID int64
}

// GetFixtureInput contains parameters for retrieving a fixture
type GetFixtureInput struct {
	FixtureID int64
}

// ListFixturesInput contains parameters for listing fixtures
type ListFixturesInput struct{}

// ListFixturesOutput contains the result of listing fixtures
type ListFixturesOutput struct {
	Fixtures []*models.Fixture
}

// UpdateFixtureInput contains parameters for replacing a fixture record
type UpdateFixtureInput struct {
	Fixture *models.Fixture
}

// DeleteFixtureInput contains parameters for deleting a fixture
type DeleteFixtureInput struct {
	FixtureID int64
}
