package fixture

import (
	"github.com/denizatesh/foosleague/internal/common/clock"
	"github.com/denizatesh/foosleague/internal/matchup"
	"github.com/denizatesh/foosleague/internal/models"
	fixtureRepo "github.com/denizatesh/foosleague/internal/repositories/fixture"
	gameRepo "github.com/denizatesh/foosleague/internal/repositories/game"
	playerRepo "github.com/denizatesh/foosleague/internal/repositories/player"
)

// Config holds configuration for the fixture service
type Config struct {
	// Repository dependencies
	GameRepo    gameRepo.Repository
	PlayerRepo  playerRepo.Repository
	FixtureRepo fixtureRepo.Repository

	// Service dependencies
	Generator matchup.Generator
	Clock     clock.Clock
}

// CreateFixtureInput contains parameters for generating a fixture
type CreateFixtureInput struct {
	// GameName is the game the fixture belongs to; the game must exist
	GameName string

	// TeamNames is the ordered list of team names per match
	TeamNames []string

	// PlayersPerTeam is the number of players on each team
	PlayersPerTeam int

	// PlayerPool is the list of player names to draw from; every player
	// must exist and names must be unique
	PlayerPool []string
}

// CreateFixtureOutput contains the result of generating a fixture
type CreateFixtureOutput struct {
	// FixtureID is the store-generated id of the new fixture
	FixtureID int64

	// Matches is the generated match list
	Matches []models.Match

	// Leftover holds players excluded because the pool did not divide evenly
	Leftover []string
}

// GetFixtureInput contains parameters for retrieving a fixture
type GetFixtureInput struct {
	FixtureID int64
}

// GetFixtureOutput contains the result of retrieving a fixture
type GetFixtureOutput struct {
	Fixture *models.Fixture
}

// ListFixturesInput contains parameters for listing fixtures
type ListFixturesInput struct{}

// ListFixturesOutput contains the result of listing fixtures
type ListFixturesOutput struct {
	Fixtures []*models.Fixture
}

// RecordWinnerInput contains parameters for recording a match winner
type RecordWinnerInput struct {
	// FixtureID addresses the fixture
	FixtureID int64

	// MatchIndex addresses the match within the fixture's match list
	MatchIndex int

	// Winner is the winning team's name; it must be one of the match's teams
	Winner string
}

// RecordWinnerOutput contains the result of recording a winner
type RecordWinnerOutput struct {
	Fixture *models.Fixture
}

// DeleteFixtureInput contains parameters for deleting a fixture
type DeleteFixtureInput struct {
	FixtureID int64
}

// DeleteFixtureOutput contains the result of deleting a fixture
type DeleteFixtureOutput struct{}
