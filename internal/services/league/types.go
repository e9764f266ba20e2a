package league

import (
	"github.com/denizatesh/foosleague/internal/common/clock"
	"github.com/denizatesh/foosleague/internal/models"
	fixtureRepo "github.com/denizatesh/foosleague/internal/repositories/fixture"
	tierRepo "github.com/denizatesh/foosleague/internal/repositories/leaguetier"
	standingRepo "github.com/denizatesh/foosleague/internal/repositories/standing"
)

// Config holds configuration for the league service
type Config struct {
	// Repository dependencies
	TierRepo     tierRepo.Repository
	StandingRepo standingRepo.Repository
	FixtureRepo  fixtureRepo.Repository

	// Service dependencies
	Clock clock.Clock
}

// SettleInput contains parameters for running a settlement
type SettleInput struct {
	// FixtureID limits settlement to one fixture when set; nil means
	// every fixture is scanned
	FixtureID *int64
}

// SettleOutput contains the result of a settlement run
type SettleOutput struct {
	// Standings is the full standings table after settlement
	Standings []*models.LeagueStanding

	// SettledMatches is the number of matches deactivated by this run
	SettledMatches int
}

// CreateTierInput contains parameters for creating a tier
type CreateTierInput struct {
	Name  string
	Point float64
}

// CreateTierOutput contains the result of creating a tier
type CreateTierOutput struct {
	Tier *models.LeagueTier
}

// GetTierInput contains parameters for retrieving a tier
type GetTierInput struct {
	Name string
}

// GetTierOutput contains the result of retrieving a tier
type GetTierOutput struct {
	Tier *models.LeagueTier
}

// ListTiersInput contains parameters for listing tiers
type ListTiersInput struct{}

// ListTiersOutput contains the result of listing tiers
type ListTiersOutput struct {
	Tiers []*models.LeagueTier
}

// UpdateTierInput contains parameters for updating a tier
type UpdateTierInput struct {
	Name  string
	Point float64
}

// UpdateTierOutput contains the result of updating a tier
type UpdateTierOutput struct {
	Tier *models.LeagueTier
}

// DeleteTierInput contains parameters for deleting a tier
type DeleteTierInput struct {
	Name string
}

// DeleteTierOutput contains the result of deleting a tier
type DeleteTierOutput struct{}

// ListStandingsInput contains parameters for listing all standings
type ListStandingsInput struct{}

// ListStandingsOutput contains the result of a standings listing
type ListStandingsOutput struct {
	Standings []*models.LeagueStanding
}

// ListStandingsByPlayerInput contains parameters for listing a player's standings
type ListStandingsByPlayerInput struct {
	PlayerName string
}

// ListStandingsByGameInput contains parameters for listing a game's standings
type ListStandingsByGameInput struct {
	GameName string
}

// DeleteStandingsInput contains parameters for deleting a player's standings
type DeleteStandingsInput struct {
	PlayerName string
}

// DeleteStandingsOutput contains the result of deleting a player's standings
type DeleteStandingsOutput struct{}
