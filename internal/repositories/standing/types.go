package standing

import "github.com/denizatesh/foosleague/internal/models"

// SaveStandingInput contains parameters for upserting a standing
type SaveStandingInput struct {
	Standing *models.LeagueStanding
}

// GetStandingInput contains the composite key of a standing
type GetStandingInput struct {
	PlayerName string
	GameName   string
}

// ListStandingsInput contains parameters for listing all standings
type ListStandingsInput struct{}

// ListStandingsByPlayerInput contains parameters for listing a player's standings
type ListStandingsByPlayerInput struct {
	PlayerName string
}

// ListStandingsByGameInput contains parameters for listing a game's standings
type ListStandingsByGameInput struct {
	GameName string
}

// ListStandingsOutput contains the result of a standings listing
type ListStandingsOutput struct {
	Standings []*models.LeagueStanding
}

// DeleteStandingsByPlayerInput contains parameters for deleting a player's standings
type DeleteStandingsByPlayerInput struct {
	PlayerName string
}
