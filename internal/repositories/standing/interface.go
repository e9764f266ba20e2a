package standing

import (
	"context"

	"github.com/denizatesh/foosleague/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/denizatesh/foosleague/internal/repositories/standing Repository

// Repository defines the interface for league standing persistence.
// Standings are keyed by the (player name, game name) pair.
type Repository interface {
	// SaveStanding writes a standing, creating it when the (player, game)
	// key is new and replacing it otherwise. This is the explicit upsert
	// the settlement engine relies on for its first-write case.
	SaveStanding(ctx context.Context, input *SaveStandingInput) error

	// GetStanding retrieves a standing by its composite key
	GetStanding(ctx context.Context, input *GetStandingInput) (*models.LeagueStanding, error)

	// ListStandings retrieves all standings
	ListStandings(ctx context.Context, input *ListStandingsInput) (*ListStandingsOutput, error)

	// ListStandingsByPlayer retrieves a player's standings across games
	ListStandingsByPlayer(ctx context.Context, input *ListStandingsByPlayerInput) (*ListStandingsOutput, error)

	// ListStandingsByGame retrieves all standings within one game
	ListStandingsByGame(ctx context.Context, input *ListStandingsByGameInput) (*ListStandingsOutput, error)

	// DeleteStandingsByPlayer removes all standings for a player
	DeleteStandingsByPlayer(ctx context.Context, input *DeleteStandingsByPlayerInput) error
}
