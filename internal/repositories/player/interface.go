package player

import (
	"context"

	"github.com/denizatesh/foosleague/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/denizatesh/foosleague/internal/repositories/player Repository

// Repository defines the interface for player data persistence
type Repository interface {
	// CreatePlayer persists a new player; the name must be unused
	CreatePlayer(ctx context.Context, input *CreatePlayerInput) error

	// GetPlayer retrieves a player by name
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// ListPlayers retrieves all players
	ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error)

	// DeletePlayer removes a player by name
	DeletePlayer(ctx context.Context, input *DeletePlayerInput) error
}
