package game

import (
	"context"

	"github.com/denizatesh/foosleague/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/denizatesh/foosleague/internal/repositories/game Repository

// Repository defines the interface for game data persistence
type Repository interface {
	// CreateGame persists a new game; the name must be unused
	CreateGame(ctx context.Context, input *CreateGameInput) error

	// GetGame retrieves a game by name
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// ListGames retrieves all games
	ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error)

	// DeleteGame removes a game by name
	DeleteGame(ctx context.Context, input *DeleteGameInput) error
}
