package roster

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/denizatesh/foosleague/internal/services/roster Service

// Service defines the interface for game and player registry operations
type Service interface {
	// CreateGame registers a new game type
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// GetGame retrieves a game by name
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// ListGames retrieves all registered games
	ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error)

	// DeleteGame removes a game by name
	DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error)

	// CreatePlayer registers a new player
	CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*CreatePlayerOutput, error)

	// GetPlayer retrieves a player by name
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error)

	// ListPlayers retrieves all registered players
	ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error)

	// DeletePlayer removes a player by name
	DeletePlayer(ctx context.Context, input *DeletePlayerInput) (*DeletePlayerOutput, error)
}
