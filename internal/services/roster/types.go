package roster

import (
	"github.com/denizatesh/foosleague/internal/common/clock"
	"github.com/denizatesh/foosleague/internal/models"
	gameRepo "github.com/denizatesh/foosleague/internal/repositories/game"
	playerRepo "github.com/denizatesh/foosleague/internal/repositories/player"
)

// Config holds configuration for the roster service
type Config struct {
	// Repository dependencies
	GameRepo   gameRepo.Repository
	PlayerRepo playerRepo.Repository

	// Service dependencies
	Clock clock.Clock
}

// CreateGameInput contains parameters for registering a game
type CreateGameInput struct {
	// Name is the unique game name
	Name string
}

// CreateGameOutput contains the result of registering a game
type CreateGameOutput struct {
	Game *models.Game
}

// GetGameInput contains parameters for retrieving a game
type GetGameInput struct {
	Name string
}

// GetGameOutput contains the result of retrieving a game
type GetGameOutput struct {
	Game *models.Game
}

// ListGamesInput contains parameters for listing games
type ListGamesInput struct{}

// ListGamesOutput contains the result of listing games
type ListGamesOutput struct {
	Games []*models.Game
}

// DeleteGameInput contains parameters for deleting a game
type DeleteGameInput struct {
	Name string
}

// DeleteGameOutput contains the result of deleting a game
type DeleteGameOutput struct{}

// CreatePlayerInput contains parameters for registering a player
type CreatePlayerInput struct {
	// Name is the unique player name
	Name string
}

// CreatePlayerOutput contains the result of registering a player
type CreatePlayerOutput struct {
	Player *models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	Name string
}

// GetPlayerOutput contains the result of retrieving a player
type GetPlayerOutput struct {
	Player *models.Player
}

// ListPlayersInput contains parameters for listing players
type ListPlayersInput struct{}

// ListPlayersOutput contains the result of listing players
type ListPlayersOutput struct {
	Players []*models.Player
}

// DeletePlayerInput contains parameters for deleting a player
type DeletePlayerInput struct {
	Name string
}

// DeletePlayerOutput contains the result of deleting a player
type DeletePlayerOutput struct{}
