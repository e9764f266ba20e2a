package game

import "github.com/denizatesh/foosleague/internal/models"

// CreateGameInput contains parameters for creating a game
type CreateGameInput struct {
	Game *models.Game
}

// GetGameInput contains parameters for retrieving a game
type GetGameInput struct {
	Name string
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
