package player

import "github.com/denizatesh/foosleague/internal/models"

// CreatePlayerInput contains parameters for creating a player
type CreatePlayerInput struct {
	Player *models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	Name string
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
