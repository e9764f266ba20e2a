package models

import (
	"time"
)

// Game represents a playable game type (e.g. foosball) that fixtures
// and league standings are recorded against
type Game struct {
	// Name is the unique identifier for the game
	Name string `json:"name"`

	// CreatedAt is when the game was registered
	CreatedAt time.Time `json:"created_at"`
}
