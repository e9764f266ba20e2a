package models

import (
	"time"
)

// Player represents a registered player
type Player struct {
	// Name is the unique identifier for the player
	Name string `json:"name"`

	// CreatedAt is when the player was registered
	CreatedAt time.Time `json:"created_at"`
}
