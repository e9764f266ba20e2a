package models

import (
	"time"
)

// LeagueTier is a named point bucket players are assigned to. The tier
// with the lowest point value is the default for new standings.
type LeagueTier struct {
	// Name is the unique identifier for the tier (e.g. "Premier")
	Name string `json:"name"`

	// Point is the value a win against a player in this tier is worth
	Point float64 `json:"point"`
}

// LeagueStanding is a player's accumulated record within one game.
// There is exactly one standing per (player, game) pair.
type LeagueStanding struct {
	// PlayerName identifies the player
	PlayerName string `json:"player_name"`

	// Point is the accumulated league points; fractional values are
	// possible because win points are split across losers
	Point float64 `json:"point"`

	// MatchCount is the number of settled matches the player took part in
	MatchCount int `json:"match_count"`

	// LeagueName is the tier the player currently belongs to
	LeagueName string `json:"league_name"`

	// GameName identifies the game the standing belongs to
	GameName string `json:"game_name"`

	// UpdatedAt is when the standing was last settled
	UpdatedAt time.Time `json:"updated_at"`
}
