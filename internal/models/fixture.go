package models

import (
	"time"
)

// Match is one team-vs-team pairing within a fixture. Each player name
// appears in exactly one team. Once IsActive flips to false the match
// is permanently excluded from settlement.
type Match struct {
	// TeamList maps a team name to its ordered list of player names
	TeamList map[string][]string `json:"team_list"`

	// Winner is the winning team's name, empty while undecided
	Winner string `json:"winner"`

	// IsActive reports whether the match can still be settled
	IsActive bool `json:"is_active"`
}

// Fixture is one generated round of matches for a game
type Fixture struct {
	// ID is the store-generated numeric identifier
	ID int64 `json:"id"`

	// GameName is the game the fixture was generated for
	GameName string `json:"game_name"`

	// MatchInfo holds the fixture's matches in generation order
	MatchInfo []Match `json:"match_info"`

	// CreatedAt is when the fixture was generated
	CreatedAt time.Time `json:"created_at"`
}

// Teams returns the match's team names
func (m *Match) Teams() []string {
	teams := make([]string, 0, len(m.TeamList))
	for name := range m.TeamList {
		teams = append(teams, name)
	}
	return teams
}

// HasTeam reports whether the given team name is part of the match
func (m *Match) HasTeam(name string) bool {
	_, ok := m.TeamList[name]
	return ok
}
