package matchup

import (
	"context"
	"errors"
	"fmt"

	"github.com/denizatesh/foosleague/internal/draw"
	"github.com/denizatesh/foosleague/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/denizatesh/foosleague/internal/matchup Generator

// ErrInsufficientPlayers is returned when the pool cannot fill a single match
var ErrInsufficientPlayers = errors.New("there are not enough players")

// ErrInvalidTeamSetup is returned for a team layout that cannot produce matches
var ErrInvalidTeamSetup = errors.New("invalid team setup")

// Generator builds randomized match sets from a player pool
type Generator interface {
	// Generate partitions the pool into balanced teams and matches
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}

// GenerateInput contains parameters for generating matches
type GenerateInput struct {
	// TeamNames is the ordered list of team names; its length is the team count
	TeamNames []string

	// PlayersPerTeam is the number of players on each team
	PlayersPerTeam int

	// PlayerPool is the ordered list of unique player names to draw from
	PlayerPool []string
}

// GenerateOutput contains the result of generating matches
type GenerateOutput struct {
	// Matches is the generated match list, each starting undecided and active
	Matches []models.Match

	// Leftover holds pool players excluded because the pool did not divide
	// evenly, in pool order
	Leftover []string
}

// generator implements Generator using a shuffled index deck
type generator struct {
	seed int64
}

// Config for the match generator
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new match generator
func New(cfg *Config) *generator {
	var seed int64
	if cfg != nil {
		seed = cfg.Seed
	}

	return &generator{
		seed: seed,
	}
}

// Generate draws distinct players from the pool into matchCount matches.
// Draws share one deck, so a player can appear in at most one match per
// generation call.
func (g *generator) Generate(_ context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	teamCount := len(input.TeamNames)
	if teamCount < 1 || input.PlayersPerTeam < 1 {
		return nil, ErrInvalidTeamSetup
	}

	playersPerMatch := teamCount * input.PlayersPerTeam
	matchCount := len(input.PlayerPool) / playersPerMatch
	if matchCount <= 0 {
		return nil, ErrInsufficientPlayers
	}

	deck, err := draw.New(&draw.Config{
		PoolSize: len(input.PlayerPool),
		Seed:     g.seed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build draw deck: %w", err)
	}

	used := make(map[string]bool, matchCount*playersPerMatch)
	matches := make([]models.Match, 0, matchCount)

	for i := 0; i < matchCount; i++ {
		drawn := make([]string, 0, playersPerMatch)
		for j := 0; j < playersPerMatch; j++ {
			idx, err := deck.Next()
			if err != nil {
				return nil, fmt.Errorf("failed to draw player: %w", err)
			}

			name := input.PlayerPool[idx]
			drawn = append(drawn, name)
			used[name] = true
		}

		match := models.Match{
			TeamList: make(map[string][]string, teamCount),
			Winner:   "",
			IsActive: true,
		}

		// Fill each team by popping from the end of the drawn slice
		for _, team := range input.TeamNames {
			members := make([]string, 0, input.PlayersPerTeam)
			for k := 0; k < input.PlayersPerTeam; k++ {
				members = append(members, drawn[len(drawn)-1])
				drawn = drawn[:len(drawn)-1]
			}
			match.TeamList[team] = members
		}

		matches = append(matches, match)
	}

	var leftover []string
	if deck.Remaining() > 0 {
		leftover = make([]string, 0, deck.Remaining())
		for _, name := range input.PlayerPool {
			if !used[name] {
				leftover = append(leftover, name)
			}
		}
	}

	return &GenerateOutput{
		Matches:  matches,
		Leftover: leftover,
	}, nil
}
