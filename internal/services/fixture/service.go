package fixture

import (
	"context"
	"errors"
	"fmt"

	"github.com/denizatesh/foosleague/internal/matchup"
	"github.com/denizatesh/foosleague/internal/models"
	fixtureRepo "github.com/denizatesh/foosleague/internal/repositories/fixture"
	gameRepo "github.com/denizatesh/foosleague/internal/repositories/game"
	playerRepo "github.com/denizatesh/foosleague/internal/repositories/player"
)

// Define errors
var (
	ErrGameNotFound         = errors.New("game not found")
	ErrPlayerNotFound       = errors.New("player not found")
	ErrDuplicatePlayers     = errors.New("player pool contains duplicate names")
	ErrEmptyPlayerPool      = errors.New("player pool cannot be empty")
	ErrInvalidTeamSetup     = errors.New("invalid team setup")
	ErrInsufficientPlayers  = errors.New("there are not enough players")
	ErrFixtureNotFound      = errors.New("fixture not found")
	ErrMatchIndexOutOfRange = errors.New("match index out of range")
	ErrMatchNotActive       = errors.New("match is not active")
	ErrUnknownWinnerTeam    = errors.New("winner is not a team in the match")
)

// service implements the Service interface
type service struct {
	config *Config
}

// New creates a new fixture service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameRepo == nil {
		return nil, errors.New("game repository cannot be nil")
	}

	if cfg.PlayerRepo == nil {
		return nil, errors.New("player repository cannot be nil")
	}

	if cfg.FixtureRepo == nil {
		return nil, errors.New("fixture repository cannot be nil")
	}

	if cfg.Generator == nil {
		return nil, errors.New("match generator cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	return &service{
		config: cfg,
	}, nil
}

// CreateFixture validates the request, generates matches and persists the
// fixture. All preconditions are checked before the store is touched.
func (s *service) CreateFixture(ctx context.Context, input *CreateFixtureInput) (*CreateFixtureOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := s.validateCreate(ctx, input); err != nil {
		return nil, err
	}

	generated, err := s.config.Generator.Generate(ctx, &matchup.GenerateInput{
		TeamNames:      input.TeamNames,
		PlayersPerTeam: input.PlayersPerTeam,
		PlayerPool:     input.PlayerPool,
	})
	if err != nil {
		if errors.Is(err, matchup.ErrInsufficientPlayers) {
			return nil, ErrInsufficientPlayers
		}
		if errors.Is(err, matchup.ErrInvalidTeamSetup) {
			return nil, ErrInvalidTeamSetup
		}
		return nil, fmt.Errorf("failed to generate matches: %w", err)
	}

	created, err := s.config.FixtureRepo.CreateFixture(ctx, &fixtureRepo.CreateFixtureInput{
		Fixture: &models.Fixture{
			GameName:  input.GameName,
			MatchInfo: generated.Matches,
			CreatedAt: s.config.Clock.Now(),
		},
	})
	if err != nil {
		return nil, err
	}

	return &CreateFixtureOutput{
		FixtureID: created.FixtureID,
		Matches:   generated.Matches,
		Leftover:  generated.Leftover,
	}, nil
}

// validateCreate checks every fixture-creation precondition without
// mutating the store
func (s *service) validateCreate(ctx context.Context, input *CreateFixtureInput) error {
	if input.GameName == "" {
		return ErrGameNotFound
	}

	if len(input.TeamNames) < 1 || input.PlayersPerTeam < 1 {
		return ErrInvalidTeamSetup
	}
	for _, team := range input.TeamNames {
		if team == "" {
			return ErrInvalidTeamSetup
		}
	}

	if len(input.PlayerPool) == 0 {
		return ErrEmptyPlayerPool
	}

	seen := make(map[string]bool, len(input.PlayerPool))
	for _, name := range input.PlayerPool {
		if seen[name] {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayers, name)
		}
		seen[name] = true
	}

	if _, err := s.config.GameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		Name: input.GameName,
	}); err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return ErrGameNotFound
		}
		return err
	}

	for _, name := range input.PlayerPool {
		if _, err := s.config.PlayerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
			Name: name,
		}); err != nil {
			if errors.Is(err, playerRepo.ErrPlayerNotFound) {
				return fmt.Errorf("%w: %s", ErrPlayerNotFound, name)
			}
			return err
		}
	}

	return nil
}

// GetFixture retrieves a fixture by id
func (s *service) GetFixture(ctx context.Context, input *GetFixtureInput) (*GetFixtureOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	record, err := s.config.FixtureRepo.GetFixture(ctx, &fixtureRepo.GetFixtureInput{
		FixtureID: input.FixtureID,
	})
	if err != nil {
		if errors.Is(err, fixtureRepo.ErrFixtureNotFound) {
			return nil, ErrFixtureNotFound
		}
		return nil, err
	}

	return &GetFixtureOutput{
		Fixture: record,
	}, nil
}

// ListFixtures retrieves all fixtures
func (s *service) ListFixtures(ctx context.Context, input *ListFixturesInput) (*ListFixturesOutput, error) {
	output, err := s.config.FixtureRepo.ListFixtures(ctx, &fixtureRepo.ListFixturesInput{})
	if err != nil {
		return nil, err
	}

	return &ListFixturesOutput{
		Fixtures: output.Fixtures,
	}, nil
}

// RecordWinner sets the winner of one active match and persists the
// fixture. The match stays active so settlement can pick it up later.
func (s *service) RecordWinner(ctx context.Context, input *RecordWinnerInput) (*RecordWinnerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	record, err := s.config.FixtureRepo.GetFixture(ctx, &fixtureRepo.GetFixtureInput{
		FixtureID: input.FixtureID,
	})
	if err != nil {
		if errors.Is(err, fixtureRepo.ErrFixtureNotFound) {
			return nil, ErrFixtureNotFound
		}
		return nil, err
	}

	if input.MatchIndex < 0 || input.MatchIndex >= len(record.MatchInfo) {
		return nil, ErrMatchIndexOutOfRange
	}

	match := &record.MatchInfo[input.MatchIndex]
	if !match.IsActive {
		return nil, ErrMatchNotActive
	}

	if !match.HasTeam(input.Winner) {
		return nil, ErrUnknownWinnerTeam
	}

	match.Winner = input.Winner

	if err := s.config.FixtureRepo.UpdateFixture(ctx, &fixtureRepo.UpdateFixtureInput{
		Fixture: record,
	}); err != nil {
		return nil, err
	}

	return &RecordWinnerOutput{
		Fixture: record,
	}, nil
}

// DeleteFixture removes a fixture by id
func (s *service) DeleteFixture(ctx context.Context, input *DeleteFixtureInput) (*DeleteFixtureOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	err := s.config.FixtureRepo.DeleteFixture(ctx, &fixtureRepo.DeleteFixtureInput{
		FixtureID: input.FixtureID,
	})
	if err != nil {
		if errors.Is(err, fixtureRepo.ErrFixtureNotFound) {
			return nil, ErrFixtureNotFound
		}
		return nil, err
	}

	return &DeleteFixtureOutput{}, nil
}
