package league

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/denizatesh/foosleague/internal/models"
	fixtureRepo "github.com/denizatesh/foosleague/internal/repositories/fixture"
	tierRepo "github.com/denizatesh/foosleague/internal/repositories/leaguetier"
	standingRepo "github.com/denizatesh/foosleague/internal/repositories/standing"
)

// Define errors
var (
	ErrNoActiveMatch    = errors.New("no active match")
	ErrFixtureNotFound  = errors.New("fixture not found")
	ErrNoTiers          = errors.New("no league tiers defined")
	ErrInvalidTier      = errors.New("tier name cannot be empty")
	ErrTierExists       = errors.New("tier already exists")
	ErrTierNotFound     = errors.New("tier not found")
	ErrStandingNotFound = errors.New("league standing not found")
)

// service implements the Service interface
type service struct {
	config *Config

	// settleMu serializes settlement runs. Standings are read, adjusted
	// and written back without a store-level concurrency token, so two
	// overlapping runs would lose updates.
	settleMu sync.Mutex
}

// New creates a new league service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.TierRepo == nil {
		return nil, errors.New("tier repository cannot be nil")
	}

	if cfg.StandingRepo == nil {
		return nil, errors.New("standing repository cannot be nil")
	}

	if cfg.FixtureRepo == nil {
		return nil, errors.New("fixture repository cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	return &service{
		config: cfg,
	}, nil
}

// Settle walks the active matches in scope and converts each decided one
// into standing mutations, exactly once. Matches committed before a store
// failure stay committed; there is no rollback across matches.
func (s *service) Settle(ctx context.Context, input *SettleInput) (*SettleOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.settleMu.Lock()
	defer s.settleMu.Unlock()

	fixtures, err := s.fixturesInScope(ctx, input.FixtureID)
	if err != nil {
		return nil, err
	}

	active := 0
	for _, fix := range fixtures {
		for i := range fix.MatchInfo {
			if fix.MatchInfo[i].IsActive {
				active++
			}
		}
	}
	if active == 0 {
		return nil, ErrNoActiveMatch
	}

	tiers, lowest, err := s.loadTiers(ctx)
	if err != nil {
		return nil, err
	}

	settled := 0
	for _, fix := range fixtures {
		for i := range fix.MatchInfo {
			match := &fix.MatchInfo[i]
			if !match.IsActive {
				continue
			}

			// An active match whose winner is not one of its teams is
			// simply not decided yet; leave it for a later run.
			if !match.HasTeam(match.Winner) {
				continue
			}

			if err := s.settleMatch(ctx, fix.GameName, match, tiers, lowest); err != nil {
				return nil, fmt.Errorf("league could not be updated: %w", err)
			}

			match.IsActive = false
			if err := s.config.FixtureRepo.UpdateFixture(ctx, &fixtureRepo.UpdateFixtureInput{
				Fixture: fix,
			}); err != nil {
				return nil, fmt.Errorf("league could not be updated: %w", err)
			}

			settled++
		}
	}

	all, err := s.config.StandingRepo.ListStandings(ctx, &standingRepo.ListStandingsInput{})
	if err != nil {
		return nil, fmt.Errorf("league could not be updated: %w", err)
	}

	return &SettleOutput{
		Standings:      all.Standings,
		SettledMatches: settled,
	}, nil
}

// fixturesInScope resolves the settlement scope to a fixture slice
func (s *service) fixturesInScope(ctx context.Context, fixtureID *int64) ([]*models.Fixture, error) {
	if fixtureID != nil {
		fix, err := s.config.FixtureRepo.GetFixture(ctx, &fixtureRepo.GetFixtureInput{
			FixtureID: *fixtureID,
		})
		if err != nil {
			if errors.Is(err, fixtureRepo.ErrFixtureNotFound) {
				return nil, ErrFixtureNotFound
			}
			return nil, err
		}
		return []*models.Fixture{fix}, nil
	}

	output, err := s.config.FixtureRepo.ListFixtures(ctx, &fixtureRepo.ListFixturesInput{})
	if err != nil {
		return nil, err
	}
	return output.Fixtures, nil
}

// loadTiers fetches every tier into a point lookup and finds the name of
// the lowest-point tier, the default assignment for new standings
func (s *service) loadTiers(ctx context.Context) (map[string]float64, string, error) {
	output, err := s.config.TierRepo.ListTiers(ctx, &tierRepo.ListTiersInput{})
	if err != nil {
		return nil, "", err
	}

	if len(output.Tiers) == 0 {
		return nil, "", ErrNoTiers
	}

	points := make(map[string]float64, len(output.Tiers))
	lowest := output.Tiers[0]
	for _, tier := range output.Tiers {
		points[tier.Name] = tier.Point
		if tier.Point < lowest.Point {
			lowest = tier
		}
	}

	return points, lowest.Name, nil
}

// settleMatch applies one match's point transfer and persists every
// touched standing. The caller flips the active flag afterwards.
func (s *service) settleMatch(ctx context.Context, gameName string, match *models.Match, tiers map[string]float64, defaultTier string) error {
	winners := match.TeamList[match.Winner]

	var losers []string
	for _, team := range match.Teams() {
		if team == match.Winner {
			continue
		}
		losers = append(losers, match.TeamList[team]...)
	}

	standings := make(map[string]*models.LeagueStanding, len(winners)+len(losers))
	for _, name := range append(append([]string{}, winners...), losers...) {
		standing, err := s.standingOrDefault(ctx, name, gameName, defaultTier)
		if err != nil {
			return err
		}
		standings[name] = standing
	}

	// Win points are what the losers' tiers are worth, split evenly.
	// A loser in an unknown tier contributes nothing but still counts
	// toward the split.
	var winPoint float64
	if len(losers) > 0 {
		var sum float64
		for _, name := range losers {
			sum += tiers[standings[name].LeagueName]
		}
		winPoint = sum / float64(len(losers))
	}

	now := s.config.Clock.Now()
	for _, name := range winners {
		standing := standings[name]
		standing.Point += winPoint
		standing.MatchCount++
		standing.UpdatedAt = now
	}
	for _, name := range losers {
		standing := standings[name]
		standing.MatchCount++
		standing.UpdatedAt = now
	}

	for _, standing := range standings {
		if err := s.config.StandingRepo.SaveStanding(ctx, &standingRepo.SaveStandingInput{
			Standing: standing,
		}); err != nil {
			return err
		}
	}

	return nil
}

// standingOrDefault fetches a player's standing for a game, synthesizing
// a fresh one in the default tier when the player has never settled
func (s *service) standingOrDefault(ctx context.Context, playerName, gameName, defaultTier string) (*models.LeagueStanding, error) {
	standing, err := s.config.StandingRepo.GetStanding(ctx, &standingRepo.GetStandingInput{
		PlayerName: playerName,
		GameName:   gameName,
	})
	if err == nil {
		return standing, nil
	}
	if !errors.Is(err, standingRepo.ErrStandingNotFound) {
		return nil, err
	}

	return &models.LeagueStanding{
		PlayerName: playerName,
		Point:      0,
		MatchCount: 0,
		LeagueName: defaultTier,
		GameName:   gameName,
	}, nil
}

// CreateTier defines a new league tier
func (s *service) CreateTier(ctx context.Context, input *CreateTierInput) (*CreateTierOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Name == "" {
		return nil, ErrInvalidTier
	}

	tier := &models.LeagueTier{
		Name:  input.Name,
		Point: input.Point,
	}

	err := s.config.TierRepo.CreateTier(ctx, &tierRepo.CreateTierInput{
		Tier: tier,
	})
	if err != nil {
		if errors.Is(err, tierRepo.ErrTierExists) {
			return nil, ErrTierExists
		}
		return nil, err
	}

	return &CreateTierOutput{
		Tier: tier,
	}, nil
}

// GetTier retrieves a tier by name
func (s *service) GetTier(ctx context.Context, input *GetTierInput) (*GetTierOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tier, err := s.config.TierRepo.GetTier(ctx, &tierRepo.GetTierInput{
		Name: input.Name,
	})
	if err != nil {
		if errors.Is(err, tierRepo.ErrTierNotFound) {
			return nil, ErrTierNotFound
		}
		return nil, err
	}

	return &GetTierOutput{
		Tier: tier,
	}, nil
}

// ListTiers retrieves all tier definitions
func (s *service) ListTiers(ctx context.Context, input *ListTiersInput) (*ListTiersOutput, error) {
	output, err := s.config.TierRepo.ListTiers(ctx, &tierRepo.ListTiersInput{})
	if err != nil {
		return nil, err
	}

	return &ListTiersOutput{
		Tiers: output.Tiers,
	}, nil
}

// UpdateTier replaces an existing tier's point value
func (s *service) UpdateTier(ctx context.Context, input *UpdateTierInput) (*UpdateTierOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Name == "" {
		return nil, ErrInvalidTier
	}

	tier := &models.LeagueTier{
		Name:  input.Name,
		Point: input.Point,
	}

	err := s.config.TierRepo.UpdateTier(ctx, &tierRepo.UpdateTierInput{
		Tier: tier,
	})
	if err != nil {
		if errors.Is(err, tierRepo.ErrTierNotFound) {
			return nil, ErrTierNotFound
		}
		return nil, err
	}

	return &UpdateTierOutput{
		Tier: tier,
	}, nil
}

// DeleteTier removes a tier by name
func (s *service) DeleteTier(ctx context.Context, input *DeleteTierInput) (*DeleteTierOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	err := s.config.TierRepo.DeleteTier(ctx, &tierRepo.DeleteTierInput{
		Name: input.Name,
	})
	if err != nil {
		if errors.Is(err, tierRepo.ErrTierNotFound) {
			return nil, ErrTierNotFound
		}
		return nil, err
	}

	return &DeleteTierOutput{}, nil
}

// ListStandings retrieves all standings
func (s *service) ListStandings(ctx context.Context, input *ListStandingsInput) (*ListStandingsOutput, error) {
	output, err := s.config.StandingRepo.ListStandings(ctx, &standingRepo.ListStandingsInput{})
	if err != nil {
		return nil, err
	}

	return &ListStandingsOutput{
		Standings: output.Standings,
	}, nil
}

// ListStandingsByPlayer retrieves one player's standings across games
func (s *service) ListStandingsByPlayer(ctx context.Context, input *ListStandingsByPlayerInput) (*ListStandingsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	output, err := s.config.StandingRepo.ListStandingsByPlayer(ctx, &standingRepo.ListStandingsByPlayerInput{
		PlayerName: input.PlayerName,
	})
	if err != nil {
		return nil, err
	}

	return &ListStandingsOutput{
		Standings: output.Standings,
	}, nil
}

// DeleteStandings removes every standing a player holds
func (s *service) DeleteStandings(ctx context.Context, input *DeleteStandingsInput) (*DeleteStandingsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	err := s.config.StandingRepo.DeleteStandingsByPlayer(ctx, &standingRepo.DeleteStandingsByPlayerInput{
		PlayerName: input.PlayerName,
	})
	if err != nil {
		if errors.Is(err, standingRepo.ErrStandingNotFound) {
			return nil, ErrStandingNotFound
		}
		return nil, err
	}

	return &DeleteStandingsOutput{}, nil
}

// ListStandingsByGame retrieves all standings within one game
func (s *service) ListStandingsByGame(ctx context.Context, input *ListStandingsByGameInput) (*ListStandingsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	output, err := s.config.StandingRepo.ListStandingsByGame(ctx, &standingRepo.ListStandingsByGameInput{
		GameName: input.GameName,
	})
	if err != nil {
		return nil, err
	}

	return &ListStandingsOutput{
		Standings: output.Standings,
	}, nil
}
