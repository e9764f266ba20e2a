package roster

import (
	"context"
	"errors"

	"github.com/denizatesh/foosleague/internal/models"
	gameRepo "github.com/denizatesh/foosleague/internal/repositories/game"
	playerRepo "github.com/denizatesh/foosleague/internal/repositories/player"
)

// Define errors
var (
	ErrInvalidName    = errors.New("name cannot be empty")
	ErrGameExists     = errors.New("game already exists")
	ErrGameNotFound   = errors.New("game not found")
	ErrPlayerExists   = errors.New("player already exists")
	ErrPlayerNotFound = errors.New("player not found")
)

// service implements the Service interface
type service struct {
	config *Config
}

// New creates a new roster service
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

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	return &service{
		config: cfg,
	}, nil
}

// CreateGame registers a new game type
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil || input.Name == "" {
		return nil, ErrInvalidName
	}

	game := &models.Game{
		Name:      input.Name,
		CreatedAt: s.config.Clock.Now(),
	}

	err := s.config.GameRepo.CreateGame(ctx, &gameRepo.CreateGameInput{
		Game: game,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameExists) {
			return nil, ErrGameExists
		}
		return nil, err
	}

	return &CreateGameOutput{
		Game: game,
	}, nil
}

// GetGame retrieves a game by name
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil || input.Name == "" {
		return nil, ErrInvalidName
	}

	game, err := s.config.GameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		Name: input.Name,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	return &GetGameOutput{
		Game: game,
	}, nil
}

// ListGames retrieves all registered games
func (s *service) ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error) {
	output, err := s.config.GameRepo.ListGames(ctx, &gameRepo.ListGamesInput{})
	if err != nil {
		return nil, err
	}

	return &ListGamesOutput{
		Games: output.Games,
	}, nil
}

// DeleteGame removes a game by name
func (s *service) DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error) {
	if input == nil || input.Name == "" {
		return nil, ErrInvalidName
	}

	err := s.config.GameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{
		Name: input.Name,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	return &DeleteGameOutput{}, nil
}

// CreatePlayer registers a new player
func (s *service) CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*CreatePlayerOutput, error) {
	if input == nil || input.Name == "" {
		return nil, ErrInvalidName
	}

	player := &models.Player{
		Name:      input.Name,
		CreatedAt: s.config.Clock.Now(),
	}

	err := s.config.PlayerRepo.CreatePlayer(ctx, &playerRepo.CreatePlayerInput{
		Player: player,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerExists) {
			return nil, ErrPlayerExists
		}
		return nil, err
	}

	return &CreatePlayerOutput{
		Player: player,
	}, nil
}

// GetPlayer retrieves a player by name
func (s *service) GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error) {
	if input == nil || input.Name == "" {
		return nil, ErrInvalidName
	}

	player, err := s.config.PlayerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		Name: input.Name,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	return &GetPlayerOutput{
		Player: player,
	}, nil
}

// ListPlayers retrieves all registered players
func (s *service) ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error) {
	output, err := s.config.PlayerRepo.ListPlayers(ctx, &playerRepo.ListPlayersInput{})
	if err != nil {
		return nil, err
	}

	return &ListPlayersOutput{
		Players: output.Players,
	}, nil
}

// DeletePlayer removes a player by name
func (s *service) DeletePlayer(ctx context.Context, input *DeletePlayerInput) (*DeletePlayerOutput, error) {
	if input == nil || input.Name == "" {
		return nil, ErrInvalidName
	}

	err := s.config.PlayerRepo.DeletePlayer(ctx, &playerRepo.DeletePlayerInput{
		Name: input.Name,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	return &DeletePlayerOutput{}, nil
}
