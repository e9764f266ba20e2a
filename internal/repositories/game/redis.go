package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/denizatesh/foosleague/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix = "game:"
	gamesSetKey   = "games"
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// ErrGameExists is returned when creating a game whose name is taken
var ErrGameExists = errors.New("game already exists")

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// CreateGame persists a game to Redis
func (r *redisRepository) CreateGame(ctx context.Context, input *CreateGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	game := input.Game
	if game.Name == "" {
		return errors.New("game name cannot be empty")
	}

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, game.Name)

	// Name uniqueness is a store invariant
	exists, err := r.client.Exists(ctx, gameKey).Result()
	if err != nil {
		return fmt.Errorf("failed to check game existence: %w", err)
	}
	if exists > 0 {
		return ErrGameExists
	}

	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, gameKey, gameJSON, 0)
	pipe.SAdd(ctx, gamesSetKey, game.Name)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetGame retrieves a game by name from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and game name cannot be empty")
	}

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, input.Name)
	gameJSON, err := r.client.Get(ctx, gameKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game models.Game
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

// ListGames retrieves all games from Redis
func (r *redisRepository) ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error) {
	names, err := r.client.SMembers(ctx, gamesSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get game names: %w", err)
	}

	if len(names) == 0 {
		return &ListGamesOutput{
			Games: []*models.Game{},
		}, nil
	}

	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(names))
	for _, name := range names {
		gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, name)
		commands[name] = pipe.Get(ctx, gameKey)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get games: %w", err)
	}

	games := make([]*models.Game, 0, len(names))
	for name, cmd := range commands {
		gameJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Game was deleted between the index read and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get game %s: %w", name, err)
		}

		var game models.Game
		if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game %s: %w", name, err)
		}

		games = append(games, &game)
	}

	return &ListGamesOutput{
		Games: games,
	}, nil
}

// DeleteGame removes a game by name from Redis
func (r *redisRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.Name == "" {
		return errors.New("input and game name cannot be empty")
	}

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, input.Name)
	deleted, err := r.client.Del(ctx, gameKey).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	if deleted == 0 {
		return ErrGameNotFound
	}

	if err := r.client.SRem(ctx, gamesSetKey, input.Name).Err(); err != nil {
		return fmt.Errorf("failed to remove game from index: %w", err)
	}

	return nil
}
