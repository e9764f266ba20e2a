package player

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
	playerKeyPrefix = "player:"
	playersSetKey   = "players"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// ErrPlayerExists is returned when creating a player whose name is taken
var ErrPlayerExists = errors.New("player already exists")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
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

// CreatePlayer persists a player to Redis
func (r *redisRepository) CreatePlayer(ctx context.Context, input *CreatePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	player := input.Player
	if player.Name == "" {
		return errors.New("player name cannot be empty")
	}

	playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, player.Name)

	exists, err := r.client.Exists(ctx, playerKey).Result()
	if err != nil {
		return fmt.Errorf("failed to check player existence: %w", err)
	}
	if exists > 0 {
		return ErrPlayerExists
	}

	playerJSON, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, playerKey, playerJSON, 0)
	pipe.SAdd(ctx, playersSetKey, player.Name)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// GetPlayer retrieves a player by name from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and player name cannot be empty")
	}

	playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, input.Name)
	playerJSON, err := r.client.Get(ctx, playerKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var player models.Player
	if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &player, nil
}

// ListPlayers retrieves all players from Redis
func (r *redisRepository) ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error) {
	names, err := r.client.SMembers(ctx, playersSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player names: %w", err)
	}

	if len(names) == 0 {
		return &ListPlayersOutput{
			Players: []*models.Player{},
		}, nil
	}

	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(names))
	for _, name := range names {
		playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, name)
		commands[name] = pipe.Get(ctx, playerKey)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	players := make([]*models.Player, 0, len(names))
	for name, cmd := range commands {
		playerJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get player %s: %w", name, err)
		}

		var player models.Player
		if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player %s: %w", name, err)
		}

		players = append(players, &player)
	}

	return &ListPlayersOutput{
		Players: players,
	}, nil
}

// DeletePlayer removes a player by name from Redis
func (r *redisRepository) DeletePlayer(ctx context.Context, input *DeletePlayerInput) error {
	if input == nil || input.Name == "" {
		return errors.New("input and player name cannot be empty")
	}

	playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, input.Name)
	deleted, err := r.client.Del(ctx, playerKey).Result()
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	if deleted == 0 {
		return ErrPlayerNotFound
	}

	if err := r.client.SRem(ctx, playersSetKey, input.Name).Err(); err != nil {
		return fmt.Errorf("failed to remove player from index: %w", err)
	}

	return nil
}
