package standing

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
	standingKeyPrefix       = "standing:"
	standingsSetKey         = "standings"
	gameStandingsKeyPrefix  = "game_standings:"
	playerStandingsKeyPrefix = "player_standings:"
)

// ErrStandingNotFound is returned when a standing is not found
var ErrStandingNotFound = errors.New("league standing not found")

// Config holds configuration for the Redis standing repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed standing repository
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

func standingKey(gameName, playerName string) string {
	return fmt.Sprintf("%s%s:%s", standingKeyPrefix, gameName, playerName)
}

// SaveStanding upserts a standing and maintains the player and game indexes
func (r *redisRepository) SaveStanding(ctx context.Context, input *SaveStandingInput) error {
	if input == nil || input.Standing == nil {
		return errors.New("input and standing cannot be nil")
	}

	record := input.Standing
	if record.PlayerName == "" || record.GameName == "" {
		return errors.New("standing player and game names cannot be empty")
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal standing: %w", err)
	}

	key := standingKey(record.GameName, record.PlayerName)

	pipe := r.client.Pipeline()
	pipe.Set(ctx, key, recordJSON, 0)
	pipe.SAdd(ctx, standingsSetKey, key)
	pipe.SAdd(ctx, fmt.Sprintf("%s%s", gameStandingsKeyPrefix, record.GameName), record.PlayerName)
	pipe.SAdd(ctx, fmt.Sprintf("%s%s", playerStandingsKeyPrefix, record.PlayerName), record.GameName)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save standing: %w", err)
	}

	return nil
}

// GetStanding retrieves a standing by (player, game) from Redis
func (r *redisRepository) GetStanding(ctx context.Context, input *GetStandingInput) (*models.LeagueStanding, error) {
	if input == nil || input.PlayerName == "" || input.GameName == "" {
		return nil, errors.New("input, player name and game name cannot be empty")
	}

	recordJSON, err := r.client.Get(ctx, standingKey(input.GameName, input.PlayerName)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrStandingNotFound
		}
		return nil, fmt.Errorf("failed to get standing: %w", err)
	}

	var record models.LeagueStanding
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal standing: %w", err)
	}

	return &record, nil
}

// ListStandings retrieves all standings from Redis
func (r *redisRepository) ListStandings(ctx context.Context, input *ListStandingsInput) (*ListStandingsOutput, error) {
	keys, err := r.client.SMembers(ctx, standingsSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get standing keys: %w", err)
	}

	return r.fetch(ctx, keys)
}

// ListStandingsByPlayer retrieves one player's standings across games
func (r *redisRepository) ListStandingsByPlayer(ctx context.Context, input *ListStandingsByPlayerInput) (*ListStandingsOutput, error) {
	if input == nil || input.PlayerName == "" {
		return nil, errors.New("input and player name cannot be empty")
	}

	games, err := r.client.SMembers(ctx, fmt.Sprintf("%s%s", playerStandingsKeyPrefix, input.PlayerName)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player standing index: %w", err)
	}

	keys := make([]string, 0, len(games))
	for _, gameName := range games {
		keys = append(keys, standingKey(gameName, input.PlayerName))
	}

	return r.fetch(ctx, keys)
}

// ListStandingsByGame retrieves all standings within one game
func (r *redisRepository) ListStandingsByGame(ctx context.Context, input *ListStandingsByGameInput) (*ListStandingsOutput, error) {
	if input == nil || input.GameName == "" {
		return nil, errors.New("input and game name cannot be empty")
	}

	players, err := r.client.SMembers(ctx, fmt.Sprintf("%s%s", gameStandingsKeyPrefix, input.GameName)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get game standing index: %w", err)
	}

	keys := make([]string, 0, len(players))
	for _, playerName := range players {
		keys = append(keys, standingKey(input.GameName, playerName))
	}

	return r.fetch(ctx, keys)
}

// DeleteStandingsByPlayer removes all of a player's standings and index entries
func (r *redisRepository) DeleteStandingsByPlayer(ctx context.Context, input *DeleteStandingsByPlayerInput) error {
	if input == nil || input.PlayerName == "" {
		return errors.New("input and player name cannot be empty")
	}

	playerSetKey := fmt.Sprintf("%s%s", playerStandingsKeyPrefix, input.PlayerName)
	games, err := r.client.SMembers(ctx, playerSetKey).Result()
	if err != nil {
		return fmt.Errorf("failed to get player standing index: %w", err)
	}

	if len(games) == 0 {
		return ErrStandingNotFound
	}

	pipe := r.client.Pipeline()
	for _, gameName := range games {
		key := standingKey(gameName, input.PlayerName)
		pipe.Del(ctx, key)
		pipe.SRem(ctx, standingsSetKey, key)
		pipe.SRem(ctx, fmt.Sprintf("%s%s", gameStandingsKeyPrefix, gameName), input.PlayerName)
	}
	pipe.Del(ctx, playerSetKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete standings: %w", err)
	}

	return nil
}

func (r *redisRepository) fetch(ctx context.Context, keys []string) (*ListStandingsOutput, error) {
	if len(keys) == 0 {
		return &ListStandingsOutput{
			Standings: []*models.LeagueStanding{},
		}, nil
	}

	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(keys))
	for _, key := range keys {
		commands[key] = pipe.Get(ctx, key)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get standings: %w", err)
	}

	standings := make([]*models.LeagueStanding, 0, len(keys))
	for key, cmd := range commands {
		recordJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Standing was deleted between the index read and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get standing %s: %w", key, err)
		}

		var record models.LeagueStanding
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal standing %s: %w", key, err)
		}

		standings = append(standings, &record)
	}

	return &ListStandingsOutput{
		Standings: standings,
	}, nil
}
