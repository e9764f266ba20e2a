package leaguetier

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
	tierKeyPrefix = "league_tier:"
	tiersSetKey   = "league_tiers"
)

// ErrTierNotFound is returned when a tier is not found
var ErrTierNotFound = errors.New("league tier not found")

// ErrTierExists is returned when creating a tier whose name is taken
var ErrTierExists = errors.New("league tier already exists")

// Config holds configuration for the Redis league tier repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed league tier repository
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

// CreateTier persists a tier to Redis
func (r *redisRepository) CreateTier(ctx context.Context, input *CreateTierInput) error {
	if input == nil || input.Tier == nil {
		return errors.New("input and tier cannot be nil")
	}

	tier := input.Tier
	if tier.Name == "" {
		return errors.New("tier name cannot be empty")
	}

	tierKey := fmt.Sprintf("%s%s", tierKeyPrefix, tier.Name)

	exists, err := r.client.Exists(ctx, tierKey).Result()
	if err != nil {
		return fmt.Errorf("failed to check tier existence: %w", err)
	}
	if exists > 0 {
		return ErrTierExists
	}

	return r.write(ctx, tier)
}

// GetTier retrieves a tier by name from Redis
func (r *redisRepository) GetTier(ctx context.Context, input *GetTierInput) (*models.LeagueTier, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and tier name cannot be empty")
	}

	tierKey := fmt.Sprintf("%s%s", tierKeyPrefix, input.Name)
	tierJSON, err := r.client.Get(ctx, tierKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrTierNotFound
		}
		return nil, fmt.Errorf("failed to get tier: %w", err)
	}

	var tier models.LeagueTier
	if err := json.Unmarshal([]byte(tierJSON), &tier); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tier: %w", err)
	}

	return &tier, nil
}

// ListTiers retrieves all tiers from Redis
func (r *redisRepository) ListTiers(ctx context.Context, input *ListTiersInput) (*ListTiersOutput, error) {
	names, err := r.client.SMembers(ctx, tiersSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get tier names: %w", err)
	}

	if len(names) == 0 {
		return &ListTiersOutput{
			Tiers: []*models.LeagueTier{},
		}, nil
	}

	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(names))
	for _, name := range names {
		tierKey := fmt.Sprintf("%s%s", tierKeyPrefix, name)
		commands[name] = pipe.Get(ctx, tierKey)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get tiers: %w", err)
	}

	tiers := make([]*models.LeagueTier, 0, len(names))
	for name, cmd := range commands {
		tierJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get tier %s: %w", name, err)
		}

		var tier models.LeagueTier
		if err := json.Unmarshal([]byte(tierJSON), &tier); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tier %s: %w", name, err)
		}

		tiers = append(tiers, &tier)
	}

	return &ListTiersOutput{
		Tiers: tiers,
	}, nil
}

// UpdateTier replaces an existing tier in Redis
func (r *redisRepository) UpdateTier(ctx context.Context, input *UpdateTierInput) error {
	if input == nil || input.Tier == nil {
		return errors.New("input and tier cannot be nil")
	}

	if input.Tier.Name == "" {
		return errors.New("tier name cannot be empty")
	}

	tierKey := fmt.Sprintf("%s%s", tierKeyPrefix, input.Tier.Name)

	exists, err := r.client.Exists(ctx, tierKey).Result()
	if err != nil {
		return fmt.Errorf("failed to check tier existence: %w", err)
	}
	if exists == 0 {
		return ErrTierNotFound
	}

	return r.write(ctx, input.Tier)
}

// DeleteTier removes a tier by name from Redis
func (r *redisRepository) DeleteTier(ctx context.Context, input *DeleteTierInput) error {
	if input == nil || input.Name == "" {
		return errors.New("input and tier name cannot be empty")
	}

	tierKey := fmt.Sprintf("%s%s", tierKeyPrefix, input.Name)
	deleted, err := r.client.Del(ctx, tierKey).Result()
	if err != nil {
		return fmt.Errorf("failed to delete tier: %w", err)
	}
	if deleted == 0 {
		return ErrTierNotFound
	}

	if err := r.client.SRem(ctx, tiersSetKey, input.Name).Err(); err != nil {
		return fmt.Errorf("failed to remove tier from index: %w", err)
	}

	return nil
}

func (r *redisRepository) write(ctx context.Context, tier *models.LeagueTier) error {
	tierJSON, err := json.Marshal(tier)
	if err != nil {
		return fmt.Errorf("failed to marshal tier: %w", err)
	}

	tierKey := fmt.Sprintf("%s%s", tierKeyPrefix, tier.Name)

	pipe := r.client.Pipeline()
	pipe.Set(ctx, tierKey, tierJSON, 0)
	pipe.SAdd(ctx, tiersSetKey, tier.Name)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save tier: %w", err)
	}

	return nil
}
