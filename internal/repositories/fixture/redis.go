package fixture

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/denizatesh/foosleague/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	fixtureKeyPrefix = "fixture:"
	fixturesSetKey   = "fixtures"
	fixtureIDKey     = "fixture:next_id"
)

// ErrFixtureNotFound is returned when a fixture is not found
var ErrFixtureNotFound = errors.New("fixture not found")

// Config holds configuration for the Redis fixture repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed fixture repository
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

func fixtureKey(id int64) string {
	return fmt.Sprintf("%s%d", fixtureKeyPrefix, id)
}

// CreateFixture assigns the next id from the fixture counter and persists
// the record under it
func (r *redisRepository) CreateFixture(ctx context.Context, input *CreateFixtureInput) (*CreateFixtureOutput, error) {
	if input == nil || input.Fixture == nil {
		return nil, errors.New("input and fixture cannot be nil")
	}

	if input.Fixture.GameName == "" {
		return nil, errors.New("fixture game name cannot be empty")
	}

	id, err := r.client.Incr(ctx, fixtureIDKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to generate fixture id: %w", err)
	}

	record := *input.Fixture
	record.ID = id

	recordJSON, err := json.Marshal(&record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fixture: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fixtureKey(id), recordJSON, 0)
	pipe.SAdd(ctx, fixturesSetKey, strconv.FormatInt(id, 10))

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save fixture: %w", err)
	}

	return &CreateFixtureOutput{
		FixtureID: id,
	}, nil
}

// GetFixture retrieves a fixture by id from Redis
func (r *redisRepository) GetFixture(ctx context.Context, input *GetFixtureInput) (*models.Fixture, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	recordJSON, err := r.client.Get(ctx, fixtureKey(input.FixtureID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrFixtureNotFound
		}
		return nil, fmt.Errorf("failed to get fixture: %w", err)
	}

	var record models.Fixture
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fixture: %w", err)
	}

	return &record, nil
}

// ListFixtures retrieves all fixtures from Redis
func (r *redisRepository) ListFixtures(ctx context.Context, input *ListFixturesInput) (*ListFixturesOutput, error) {
	ids, err := r.client.SMembers(ctx, fixturesSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get fixture ids: %w", err)
	}

	if len(ids) == 0 {
		return &ListFixturesOutput{
			Fixtures: []*models.Fixture{},
		}, nil
	}

	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(ids))
	for _, id := range ids {
		key := fmt.Sprintf("%s%s", fixtureKeyPrefix, id)
		commands[id] = pipe.Get(ctx, key)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get fixtures: %w", err)
	}

	fixtures := make([]*models.Fixture, 0, len(ids))
	for id, cmd := range commands {
		recordJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Fixture was deleted between the index read and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get fixture %s: %w", id, err)
		}

		var record models.Fixture
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal fixture %s: %w", id, err)
		}

		fixtures = append(fixtures, &record)
	}

	return &ListFixturesOutput{
		Fixtures: fixtures,
	}, nil
}

// UpdateFixture replaces a whole fixture record in Redis
func (r *redisRepository) UpdateFixture(ctx context.Context, input *UpdateFixtureInput) error {
	if input == nil || input.Fixture == nil {
		return errors.New("input and fixture cannot be nil")
	}

	key := fixtureKey(input.Fixture.ID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to check fixture existence: %w", err)
	}
	if exists == 0 {
		return ErrFixtureNotFound
	}

	recordJSON, err := json.Marshal(input.Fixture)
	if err != nil {
		return fmt.Errorf("failed to marshal fixture: %w", err)
	}

	if err := r.client.Set(ctx, key, recordJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to update fixture: %w", err)
	}

	return nil
}

// DeleteFixture removes a fixture by id from Redis
func (r *redisRepository) DeleteFixture(ctx context.Context, input *DeleteFixtureInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	deleted, err := r.client.Del(ctx, fixtureKey(input.FixtureID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete fixture: %w", err)
	}
	if deleted == 0 {
		return ErrFixtureNotFound
	}

	if err := r.client.SRem(ctx, fixturesSetKey, strconv.FormatInt(input.FixtureID, 10)).Err(); err != nil {
		return fmt.Errorf("failed to remove fixture from index: %w", err)
	}

	return nil
}
