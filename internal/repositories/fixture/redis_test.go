package fixture

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/denizatesh/foosleague/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newFixture() *models.Fixture {
	return &models.Fixture{
		GameName: "Foosball",
		MatchInfo: []models.Match{
			{
				TeamList: map[string][]string{
					"A": {"alice", "bob"},
					"B": {"carol", "dave"},
				},
				Winner:   "",
				IsActive: true,
			},
		},
		CreatedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateFixture_GeneratesSequentialIDs() {
	first, err := s.repo.CreateFixture(context.Background(), &CreateFixtureInput{
		Fixture: s.newFixture(),
	})
	s.Require().NoError(err)
	s.Equal(int64(1), first.FixtureID)

	second, err := s.repo.CreateFixture(context.Background(), &CreateFixtureInput{
		Fixture: s.newFixture(),
	})
	s.Require().NoError(err)
	s.Equal(int64(2), second.FixtureID)
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetFixture() {
	created, err := s.repo.CreateFixture(context.Background(), &CreateFixtureInput{
		Fixture: s.newFixture(),
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetFixture(context.Background(), &GetFixtureInput{
		FixtureID: created.FixtureID,
	})
	s.Require().NoError(err)
	s.Equal(created.FixtureID, retrieved.ID)
	s.Equal("Foosball", retrieved.GameName)
	s.Require().Len(retrieved.MatchInfo, 1)
	s.True(retrieved.MatchInfo[0].IsActive)
	s.Equal("", retrieved.MatchInfo[0].Winner)
	s.Equal([]string{"alice", "bob"}, retrieved.MatchInfo[0].TeamList["A"])
}

func (s *RedisRepositoryTestSuite) TestGetFixture_NotFound() {
	_, err := s.repo.GetFixture(context.Background(), &GetFixtureInput{
		FixtureID: 42,
	})
	s.Require().ErrorIs(err, ErrFixtureNotFound)
}

func (s *RedisRepositoryTestSuite) TestListFixtures() {
	for i := 0; i < 3; i++ {
		_, err := s.repo.CreateFixture(context.Background(), &CreateFixtureInput{
			Fixture: s.newFixture(),
		})
		s.Require().NoError(err)
	}

	output, err := s.repo.ListFixtures(context.Background(), &ListFixturesInput{})
	s.Require().NoError(err)
	s.Len(output.Fixtures, 3)
}

func (s *RedisRepositoryTestSuite) TestUpdateFixture() {
	created, err := s.repo.CreateFixture(context.Background(), &CreateFixtureInput{
		Fixture: s.newFixture(),
	})
	s.Require().NoError(err)

	record, err := s.repo.GetFixture(context.Background(), &GetFixtureInput{
		FixtureID: created.FixtureID,
	})
	s.Require().NoError(err)

	record.MatchInfo[0].Winner = "A"
	record.MatchInfo[0].IsActive = false

	err = s.repo.UpdateFixture(context.Background(), &UpdateFixtureInput{
		Fixture: record,
	})
	s.Require().NoError(err)

	updated, err := s.repo.GetFixture(context.Background(), &GetFixtureInput{
		FixtureID: created.FixtureID,
	})
	s.Require().NoError(err)
	s.Equal("A", updated.MatchInfo[0].Winner)
	s.False(updated.MatchInfo[0].IsActive)
}

func (s *RedisRepositoryTestSuite) TestUpdateFixture_NotFound() {
	record := s.newFixture()
	record.ID = 42

	err := s.repo.UpdateFixture(context.Background(), &UpdateFixtureInput{
		Fixture: record,
	})
	s.Require().ErrorIs(err, ErrFixtureNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteFixture() {
	created, err := s.repo.CreateFixture(context.Background(), &CreateFixtureInput{
		Fixture: s.newFixture(),
	})
	s.Require().NoError(err)

	err = s.repo.DeleteFixture(context.Background(), &DeleteFixtureInput{
		FixtureID: created.FixtureID,
	})
	s.Require().NoError(err)

	_, err = s.repo.GetFixture(context.Background(), &GetFixtureInput{
		FixtureID: created.FixtureID,
	})
	s.Require().ErrorIs(err, ErrFixtureNotFound)

	output, err := s.repo.ListFixtures(context.Background(), &ListFixturesInput{})
	s.Require().NoError(err)
	s.Empty(output.Fixtures)
}

func (s *RedisRepositoryTestSuite) TestDeleteFixture_NotFound() {
	err := s.repo.DeleteFixture(context.Background(), &DeleteFixtureInput{
		FixtureID: 42,
	})
	s.Require().ErrorIs(err, ErrFixtureNotFound)
}
