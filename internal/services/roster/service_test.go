package roster

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/denizatesh/foosleague/internal/common/clock/mocks"
	"github.com/denizatesh/foosleague/internal/models"
	gameRepo "github.com/denizatesh/foosleague/internal/repositories/game"
	gameMocks "github.com/denizatesh/foosleague/internal/repositories/game/mocks"
	playerRepo "github.com/denizatesh/foosleague/internal/repositories/player"
	playerMocks "github.com/denizatesh/foosleague/internal/repositories/player/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RosterServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockGameRepo   *gameMocks.MockRepository
	mockPlayerRepo *playerMocks.MockRepository
	mockClock      *clockMocks.MockClock
	service        Service
	ctx            context.Context

	testTime time.Time
}

func (s *RosterServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameRepo = gameMocks.NewMockRepository(s.mockCtrl)
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		GameRepo:   s.mockGameRepo,
		PlayerRepo: s.mockPlayerRepo,
		Clock:      s.mockClock,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *RosterServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRosterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RosterServiceTestSuite))
}

func (s *RosterServiceTestSuite) TestCreateGame_HappyPath() {
	s.mockGameRepo.EXPECT().
		CreateGame(gomock.Any(), &gameRepo.CreateGameInput{
			Game: &models.Game{Name: "Foosball", CreatedAt: s.testTime},
		}).
		Return(nil)

	output, err := s.service.CreateGame(s.ctx, &CreateGameInput{Name: "Foosball"})

	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.Equal("Foosball", output.Game.Name)
}

func (s *RosterServiceTestSuite) TestCreateGame_EmptyName() {
	output, err := s.service.CreateGame(s.ctx, &CreateGameInput{Name: ""})

	s.Require().ErrorIs(err, ErrInvalidName)
	s.Nil(output)
}

func (s *RosterServiceTestSuite) TestCreateGame_Duplicate() {
	s.mockGameRepo.EXPECT().
		CreateGame(gomock.Any(), gomock.Any()).
		Return(gameRepo.ErrGameExists)

	output, err := s.service.CreateGame(s.ctx, &CreateGameInput{Name: "Foosball"})

	s.Require().ErrorIs(err, ErrGameExists)
	s.Nil(output)
}

func (s *RosterServiceTestSuite) TestGetGame_NotFound() {
	s.mockGameRepo.EXPECT().
		GetGame(gomock.Any(), &gameRepo.GetGameInput{Name: "missing"}).
		Return(nil, gameRepo.ErrGameNotFound)

	output, err := s.service.GetGame(s.ctx, &GetGameInput{Name: "missing"})

	s.Require().ErrorIs(err, ErrGameNotFound)
	s.Nil(output)
}

func (s *RosterServiceTestSuite) TestGetGame_StoreError() {
	storeErr := errors.New("connection reset")
	s.mockGameRepo.EXPECT().
		GetGame(gomock.Any(), gomock.Any()).
		Return(nil, storeErr)

	output, err := s.service.GetGame(s.ctx, &GetGameInput{Name: "Foosball"})

	s.Require().ErrorIs(err, storeErr)
	s.NotErrorIs(err, ErrGameNotFound)
	s.Nil(output)
}

func (s *RosterServiceTestSuite) TestListGames() {
	games := []*models.Game{
		{Name: "Foosball", CreatedAt: s.testTime},
		{Name: "Darts", CreatedAt: s.testTime},
	}
	s.mockGameRepo.EXPECT().
		ListGames(gomock.Any(), &gameRepo.ListGamesInput{}).
		Return(&gameRepo.ListGamesOutput{Games: games}, nil)

	output, err := s.service.ListGames(s.ctx, &ListGamesInput{})

	s.Require().NoError(err)
	s.Len(output.Games, 2)
}

func (s *RosterServiceTestSuite) TestDeleteGame_NotFound() {
	s.mockGameRepo.EXPECT().
		DeleteGame(gomock.Any(), &gameRepo.DeleteGameInput{Name: "missing"}).
		Return(gameRepo.ErrGameNotFound)

	output, err := s.service.DeleteGame(s.ctx, &DeleteGameInput{Name: "missing"})

	s.Require().ErrorIs(err, ErrGameNotFound)
	s.Nil(output)
}

func (s *RosterServiceTestSuite) TestCreatePlayer_HappyPath() {
	s.mockPlayerRepo.EXPECT().
		CreatePlayer(gomock.Any(), &playerRepo.CreatePlayerInput{
			Player: &models.Player{Name: "alice", CreatedAt: s.testTime},
		}).
		Return(nil)

	output, err := s.service.CreatePlayer(s.ctx, &CreatePlayerInput{Name: "alice"})

	s.Require().NoError(err)
	s.Equal("alice", output.Player.Name)
}

func (s *RosterServiceTestSuite) TestCreatePlayer_Duplicate() {
	s.mockPlayerRepo.EXPECT().
		CreatePlayer(gomock.Any(), gomock.Any()).
		Return(playerRepo.ErrPlayerExists)

	output, err := s.service.CreatePlayer(s.ctx, &CreatePlayerInput{Name: "alice"})

	s.Require().ErrorIs(err, ErrPlayerExists)
	s.Nil(output)
}

func (s *RosterServiceTestSuite) TestDeletePlayer_HappyPath() {
	s.mockPlayerRepo.EXPECT().
		DeletePlayer(gomock.Any(), &playerRepo.DeletePlayerInput{Name: "alice"}).
		Return(nil)

	output, err := s.service.DeletePlayer(s.ctx, &DeletePlayerInput{Name: "alice"})

	s.Require().NoError(err)
	s.NotNil(output)
}

func (s *RosterServiceTestSuite) TestDeletePlayer_NotFound() {
	s.mockPlayerRepo.EXPECT().
		DeletePlayer(gomock.Any(), gomock.Any()).
		Return(playerRepo.ErrPlayerNotFound)

	output, err := s.service.DeletePlayer(s.ctx, &DeletePlayerInput{Name: "missing"})

	s.Require().ErrorIs(err, ErrPlayerNotFound)
	s.Nil(output)
}
