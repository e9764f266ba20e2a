package league

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/denizatesh/foosleague/internal/common/clock/mocks"
	"github.com/denizatesh/foosleague/internal/models"
	fixtureRepo "github.com/denizatesh/foosleague/internal/repositories/fixture"
	fixtureMocks "github.com/denizatesh/foosleague/internal/repositories/fixture/mocks"
	tierRepo "github.com/denizatesh/foosleague/internal/repositories/leaguetier"
	tierMocks "github.com/denizatesh/foosleague/internal/repositories/leaguetier/mocks"
	standingRepo "github.com/denizatesh/foosleague/internal/repositories/standing"
	standingMocks "github.com/denizatesh/foosleague/internal/repositories/standing/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LeagueServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockTierRepo     *tierMocks.MockRepository
	mockStandingRepo *standingMocks.MockRepository
	mockFixtureRepo  *fixtureMocks.MockRepository
	mockClock        *clockMocks.MockClock
	service          Service
	ctx              context.Context

	testTime time.Time
}

func (s *LeagueServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockTierRepo = tierMocks.NewMockRepository(s.mockCtrl)
	s.mockStandingRepo = standingMocks.NewMockRepository(s.mockCtrl)
	s.mockFixtureRepo = fixtureMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		TierRepo:     s.mockTierRepo,
		StandingRepo: s.mockStandingRepo,
		FixtureRepo:  s.mockFixtureRepo,
		Clock:        s.mockClock,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *LeagueServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLeagueServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeagueServiceTestSuite))
}

func (s *LeagueServiceTestSuite) expectTiers(tiers ...*models.LeagueTier) {
	s.mockTierRepo.EXPECT().
		ListTiers(gomock.Any(), &tierRepo.ListTiersInput{}).
		Return(&tierRepo.ListTiersOutput{Tiers: tiers}, nil)
}

func (s *LeagueServiceTestSuite) expectStanding(standing *models.LeagueStanding) {
	s.mockStandingRepo.EXPECT().
		GetStanding(gomock.Any(), &standingRepo.GetStandingInput{
			PlayerName: standing.PlayerName,
			GameName:   standing.GameName,
		}).
		Return(standing, nil)
}

func (s *LeagueServiceTestSuite) expectNoStanding(playerName, gameName string) {
	s.mockStandingRepo.EXPECT().
		GetStanding(gomock.Any(), &standingRepo.GetStandingInput{
			PlayerName: playerName,
			GameName:   gameName,
		}).
		Return(nil, standingRepo.ErrStandingNotFound)
}

func (s *LeagueServiceTestSuite) expectSave(standing *models.LeagueStanding) {
	s.mockStandingRepo.EXPECT().
		SaveStanding(gomock.Any(), &standingRepo.SaveStandingInput{Standing: standing}).
		Return(nil)
}

func twoTeamFixture(id int64, winner string) *models.Fixture {
	return &models.Fixture{
		ID:       id,
		GameName: "Foosball",
		MatchInfo: []models.Match{
			{
				TeamList: map[string][]string{
					"A": {"p1", "p2"},
					"B": {"p3", "p4"},
				},
				Winner:   winner,
				IsActive: true,
			},
		},
	}
}

func (s *LeagueServiceTestSuite) TestSettle_PointTransfer() {
	fixtureID := int64(1)
	fix := twoTeamFixture(fixtureID, "A")

	s.mockFixtureRepo.EXPECT().
		GetFixture(gomock.Any(), &fixtureRepo.GetFixtureInput{FixtureID: fixtureID}).
		Return(fix, nil)

	s.expectTiers(
		&models.LeagueTier{Name: "Bal", Point: 5},
		&models.LeagueTier{Name: "Silver", Point: 10},
		&models.LeagueTier{Name: "Gold", Point: 20},
	)

	s.expectStanding(&models.LeagueStanding{
		PlayerName: "p1", Point: 3, MatchCount: 2, LeagueName: "Bal", GameName: "Foosball",
	})
	s.expectStanding(&models.LeagueStanding{
		PlayerName: "p2", Point: 0, MatchCount: 1, LeagueName: "Bal", GameName: "Foosball",
	})
	s.expectStanding(&models.LeagueStanding{
		PlayerName: "p3", Point: 8, MatchCount: 4, LeagueName: "Silver", GameName: "Foosball",
	})
	s.expectStanding(&models.LeagueStanding{
		PlayerName: "p4", Point: 30, MatchCount: 6, LeagueName: "Gold", GameName: "Foosball",
	})

	// winPoint = (10 + 20) / 2 = 15: winners gain points and a match,
	// losers only gain a match.
	s.expectSave(&models.LeagueStanding{
		PlayerName: "p1", Point: 18, MatchCount: 3, LeagueName: "Bal", GameName: "Foosball", UpdatedAt: s.testTime,
	})
	s.expectSave(&models.LeagueStanding{
		PlayerName: "p2", Point: 15, MatchCount: 2, LeagueName: "Bal", GameName: "Foosball", UpdatedAt: s.testTime,
	})
	s.expectSave(&models.LeagueStanding{
		PlayerName: "p3", Point: 8, MatchCount: 5, LeagueName: "Silver", GameName: "Foosball", UpdatedAt: s.testTime,
	})
	s.expectSave(&models.LeagueStanding{
		PlayerName: "p4", Point: 30, MatchCount: 7, LeagueName: "Gold", GameName: "Foosball", UpdatedAt: s.testTime,
	})

	s.mockFixtureRepo.EXPECT().
		UpdateFixture(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *fixtureRepo.UpdateFixtureInput) error {
			s.False(input.Fixture.MatchInfo[0].IsActive)
			return nil
		})

	s.mockStandingRepo.EXPECT().
		ListStandings(gomock.Any(), &standingRepo.ListStandingsInput{}).
		Return(&standingRepo.ListStandingsOutput{}, nil)

	output, err := s.service.Settle(s.ctx, &SettleInput{FixtureID: &fixtureID})

	s.Require().NoError(err)
	s.Equal(1, output.SettledMatches)
}

func (s *LeagueServiceTestSuite) TestSettle_NewPlayersGetDefaultTier() {
	fixtureID := int64(2)
	fix := &models.Fixture{
		ID:       fixtureID,
		GameName: "Foosball",
		MatchInfo: []models.Match{
			{
				TeamList: map[string][]string{
					"A": {"p1"},
					"B": {"p2"},
				},
				Winner:   "B",
				IsActive: true,
			},
		},
	}

	s.mockFixtureRepo.EXPECT().
		GetFixture(gomock.Any(), gomock.Any()).
		Return(fix, nil)

	s.expectTiers(
		&models.LeagueTier{Name: "Gold", Point: 20},
		&models.LeagueTier{Name: "Bal", Point: 5},
	)

	s.expectNoStanding("p1", "Foosball")
	s.expectNoStanding("p2", "Foosball")

	// The loser is brand new, so its default tier "Bal" is worth 5.
	s.expectSave(&models.LeagueStanding{
		PlayerName: "p2", Point: 5, MatchCount: 1, LeagueName: "Bal", GameName: "Foosball", UpdatedAt: s.testTime,
	})
	s.expectSave(&models.LeagueStanding{
		PlayerName: "p1", Point: 0, MatchCount: 1, LeagueName: "Bal", GameName: "Foosball", UpdatedAt: s.testTime,
	})

	s.mockFixtureRepo.EXPECT().
		UpdateFixture(gomock.Any(), gomock.Any()).
		Return(nil)

	s.mockStandingRepo.EXPECT().
		ListStandings(gomock.Any(), gomock.Any()).
		Return(&standingRepo.ListStandingsOutput{}, nil)

	output, err := s.service.Settle(s.ctx, &SettleInput{FixtureID: &fixtureID})

	s.Require().NoError(err)
	s.Equal(1, output.SettledMatches)
}

func (s *LeagueServiceTestSuite) TestSettle_NoActiveMatch() {
	fix := twoTeamFixture(3, "A")
	fix.MatchInfo[0].IsActive = false

	s.mockFixtureRepo.EXPECT().
		ListFixtures(gomock.Any(), &fixtureRepo.ListFixturesInput{}).
		Return(&fixtureRepo.ListFixturesOutput{Fixtures: []*models.Fixture{fix}}, nil)

	output, err := s.service.Settle(s.ctx, &SettleInput{})

	s.Require().ErrorIs(err, ErrNoActiveMatch)
	s.Nil(output)
}

func (s *LeagueServiceTestSuite) TestSettle_UndecidedMatchSkipped() {
	fixtureID := int64(4)
	fix := twoTeamFixture(fixtureID, "")

	s.mockFixtureRepo.EXPECT().
		GetFixture(gomock.Any(), gomock.Any()).
		Return(fix, nil)

	s.expectTiers(&models.LeagueTier{Name: "Bal", Point: 5})

	s.mockStandingRepo.EXPECT().
		ListStandings(gomock.Any(), gomock.Any()).
		Return(&standingRepo.ListStandingsOutput{}, nil)

	output, err := s.service.Settle(s.ctx, &SettleInput{FixtureID: &fixtureID})

	s.Require().NoError(err)
	s.Equal(0, output.SettledMatches)
	s.True(fix.MatchInfo[0].IsActive)
}

func (s *LeagueServiceTestSuite) TestSettle_FixtureNotFound() {
	fixtureID := int64(99)

	s.mockFixtureRepo.EXPECT().
		GetFixture(gomock.Any(), &fixtureRepo.GetFixtureInput{FixtureID: fixtureID}).
		Return(nil, fixtureRepo.ErrFixtureNotFound)

	output, err := s.service.Settle(s.ctx, &SettleInput{FixtureID: &fixtureID})

	s.Require().ErrorIs(err, ErrFixtureNotFound)
	s.Nil(output)
}

func (s *LeagueServiceTestSuite) TestSettle_NoTiers() {
	fixtureID := int64(5)

	s.mockFixtureRepo.EXPECT().
		GetFixture(gomock.Any(), gomock.Any()).
		Return(twoTeamFixture(fixtureID, "A"), nil)

	s.expectTiers()

	output, err := s.service.Settle(s.ctx, &SettleInput{FixtureID: &fixtureID})

	s.Require().ErrorIs(err, ErrNoTiers)
	s.Nil(output)
}

func (s *LeagueServiceTestSuite) TestSettle_StoreErrorAborts() {
	fixtureID := int64(6)
	storeErr := errors.New("connection reset")

	s.mockFixtureRepo.EXPECT().
		GetFixture(gomock.Any(), gomock.Any()).
		Return(twoTeamFixture(fixtureID, "A"), nil)

	s.expectTiers(&models.LeagueTier{Name: "Bal", Point: 5})

	s.mockStandingRepo.EXPECT().
		GetStanding(gomock.Any(), gomock.Any()).
		Return(nil, storeErr)

	output, err := s.service.Settle(s.ctx, &SettleInput{FixtureID: &fixtureID})

	s.Require().ErrorIs(err, storeErr)
	s.ErrorContains(err, "league could not be updated")
	s.Nil(output)
}

func (s *LeagueServiceTestSuite) TestCreateTier_HappyPath() {
	s.mockTierRepo.EXPECT().
		CreateTier(gomock.Any(), &tierRepo.CreateTierInput{
			Tier: &models.LeagueTier{Name: "Premier", Point: 30},
		}).
		Return(nil)

	output, err := s.service.CreateTier(s.ctx, &CreateTierInput{Name: "Premier", Point: 30})

	s.Require().NoError(err)
	s.Equal("Premier", output.Tier.Name)
}

func (s *LeagueServiceTestSuite) TestCreateTier_Duplicate() {
	s.mockTierRepo.EXPECT().
		CreateTier(gomock.Any(), gomock.Any()).
		Return(tierRepo.ErrTierExists)

	output, err := s.service.CreateTier(s.ctx, &CreateTierInput{Name: "Premier", Point: 30})

	s.Require().ErrorIs(err, ErrTierExists)
	s.Nil(output)
}

func (s *LeagueServiceTestSuite) TestCreateTier_EmptyName() {
	output, err := s.service.CreateTier(s.ctx, &CreateTierInput{Name: ""})

	s.Require().ErrorIs(err, ErrInvalidTier)
	s.Nil(output)
}

func (s *LeagueServiceTestSuite) TestUpdateTier_NotFound() {
	s.mockTierRepo.EXPECT().
		UpdateTier(gomock.Any(), gomock.Any()).
		Return(tierRepo.ErrTierNotFound)

	output, err := s.service.UpdateTier(s.ctx, &UpdateTierInput{Name: "ghost", Point: 1})

	s.Require().ErrorIs(err, ErrTierNotFound)
	s.Nil(output)
}

func (s *LeagueServiceTestSuite) TestDeleteTier_NotFound() {
	s.mockTierRepo.EXPECT().
		DeleteTier(gomock.Any(), &tierRepo.DeleteTierInput{Name: "ghost"}).
		Return(tierRepo.ErrTierNotFound)

	output, err := s.service.DeleteTier(s.ctx, &DeleteTierInput{Name: "ghost"})

	s.Require().ErrorIs(err, ErrTierNotFound)
	s.Nil(output)
}

func (s *LeagueServiceTestSuite) TestDeleteStandings_NotFound() {
	s.mockStandingRepo.EXPECT().
		DeleteStandingsByPlayer(gomock.Any(), &standingRepo.DeleteStandingsByPlayerInput{PlayerName: "ghost"}).
		Return(standingRepo.ErrStandingNotFound)

	output, err := s.service.DeleteStandings(s.ctx, &DeleteStandingsInput{PlayerName: "ghost"})

	s.Require().ErrorIs(err, ErrStandingNotFound)
	s.Nil(output)
}

func (s *LeagueServiceTestSuite) TestDeleteStandings_HappyPath() {
	s.mockStandingRepo.EXPECT().
		DeleteStandingsByPlayer(gomock.Any(), &standingRepo.DeleteStandingsByPlayerInput{PlayerName: "p1"}).
		Return(nil)

	output, err := s.service.DeleteStandings(s.ctx, &DeleteStandingsInput{PlayerName: "p1"})

	s.Require().NoError(err)
	s.NotNil(output)
}

func (s *LeagueServiceTestSuite) TestListStandingsByGame() {
	standings := []*models.LeagueStanding{
		{PlayerName: "p1", GameName: "Foosball", Point: 10},
	}

	s.mockStandingRepo.EXPECT().
		ListStandingsByGame(gomock.Any(), &standingRepo.ListStandingsByGameInput{GameName: "Foosball"}).
		Return(&standingRepo.ListStandingsOutput{Standings: standings}, nil)

	output, err := s.service.ListStandingsByGame(s.ctx, &ListStandingsByGameInput{GameName: "Foosball"})

	s.Require().NoError(err)
	s.Len(output.Standings, 1)
}
