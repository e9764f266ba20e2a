package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/denizatesh/foosleague/internal/models"
	"github.com/denizatesh/foosleague/internal/services/fixture"
	fixtureMocks "github.com/denizatesh/foosleague/internal/services/fixture/mocks"
	"github.com/denizatesh/foosleague/internal/services/league"
	leagueMocks "github.com/denizatesh/foosleague/internal/services/league/mocks"
	"github.com/denizatesh/foosleague/internal/services/roster"
	rosterMocks "github.com/denizatesh/foosleague/internal/services/roster/mocks"
	"github.com/denizatesh/foosleague/pkg/metrics"
)

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockRoster  *rosterMocks.MockService
	mockFixture *fixtureMocks.MockService
	mockLeague  *leagueMocks.MockService
	logHook     *logrustest.Hook
	router      http.Handler
}

func (s *HandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoster = rosterMocks.NewMockService(s.mockCtrl)
	s.mockFixture = fixtureMocks.NewMockService(s.mockCtrl)
	s.mockLeague = leagueMocks.NewMockService(s.mockCtrl)

	logger, hook := logrustest.NewNullLogger()
	logger.SetLevel(logrus.InfoLevel)
	s.logHook = hook

	handler, err := New(&Config{
		RosterService:  s.mockRoster,
		FixtureService: s.mockFixture,
		LeagueService:  s.mockLeague,
		Logger:         logger,
		Metrics:        metrics.New(),
	})
	s.Require().NoError(err)
	s.router = handler.Router()
}

func (s *HandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) do(method, target string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	return recorder
}

func (s *HandlerTestSuite) decodeFailure(recorder *httptest.ResponseRecorder) failureBody {
	var body failureBody
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func (s *HandlerTestSuite) TestCreateGame_Success() {
	s.mockRoster.EXPECT().
		CreateGame(gomock.Any(), &roster.CreateGameInput{Name: "Foosball"}).
		Return(&roster.CreateGameOutput{Game: &models.Game{Name: "Foosball"}}, nil)

	recorder := s.do(http.MethodPost, "/game", map[string]string{"name": "Foosball"})

	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Body.String(), "Game 'Foosball' has been created")
}

func (s *HandlerTestSuite) TestCreateGame_Duplicate() {
	s.mockRoster.EXPECT().
		CreateGame(gomock.Any(), gomock.Any()).
		Return(nil, roster.ErrGameExists)

	recorder := s.do(http.MethodPost, "/game", map[string]string{"name": "Foosball"})

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Equal("OPERATION_ERROR", s.decodeFailure(recorder).Code)
}

func (s *HandlerTestSuite) TestCreateGame_InvalidName() {
	s.mockRoster.EXPECT().
		CreateGame(gomock.Any(), gomock.Any()).
		Return(nil, roster.ErrInvalidName)

	recorder := s.do(http.MethodPost, "/game", map[string]string{"name": ""})

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Equal("VALIDATION_ERROR", s.decodeFailure(recorder).Code)
}

func (s *HandlerTestSuite) TestGetGame_ListsNames() {
	s.mockRoster.EXPECT().
		ListGames(gomock.Any(), gomock.Any()).
		Return(&roster.ListGamesOutput{Games: []*models.Game{
			{Name: "Foosball"},
			{Name: "Darts"},
		}}, nil)

	recorder := s.do(http.MethodGet, "/game", nil)

	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Body.String(), "Foosball")
	s.Contains(recorder.Body.String(), "Darts")
}

func (s *HandlerTestSuite) TestDeleteGame_MissingName() {
	recorder := s.do(http.MethodDelete, "/game", nil)

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Equal("VALIDATION_ERROR", s.decodeFailure(recorder).Code)
}

func (s *HandlerTestSuite) TestDeletePlayer_Success() {
	s.mockRoster.EXPECT().
		DeletePlayer(gomock.Any(), &roster.DeletePlayerInput{Name: "alice"}).
		Return(&roster.DeletePlayerOutput{}, nil)

	recorder := s.do(http.MethodDelete, "/player?name=alice", nil)

	s.Equal(http.StatusNoContent, recorder.Code)
}

func (s *HandlerTestSuite) TestCreateFixture_Success() {
	s.mockFixture.EXPECT().
		CreateFixture(gomock.Any(), &fixture.CreateFixtureInput{
			GameName:       "Foosball",
			TeamNames:      []string{"A", "B"},
			PlayersPerTeam: 2,
			PlayerPool:     []string{"p1", "p2", "p3", "p4"},
		}).
		Return(&fixture.CreateFixtureOutput{FixtureID: 1}, nil)

	recorder := s.do(http.MethodPost, "/fixture", map[string]any{
		"game":         "Foosball",
		"team_list":    []string{"A", "B"},
		"player_count": 2,
		"player_list":  []string{"p1", "p2", "p3", "p4"},
	})

	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Body.String(), "Fixture '1' has been created")
}

func (s *HandlerTestSuite) TestCreateFixture_InsufficientPlayers() {
	s.mockFixture.EXPECT().
		CreateFixture(gomock.Any(), gomock.Any()).
		Return(nil, fixture.ErrInsufficientPlayers)

	recorder := s.do(http.MethodPost, "/fixture", map[string]any{
		"game":         "Foosball",
		"team_list":    []string{"A", "B"},
		"player_count": 2,
		"player_list":  []string{"p1", "p2", "p3"},
	})

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Equal("SERVICE_ERROR", s.decodeFailure(recorder).Code)
}

func (s *HandlerTestSuite) TestCreateFixture_MissingGame() {
	recorder := s.do(http.MethodPost, "/fixture", map[string]any{
		"team_list":    []string{"A", "B"},
		"player_count": 2,
		"player_list":  []string{"p1", "p2", "p3", "p4"},
	})

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Equal("VALIDATION_ERROR", s.decodeFailure(recorder).Code)
}

func (s *HandlerTestSuite) TestRecordWinner_InactiveMatch() {
	s.mockFixture.EXPECT().
		RecordWinner(gomock.Any(), &fixture.RecordWinnerInput{
			FixtureID:  1,
			MatchIndex: 0,
			Winner:     "A",
		}).
		Return(nil, fixture.ErrMatchNotActive)

	recorder := s.do(http.MethodPut, "/fixture", map[string]any{
		"fixture_id":  1,
		"match_index": 0,
		"winner":      "A",
	})

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Equal("VALIDATION_ERROR", s.decodeFailure(recorder).Code)
}

func (s *HandlerTestSuite) TestGetFixture_BadID() {
	recorder := s.do(http.MethodGet, "/fixture?id=abc", nil)

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Equal("VALIDATION_ERROR", s.decodeFailure(recorder).Code)
}

func (s *HandlerTestSuite) TestSettle_Success() {
	s.mockLeague.EXPECT().
		Settle(gomock.Any(), &league.SettleInput{}).
		Return(&league.SettleOutput{
			Standings: []*models.LeagueStanding{
				{PlayerName: "p1", Point: 15, MatchCount: 1, GameName: "Foosball"},
			},
			SettledMatches: 1,
		}, nil)

	recorder := s.do(http.MethodPut, "/league", nil)

	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Body.String(), "League has been updated")
	s.Contains(recorder.Body.String(), "p1")
}

func (s *HandlerTestSuite) TestSettle_ScopedToFixture() {
	s.mockLeague.EXPECT().
		Settle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, input *league.SettleInput) (*league.SettleOutput, error) {
			s.Require().NotNil(input.FixtureID)
			s.Equal(int64(5), *input.FixtureID)
			return &league.SettleOutput{}, nil
		})

	recorder := s.do(http.MethodPut, "/league?id=5", nil)

	s.Equal(http.StatusOK, recorder.Code)
}

func (s *HandlerTestSuite) TestSettle_NoActiveMatch() {
	s.mockLeague.EXPECT().
		Settle(gomock.Any(), gomock.Any()).
		Return(nil, league.ErrNoActiveMatch)

	recorder := s.do(http.MethodPut, "/league", nil)

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Equal("OPERATION_ERROR", s.decodeFailure(recorder).Code)
}

func (s *HandlerTestSuite) TestSettle_StoreError() {
	s.mockLeague.EXPECT().
		Settle(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset"))

	recorder := s.do(http.MethodPut, "/league", nil)

	s.Equal(http.StatusInternalServerError, recorder.Code)
	s.Equal("DATABASE_ERROR", s.decodeFailure(recorder).Code)
}

func (s *HandlerTestSuite) TestGetStandings_ByPlayer() {
	s.mockLeague.EXPECT().
		ListStandingsByPlayer(gomock.Any(), &league.ListStandingsByPlayerInput{PlayerName: "p1"}).
		Return(&league.ListStandingsOutput{Standings: []*models.LeagueStanding{
			{PlayerName: "p1", GameName: "Foosball"},
		}}, nil)

	recorder := s.do(http.MethodGet, "/league?name=p1", nil)

	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Body.String(), "Foosball")
}

func (s *HandlerTestSuite) TestDeleteStandings_Success() {
	s.mockLeague.EXPECT().
		DeleteStandings(gomock.Any(), &league.DeleteStandingsInput{PlayerName: "p1"}).
		Return(&league.DeleteStandingsOutput{}, nil)

	recorder := s.do(http.MethodDelete, "/league?name=p1", nil)

	s.Equal(http.StatusNoContent, recorder.Code)
}

func (s *HandlerTestSuite) TestCreateTier_Success() {
	s.mockLeague.EXPECT().
		CreateTier(gomock.Any(), &league.CreateTierInput{Name: "Premier", Point: 30}).
		Return(&league.CreateTierOutput{Tier: &models.LeagueTier{Name: "Premier", Point: 30}}, nil)

	recorder := s.do(http.MethodPost, "/league-info", map[string]any{
		"name":  "Premier",
		"point": 30,
	})

	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Body.String(), "League 'Premier' has been created")
}

func (s *HandlerTestSuite) TestHealth() {
	recorder := s.do(http.MethodGet, "/health", nil)

	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Body.String(), "ok")
}

func (s *HandlerTestSuite) TestRequestIDAssigned() {
	recorder := s.do(http.MethodGet, "/health", nil)

	s.NotEmpty(recorder.Header().Get("X-Request-ID"))
}

func (s *HandlerTestSuite) TestRequestLogged() {
	s.do(http.MethodGet, "/health", nil)

	s.Require().NotEmpty(s.logHook.Entries)
	entry := s.logHook.LastEntry()
	s.Equal("request handled", entry.Message)
	s.Equal("/health", entry.Data["path"])
}
