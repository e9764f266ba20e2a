// Package rest exposes the HTTP surface: roster, fixture and league
// routes plus health and metrics.
package rest

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/denizatesh/foosleague/internal/services/fixture"
	"github.com/denizatesh/foosleague/internal/services/league"
	"github.com/denizatesh/foosleague/internal/services/roster"
	"github.com/denizatesh/foosleague/pkg/metrics"
)

// Config holds configuration for the REST handler
type Config struct {
	RosterService  roster.Service
	FixtureService fixture.Service
	LeagueService  league.Service

	Logger  *logrus.Logger
	Metrics *metrics.Manager
}

// Handler serves the REST API
type Handler struct {
	config *Config
}

// New creates a new REST handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RosterService == nil {
		return nil, errors.New("roster service cannot be nil")
	}

	if cfg.FixtureService == nil {
		return nil, errors.New("fixture service cannot be nil")
	}

	if cfg.LeagueService == nil {
		return nil, errors.New("league service cannot be nil")
	}

	if cfg.Logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.Metrics == nil {
		return nil, errors.New("metrics manager cannot be nil")
	}

	return &Handler{
		config: cfg,
	}, nil
}

// Router builds the service's route table
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.requestID, h.instrument)

	r.HandleFunc("/game", h.createGame).Methods(http.MethodPost)
	r.HandleFunc("/game", h.getGame).Methods(http.MethodGet)
	r.HandleFunc("/game", h.deleteGame).Methods(http.MethodDelete)

	r.HandleFunc("/player", h.createPlayer).Methods(http.MethodPost)
	r.HandleFunc("/player", h.getPlayer).Methods(http.MethodGet)
	r.HandleFunc("/player", h.deletePlayer).Methods(http.MethodDelete)

	r.HandleFunc("/fixture", h.createFixture).Methods(http.MethodPost)
	r.HandleFunc("/fixture", h.getFixture).Methods(http.MethodGet)
	r.HandleFunc("/fixture", h.recordWinner).Methods(http.MethodPut)
	r.HandleFunc("/fixture", h.deleteFixture).Methods(http.MethodDelete)

	r.HandleFunc("/league-info", h.createTier).Methods(http.MethodPost)
	r.HandleFunc("/league-info", h.getTier).Methods(http.MethodGet)
	r.HandleFunc("/league-info", h.updateTier).Methods(http.MethodPut)
	r.HandleFunc("/league-info", h.deleteTier).Methods(http.MethodDelete)

	r.HandleFunc("/league", h.getStandings).Methods(http.MethodGet)
	r.HandleFunc("/league", h.settle).Methods(http.MethodPut)
	r.HandleFunc("/league", h.deleteStandings).Methods(http.MethodDelete)

	r.HandleFunc("/health", h.health).Methods(http.MethodGet)
	r.Handle("/metrics", h.config.Metrics.Handler()).Methods(http.MethodGet)

	return r
}
