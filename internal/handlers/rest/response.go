package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/denizatesh/foosleague/internal/services/fixture"
	"github.com/denizatesh/foosleague/internal/services/league"
	"github.com/denizatesh/foosleague/internal/services/roster"
)

// Failure codes of the API's error taxonomy
const (
	codeValidationError = "VALIDATION_ERROR"
	codeOperationError  = "OPERATION_ERROR"
	codeServiceError    = "SERVICE_ERROR"
	codeDatabaseError   = "DATABASE_ERROR"

	detailRequiredProperty = "REQUIRED_PROPERTY"
	detailPropertyCheck    = "PROPERTY_CHECK"
	detailDatabaseError    = "DATABASE_ERROR"
)

type successBody struct {
	Description string `json:"description,omitempty"`
	Details     any    `json:"details,omitempty"`
}

type failureDetail struct {
	Code        string `json:"code,omitempty"`
	Description string `json:"description,omitempty"`
}

type failureBody struct {
	Code        string        `json:"code"`
	Description string        `json:"description"`
	Details     failureDetail `json:"details"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if status == http.StatusNoContent || body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.config.Logger.WithError(err).Error("failed to encode response")
	}
}

func (h *Handler) writeSuccess(w http.ResponseWriter, status int, description string, details any) {
	if status == http.StatusNoContent {
		h.writeJSON(w, status, nil)
		return
	}
	h.writeJSON(w, status, successBody{
		Description: description,
		Details:     details,
	})
}

func (h *Handler) writeValidationFailure(w http.ResponseWriter, description, detail string) {
	h.writeJSON(w, http.StatusBadRequest, failureBody{
		Code:        codeValidationError,
		Description: description,
		Details: failureDetail{
			Code:        detailRequiredProperty,
			Description: detail,
		},
	})
}

// writeError maps a service error onto the failure envelope. Sentinels
// classify as client faults; anything unrecognized is a store fault.
func (h *Handler) writeError(w http.ResponseWriter, err error, description string) {
	status, code, detailCode := classify(err)
	h.writeJSON(w, status, failureBody{
		Code:        code,
		Description: description,
		Details: failureDetail{
			Code:        detailCode,
			Description: err.Error(),
		},
	})
}

func classify(err error) (status int, code, detailCode string) {
	switch {
	case errors.Is(err, roster.ErrInvalidName),
		errors.Is(err, fixture.ErrGameNotFound),
		errors.Is(err, fixture.ErrPlayerNotFound),
		errors.Is(err, fixture.ErrDuplicatePlayers),
		errors.Is(err, fixture.ErrEmptyPlayerPool),
		errors.Is(err, fixture.ErrInvalidTeamSetup),
		errors.Is(err, fixture.ErrMatchIndexOutOfRange),
		errors.Is(err, fixture.ErrMatchNotActive),
		errors.Is(err, fixture.ErrUnknownWinnerTeam),
		errors.Is(err, league.ErrInvalidTier):
		return http.StatusBadRequest, codeValidationError, detailPropertyCheck

	case errors.Is(err, roster.ErrGameNotFound),
		errors.Is(err, roster.ErrPlayerNotFound),
		errors.Is(err, roster.ErrGameExists),
		errors.Is(err, roster.ErrPlayerExists),
		errors.Is(err, fixture.ErrFixtureNotFound),
		errors.Is(err, league.ErrFixtureNotFound),
		errors.Is(err, league.ErrTierNotFound),
		errors.Is(err, league.ErrTierExists),
		errors.Is(err, league.ErrNoTiers),
		errors.Is(err, league.ErrStandingNotFound),
		errors.Is(err, league.ErrNoActiveMatch):
		return http.StatusBadRequest, codeOperationError, detailPropertyCheck

	case errors.Is(err, fixture.ErrInsufficientPlayers):
		return http.StatusBadRequest, codeServiceError, detailPropertyCheck

	default:
		return http.StatusInternalServerError, codeDatabaseError, detailDatabaseError
	}
}
