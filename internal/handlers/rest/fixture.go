package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/denizatesh/foosleague/internal/models"
	"github.com/denizatesh/foosleague/internal/services/fixture"
)

type createFixtureRequest struct {
	Game        string   `json:"game"`
	TeamList    []string `json:"team_list"`
	PlayerCount int      `json:"player_count"`
	PlayerList  []string `json:"player_list"`
}

type createFixtureResponse struct {
	FixtureID int64          `json:"fixture_id"`
	Matches   []models.Match `json:"matches"`
	Leftover  []string       `json:"leftover_players,omitempty"`
}

type recordWinnerRequest struct {
	FixtureID  int64  `json:"fixture_id"`
	MatchIndex int    `json:"match_index"`
	Winner     string `json:"winner"`
}

func (h *Handler) createFixture(w http.ResponseWriter, r *http.Request) {
	var req createFixtureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeValidationFailure(w, "The payload is invalid", "Payload isn't a valid JSON object")
		return
	}

	if req.Game == "" {
		h.writeValidationFailure(w, "The payload is invalid", "Payload object doesn't have 'game' property")
		return
	}
	if len(req.TeamList) == 0 {
		h.writeValidationFailure(w, "The payload is invalid", "Payload object doesn't have 'team_list' property")
		return
	}
	if len(req.PlayerList) == 0 {
		h.writeValidationFailure(w, "The payload is invalid", "The 'player_list' property is empty")
		return
	}

	output, err := h.config.FixtureService.CreateFixture(r.Context(), &fixture.CreateFixtureInput{
		GameName:       req.Game,
		TeamNames:      req.TeamList,
		PlayersPerTeam: req.PlayerCount,
		PlayerPool:     req.PlayerList,
	})
	if err != nil {
		h.writeError(w, err, "Fixture couldn't be created")
		return
	}

	h.writeSuccess(w, http.StatusOK,
		fmt.Sprintf("Fixture '%d' has been created", output.FixtureID),
		createFixtureResponse{
			FixtureID: output.FixtureID,
			Matches:   output.Matches,
			Leftover:  output.Leftover,
		})
}

func (h *Handler) getFixture(w http.ResponseWriter, r *http.Request) {
	rawID := r.URL.Query().Get("id")
	if rawID == "" {
		output, err := h.config.FixtureService.ListFixtures(r.Context(), &fixture.ListFixturesInput{})
		if err != nil {
			h.writeError(w, err, "Fixtures couldn't be listed")
			return
		}
		h.writeSuccess(w, http.StatusOK, "", output.Fixtures)
		return
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		h.writeValidationFailure(w, "The query is invalid", "Query 'id' property isn't a number")
		return
	}

	output, err := h.config.FixtureService.GetFixture(r.Context(), &fixture.GetFixtureInput{FixtureID: id})
	if err != nil {
		h.writeError(w, err, fmt.Sprintf("Fixture '%d' couldn't be found", id))
		return
	}

	h.writeSuccess(w, http.StatusOK, "", output.Fixture)
}

func (h *Handler) recordWinner(w http.ResponseWriter, r *http.Request) {
	var req recordWinnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeValidationFailure(w, "The payload is invalid", "Payload isn't a valid JSON object")
		return
	}

	if req.Winner == "" {
		h.writeValidationFailure(w, "The payload is invalid", "Payload object doesn't have 'winner' property")
		return
	}

	output, err := h.config.FixtureService.RecordWinner(r.Context(), &fixture.RecordWinnerInput{
		FixtureID:  req.FixtureID,
		MatchIndex: req.MatchIndex,
		Winner:     req.Winner,
	})
	if err != nil {
		h.writeError(w, err, fmt.Sprintf("Fixture '%d' couldn't be updated", req.FixtureID))
		return
	}

	h.writeSuccess(w, http.StatusOK,
		fmt.Sprintf("Fixture '%d' has been updated", req.FixtureID), output.Fixture)
}

func (h *Handler) deleteFixture(w http.ResponseWriter, r *http.Request) {
	rawID := r.URL.Query().Get("id")
	if rawID == "" {
		h.writeValidationFailure(w, "The query is invalid", "Query doesn't have 'id' property")
		return
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		h.writeValidationFailure(w, "The query is invalid", "Query 'id' property isn't a number")
		return
	}

	if _, err := h.config.FixtureService.DeleteFixture(r.Context(), &fixture.DeleteFixtureInput{FixtureID: id}); err != nil {
		h.writeError(w, err, fmt.Sprintf("Fixture '%d' couldn't be deleted", id))
		return
	}

	h.writeSuccess(w, http.StatusNoContent, "", nil)
}
