package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/denizatesh/foosleague/internal/services/league"
)

type tierRequest struct {
	Name  string  `json:"name"`
	Point float64 `json:"point"`
}

func (h *Handler) createTier(w http.ResponseWriter, r *http.Request) {
	var req tierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeValidationFailure(w, "The payload is invalid", "Payload isn't a valid JSON object")
		return
	}

	output, err := h.config.LeagueService.CreateTier(r.Context(), &league.CreateTierInput{
		Name:  req.Name,
		Point: req.Point,
	})
	if err != nil {
		h.writeError(w, err, fmt.Sprintf("League '%s' couldn't be created", req.Name))
		return
	}

	h.writeSuccess(w, http.StatusOK, fmt.Sprintf("League '%s' has been created", output.Tier.Name), output.Tier)
}

func (h *Handler) getTier(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		output, err := h.config.LeagueService.ListTiers(r.Context(), &league.ListTiersInput{})
		if err != nil {
			h.writeError(w, err, "Leagues couldn't be listed")
			return
		}
		h.writeSuccess(w, http.StatusOK, "", output.Tiers)
		return
	}

	output, err := h.config.LeagueService.GetTier(r.Context(), &league.GetTierInput{Name: name})
	if err != nil {
		h.writeError(w, err, fmt.Sprintf("League '%s' couldn't be found", name))
		return
	}

	h.writeSuccess(w, http.StatusOK, "", output.Tier)
}

func (h *Handler) updateTier(w http.ResponseWriter, r *http.Request) {
	var req tierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeValidationFailure(w, "The payload is invalid", "Payload isn't a valid JSON object")
		return
	}

	output, err := h.config.LeagueService.UpdateTier(r.Context(), &league.UpdateTierInput{
		Name:  req.Name,
		Point: req.Point,
	})
	if err != nil {
		h.writeError(w, err, fmt.Sprintf("League '%s' couldn't be updated", req.Name))
		return
	}

	h.writeSuccess(w, http.StatusOK, fmt.Sprintf("League '%s' has been updated", output.Tier.Name), output.Tier)
}

func (h *Handler) deleteTier(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		h.writeValidationFailure(w, "The query is invalid", "Query doesn't have 'name' property")
		return
	}

	if _, err := h.config.LeagueService.DeleteTier(r.Context(), &league.DeleteTierInput{Name: name}); err != nil {
		h.writeError(w, err, fmt.Sprintf("League '%s' couldn't be deleted", name))
		return
	}

	h.writeSuccess(w, http.StatusNoContent, "", nil)
}

func (h *Handler) getStandings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if name := query.Get("name"); name != "" {
		output, err := h.config.LeagueService.ListStandingsByPlayer(r.Context(), &league.ListStandingsByPlayerInput{
			PlayerName: name,
		})
		if err != nil {
			h.writeError(w, err, fmt.Sprintf("League name '%s' couldn't be found", name))
			return
		}
		h.writeSuccess(w, http.StatusOK, "", output.Standings)
		return
	}

	if game := query.Get("game"); game != "" {
		output, err := h.config.LeagueService.ListStandingsByGame(r.Context(), &league.ListStandingsByGameInput{
			GameName: game,
		})
		if err != nil {
			h.writeError(w, err, fmt.Sprintf("League game '%s' couldn't be found", game))
			return
		}
		h.writeSuccess(w, http.StatusOK, "", output.Standings)
		return
	}

	output, err := h.config.LeagueService.ListStandings(r.Context(), &league.ListStandingsInput{})
	if err != nil {
		h.writeError(w, err, "League couldn't be listed")
		return
	}
	h.writeSuccess(w, http.StatusOK, "", output.Standings)
}

func (h *Handler) settle(w http.ResponseWriter, r *http.Request) {
	input := &league.SettleInput{}

	if rawID := r.URL.Query().Get("id"); rawID != "" {
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			h.writeValidationFailure(w, "The query is invalid", "Query 'id' property isn't a number")
			return
		}
		input.FixtureID = &id
	}

	output, err := h.config.LeagueService.Settle(r.Context(), input)
	if err != nil {
		h.config.Metrics.ObserveSettlement(0, err)
		h.writeError(w, err, "League couldn't be updated")
		return
	}
	h.config.Metrics.ObserveSettlement(output.SettledMatches, nil)

	h.writeSuccess(w, http.StatusOK, "League has been updated", output.Standings)
}

func (h *Handler) deleteStandings(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		h.writeValidationFailure(w, "The query is invalid", "Query doesn't have 'name' property")
		return
	}

	if _, err := h.config.LeagueService.DeleteStandings(r.Context(), &league.DeleteStandingsInput{
		PlayerName: name,
	}); err != nil {
		h.writeError(w, err, fmt.Sprintf("League name '%s' couldn't be deleted", name))
		return
	}

	h.writeSuccess(w, http.StatusNoContent, "", nil)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
