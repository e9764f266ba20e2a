package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/denizatesh/foosleague/internal/services/roster"
)

type playerRequest struct {
	Name string `json:"name"`
}

func (h *Handler) createPlayer(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeValidationFailure(w, "The payload is invalid", "Payload isn't a valid JSON object")
		return
	}

	output, err := h.config.RosterService.CreatePlayer(r.Context(), &roster.CreatePlayerInput{
		Name: req.Name,
	})
	if err != nil {
		h.writeError(w, err, fmt.Sprintf("Player '%s' couldn't be created", req.Name))
		return
	}

	h.writeSuccess(w, http.StatusOK, fmt.Sprintf("Player '%s' has been created", output.Player.Name), output.Player)
}

func (h *Handler) getPlayer(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		output, err := h.config.RosterService.ListPlayers(r.Context(), &roster.ListPlayersInput{})
		if err != nil {
			h.writeError(w, err, "Players couldn't be listed")
			return
		}

		names := make([]string, 0, len(output.Players))
		for _, player := range output.Players {
			names = append(names, player.Name)
		}
		h.writeSuccess(w, http.StatusOK, "", names)
		return
	}

	output, err := h.config.RosterService.GetPlayer(r.Context(), &roster.GetPlayerInput{Name: name})
	if err != nil {
		h.writeError(w, err, fmt.Sprintf("Player '%s' couldn't be found", name))
		return
	}

	h.writeSuccess(w, http.StatusOK, "", output.Player)
}

func (h *Handler) deletePlayer(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		h.writeValidationFailure(w, "The query is invalid", "Query doesn't have 'name' property")
		return
	}

	if _, err := h.config.RosterService.DeletePlayer(r.Context(), &roster.DeletePlayerInput{Name: name}); err != nil {
		h.writeError(w, err, fmt.Sprintf("Player '%s' couldn't be deleted", name))
		return
	}

	h.writeSuccess(w, http.StatusNoContent, "", nil)
}
