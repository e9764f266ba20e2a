package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/denizatesh/foosleague/internal/services/roster"
)

type gameRequest struct {
	Name string `json:"name"`
}

func (h *Handler) createGame(w http.ResponseWriter, r *http.Request) {
	var req gameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeValidationFailure(w, "The payload is invalid", "Payload isn't a valid JSON object")
		return
	}

	output, err := h.config.RosterService.CreateGame(r.Context(), &roster.CreateGameInput{
		Name: req.Name,
	})
	if err != nil {
		h.writeError(w, err, fmt.Sprintf("Game '%s' couldn't be created", req.Name))
		return
	}

	h.writeSuccess(w, http.StatusOK, fmt.Sprintf("Game '%s' has been created", output.Game.Name), output.Game)
}

func (h *Handler) getGame(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		output, err := h.config.RosterService.ListGames(r.Context(), &roster.ListGamesInput{})
		if err != nil {
			h.writeError(w, err, "Games couldn't be listed")
			return
		}

		names := make([]string, 0, len(output.Games))
		for _, game := range output.Games {
			names = append(names, game.Name)
		}
		h.writeSuccess(w, http.StatusOK, "", names)
		return
	}

	output, err := h.config.RosterService.GetGame(r.Context(), &roster.GetGameInput{Name: name})
	if err != nil {
		h.writeError(w, err, fmt.Sprintf("Game '%s' couldn't be found", name))
		return
	}

	h.writeSuccess(w, http.StatusOK, "", output.Game)
}

func (h *Handler) deleteGame(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		h.writeValidationFailure(w, "The query is invalid", "Query doesn't have 'name' property")
		return
	}

	if _, err := h.config.RosterService.DeleteGame(r.Context(), &roster.DeleteGameInput{Name: name}); err != nil {
		h.writeError(w, err, fmt.Sprintf("Game '%s' couldn't be deleted", name))
		return
	}

	h.writeSuccess(w, http.StatusNoContent, "", nil)
}
