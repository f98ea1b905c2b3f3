package api

import (
	"encoding/json"
	"net/http"
	"strconv"
)

type addRecipeRequest struct {
	Dish       string  `json:"dish"`
	Ingredient string  `json:"ingredient"`
	Amount     float64 `json:"amount"`
	Unit       string  `json:"unit"`
}

func (h *Handler) addRecipe(w http.ResponseWriter, r *http.Request) {
	var req addRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Dish == "" || req.Ingredient == "" {
		jsonError(w, http.StatusBadRequest, "dish and ingredient are required")
		return
	}

	e, err := h.recipes.Add(r.Context(), req.Dish, req.Ingredient, req.Amount, req.Unit)
	if err != nil {
		h.log.Error("add recipe failed", "dish", req.Dish, "err", err)
		jsonError(w, http.StatusInternalServerError, "could not add recipe entry")
		return
	}
	jsonResponse(w, http.StatusOK, e)
}

func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	dish := r.URL.Query().Get("dish")

	var err error
	var out interface{}
	if dish != "" {
		out, err = h.recipes.ListByDish(r.Context(), dish)
	} else {
		out, err = h.recipes.List(r.Context())
	}
	if err != nil {
		h.log.Error("list recipes failed", "err", err)
		jsonError(w, http.StatusInternalServerError, "could not load recipes")
		return
	}
	jsonResponse(w, http.StatusOK, out)
}

// deleteRecipe removes one entry by id; unknown ids are a quiet no-op.
func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid recipe id")
		return
	}
	if err := h.recipes.Delete(r.Context(), id); err != nil {
		h.log.Error("delete recipe failed", "id", id, "err", err)
		jsonError(w, http.StatusInternalServerError, "could not delete recipe entry")
		return
	}
	jsonResponse(w, http.StatusOK, nil)
}
