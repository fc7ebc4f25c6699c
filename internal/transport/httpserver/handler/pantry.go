package handler

import (
	"net/http"
	"strings"

	pantrydomain "kitchen-app-go/internal/domain/pantry"

	"github.com/go-chi/chi/v5"
)

func (h *Handlers) ListIngredients(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Pantry.List())
}

func (h *Handlers) ListLowStock(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Pantry.LowStock())
}

func (h *Handlers) CreateIngredient(w http.ResponseWriter, r *http.Request) {
	var ingredient pantrydomain.Ingredient
	if err := decodeJSON(r, &ingredient); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid body")
		return
	}
	if strings.TrimSpace(ingredient.Name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}

	created := h.Pantry.Add(ingredient)
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) CreateIngredients(w http.ResponseWriter, r *http.Request) {
	var ingredients []pantrydomain.Ingredient
	if err := decodeJSON(r, &ingredients); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid body")
		return
	}

	created := h.Pantry.AddBatch(ingredients)
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) UpdateIngredient(w http.ResponseWriter, r *http.Request) {
	var ingredient pantrydomain.Ingredient
	if err := decodeJSON(r, &ingredient); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid body")
		return
	}

	ingredient.ID = chi.URLParam(r, "id")
	h.Pantry.Update(ingredient)
	writeJSON(w, http.StatusOK, ingredient)
}

func (h *Handlers) DeleteIngredient(w http.ResponseWriter, r *http.Request) {
	h.Pantry.Delete(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
