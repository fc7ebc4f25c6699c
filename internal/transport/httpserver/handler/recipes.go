package handler

import (
	"net/http"
	"strings"

	recipesdomain "kitchen-app-go/internal/domain/recipes"

	"github.com/go-chi/chi/v5"
)

func (h *Handlers) ListRecipes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Recipes.ListRecipes())
}

func (h *Handlers) GetRecipe(w http.ResponseWriter, r *http.Request) {
	recipe, ok := h.Recipes.GetRecipe(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "recipe_not_found", "recipe not found")
		return
	}
	writeJSON(w, http.StatusOK, recipe)
}

func (h *Handlers) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var recipe recipesdomain.Recipe
	if err := decodeJSON(r, &recipe); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid body")
		return
	}
	if strings.TrimSpace(recipe.Name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}

	created := h.Recipes.AddRecipe(recipe)
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	var recipe recipesdomain.Recipe
	if err := decodeJSON(r, &recipe); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid body")
		return
	}

	recipe.ID = chi.URLParam(r, "id")
	h.Recipes.UpdateRecipe(recipe)
	writeJSON(w, http.StatusOK, recipe)
}

func (h *Handlers) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	h.Recipes.DeleteRecipe(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Recipes.ListCategories())
}

func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var category recipesdomain.Category
	if err := decodeJSON(r, &category); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid body")
		return
	}
	if strings.TrimSpace(category.Label) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "label is required")
		return
	}

	created := h.Recipes.AddCategory(category)
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var category recipesdomain.Category
	if err := decodeJSON(r, &category); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid body")
		return
	}

	category.ID = chi.URLParam(r, "id")
	h.Recipes.UpdateCategory(category)
	writeJSON(w, http.StatusOK, category)
}

func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	h.Recipes.DeleteCategory(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ReorderCategories(w http.ResponseWriter, r *http.Request) {
	var ordered []recipesdomain.Category
	if err := decodeJSON(r, &ordered); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid body")
		return
	}

	h.Recipes.ReorderCategories(ordered)
	writeJSON(w, http.StatusOK, h.Recipes.ListCategories())
}

func (h *Handlers) ListFeedback(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Recipes.ListFeedback(chi.URLParam(r, "id")))
}

func (h *Handlers) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	var entry recipesdomain.Feedback
	if err := decodeJSON(r, &entry); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid body")
		return
	}
	if entry.Rating < 1 || entry.Rating > 5 {
		writeError(w, http.StatusBadRequest, "invalid_request", "rating must be between 1 and 5")
		return
	}

	entry.RecipeID = chi.URLParam(r, "id")
	created := h.Recipes.AddFeedback(entry)
	writeJSON(w, http.StatusCreated, created)
}
