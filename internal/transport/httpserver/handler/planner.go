package handler

import (
	"net/http"
	"strings"

	plannerdomain "kitchen-app-go/internal/domain/planner"

	"github.com/go-chi/chi/v5"
)

type enqueueRequest struct {
	RecipeID string `json:"recipe_id"`
}

func (h *Handlers) GetQueue(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Planner.Queue())
}

func (h *Handlers) Enqueue(w http.ResponseWriter, r *http.Request) {
	var req enqueueRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid body")
		return
	}
	if strings.TrimSpace(req.RecipeID) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "recipe_id is required")
		return
	}

	h.Planner.Enqueue(req.RecipeID)
	writeJSON(w, http.StatusOK, h.Planner.Queue())
}

func (h *Handlers) Dequeue(w http.ResponseWriter, r *http.Request) {
	h.Planner.Dequeue(chi.URLParam(r, "recipe_id"))
	writeJSON(w, http.StatusOK, h.Planner.Queue())
}

func (h *Handlers) ClearQueue(w http.ResponseWriter, r *http.Request) {
	h.Planner.ClearQueue()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) FinishCooking(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Planner.FinishCooking())
}

func (h *Handlers) ListMealPlans(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Planner.ListPlans())
}

func (h *Handlers) CreateMealPlan(w http.ResponseWriter, r *http.Request) {
	var plan plannerdomain.MealPlan
	if err := decodeJSON(r, &plan); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid body")
		return
	}
	if plan.RecipeID == "" || plan.Date == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "recipe_id and date are required")
		return
	}

	created := h.Planner.AddPlan(plan)
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) DeleteMealPlan(w http.ResponseWriter, r *http.Request) {
	h.Planner.DeletePlan(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
