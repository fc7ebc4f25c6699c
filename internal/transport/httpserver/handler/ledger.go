package handler

import (
	"net/http"

	ledgerdomain "kitchen-app-go/internal/domain/ledger"

	"github.com/go-chi/chi/v5"
)

type budgetRequest struct {
	Monthly    *float64           `json:"monthly"`
	ByCategory map[string]float64 `json:"by_category"`
}

func (h *Handlers) ListExpenses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Ledger.List())
}

func (h *Handlers) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var record ledgerdomain.Record
	if err := decodeJSON(r, &record); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid body")
		return
	}
	if record.Amount < 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "amount must not be negative")
		return
	}

	created := h.Ledger.Add(record)
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) CreateExpenses(w http.ResponseWriter, r *http.Request) {
	var records []ledgerdomain.Record
	if err := decodeJSON(r, &records); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid body")
		return
	}
	for _, record := range records {
		if record.Amount < 0 {
			writeError(w, http.StatusBadRequest, "invalid_request", "amount must not be negative")
			return
		}
	}

	created := h.Ledger.AddBatch(records)
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	var record ledgerdomain.Record
	if err := decodeJSON(r, &record); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid body")
		return
	}

	record.ID = chi.URLParam(r, "id")
	h.Ledger.Update(record)
	writeJSON(w, http.StatusOK, record)
}

func (h *Handlers) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	h.Ledger.Delete(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) GetBudgets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Ledger.Budgets())
}

func (h *Handlers) UpdateBudgets(w http.ResponseWriter, r *http.Request) {
	var req budgetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid body")
		return
	}

	if req.Monthly != nil {
		h.Ledger.SetMonthlyBudget(*req.Monthly)
	}
	for category, amount := range req.ByCategory {
		h.Ledger.SetCategoryBudget(category, amount)
	}

	writeJSON(w, http.StatusOK, h.Ledger.Budgets())
}

func (h *Handlers) BudgetSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Ledger.Summary())
}
