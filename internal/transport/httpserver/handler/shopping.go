package handler

import (
	"net/http"

	shoppingdomain "kitchen-app-go/internal/domain/shopping"

	"github.com/go-chi/chi/v5"
)

func (h *Handlers) ListShoppingItems(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Shopping.List())
}

func (h *Handlers) CreateShoppingItems(w http.ResponseWriter, r *http.Request) {
	var items []shoppingdomain.Item
	if err := decodeJSON(r, &items); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid body")
		return
	}

	created := h.Shopping.AddItems(items)
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) ToggleShoppingItem(w http.ResponseWriter, r *http.Request) {
	h.Shopping.Toggle(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, h.Shopping.List())
}

func (h *Handlers) DeleteShoppingItem(w http.ResponseWriter, r *http.Request) {
	h.Shopping.Delete(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ClearShoppingList(w http.ResponseWriter, r *http.Request) {
	h.Shopping.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) CheckoutShoppingList(w http.ResponseWriter, r *http.Request) {
	record, ok := h.Shopping.Checkout()
	if !ok {
		writeError(w, http.StatusConflict, "nothing_checked", "no checked items to purchase")
		return
	}
	writeJSON(w, http.StatusOK, record)
}
