//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"kitchen-app-go/internal/ai"
	"kitchen-app-go/internal/config"
	"kitchen-app-go/internal/db"
	assistantdomain "kitchen-app-go/internal/domain/assistant"
	ledgerdomain "kitchen-app-go/internal/domain/ledger"
	pantrydomain "kitchen-app-go/internal/domain/pantry"
	plannerdomain "kitchen-app-go/internal/domain/planner"
	recipesdomain "kitchen-app-go/internal/domain/recipes"
	shoppingdomain "kitchen-app-go/internal/domain/shopping"
	"kitchen-app-go/internal/store"
	"kitchen-app-go/internal/transport/httpserver"
	"kitchen-app-go/internal/transport/httpserver/handler"
	"kitchen-app-go/pkg/logger"
)

// stubGateway stands in for the generative model so the suite runs offline.
type stubGateway struct {
	expenses    *ai.BookkeepingResult
	expensesErr error
	recipe      *ai.RecipeDraft
	recipeErr   error
}

func (s *stubGateway) ParseExpenses(ctx context.Context, text, image string) (*ai.BookkeepingResult, error) {
	return s.expenses, s.expensesErr
}

func (s *stubGateway) ParseRecipe(ctx context.Context, text string) (*ai.RecipeDraft, error) {
	return s.recipe, s.recipeErr
}

type testEnv struct {
	server  *httptest.Server
	gateway *stubGateway
}

func setupE2E(t *testing.T) *testEnv {
	t.Helper()

	log := logger.Discard()

	dbConn, err := db.Open(config.DBConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "kitchen.db"),
	}, log)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	slots, err := store.NewGorm(dbConn, log)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}

	gateway := &stubGateway{}

	pantryService := pantrydomain.NewService(slots, log)
	recipesService := recipesdomain.NewService(slots, log)
	ledgerService := ledgerdomain.NewService(slots, log)
	shoppingService := shoppingdomain.NewService(slots, ledgerService, pantryService, log)
	plannerService := plannerdomain.NewService(slots, recipesService, ledgerService, log)
	assistantService := assistantdomain.NewService(slots, gateway, ledgerService, recipesService, log)

	handlers := handler.New(pantryService, recipesService, shoppingService, plannerService, ledgerService, assistantService, log)
	router := httpserver.NewRouter(config.Config{}, handlers, log)

	server := httptest.NewServer(router)
	t.Cleanup(func() {
		server.Close()
		if sqlDB, err := dbConn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return &testEnv{server: server, gateway: gateway}
}

func requestJSON(t *testing.T, client *http.Client, method, url string, payload interface{}) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}

	return resp, respBody
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func TestE2EHealth(t *testing.T) {
	env := setupE2E(t)
	client := &http.Client{Timeout: 5 * time.Second}

	resp, body := requestJSON(t, client, http.MethodGet, env.server.URL+"/api/health", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var health map[string]string
	if err := json.Unmarshal(body, &health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if health["status"] != "ok" {
		t.Fatalf("expected ok, got %q", health["status"])
	}
}

func TestE2EShoppingCheckoutFlow(t *testing.T) {
	env := setupE2E(t)
	client := &http.Client{Timeout: 5 * time.Second}

	resp, body := requestJSON(t, client, http.MethodPost, env.server.URL+"/api/shopping", []map[string]interface{}{
		{"name": "Rice", "price": 5.0},
		{"name": "Eggs", "price": 10.0},
		{"name": "Vinegar", "price": 8.0},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, string(body))
	}
	var items []shoppingdomain.Item
	if err := json.Unmarshal(body, &items); err != nil {
		t.Fatalf("decode items: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}

	// Nothing checked yet, checkout must refuse.
	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/shopping/checkout", nil)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", resp.StatusCode, string(body))
	}
	var errResp errorEnvelope
	if err := json.Unmarshal(body, &errResp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if errResp.Error.Code != "nothing_checked" {
		t.Fatalf("expected nothing_checked, got %q", errResp.Error.Code)
	}

	for _, item := range items[:2] {
		resp, body = requestJSON(t, client, http.MethodPatch, env.server.URL+"/api/shopping/"+item.ID, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
		}
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/shopping/checkout", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var record ledgerdomain.Record
	if err := json.Unmarshal(body, &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if record.Amount != 15 || record.Type != "purchase" {
		t.Fatalf("expected purchase of 15, got %+v", record)
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/shopping", nil)
	if err := json.Unmarshal(body, &items); err != nil {
		t.Fatalf("decode items: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Vinegar" {
		t.Fatalf("expected only unchecked item left, got %+v", items)
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/pantry", nil)
	var ingredients []pantrydomain.Ingredient
	if err := json.Unmarshal(body, &ingredients); err != nil {
		t.Fatalf("decode pantry: %v", err)
	}
	if len(ingredients) != 2 {
		t.Fatalf("expected purchased items in pantry, got %+v", ingredients)
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/expenses", nil)
	var records []ledgerdomain.Record
	if err := json.Unmarshal(body, &records); err != nil {
		t.Fatalf("decode expenses: %v", err)
	}
	if len(records) != 1 || records[0].ID != record.ID {
		t.Fatalf("expected checkout record in ledger, got %+v", records)
	}
}

func TestE2ECookingQueueFlow(t *testing.T) {
	env := setupE2E(t)
	client := &http.Client{Timeout: 5 * time.Second}

	resp, body := requestJSON(t, client, http.MethodPost, env.server.URL+"/api/recipes", map[string]interface{}{
		"name": "Fried rice",
		"ingredients": []map[string]interface{}{
			{"name": "Rice", "amount": 200, "unit": "g", "price": 2.0},
		},
		"steps": []map[string]string{{"instruction": "Fry."}},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, string(body))
	}
	var recipe recipesdomain.Recipe
	if err := json.Unmarshal(body, &recipe); err != nil {
		t.Fatalf("decode recipe: %v", err)
	}
	if recipe.EstimatedCost != 2 {
		t.Fatalf("expected estimated cost 2, got %v", recipe.EstimatedCost)
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/queue", map[string]string{
		"recipe_id": recipe.ID,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}

	// Enqueueing the same recipe twice keeps one entry.
	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/queue", map[string]string{
		"recipe_id": recipe.ID,
	})
	var queue []string
	if err := json.Unmarshal(body, &queue); err != nil {
		t.Fatalf("decode queue: %v", err)
	}
	if len(queue) != 1 {
		t.Fatalf("expected deduplicated queue, got %+v", queue)
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/queue/finish", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var records []ledgerdomain.Record
	if err := json.Unmarshal(body, &records); err != nil {
		t.Fatalf("decode records: %v", err)
	}
	if len(records) != 1 || records[0].Type != "cooking" || records[0].Amount != 0 {
		t.Fatalf("expected one zero-amount cooking record, got %+v", records)
	}
	if records[0].Description != "Fried rice" {
		t.Fatalf("expected recipe name, got %q", records[0].Description)
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/queue", nil)
	if err := json.Unmarshal(body, &queue); err != nil {
		t.Fatalf("decode queue: %v", err)
	}
	if len(queue) != 0 {
		t.Fatalf("expected empty queue, got %+v", queue)
	}
}

func TestE2EBudgetFlow(t *testing.T) {
	env := setupE2E(t)
	client := &http.Client{Timeout: 5 * time.Second}

	resp, body := requestJSON(t, client, http.MethodGet, env.server.URL+"/api/budget", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var budgets ledgerdomain.Budgets
	if err := json.Unmarshal(body, &budgets); err != nil {
		t.Fatalf("decode budgets: %v", err)
	}
	if budgets.Monthly != 2000 || budgets.ByCategory["eat"] != 1000 {
		t.Fatalf("unexpected default budgets: %+v", budgets)
	}

	resp, body = requestJSON(t, client, http.MethodPut, env.server.URL+"/api/budget", map[string]interface{}{
		"monthly":     3000.0,
		"by_category": map[string]float64{"eat": 1500},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, &budgets); err != nil {
		t.Fatalf("decode budgets: %v", err)
	}
	if budgets.Monthly != 3000 || budgets.ByCategory["eat"] != 1500 {
		t.Fatalf("unexpected updated budgets: %+v", budgets)
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/budget/summary", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var summary ledgerdomain.Summary
	if err := json.Unmarshal(body, &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.MonthlyBudget != 3000 || summary.From == "" || summary.To == "" {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestE2EAssistantBookkeepingFlow(t *testing.T) {
	env := setupE2E(t)
	client := &http.Client{Timeout: 5 * time.Second}

	env.gateway.expenses = &ai.BookkeepingResult{
		ResponseText: "Logged your lunch.",
		Items:        []ai.ExpenseItem{{Amount: 12, Description: "Lunch", Category: "food"}},
	}

	resp, body := requestJSON(t, client, http.MethodPost, env.server.URL+"/api/assistant/messages", map[string]string{
		"text": "lunch 12",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var reply assistantdomain.Message
	if err := json.Unmarshal(body, &reply); err != nil {
		t.Fatalf("decode reply: %v", err)
	}
	if len(reply.Items) != 1 || reply.Items[0].Category != "eat" {
		t.Fatalf("expected one normalized item, got %+v", reply.Items)
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/assistant/messages/"+reply.ID+"/confirm", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var confirmed assistantdomain.Message
	if err := json.Unmarshal(body, &confirmed); err != nil {
		t.Fatalf("decode confirmed: %v", err)
	}
	if !confirmed.IsConfirmed {
		t.Fatalf("expected confirmed message, got %+v", confirmed)
	}

	// Confirming again must not duplicate the ledger record.
	requestJSON(t, client, http.MethodPost, env.server.URL+"/api/assistant/messages/"+reply.ID+"/confirm", nil)

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/expenses", nil)
	var records []ledgerdomain.Record
	if err := json.Unmarshal(body, &records); err != nil {
		t.Fatalf("decode expenses: %v", err)
	}
	if len(records) != 1 || records[0].Amount != 12 {
		t.Fatalf("expected exactly one record, got %+v", records)
	}

	// An unreachable model reads back as a chat message, not an HTTP error.
	env.gateway.expenses = nil
	env.gateway.expensesErr = &ai.NetworkError{Err: errors.New("connection refused")}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/assistant/messages", map[string]string{
		"text": "dinner 30",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var failReply assistantdomain.Message
	if err := json.Unmarshal(body, &failReply); err != nil {
		t.Fatalf("decode reply: %v", err)
	}
	if failReply.ErrorCode != "network_error" || len(failReply.Items) != 0 {
		t.Fatalf("expected network failure message, got %+v", failReply)
	}
}

func TestE2ERecipeImportFlow(t *testing.T) {
	env := setupE2E(t)
	client := &http.Client{Timeout: 5 * time.Second}

	env.gateway.recipe = &ai.RecipeDraft{
		Name:        "Miso soup",
		Ingredients: []ai.RecipeIngredient{{Name: "Tofu", Amount: 200, Unit: "g"}},
		Steps:       []ai.RecipeStep{{Instruction: "Simmer."}},
	}

	resp, body := requestJSON(t, client, http.MethodPost, env.server.URL+"/api/assistant/recipe-import", map[string]string{
		"text": "miso soup: simmer tofu",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var state assistantdomain.ImportState
	if err := json.Unmarshal(body, &state); err != nil {
		t.Fatalf("decode import state: %v", err)
	}
	if state.Draft == nil || state.Draft.Name != "Miso soup" {
		t.Fatalf("expected pending draft, got %+v", state)
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/assistant/recipe-import/confirm", nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, string(body))
	}
	var recipe recipesdomain.Recipe
	if err := json.Unmarshal(body, &recipe); err != nil {
		t.Fatalf("decode recipe: %v", err)
	}
	if recipe.ID == "" || recipe.Name != "Miso soup" {
		t.Fatalf("unexpected recipe: %+v", recipe)
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/assistant/recipe-import/confirm", nil)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for second confirm, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/recipes", nil)
	var listed []recipesdomain.Recipe
	if err := json.Unmarshal(body, &listed); err != nil {
		t.Fatalf("decode recipes: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != recipe.ID {
		t.Fatalf("expected imported recipe listed, got %+v", listed)
	}
}

func TestE2ECategoryGuards(t *testing.T) {
	env := setupE2E(t)
	client := &http.Client{Timeout: 5 * time.Second}

	resp, body := requestJSON(t, client, http.MethodDelete, env.server.URL+"/api/categories/all", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/categories", nil)
	var categories []recipesdomain.Category
	if err := json.Unmarshal(body, &categories); err != nil {
		t.Fatalf("decode categories: %v", err)
	}
	if len(categories) != 1 || categories[0].ID != "all" {
		t.Fatalf("expected sentinel to survive deletion, got %+v", categories)
	}
}
