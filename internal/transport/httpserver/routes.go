package httpserver

import (
	"net/http"
	"time"

	"kitchen-app-go/internal/config"
	"kitchen-app-go/internal/transport/httpserver/handler"
	corsmw "kitchen-app-go/internal/transport/httpserver/middleware"
	"kitchen-app-go/pkg/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	// The assistant endpoints hold the request open for the model round-trip.
	r.Use(chimw.Timeout(2 * time.Minute))
	r.Use(corsmw.NewCORS([]string{"http://localhost:5173"}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Get("/pantry", handlers.ListIngredients)
		r.Post("/pantry", handlers.CreateIngredient)
		r.Post("/pantry/bulk", handlers.CreateIngredients)
		r.Get("/pantry/low-stock", handlers.ListLowStock)
		r.Put("/pantry/{id}", handlers.UpdateIngredient)
		r.Delete("/pantry/{id}", handlers.DeleteIngredient)

		r.Get("/recipes", handlers.ListRecipes)
		r.Post("/recipes", handlers.CreateRecipe)
		r.Get("/recipes/{id}", handlers.GetRecipe)
		r.Put("/recipes/{id}", handlers.UpdateRecipe)
		r.Delete("/recipes/{id}", handlers.DeleteRecipe)
		r.Get("/recipes/{id}/feedback", handlers.ListFeedback)
		r.Post("/recipes/{id}/feedback", handlers.CreateFeedback)

		r.Get("/categories", handlers.ListCategories)
		r.Post("/categories", handlers.CreateCategory)
		r.Put("/categories/reorder", handlers.ReorderCategories)
		r.Patch("/categories/{id}", handlers.UpdateCategory)
		r.Delete("/categories/{id}", handlers.DeleteCategory)

		r.Get("/shopping", handlers.ListShoppingItems)
		r.Post("/shopping", handlers.CreateShoppingItems)
		r.Post("/shopping/checkout", handlers.CheckoutShoppingList)
		r.Delete("/shopping", handlers.ClearShoppingList)
		r.Patch("/shopping/{id}", handlers.ToggleShoppingItem)
		r.Delete("/shopping/{id}", handlers.DeleteShoppingItem)

		r.Get("/queue", handlers.GetQueue)
		r.Post("/queue", handlers.Enqueue)
		r.Post("/queue/finish", handlers.FinishCooking)
		r.Delete("/queue", handlers.ClearQueue)
		r.Delete("/queue/{recipe_id}", handlers.Dequeue)

		r.Get("/meal-plans", handlers.ListMealPlans)
		r.Post("/meal-plans", handlers.CreateMealPlan)
		r.Delete("/meal-plans/{id}", handlers.DeleteMealPlan)

		r.Get("/expenses", handlers.ListExpenses)
		r.Post("/expenses", handlers.CreateExpense)
		r.Post("/expenses/bulk", handlers.CreateExpenses)
		r.Put("/expenses/{id}", handlers.UpdateExpense)
		r.Delete("/expenses/{id}", handlers.DeleteExpense)

		r.Get("/budget", handlers.GetBudgets)
		r.Put("/budget", handlers.UpdateBudgets)
		r.Get("/budget/summary", handlers.BudgetSummary)

		r.Get("/assistant/messages", handlers.ListMessages)
		r.Post("/assistant/messages", handlers.SendMessage)
		r.Post("/assistant/messages/{id}/confirm", handlers.ConfirmMessage)
		r.Get("/assistant/busy", handlers.AssistantBusy)
		r.Post("/assistant/recipe-import", handlers.ImportRecipe)
		r.Get("/assistant/recipe-import", handlers.PendingImport)
		r.Post("/assistant/recipe-import/confirm", handlers.ConfirmImport)
		r.Delete("/assistant/recipe-import", handlers.CancelImport)
	})

	return r
}
