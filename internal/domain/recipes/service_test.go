package recipes

import (
	"testing"

	"kitchen-app-go/internal/store"
	"kitchen-app-go/pkg/logger"
)

func newTestService() *Service {
	return NewService(store.NewMemory(), logger.Discard())
}

func TestDefaultHydrationSeedsSentinel(t *testing.T) {
	svc := newTestService()

	categories := svc.ListCategories()
	if len(categories) != 1 || categories[0].ID != SentinelCategoryID {
		t.Fatalf("expected only the sentinel category, got %+v", categories)
	}
	if len(svc.ListRecipes()) != 0 {
		t.Fatalf("expected no recipes")
	}
}

func TestAddRecipePrepends(t *testing.T) {
	svc := newTestService()

	svc.AddRecipe(Recipe{Name: "Fried rice"})
	svc.AddRecipe(Recipe{Name: "Dumplings"})

	listed := svc.ListRecipes()
	if len(listed) != 2 || listed[0].Name != "Dumplings" || listed[1].Name != "Fried rice" {
		t.Fatalf("expected newest first, got %+v", listed)
	}
}

func TestAddRecipeEstimatesCostFromLines(t *testing.T) {
	svc := newTestService()

	added := svc.AddRecipe(Recipe{
		Name: "Omelette",
		Ingredients: []IngredientLine{
			{Name: "Eggs", Amount: 3, Unit: "pcs", Price: 2.4},
			{Name: "Butter", Amount: 10, Unit: "g", Price: 0.6},
		},
	})

	if added.EstimatedCost != 3 {
		t.Fatalf("expected estimated cost 3, got %v", added.EstimatedCost)
	}
	if added.Category != SentinelCategoryID {
		t.Fatalf("expected default category, got %q", added.Category)
	}
}

func TestGetRecipeAbsence(t *testing.T) {
	svc := newTestService()

	if _, ok := svc.GetRecipe("missing"); ok {
		t.Fatalf("expected absence to be reported")
	}
}

func TestUpdateRecipeUnknownIDIsNoOp(t *testing.T) {
	svc := newTestService()
	added := svc.AddRecipe(Recipe{Name: "Fried rice"})

	svc.UpdateRecipe(Recipe{ID: "missing", Name: "Ghost"})

	got, ok := svc.GetRecipe(added.ID)
	if !ok || got.Name != "Fried rice" {
		t.Fatalf("expected recipe unchanged, got %+v", got)
	}
	if len(svc.ListRecipes()) != 1 {
		t.Fatalf("expected single recipe")
	}
}

func TestDeleteSentinelCategoryIsNoOp(t *testing.T) {
	svc := newTestService()
	svc.AddCategory(Category{Label: "Soups"})

	svc.DeleteCategory(SentinelCategoryID)

	categories := svc.ListCategories()
	if len(categories) != 2 || categories[0].ID != SentinelCategoryID {
		t.Fatalf("expected sentinel untouched, got %+v", categories)
	}
}

func TestDeleteCategory(t *testing.T) {
	svc := newTestService()
	soups := svc.AddCategory(Category{Label: "Soups"})

	svc.DeleteCategory(soups.ID)

	categories := svc.ListCategories()
	if len(categories) != 1 || categories[0].ID != SentinelCategoryID {
		t.Fatalf("expected only sentinel, got %+v", categories)
	}
}

func TestRenameCategoryKeepsRecipesAttached(t *testing.T) {
	svc := newTestService()
	soups := svc.AddCategory(Category{Label: "Soups"})
	recipe := svc.AddRecipe(Recipe{Name: "Miso soup", Category: soups.ID})

	soups.Label = "Soups & Stews"
	svc.UpdateCategory(soups)

	got, ok := svc.GetRecipe(recipe.ID)
	if !ok || got.Category != soups.ID {
		t.Fatalf("expected recipe still joined to %q, got %+v", soups.ID, got)
	}
	categories := svc.ListCategories()
	if categories[1].Label != "Soups & Stews" {
		t.Fatalf("expected renamed label, got %+v", categories[1])
	}
}

func TestReorderCategoriesForcesSentinelFirst(t *testing.T) {
	svc := newTestService()
	soups := svc.AddCategory(Category{Label: "Soups"})
	mains := svc.AddCategory(Category{Label: "Mains"})

	svc.ReorderCategories([]Category{mains, soups, {ID: SentinelCategoryID, Label: "All"}})

	categories := svc.ListCategories()
	if categories[0].ID != SentinelCategoryID {
		t.Fatalf("expected sentinel first, got %+v", categories)
	}
	if categories[1].ID != mains.ID || categories[2].ID != soups.ID {
		t.Fatalf("expected caller order preserved, got %+v", categories)
	}
}

func TestFeedbackPrependsAndFilters(t *testing.T) {
	svc := newTestService()
	recipe := svc.AddRecipe(Recipe{Name: "Fried rice"})

	svc.AddFeedback(Feedback{RecipeID: recipe.ID, Rating: 4, Content: "good"})
	svc.AddFeedback(Feedback{RecipeID: recipe.ID, Rating: 5, Content: "great"})
	svc.AddFeedback(Feedback{RecipeID: "other", Rating: 1, Content: "not this one"})

	entries := svc.ListFeedback(recipe.ID)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %+v", entries)
	}
	if entries[0].Content != "great" || entries[1].Content != "good" {
		t.Fatalf("expected newest first, got %+v", entries)
	}
	if entries[0].Date == "" {
		t.Fatalf("expected date to default to today")
	}
}
