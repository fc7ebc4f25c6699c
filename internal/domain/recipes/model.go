package recipes

// SentinelCategoryID is the "all recipes" category. It always exists, always
// sorts first, and cannot be deleted.
const SentinelCategoryID = "all"

// Category groups recipes on the browse screen. ID is immutable identity;
// Label is the display name and may be renamed freely without breaking the
// recipes that joined on the ID. Order in the collection drives display order.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
}

// IngredientLine is one ingredient row of a recipe. IngredientID optionally
// links to a pantry ingredient; Price is a cost snapshot taken at authoring
// time.
type IngredientLine struct {
	IngredientID string  `json:"ingredient_id,omitempty"`
	Name         string  `json:"name"`
	Amount       float64 `json:"amount"`
	Unit         string  `json:"unit"`
	Price        float64 `json:"price,omitempty"`
}

// Step is one cooking instruction. Order in the slice is significant.
type Step struct {
	Instruction string `json:"instruction"`
	Image       string `json:"image,omitempty"`
}

// Recipe as authored manually or imported via the assistant. EstimatedCost is
// derived from the line price snapshots when the recipe is created and not
// recomputed afterwards.
type Recipe struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Image         string           `json:"image,omitempty"`
	EstimatedCost float64          `json:"estimated_cost"`
	Category      string           `json:"category"`
	Ingredients   []IngredientLine `json:"ingredients"`
	Steps         []Step           `json:"steps"`
}

// Feedback is an append-only journal entry about a cooked recipe.
type Feedback struct {
	ID       string `json:"id"`
	RecipeID string `json:"recipe_id"`
	Date     string `json:"date"`
	Rating   int    `json:"rating"`
	Content  string `json:"content"`
	Image    string `json:"image,omitempty"`
}
