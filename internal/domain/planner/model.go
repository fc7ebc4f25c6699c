package planner

// Meal slots.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
)

// MealPlan assigns a recipe to a meal slot on a calendar day. Several plans
// may share a date and meal type (multiple dishes per meal).
type MealPlan struct {
	ID       string `json:"id"`
	RecipeID string `json:"recipe_id"`
	Date     string `json:"date"`
	MealType string `json:"meal_type"`
}
