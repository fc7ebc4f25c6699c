package recipes

import (
	"sync"
	"time"

	"kitchen-app-go/internal/store"
	"kitchen-app-go/pkg/logger"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// Service owns recipes, recipe categories, and cooking feedback.
type Service struct {
	mu         sync.RWMutex
	recipes    []Recipe
	categories []Category
	feedback   []Feedback

	slots store.Slots
	log   logger.Logger
	now   func() time.Time
}

func NewService(slots store.Slots, log logger.Logger) *Service {
	s := &Service{
		slots: slots,
		log:   log,
		now:   time.Now,
	}

	if !slots.Load(store.KeyRecipes, &s.recipes) {
		s.recipes = []Recipe{}
	}
	if !slots.Load(store.KeyCategories, &s.categories) {
		s.categories = defaultCategories()
	}
	s.categories = ensureSentinelFirst(s.categories)
	if !slots.Load(store.KeyFeedback, &s.feedback) {
		s.feedback = []Feedback{}
	}

	return s
}

func defaultCategories() []Category {
	return []Category{{ID: SentinelCategoryID, Label: "All"}}
}

func ensureSentinelFirst(categories []Category) []Category {
	next := []Category{{ID: SentinelCategoryID, Label: "All"}}
	for _, category := range categories {
		if category.ID == SentinelCategoryID {
			next[0] = category
			continue
		}
		next = append(next, category)
	}
	return next
}

func (s *Service) ListRecipes() []Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Recipe{}, s.recipes...)
}

// GetRecipe never errors; absence is representable and the caller checks.
func (s *Service) GetRecipe(id string) (Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, recipe := range s.recipes {
		if recipe.ID == id {
			return recipe, true
		}
	}
	return Recipe{}, false
}

// AddRecipe prepends so the newest recipe shows first. The estimated cost is
// fixed here from the line price snapshots; later edits to pantry prices do
// not touch it.
func (s *Service) AddRecipe(recipe Recipe) Recipe {
	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
	}
	if recipe.Category == "" {
		recipe.Category = SentinelCategoryID
	}
	if recipe.EstimatedCost == 0 {
		recipe.EstimatedCost = estimateCost(recipe.Ingredients)
	}

	s.mu.Lock()
	s.recipes = append([]Recipe{recipe}, s.recipes...)
	snapshot := s.recipes
	s.mu.Unlock()

	s.slots.Save(store.KeyRecipes, snapshot)
	return recipe
}

func estimateCost(lines []IngredientLine) float64 {
	total := 0.0
	for _, line := range lines {
		total += line.Price
	}
	return total
}

// UpdateRecipe replaces the recipe with the same ID; silent no-op when absent.
func (s *Service) UpdateRecipe(recipe Recipe) {
	s.mu.Lock()
	replaced := false
	next := make([]Recipe, len(s.recipes))
	for i, existing := range s.recipes {
		if existing.ID == recipe.ID {
			next[i] = recipe
			replaced = true
		} else {
			next[i] = existing
		}
	}
	if replaced {
		s.recipes = next
	}
	snapshot := s.recipes
	s.mu.Unlock()

	if replaced {
		s.slots.Save(store.KeyRecipes, snapshot)
	}
}

func (s *Service) DeleteRecipe(id string) {
	s.mu.Lock()
	next := make([]Recipe, 0, len(s.recipes))
	for _, existing := range s.recipes {
		if existing.ID != id {
			next = append(next, existing)
		}
	}
	removed := len(next) != len(s.recipes)
	if removed {
		s.recipes = next
	}
	snapshot := s.recipes
	s.mu.Unlock()

	if removed {
		s.slots.Save(store.KeyRecipes, snapshot)
	}
}

func (s *Service) ListCategories() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Category{}, s.categories...)
}

func (s *Service) AddCategory(category Category) Category {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}

	s.mu.Lock()
	s.categories = append(append([]Category{}, s.categories...), category)
	snapshot := s.categories
	s.mu.Unlock()

	s.slots.Save(store.KeyCategories, snapshot)
	return category
}

// UpdateCategory renames a category's label or icon. Identity is the ID and
// never changes, so recipes joined on it stay attached.
func (s *Service) UpdateCategory(category Category) {
	s.mu.Lock()
	replaced := false
	next := make([]Category, len(s.categories))
	for i, existing := range s.categories {
		if existing.ID == category.ID {
			next[i] = category
			replaced = true
		} else {
			next[i] = existing
		}
	}
	if replaced {
		s.categories = next
	}
	snapshot := s.categories
	s.mu.Unlock()

	if replaced {
		s.slots.Save(store.KeyCategories, snapshot)
	}
}

// DeleteCategory removes a category. Deleting the sentinel is a silent no-op.
func (s *Service) DeleteCategory(id string) {
	if id == SentinelCategoryID {
		return
	}

	s.mu.Lock()
	next := make([]Category, 0, len(s.categories))
	for _, existing := range s.categories {
		if existing.ID != id {
			next = append(next, existing)
		}
	}
	removed := len(next) != len(s.categories)
	if removed {
		s.categories = next
	}
	snapshot := s.categories
	s.mu.Unlock()

	if removed {
		s.slots.Save(store.KeyCategories, snapshot)
	}
}

// ReorderCategories replaces the list wholesale with the caller's permutation.
// The sentinel is forced back to the front regardless of where the caller
// put it.
func (s *Service) ReorderCategories(ordered []Category) {
	next := ensureSentinelFirst(ordered)

	s.mu.Lock()
	s.categories = next
	s.mu.Unlock()

	s.slots.Save(store.KeyCategories, next)
}

func (s *Service) ListFeedback(recipeID string) []Feedback {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]Feedback, 0)
	for _, entry := range s.feedback {
		if entry.RecipeID == recipeID {
			entries = append(entries, entry)
		}
	}
	return entries
}

// AddFeedback prepends a journal entry; entries are never mutated afterwards.
func (s *Service) AddFeedback(entry Feedback) Feedback {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Date == "" {
		entry.Date = s.now().Format(dateLayout)
	}

	s.mu.Lock()
	s.feedback = append([]Feedback{entry}, s.feedback...)
	snapshot := s.feedback
	s.mu.Unlock()

	s.slots.Save(store.KeyFeedback, snapshot)
	return entry
}
