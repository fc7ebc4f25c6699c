package planner

import (
	"sync"

	"kitchen-app-go/internal/domain/ledger"
	"kitchen-app-go/internal/domain/recipes"
	"kitchen-app-go/internal/store"
	"kitchen-app-go/pkg/logger"

	"github.com/google/uuid"
)

// Recipes resolves queued recipe ids to recipes.
type Recipes interface {
	GetRecipe(id string) (recipes.Recipe, bool)
}

// Ledger receives the cooking milestone records.
type Ledger interface {
	AddBatch(records []ledger.Record) []ledger.Record
}

// Service owns the cooking queue and the meal-plan calendar.
type Service struct {
	mu    sync.RWMutex
	queue []string
	plans []MealPlan

	recipes Recipes
	ledger  Ledger
	slots   store.Slots
	log     logger.Logger
}

func NewService(slots store.Slots, recipesSvc Recipes, ledgerSvc Ledger, log logger.Logger) *Service {
	s := &Service{
		recipes: recipesSvc,
		ledger:  ledgerSvc,
		slots:   slots,
		log:     log,
	}
	if !slots.Load(store.KeyCookingQueue, &s.queue) {
		s.queue = []string{}
	}
	if !slots.Load(store.KeyMealPlans, &s.plans) {
		s.plans = []MealPlan{}
	}
	return s
}

func (s *Service) Queue() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.queue...)
}

// Enqueue adds a recipe to the cooking queue. Insertion order is preserved
// and re-adding a queued id is a no-op.
func (s *Service) Enqueue(recipeID string) {
	s.mu.Lock()
	for _, queued := range s.queue {
		if queued == recipeID {
			s.mu.Unlock()
			return
		}
	}
	s.queue = append(append([]string{}, s.queue...), recipeID)
	snapshot := s.queue
	s.mu.Unlock()

	s.slots.Save(store.KeyCookingQueue, snapshot)
}

func (s *Service) Dequeue(recipeID string) {
	s.mu.Lock()
	next := make([]string, 0, len(s.queue))
	for _, queued := range s.queue {
		if queued != recipeID {
			next = append(next, queued)
		}
	}
	removed := len(next) != len(s.queue)
	if removed {
		s.queue = next
	}
	snapshot := s.queue
	s.mu.Unlock()

	if removed {
		s.slots.Save(store.KeyCookingQueue, snapshot)
	}
}

func (s *Service) ClearQueue() {
	s.mu.Lock()
	s.queue = []string{}
	s.mu.Unlock()
	s.slots.Save(store.KeyCookingQueue, []string{})
}

// FinishCooking appends a zero-amount "cooking" record for every queued
// recipe and clears the queue. Returns the appended records.
func (s *Service) FinishCooking() []ledger.Record {
	s.mu.Lock()
	queued := s.queue
	s.queue = []string{}
	s.mu.Unlock()

	s.slots.Save(store.KeyCookingQueue, []string{})

	if len(queued) == 0 {
		return []ledger.Record{}
	}

	records := make([]ledger.Record, 0, len(queued))
	for _, recipeID := range queued {
		name := recipeID
		if recipe, ok := s.recipes.GetRecipe(recipeID); ok {
			name = recipe.Name
		}
		records = append(records, ledger.Record{
			Amount:      0,
			Type:        ledger.TypeCooking,
			Description: name,
		})
	}

	return s.ledger.AddBatch(records)
}

func (s *Service) ListPlans() []MealPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]MealPlan{}, s.plans...)
}

func (s *Service) AddPlan(plan MealPlan) MealPlan {
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}

	s.mu.Lock()
	s.plans = append(append([]MealPlan{}, s.plans...), plan)
	snapshot := s.plans
	s.mu.Unlock()

	s.slots.Save(store.KeyMealPlans, snapshot)
	return plan
}

func (s *Service) DeletePlan(id string) {
	s.mu.Lock()
	next := make([]MealPlan, 0, len(s.plans))
	for _, existing := range s.plans {
		if existing.ID != id {
			next = append(next, existing)
		}
	}
	removed := len(next) != len(s.plans)
	if removed {
		s.plans = next
	}
	snapshot := s.plans
	s.mu.Unlock()

	if removed {
		s.slots.Save(store.KeyMealPlans, snapshot)
	}
}
