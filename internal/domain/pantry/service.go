package pantry

import (
	"sync"

	"kitchen-app-go/internal/store"
	"kitchen-app-go/pkg/logger"

	"github.com/google/uuid"
)

// Service owns the ingredient inventory.
type Service struct {
	mu    sync.RWMutex
	items []Ingredient

	slots store.Slots
	log   logger.Logger
}

func NewService(slots store.Slots, log logger.Logger) *Service {
	s := &Service{slots: slots, log: log}
	if !slots.Load(store.KeyIngredients, &s.items) {
		s.items = []Ingredient{}
	}
	return s
}

func (s *Service) List() []Ingredient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Ingredient{}, s.items...)
}

func (s *Service) Get(id string) (Ingredient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Ingredient{}, false
}

func (s *Service) Add(ingredient Ingredient) Ingredient {
	return s.AddBatch([]Ingredient{ingredient})[0]
}

// AddBatch appends ingredients as one state transition. Bulk entry point for
// "confirm purchased items into inventory".
func (s *Service) AddBatch(ingredients []Ingredient) []Ingredient {
	if len(ingredients) == 0 {
		return []Ingredient{}
	}

	added := make([]Ingredient, 0, len(ingredients))
	for _, ingredient := range ingredients {
		if ingredient.ID == "" {
			ingredient.ID = uuid.NewString()
		}
		added = append(added, ingredient)
	}

	s.mu.Lock()
	s.items = append(append([]Ingredient{}, s.items...), added...)
	snapshot := s.items
	s.mu.Unlock()

	s.slots.Save(store.KeyIngredients, snapshot)
	return added
}

// Update replaces the ingredient with the same ID; silent no-op when absent.
func (s *Service) Update(ingredient Ingredient) {
	s.mu.Lock()
	replaced := false
	next := make([]Ingredient, len(s.items))
	for i, existing := range s.items {
		if existing.ID == ingredient.ID {
			next[i] = ingredient
			replaced = true
		} else {
			next[i] = existing
		}
	}
	if replaced {
		s.items = next
	}
	snapshot := s.items
	s.mu.Unlock()

	if replaced {
		s.slots.Save(store.KeyIngredients, snapshot)
	}
}

func (s *Service) Delete(id string) {
	s.mu.Lock()
	next := make([]Ingredient, 0, len(s.items))
	for _, existing := range s.items {
		if existing.ID != id {
			next = append(next, existing)
		}
	}
	removed := len(next) != len(s.items)
	if removed {
		s.items = next
	}
	snapshot := s.items
	s.mu.Unlock()

	if removed {
		s.slots.Save(store.KeyIngredients, snapshot)
	}
}

// LowStock returns tracked ingredients at or below their threshold.
// Untracked ingredients (nil quantity) never run low.
func (s *Service) LowStock() []Ingredient {
	s.mu.RLock()
	defer s.mu.RUnlock()

	low := make([]Ingredient, 0)
	for _, item := range s.items {
		if item.Quantity != nil && *item.Quantity <= item.LowStockThreshold {
			low = append(low, item)
		}
	}
	return low
}
