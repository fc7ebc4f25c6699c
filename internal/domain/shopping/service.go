package shopping

import (
	"sync"

	"kitchen-app-go/internal/domain/ledger"
	"kitchen-app-go/internal/domain/pantry"
	"kitchen-app-go/internal/store"
	"kitchen-app-go/pkg/logger"

	"github.com/google/uuid"
)

// Ledger is the slice of the expense ledger checkout needs.
type Ledger interface {
	Add(record ledger.Record) ledger.Record
}

// Pantry receives the purchased items.
type Pantry interface {
	AddBatch(ingredients []pantry.Ingredient) []pantry.Ingredient
}

// Service owns the shopping list.
type Service struct {
	mu    sync.RWMutex
	items []Item

	ledger Ledger
	pantry Pantry
	slots  store.Slots
	log    logger.Logger
}

func NewService(slots store.Slots, ledgerSvc Ledger, pantrySvc Pantry, log logger.Logger) *Service {
	s := &Service{
		ledger: ledgerSvc,
		pantry: pantrySvc,
		slots:  slots,
		log:    log,
	}
	if !slots.Load(store.KeyShoppingList, &s.items) {
		s.items = []Item{}
	}
	return s
}

func (s *Service) List() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Item{}, s.items...)
}

// AddItems appends the batch as one state transition. Used when ingredients
// are aggregated from queued recipes or named by the user.
func (s *Service) AddItems(items []Item) []Item {
	if len(items) == 0 {
		return []Item{}
	}

	added := make([]Item, 0, len(items))
	for _, item := range items {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		added = append(added, item)
	}

	s.mu.Lock()
	s.items = append(append([]Item{}, s.items...), added...)
	snapshot := s.items
	s.mu.Unlock()

	s.slots.Save(store.KeyShoppingList, snapshot)
	return added
}

// Toggle flips an item's checked state; no-op when absent.
func (s *Service) Toggle(id string) {
	s.mu.Lock()
	toggled := false
	next := make([]Item, len(s.items))
	for i, existing := range s.items {
		if existing.ID == id {
			existing.Checked = !existing.Checked
			toggled = true
		}
		next[i] = existing
	}
	if toggled {
		s.items = next
	}
	snapshot := s.items
	s.mu.Unlock()

	if toggled {
		s.slots.Save(store.KeyShoppingList, snapshot)
	}
}

func (s *Service) Delete(id string) {
	s.mu.Lock()
	next := make([]Item, 0, len(s.items))
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
		s.slots.Save(store.KeyShoppingList, snapshot)
	}
}

func (s *Service) Clear() {
	s.mu.Lock()
	s.items = []Item{}
	s.mu.Unlock()
	s.slots.Save(store.KeyShoppingList, []Item{})
}

// Checkout finalizes a purchase: the checked items are summed into one
// "purchase" ledger record, moved into the pantry, and removed from the list.
// Unchecked items stay. Returns false when nothing is checked.
func (s *Service) Checkout() (ledger.Record, bool) {
	s.mu.Lock()
	var bought []Item
	remaining := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		if item.Checked {
			bought = append(bought, item)
		} else {
			remaining = append(remaining, item)
		}
	}
	if len(bought) == 0 {
		s.mu.Unlock()
		return ledger.Record{}, false
	}
	s.items = remaining
	s.mu.Unlock()

	s.slots.Save(store.KeyShoppingList, remaining)

	total := 0.0
	ingredients := make([]pantry.Ingredient, 0, len(bought))
	for _, item := range bought {
		total += item.Price
		quantity := 1.0
		ingredients = append(ingredients, pantry.Ingredient{
			Name:     item.Name,
			Quantity: &quantity,
			Price:    item.Price,
			Category: pantry.CategoryStaple,
		})
	}
	s.pantry.AddBatch(ingredients)

	record := s.ledger.Add(ledger.Record{
		Amount:      total,
		Type:        ledger.TypePurchase,
		Description: "Groceries",
		Category:    ledger.CategoryEat,
	})
	return record, true
}
