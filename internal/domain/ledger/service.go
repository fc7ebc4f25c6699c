package ledger

import (
	"sync"
	"time"

	"kitchen-app-go/internal/store"
	"kitchen-app-go/pkg/logger"

	"github.com/google/uuid"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Service owns the expense ledger and budget configuration. Mutations apply
// in memory first and shadow into the slot store fire-and-forget.
type Service struct {
	mu              sync.RWMutex
	records         []Record
	monthlyBudget   float64
	categoryBudgets map[string]float64

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

	if !slots.Load(store.KeyExpenses, &s.records) {
		s.records = []Record{}
	}
	if !slots.Load(store.KeyMonthlyBudget, &s.monthlyBudget) {
		s.monthlyBudget = defaultMonthlyBudget
	}
	if !slots.Load(store.KeyCategoryBudgets, &s.categoryBudgets) {
		s.categoryBudgets = defaultCategoryBudgets()
	}

	return s
}

func (s *Service) List() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Record{}, s.records...)
}

// Add appends one record. An empty ID gets a generated one; Date and Time
// default to the current clock.
func (s *Service) Add(record Record) Record {
	return s.AddBatch([]Record{record})[0]
}

// AddBatch appends records as a single state transition.
func (s *Service) AddBatch(records []Record) []Record {
	if len(records) == 0 {
		return []Record{}
	}

	now := s.now()
	added := make([]Record, 0, len(records))
	for _, record := range records {
		if record.ID == "" {
			record.ID = uuid.NewString()
		}
		if record.Date == "" {
			record.Date = now.Format(dateLayout)
		}
		if record.Time == "" {
			record.Time = now.Format(timeLayout)
		}
		added = append(added, record)
	}

	s.mu.Lock()
	s.records = append(append([]Record{}, s.records...), added...)
	snapshot := s.records
	s.mu.Unlock()

	s.slots.Save(store.KeyExpenses, snapshot)
	return added
}

// Update replaces the record with the same ID. Unknown IDs are a silent
// no-op: callers only update records they hold.
func (s *Service) Update(record Record) {
	s.mu.Lock()
	replaced := false
	next := make([]Record, len(s.records))
	for i, existing := range s.records {
		if existing.ID == record.ID {
			next[i] = record
			replaced = true
		} else {
			next[i] = existing
		}
	}
	if replaced {
		s.records = next
	}
	snapshot := s.records
	s.mu.Unlock()

	if replaced {
		s.slots.Save(store.KeyExpenses, snapshot)
	}
}

// Delete removes the record with the given ID; no-op when absent.
func (s *Service) Delete(id string) {
	s.mu.Lock()
	next := make([]Record, 0, len(s.records))
	for _, existing := range s.records {
		if existing.ID != id {
			next = append(next, existing)
		}
	}
	removed := len(next) != len(s.records)
	if removed {
		s.records = next
	}
	snapshot := s.records
	s.mu.Unlock()

	if removed {
		s.slots.Save(store.KeyExpenses, snapshot)
	}
}

func (s *Service) Budgets() Budgets {
	s.mu.RLock()
	defer s.mu.RUnlock()
	byCategory := make(map[string]float64, len(s.categoryBudgets))
	for category, amount := range s.categoryBudgets {
		byCategory[category] = amount
	}
	return Budgets{Monthly: s.monthlyBudget, ByCategory: byCategory}
}

func (s *Service) SetMonthlyBudget(amount float64) {
	s.mu.Lock()
	s.monthlyBudget = amount
	s.mu.Unlock()
	s.slots.Save(store.KeyMonthlyBudget, amount)
}

// SetCategoryBudget updates one of the four fixed categories; anything else
// is ignored.
func (s *Service) SetCategoryBudget(category string, amount float64) {
	known := false
	for _, c := range BudgetCategories {
		if c == category {
			known = true
			break
		}
	}
	if !known {
		return
	}

	s.mu.Lock()
	next := make(map[string]float64, len(s.categoryBudgets))
	for c, a := range s.categoryBudgets {
		next[c] = a
	}
	next[category] = amount
	s.categoryBudgets = next
	s.mu.Unlock()

	s.slots.Save(store.KeyCategoryBudgets, next)
}

// CycleWindow returns the bounds of the current monthly budget cycle,
// anchored on the 15th. Both bounds are inclusive.
func CycleWindow(today time.Time) (time.Time, time.Time) {
	year, month, day := today.Date()
	if day >= 15 {
		from := time.Date(year, month, 15, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(0, 1, -1)
	}
	to := time.Date(year, month, 14, 0, 0, 0, 0, time.UTC)
	return to.AddDate(0, -1, 1), to
}

// Summary computes the current cycle's aggregates from live state.
func (s *Service) Summary() Summary {
	today := s.now()
	from, to := CycleWindow(today)

	s.mu.RLock()
	records := s.records
	monthly := s.monthlyBudget
	s.mu.RUnlock()

	total := 0.0
	byCategory := make(map[string]float64, len(BudgetCategories))
	for _, category := range BudgetCategories {
		byCategory[category] = 0
	}

	for _, record := range records {
		date, err := time.Parse(dateLayout, record.Date)
		if err != nil {
			continue
		}
		if date.Before(from) || date.After(to) {
			continue
		}
		total += record.Amount
		if _, ok := byCategory[record.Category]; ok {
			byCategory[record.Category] += record.Amount
		}
	}

	elapsed := elapsedDays(from, today)

	return Summary{
		From:          from.Format(dateLayout),
		To:            to.Format(dateLayout),
		TotalSpend:    total,
		ByCategory:    byCategory,
		DailyAverage:  total / float64(elapsed),
		MonthlyBudget: monthly,
		Remaining:     monthly - total,
	}
}

func elapsedDays(from, today time.Time) int {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}
