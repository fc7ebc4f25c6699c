package store

import (
	"encoding/json"
	"errors"
	"time"

	"kitchen-app-go/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot keys, one per persisted collection or scalar.
const (
	KeyIngredients     = "ingredients"
	KeyRecipes         = "recipes"
	KeyCategories      = "categories"
	KeyShoppingList    = "shopping_list"
	KeyExpenses        = "expenses"
	KeyMealPlans       = "meal_plans"
	KeyFeedback        = "recipe_feedback"
	KeyCookingQueue    = "cooking_queue"
	KeyChatHistory     = "chat_history"
	KeyMonthlyBudget   = "monthly_budget"
	KeyCategoryBudgets = "category_budgets"
)

// Slots is the persistence boundary for domain services. Each collection
// round-trips as one JSON document under its own key. Saves are a durability
// shadow of in-memory state, not a correctness requirement: they never fail
// the calling mutation.
type Slots interface {
	// Load decodes the named slot into dst and reports whether it succeeded.
	// A missing or undecodable slot returns false and leaves dst untouched;
	// the caller falls back to its default value.
	Load(key string, dst any) bool

	// Save serializes value into the named slot. Failures are logged and
	// swallowed.
	Save(key string, value any)
}

type Slot struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

type GormStore struct {
	db  *gorm.DB
	log logger.Logger
}

func NewGorm(db *gorm.DB, log logger.Logger) (*GormStore, error) {
	if err := db.AutoMigrate(&Slot{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db, log: log}, nil
}

func (s *GormStore) Load(key string, dst any) bool {
	var slot Slot
	if err := s.db.First(&slot, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.InternalError("store: load failed", err, "key", key)
		}
		return false
	}

	if err := json.Unmarshal([]byte(slot.Value), dst); err != nil {
		s.log.BusinessError("store: slot is corrupt, using default", err, "key", key)
		return false
	}

	return true
}

func (s *GormStore) Save(key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		s.log.InternalError("store: marshal failed", err, "key", key)
		return
	}

	slot := Slot{Key: key, Value: string(payload)}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&slot).Error
	if err != nil {
		s.log.InternalError("store: save failed", err, "key", key)
	}
}
