package assistant

import (
	"context"
	"strings"
	"sync"
	"time"

	"kitchen-app-go/internal/ai"
	"kitchen-app-go/internal/domain/ledger"
	"kitchen-app-go/internal/domain/recipes"
	"kitchen-app-go/internal/store"
	"kitchen-app-go/pkg/logger"

	"github.com/google/uuid"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

const welcomeCopy = "Hi! Tell me what you spent or send a receipt photo and I'll log it for you."

const (
	networkFailureCopy = "I couldn't reach the assistant service. Check your connection and try again."
	otherFailureCopy   = "Something went wrong while reading that. Please try again in a moment."
)

// Gateway is the slice of the AI client the assistant needs.
type Gateway interface {
	ParseExpenses(ctx context.Context, text, imageDataURI string) (*ai.BookkeepingResult, error)
	ParseRecipe(ctx context.Context, text string) (*ai.RecipeDraft, error)
}

// Ledger materializes confirmed items.
type Ledger interface {
	AddBatch(records []ledger.Record) []ledger.Record
}

// Recipes receives confirmed recipe imports.
type Recipes interface {
	AddRecipe(recipe recipes.Recipe) recipes.Recipe
}

// Service orchestrates the two AI workflows and owns the chat transcript.
// Gateway failures never escape its entry points: every outcome lands in
// state (a chat message, or a cleared import draft with an error code).
type Service struct {
	mu            sync.RWMutex
	messages      []Message
	pendingImport ImportState
	busyChat      bool
	busyImport    bool

	gateway Gateway
	ledger  Ledger
	recipes Recipes
	slots   store.Slots
	log     logger.Logger
	now     func() time.Time
}

func NewService(slots store.Slots, gateway Gateway, ledgerSvc Ledger, recipesSvc Recipes, log logger.Logger) *Service {
	s := &Service{
		gateway: gateway,
		ledger:  ledgerSvc,
		recipes: recipesSvc,
		slots:   slots,
		log:     log,
		now:     time.Now,
	}
	if !slots.Load(store.KeyChatHistory, &s.messages) {
		s.messages = []Message{{ID: welcomeMessageID, Role: RoleAssistant, Content: welcomeCopy}}
	}
	return s
}

func (s *Service) History() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Message{}, s.messages...)
}

// Busy reports the bookkeeping and import busy flags. Callers use these to
// avoid overlapping submissions; the entry points themselves do not queue or
// reject.
func (s *Service) Busy() (bookkeeping, importing bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.busyChat, s.busyImport
}

// Send runs one bookkeeping turn: append the user message, call the model,
// append the assistant's answer (proposed items on success, classified
// failure copy otherwise). It always returns the appended assistant message.
func (s *Service) Send(ctx context.Context, text, imageDataURI string) Message {
	s.appendMessage(Message{
		ID:      uuid.NewString(),
		Role:    RoleUser,
		Content: text,
		Image:   imageDataURI,
	})

	s.mu.Lock()
	s.busyChat = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.busyChat = false
		s.mu.Unlock()
	}()

	result, err := s.gateway.ParseExpenses(ctx, text, imageDataURI)
	if err != nil {
		s.log.BusinessError("assistant: bookkeeping turn failed", err)
		return s.appendMessage(s.failureMessage(err))
	}

	reply := Message{
		ID:      uuid.NewString(),
		Role:    RoleAssistant,
		Content: result.ResponseText,
		Items:   s.normalizeItems(result.Items),
	}
	return s.appendMessage(reply)
}

func (s *Service) failureMessage(err error) Message {
	content := otherFailureCopy
	if ai.IsNetwork(err) {
		content = networkFailureCopy
	}
	return Message{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Content:   content,
		ErrorCode: ai.ErrorCode(err),
	}
}

// normalizeItems maps free-form category labels onto the four budget
// categories and defaults missing dates to today.
func (s *Service) normalizeItems(items []ai.ExpenseItem) []ai.ExpenseItem {
	if len(items) == 0 {
		return nil
	}

	today := s.now().Format(dateLayout)
	normalized := make([]ai.ExpenseItem, 0, len(items))
	for _, item := range items {
		item.Category = mapCategory(item.Category)
		if item.Date == "" {
			item.Date = today
		}
		normalized = append(normalized, item)
	}
	return normalized
}

func mapCategory(label string) string {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case ledger.CategoryEat, "food", "grocery", "groceries", "restaurant", "dining":
		return ledger.CategoryEat
	case ledger.CategoryRent, "housing", "utilities":
		return ledger.CategoryRent
	case ledger.CategoryPlay, "entertainment", "fun", "hobby":
		return ledger.CategoryPlay
	case ledger.CategoryLife, "transport", "health", "daily", "shopping":
		return ledger.CategoryLife
	default:
		return ledger.CategoryEat
	}
}

// Confirm materializes a message's proposed items as ledger records and marks
// the message confirmed. The transition is one-way: confirming an already
// confirmed message, an unknown id, or a message without items changes
// nothing.
func (s *Service) Confirm(messageID string) (Message, bool) {
	s.mu.Lock()
	index := -1
	for i, message := range s.messages {
		if message.ID == messageID {
			index = i
			break
		}
	}
	if index == -1 || s.messages[index].IsConfirmed || len(s.messages[index].Items) == 0 {
		var message Message
		if index != -1 {
			message = s.messages[index]
		}
		s.mu.Unlock()
		return message, false
	}

	next := append([]Message{}, s.messages...)
	next[index].IsConfirmed = true
	s.messages = next
	confirmed := next[index]
	s.mu.Unlock()

	s.slots.Save(store.KeyChatHistory, next)

	clock := s.now().Format(timeLayout)
	records := make([]ledger.Record, 0, len(confirmed.Items))
	for _, item := range confirmed.Items {
		records = append(records, ledger.Record{
			Date:        item.Date,
			Time:        clock,
			Amount:      item.Amount,
			Type:        ledger.TypePurchase,
			Description: item.Description,
			Category:    item.Category,
		})
	}
	s.ledger.AddBatch(records)

	return confirmed, true
}

func (s *Service) appendMessage(message Message) Message {
	s.mu.Lock()
	s.messages = append(append([]Message{}, s.messages...), message)
	snapshot := s.messages
	s.mu.Unlock()

	s.slots.Save(store.KeyChatHistory, snapshot)
	return message
}

// Import parses freeform recipe text into a pending draft. A new import
// overwrites any previous pending result; failure leaves no draft, only a
// classified error code for the UI to show.
func (s *Service) Import(ctx context.Context, text string) ImportState {
	s.mu.Lock()
	s.busyImport = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.busyImport = false
		s.mu.Unlock()
	}()

	draft, err := s.gateway.ParseRecipe(ctx, text)

	s.mu.Lock()
	if err != nil {
		s.log.BusinessError("assistant: recipe import failed", err)
		s.pendingImport = ImportState{ErrorCode: ai.ErrorCode(err)}
	} else {
		s.pendingImport = ImportState{Draft: draft}
	}
	state := s.pendingImport
	s.mu.Unlock()

	return state
}

func (s *Service) PendingImport() ImportState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pendingImport
}

// ConfirmImport turns the pending draft into a real recipe and clears it.
func (s *Service) ConfirmImport() (recipes.Recipe, bool) {
	s.mu.Lock()
	draft := s.pendingImport.Draft
	s.pendingImport = ImportState{}
	s.mu.Unlock()

	if draft == nil {
		return recipes.Recipe{}, false
	}

	lines := make([]recipes.IngredientLine, 0, len(draft.Ingredients))
	for _, ingredient := range draft.Ingredients {
		lines = append(lines, recipes.IngredientLine{
			Name:   ingredient.Name,
			Amount: ingredient.Amount,
			Unit:   ingredient.Unit,
		})
	}
	steps := make([]recipes.Step, 0, len(draft.Steps))
	for _, step := range draft.Steps {
		steps = append(steps, recipes.Step{Instruction: step.Instruction, Image: step.Image})
	}

	recipe := s.recipes.AddRecipe(recipes.Recipe{
		Name:        draft.Name,
		Image:       draft.Image,
		Category:    draft.Category,
		Ingredients: lines,
		Steps:       steps,
	})
	return recipe, true
}

// CancelImport discards the pending draft with no side effect.
func (s *Service) CancelImport() {
	s.mu.Lock()
	s.pendingImport = ImportState{}
	s.mu.Unlock()
}
