package assistant

import "kitchen-app-go/internal/ai"

// Chat roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// welcomeMessageID keys the seeded greeting so default hydration is stable.
const welcomeMessageID = "welcome"

// Message is one turn of the bookkeeping conversation. An assistant message
// may carry proposed expense items awaiting confirmation; once confirmed it
// stays confirmed.
type Message struct {
	ID          string           `json:"id"`
	Role        string           `json:"role"`
	Content     string           `json:"content"`
	Image       string           `json:"image,omitempty"`
	Items       []ai.ExpenseItem `json:"items,omitempty"`
	IsConfirmed bool             `json:"is_confirmed,omitempty"`
	ErrorCode   string           `json:"error_code,omitempty"`
}

// ImportState is the transient recipe-import result. At most one exists;
// starting a new import overwrites it.
type ImportState struct {
	Draft     *ai.RecipeDraft `json:"draft,omitempty"`
	ErrorCode string          `json:"error_code,omitempty"`
}
