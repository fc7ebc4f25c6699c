package ai

import (
	"context"
	"errors"
)

// Disabled stands in for the gateway when no API key is configured. Every
// call fails down the regular "other failure" path, so the app still boots
// and the assistant answers with its friendly error copy.
type Disabled struct{}

func NewDisabled() *Disabled {
	return &Disabled{}
}

func (*Disabled) ParseExpenses(context.Context, string, string) (*BookkeepingResult, error) {
	return nil, &APIError{Err: errors.New("assistant is not configured")}
}

func (*Disabled) ParseRecipe(context.Context, string) (*RecipeDraft, error) {
	return nil, &APIError{Err: errors.New("assistant is not configured")}
}
