package handler

import (
	assistantdomain "kitchen-app-go/internal/domain/assistant"
	ledgerdomain "kitchen-app-go/internal/domain/ledger"
	pantrydomain "kitchen-app-go/internal/domain/pantry"
	plannerdomain "kitchen-app-go/internal/domain/planner"
	recipesdomain "kitchen-app-go/internal/domain/recipes"
	shoppingdomain "kitchen-app-go/internal/domain/shopping"
	"kitchen-app-go/pkg/logger"
)

type Handlers struct {
	Pantry    *pantrydomain.Service
	Recipes   *recipesdomain.Service
	Shopping  *shoppingdomain.Service
	Planner   *plannerdomain.Service
	Ledger    *ledgerdomain.Service
	Assistant *assistantdomain.Service
	log       logger.Logger
}

func New(
	pantry *pantrydomain.Service,
	recipes *recipesdomain.Service,
	shopping *shoppingdomain.Service,
	planner *plannerdomain.Service,
	ledger *ledgerdomain.Service,
	assistant *assistantdomain.Service,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Pantry:    pantry,
		Recipes:   recipes,
		Shopping:  shopping,
		Planner:   planner,
		Ledger:    ledger,
		Assistant: assistant,
		log:       log,
	}
}
