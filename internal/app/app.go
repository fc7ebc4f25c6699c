package app

import (
	"context"
	"net/http"

	"kitchen-app-go/internal/ai"
	"kitchen-app-go/internal/config"
	"kitchen-app-go/internal/db"
	"kitchen-app-go/internal/domain/assistant"
	"kitchen-app-go/internal/domain/ledger"
	"kitchen-app-go/internal/domain/pantry"
	"kitchen-app-go/internal/domain/planner"
	"kitchen-app-go/internal/domain/recipes"
	"kitchen-app-go/internal/domain/shopping"
	"kitchen-app-go/internal/store"
	"kitchen-app-go/internal/transport/httpserver"
	"kitchen-app-go/internal/transport/httpserver/handler"
	"kitchen-app-go/pkg/logger"

	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(ctx context.Context, log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.Open(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	slots, err := store.NewGorm(dbConn, log)
	if err != nil {
		return nil, err
	}

	var gateway assistant.Gateway
	if cfg.AI.APIKey == "" {
		log.Warn("app: no GEMINI_API_KEY set, assistant workflows disabled")
		gateway = ai.NewDisabled()
	} else {
		gateway, err = ai.NewClient(ctx, cfg.AI)
		if err != nil {
			return nil, err
		}
	}

	log.Info("app: initializing services")
	pantrySvc := pantry.NewService(slots, log)
	recipesSvc := recipes.NewService(slots, log)
	ledgerSvc := ledger.NewService(slots, log)
	shoppingSvc := shopping.NewService(slots, ledgerSvc, pantrySvc, log)
	plannerSvc := planner.NewService(slots, recipesSvc, ledgerSvc, log)
	assistantSvc := assistant.NewService(slots, gateway, ledgerSvc, recipesSvc, log)

	log.Info("app: initializing router")
	handlers := handler.New(pantrySvc, recipesSvc, shoppingSvc, plannerSvc, ledgerSvc, assistantSvc, log)
	router := httpserver.NewRouter(cfg, handlers, log)

	return &App{
		cfg:        cfg,
		httpServer: httpserver.New(cfg, router),
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
