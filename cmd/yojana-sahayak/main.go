package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"yojana-sahayak/internal/api"
	"yojana-sahayak/internal/api/handlers"
	"yojana-sahayak/internal/llm"
	"yojana-sahayak/internal/repository"
	"yojana-sahayak/internal/service"
	"yojana-sahayak/internal/tts"
	"yojana-sahayak/pkg/config"
	"yojana-sahayak/pkg/logger"
	"yojana-sahayak/pkg/objectstore"
	"yojana-sahayak/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting yojana-sahayak service")

	ctx := context.Background()

	// The scheme store is optional: an unreachable database at boot just
	// means every lookup serves from the built-in catalog.
	var store service.SchemeStore
	var queryLogs handlers.QueryLogStore
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Warn("Scheme store unavailable, serving from built-in catalog", zap.Error(err))
	} else {
		defer db.Close()
		store = repository.NewSchemeRepository(db, cfg.Database.SchemeTable, appLogger)
		queryLogs = repository.NewQueryLogRepository(db, cfg.Database.QueryLogTable, appLogger)
	}

	// Text generation and voice synthesis are likewise optional; without
	// credentials the explain service renders templates and responses
	// carry no audio URL.
	var generator service.Generator
	var synthesizer service.Synthesizer
	if cfg.OpenAI.APIKey != "" {
		generator = llm.NewOpenAIGenerator(&cfg.OpenAI)
		synthesizer = tts.NewOpenAISynthesizer(cfg.OpenAI.APIKey, &cfg.Speech)
	} else {
		appLogger.Warn("OPENAI_API_KEY not set, using template explanations without audio")
	}

	var audioStore service.ObjectStore
	if synthesizer != nil {
		s3Store, err := objectstore.NewS3Store(ctx, cfg.Storage.Region, cfg.Storage.Bucket, appLogger)
		if err != nil {
			appLogger.Warn("Audio storage unavailable, responses will carry no audio URL", zap.Error(err))
		} else {
			audioStore = s3Store
		}
	}

	// Initialize services
	resolver := service.NewResolverService(store, appLogger)
	explainer := service.NewExplainService(generator, appLogger)
	speech := service.NewSpeechService(synthesizer, audioStore, cfg.Storage.KeyPrefix, cfg.Storage.SignedURLTTL, appLogger)

	// Initialize handlers
	assistHandler := handlers.NewAssistHandler(resolver, explainer, speech, queryLogs, appLogger)
	schemeHandler := handlers.NewSchemeHandler(resolver, appLogger)

	// Setup router
	app := api.SetupRouter(assistHandler, schemeHandler, &cfg.Server)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
