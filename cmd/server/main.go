package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sthwalo/acc-sub020/internal/adapter/http/controller"
	"github.com/sthwalo/acc-sub020/internal/adapter/http/middleware"
	"github.com/sthwalo/acc-sub020/internal/adapter/http/router"
	"github.com/sthwalo/acc-sub020/internal/adapter/repository/postgres"
	"github.com/sthwalo/acc-sub020/internal/config"
	"github.com/sthwalo/acc-sub020/internal/logger"
	"github.com/sthwalo/acc-sub020/internal/rules"
	"github.com/sthwalo/acc-sub020/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.Setup(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := postgres.RunMigrations(ctx, cfg.DatabaseDSN, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	db, err := postgres.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	classification, err := rules.Load(cfg.RulesPath)
	if err != nil {
		logger.Warn("rules file not loaded, using default account classification", logger.Fields{
			"path":  cfg.RulesPath,
			"error": err.Error(),
		})
		classification = rules.Default()
	}

	bankTransactionRepo := postgres.NewBankTransactionRepository(db)
	journalRepo := postgres.NewJournalEntryRepository(db)

	duplicateChecker := services.NewDuplicateChecker(bankTransactionRepo)
	statementService := services.NewStatementService(bankTransactionRepo, duplicateChecker)
	ledgerService := services.NewLedgerService(journalRepo, classification)

	statementController := controller.NewStatementController(statementService)
	ledgerController := controller.NewLedgerController(ledgerService)

	// Basic auth guards the API only when credentials are configured.
	requestMiddleware := middleware.RequestLog()
	if cfg.BasicAuthUsername != "" {
		requestLog := requestMiddleware
		basicAuth := middleware.BasicAuth(cfg.BasicAuthUsername, cfg.BasicAuthPassword)
		requestMiddleware = func(next http.Handler) http.Handler {
			return requestLog(basicAuth(next))
		}
	}

	mux := router.New(statementController, ledgerController, requestMiddleware)

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", logger.Fields{"addr": cfg.ListenAddr})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down http server", nil)

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
}
