package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salon_leads_backend/internal/auth"
	authrepo "salon_leads_backend/internal/auth/repository"
	"salon_leads_backend/internal/email"
	"salon_leads_backend/internal/events"
	apphttp "salon_leads_backend/internal/http"
	"salon_leads_backend/internal/http/router"
	"salon_leads_backend/internal/leads"
	"salon_leads_backend/internal/leads/cache"
	leadsrepo "salon_leads_backend/internal/leads/repository"
	"salon_leads_backend/internal/notification"
	"salon_leads_backend/internal/reports"
	"salon_leads_backend/platform/config"
	"salon_leads_backend/platform/db"
	"salon_leads_backend/platform/logger"
	"salon_leads_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if missing := cfg.MissingFirebaseParams(); len(missing) > 0 {
		log.Warn("incomplete Firebase configuration", "missing", missing)
	}

	client, err := db.NewFirestoreClient(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to document store", "error", err)
		panic("failed to connect to document store: " + err.Error())
	}
	if client == nil {
		log.Warn("document store not configured; lead operations will report a configuration error")
	} else {
		defer client.Close()
		log.Info("document store connection established", "project", cfg.FirebaseProjectID)
	}

	rdb, err := cache.NewClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		panic("failed to connect to redis: " + err.Error())
	}
	if rdb == nil {
		log.Warn("REDIS_URL not configured; report caching disabled")
	} else {
		defer rdb.Close()
		log.Info("redis connection established")
	}
	leadCache := cache.New(rdb, cfg.LeadsCacheTTL, log)

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	// Notifier subscribes to domain events (not HTTP-facing)
	notification.NewNotifier(email.NewSMTPSender(cfg), cfg, eventBus, log)

	leadStore := leadsrepo.NewFirestoreStore(client, log)
	userStore := authrepo.NewFirestoreStore(client, log)

	authModule := auth.NewModule(userStore, cfg, val, log)
	leadsModule := leads.NewModule(leadStore, leadCache, eventBus, log)
	reportsModule := reports.NewModule(leadsModule.Store(), leadCache)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:          cfg,
		Logger:          log,
		StoreConfigured: client != nil,
		Modules: []apphttp.Module{
			authModule,
			leadsModule,
			reportsModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
